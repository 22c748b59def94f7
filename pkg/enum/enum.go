package enum

import (
	"context"
	"path/filepath"
	"strings"
)

// Enumerator discovers source files to check.
type Enumerator interface {
	// Enumerate yields file contents from the source. The callback receives
	// the file content and its path relative to the enumeration root.
	Enumerate(ctx context.Context, callback func(content []byte, path string) error) error
}

// Config for enumeration.
type Config struct {
	// Root is the starting path for enumeration.
	Root string

	// Extensions limits enumeration to files with these extensions
	// (including the dot). Empty means every text file.
	Extensions []string

	// IncludeHidden includes hidden files/directories (starting with .).
	IncludeHidden bool

	// MaxFileSize is the maximum file size to process (0 = no limit).
	MaxFileSize int64

	// FollowSymlinks follows symbolic links.
	FollowSymlinks bool

	// Exclude reports paths (relative to Root) the caller wants skipped,
	// on top of .gitignore. Nil means no extra exclusions.
	Exclude func(path string) bool
}

// wantsExtension reports whether a path passes the extension filter.
func (c Config) wantsExtension(path string) bool {
	if len(c.Extensions) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range c.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
