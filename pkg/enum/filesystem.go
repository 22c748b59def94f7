package enum

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// FilesystemEnumerator enumerates source files from a directory tree.
type FilesystemEnumerator struct {
	config Config
}

// NewFilesystemEnumerator creates a new filesystem enumerator.
func NewFilesystemEnumerator(config Config) *FilesystemEnumerator {
	return &FilesystemEnumerator{config: config}
}

// fileEntry holds metadata collected during the walk phase.
type fileEntry struct {
	path string
	rel  string
}

// Enumerate walks the directory tree and yields file contents.
// Phase 1: Walk and collect eligible file paths (fast, sequential).
// Phase 2: Read files and invoke the callback in parallel. Callback
// invocations may interleave across files but each file's callback runs
// once with the whole content.
func (e *FilesystemEnumerator) Enumerate(ctx context.Context, callback func(content []byte, path string) error) error {
	// Honor the project's .gitignore if present
	var ignore *gitignore.GitIgnore
	gitignorePath := filepath.Join(e.config.Root, ".gitignore")
	if _, err := os.Stat(gitignorePath); err == nil {
		ignore, _ = gitignore.CompileIgnoreFile(gitignorePath)
	}

	// Phase 1: Walk and collect eligible file paths
	var files []fileEntry
	err := filepath.Walk(e.config.Root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if info.IsDir() {
			if !e.config.IncludeHidden && isHidden(info.Name()) && path != e.config.Root {
				return filepath.SkipDir
			}
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 && !e.config.FollowSymlinks {
			return nil
		}

		if !e.config.IncludeHidden && isHidden(info.Name()) {
			return nil
		}

		if e.config.MaxFileSize > 0 && info.Size() > e.config.MaxFileSize {
			return nil
		}

		if !e.config.wantsExtension(path) {
			return nil
		}

		rel, err := filepath.Rel(e.config.Root, path)
		if err != nil {
			return err
		}
		if ignore != nil && ignore.MatchesPath(rel) {
			return nil
		}
		if e.config.Exclude != nil && e.config.Exclude(rel) {
			return nil
		}

		files = append(files, fileEntry{path: path, rel: rel})
		return nil
	})
	if err != nil {
		return err
	}

	// Phase 2: Read and process files in parallel
	numReaders := runtime.NumCPU()
	if numReaders < 1 {
		numReaders = 1
	}

	origCtx := ctx
	g, ctx := errgroup.WithContext(ctx)
	pathsCh := make(chan fileEntry, numReaders*2)

	// Feed paths to readers
	g.Go(func() error {
		defer close(pathsCh)
		for _, f := range files {
			select {
			case pathsCh <- f:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	// Parallel readers
	for i := 0; i < numReaders; i++ {
		g.Go(func() error {
			for f := range pathsCh {
				if err := e.processFile(ctx, f, callback); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	// If the caller's context was cancelled but all goroutines finished
	// before noticing, propagate the cancellation.
	if origCtx.Err() != nil {
		return origCtx.Err()
	}
	return nil
}

// processFile reads a single file and invokes the callback.
func (e *FilesystemEnumerator) processFile(ctx context.Context, f fileEntry, callback func(content []byte, path string) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	content, err := os.ReadFile(f.path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", f.path, err)
	}

	if isBinary(content) {
		return nil
	}

	return callback(content, f.rel)
}

// isHidden checks if a filename is hidden (starts with .).
// The special entries "." and ".." are NOT considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return strings.HasPrefix(name, ".")
}

// isBinary detects if content is binary by checking the first 8KB for
// null bytes.
func isBinary(content []byte) bool {
	checkSize := len(content)
	if checkSize > 8192 {
		checkSize = 8192
	}
	return bytes.IndexByte(content[:checkSize], 0) != -1
}
