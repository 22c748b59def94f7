package store

import (
	"fmt"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// Store provides persistence for check results, so a report can be
// produced later without re-checking.
// This interface abstracts the underlying storage implementation.
type Store interface {
	// AddFile records a checked file and how many findings it produced.
	AddFile(path string, findings int) error

	// AddFinding stores a finding (deduplicated on path/line/region).
	AddFinding(f *types.Finding) error

	// GetFindings retrieves all findings ordered by path, line, column.
	GetFindings() ([]*types.Finding, error)

	// FileExists checks if a file has already been recorded.
	FileExists(path string) (bool, error)

	// Close closes the underlying storage.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory database (useful for testing).
	Path string
}

// New creates a new Store.
// Currently only supports the SQLite backend.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	return NewSQLite(cfg.Path)
}
