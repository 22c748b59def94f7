package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store.
// Use ":memory:" for an in-memory database (useful for testing).
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// AddFile records a checked file and its finding count.
func (s *SQLiteStore) AddFile(path string, findings int) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO files (path, findings) VALUES (?, ?)", path, findings)
	if err != nil {
		return fmt.Errorf("inserting file: %w", err)
	}
	return nil
}

// AddFinding stores a finding (deduplicated).
func (s *SQLiteStore) AddFinding(f *types.Finding) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO findings (path, line, kind, start_col, end_col, expected_width, text)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		f.Path,
		f.Line,
		int(f.Region.Kind),
		f.Region.Start,
		f.Region.End,
		f.Region.ExpectedWidth,
		f.Text,
	)
	if err != nil {
		return fmt.Errorf("inserting finding: %w", err)
	}
	return nil
}

// GetFindings retrieves all findings ordered by path, line, column.
func (s *SQLiteStore) GetFindings() ([]*types.Finding, error) {
	rows, err := s.db.Query(`
		SELECT path, line, kind, start_col, end_col, expected_width, text
		FROM findings
		ORDER BY path, line, start_col
	`)
	if err != nil {
		return nil, fmt.Errorf("querying findings: %w", err)
	}
	defer rows.Close()

	var findings []*types.Finding
	for rows.Next() {
		var f types.Finding
		var kind int

		err := rows.Scan(
			&f.Path,
			&f.Line,
			&kind,
			&f.Region.Start,
			&f.Region.End,
			&f.Region.ExpectedWidth,
			&f.Text,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning finding: %w", err)
		}
		f.Region.Kind = types.RegionKind(kind)

		findings = append(findings, &f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating findings: %w", err)
	}

	return findings, nil
}

// FileExists checks if a file has already been recorded.
func (s *SQLiteStore) FileExists(path string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM files WHERE path = ?", path).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking file existence: %w", err)
	}
	return count > 0, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
