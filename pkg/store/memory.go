package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// MemoryStore implements Store using in-memory data structures. Useful
// for one-shot runs where persisting results has no value, and for
// tests.
type MemoryStore struct {
	mu       sync.RWMutex
	files    map[string]int            // path -> finding count
	findings map[string]*types.Finding // keyed by dedup key
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		files:    make(map[string]int),
		findings: make(map[string]*types.Finding),
	}
}

// AddFile records a checked file and its finding count.
func (m *MemoryStore) AddFile(path string, findings int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.files[path] = findings
	return nil
}

// AddFinding stores a finding (deduplicated).
func (m *MemoryStore) AddFinding(f *types.Finding) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := fmt.Sprintf("%s:%d:%d:%d:%d", f.Path, f.Line, int(f.Region.Kind), f.Region.Start, f.Region.End)
	if _, exists := m.findings[key]; exists {
		return nil
	}

	m.findings[key] = f
	return nil
}

// GetFindings retrieves all findings ordered by path, line, column.
func (m *MemoryStore) GetFindings() ([]*types.Finding, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	findings := make([]*types.Finding, 0, len(m.findings))
	for _, f := range m.findings {
		findings = append(findings, f)
	}

	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Region.Start < b.Region.Start
	})
	return findings, nil
}

// FileExists checks if a file has already been recorded.
func (m *MemoryStore) FileExists(path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.files[path]
	return exists, nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}
