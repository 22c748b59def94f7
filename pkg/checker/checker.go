// Package checker drives the line tagger over whole files and trees: it
// owns the line splitting, per-file tagger lifetime, and fan-out over an
// enumerated source.
package checker

import (
	"bytes"
	"context"
	"sync"

	"github.com/mattgallagher/cwlwhitespace/pkg/config"
	"github.com/mattgallagher/cwlwhitespace/pkg/enum"
	"github.com/mattgallagher/cwlwhitespace/pkg/store"
	"github.com/mattgallagher/cwlwhitespace/pkg/tagger"
	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// CheckContent runs the tagger over every line of content and returns
// the findings for path. A fresh tagger serves the whole file, so scope
// state carries across lines.
func CheckContent(path string, content []byte, style types.IndentStyle) []*types.Finding {
	var findings []*types.Finding

	tg := tagger.New(style)
	for i, line := range types.SplitLines(content) {
		for _, region := range tg.ParseLine(line) {
			findings = append(findings, &types.Finding{
				Path:   path,
				Line:   i + 1,
				Region: region,
				Text:   line,
			})
		}
	}
	return findings
}

// FixContent corrects every violating line of content and reports
// whether anything changed. The original line terminator style and the
// presence of a final newline are preserved.
func FixContent(content []byte, style types.IndentStyle) ([]byte, bool) {
	lines := types.SplitLines(content)
	if lines == nil {
		return content, false
	}

	changed := false
	tg := tagger.New(style)
	for i, line := range lines {
		regions := tg.ParseLine(line)
		if len(regions) == 0 {
			continue
		}
		corrected, _ := tagger.ApplyCorrections(line, regions, style)
		if corrected != line {
			lines[i] = corrected
			changed = true
		}
	}
	if !changed {
		return content, false
	}

	ending := types.DetectLineEnding(content)
	finalNewline := bytes.HasSuffix(content, []byte("\n"))
	return types.JoinLines(lines, ending, finalNewline), true
}

// Summary aggregates one Run.
type Summary struct {
	Files    int // files checked
	Flagged  int // files with at least one finding
	Findings int // total findings
}

// Checker checks every file an enumerator yields against a project
// configuration, recording findings in a store.
type Checker struct {
	config *config.Config
	store  store.Store

	// Incremental skips files the store has already recorded, so repeated
	// runs against a persistent store only check what is new.
	Incremental bool
}

// New creates a checker. A nil cfg falls back to the default
// configuration; a nil st records nothing but still counts.
func New(cfg *config.Config, st store.Store) *Checker {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Checker{config: cfg, store: st}
}

// Run checks every enumerated file. The enumerator's callback may run
// from parallel readers, so the summary is guarded here; the store is
// responsible for its own synchronization.
func (c *Checker) Run(ctx context.Context, enumerator enum.Enumerator) (*Summary, error) {
	var mu sync.Mutex
	summary := &Summary{}

	err := enumerator.Enumerate(ctx, func(content []byte, path string) error {
		if c.config.Excluded(path) {
			return nil
		}

		if c.Incremental && c.store != nil {
			seen, err := c.store.FileExists(path)
			if err != nil {
				return err
			}
			if seen {
				return nil
			}
		}

		findings := CheckContent(path, content, c.config.StyleFor(path))

		if c.store != nil {
			for _, f := range findings {
				if err := c.store.AddFinding(f); err != nil {
					return err
				}
			}
			if err := c.store.AddFile(path, len(findings)); err != nil {
				return err
			}
		}

		mu.Lock()
		summary.Files++
		if len(findings) > 0 {
			summary.Flagged++
			summary.Findings += len(findings)
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}
