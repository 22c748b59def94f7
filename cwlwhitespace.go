// Package cwlwhitespace provides a whitespace style checker for
// Swift-like source text.
//
// The checker tokenizes each line, tracks scope nesting across lines
// with a pushdown automaton, and tags the column ranges that violate
// whitespace rules: wrong indentation, runs of multiple spaces,
// misplaced whitespace around punctuation, missing spaces around
// binary operators, and invalid control characters. Tagged regions can
// be corrected mechanically.
//
// # Basic Usage
//
// Create a checker and check a string:
//
//	checker := cwlwhitespace.NewChecker()
//
//	findings := checker.CheckString("main.swift", "let x  = 1\n")
//	for _, f := range findings {
//	    fmt.Printf("%s:%d:%d: %s\n", f.Path, f.Line, f.Region.Start+1,
//	        f.Region.Kind.Description())
//	}
//
// # Fixing
//
// FixString returns the corrected text:
//
//	fixed, changed := checker.FixString("let x  = 1\n")
//	// fixed == "let x = 1\n", changed == true
//
// # Line-level access
//
// For editor integrations that re-check one line at a time, use
// tagger.New directly; a Tagger carries scope state from line to line.
package cwlwhitespace

import (
	"fmt"
	"os"

	"github.com/mattgallagher/cwlwhitespace/pkg/checker"
	"github.com/mattgallagher/cwlwhitespace/pkg/config"
	"github.com/mattgallagher/cwlwhitespace/pkg/tagger"
	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/mattgallagher/cwlwhitespace"
// without subpackages.
type (
	// Finding binds a tagged region to a file location.
	Finding = types.Finding

	// TaggedRegion is a flagged column range within one line.
	TaggedRegion = types.TaggedRegion

	// RegionKind classifies a whitespace violation.
	RegionKind = types.RegionKind

	// IndentStyle is the per-file indentation configuration.
	IndentStyle = types.IndentStyle

	// ChangedRange is a corrected column range reported by a fix.
	ChangedRange = types.ChangedRange
)

// Re-export region kind constants.
const (
	IncorrectIndent      = types.IncorrectIndent
	MultipleSpaces       = types.MultipleSpaces
	UnexpectedWhitespace = types.UnexpectedWhitespace
	MissingSpace         = types.MissingSpace
	InvalidCharacter     = types.InvalidCharacter
)

// Tabs returns the tab indentation style, the default.
func Tabs() IndentStyle {
	return types.Tabs()
}

// Spaces returns a space indentation style with the given width.
func Spaces(width int) IndentStyle {
	return types.Spaces(width)
}

// Checker checks whole files or strings against a configuration.
type Checker struct {
	config *config.Config
}

// Option configures a Checker.
type Option func(*config.Config)

// WithStyle sets the default indentation style.
// If not specified, the checker expects tab indentation.
func WithStyle(style IndentStyle) Option {
	return func(c *config.Config) {
		c.Style = style
	}
}

// WithConfig replaces the whole configuration, including per-pattern
// style overrides and exclusions loaded from a .cwlwhitespace.yaml.
func WithConfig(cfg *config.Config) Option {
	return func(c *config.Config) {
		*c = *cfg
	}
}

// NewChecker creates a Checker with the given options.
//
// By default the checker expects tab indentation and has no overrides
// or exclusions.
func NewChecker(opts ...Option) *Checker {
	cfg := config.Default()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Checker{config: cfg}
}

// CheckString checks content and returns findings attributed to path.
// Scope state carries across the content's lines, so the whole file
// must be passed at once.
func (c *Checker) CheckString(path, content string) []*Finding {
	return checker.CheckContent(path, []byte(content), c.config.StyleFor(path))
}

// CheckBytes checks raw bytes and returns findings attributed to path.
func (c *Checker) CheckBytes(path string, content []byte) []*Finding {
	return checker.CheckContent(path, content, c.config.StyleFor(path))
}

// CheckFile reads and checks a file.
func (c *Checker) CheckFile(path string) ([]*Finding, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	return c.CheckBytes(path, content), nil
}

// FixString corrects every violation in content and reports whether
// anything changed. Corrections use the default style; for per-path
// overrides use FixBytes with the file's path.
func (c *Checker) FixString(content string) (string, bool) {
	fixed, changed := checker.FixContent([]byte(content), c.config.Style)
	return string(fixed), changed
}

// FixBytes corrects every violation in content using the style
// configured for path.
func (c *Checker) FixBytes(path string, content []byte) ([]byte, bool) {
	return checker.FixContent(content, c.config.StyleFor(path))
}

// Style returns the checker's default indentation style.
func (c *Checker) Style() IndentStyle {
	return c.config.Style
}

// ParseLine tags a single line with a fresh tagger, for callers that
// have no cross-line state. Lines inside multi-line constructs need a
// persistent tagger.Tagger instead.
func ParseLine(line string, style IndentStyle) []TaggedRegion {
	return tagger.New(style).ParseLine(line)
}

// ApplyCorrections rewrites one line from its tagged regions.
func ApplyCorrections(line string, regions []TaggedRegion, style IndentStyle) (string, []ChangedRange) {
	return tagger.ApplyCorrections(line, regions, style)
}
