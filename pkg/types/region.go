package types

import "fmt"

// RegionKind classifies a whitespace violation.
type RegionKind int

const (
	// IncorrectIndent is a leading whitespace run whose width or character
	// does not match the scope depth. At most one per line.
	IncorrectIndent RegionKind = iota

	// MultipleSpaces is a run of two or more spaces where one is expected.
	MultipleSpaces

	// UnexpectedWhitespace is whitespace that should not be present, or the
	// wrong whitespace character for the position.
	UnexpectedWhitespace

	// MissingSpace is a zero-width region marking the insertion point of a
	// required space.
	MissingSpace

	// InvalidCharacter is a run of control characters or other code points
	// that never belong in source text.
	InvalidCharacter
)

// String returns the identifier used in JSON and SARIF output.
func (k RegionKind) String() string {
	switch k {
	case IncorrectIndent:
		return "incorrect-indent"
	case MultipleSpaces:
		return "multiple-spaces"
	case UnexpectedWhitespace:
		return "unexpected-whitespace"
	case MissingSpace:
		return "missing-space"
	case InvalidCharacter:
		return "invalid-character"
	default:
		return fmt.Sprintf("region-kind-%d", int(k))
	}
}

// Description returns a human-readable explanation of the violation.
func (k RegionKind) Description() string {
	switch k {
	case IncorrectIndent:
		return "indentation does not match scope depth"
	case MultipleSpaces:
		return "multiple spaces where one is expected"
	case UnexpectedWhitespace:
		return "unexpected whitespace"
	case MissingSpace:
		return "missing required space"
	case InvalidCharacter:
		return "invalid character"
	default:
		return "whitespace violation"
	}
}

// TaggedRegion is a half-open column range [Start, End) within one line,
// annotated with the violation kind and the width of the replacement run.
// Columns count unicode scalars, zero-based. End == Start marks a pure
// insertion point.
type TaggedRegion struct {
	Start         int        `json:"start"`
	End           int        `json:"end"`
	Kind          RegionKind `json:"kind"`
	ExpectedWidth int        `json:"expected_width"`
}

// Length returns the number of columns covered by the region.
func (r TaggedRegion) Length() int {
	return r.End - r.Start
}

// ChangedRange is a half-open column range in a corrected line that differs
// from the original.
type ChangedRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Finding binds a tagged region to a file location. It is the unit of
// reporting and persistence.
type Finding struct {
	Path   string       `json:"path"`
	Line   int          `json:"line"` // 1-based
	Region TaggedRegion `json:"region"`
	Text   string       `json:"text,omitempty"` // the offending line, without terminator
}
