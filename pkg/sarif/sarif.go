// Package sarif renders findings as a SARIF 2.1.0 report, one reporting
// rule per violation kind.
package sarif

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// SARIF 2.1.0 constants
const (
	SchemaURI   = "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json"
	Version     = "2.1.0"
	ToolName    = "cwlwhitespace"
	ToolVersion = "0.1.0"
)

// Report is the top-level SARIF report structure
type Report struct {
	Schema  string `json:"$schema"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single invocation of the tool
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

// Tool describes the analysis tool
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver contains tool metadata
type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Rules   []Rule `json:"rules,omitempty"`
}

// Rule represents one violation kind
type Rule struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	ShortDescription ShortDescription `json:"shortDescription"`
}

// ShortDescription contains rule description text
type ShortDescription struct {
	Text string `json:"text"`
}

// Result represents a single finding
type Result struct {
	RuleID    string     `json:"ruleId"`
	Level     string     `json:"level"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations"`
}

// Message contains the result message
type Message struct {
	Text string `json:"text"`
}

// Location describes where a result was found
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation specifies file location
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation identifies the file
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region specifies the line/column range
type Region struct {
	StartLine   int     `json:"startLine"`
	StartColumn int     `json:"startColumn"`
	EndLine     int     `json:"endLine"`
	EndColumn   int     `json:"endColumn"`
	Snippet     Snippet `json:"snippet,omitempty"`
}

// Snippet contains the offending line
type Snippet struct {
	Text string `json:"text"`
}

// regionKinds lists every violation kind, in rule order.
var regionKinds = []types.RegionKind{
	types.IncorrectIndent,
	types.MultipleSpaces,
	types.UnexpectedWhitespace,
	types.MissingSpace,
	types.InvalidCharacter,
}

// NewReport creates a SARIF report carrying one rule per violation kind.
func NewReport() *Report {
	rules := make([]Rule, 0, len(regionKinds))
	for _, kind := range regionKinds {
		rules = append(rules, Rule{
			ID:   kind.String(),
			Name: kind.String(),
			ShortDescription: ShortDescription{
				Text: kind.Description(),
			},
		})
	}

	return &Report{
		Schema:  SchemaURI,
		Version: Version,
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    ToolName,
						Version: ToolVersion,
						Rules:   rules,
					},
				},
				Results: []Result{},
			},
		},
	}
}

// AddResult adds a finding to the report. SARIF columns are 1-based
// where findings count columns from zero.
func (r *Report) AddResult(f *types.Finding) {
	region := Region{
		StartLine:   f.Line,
		StartColumn: f.Region.Start + 1,
		EndLine:     f.Line,
		EndColumn:   f.Region.End + 1,
	}
	if f.Text != "" {
		region.Snippet = Snippet{Text: f.Text}
	}

	result := Result{
		RuleID: f.Region.Kind.String(),
		Level:  "warning",
		Message: Message{
			Text: f.Region.Kind.Description(),
		},
		Locations: []Location{
			{
				PhysicalLocation: PhysicalLocation{
					ArtifactLocation: ArtifactLocation{
						URI: formatFileURI(f.Path),
					},
					Region: region,
				},
			},
		},
	}

	r.Runs[0].Results = append(r.Runs[0].Results, result)
}

// ToJSON serializes the report to JSON bytes
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// formatFileURI converts a file path to SARIF URI format.
// Absolute paths get a file:// prefix, relative paths stay as-is.
func formatFileURI(path string) string {
	if filepath.IsAbs(path) {
		path = filepath.ToSlash(path)
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		return "file://" + path
	}
	return filepath.ToSlash(path)
}
