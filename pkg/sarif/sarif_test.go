package sarif

import (
	"encoding/json"
	"testing"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

func TestNewReportCarriesRules(t *testing.T) {
	report := NewReport()

	if report.Schema != SchemaURI {
		t.Errorf("unexpected schema: %s", report.Schema)
	}
	if report.Version != Version {
		t.Errorf("unexpected version: %s", report.Version)
	}
	if len(report.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(report.Runs))
	}

	rules := report.Runs[0].Tool.Driver.Rules
	if len(rules) != 5 {
		t.Fatalf("expected 5 rules, got %d", len(rules))
	}
	if rules[0].ID != "incorrect-indent" {
		t.Errorf("unexpected first rule: %s", rules[0].ID)
	}
}

func TestAddResult(t *testing.T) {
	report := NewReport()
	report.AddResult(&types.Finding{
		Path: "Sources/Foo.swift",
		Line: 12,
		Region: types.TaggedRegion{
			Start: 4,
			End:   6,
			Kind:  types.MultipleSpaces,
		},
		Text: "let x  = 1",
	})

	results := report.Runs[0].Results
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.RuleID != "multiple-spaces" {
		t.Errorf("unexpected rule ID: %s", r.RuleID)
	}
	if r.Level != "warning" {
		t.Errorf("unexpected level: %s", r.Level)
	}

	region := r.Locations[0].PhysicalLocation.Region
	if region.StartLine != 12 || region.EndLine != 12 {
		t.Errorf("unexpected lines: %d-%d", region.StartLine, region.EndLine)
	}
	// Columns shift to SARIF's 1-based numbering.
	if region.StartColumn != 5 || region.EndColumn != 7 {
		t.Errorf("unexpected columns: %d-%d", region.StartColumn, region.EndColumn)
	}
	if region.Snippet.Text != "let x  = 1" {
		t.Errorf("unexpected snippet: %q", region.Snippet.Text)
	}

	uri := r.Locations[0].PhysicalLocation.ArtifactLocation.URI
	if uri != "Sources/Foo.swift" {
		t.Errorf("unexpected URI: %s", uri)
	}
}

func TestAbsolutePathBecomesFileURI(t *testing.T) {
	report := NewReport()
	report.AddResult(&types.Finding{
		Path:   "/tmp/project/Foo.swift",
		Line:   1,
		Region: types.TaggedRegion{Kind: types.IncorrectIndent},
	})

	uri := report.Runs[0].Results[0].Locations[0].PhysicalLocation.ArtifactLocation.URI
	if uri != "file:///tmp/project/Foo.swift" {
		t.Errorf("unexpected URI: %s", uri)
	}
}

func TestToJSONRoundTrips(t *testing.T) {
	report := NewReport()
	report.AddResult(&types.Finding{
		Path:   "a.swift",
		Line:   3,
		Region: types.TaggedRegion{Start: 0, End: 1, Kind: types.IncorrectIndent},
	})

	data, err := report.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("generated JSON does not parse: %v", err)
	}
	if len(decoded.Runs) != 1 || len(decoded.Runs[0].Results) != 1 {
		t.Errorf("round trip lost results")
	}
}
