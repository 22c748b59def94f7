package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mattgallagher/cwlwhitespace/pkg/sarif"
	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// styles holds color formatters for human-readable output
type styles struct {
	path    *color.Color
	lineCol *color.Color
	kind    *color.Color
	marker  *color.Color
}

// newStyles creates color formatters for finding output
// enabled=false respects --color=never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		path:    color.New(color.Bold, color.FgHiWhite),
		lineCol: color.New(color.FgHiGreen),
		kind:    color.New(color.Bold, color.FgYellow),
		marker:  color.New(color.FgHiRed),
	}

	if !enabled {
		s.path.DisableColor()
		s.lineCol.DisableColor()
		s.kind.DisableColor()
		s.marker.DisableColor()
	}

	return s
}

// configureColor applies a --color flag value: auto, always, never.
func configureColor(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
}

// outputFindingsHuman prints findings compiler-style with the offending
// line and a marker under the flagged columns.
func outputFindingsHuman(out io.Writer, findings []*types.Finding) {
	s := newStyles(!color.NoColor)

	for _, f := range findings {
		fmt.Fprintf(out, "%s:%s: %s\n",
			s.path.Sprint(f.Path),
			s.lineCol.Sprintf("%d:%d", f.Line, f.Region.Start+1),
			s.kind.Sprint(f.Region.Kind.Description()))

		if f.Text == "" {
			continue
		}
		fmt.Fprintf(out, "    %s\n", f.Text)
		fmt.Fprintf(out, "    %s\n", s.marker.Sprint(columnMarker(f.Text, f.Region)))
	}
}

// columnMarker builds the "    ^~~" line pointing at a region. Tabs in
// the prefix are preserved and wide runes are padded to their display
// width so the marker lines up in a terminal.
func columnMarker(text string, region types.TaggedRegion) string {
	runes := []rune(text)
	var b strings.Builder
	for i := 0; i < region.Start && i < len(runes); i++ {
		if runes[i] == '\t' {
			b.WriteByte('\t')
			continue
		}
		for w := runewidth.RuneWidth(runes[i]); w > 0; w-- {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	for i := region.Start + 1; i < region.End; i++ {
		b.WriteByte('~')
	}
	return b.String()
}

func outputFindingsJSON(cmd *cobra.Command, findings []*types.Finding) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(findings)
}

func outputFindingsSARIF(cmd *cobra.Command, findings []*types.Finding) error {
	report := sarif.NewReport()
	for _, f := range findings {
		report.AddResult(f)
	}

	jsonBytes, err := report.ToJSON()
	if err != nil {
		return fmt.Errorf("serializing SARIF: %w", err)
	}

	if _, err := cmd.OutOrStdout().Write(jsonBytes); err != nil {
		return fmt.Errorf("writing SARIF output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout())
	return err
}
