package tagger

import (
	"strings"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// ApplyCorrections rewrites a line from its tagged regions and reports the
// column ranges that changed, in corrected-line numbering. Each region is
// replaced by ExpectedWidth copies of the canonical whitespace character:
// tabs for indentation regions under tab style, spaces otherwise. It is a
// pure function, independent of tagger state except for the indentation
// character choice.
//
// Regions must be sorted by start, as ParseLine returns them. Regions
// sharing one span collapse to the last, which carries the final verdict
// for that run; a region overlapping the previously applied one is
// clamped.
//
// When no region alters the text, the whole corrected line is reported as
// changed so the caller still has a range to present.
func ApplyCorrections(text string, regions []types.TaggedRegion, style types.IndentStyle) (string, []types.ChangedRange) {
	line := []rune(trimLineTerminator(text))

	var corrected strings.Builder
	var changed []types.ChangedRange

	regions = collapseRegions(regions)

	pos := 0    // next unread column in the original line
	offset := 0 // corrected minus original column numbering
	for _, region := range regions {
		start, end := region.Start, region.End
		if start < pos {
			start = pos
		}
		if end < start {
			end = start
		}
		if start > len(line) {
			start = len(line)
		}
		if end > len(line) {
			end = len(line)
		}

		corrected.WriteString(string(line[pos:start]))

		replacement := strings.Repeat(string(replacementRune(region.Kind, style)), region.ExpectedWidth)
		original := string(line[start:end])
		corrected.WriteString(replacement)

		if replacement != original {
			newStart := start + offset
			changed = append(changed, types.ChangedRange{
				Start: newStart,
				End:   newStart + len([]rune(replacement)),
			})
			offset += len([]rune(replacement)) - (end - start)
		}
		pos = end
	}
	corrected.WriteString(string(line[pos:]))

	result := corrected.String()
	if len(changed) == 0 {
		// Nothing moved: report the whole line so the caller has something
		// to present.
		changed = []types.ChangedRange{{Start: 0, End: len([]rune(result))}}
	}
	return result, changed
}

// collapseRegions keeps the last of any regions covering an identical
// span. A run that violates two rules is tagged twice; the later tag is
// the final verdict.
func collapseRegions(regions []types.TaggedRegion) []types.TaggedRegion {
	if len(regions) < 2 {
		return regions
	}
	out := make([]types.TaggedRegion, 0, len(regions))
	for _, region := range regions {
		if n := len(out); n > 0 && out[n-1].Start == region.Start && out[n-1].End == region.End {
			out[n-1] = region
			continue
		}
		out = append(out, region)
	}
	return out
}

func replacementRune(kind types.RegionKind, style types.IndentStyle) rune {
	if kind == types.IncorrectIndent && style.Character == types.IndentTabs {
		return '\t'
	}
	return ' '
}
