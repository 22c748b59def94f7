package tagger

import "github.com/mattgallagher/cwlwhitespace/pkg/types"

// expectedIndentUnits computes the indentation level a line should have,
// given the scope stack and the first non-whitespace token of the line.
// Closing delimiters, case/default labels inside a switch body, and the
// conditional-compilation keywords sit one level shallower than their
// enclosing scope. A line holding nothing but whitespace expects none.
func expectedIndentUnits(stack *scopeStack, next Token) int {
	if next.Kind == tokEOL {
		return 0
	}

	depth := stack.indentDepth()
	switch next.Kind {
	case tokCloseParen, tokCloseBrace, tokCloseBracket:
		depth--
	case tokCase, tokDefault:
		if stack.count(scopeSwitch) > 0 {
			depth--
		}
	case tokHashElse, tokHashElseif, tokHashEndif:
		if stack.count(scopeHashIf) > 0 {
			depth--
		}
	}
	if depth < 0 {
		depth = 0
	}
	return depth
}

// validateIndent compares the observed leading run against the expected
// width and returns the single IncorrectIndent region for the line, if any.
// The observed span is [start, end) with mixed set when it contained the
// wrong whitespace character; the region is zero-width at column zero when
// the run is absent but indentation is required.
func validateIndent(stack *scopeStack, style types.IndentStyle, start, end int, mixed bool, next Token) (types.TaggedRegion, bool) {
	expected := expectedIndentUnits(stack, next) * style.UnitWidth()
	observed := end - start

	if !mixed && observed == expected {
		return types.TaggedRegion{}, false
	}
	return types.TaggedRegion{
		Start:         start,
		End:           end,
		Kind:          types.IncorrectIndent,
		ExpectedWidth: expected,
	}, true
}
