package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

func region(kind types.RegionKind, start, end, width int) types.TaggedRegion {
	return types.TaggedRegion{Start: start, End: end, Kind: kind, ExpectedWidth: width}
}

func TestCleanLinesProduceNoRegions(t *testing.T) {
	lines := []string{
		"let x = 1",
		"func foo(a: Int, b: Int) -> Int {",
		"\treturn a + b",
		"}",
		"foo(1, 2)",
		"let list = [1, 2, 3]",
		"let dict = [\"key\": 1]",
		"let r = flag ? a : b",
		"let d: Dictionary<String, Int> = [:]",
		"// a comment line",
		"@objc func bar() {",
		"}",
		"",
	}
	tg := New(types.Tabs())
	for _, line := range lines {
		regions := tg.ParseLine(line)
		assert.Empty(t, regions, "line %q", line)
	}
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestSingleSpaceLineIsIncorrectIndent(t *testing.T) {
	tg := New(types.Tabs())
	regions := tg.ParseLine(" ")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.IncorrectIndent, 0, 1, 0), regions[0])
}

func TestDoubleSpaceIsMultipleSpaces(t *testing.T) {
	tg := New(types.Tabs())
	regions := tg.ParseLine("The quick  brown fox.")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.MultipleSpaces, 9, 11, 1), regions[0])
}

func TestBracePushPop(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("{"))
	assert.Equal(t, 1, tg.ScopeDepth())
	assert.Empty(t, tg.ParseLine("}"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestOpenCommentSpansLines(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("Comment /* something "))
	assert.Equal(t, 1, tg.ScopeDepth())
	assert.Empty(t, tg.ParseLine("   */ end comment"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestNestedComments(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("/* outer /* inner */ still outer"))
	assert.Equal(t, 1, tg.ScopeDepth())
	assert.Empty(t, tg.ParseLine("done */"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestSpacesBeforeCommaAndMissingSpaceAfter(t *testing.T) {
	tg := New(types.Tabs())
	regions := tg.ParseLine("let x = (0  ,0)")
	require.Len(t, regions, 3)
	assert.Equal(t, region(types.MultipleSpaces, 10, 12, 1), regions[0])
	assert.Equal(t, region(types.UnexpectedWhitespace, 10, 12, 0), regions[1])
	assert.Equal(t, region(types.MissingSpace, 13, 13, 1), regions[2])
}

func TestCorrectionIdempotence(t *testing.T) {
	lines := []string{
		"let x = (0  ,0)",
		"foo( a,b )",
		"a\t+\tb",
		"   {",
		"x  =  1   ",
	}
	for _, line := range lines {
		style := types.Tabs()
		first := New(style)
		regions := first.ParseLine(line)
		corrected, _ := ApplyCorrections(line, regions, style)

		second := New(style)
		assert.Empty(t, second.ParseLine(corrected), "line %q corrected to %q", line, corrected)
	}
}

func TestSameLineSiblingScopesAreNotDoubleCounted(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("foo({ a }, { b }, {"))
	// Only the still-open brace and the paren count for the next line.
	assert.Empty(t, tg.ParseLine("\t\tbar"))
	assert.Empty(t, tg.ParseLine("\t})"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestSameLineSameKindOpensAreShadowed(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("foo(bar("))
	// Two parens open, but only one indent level is expected.
	assert.Empty(t, tg.ParseLine("\tbaz"))
	assert.Empty(t, tg.ParseLine("))"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestIndentTabs(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("if x {"))
	assert.Empty(t, tg.ParseLine("\tfoo()"))

	regions := tg.ParseLine("  bar()")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.IncorrectIndent, 0, 2, 1), regions[0])

	regions = tg.ParseLine("baz()")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.IncorrectIndent, 0, 0, 1), regions[0])

	assert.Empty(t, tg.ParseLine("}"))
}

func TestIndentSpaces(t *testing.T) {
	tg := New(types.Spaces(4))
	assert.Empty(t, tg.ParseLine("if x {"))
	assert.Empty(t, tg.ParseLine("    foo()"))

	// Not a multiple of the configured width.
	regions := tg.ParseLine("   bar()")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.IncorrectIndent, 0, 3, 4), regions[0])

	// Tabs under space style.
	regions = tg.ParseLine("\tbar()")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.IncorrectIndent, 0, 1, 4), regions[0])

	assert.Empty(t, tg.ParseLine("}"))
}

func TestIndentAtMostOneRegionPerLine(t *testing.T) {
	tg := New(types.Spaces(2))
	assert.Empty(t, tg.ParseLine("a({"))
	regions := tg.ParseLine(" \t  x")
	count := 0
	for _, r := range regions {
		if r.Kind == types.IncorrectIndent {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCloserAllowedOneLevelShallower(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("foo("))
	assert.Empty(t, tg.ParseLine("\tbar,"))
	assert.Empty(t, tg.ParseLine(")"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestSwitchCaseIndent(t *testing.T) {
	tg := New(types.Tabs())
	for _, line := range []string{
		"switch value {",
		"case 1:",
		"\tfoo()",
		"default:",
		"\tbar()",
		"}",
	} {
		assert.Empty(t, tg.ParseLine(line), "line %q", line)
	}
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestConditionalCompilationIndent(t *testing.T) {
	tg := New(types.Tabs())
	for _, line := range []string{
		"#if DEBUG",
		"\tfoo()",
		"#elseif TEST",
		"\tbar()",
		"#else",
		"\tbaz()",
		"#endif",
	} {
		assert.Empty(t, tg.ParseLine(line), "line %q", line)
	}
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestStringLiteralContentExempt(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine(`let s = "two  spaces , and\ttabs"`))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestStringInterpolation(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine(`let s = "count: \(a + b) items"`))
	assert.Equal(t, 0, tg.ScopeDepth())

	// Violations inside the interpolation are still found.
	regions := tg.ParseLine(`let s = "count: \(a  ,b)"`)
	require.NotEmpty(t, regions)
	assert.Equal(t, types.MultipleSpaces, regions[0].Kind)
}

func TestUnterminatedStringDiscardsLaterScopes(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine(`let s = "abc ( { [`))
	// Only the string scope survives; the bracket noise inside the literal
	// never really opened.
	assert.Equal(t, 1, tg.ScopeDepth())

	// The next line resumes inside the literal.
	assert.Empty(t, tg.ParseLine(`tail" + x`))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestEscapedQuote(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine(`let s = "say \"hi\""`))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestLineCommentSuppressesChecks(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("foo() // two  spaces and ,misplaced"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestUnbalancedCloserIsIgnored(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("}"))
	assert.Empty(t, tg.ParseLine(")"))
	assert.Empty(t, tg.ParseLine("]"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestTrailingWhitespace(t *testing.T) {
	tg := New(types.Tabs())
	regions := tg.ParseLine("foo() ")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.UnexpectedWhitespace, 5, 6, 0), regions[0])
}

func TestTabInBody(t *testing.T) {
	tg := New(types.Tabs())
	regions := tg.ParseLine("a\tb")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.UnexpectedWhitespace, 1, 2, 1), regions[0])
}

func TestBinaryOperatorMissingSpaces(t *testing.T) {
	tg := New(types.Tabs())
	regions := tg.ParseLine("let x = a+b")
	require.Len(t, regions, 2)
	assert.Equal(t, region(types.MissingSpace, 9, 9, 1), regions[0])
	assert.Equal(t, region(types.MissingSpace, 10, 10, 1), regions[1])
}

func TestPostfixOperatorsNotFlagged(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("let y = x! + z?.count"))
}

func TestTernarySpacing(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("let r = flag ? a : b"))

	regions := tg.ParseLine("let r = flag ? a: b")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.MissingSpace, 16, 16, 1), regions[0])
}

func TestUnterminatedStringInsideInterpolation(t *testing.T) {
	tg := New(types.Tabs())

	// The inner string is left open; the interpolation and both string
	// scopes survive into the next line.
	assert.Empty(t, tg.ParseLine(`let s = "a\("b`))
	assert.Equal(t, 3, tg.ScopeDepth())

	// The continuation closes the inner string, the interpolation, and
	// finally the outer string.
	assert.Empty(t, tg.ParseLine(`c") d"`))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestNilCoalescingOperator(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("let v = a ?? b"))

	regions := tg.ParseLine("let v = a??b")
	require.Len(t, regions, 2)
	assert.Equal(t, region(types.MissingSpace, 9, 9, 1), regions[0])
	assert.Equal(t, region(types.MissingSpace, 11, 11, 1), regions[1])
}

func TestColonSpacing(t *testing.T) {
	tg := New(types.Tabs())
	// No space before, one space after.
	assert.Empty(t, tg.ParseLine("foo(a: 1, b: 2)"))

	regions := tg.ParseLine("foo(a : 1)")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.UnexpectedWhitespace, 5, 6, 0), regions[0])

	regions = tg.ParseLine("foo(a:1)")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.MissingSpace, 6, 6, 1), regions[0])
}

func TestSpaceAfterOpenParen(t *testing.T) {
	tg := New(types.Tabs())
	regions := tg.ParseLine("foo( a)")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.UnexpectedWhitespace, 4, 5, 0), regions[0])
}

func TestBraceInteriorSpaces(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("let f = { x in x }"))
	assert.Empty(t, tg.ParseLine("let g = {}"))

	regions := tg.ParseLine("let h = {x }")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.MissingSpace, 9, 9, 1), regions[0])

	regions = tg.ParseLine("let i = { x}")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.MissingSpace, 11, 11, 1), regions[0])
}

func TestGenericParameterListExempt(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("let m: Dictionary<String,Array<Int>> = [:]"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestComparisonRecoveredByBrace(t *testing.T) {
	tg := New(types.Tabs())
	// a<b reads as a generic list until the brace proves otherwise; the
	// brace scope must still be tracked for the next line's indent.
	assert.Empty(t, tg.ParseLine("if a<b {"))
	assert.Empty(t, tg.ParseLine("\tfoo()"))
	assert.Empty(t, tg.ParseLine("}"))
	assert.Equal(t, 0, tg.ScopeDepth())
}

func TestInvalidCharacterFlaggedEverywhere(t *testing.T) {
	tg := New(types.Tabs())

	regions := tg.ParseLine("foo\x01bar")
	require.Len(t, regions, 1)
	assert.Equal(t, region(types.InvalidCharacter, 3, 4, 0), regions[0])

	// Inside a string literal.
	regions = tg.ParseLine("let s = \"a\x01b\"")
	require.Len(t, regions, 1)
	assert.Equal(t, types.InvalidCharacter, regions[0].Kind)

	// Inside a comment.
	regions = tg.ParseLine("/* a\x01b */")
	require.Len(t, regions, 1)
	assert.Equal(t, types.InvalidCharacter, regions[0].Kind)
}

func TestRegionsSortedByStart(t *testing.T) {
	tg := New(types.Tabs())
	regions := tg.ParseLine("  a+b ,c")
	for i := 1; i < len(regions); i++ {
		assert.LessOrEqual(t, regions[i-1].Start, regions[i].Start)
	}
}

func TestBlankLineInsideScopeIsClean(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("if x {"))
	assert.Empty(t, tg.ParseLine(""))
	assert.Empty(t, tg.ParseLine("\tfoo()"))
	assert.Empty(t, tg.ParseLine("}"))
}

func TestTrailingTerminatorIgnored(t *testing.T) {
	tg := New(types.Tabs())
	assert.Empty(t, tg.ParseLine("let x = 1\n"))
	tg2 := New(types.Tabs())
	assert.Empty(t, tg2.ParseLine("let x = 1\r\n"))
}

func TestMultilineFunctionBody(t *testing.T) {
	tg := New(types.Spaces(4))
	for _, line := range []string{
		"struct Point {",
		"    var x: Int",
		"    var y: Int",
		"",
		"    func scaled(by factor: Int) -> Point {",
		"        return Point(x: x * factor, y: y * factor)",
		"    }",
		"}",
	} {
		assert.Empty(t, tg.ParseLine(line), "line %q", line)
	}
	assert.Equal(t, 0, tg.ScopeDepth())
}
