// Package tagger implements the whitespace tagging engine: a line tokenizer
// feeding a pushdown automaton that tracks nested lexical scopes across
// lines and emits column-precise whitespace violations, plus the companion
// corrector that rewrites a line from its violations.
package tagger

import "unicode"

// ScalarCategory is the lexical category of a single code point. Every code
// point maps to exactly one category.
type ScalarCategory int

const (
	catSpace ScalarCategory = iota
	catTab
	catOtherWhitespace
	catQuote
	catOpenParen
	catCloseParen
	catOpenBrace
	catCloseBrace
	catOpenBracket
	catCloseBracket
	catOpenAngle
	catCloseAngle
	catBackslash
	catColon
	catComma
	catHash
	catDollar
	catPeriod
	catSemicolon
	catAtSign
	catBacktick
	catQuestionMark
	catDigit
	catIdentifier
	catCombiningMark
	catOperator
	catEndOfLine
	catInvalid
)

// asciiCategories resolves the common case without unicode table lookups.
var asciiCategories [128]ScalarCategory

func init() {
	for i := range asciiCategories {
		asciiCategories[i] = classifySlow(rune(i))
	}
}

// Classify maps one code point to its lexical category. Control characters
// and NUL are invalid, never whitespace or identifier characters. Line
// terminators are recognized only as end-of-line.
func Classify(r rune) ScalarCategory {
	if r >= 0 && r < 128 {
		return asciiCategories[r]
	}
	return classifySlow(r)
}

func classifySlow(r rune) ScalarCategory {
	switch r {
	case ' ':
		return catSpace
	case '\t':
		return catTab
	case '\n', '\r', '\u0085', '\u2028', '\u2029':
		return catEndOfLine
	case '\v', '\f':
		return catOtherWhitespace
	case '"':
		return catQuote
	case '(':
		return catOpenParen
	case ')':
		return catCloseParen
	case '{':
		return catOpenBrace
	case '}':
		return catCloseBrace
	case '[':
		return catOpenBracket
	case ']':
		return catCloseBracket
	case '<':
		return catOpenAngle
	case '>':
		return catCloseAngle
	case '\\':
		return catBackslash
	case ':':
		return catColon
	case ',':
		return catComma
	case '#':
		return catHash
	case '$':
		return catDollar
	case '.':
		return catPeriod
	case ';':
		return catSemicolon
	case '@':
		return catAtSign
	case '`':
		return catBacktick
	case '?':
		return catQuestionMark
	case '_':
		return catIdentifier
	}

	switch {
	case r >= '0' && r <= '9':
		return catDigit
	case r < ' ' || r == 0x7f:
		return catInvalid
	case unicode.IsSpace(r):
		return catOtherWhitespace
	case unicode.IsLetter(r) || unicode.Is(unicode.Nd, r):
		return catIdentifier
	case unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r) || unicode.Is(unicode.Me, r):
		return catCombiningMark
	case unicode.IsControl(r) || !unicode.IsGraphic(r):
		return catInvalid
	default:
		return catOperator
	}
}
