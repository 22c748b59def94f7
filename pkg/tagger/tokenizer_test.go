package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lex(line string) []Token {
	tz := newTokenizer([]rune(line))
	var toks []Token
	for {
		tok := tz.next()
		toks = append(toks, tok)
		if tok.Kind == tokEOL {
			return toks
		}
	}
}

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizerRuns(t *testing.T) {
	toks := lex("foo   bar12")
	assert.Equal(t, []TokenKind{tokIdentifier, tokSpace, tokIdentifier, tokEOL}, kinds(toks))
	assert.Equal(t, Token{Kind: tokSpace, Start: 3, Length: 3}, toks[1])
	assert.Equal(t, Token{Kind: tokIdentifier, Start: 6, Length: 5}, toks[2])
}

func TestTokenizerKeywords(t *testing.T) {
	tests := []struct {
		line string
		want TokenKind
	}{
		{"case", tokCase},
		{"default", tokDefault},
		{"switch", tokSwitch},
	}
	for _, tt := range tests {
		toks := lex(tt.line)
		require.Len(t, toks, 2, tt.line)
		assert.Equal(t, tt.want, toks[0].Kind, tt.line)
		assert.Equal(t, len(tt.line), toks[0].Length, tt.line)
	}
}

func TestTokenizerKeywordPrefixIsIdentifier(t *testing.T) {
	// An identifier that merely begins with a keyword resolves to the
	// whole run, never a truncated keyword.
	for _, line := range []string{"caseload", "switching", "defaults", "case2"} {
		toks := lex(line)
		require.Len(t, toks, 2, line)
		assert.Equal(t, tokIdentifier, toks[0].Kind, line)
		assert.Equal(t, len(line), toks[0].Length, line)
	}
}

func TestTokenizerHashKeywords(t *testing.T) {
	tests := []struct {
		line string
		want TokenKind
	}{
		{"#if", tokHashIf},
		{"#else", tokHashElse},
		{"#elseif", tokHashElseif},
		{"#endif", tokHashEndif},
	}
	for _, tt := range tests {
		toks := lex(tt.line)
		require.Len(t, toks, 2, tt.line)
		assert.Equal(t, tt.want, toks[0].Kind, tt.line)
		assert.Equal(t, len(tt.line), toks[0].Length, tt.line)
	}
}

func TestTokenizerHashFallback(t *testing.T) {
	// #selector is a bare hash followed by an identifier; the over-read
	// identifier comes back via the one-token pushback.
	toks := lex("#selector")
	require.Len(t, toks, 3)
	assert.Equal(t, Token{Kind: tokHash, Start: 0, Length: 1}, toks[0])
	assert.Equal(t, Token{Kind: tokIdentifier, Start: 1, Length: 8}, toks[1])
}

func TestTokenizerCompounds(t *testing.T) {
	toks := lex("/* */ // /")
	assert.Equal(t, []TokenKind{
		tokCommentOpen, tokSpace, tokCommentClose, tokSpace,
		tokLineComment, tokSpace, tokOperator, tokEOL,
	}, kinds(toks))
}

func TestTokenizerCompoundFallback(t *testing.T) {
	toks := lex("/x*y")
	assert.Equal(t, []TokenKind{tokOperator, tokIdentifier, tokOperator, tokIdentifier, tokEOL}, kinds(toks))
}

func TestTokenizerSingleScalars(t *testing.T) {
	toks := lex(`(){}[]<>\:,.;@?$`)
	assert.Equal(t, []TokenKind{
		tokOpenParen, tokCloseParen, tokOpenBrace, tokCloseBrace,
		tokOpenBracket, tokCloseBracket, tokOpenAngle, tokCloseAngle,
		tokBackslash, tokColon, tokComma, tokPeriod, tokSemicolon,
		tokAtSign, tokQuestionMark, tokDollar, tokEOL,
	}, kinds(toks))
}

func TestTokenizerInvalidRun(t *testing.T) {
	toks := lex("a\x00\x01b")
	require.Len(t, toks, 4)
	assert.Equal(t, Token{Kind: tokInvalid, Start: 1, Length: 2}, toks[1])
}

func TestTokenizerEmptyLine(t *testing.T) {
	toks := lex("")
	require.Len(t, toks, 1)
	assert.Equal(t, tokEOL, toks[0].Kind)
}

func TestTokenizerEmbeddedTerminatorEndsLine(t *testing.T) {
	toks := lex("ab\ncd")
	assert.Equal(t, []TokenKind{tokIdentifier, tokEOL}, kinds(toks))
}

func TestClassifyTotality(t *testing.T) {
	// Control characters and NUL are invalid, never whitespace or
	// identifier characters.
	assert.Equal(t, catInvalid, Classify(0))
	assert.Equal(t, catInvalid, Classify(0x1b))
	assert.Equal(t, catInvalid, Classify(0x7f))
	assert.Equal(t, catSpace, Classify(' '))
	assert.Equal(t, catTab, Classify('\t'))
	assert.Equal(t, catOtherWhitespace, Classify('\u00a0'))
	assert.Equal(t, catEndOfLine, Classify('\n'))
	assert.Equal(t, catEndOfLine, Classify('\u2028'))
	assert.Equal(t, catIdentifier, Classify('_'))
	assert.Equal(t, catIdentifier, Classify('é'))
	assert.Equal(t, catDigit, Classify('7'))
	assert.Equal(t, catOperator, Classify('+'))
	assert.Equal(t, catCombiningMark, Classify('\u0301'))
}
