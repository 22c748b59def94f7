package tagger

import "fmt"

// TokenKind is the lexical category of one token in a line.
type TokenKind int

const (
	tokEOL TokenKind = iota

	// Aggregated runs.
	tokSpace
	tokTab
	tokOtherWhitespace
	tokNumber
	tokIdentifier
	tokInvalid

	// Single scalars.
	tokQuote
	tokOpenParen
	tokCloseParen
	tokOpenBrace
	tokCloseBrace
	tokOpenBracket
	tokCloseBracket
	tokOpenAngle
	tokCloseAngle
	tokBackslash
	tokColon
	tokComma
	tokHash
	tokDollar
	tokPeriod
	tokSemicolon
	tokAtSign
	tokBacktick
	tokQuestionMark
	tokOperator

	// Compound operators.
	tokCommentOpen  // /*
	tokCommentClose // */
	tokLineComment  // //

	// Keywords.
	tokCase
	tokDefault
	tokSwitch
	tokHashIf
	tokHashElse
	tokHashElseif
	tokHashEndif
)

var tokenKindNames = map[TokenKind]string{
	tokEOL:             "eol",
	tokSpace:           "space",
	tokTab:             "tab",
	tokOtherWhitespace: "other-whitespace",
	tokNumber:          "number",
	tokIdentifier:      "identifier",
	tokInvalid:         "invalid",
	tokQuote:           "quote",
	tokOpenParen:       "open-paren",
	tokCloseParen:      "close-paren",
	tokOpenBrace:       "open-brace",
	tokCloseBrace:      "close-brace",
	tokOpenBracket:     "open-bracket",
	tokCloseBracket:    "close-bracket",
	tokOpenAngle:       "open-angle",
	tokCloseAngle:      "close-angle",
	tokBackslash:       "backslash",
	tokColon:           "colon",
	tokComma:           "comma",
	tokHash:            "hash",
	tokDollar:          "dollar",
	tokPeriod:          "period",
	tokSemicolon:       "semicolon",
	tokAtSign:          "at-sign",
	tokBacktick:        "backtick",
	tokQuestionMark:    "question-mark",
	tokOperator:        "operator",
	tokCommentOpen:     "comment-open",
	tokCommentClose:    "comment-close",
	tokLineComment:     "line-comment",
	tokCase:            "case",
	tokDefault:         "default",
	tokSwitch:          "switch",
	tokHashIf:          "#if",
	tokHashElse:        "#else",
	tokHashElseif:      "#elseif",
	tokHashEndif:       "#endif",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("token-kind-%d", int(k))
}

// Token is one lexical unit with its rune-column span within the line.
type Token struct {
	Kind   TokenKind
	Start  int
	Length int
}

// End returns the exclusive end column of the token.
func (t Token) End() int {
	return t.Start + t.Length
}

// isWhitespace reports whether the token is a whitespace run.
func (t Token) isWhitespace() bool {
	return t.Kind == tokSpace || t.Kind == tokTab || t.Kind == tokOtherWhitespace
}
