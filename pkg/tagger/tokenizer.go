package tagger

// tokenizer turns one line into a token stream. It is constructed fresh per
// line, reads forward only, and supports a single token of pushback so that
// keyword resolution can fall back to what it has already consumed.
type tokenizer struct {
	runes  []rune
	pos    int
	pushed *Token
}

func newTokenizer(line []rune) *tokenizer {
	return &tokenizer{runes: line}
}

// keywords resolved from identifier runs.
var identKeywords = map[string]TokenKind{
	"case":    tokCase,
	"default": tokDefault,
	"switch":  tokSwitch,
}

// keywords resolved from a '#' followed by an identifier run.
var hashKeywords = map[string]TokenKind{
	"if":     tokHashIf,
	"else":   tokHashElse,
	"elseif": tokHashElseif,
	"endif":  tokHashEndif,
}

// next returns the next token. End of input always yields a well-formed
// tokEOL token; there is no unterminated-token failure.
func (t *tokenizer) next() Token {
	if t.pushed != nil {
		tok := *t.pushed
		t.pushed = nil
		return tok
	}
	if t.pos >= len(t.runes) {
		return Token{Kind: tokEOL, Start: len(t.runes)}
	}

	start := t.pos
	r := t.runes[t.pos]
	cat := Classify(r)

	switch cat {
	case catSpace:
		return t.run(start, tokSpace, catSpace)
	case catTab:
		return t.run(start, tokTab, catTab)
	case catOtherWhitespace:
		return t.run(start, tokOtherWhitespace, catOtherWhitespace)
	case catDigit:
		return t.run(start, tokNumber, catDigit)
	case catInvalid:
		return t.run(start, tokInvalid, catInvalid)
	case catIdentifier, catCombiningMark:
		word := t.identifierRun()
		if kind, ok := identKeywords[word]; ok {
			return Token{Kind: kind, Start: start, Length: t.pos - start}
		}
		return Token{Kind: tokIdentifier, Start: start, Length: t.pos - start}
	case catHash:
		t.pos++
		if t.pos < len(t.runes) && isIdentifierCat(Classify(t.runes[t.pos])) {
			wordStart := t.pos
			word := t.identifierRun()
			if kind, ok := hashKeywords[word]; ok {
				return Token{Kind: kind, Start: start, Length: t.pos - start}
			}
			// Not a keyword: emit the bare hash and push the over-read
			// identifier back as its own token.
			t.push(Token{Kind: tokIdentifier, Start: wordStart, Length: t.pos - wordStart})
		}
		return Token{Kind: tokHash, Start: start, Length: 1}
	case catEndOfLine:
		// Embedded terminators end the line; the tagger never reads past
		// the first one.
		t.pos = len(t.runes)
		return Token{Kind: tokEOL, Start: start}
	case catOperator:
		return t.operator(start, r)
	default:
		t.pos++
		return Token{Kind: singleScalarKinds[cat], Start: start, Length: 1}
	}
}

// push stores one token of pushback.
func (t *tokenizer) push(tok Token) {
	t.pushed = &tok
}

// run consumes a maximal same-category run.
func (t *tokenizer) run(start int, kind TokenKind, cat ScalarCategory) Token {
	for t.pos < len(t.runes) && Classify(t.runes[t.pos]) == cat {
		t.pos++
	}
	return Token{Kind: kind, Start: start, Length: t.pos - start}
}

// identifierRun consumes a maximal identifier run: identifier characters,
// digits after the first scalar, and combining marks.
func (t *tokenizer) identifierRun() string {
	start := t.pos
	for t.pos < len(t.runes) {
		cat := Classify(t.runes[t.pos])
		if cat == catIdentifier || cat == catCombiningMark || (t.pos > start && cat == catDigit) {
			t.pos++
			continue
		}
		break
	}
	return string(t.runes[start:t.pos])
}

// operator resolves the two-scalar compounds with one character of
// lookahead, falling back to a single-scalar operator token.
func (t *tokenizer) operator(start int, r rune) Token {
	t.pos++
	var peek rune
	if t.pos < len(t.runes) {
		peek = t.runes[t.pos]
	}
	switch {
	case r == '/' && peek == '/':
		t.pos++
		return Token{Kind: tokLineComment, Start: start, Length: 2}
	case r == '/' && peek == '*':
		t.pos++
		return Token{Kind: tokCommentOpen, Start: start, Length: 2}
	case r == '*' && peek == '/':
		t.pos++
		return Token{Kind: tokCommentClose, Start: start, Length: 2}
	}
	return Token{Kind: tokOperator, Start: start, Length: 1}
}

func isIdentifierCat(cat ScalarCategory) bool {
	return cat == catIdentifier || cat == catCombiningMark
}

// singleScalarKinds maps the remaining one-scalar categories to their token
// kinds.
var singleScalarKinds = map[ScalarCategory]TokenKind{
	catQuote:        tokQuote,
	catOpenParen:    tokOpenParen,
	catCloseParen:   tokCloseParen,
	catOpenBrace:    tokOpenBrace,
	catCloseBrace:   tokCloseBrace,
	catOpenBracket:  tokOpenBracket,
	catCloseBracket: tokCloseBracket,
	catOpenAngle:    tokOpenAngle,
	catCloseAngle:   tokCloseAngle,
	catBackslash:    tokBackslash,
	catColon:        tokColon,
	catComma:        tokComma,
	catDollar:       tokDollar,
	catPeriod:       tokPeriod,
	catSemicolon:    tokSemicolon,
	catAtSign:       tokAtSign,
	catBacktick:     tokBacktick,
	catQuestionMark: tokQuestionMark,
}
