package tagger

import "github.com/mattgallagher/cwlwhitespace/pkg/types"

// lineParser is the per-line view of the automaton: the persistent state
// and stack from the Tagger plus the bookkeeping that lives only for one
// ParseLine call.
type lineParser struct {
	stack   *scopeStack
	style   types.IndentStyle
	state   parseState
	regions []types.TaggedRegion

	// Leading whitespace run under inspection.
	indentStart int
	indentEnd   int
	indentMixed bool

	// Most recent body whitespace run, judged when the next token arrives.
	spaceStart int
	spaceEnd   int

	// Column of the operator that opened the current postfix run.
	opStart int
}

// step consumes one token under the current state and reports whether the
// same token must be re-presented under the new state (an epsilon move).
func (p *lineParser) step(tok Token) bool {
	// Invalid scalars are flagged in every state and never change it.
	if tok.Kind == tokInvalid {
		p.emit(types.InvalidCharacter, tok.Start, tok.End(), 0)
		return false
	}

	switch p.state {
	case stateIndent:
		return p.stepIndent(tok)
	case stateInvalidIndent:
		return p.stepInvalidIndent(tok)
	case stateIndentEnded:
		p.state = stateBody
		return true
	case stateBody:
		return p.stepBody(tok)
	case stateSpaceBody:
		return p.stepSpaceBody(tok)
	case stateIdentifierBody:
		return p.stepIdentifierBody(tok)
	case stateParenBody:
		return p.stepParenBody(tok)
	case stateBraceBody:
		return p.stepBraceBody(tok)
	case stateAngleBody:
		return p.stepAngleBody(tok)
	case statePostfix:
		return p.stepPostfix(tok)
	case statePrefix:
		return p.stepPrefix(tok)
	case stateInfix:
		return p.stepInfix(tok)
	case stateLiteral:
		return p.stepLiteral(tok)
	case stateEscape:
		return p.stepEscape(tok)
	case stateLineComment:
		return false
	case stateMultiComment:
		return p.stepMultiComment(tok)
	}
	return false
}

func (p *lineParser) emit(kind types.RegionKind, start, end, width int) {
	p.regions = append(p.regions, types.TaggedRegion{
		Start:         start,
		End:           end,
		Kind:          kind,
		ExpectedWidth: width,
	})
}

// Indentation states.

func (p *lineParser) stepIndent(tok Token) bool {
	if tok.isWhitespace() {
		if p.indentEnd == p.indentStart {
			p.indentStart = tok.Start
		}
		p.indentEnd = tok.End()
		correct := (p.style.Character == types.IndentTabs && tok.Kind == tokTab) ||
			(p.style.Character == types.IndentSpaces && tok.Kind == tokSpace)
		if !correct {
			p.indentMixed = true
			p.state = stateInvalidIndent
		}
		return false
	}
	p.finishIndent(tok)
	return true
}

func (p *lineParser) stepInvalidIndent(tok Token) bool {
	if tok.isWhitespace() {
		p.indentEnd = tok.End()
		return false
	}
	p.finishIndent(tok)
	return true
}

// finishIndent validates the collected run against the upcoming token and
// moves to indentEnded, re-presenting the token.
func (p *lineParser) finishIndent(next Token) {
	if region, bad := validateIndent(p.stack, p.style, p.indentStart, p.indentEnd, p.indentMixed, next); bad {
		p.regions = append(p.regions, region)
	}
	p.state = stateIndentEnded
}

// Body states.

func (p *lineParser) stepBody(tok Token) bool {
	switch tok.Kind {
	case tokSpace, tokTab, tokOtherWhitespace:
		p.noteSpace(tok)
	case tokEOL:
		// done
	case tokQuote:
		p.stack.push(scopeString)
		p.state = stateLiteral
	case tokOpenParen:
		p.stack.push(scopeParen)
		p.state = stateParenBody
	case tokOpenBracket:
		p.stack.push(scopeBracket)
		p.state = stateParenBody
	case tokOpenBrace:
		p.openBrace()
	case tokOpenAngle, tokCloseAngle, tokOperator:
		p.opStart = tok.Start
		p.state = stateInfix
	case tokCloseParen, tokCloseBracket, tokCloseBrace:
		p.state = p.closeDelimiter(tok)
	case tokComma, tokSemicolon:
		p.state = statePrefix
	case tokColon:
		if p.stack.count(scopeTernary) > 0 {
			p.popTernary()
		}
		p.state = statePrefix
	case tokQuestionMark:
		// A leading ? continues a multi-line ternary.
		p.stack.push(scopeTernary)
		p.state = statePrefix
	case tokSwitch:
		p.stack.push(scopePendingSwitch)
		p.state = stateIdentifierBody
	case tokHashIf:
		p.stack.push(scopeHashIf)
		p.state = stateIdentifierBody
	case tokHashEndif:
		if top, ok := p.stack.top(); ok && top == scopeHashIf {
			p.stack.pop()
		}
		p.state = stateIdentifierBody
	case tokCommentOpen:
		p.stack.push(scopeComment)
		p.state = stateMultiComment
	case tokLineComment:
		p.state = stateLineComment
	default:
		// Identifiers, numbers, keywords without scope effect, periods,
		// attributes, backticks: an operand.
		p.state = stateIdentifierBody
	}
	return false
}

func (p *lineParser) stepSpaceBody(tok Token) bool {
	switch tok.Kind {
	case tokSpace, tokTab, tokOtherWhitespace:
		// A second whitespace run of a different character.
		p.emit(types.UnexpectedWhitespace, tok.Start, tok.End(), 0)
	case tokEOL:
		// Trailing whitespace.
		p.emit(types.UnexpectedWhitespace, p.spaceStart, p.spaceEnd, 0)
	case tokComma, tokSemicolon:
		p.emit(types.UnexpectedWhitespace, p.spaceStart, p.spaceEnd, 0)
		p.state = statePrefix
	case tokColon:
		if p.stack.count(scopeTernary) > 0 {
			p.popTernary()
		} else {
			p.emit(types.UnexpectedWhitespace, p.spaceStart, p.spaceEnd, 0)
		}
		p.state = statePrefix
	case tokQuestionMark:
		p.stack.push(scopeTernary)
		p.state = statePrefix
	case tokOperator, tokOpenAngle, tokCloseAngle:
		p.opStart = tok.Start
		p.state = stateInfix
	case tokQuote:
		p.stack.push(scopeString)
		p.state = stateLiteral
	case tokOpenParen:
		p.stack.push(scopeParen)
		p.state = stateParenBody
	case tokOpenBracket:
		p.stack.push(scopeBracket)
		p.state = stateParenBody
	case tokOpenBrace:
		p.openBrace()
	case tokCloseParen, tokCloseBracket, tokCloseBrace:
		p.state = p.closeDelimiter(tok)
	case tokSwitch:
		p.stack.push(scopePendingSwitch)
		p.state = stateIdentifierBody
	case tokHashIf:
		p.stack.push(scopeHashIf)
		p.state = stateIdentifierBody
	case tokHashEndif:
		if top, ok := p.stack.top(); ok && top == scopeHashIf {
			p.stack.pop()
		}
		p.state = stateIdentifierBody
	case tokCommentOpen:
		p.stack.push(scopeComment)
		p.state = stateMultiComment
	case tokLineComment:
		p.state = stateLineComment
	default:
		p.state = stateIdentifierBody
	}
	return false
}

func (p *lineParser) stepIdentifierBody(tok Token) bool {
	switch tok.Kind {
	case tokSpace, tokTab, tokOtherWhitespace:
		p.noteSpace(tok)
	case tokEOL:
		// done
	case tokQuote:
		p.stack.push(scopeString)
		p.state = stateLiteral
	case tokOpenParen:
		p.stack.push(scopeParen)
		p.state = stateParenBody
	case tokOpenBracket:
		p.stack.push(scopeBracket)
		p.state = stateParenBody
	case tokOpenBrace:
		p.openBrace()
	case tokOpenAngle:
		// Attached to an operand: a generic parameter list.
		p.stack.push(scopeAngle)
		p.state = stateAngleBody
	case tokCloseBrace:
		// Exactly one space is required before a closing brace.
		p.emit(types.MissingSpace, tok.Start, tok.Start, 1)
		p.state = p.closeDelimiter(tok)
	case tokCloseParen, tokCloseBracket:
		p.state = p.closeDelimiter(tok)
	case tokComma, tokSemicolon:
		p.state = statePrefix
	case tokColon:
		if p.stack.count(scopeTernary) > 0 {
			// The ternary colon requires a preceding space.
			p.emit(types.MissingSpace, tok.Start, tok.Start, 1)
			p.popTernary()
		}
		p.state = statePrefix
	case tokQuestionMark, tokCloseAngle, tokOperator:
		p.opStart = tok.Start
		p.state = statePostfix
	case tokSwitch:
		p.stack.push(scopePendingSwitch)
	case tokHashIf:
		p.stack.push(scopeHashIf)
	case tokHashEndif:
		if top, ok := p.stack.top(); ok && top == scopeHashIf {
			p.stack.pop()
		}
	case tokCommentOpen:
		p.stack.push(scopeComment)
		p.state = stateMultiComment
	case tokLineComment:
		p.state = stateLineComment
	default:
		// Further operand material: foo.bar, a1, @objc, `class`.
	}
	return false
}

func (p *lineParser) stepParenBody(tok Token) bool {
	switch tok.Kind {
	case tokSpace, tokTab, tokOtherWhitespace:
		// Whitespace is rejected immediately after the opener.
		p.emit(types.UnexpectedWhitespace, tok.Start, tok.End(), 0)
		return false
	case tokEOL:
		return false
	default:
		p.state = stateBody
		return true
	}
}

func (p *lineParser) stepBraceBody(tok Token) bool {
	switch tok.Kind {
	case tokSpace, tokTab, tokOtherWhitespace:
		p.noteSpace(tok)
		return false
	case tokEOL:
		return false
	case tokCloseBrace:
		// Empty braces need no interior spaces.
		p.state = p.closeDelimiter(tok)
		return false
	default:
		// A brace opener requires a following space.
		p.emit(types.MissingSpace, tok.Start, tok.Start, 1)
		p.state = stateBody
		return true
	}
}

func (p *lineParser) stepAngleBody(tok Token) bool {
	switch tok.Kind {
	case tokOpenAngle:
		p.stack.push(scopeAngle)
	case tokCloseAngle:
		if top, ok := p.stack.top(); ok && top == scopeAngle {
			p.stack.pop()
		}
		if p.stack.count(scopeAngle) == 0 {
			p.state = stateIdentifierBody
		}
	case tokOpenBrace:
		// A brace proves the < was a comparison, not a generic list.
		for {
			top, ok := p.stack.top()
			if !ok || top != scopeAngle {
				break
			}
			p.stack.pop()
		}
		p.state = stateBody
		return true
	default:
		// Generic parameter lists are exempt from whitespace rules.
	}
	return false
}

func (p *lineParser) stepPostfix(tok Token) bool {
	switch tok.Kind {
	case tokSpace, tokTab, tokOtherWhitespace:
		p.noteSpace(tok)
		return false
	case tokOperator, tokQuestionMark, tokCloseAngle:
		// Compound operator keeps accumulating.
		return false
	case tokEOL:
		return false
	case tokIdentifier, tokNumber, tokQuote, tokDollar, tokAtSign, tokBacktick:
		// Operand on both sides: a binary operator missing its spaces.
		p.emit(types.MissingSpace, p.opStart, p.opStart, 1)
		p.emit(types.MissingSpace, tok.Start, tok.Start, 1)
		p.state = stateBody
		return true
	default:
		// Postfix confirmed; the token belongs to the surrounding body.
		p.state = stateBody
		return true
	}
}

func (p *lineParser) stepPrefix(tok Token) bool {
	switch tok.Kind {
	case tokSpace, tokTab, tokOtherWhitespace:
		p.noteSpace(tok)
		return false
	case tokEOL:
		return false
	case tokCloseParen, tokCloseBracket, tokCloseBrace:
		p.state = p.closeDelimiter(tok)
		return false
	case tokPeriod:
		// Optional chaining after a ternary ?.
		p.state = stateIdentifierBody
		return false
	case tokQuestionMark:
		if top, ok := p.stack.top(); ok && top == scopeTernary {
			// Second scalar of ??; not a ternary after all.
			p.stack.pop()
			p.opStart = tok.Start - 1
			p.state = stateInfix
			return false
		}
		p.emit(types.MissingSpace, tok.Start, tok.Start, 1)
		p.state = stateBody
		return true
	default:
		p.emit(types.MissingSpace, tok.Start, tok.Start, 1)
		p.state = stateBody
		return true
	}
}

func (p *lineParser) stepInfix(tok Token) bool {
	switch tok.Kind {
	case tokSpace, tokTab, tokOtherWhitespace:
		p.noteSpace(tok)
		return false
	case tokOperator, tokOpenAngle, tokCloseAngle, tokQuestionMark:
		return false
	case tokEOL:
		return false
	default:
		// The operator was a prefix; the token restarts an operand.
		p.state = stateBody
		return true
	}
}

// Literal states.

func (p *lineParser) stepLiteral(tok Token) bool {
	switch tok.Kind {
	case tokQuote:
		if top, ok := p.stack.top(); ok && top == scopeString {
			p.stack.pop()
		}
		p.state = stateIdentifierBody
	case tokBackslash:
		p.state = stateEscape
	default:
		// Literal content, including EOL for an open-ended string.
	}
	return false
}

func (p *lineParser) stepEscape(tok Token) bool {
	switch tok.Kind {
	case tokOpenParen:
		p.stack.push(scopeInterpolation)
		p.state = stateBody
	case tokEOL:
		p.state = stateLiteral
	default:
		// Any other scalar is an escaped literal character.
		p.state = stateLiteral
	}
	return false
}

// Comment states.

func (p *lineParser) stepMultiComment(tok Token) bool {
	switch tok.Kind {
	case tokCommentOpen:
		p.stack.push(scopeComment)
	case tokCommentClose:
		if top, ok := p.stack.top(); ok && top == scopeComment {
			p.stack.pop()
		}
		if p.stack.count(scopeComment) == 0 {
			p.state = stateIdentifierBody
		}
	default:
		// Comment content is ignored.
	}
	return false
}

// Shared transitions.

// noteSpace records a body whitespace run and flags it when it is already
// known to be wrong: multiple spaces, or a non-space whitespace character.
// Whether a single space is allowed at all is decided by the next token
// from stateSpaceBody.
func (p *lineParser) noteSpace(tok Token) {
	p.spaceStart = tok.Start
	p.spaceEnd = tok.End()
	switch {
	case tok.Kind == tokSpace && tok.Length > 1:
		p.emit(types.MultipleSpaces, tok.Start, tok.End(), 1)
	case tok.Kind != tokSpace:
		p.emit(types.UnexpectedWhitespace, tok.Start, tok.End(), 1)
	}
	p.state = stateSpaceBody
}

// openBrace pushes a brace scope, or converts a pending switch into its
// body scope.
func (p *lineParser) openBrace() {
	if top, ok := p.stack.top(); ok && top == scopePendingSwitch {
		p.stack.pop()
		p.stack.push(scopeSwitch)
	} else {
		p.stack.push(scopeBrace)
	}
	p.state = stateBraceBody
}

// closeDelimiter pops the scope matching a closing delimiter: the live
// scope if it is on top, else its shadowed variant; an unmatched closer is
// ignored, never an error. A paren closing an interpolation returns to the
// enclosing literal.
func (p *lineParser) closeDelimiter(tok Token) parseState {
	top, ok := p.stack.top()
	if !ok {
		return stateIdentifierBody
	}

	switch tok.Kind {
	case tokCloseParen:
		switch top {
		case scopeInterpolation:
			p.stack.pop()
			return stateLiteral
		case scopeParen, scopeShadowedParen:
			p.stack.pop()
		}
	case tokCloseBracket:
		switch top {
		case scopeBracket, scopeShadowedBracket:
			p.stack.pop()
		}
	case tokCloseBrace:
		switch top {
		case scopeBrace, scopeSwitch, scopeShadowedBrace:
			p.stack.pop()
		}
	}
	return stateIdentifierBody
}

// popTernary removes the innermost ternary scope.
func (p *lineParser) popTernary() {
	for i := len(p.stack.entries) - 1; i >= 0; i-- {
		if p.stack.entries[i].kind == scopeTernary {
			p.stack.entries = append(p.stack.entries[:i], p.stack.entries[i+1:]...)
			return
		}
	}
}
