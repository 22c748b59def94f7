package tagger

import "fmt"

// parseState is the automaton state. There is no terminal state: a line
// ends when the end-of-line token is consumed, and the exit state and scope
// stack become the entry conditions for the next line.
type parseState int

const (
	// stateIndent collects the leading whitespace run of a line.
	stateIndent parseState = iota

	// stateInvalidIndent collects a leading run containing the wrong
	// whitespace character or a mix of characters.
	stateInvalidIndent

	// stateIndentEnded has validated the indent and re-presents the first
	// body token.
	stateIndentEnded

	// stateBody expects the start of an expression.
	stateBody

	// stateSpaceBody follows a whitespace run within the body.
	stateSpaceBody

	// stateIdentifierBody follows an operand (identifier, number, closed
	// group, string).
	stateIdentifierBody

	// stateParenBody follows a paren or bracket opener, where whitespace is
	// rejected.
	stateParenBody

	// stateBraceBody follows a brace opener, which requires a space before
	// content.
	stateBraceBody

	// stateAngleBody is inside a generic parameter list, exempt from
	// whitespace rules.
	stateAngleBody

	// statePostfix follows an operator attached to the preceding operand.
	statePostfix

	// statePrefix follows a separator that requires a trailing space.
	statePrefix

	// stateInfix follows an operator preceded by a space.
	stateInfix

	// stateLiteral is inside a string literal.
	stateLiteral

	// stateEscape follows a backslash inside a string literal.
	stateEscape

	// stateLineComment is after // for the remainder of the line.
	stateLineComment

	// stateMultiComment is inside a (possibly nested) block comment.
	stateMultiComment
)

var parseStateNames = map[parseState]string{
	stateIndent:         "indent",
	stateInvalidIndent:  "invalid-indent",
	stateIndentEnded:    "indent-ended",
	stateBody:           "body",
	stateSpaceBody:      "space-body",
	stateIdentifierBody: "identifier-body",
	stateParenBody:      "paren-body",
	stateBraceBody:      "brace-body",
	stateAngleBody:      "angle-body",
	statePostfix:        "postfix",
	statePrefix:         "prefix",
	stateInfix:          "infix",
	stateLiteral:        "literal",
	stateEscape:         "escape",
	stateLineComment:    "line-comment",
	stateMultiComment:   "multi-comment",
}

func (s parseState) String() string {
	if name, ok := parseStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("parse-state-%d", int(s))
}
