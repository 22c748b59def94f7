package tagger

import "fmt"

// ScopeKind identifies one nested lexical context tracked on the scope
// stack.
type ScopeKind int

const (
	scopeString ScopeKind = iota
	scopeComment
	scopeInterpolation
	scopeParen
	scopeBrace
	scopeBracket
	scopeAngle
	scopeHashIf
	scopeSwitch        // a switch body: enables the case/default indent exception
	scopePendingSwitch // between the switch keyword and its opening brace
	scopeTernary

	// Shadowed variants: still require a closer, but do not count toward
	// next-line indentation.
	scopeShadowedParen
	scopeShadowedBrace
	scopeShadowedBracket
)

var scopeKindNames = map[ScopeKind]string{
	scopeString:          "string",
	scopeComment:         "comment",
	scopeInterpolation:   "interpolation",
	scopeParen:           "paren",
	scopeBrace:           "brace",
	scopeBracket:         "bracket",
	scopeAngle:           "angle",
	scopeHashIf:          "conditional-compilation",
	scopeSwitch:          "switch-body",
	scopePendingSwitch:   "pending-switch",
	scopeTernary:         "ternary",
	scopeShadowedParen:   "shadowed-paren",
	scopeShadowedBrace:   "shadowed-brace",
	scopeShadowedBracket: "shadowed-bracket",
}

func (k ScopeKind) String() string {
	if name, ok := scopeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("scope-kind-%d", int(k))
}

// shadowed returns the shadowed variant for kinds that have one.
func (k ScopeKind) shadowed() (ScopeKind, bool) {
	switch k {
	case scopeParen:
		return scopeShadowedParen, true
	case scopeBrace:
		return scopeShadowedBrace, true
	case scopeBracket:
		return scopeShadowedBracket, true
	default:
		return k, false
	}
}

// countsTowardIndent reports whether an open scope of this kind adds one
// expected indentation level to following lines.
func (k ScopeKind) countsTowardIndent() bool {
	switch k {
	case scopeParen, scopeBrace, scopeHashIf, scopeSwitch:
		return true
	default:
		return false
	}
}

// scope is one stack entry. line-local bookkeeping (pushedThisLine) drives
// the end-of-line shadowing pass and is reset on every ParseLine call.
type scope struct {
	kind           ScopeKind
	pushedThisLine bool
}

// scopeStack is a plain push/pop sequence of scope tags, innermost last,
// owned by exactly one Tagger.
type scopeStack struct {
	entries []scope
}

func (s *scopeStack) push(kind ScopeKind) {
	s.entries = append(s.entries, scope{kind: kind, pushedThisLine: true})
}

func (s *scopeStack) pop() (ScopeKind, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top.kind, true
}

// top returns the innermost scope kind.
func (s *scopeStack) top() (ScopeKind, bool) {
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.entries[len(s.entries)-1].kind, true
}

// count returns the number of open scopes of the given kind.
func (s *scopeStack) count(kind ScopeKind) int {
	n := 0
	for _, e := range s.entries {
		if e.kind == kind {
			n++
		}
	}
	return n
}

// indentDepth is the expected indentation level: open non-shadowed scopes
// of the counting kinds.
func (s *scopeStack) indentDepth() int {
	depth := 0
	for _, e := range s.entries {
		if e.kind.countsTowardIndent() {
			depth++
		}
	}
	return depth
}

func (s *scopeStack) depth() int {
	return len(s.entries)
}

// startLine clears the per-line bookkeeping before a new line is parsed.
func (s *scopeStack) startLine() {
	for i := range s.entries {
		s.entries[i].pushedThisLine = false
	}
}

// endLine normalizes the stack after a line: scopes opened inside an
// unterminated string literal never really happened, and of the scopes a
// single line leaves open for one kind, only the last contributes to
// indentation while the earlier ones become shadowed.
func (s *scopeStack) endLine() {
	// An open string discards everything opened after it. The unterminated
	// string is the innermost one, so search from the top: an interpolation
	// can hold a nested string with more scopes below.
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].kind == scopeString {
			s.entries = s.entries[:i+1]
			break
		}
	}

	// Generic parameter lists and ternaries do not span lines.
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.kind == scopeAngle || e.kind == scopeTernary {
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept

	// Shadow all but the last same-kind scope this line left open.
	seen := map[ScopeKind]int{}
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if !e.pushedThisLine {
			continue
		}
		if sh, ok := e.kind.shadowed(); ok {
			seen[e.kind]++
			if seen[e.kind] > 1 {
				s.entries[i].kind = sh
			}
		}
	}
}
