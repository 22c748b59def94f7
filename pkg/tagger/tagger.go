package tagger

import (
	"sort"
	"strings"

	"github.com/mattgallagher/cwlwhitespace/pkg/types"
)

// Tagger tags whitespace violations line by line. One Tagger serves one
// file: the scope stack and automaton state carried between ParseLine calls
// are the only mutable state, so calls must be sequential and in file-line
// order. Independent files get independent Taggers.
type Tagger struct {
	style types.IndentStyle
	stack scopeStack
}

// New creates a tagger for one file with the given indentation style.
func New(style types.IndentStyle) *Tagger {
	return &Tagger{style: style}
}

// Style returns the tagger's indentation style.
func (t *Tagger) Style() types.IndentStyle {
	return t.style
}

// ScopeDepth returns the number of open scopes, exposed for tests and
// diagnostics.
func (t *Tagger) ScopeDepth() int {
	return t.stack.depth()
}

// maxRetries caps epsilon moves per token. The automaton never chains more
// than a handful of non-consuming moves; the cap keeps termination obvious.
const maxRetries = 8

// ParseLine processes one line and returns its violations sorted by start
// column. The text may carry a trailing line terminator, which is ignored.
// Any input yields a valid region list and a valid stack for the next
// line; there is no failure mode.
func (t *Tagger) ParseLine(text string) []types.TaggedRegion {
	line := []rune(trimLineTerminator(text))

	t.stack.startLine()

	p := &lineParser{
		stack: &t.stack,
		style: t.style,
		state: t.entryState(),
	}

	tz := newTokenizer(line)
	tok := tz.next()
	lastState := p.state
	retries := 0
	for {
		retry := p.step(tok)
		if retry {
			// An epsilon move may not repeat the same (state, token) pair,
			// and is capped so any finite line terminates.
			if p.state == lastState || retries >= maxRetries {
				retry = false
			}
			lastState = p.state
			retries++
		}
		if !retry {
			if tok.Kind == tokEOL {
				break
			}
			tok = tz.next()
			lastState = p.state
			retries = 0
		}
	}

	t.stack.endLine()

	sort.SliceStable(p.regions, func(i, j int) bool {
		return p.regions[i].Start < p.regions[j].Start
	})
	return p.regions
}

// entryState resumes the continuation state when a comment or string is
// still open from the previous line; otherwise every line starts with its
// indentation check.
func (t *Tagger) entryState() parseState {
	if t.stack.count(scopeComment) > 0 {
		return stateMultiComment
	}
	if top, ok := t.stack.top(); ok && top == scopeString {
		return stateLiteral
	}
	return stateIndent
}

func trimLineTerminator(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}
