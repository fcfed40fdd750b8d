// Package cli is the interactive front end: line buffering with
// bracket-balance completion detection, classification of a ready
// submission, and the `:`-prefixed meta-commands layered on top of
// session.Session. It is a REPL front end living outside internal/,
// wired from cmd/oolang, and uses mattn/go-isatty to tell an
// interactive terminal from a piped script.
package cli

import (
	"strings"

	"github.com/oolang/oolang/internal/lexer"
	"github.com/oolang/oolang/internal/token"
)

// State is the front end's Idle → Collecting → Ready submission state
// machine.
type State int

const (
	Idle State = iota
	Collecting
	Ready
)

func (s State) String() string {
	switch s {
	case Collecting:
		return "collecting"
	case Ready:
		return "ready"
	default:
		return "idle"
	}
}

// Collector accumulates input lines and reports Ready once the buffered
// text is non-empty and its brace depth has returned to zero.
// Re-lexing the whole buffer on every line (rather than
// scanning raw characters) means braces inside string/char literals or
// comments never confuse the depth count, since the lexer already
// strips those out.
type Collector struct {
	lines []string
}

// NewCollector returns an empty Collector in the Idle state.
func NewCollector() *Collector { return &Collector{} }

// Feed appends line to the buffer and returns the resulting state.
func (c *Collector) Feed(line string) State {
	c.lines = append(c.lines, line)
	return c.state()
}

func (c *Collector) state() State {
	text := strings.TrimSpace(c.Source())
	if text == "" {
		return Idle
	}
	if braceDepth(c.Source()) > 0 {
		return Collecting
	}
	return Ready
}

// Source returns the buffered text accumulated so far.
func (c *Collector) Source() string {
	return strings.Join(c.lines, "\n")
}

// Reset clears the buffer, returning to Idle — called once a Ready
// submission has been consumed.
func (c *Collector) Reset() {
	c.lines = c.lines[:0]
}

// braceDepth lexes source and returns the running count of `{` tokens
// minus `}` tokens seen; a well-formed, complete submission always
// settles back to zero once every block it opened has been closed.
func braceDepth(source string) int {
	l := lexer.New(source)
	depth := 0
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			return depth
		}
		switch tok.Kind {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
		}
	}
}
