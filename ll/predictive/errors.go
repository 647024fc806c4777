package predictive

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/schuko/gconf"
)

var (
	// ErrGrammarNotLL1 is returned when parsing with a table which has conflicts.
	ErrGrammarNotLL1 = errors.New("grammar is not LL(1)")

	// ErrUnexpectedToken flags a syntax error. Syntax errors are of type *SyntaxError,
	// which will match ErrUnexpectedToken with errors.Is.
	ErrUnexpectedToken = errors.New("unexpected token")
)

// SyntaxError describes the point where parsing had to stop.
type SyntaxError struct {
	Pos      uint64      // position of the offending token, counted in tokens
	Token    string      // lexeme of the offending token; empty at end of input
	AtEnd    bool        // the parser ran out of input
	Top      ll.Symbol   // symbol on top of the parse stack
	Expected []ll.Symbol // lookaheads which would have been acceptable
	Span     ll1.Span    // input span of the offending token, as reported by the scanner
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	if e.AtEnd {
		b.WriteString("syntax error: unexpected end of input")
	} else {
		fmt.Fprintf(&b, "syntax error: unexpected token '%s' at position %d", e.Token, e.Pos)
	}
	switch len(e.Expected) {
	case 0:
	case 1:
		fmt.Fprintf(&b, ", expected %v", e.Expected[0])
	default:
		fmt.Fprintf(&b, ", expected one of %v", e.Expected)
	}
	return b.String()
}

// Unwrap makes a SyntaxError match ErrUnexpectedToken.
func (e *SyntaxError) Unwrap() error {
	return ErrUnexpectedToken
}

func syntaxError(e *SyntaxError) error {
	tracer().Errorf(e.Error())
	if gconf.GetBool("panic-on-syntax-error") {
		panic(`LL(1)-parser stopped at a syntax error.

Configuration flag panic-on-syntax-error is set to true. It is aimed at helping
to debug a grammar and do a post-mortem of why the parser did not accept the
input. However, if this is a production environment and you did not expect this
to panic, please unset panic-on-syntax-error to its default (false).

` + e.Error())
	}
	return e
}
