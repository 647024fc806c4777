package ll1

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to scanners to define them. The only category a parser relies on is the
// end-of-input category of package scanner.
type TokType int

// Token represents an input token. Tokens are usually produced by a scanner and
// reflect terminals of a grammar. LL(1) parsers of this module match tokens
// literally: the lexeme of a token has to equal the name of a terminal.
//
// An example would be a token for an identifier, where the grammar matches
// identifiers with terminal "id":
//
//    TokType = Ident       // category of the token (scanner specific)
//    Lexeme  = "id"        // the string the parser will match against terminals
//    Text    = "counter"   // text as it appeared in the input stream
//    Span    = 67…74       // occured from position 67 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Text() string
	Span() Span
}

// TokenRetriever is a type for getting tokens at an input position.
// Parse trees only store token positions; clients needing the original input text
// (e.g., for building an AST) retrieve it with a TokenRetriever.
type TokenRetriever func(uint64) Token

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. For every
// terminal and non-terminal, a parse tree will track which input positions
// this symbol covers. A span denotes a start position and the position just
// behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull is true for a span covering no input. This is the case for epsilon
// derivations.
func (s Span) IsNull() bool {
	return s[0] == s[1]
}

// Extend returns a span covering s as well as other.
func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
