package ll

import (
	"fmt"

	"github.com/emirpasic/gods/utils"
)

// SymbolKind tags the variants of grammar symbols.
type SymbolKind int8

// Kinds of symbols. The order of the constants is significant for the ordering
// of symbol sets.
const (
	NonTerminalKind SymbolKind = iota
	TerminalKind
	EmptyKind // the empty string ε
	EOFKind   // end of input, lookahead only
)

func (k SymbolKind) String() string {
	switch k {
	case NonTerminalKind:
		return "non-terminal"
	case TerminalKind:
		return "terminal"
	case EmptyKind:
		return "ε"
	case EOFKind:
		return "#eof"
	}
	return fmt.Sprintf("<kind %d>", int(k))
}

// Symbol is a grammar symbol. It is either a terminal, a non-terminal, or one of
// the two sentinels Epsilon and EOF. Symbols are values and compare with ==.
// The sentinels do not carry a name, thus they are never equal to a terminal,
// even if a grammar chooses to call a terminal "ε" or "$".
type Symbol struct {
	Kind SymbolKind
	Name string
}

// Epsilon denotes the empty string.
var Epsilon = Symbol{Kind: EmptyKind}

// EOF is the lookahead at the end of input.
var EOF = Symbol{Kind: EOFKind}

// T creates a terminal symbol.
func T(name string) Symbol {
	return Symbol{Kind: TerminalKind, Name: name}
}

// N creates a non-terminal symbol.
func N(name string) Symbol {
	return Symbol{Kind: NonTerminalKind, Name: name}
}

// IsTerminal is true for terminals. Neither Epsilon nor EOF are terminals.
func (A Symbol) IsTerminal() bool {
	return A.Kind == TerminalKind
}

// IsNonTerminal is true for non-terminals.
func (A Symbol) IsNonTerminal() bool {
	return A.Kind == NonTerminalKind
}

// IsEpsilon is true for the empty-string sentinel.
func (A Symbol) IsEpsilon() bool {
	return A.Kind == EmptyKind
}

// IsEOF is true for the end-of-input sentinel.
func (A Symbol) IsEOF() bool {
	return A.Kind == EOFKind
}

func (A Symbol) String() string {
	switch A.Kind {
	case EmptyKind:
		return "ε"
	case EOFKind:
		return "#eof"
	}
	return A.Name
}

// symbolComparator orders symbols by kind, then by name. We need this for
// the tree sets of FIRST and FOLLOW.
func symbolComparator(s1, s2 interface{}) int {
	A := s1.(Symbol)
	B := s2.(Symbol)
	if A.Kind != B.Kind {
		return utils.IntComparator(int(A.Kind), int(B.Kind))
	}
	return utils.StringComparator(A.Name, B.Name)
}
