package ll

import (
	"errors"
	"fmt"
)

// Errors of package ll. Clients should check with errors.Is, as errors will
// usually be wrapped with more detailed information.
var (
	// ErrInvalidGrammar flags a structural defect of a grammar, e.g., a missing
	// starting symbol or a production referencing an undeclared symbol.
	ErrInvalidGrammar = errors.New("invalid grammar")

	// ErrLL1Conflict flags a prediction table entry claimed by more than one
	// production.
	ErrLL1Conflict = errors.New("LL(1) conflict")
)

func invalidGrammar(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidGrammar, fmt.Sprintf(format, args...))
}

// ConflictError is an error describing an LL(1) conflict in detail. Table
// construction never fails because of conflicts. Clients who want to treat them
// as fatal get a ConflictError from Table.Err().
type ConflictError struct {
	NonTerminal  string   // row of the conflicting table entry
	Lookahead    Symbol   // column of the conflicting table entry
	CurrentRHS   []Symbol // RHS which claimed the entry first
	CompetingRHS []Symbol // RHS which claimed the entry as well
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(`LL(1) conflict: entry (%s,%s) is claimed by %s ➞ %v and by %s ➞ %v.
This happens if
  1. there is another production %s ➞ β with %s in FIRST(β), or
  2. %s is in FOLLOW(%s) and there is another production %s ➞ β with ε in FIRST(β).
Check if the grammar is left-recursive or needs left-factoring.`,
		e.NonTerminal, e.Lookahead, e.NonTerminal, e.CurrentRHS, e.NonTerminal, e.CompetingRHS,
		e.NonTerminal, e.Lookahead, e.Lookahead, e.NonTerminal, e.NonTerminal)
}

// Unwrap makes a ConflictError match ErrLL1Conflict.
func (e *ConflictError) Unwrap() error {
	return ErrLL1Conflict
}
