/*
Package predictive implements a table-driven LL(1) parser.

The parser is a pushdown automaton driven by a prediction table (see package ll).
It reads input from left to right, with a single token of lookahead, and creates
a parse tree. Parsing is linear in the length of the input and never backtracks.

Usage

Clients create a grammar and a prediction table, and hand both to a parser:

    g, _ := b.Grammar()                       // b is an ll.GrammarBuilder
    table, _ := ll.GenerateTable(g, nil, nil) // clients should check table.Err()
    parser, err := predictive.NewParser(g, table)
    …
    tree, err := parser.Parse([]string{"id", "+", "id"})

Input is either a slice of literals or a scanner.Tokenizer. Tokens are matched
by their lexeme: a token matches a terminal if the lexeme equals the terminal's
name.

A parser refuses to parse with a table containing LL(1)-conflicts, unless it is
told to do so with option AllowConflicts(true) or by setting the global
configuration key "allow-ll1-conflicts". If forced, the parser will always choose
the production which has been added to the grammar first.

Parse Trees

Parse trees consist of Nodes, labeled with grammar symbols. Every node covers a
span of input tokens, counted from 0. Epsilon-productions result in a single child
labeled ε, covering an empty span.

Errors

Parsing stops at the first syntax error. Syntax errors are reported as *SyntaxError
and match ErrUnexpectedToken. Setting the global configuration key
"panic-on-syntax-error" will make the parser panic instead, which is helpful
for debugging grammars.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package predictive

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}
