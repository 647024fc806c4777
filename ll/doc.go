/*
Package ll implements prerequisites for LL(1) parsing: grammars, grammar analysis
and prediction tables.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
productions, consisting of non-terminal symbols and terminals. Terminals are
matched literally against input tokens. Grammars may contain epsilon-productions.

Example:

    b := ll.NewGrammarBuilder("G")
    b.LHS("E").N("T").N("E'").End()           // E  ➞ T E'
    b.LHS("E'").T("+").N("T").N("E'").End()   // E' ➞ + T E'
    b.LHS("E'").Epsilon()                     // E' ➞ ε
    b.LHS("T").T("id").End()                  // T  ➞ id
    g, err := b.Grammar()

This results in the following trivial grammar:

   g.Dump()

   0: [E] ::= [T E']
   1: [E'] ::= [+ T E']
   2: [E'] ::= [ε]
   3: [T] ::= [id]

Alternatively, productions may be added with

    b.AddProduction("E", ll.N("T"), ll.N("E'"))

Static Grammar Analysis

After the grammar is complete, it has to be analysed. Function FirstSets computes
FIRST(A) for every non-terminal A, function FollowSets computes FOLLOW(A). Both are
fixed-point iterations over the productions of the grammar. For convenience,
an LLAnalysis object bundles both:

    ga, err := ll.Analysis(g)
    g.EachNonTerminal(func(A string) interface{} {
        fmt.Printf("FIRST(%s) = %v\n", A, ga.First(A))
        return nil
    })

    // Output:
    FIRST(E) = { id }
    FIRST(E') = { +, ε }
    FIRST(T) = { id }

Prediction Tables

Using grammar analysis as input, a prediction table for a top-down parser can be
constructed. Table construction does not fail for non-LL(1) grammars. Rather,
conflicts are recorded and clients may decide whether to proceed or to reject the
grammar.

    table, err := ll.GenerateTable(g, ga.FirstSets(), ga.FollowSets())
    if table.HasConflicts() {
        for _, c := range table.Conflicts() {
            fmt.Println(table.ConflictError(c))
        }
    }

Package predictive implements a parser driven by prediction tables.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.ll'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.ll")
}
