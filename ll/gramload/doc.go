/*
Package gramload reads grammar definitions from text or from JSON.

Text Format

Grammars are written as a list of rules, each terminated by a semicolon.
Alternatives are separated by '|', the empty string is written as 'ε' (or left out
altogether). Comments start with '#' and extend to the end of the line:

    # arithmetic expressions
    E  -> T E' ;
    E' -> + T E' | ε ;
    T  -> F T' ;
    T' -> * F T' | ε ;
    F  -> '(' E ')' | id ;

Symbols have to be separated by whitespace. A symbol is a non-terminal if and only
if it appears on the left side of a rule, all other symbols are terminals. Quoted
symbols are always terminals; this is the way to write terminals containing one
of the characters of the rule syntax. The left side of the first rule is the
starting symbol of the grammar. Instead of '->' an arrow '➞' may be used.

The text format is itself described by an LL(1) grammar and read with a
predictive parser of this module.

JSON Format

    {
      "name": "Expressions",
      "start": "E",
      "productions": [
        { "lhs": "E",  "rhs": [ "T", "E'" ] },
        { "lhs": "E'", "rhs": [ "+", "T", "E'" ] },
        { "lhs": "E'", "rhs": [] },
        …
      ]
    }

The same classification of symbols applies as for the text format. An element
of a right hand side may be given as an object { "t": "name" } to force a terminal.
If "start" is missing, the left side of the first production is the starting
symbol.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gramload

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.gramload'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.gramload")
}
