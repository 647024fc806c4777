/*
Package llrepl/main provides an interactive command line tool (LL.REPL)
for experimenting with LL(1) grammars. LL.REPL loads a grammar, prints its
FIRST and FOLLOW sets together with the prediction table, and then parses lines
of input, showing the resulting parse trees.

Usage:

    llrepl [-trace level] [-grammar file] [-tokens literal|go] [input …]

Without a grammar file, a grammar for arithmetic expressions is used. Commands
start with a colon: ":first", ":follow", ":table", ":grammar" and ":quit".
Every other line is taken as input to parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.repl'
func tracer() tracing.Trace {
	return tracing.Select("ll1.repl")
}
