/*
Package ll1 is an LL(1) parsing toolbox.

LL1 analyses context-free grammars and builds predictive parsers for them,
provided the grammar is LL(1). Clients are able to construct a grammar, compute
FIRST and FOLLOW sets, generate a prediction table and parse input in a couple of
lines of code, without a code-generation or compile step. Package structure is
as follows:

■ ll: Package ll implements grammars, grammar analysis (FIRST and FOLLOW sets) and
the construction of LL(1) prediction tables, including conflict detection.

■ ll/predictive: Package predictive implements a table-driven LL(1) parser creating
parse trees.

■ ll/scanner: Package scanner defines an interface for tokenizers feeding the parser,
together with default implementations.

■ ll/gramload: Package gramload reads grammar definitions from text or JSON.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1
