package ll

import (
	"bytes"
	"fmt"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/slices"
)

// Production is a grammar rule
//
//    LHS ➞ RHS
//
// where LHS is a non-terminal and RHS is a sequence of symbols. The RHS of an
// epsilon-production is [ε].
type Production struct {
	Serial int    // position of the production within its grammar
	LHS    string // name of the left hand side non-terminal
	rhs    []Symbol
}

// RHS returns the right hand side symbols of a production.
func (p *Production) RHS() []Symbol {
	return append([]Symbol(nil), p.rhs...)
}

// IsEpsilon is true for a production LHS ➞ ε.
func (p *Production) IsEpsilon() bool {
	return len(p.rhs) == 1 && p.rhs[0].IsEpsilon()
}

func (p *Production) String() string {
	var b bytes.Buffer
	b.WriteString(p.LHS)
	b.WriteString(" ➞")
	for _, A := range p.rhs {
		b.WriteString(" ")
		b.WriteString(A.String())
	}
	return b.String()
}

func (p *Production) equals(lhs string, rhs []Symbol) bool {
	return p.LHS == lhs && slices.Equal(p.rhs, rhs)
}

func newProduction(lhs string, rhs []Symbol) *Production {
	if len(rhs) == 0 {
		rhs = []Symbol{Epsilon}
	}
	return &Production{LHS: lhs, rhs: append([]Symbol(nil), rhs...)}
}

// Grammar is a context-free grammar. Grammars are immutable and constructed with
// a GrammarBuilder or with NewGrammar.
type Grammar struct {
	Name         string
	start        string
	terminals    *treeset.Set // of string
	nonterminals *treeset.Set // of string
	productions  []*Production
}

func emptyGrammar(name string) *Grammar {
	return &Grammar{
		Name:         name,
		terminals:    treeset.NewWith(utils.StringComparator),
		nonterminals: treeset.NewWith(utils.StringComparator),
	}
}

// NewGrammar creates a grammar from its parts. Serials of the productions are
// re-assigned and duplicate productions are dropped. NewGrammar checks that every
// symbol is declared: the starting symbol and every non-terminal appearing in a
// production have to be contained in nonterminals, every terminal has to be
// contained in terminals. Otherwise ErrInvalidGrammar is returned.
func NewGrammar(name, start string, terminals, nonterminals []string,
	productions []Production) (*Grammar, error) {
	//
	g := emptyGrammar(name)
	g.start = start
	for _, a := range terminals {
		g.terminals.Add(a)
	}
	for _, A := range nonterminals {
		g.nonterminals.Add(A)
	}
	for _, p := range productions {
		g.addProduction(p.LHS, p.rhs)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// addProduction appends a production, if not already present, and returns it.
func (g *Grammar) addProduction(lhs string, rhs []Symbol) *Production {
	p := newProduction(lhs, rhs)
	for _, q := range g.productions {
		if q.equals(p.LHS, p.rhs) {
			return q
		}
	}
	p.Serial = len(g.productions)
	g.productions = append(g.productions, p)
	return p
}

func (g *Grammar) validate() error {
	if g.start == "" {
		return invalidGrammar("grammar %q has no starting symbol", g.Name)
	}
	if !g.nonterminals.Contains(g.start) {
		return invalidGrammar("starting symbol %s is not a non-terminal", g.start)
	}
	for _, p := range g.productions {
		if !g.nonterminals.Contains(p.LHS) {
			return invalidGrammar("non-terminal %s on left side of %v is not declared", p.LHS, p)
		}
		for _, A := range p.rhs {
			switch A.Kind {
			case NonTerminalKind:
				if !g.nonterminals.Contains(A.Name) {
					return invalidGrammar("non-terminal %s in %v is not declared", A, p)
				}
			case TerminalKind:
				if !g.terminals.Contains(A.Name) {
					return invalidGrammar("terminal %s in %v is not declared", A, p)
				}
			case EOFKind:
				return invalidGrammar("#eof may not appear in a production: %v", p)
			}
		}
	}
	return nil
}

// StartingSymbol returns the name of the starting symbol of g.
func (g *Grammar) StartingSymbol() string {
	return g.start
}

// Terminals returns the names of all terminals of g, sorted.
func (g *Grammar) Terminals() []string {
	return stringValues(g.terminals)
}

// NonTerminals returns the names of all non-terminals of g, sorted.
func (g *Grammar) NonTerminals() []string {
	return stringValues(g.nonterminals)
}

// IsTerminal checks if a is the name of a terminal of g.
func (g *Grammar) IsTerminal(a string) bool {
	return g.terminals.Contains(a)
}

// IsNonTerminal checks if A is the name of a non-terminal of g.
func (g *Grammar) IsNonTerminal(A string) bool {
	return g.nonterminals.Contains(A)
}

// Size returns the number of productions of g.
func (g *Grammar) Size() int {
	return len(g.productions)
}

// Production returns production number n, or nil if n is out of range.
func (g *Grammar) Production(n int) *Production {
	if n < 0 || n >= len(g.productions) {
		return nil
	}
	return g.productions[n]
}

// Productions returns all productions of g, ordered by serial.
func (g *Grammar) Productions() []*Production {
	return append([]*Production(nil), g.productions...)
}

// ProductionsFor returns the productions with left hand side A.
func (g *Grammar) ProductionsFor(A string) []*Production {
	var prods []*Production
	for _, p := range g.productions {
		if p.LHS == A {
			prods = append(prods, p)
		}
	}
	return prods
}

// EachNonTerminal iterates over all non-terminals of g, calling mapper for each.
// Results of mapper are collected and returned.
func (g *Grammar) EachNonTerminal(mapper func(A string) interface{}) []interface{} {
	var r []interface{}
	for _, A := range g.NonTerminals() {
		r = append(r, mapper(A))
	}
	return r
}

// Dump is a debugging helper. It traces the productions of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- %s --------------------------------------------", g.Name)
	tracer().Debugf("start = %s", g.start)
	for _, p := range g.productions {
		tracer().Debugf("%3d: [%s] ::= %v", p.Serial, p.LHS, p.rhs)
	}
	tracer().Debugf("-------------------------------------------------------")
}

// fingerprint is the structure we hash for grammar fingerprints. structhash
// considers exported fields only.
type fingerprint struct {
	Start        string
	Terminals    []string
	NonTerminals []string
	Productions  [][]string
}

// Fingerprint returns a hash over the structure of g (not considering its name).
// Grammars with equal fingerprints will produce equal analysis results and
// equal prediction tables.
func (g *Grammar) Fingerprint() string {
	fp := fingerprint{
		Start:        g.start,
		Terminals:    g.Terminals(),
		NonTerminals: g.NonTerminals(),
	}
	for _, p := range g.productions {
		prod := []string{p.LHS}
		for _, A := range p.rhs {
			prod = append(prod, fmt.Sprintf("%d:%s", A.Kind, A.Name))
		}
		fp.Productions = append(fp.Productions, prod)
	}
	h, err := structhash.Hash(fp, 1)
	if err != nil { // cannot happen for this structure
		panic(fmt.Sprintf("cannot hash grammar %q: %v", g.Name, err))
	}
	return h
}

func stringValues(set *treeset.Set) []string {
	r := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		r = append(r, v.(string))
	}
	return r
}

// === Grammar Builder =======================================================

// GrammarBuilder is a mutable builder for grammars. Clients either add
// productions with AddProduction, or use the fluent rule API:
//
//    b := ll.NewGrammarBuilder("G")
//    b.LHS("E").N("T").N("E'").End()            // E  ➞ T E'
//    b.LHS("E'").T("+").N("T").N("E'").End()    // E' ➞ + T E'
//    b.LHS("E'").Epsilon()                      // E' ➞ ε
//    g, err := b.Grammar()
//
// With the fluent API, the first left hand side non-terminal becomes the starting
// symbol, unless it is set explicitly. AddProduction never sets a starting symbol.
type GrammarBuilder struct {
	g   *Grammar
	err error
}

// NewGrammarBuilder creates a builder for a grammar with a given name.
func NewGrammarBuilder(name string) *GrammarBuilder {
	return &GrammarBuilder{g: emptyGrammar(name)}
}

// AddProduction adds a production lhs ➞ rhs. lhs is registered as a non-terminal,
// symbols of rhs are registered as terminals or non-terminals, depending on
// their kind. If rhs is empty, an epsilon-production is added.
// Adding a production twice has no effect.
func (b *GrammarBuilder) AddProduction(lhs string, rhs ...Symbol) *GrammarBuilder {
	b.add(lhs, rhs)
	return b
}

func (b *GrammarBuilder) add(lhs string, rhs []Symbol) *Production {
	if lhs == "" {
		b.fail(invalidGrammar("production with empty left hand side"))
	}
	b.g.nonterminals.Add(lhs)
	for _, A := range rhs {
		switch A.Kind {
		case NonTerminalKind:
			b.g.nonterminals.Add(A.Name)
		case TerminalKind:
			b.g.terminals.Add(A.Name)
		case EOFKind:
			b.fail(invalidGrammar("#eof may not appear on the right side of %s", lhs))
		}
	}
	return b.g.addProduction(lhs, rhs)
}

func (b *GrammarBuilder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// SetStartingSymbol sets the starting symbol of the grammar, registering it as
// a non-terminal.
func (b *GrammarBuilder) SetStartingSymbol(name string) *GrammarBuilder {
	if name == "" {
		b.fail(invalidGrammar("empty starting symbol"))
		return b
	}
	b.g.start = name
	b.g.nonterminals.Add(name)
	return b
}

// Grammar returns an immutable snapshot of the grammar built so far.
// It fails with ErrInvalidGrammar if no starting symbol is present.
func (b *GrammarBuilder) Grammar() (*Grammar, error) {
	if b.err != nil {
		return nil, b.err
	}
	g := emptyGrammar(b.g.Name)
	g.start = b.g.start
	for _, a := range b.g.Terminals() {
		g.terminals.Add(a)
	}
	for _, A := range b.g.NonTerminals() {
		g.nonterminals.Add(A)
	}
	for _, p := range b.g.productions {
		g.addProduction(p.LHS, p.rhs)
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// LHS starts a new production with left hand side A.
func (b *GrammarBuilder) LHS(A string) *RuleBuilder {
	if b.g.start == "" {
		b.g.start = A
		b.g.nonterminals.Add(A)
	}
	return &RuleBuilder{b: b, lhs: A}
}

// RuleBuilder collects the right hand side of a production.
type RuleBuilder struct {
	b   *GrammarBuilder
	lhs string
	rhs []Symbol
}

// N appends a non-terminal to the right hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, N(name))
	return rb
}

// T appends a terminal to the right hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	rb.rhs = append(rb.rhs, T(name))
	return rb
}

// End adds the production to the grammar and returns it.
func (rb *RuleBuilder) End() *Production {
	return rb.b.add(rb.lhs, rb.rhs)
}

// Epsilon adds an epsilon-production LHS ➞ ε to the grammar and returns it.
// Symbols collected so far are discarded.
func (rb *RuleBuilder) Epsilon() *Production {
	return rb.b.add(rb.lhs, []Symbol{Epsilon})
}
