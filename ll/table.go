package ll

import (
	"fmt"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/ll1/ll/sparse"
)

// Conflict denotes a prediction table entry (A,a) which is claimed by more than
// one production.
type Conflict struct {
	NonTerminal string
	Lookahead   Symbol
}

func (c Conflict) String() string {
	return fmt.Sprintf("(%s,%s)", c.NonTerminal, c.Lookahead)
}

// Table is an LL(1) prediction table. Rows are the non-terminals of a grammar,
// columns are its terminals plus #eof. An entry holds the productions to predict
// for a non-terminal on top of the parse stack, given a lookahead. For LL(1)
// grammars every entry holds at most one production.
//
// Tables are immutable. They may be shared by parsers running concurrently.
type Table struct {
	fingerprint string
	start       string
	rows        map[string]int
	cols        map[Symbol]int
	nonterms    []string
	lookaheads  []Symbol
	productions []*Production
	matrix      *sparse.IntMatrix
	conflicts   *arraylist.List // of Conflict, in order of detection
}

// GenerateTable creates the prediction table for a grammar.
// Clients may provide FIRST- and FOLLOW-sets computed beforehand. If either is
// nil, it will be computed.
//
// GenerateTable will not fail for grammars which are not LL(1). Conflicting
// productions are collected in the table entry and the entry is recorded as a
// conflict. Clients decide how to proceed, either by inspecting Table.Conflicts(),
// or by treating Table.Err() as fatal.
func GenerateTable(g *Grammar, firsts, follows SymbolSets) (*Table, error) {
	var err error
	if firsts == nil {
		if firsts, err = FirstSets(g); err != nil {
			return nil, err
		}
	}
	if follows == nil {
		if follows, err = FollowSets(g, firsts); err != nil {
			return nil, err
		}
	}
	tracer().Debugf("=== build prediction table ======================================")
	t := emptyTable(g)
	for _, p := range g.productions {
		rhsFirst, err := firstOfSequence(firsts, p.rhs)
		if err != nil {
			return nil, err
		}
		tracer().Debugf("FIRST(%v) = %v", p, rhsFirst)
		for _, a := range rhsFirst.Values() {
			if !a.IsEpsilon() {
				t.enter(p, a)
			}
		}
		if rhsFirst.Contains(Epsilon) {
			for _, b := range follows.Of(p.LHS).Values() {
				t.enter(p, b)
			}
		}
	}
	if t.HasConflicts() {
		tracer().Infof("grammar %q is not LL(1): %d conflicts", g.Name, t.conflicts.Size())
	}
	return t, nil
}

// emptyTable creates a table with every entry pre-set to "no entry".
func emptyTable(g *Grammar) *Table {
	t := &Table{
		fingerprint: g.Fingerprint(),
		start:       g.start,
		rows:        make(map[string]int),
		cols:        make(map[Symbol]int),
		nonterms:    g.NonTerminals(),
		productions: g.Productions(),
		conflicts:   arraylist.New(),
	}
	for i, A := range t.nonterms {
		t.rows[A] = i
	}
	for _, a := range g.Terminals() {
		t.lookaheads = append(t.lookaheads, T(a))
	}
	t.lookaheads = append(t.lookaheads, EOF)
	for j, a := range t.lookaheads {
		t.cols[a] = j
	}
	t.matrix = sparse.NewIntMatrix(len(t.nonterms), len(t.lookaheads), sparse.DefaultNullValue)
	return t
}

// enter sets entry (A,a) to production p = A ➞ α. If the entry is already claimed
// by another production, p is appended and a conflict is recorded.
func (t *Table) enter(p *Production, a Symbol) {
	i, ok := t.rows[p.LHS]
	j, ok2 := t.cols[a]
	if !ok || !ok2 {
		tracer().Errorf("no table entry (%s,%s), ignoring %v", p.LHS, a, p)
		return
	}
	present := t.matrix.Values(i, j)
	for _, serial := range present {
		if int(serial) == p.Serial { // same production via FIRST and FOLLOW
			return
		}
	}
	if len(present) == 1 {
		c := Conflict{NonTerminal: p.LHS, Lookahead: a}
		tracer().Debugf("    conflict at %v: %v vs. %v", c, t.productions[present[0]], p)
		t.conflicts.Add(c)
	}
	t.matrix.Add(i, j, int32(p.Serial))
	tracer().Debugf("    table(%s,%s) += %v", p.LHS, a, p)
}

// Lookup returns the productions in entry (A,lookahead), in the order they have
// been entered. For an empty entry Lookup returns nil. For a table without conflicts,
// at most one production is returned.
func (t *Table) Lookup(A string, lookahead Symbol) []*Production {
	i, ok := t.rows[A]
	if !ok {
		return nil
	}
	j, ok := t.cols[lookahead]
	if !ok {
		return nil
	}
	serials := t.matrix.Values(i, j)
	if len(serials) == 0 {
		return nil
	}
	prods := make([]*Production, len(serials))
	for k, serial := range serials {
		prods[k] = t.productions[serial]
	}
	return prods
}

// Predict returns the production to apply for non-terminal A and a given lookahead,
// or nil if there is no entry. For conflicting entries, the first production entered
// (i.e., the one with the lowest serial) wins.
func (t *Table) Predict(A string, lookahead Symbol) *Production {
	prods := t.Lookup(A, lookahead)
	if len(prods) == 0 {
		return nil
	}
	return prods[0]
}

// HasConflicts is true if the grammar of t is not LL(1).
func (t *Table) HasConflicts() bool {
	return !t.conflicts.Empty()
}

// Conflicts returns all the conflicting entries of t, in order of detection.
func (t *Table) Conflicts() []Conflict {
	r := make([]Conflict, 0, t.conflicts.Size())
	it := t.conflicts.Iterator()
	for it.Next() {
		r = append(r, it.Value().(Conflict))
	}
	return r
}

// ConflictError returns a detailed error for conflict c, describing the first two
// productions competing for the table entry.
func (t *Table) ConflictError(c Conflict) *ConflictError {
	prods := t.Lookup(c.NonTerminal, c.Lookahead)
	e := &ConflictError{NonTerminal: c.NonTerminal, Lookahead: c.Lookahead}
	if len(prods) > 0 {
		e.CurrentRHS = prods[0].RHS()
	}
	if len(prods) > 1 {
		e.CompetingRHS = prods[1].RHS()
	}
	return e
}

// Err returns nil for an LL(1) table, and a *ConflictError for the first conflict
// otherwise.
func (t *Table) Err() error {
	if !t.HasConflicts() {
		return nil
	}
	c, _ := t.conflicts.Get(0)
	return t.ConflictError(c.(Conflict))
}

// Fingerprint returns the fingerprint of the grammar t has been built for.
func (t *Table) Fingerprint() string {
	return t.fingerprint
}

// StartingSymbol returns the starting symbol of the grammar t has been built for.
func (t *Table) StartingSymbol() string {
	return t.start
}

// NonTerminals returns the row labels of t.
func (t *Table) NonTerminals() []string {
	return append([]string(nil), t.nonterms...)
}

// Lookaheads returns the column labels of t, i.e. all the terminals and #eof.
func (t *Table) Lookaheads() []Symbol {
	return append([]Symbol(nil), t.lookaheads...)
}

// EntryCount returns the number of non-empty entries of t.
func (t *Table) EntryCount() int {
	return t.matrix.ValueCount()
}

// Dump is a debugging helper. It traces all the non-empty entries of t.
func (t *Table) Dump() {
	tracer().Debugf("--- prediction table ------------------------------------")
	for _, A := range t.nonterms {
		for _, a := range t.lookaheads {
			if prods := t.Lookup(A, a); prods != nil {
				tracer().Debugf("(%s,%s) = %v", A, a, prods)
			}
		}
	}
	tracer().Debugf("---------------------------------------------------------")
}

// === Table Generator =======================================================

// TableGenerator is a generator object to construct LL(1) prediction tables.
// Clients usually create a Grammar G, then an LLAnalysis-object for G,
// and then a table generator. TableGenerator.CreateTables() constructs
// the prediction table for an LL(1)-parser recognizing grammar G.
type TableGenerator struct {
	g            *Grammar
	ga           *LLAnalysis
	table        *Table
	HasConflicts bool
}

// NewTableGenerator creates a new TableGenerator for a (previously analysed) grammar.
func NewTableGenerator(ga *LLAnalysis) *TableGenerator {
	return &TableGenerator{
		g:  ga.Grammar(),
		ga: ga,
	}
}

// CreateTables creates the prediction table, using the FIRST- and FOLLOW-sets of
// the analysis.
func (gen *TableGenerator) CreateTables() error {
	t, err := GenerateTable(gen.g, gen.ga.FirstSets(), gen.ga.FollowSets())
	if err != nil {
		return err
	}
	gen.table = t
	gen.HasConflicts = t.HasConflicts()
	return nil
}

// Table returns the prediction table. The table has to be created by calling
// CreateTables() previously.
func (gen *TableGenerator) Table() *Table {
	if gen.table == nil {
		tracer().Errorf("prediction table not yet created; call CreateTables() first")
	}
	return gen.table
}
