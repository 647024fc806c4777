package ll

// LLAnalysis is an object holding the results of the static analysis of a
// grammar, i.e. its FIRST- and FOLLOW-sets. Create one with Analysis(g).
// An LLAnalysis is immutable and may be shared between goroutines.
type LLAnalysis struct {
	g      *Grammar
	first  SymbolSets
	follow SymbolSets
}

// Analysis computes FIRST- and FOLLOW-sets for a grammar.
func Analysis(g *Grammar) (*LLAnalysis, error) {
	ga := &LLAnalysis{g: g}
	var err error
	if ga.first, err = FirstSets(g); err != nil {
		tracer().Errorf("grammar analysis failed: %v", err)
		return nil, err
	}
	if ga.follow, err = FollowSets(g, ga.first); err != nil {
		tracer().Errorf("grammar analysis failed: %v", err)
		return nil, err
	}
	return ga, nil
}

// Grammar returns the grammar this analysis is for.
func (ga *LLAnalysis) Grammar() *Grammar {
	return ga.g
}

// First returns FIRST(A).
func (ga *LLAnalysis) First(A string) *SymbolSet {
	return ga.first.Of(A)
}

// Follow returns FOLLOW(A).
func (ga *LLAnalysis) Follow(A string) *SymbolSet {
	return ga.follow.Of(A)
}

// FirstSets returns the FIRST-sets of all non-terminals.
func (ga *LLAnalysis) FirstSets() SymbolSets {
	return ga.first
}

// FollowSets returns the FOLLOW-sets of all non-terminals.
func (ga *LLAnalysis) FollowSets() SymbolSets {
	return ga.follow
}

// IsNullable is true if A ⇒* ε.
func (ga *LLAnalysis) IsNullable(A string) bool {
	return ga.first.Of(A).Contains(Epsilon)
}

// FirstOf returns FIRST of a sequence of symbols, e.g. of the right hand side
// of a production.
func (ga *LLAnalysis) FirstOf(seq []Symbol) (*SymbolSet, error) {
	return firstOfSequence(ga.first, seq)
}
