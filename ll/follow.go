package ll

// FollowSets computes FOLLOW(A) for all non-terminals A of g. FOLLOW(A) contains
// the terminals which may immediately follow A in some derivation, plus #eof if
// A may end a sentence. FOLLOW-sets never contain ε.
//
// FOLLOW depends on FIRST. Clients may provide FIRST-sets computed beforehand;
// if firsts is nil, they will be computed.
func FollowSets(g *Grammar, firsts SymbolSets) (SymbolSets, error) {
	return followSets(g, firsts, nil)
}

func followSets(g *Grammar, firsts SymbolSets, observe func(int, SymbolSets)) (SymbolSets, error) {
	if firsts == nil {
		var err error
		if firsts, err = FirstSets(g); err != nil {
			return nil, err
		}
	}
	follows := make(SymbolSets)
	for _, A := range g.NonTerminals() {
		follows[A] = newSymbolSet()
	}
	S, ok := follows[g.start]
	if !ok {
		return nil, invalidGrammar("cannot compute FOLLOW: starting symbol %s is not declared", g.start)
	}
	S.add(EOF)
	for iteration := 1; ; iteration++ {
		grown := false
		for _, p := range g.productions {
			for i, B := range p.rhs {
				if !B.IsNonTerminal() {
					continue
				}
				more, err := followContribution(p, i, firsts, follows)
				if err != nil {
					return nil, err
				}
				if more {
					grown = true
				}
			}
		}
		tracer().Debugf("FOLLOW iteration #%d: %d symbols", iteration, follows.totalSize())
		if observe != nil {
			observe(iteration, follows.snapshot())
		}
		if !grown {
			break
		}
	}
	return follows, nil
}

// followContribution handles production A ➞ α B β, where B is at position i.
// FIRST(β)\{ε} is added to FOLLOW(B). If β is nullable (this includes β being
// empty), FOLLOW(A) is added to FOLLOW(B) as well.
func followContribution(p *Production, i int, firsts, follows SymbolSets) (bool, error) {
	B := p.rhs[i]
	FB, ok := follows[B.Name]
	if !ok {
		return false, invalidGrammar("cannot compute FOLLOW: non-terminal %s in %v is not declared", B, p)
	}
	betaFirst, err := firstOfSequence(firsts, p.rhs[i+1:])
	if err != nil {
		return false, err
	}
	grown := FB.union(betaFirst, Epsilon)
	if betaFirst.Contains(Epsilon) {
		FA, ok := follows[p.LHS]
		if !ok {
			return false, invalidGrammar("cannot compute FOLLOW: non-terminal %s on left side of %v is not declared",
				p.LHS, p)
		}
		if FB.union(FA) {
			grown = true
		}
	}
	return grown, nil
}
