package ll

// FirstSets computes FIRST(A) for all non-terminals A of g. FIRST(A) contains
// the terminals which may start a derivation from A, plus ε if A is nullable.
// Non-terminals without productions map to an empty set.
//
// FirstSets fails with ErrInvalidGrammar if a production references a
// non-terminal which is not declared by g.
func FirstSets(g *Grammar) (SymbolSets, error) {
	return firstSets(g, nil)
}

// firstSets does a fixed-point iteration over all productions A ➞ α, adding
// FIRST(α) to FIRST(A), until no set grows any more. Sets are bounded by
// |terminals|+1, therefore the iteration terminates. If observe is non-nil, it
// is called with a copy of the sets after every iteration.
func firstSets(g *Grammar, observe func(int, SymbolSets)) (SymbolSets, error) {
	firsts := make(SymbolSets)
	for _, A := range g.NonTerminals() {
		firsts[A] = newSymbolSet()
	}
	for iteration := 1; ; iteration++ {
		grown := false
		for _, p := range g.productions {
			F, ok := firsts[p.LHS]
			if !ok {
				return nil, invalidGrammar("cannot compute FIRST: non-terminal %s on left side of %v is not declared",
					p.LHS, p)
			}
			rhsFirst, err := firstOfSequence(firsts, p.rhs)
			if err != nil {
				return nil, err
			}
			if F.union(rhsFirst) {
				grown = true
			}
		}
		tracer().Debugf("FIRST iteration #%d: %d symbols", iteration, firsts.totalSize())
		if observe != nil {
			observe(iteration, firsts.snapshot())
		}
		if !grown {
			break
		}
	}
	return firsts, nil
}

// firstOfSequence computes FIRST of a sequence of symbols. ε is included
// tentatively and removed as soon as a symbol is found which is not nullable.
// ε-symbols within the sequence are transparent.
func firstOfSequence(firsts SymbolSets, seq []Symbol) (*SymbolSet, error) {
	result := newSymbolSet(Epsilon)
	for _, A := range seq {
		switch A.Kind {
		case TerminalKind:
			result.add(A)
			result.remove(Epsilon)
			return result, nil
		case NonTerminalKind:
			F, ok := firsts[A.Name]
			if !ok {
				return nil, invalidGrammar("cannot compute FIRST: non-terminal %s is not declared", A)
			}
			result.union(F)
			if !F.Contains(Epsilon) {
				result.remove(Epsilon)
				return result, nil
			}
		}
	}
	return result, nil
}
