package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFirstExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	firsts, err := FirstSets(exprGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	expected := map[string]*SymbolSet{
		"E":  set(T("("), T("id")),
		"T":  set(T("("), T("id")),
		"F":  set(T("("), T("id")),
		"E'": set(T("+"), Epsilon),
		"T'": set(T("*"), Epsilon),
	}
	for A, F := range expected {
		if !firsts.Of(A).Equals(F) {
			t.Errorf("expected FIRST(%s) = %v, is %v", A, F, firsts.Of(A))
		}
	}
}

func TestFirstWithoutEpsilon(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	firsts, err := FirstSets(grammarWithoutEpsilon(t))
	if err != nil {
		t.Fatal(err)
	}
	if S := set(T("!"), T("?"), T("(")); !firsts.Of("S").Equals(S) {
		t.Errorf("expected FIRST(S) = %v, is %v", S, firsts.Of("S"))
	}
	if Q := set(T("?")); !firsts.Of("Q").Equals(Q) {
		t.Errorf("expected FIRST(Q) = %v, is %v", Q, firsts.Of("Q"))
	}
}

func TestFirstThroughNonTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	firsts, err := FirstSets(rightRecursiveGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if A := set(T("a"), T("b"), T("c")); !firsts.Of("A").Equals(A) {
		t.Errorf("expected FIRST(A) = %v, is %v", A, firsts.Of("A"))
	}
}

func TestFirstOfEmptyLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	firsts, err := FirstSets(emptyLanguageGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if !firsts.Of("A").Equals(set(Epsilon)) {
		t.Errorf("expected FIRST(A) = { ε }, is %v", firsts.Of("A"))
	}
}

func TestFirstOfNonProductiveNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G").SetStartingSymbol("S")
	b.AddProduction("S", N("A"), T("x"))
	b.AddProduction("A", N("A"), T("a")) // A derives no sentence
	firsts, err := FirstSets(mustGrammar(t, b))
	if err != nil {
		t.Fatal(err)
	}
	if !firsts.Of("A").Empty() || !firsts.Of("S").Empty() {
		t.Errorf("expected FIRST(A) and FIRST(S) to be empty, are %v and %v",
			firsts.Of("A"), firsts.Of("S"))
	}
}

func TestFirstEpsilonLookalike(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G").SetStartingSymbol("S")
	b.AddProduction("S", T("ε"), T("x"))
	firsts, err := FirstSets(mustGrammar(t, b))
	if err != nil {
		t.Fatal(err)
	}
	if firsts.Of("S").Contains(Epsilon) || !firsts.Of("S").Contains(T("ε")) {
		t.Errorf("expected a terminal named 'ε' to not be taken as ε, FIRST(S) = %v", firsts.Of("S"))
	}
}

func TestFirstGrowsMonotonically(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	for _, g := range allGrammars(t) {
		var previous SymbolSets
		iterations := 0
		firsts, err := firstSets(g, func(i int, sets SymbolSets) {
			iterations = i
			for _, A := range sets.Names() {
				if previous != nil && !sets.Of(A).IsSupersetOf(previous.Of(A)) {
					t.Errorf("%s: FIRST(%s) shrunk in iteration %d", g.Name, A, i)
				}
			}
			previous = sets
		})
		if err != nil {
			t.Fatal(err)
		}
		if iterations < 1 {
			t.Errorf("%s: expected at least 1 iteration", g.Name)
		}
		for _, A := range firsts.Names() {
			if !firsts.Of(A).Equals(previous.Of(A)) {
				t.Errorf("%s: expected last snapshot to equal the result for FIRST(%s)", g.Name, A)
			}
			if firsts.Of(A).Contains(EOF) {
				t.Errorf("%s: FIRST(%s) contains #eof", g.Name, A)
			}
		}
	}
}

func TestFirstNullableIffEpsilonDerivation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	ga, err := Analysis(ifStatementGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if ga.IsNullable("<if>") || !ga.IsNullable("<elseif>") || !ga.IsNullable("<else>") {
		t.Errorf("expected <elseif> and <else> to be nullable, but not <if>")
	}
	F, err := ga.FirstOf([]Symbol{N("<elseif>"), N("<else>")})
	if err != nil {
		t.Fatal(err)
	}
	if S := set(T("elseif"), T("else"), Epsilon); !F.Equals(S) {
		t.Errorf("expected FIRST(<elseif> <else>) = %v, is %v", S, F)
	}
	F, _ = ga.FirstOf(nil)
	if !F.Equals(set(Epsilon)) {
		t.Errorf("expected FIRST of empty sequence to be { ε }, is %v", F)
	}
}

func TestFirstUndeclaredNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g := emptyGrammar("broken") // bypass validation
	g.start = "S"
	g.nonterminals.Add("S")
	g.addProduction("S", []Symbol{N("X"), T("a")})
	if _, err := FirstSets(g); !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected FIRST to fail with ErrInvalidGrammar, error is %v", err)
	}
	if _, err := Analysis(g); !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected analysis to fail with ErrInvalidGrammar, error is %v", err)
	}
}
