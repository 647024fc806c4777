package ll

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestFollowExpressions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	follows, err := FollowSets(exprGrammar(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	expected := map[string]*SymbolSet{
		"E":  set(T(")"), EOF),
		"E'": set(T(")"), EOF),
		"T":  set(T("+"), T(")"), EOF),
		"T'": set(T("+"), T(")"), EOF),
		"F":  set(T("+"), T("*"), T(")"), EOF),
	}
	for A, F := range expected {
		if !follows.Of(A).Equals(F) {
			t.Errorf("expected FOLLOW(%s) = %v, is %v", A, F, follows.Of(A))
		}
	}
}

func TestFollowOfEmptyLanguage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	follows, err := FollowSets(emptyLanguageGrammar(t), nil)
	if err != nil {
		t.Fatal(err)
	}
	if !follows.Of("A").Equals(set(EOF)) {
		t.Errorf("expected FOLLOW(A) = { #eof }, is %v", follows.Of("A"))
	}
}

func TestFollowThroughNullableSuffix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	ga, err := Analysis(ifStatementGrammar(t))
	if err != nil {
		t.Fatal(err)
	}
	if F := set(T("else"), T("end")); !ga.Follow("<elseif>").Equals(F) {
		t.Errorf("expected FOLLOW(<elseif>) = %v, is %v", F, ga.Follow("<elseif>"))
	}
	if F := set(T("end")); !ga.Follow("<else>").Equals(F) {
		t.Errorf("expected FOLLOW(<else>) = %v, is %v", F, ga.Follow("<else>"))
	}
}

func TestFollowContainsFirstOfSuccessor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G")
	b.LHS("S").N("A").N("B").End()
	b.LHS("A").T("a").End()
	b.LHS("B").T("b").N("B").End()
	b.LHS("B").Epsilon()
	ga, err := Analysis(mustGrammar(t, b))
	if err != nil {
		t.Fatal(err)
	}
	if F := set(T("b"), EOF); !ga.Follow("A").Equals(F) {
		t.Errorf("expected FOLLOW(A) = %v, is %v", F, ga.Follow("A"))
	}
	if F := set(EOF); !ga.Follow("B").Equals(F) {
		t.Errorf("expected FOLLOW(B) = %v, is %v", F, ga.Follow("B"))
	}
}

func TestFollowProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	for _, g := range allGrammars(t) {
		var previous SymbolSets
		follows, err := followSets(g, nil, func(i int, sets SymbolSets) {
			for _, A := range sets.Names() {
				if previous != nil && !sets.Of(A).IsSupersetOf(previous.Of(A)) {
					t.Errorf("%s: FOLLOW(%s) shrunk in iteration %d", g.Name, A, i)
				}
			}
			previous = sets
		})
		if err != nil {
			t.Fatal(err)
		}
		if !follows.Of(g.StartingSymbol()).Contains(EOF) {
			t.Errorf("%s: expected FOLLOW(%s) to contain #eof", g.Name, g.StartingSymbol())
		}
		for _, A := range follows.Names() {
			if follows.Of(A).Contains(Epsilon) {
				t.Errorf("%s: FOLLOW(%s) contains ε", g.Name, A)
			}
		}
	}
}
