package ll

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilderFluent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g := exprGrammar(t)
	g.Dump()
	if g.StartingSymbol() != "E" {
		t.Errorf("expected starting symbol to be E, is %s", g.StartingSymbol())
	}
	if g.Size() != 8 {
		t.Errorf("expected grammar to have 8 productions, has %d", g.Size())
	}
	if len(g.Terminals()) != 5 || len(g.NonTerminals()) != 5 {
		t.Errorf("expected 5 terminals and 5 non-terminals, have %v and %v",
			g.Terminals(), g.NonTerminals())
	}
	if !g.Production(2).IsEpsilon() {
		t.Errorf("expected production #2 to be an epsilon-production, is %v", g.Production(2))
	}
	if len(g.ProductionsFor("F")) != 2 {
		t.Errorf("expected 2 productions for F, have %v", g.ProductionsFor("F"))
	}
}

func TestBuilderNeedsStartingSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G").AddProduction("A", T("a"))
	_, err := b.Grammar()
	if !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected grammar without starting symbol to be invalid, error is %v", err)
	}
	b.SetStartingSymbol("A")
	if _, err = b.Grammar(); err != nil {
		t.Errorf("expected grammar to be valid, error is %v", err)
	}
}

func TestBuilderStartingSymbolIsNonTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g, err := NewGrammarBuilder("G").SetStartingSymbol("A").Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsNonTerminal("A") || g.Size() != 0 {
		t.Errorf("expected A to be a non-terminal of an empty grammar")
	}
}

func TestBuilderDropsDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G").SetStartingSymbol("A")
	b.AddProduction("A", T("a"), N("B"))
	b.AddProduction("A", T("a"), N("B"))
	b.AddProduction("A", N("a"), N("B")) // different kind of symbol
	b.AddProduction("B")
	b.AddProduction("B", Epsilon)
	g, err := b.Grammar()
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 {
		t.Errorf("expected 3 productions, have %d", g.Size())
	}
	for i, p := range g.Productions() {
		if p.Serial != i {
			t.Errorf("expected production %v to have serial %d", p, i)
		}
	}
	if !g.IsTerminal("a") || !g.IsNonTerminal("a") {
		t.Errorf("expected 'a' to be both a terminal and a non-terminal")
	}
}

func TestBuilderRejectsEOF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	b := NewGrammarBuilder("G").SetStartingSymbol("A").AddProduction("A", T("a"), EOF)
	if _, err := b.Grammar(); !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected #eof on right side to make grammar invalid, error is %v", err)
	}
}

func TestNewGrammarValidates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	prods := []Production{
		*newProduction("S", []Symbol{T("a"), N("B")}),
		*newProduction("B", []Symbol{T("b")}),
	}
	_, err := NewGrammar("G", "S", []string{"a"}, []string{"S", "B"}, prods)
	if !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected undeclared terminal b to make grammar invalid, error is %v", err)
	}
	_, err = NewGrammar("G", "S", []string{"a", "b"}, []string{"S"}, prods)
	if !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected undeclared non-terminal B to make grammar invalid, error is %v", err)
	}
	_, err = NewGrammar("G", "X", []string{"a", "b"}, []string{"S", "B"}, prods)
	if !errors.Is(err, ErrInvalidGrammar) {
		t.Errorf("expected undeclared starting symbol to make grammar invalid, error is %v", err)
	}
	g, err := NewGrammar("G", "S", []string{"a", "b"}, []string{"S", "B"}, prods)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 || g.Production(1).LHS != "B" {
		t.Errorf("expected grammar with 2 productions, have %v", g.Productions())
	}
}

func TestSentinelsAreNotTerminals(t *testing.T) {
	if T("ε") == Epsilon || T("$") == EOF || T("") == Epsilon || N("") == EOF {
		t.Errorf("sentinels must not be equal to named symbols")
	}
	if T("a") != T("a") || T("a") == N("a") {
		t.Errorf("symbols have to compare by kind and name")
	}
	if Epsilon.String() != "ε" || EOF.String() != "#eof" {
		t.Errorf("unexpected string representation of sentinels: %s, %s", Epsilon, EOF)
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ll1.ll")
	defer teardown()
	//
	g1, g2 := exprGrammar(t), exprGrammar(t)
	if g1.Fingerprint() != g2.Fingerprint() {
		t.Errorf("expected equal grammars to have equal fingerprints")
	}
	if g1.Fingerprint() == rightRecursiveGrammar(t).Fingerprint() {
		t.Errorf("expected different grammars to have different fingerprints")
	}
	b := NewGrammarBuilder("Other name")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*").N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	if mustGrammar(t, b).Fingerprint() != g1.Fingerprint() {
		t.Errorf("expected fingerprint to not depend on the grammar's name")
	}
}
