package ll

import "testing"

// Test grammars. Most of them are taken from "Parsing Techniques" by
// Dick Grune and Ceriel J.H. Jacobs, or from the "Dragon Book".

// arithmetic expressions, Dragon Book p.225
//
//    E  ➞ T E'
//    E' ➞ + T E'  |  ε
//    T  ➞ F T'
//    T' ➞ * F T'  |  ε
//    F  ➞ ( E )   |  id
//
func exprGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Expressions")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*").N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	return mustGrammar(t, b)
}

// A ➞ ε
func emptyLanguageGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Empty").AddProduction("A", Epsilon).SetStartingSymbol("A")
	return mustGrammar(t, b)
}

// Parsing Techniques p.240
//
//    S ➞ F S  |  Q  |  ( S ) S
//    F ➞ ! STRING
//    Q ➞ ? STRING
//
func grammarWithoutEpsilon(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Session")
	b.SetStartingSymbol("S")
	b.AddProduction("S", N("F"), N("S"))
	b.AddProduction("S", N("Q"))
	b.AddProduction("S", T("("), N("S"), T(")"), N("S"))
	b.AddProduction("F", T("!"), T("STRING"))
	b.AddProduction("Q", T("?"), T("STRING"))
	return mustGrammar(t, b)
}

//    A ➞ a A  |  B
//    B ➞ b B  |  c
//
func rightRecursiveGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Right")
	b.LHS("A").T("a").N("A").End()
	b.LHS("A").N("B").End()
	b.LHS("B").T("b").N("B").End()
	b.LHS("B").T("c").End()
	return mustGrammar(t, b)
}

//    A ➞ A a  |  b
//
func leftRecursiveGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("Left")
	b.LHS("A").N("A").T("a").End()
	b.LHS("A").T("b").End()
	return mustGrammar(t, b)
}

// Lua if-statements, simplified
func ifStatementGrammar(t *testing.T) *Grammar {
	b := NewGrammarBuilder("If")
	b.LHS("<if>").T("if").T("cond").T("then").T("stmts").N("<elseif>").N("<else>").T("end").End()
	b.LHS("<elseif>").T("elseif").T("cond").T("then").T("stmts").N("<elseif>").End()
	b.LHS("<elseif>").Epsilon()
	b.LHS("<else>").Epsilon()
	b.LHS("<else>").T("else").T("stmts").End()
	return mustGrammar(t, b)
}

func allGrammars(t *testing.T) []*Grammar {
	return []*Grammar{
		exprGrammar(t),
		emptyLanguageGrammar(t),
		grammarWithoutEpsilon(t),
		rightRecursiveGrammar(t),
		leftRecursiveGrammar(t),
		ifStatementGrammar(t),
	}
}

func mustGrammar(t *testing.T, b *GrammarBuilder) *Grammar {
	g, err := b.Grammar()
	if err != nil {
		t.Fatalf("cannot build grammar: %v", err)
	}
	return g
}

func set(syms ...Symbol) *SymbolSet {
	return newSymbolSet(syms...)
}
