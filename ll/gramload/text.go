package gramload

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/predictive"
	"github.com/npillmayer/ll1/ll/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token names of the grammar definition language.
const (
	tokSymbol = "sym"
	tokQuoted = "quoted"
	tokEps    = "eps"
	tokArrow  = "->"
	tokBar    = "|"
	tokSemi   = ";"
)

// metaGrammar describes the text format for grammars:
//
//    Rules    ➞ Rule Rules  |  ε
//    Rule     ➞ sym -> Alts ;
//    Alts     ➞ Seq MoreAlts
//    MoreAlts ➞ | Seq MoreAlts  |  ε
//    Seq      ➞ Item Seq  |  ε
//    Item     ➞ sym  |  quoted  |  eps
//
func metaGrammar() (*ll.Grammar, error) {
	b := ll.NewGrammarBuilder("grammar definition")
	b.LHS("Rules").N("Rule").N("Rules").End()
	b.LHS("Rules").Epsilon()
	b.LHS("Rule").T(tokSymbol).T(tokArrow).N("Alts").T(tokSemi).End()
	b.LHS("Alts").N("Seq").N("MoreAlts").End()
	b.LHS("MoreAlts").T(tokBar).N("Seq").N("MoreAlts").End()
	b.LHS("MoreAlts").Epsilon()
	b.LHS("Seq").N("Item").N("Seq").End()
	b.LHS("Seq").Epsilon()
	b.LHS("Item").T(tokSymbol).End()
	b.LHS("Item").T(tokQuoted).End()
	b.LHS("Item").T(tokEps).End()
	return b.Grammar()
}

// metaLexer creates the lexer for the text format.
func metaLexer() (*lexmach.LMAdapter, error) {
	tokenIds := map[string]int{
		tokSymbol: 1, tokQuoted: 2, tokEps: 3, tokArrow: 4, tokBar: 5, tokSemi: 6,
	}
	init := func(lexer *lexmachine.Lexer) {
		lexer.Add([]byte(`#[^\n]*`), lexmach.Skip)
		lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
		lexer.Add([]byte(`\-\>`), lexmach.MakeToken(tokArrow, tokenIds[tokArrow]))
		lexer.Add([]byte(`➞`), lexmach.MakeToken(tokArrow, tokenIds[tokArrow]))
		lexer.Add([]byte(`ε`), lexmach.MakeToken(tokEps, tokenIds[tokEps]))
		lexer.Add([]byte(`'[^']+'`), lexmach.MakeToken(tokQuoted, tokenIds[tokQuoted]))
		lexer.Add([]byte(`[^ \t\n\r;|'#][^ \t\n\r;|#]*`), lexmach.MakeToken(tokSymbol, tokenIds[tokSymbol]))
	}
	return lexmach.NewLMAdapter(init, []string{tokBar, tokSemi}, nil, tokenIds)
}

// meta holds lexer and parser for the text format. Both are immutable once
// created.
var meta struct {
	once   sync.Once
	lexer  *lexmach.LMAdapter
	parser *predictive.Parser
	err    error
}

func metaParser() (*lexmach.LMAdapter, *predictive.Parser, error) {
	meta.once.Do(func() {
		var g *ll.Grammar
		if g, meta.err = metaGrammar(); meta.err != nil {
			return
		}
		if meta.lexer, meta.err = metaLexer(); meta.err != nil {
			return
		}
		meta.parser, meta.err = predictive.NewParser(g, nil)
	})
	return meta.lexer, meta.parser, meta.err
}

// Load reads a grammar definition in text format from r.
func Load(name string, r io.Reader) (*ll.Grammar, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(name, string(text))
}

// Parse reads a grammar definition in text format.
//
// Lexical and syntax errors of the definition are reported with the position
// of the offending input. Syntax errors will match predictive.ErrUnexpectedToken.
// A definition without any rule results in ll.ErrInvalidGrammar.
func Parse(name string, text string) (*ll.Grammar, error) {
	lexer, parser, err := metaParser()
	if err != nil {
		return nil, err
	}
	scan, err := lexer.Scanner(text)
	if err != nil {
		return nil, err
	}
	var lexErr error
	scan.SetErrorHandler(func(e error) {
		tracer().Errorf("grammar %q: %v", name, e)
		if lexErr == nil {
			lexErr = e
		}
	})
	tree, err := parser.ParseTokens(scan)
	if lexErr != nil {
		return nil, fmt.Errorf("grammar %q: %w", name, lexErr)
	}
	if err != nil {
		return nil, fmt.Errorf("grammar %q: %w", name, err)
	}
	var rules []rule
	collectRules(tree, &rules)
	return buildGrammar(name, "", rules)
}

// --- Reading the parse tree ------------------------------------------------

// item is a symbol on the right side of a rule, as written.
type item struct {
	name     string
	terminal bool // forced to be a terminal
	epsilon  bool
}

type rule struct {
	lhs string
	rhs []item
}

func isEpsilon(n *predictive.Node) bool {
	return len(n.Children) == 1 && n.Children[0].Symbol.IsEpsilon()
}

// collectRules walks a tree for non-terminal Rules.
func collectRules(n *predictive.Node, rules *[]rule) {
	for ; !isEpsilon(n); n = n.Children[1] {
		r := n.Children[0] // Rule ➞ sym -> Alts ;
		lhs := r.Children[0].Token.Text()
		alts := r.Children[2] // Alts ➞ Seq MoreAlts
		*rules = append(*rules, rule{lhs: lhs, rhs: collectItems(alts.Children[0])})
		for more := alts.Children[1]; !isEpsilon(more); more = more.Children[2] {
			*rules = append(*rules, rule{lhs: lhs, rhs: collectItems(more.Children[1])})
		}
	}
}

// collectItems walks a tree for non-terminal Seq.
func collectItems(seq *predictive.Node) []item {
	var items []item
	for ; !isEpsilon(seq); seq = seq.Children[1] {
		leaf := seq.Children[0].Children[0] // Item ➞ sym | quoted | eps
		text := leaf.Token.Text()
		switch leaf.Symbol.Name {
		case tokSymbol:
			items = append(items, item{name: text})
		case tokQuoted:
			items = append(items, item{name: strings.Trim(text, "'"), terminal: true})
		case tokEps:
			items = append(items, item{epsilon: true})
		}
	}
	return items
}

// buildGrammar classifies the symbols of a set of rules and creates a grammar.
// If start is empty, the left side of the first rule is the starting symbol.
func buildGrammar(name, start string, rules []rule) (*ll.Grammar, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: grammar %q has no rules", ll.ErrInvalidGrammar, name)
	}
	lhs := make(map[string]bool)
	for _, r := range rules {
		lhs[r.lhs] = true
	}
	if start == "" {
		start = rules[0].lhs
	} else if !lhs[start] {
		return nil, fmt.Errorf("%w: grammar %q: no rules for starting symbol %s",
			ll.ErrInvalidGrammar, name, start)
	}
	b := ll.NewGrammarBuilder(name).SetStartingSymbol(start)
	for _, r := range rules {
		rhs := make([]ll.Symbol, 0, len(r.rhs))
		for _, it := range r.rhs {
			switch {
			case it.epsilon:
				continue
			case !it.terminal && lhs[it.name]:
				rhs = append(rhs, ll.N(it.name))
			default:
				rhs = append(rhs, ll.T(it.name))
			}
		}
		b.AddProduction(r.lhs, rhs...)
	}
	g, err := b.Grammar()
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded grammar %q with %d productions", name, g.Size())
	return g, nil
}

// --- Writing grammars ------------------------------------------------------

// Format writes a grammar in text format. Rules for the starting symbol come
// first, then all other rules in the order of their first appearance. Terminals
// are always quoted.
func Format(g *ll.Grammar) string {
	var order []string
	seen := map[string]bool{g.StartingSymbol(): true}
	order = append(order, g.StartingSymbol())
	for _, p := range g.Productions() {
		if !seen[p.LHS] {
			seen[p.LHS] = true
			order = append(order, p.LHS)
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", g.Name)
	for _, A := range order {
		prods := g.ProductionsFor(A)
		if len(prods) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s ->", A)
		for i, p := range prods {
			if i > 0 {
				b.WriteString(" |")
			}
			for _, X := range p.RHS() {
				switch {
				case X.IsEpsilon():
					b.WriteString(" ε")
				case X.IsTerminal():
					fmt.Fprintf(&b, " '%s'", X.Name)
				default:
					fmt.Fprintf(&b, " %s", X.Name)
				}
			}
		}
		b.WriteString(" ;\n")
	}
	return b.String()
}
