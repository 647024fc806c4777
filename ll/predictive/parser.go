package predictive

import (
	"fmt"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/scanner"
	"github.com/npillmayer/schuko/gconf"
)

// Parser is an LL(1)-parser type. Create and initialize one with
// predictive.NewParser(...).
//
// A parser does not hold any state between calls to Parse. It is safe to share a
// parser between goroutines.
type Parser struct {
	G              *ll.Grammar
	table          *ll.Table // prediction table
	allowConflicts bool      // parse with conflicting table entries
}

// Option configures a parser.
type Option func(p *Parser)

// AllowConflicts sets or clears the option to parse with a prediction table
// containing LL(1)-conflicts. For conflicting table entries, the production added
// to the grammar first will be predicted. The default is taken from the global
// configuration key "allow-ll1-conflicts".
func AllowConflicts(b bool) Option {
	return func(p *Parser) {
		p.allowConflicts = b
	}
}

// NewParser creates an LL(1) parser for a grammar. If table is nil, a prediction
// table will be generated.
//
// NewParser fails with ll.ErrInvalidGrammar if table has been created for a
// different grammar.
func NewParser(g *ll.Grammar, table *ll.Table, opts ...Option) (*Parser, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: parser needs a grammar", ll.ErrInvalidGrammar)
	}
	if table == nil {
		var err error
		if table, err = ll.GenerateTable(g, nil, nil); err != nil {
			return nil, err
		}
	} else if table.Fingerprint() != g.Fingerprint() {
		return nil, fmt.Errorf("%w: prediction table has not been created for grammar %q",
			ll.ErrInvalidGrammar, g.Name)
	}
	p := &Parser{
		G:              g,
		table:          table,
		allowConflicts: gconf.GetBool("allow-ll1-conflicts"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Parse is a convenience function to parse a sequence of literals with a grammar.
// If table is nil, a prediction table is generated.
func Parse(tokens []string, g *ll.Grammar, table *ll.Table) (*Node, error) {
	p, err := NewParser(g, table)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens)
}

// Table returns the prediction table the parser uses.
func (p *Parser) Table() *ll.Table {
	return p.table
}

// Parse parses a sequence of literals, each of which has to match the name of
// a terminal. It returns the root of a parse tree, labeled with the starting
// symbol of the grammar.
func (p *Parser) Parse(tokens []string) (*Node, error) {
	return p.ParseTokens(&literals{tokens: tokens})
}

// ParseTokens parses the tokens produced by a tokenizer, until the tokenizer
// signals EOF. Tokens are matched by their lexemes.
// It returns the root of a parse tree, labeled with the starting symbol of the
// grammar.
func (p *Parser) ParseTokens(scan scanner.Tokenizer) (*Node, error) {
	if p.table.HasConflicts() && !p.allowConflicts {
		c := p.table.Conflicts()
		tracer().Errorf("refusing to parse: %v", p.table.Err())
		return nil, fmt.Errorf("%w: %d conflicting table entries, first is %v",
			ErrGrammarNotLL1, len(c), c[0])
	}
	root := &Node{Symbol: ll.N(p.table.StartingSymbol())}
	r := &run{
		table: p.table,
		scan:  scan,
		stack: make([]stackitem, 0, 64),
	}
	if err := r.parse(root); err != nil {
		return nil, err
	}
	fixSpans(root)
	return root, nil
}

// --- Parse run -------------------------------------------------------------

type itemKind int8

const (
	sentinelItem itemKind = iota // bottom of the stack, stands for #eof
	pendingItem                  // tree node waiting to be expanded or matched
)

// stackitem is either the sentinel or a pending tree node.
type stackitem struct {
	kind   itemKind
	node   *Node
	origin *expansion // expansion which created node
}

func sentinel() stackitem {
	return stackitem{kind: sentinelItem}
}

func pending(n *Node, origin *expansion) stackitem {
	return stackitem{kind: pendingItem, node: n, origin: origin}
}

// expansion records at which input position a non-terminal has been expanded.
// Expansions are chained to their parent expansions.
type expansion struct {
	symbol ll.Symbol
	pos    uint64
	parent *expansion
}

// run holds the state of a single parse.
type run struct {
	table *ll.Table
	scan  scanner.Tokenizer
	stack []stackitem
	token ll1.Token // current lookahead token
	pos   uint64    // position of the lookahead, counted in tokens
}

func (r *run) parse(root *Node) error {
	tracer().Debugf("~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~~")
	r.stack = append(r.stack, sentinel(), pending(root, nil))
	r.token = r.scan.NextToken()
	for {
		tos := r.stack[len(r.stack)-1]
		la := r.lookahead()
		switch tos.kind {
		case sentinelItem:
			if !la.IsEOF() { // input left over
				return r.unexpected(ll.EOF, []ll.Symbol{ll.EOF})
			}
			tracer().Debugf("accept")
			return nil
		case pendingItem:
			if err := r.step(tos, la); err != nil {
				return err
			}
		}
	}
}

// step either expands a non-terminal on top of the stack or matches a terminal.
func (r *run) step(tos stackitem, la ll.Symbol) error {
	n := tos.node
	tracer().Debugf("top = %v, lookahead = %v @%d", n.Symbol, la, r.pos)
	switch n.Symbol.Kind {
	case ll.NonTerminalKind:
		prod := r.table.Predict(n.Symbol.Name, la)
		if prod == nil {
			return r.unexpected(n.Symbol, r.expectedFor(n.Symbol.Name))
		}
		// A non-terminal re-appearing below itself without input having been
		// consumed means left recursion. Only possible with conflicting tables.
		for e := tos.origin; e != nil && e.pos == r.pos; e = e.parent {
			if e.symbol == n.Symbol {
				tracer().Errorf("left recursion: %v expanded twice at position %d", n.Symbol, r.pos)
				return fmt.Errorf("%w: left recursion for %v at position %d",
					ErrGrammarNotLL1, n.Symbol, r.pos)
			}
		}
		tracer().Debugf("predict %v", prod)
		x := &expansion{symbol: n.Symbol, pos: r.pos, parent: tos.origin}
		r.stack = r.stack[:len(r.stack)-1]
		rhs := prod.RHS()
		n.Children = make([]*Node, len(rhs))
		for i, A := range rhs {
			n.Children[i] = &Node{Symbol: A}
			if A.IsEpsilon() {
				n.Children[i].Span = ll1.Span{r.pos, r.pos}
			}
		}
		for i := len(rhs) - 1; i >= 0; i-- {
			if !rhs[i].IsEpsilon() {
				r.stack = append(r.stack, pending(n.Children[i], x))
			}
		}
	case ll.TerminalKind:
		if la != n.Symbol {
			return r.unexpected(n.Symbol, []ll.Symbol{n.Symbol})
		}
		tracer().Debugf("match %v", la)
		n.Token = r.token
		n.Span = ll1.Span{r.pos, r.pos + 1}
		r.stack = r.stack[:len(r.stack)-1]
		r.token = r.scan.NextToken()
		r.pos++
	default:
		panic(fmt.Sprintf("symbol %v may not be pushed onto the parse stack", n.Symbol))
	}
	return nil
}

func (r *run) lookahead() ll.Symbol {
	if r.token.TokType() == scanner.EOF {
		return ll.EOF
	}
	return ll.T(r.token.Lexeme())
}

// expectedFor collects all lookaheads with a table entry for A.
func (r *run) expectedFor(A string) []ll.Symbol {
	var expected []ll.Symbol
	for _, a := range r.table.Lookaheads() {
		if r.table.Predict(A, a) != nil {
			expected = append(expected, a)
		}
	}
	return expected
}

func (r *run) unexpected(top ll.Symbol, expected []ll.Symbol) error {
	e := &SyntaxError{
		Pos:      r.pos,
		Top:      top,
		Expected: expected,
		Span:     r.token.Span(),
	}
	if r.token.TokType() == scanner.EOF {
		e.AtEnd = true
	} else {
		e.Token = r.token.Lexeme()
	}
	return syntaxError(e)
}

// --- Literal input ---------------------------------------------------------

// literals is a tokenizer for pre-tokenized input.
type literals struct {
	tokens []string
	pos    int
}

var _ scanner.Tokenizer = (*literals)(nil)

func (l *literals) NextToken() ll1.Token {
	i := uint64(l.pos)
	if l.pos >= len(l.tokens) {
		return scanner.MakeDefaultToken(scanner.EOF, "", "", ll1.Span{i, i})
	}
	l.pos++
	lit := l.tokens[i]
	return scanner.MakeDefaultToken(0, lit, lit, ll1.Span{i, i + 1})
}

func (l *literals) SetErrorHandler(func(error)) {}
