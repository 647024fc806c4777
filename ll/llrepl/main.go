package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/gramload"
	"github.com/npillmayer/ll1/ll/predictive"
	"github.com/npillmayer/ll1/ll/scanner"
	"github.com/npillmayer/ll1/ll/scanner/lexmach"
)

// We provide a simple expression grammar as a default.
//
//  E  ➞ T E'
//  E' ➞ + T E'  |  ε
//  T  ➞ F T'
//  T' ➞ * F T'  |  ε
//  F  ➞ ( E )   |  id
//
func makeExprGrammar() *ll.Grammar {
	b := ll.NewGrammarBuilder("Expressions")
	b.LHS("E").N("T").N("E'").End()
	b.LHS("E'").T("+").N("T").N("E'").End()
	b.LHS("E'").Epsilon()
	b.LHS("T").N("F").N("T'").End()
	b.LHS("T'").T("*").N("F").N("T'").End()
	b.LHS("T'").Epsilon()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	if err != nil {
		panic(fmt.Errorf("error creating grammar: %s", err.Error()))
	}
	return g
}

// main() starts an interactive CLI ("LL.REPL"), where users may enter input
// for an LL(1) grammar. LL.REPL will parse the input and print out the parse tree.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	gfile := flag.String("grammar", "", "Grammar definition file (text or .json)")
	tokens := flag.String("tokens", "literal", "Tokenizer [literal|go]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to LL.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up grammar, analysis and parser
	g, err := loadGrammar(*gfile)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel)) // now set the user supplied level
	g.Dump()                                                       // only visible in debug mode
	intp, err := newIntp(g, *tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	intp.showTable()
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		intp.Eval(input)
	}
	//
	// set up REPL
	repl, err := readline.New("llrepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func loadGrammar(filename string) (*ll.Grammar, error) {
	if filename == "" {
		return makeExprGrammar(), nil
	}
	return gramload.LoadFile(filename)
}

// Intp is our interpreter object
type Intp struct {
	G        *ll.Grammar
	GA       *ll.LLAnalysis
	table    *ll.Table
	parser   *predictive.Parser
	tokenize func(string) ([]string, error)
	repl     *readline.Instance
}

func newIntp(g *ll.Grammar, tokens string) (*Intp, error) {
	ga, err := ll.Analysis(g)
	if err != nil {
		return nil, err
	}
	gen := ll.NewTableGenerator(ga)
	if err = gen.CreateTables(); err != nil {
		return nil, err
	}
	intp := &Intp{G: g, GA: ga, table: gen.Table()}
	if intp.parser, err = predictive.NewParser(g, intp.table); err != nil {
		return nil, err
	}
	switch tokens {
	case "literal":
		lm, err := lexmach.ForGrammar(g)
		if err != nil {
			return nil, err
		}
		intp.tokenize = func(input string) ([]string, error) {
			return lexmach.Split(lm, input)
		}
	case "go":
		intp.tokenize = intp.goTokens
	default:
		return nil, fmt.Errorf("unknown tokenizer %q", tokens)
	}
	return intp, nil
}

// goTokens tokenizes input like Go source. Identifiers and numbers are mapped to
// terminals "id" and "num", if the grammar has them.
func (intp *Intp) goTokens(input string) ([]string, error) {
	var opts []scanner.Option
	if intp.G.IsTerminal("id") {
		opts = append(opts, scanner.Classify(scanner.Ident, "id"))
	}
	if intp.G.IsTerminal("num") {
		opts = append(opts, scanner.Classify(scanner.Int, "num"), scanner.Classify(scanner.Float, "num"))
	}
	scan := scanner.GoTokenizer(intp.G.Name, strings.NewReader(input), opts...)
	var err error
	scan.SetErrorHandler(func(e error) {
		if err == nil {
			err = e
		}
	})
	lexemes := scanner.Lexemes(scan)
	return lexemes, err
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval executes a command or parses a line of input.
func (intp *Intp) Eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":first":
		intp.showSets("FIRST", intp.GA.First)
	case ":follow":
		intp.showSets("FOLLOW", intp.GA.Follow)
	case ":table":
		intp.showTable()
	case ":grammar":
		pterm.Println(gramload.Format(intp.G))
	default:
		if strings.HasPrefix(line, ":") {
			pterm.Error.Printf("unknown command %s\n", line)
			return false
		}
		intp.parse(line)
	}
	return false
}

func (intp *Intp) parse(line string) {
	tracer().Infof("----------------------- Parse ------------------------------------")
	tokens, err := intp.tokenize(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	tracer().Debugf("tokens = %v", tokens)
	tree, err := intp.parser.Parse(tokens)
	if err != nil {
		var serr *predictive.SyntaxError
		if errors.As(err, &serr) && !serr.AtEnd && int(serr.Pos) < len(tokens) {
			pterm.Error.Printf("%s\n    %s\n", err.Error(), markToken(tokens, int(serr.Pos)))
		} else {
			pterm.Error.Println(err.Error())
		}
		return
	}
	pterm.Info.Println(tree.String())
	root := pterm.NewTreeFromLeveledList(leveledNodes(tree))
	pterm.DefaultTree.WithRoot(root).Render()
}

// markToken underlines the token at position pos.
func markToken(tokens []string, pos int) string {
	var b strings.Builder
	b.WriteString(strings.Join(tokens, " "))
	b.WriteString("\n    ")
	for _, tok := range tokens[:pos] {
		b.WriteString(strings.Repeat(" ", len([]rune(tok))+1))
	}
	b.WriteString(strings.Repeat("^", len([]rune(tokens[pos]))))
	return b.String()
}

func leveledNodes(tree *predictive.Node) pterm.LeveledList {
	var list pterm.LeveledList
	tree.Walk(func(n *predictive.Node, depth int) bool {
		text := n.Symbol.String()
		if n.Token != nil && n.Token.Text() != n.Symbol.Name {
			text = fmt.Sprintf("%s '%s'", text, n.Token.Text())
		}
		list = append(list, pterm.LeveledListItem{Level: depth, Text: text})
		return true
	})
	return list
}

func (intp *Intp) showSets(title string, set func(string) *ll.SymbolSet) {
	data := pterm.TableData{{"", title}}
	for _, A := range intp.G.NonTerminals() {
		data = append(data, []string{A, set(A).String()})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) showTable() {
	header := []string{""}
	for _, a := range intp.table.Lookaheads() {
		header = append(header, a.String())
	}
	data := pterm.TableData{header}
	for _, A := range intp.table.NonTerminals() {
		row := []string{A}
		for _, a := range intp.table.Lookaheads() {
			var cell []string
			for _, p := range intp.table.Lookup(A, a) {
				cell = append(cell, rhsString(p))
			}
			row = append(row, strings.Join(cell, " / "))
		}
		data = append(data, row)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if intp.table.HasConflicts() {
		pterm.Error.Printf("grammar %s is not LL(1), conflicts: %v\n", intp.G.Name, intp.table.Conflicts())
		pterm.Error.Println(intp.table.Err().Error())
		return
	}
	pterm.Info.Printf("grammar %s is LL(1)\n", intp.G.Name)
}

func rhsString(p *ll.Production) string {
	syms := make([]string, 0, len(p.RHS()))
	for _, A := range p.RHS() {
		syms = append(syms, A.String())
	}
	return strings.Join(syms, " ")
}
