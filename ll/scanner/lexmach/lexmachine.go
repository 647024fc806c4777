package lexmach

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/ll1/ll"
	"github.com/npillmayer/ll1/ll/scanner"
	"github.com/npillmayer/schuko/tracing"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', ';', …), a list of keywords ("if", "for", …) and a
// map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, keywords []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		adapter.Lexer.Add([]byte(quote(lit)), MakeToken(lit, tokenIds[lit]))
	}
	for _, name := range keywords {
		adapter.Lexer.Add([]byte(strings.ToLower(name)), MakeToken(name, tokenIds[name]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Class is a pattern for a terminal which stands for a class of input strings,
// e.g. terminal "id" for identifiers.
type Class struct {
	Terminal string // name of the terminal
	Pattern  string // lexmachine regular expression
}

// ForGrammar creates a lexmachine adapter for the terminals of grammar g.
// Terminals which are not given a Class pattern are matched literally. Whitespace
// is skipped. Matches are maximal; for matches of equal length, literal terminals
// take precedence over classes.
//
// The lexeme of every token produced is the name of the terminal it matched,
// the matched input is available as the token's text.
func ForGrammar(g *ll.Grammar, classes ...Class) (*LMAdapter, error) {
	adapter := &LMAdapter{Lexer: lexmachine.NewLexer()}
	isClass := make(map[string]bool, len(classes))
	for _, c := range classes {
		isClass[c.Terminal] = true
	}
	id := 1
	for _, a := range g.Terminals() {
		if isClass[a] {
			continue
		}
		tracer().Debugf("literal terminal %q", a)
		adapter.Lexer.Add([]byte(quote(a)), MakeToken(a, id))
		id++
	}
	for _, c := range classes {
		if !g.IsTerminal(c.Terminal) {
			return nil, fmt.Errorf("%w: class %q is not a terminal of grammar %q",
				ll.ErrInvalidGrammar, c.Terminal, g.Name)
		}
		adapter.Lexer.Add([]byte(c.Pattern), MakeToken(c.Terminal, id))
		id++
	}
	adapter.Lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// quote escapes every character of a literal which is not a letter or digit.
func quote(lit string) string {
	var b strings.Builder
	for _, r := range lit {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{s, logError}, nil
}

// Split is a convenience function to tokenize a complete input string. It returns
// the lexemes of all tokens, suitable as input for predictive.Parse.
// Split reports the first scanner error, if any.
func Split(lm *LMAdapter, input string) ([]string, error) {
	scan, err := lm.Scanner(input)
	if err != nil {
		return nil, err
	}
	var firstErr error
	scan.SetErrorHandler(func(e error) {
		logError(e)
		if firstErr == nil {
			firstErr = e
		}
	})
	lexemes := scanner.Lexemes(scan)
	return lexemes, firstErr
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ scanner.Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// Default error reporting function for lexmachine-based scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// NextToken is part of the Tokenizer interface. Unconsumable input is reported
// to the error handler and skipped.
func (lms *LMScanner) NextToken() ll1.Token {
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		lms.Error(err)
		if ui, is := err.(*machines.UnconsumedInput); is {
			lms.scanner.TC = ui.FailTC
		}
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		end := uint64(lms.scanner.TC)
		return scanner.MakeDefaultToken(scanner.EOF, "", "", ll1.Span{end, end})
	}
	tracer().Debugf("tok is %T | %v", tok, tok)
	token := tok.(*lexmachine.Token)
	lexeme := string(token.Lexeme)
	if name, ok := token.Value.(string); ok {
		lexeme = name
	}
	return scanner.MakeDefaultToken(
		ll1.TokType(token.Type),
		lexeme,
		string(token.Lexeme),
		ll1.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
// The token's lexeme will be name.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, name, m), nil
	}
}
