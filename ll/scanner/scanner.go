/*
Package scanner defines an interface for tokenizers feeding the parsers of package
ll/predictive.

Two default scanner implementations are provided: (1) a thin wrapper over the Go std lib
'text/scanner', and (2) an adapter for lexmachine, living in sub-package `lexmach`.

LL(1) parsers match tokens literally: a token's lexeme is compared to the names of
terminals. Scanners therefore have to translate token categories into terminal names
where appropriate, e.g. every identifier into terminal "id":

    tokenizer := scanner.GoTokenizer("input", strings.NewReader("a + b*c"),
        scanner.Classify(scanner.Ident, "id"))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"io"
	"text/scanner"

	"github.com/npillmayer/ll1"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'll1.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("ll1.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF       = scanner.EOF
	Ident     = scanner.Ident
	Int       = scanner.Int
	Float     = scanner.Float
	Char      = scanner.Char
	String    = scanner.String
	RawString = scanner.RawString
	Comment   = scanner.Comment
)

// Tokenizer is a scanner interface. At the end of input, tokenizers return a token
// of type EOF, and will continue to do so for subsequent calls.
type Tokenizer interface {
	NextToken() ll1.Token
	SetErrorHandler(func(error))
}

// DefaultTokenizer is a default implementation, backed by scanner.Scanner.
// Create one with GoTokenizer.
type DefaultTokenizer struct {
	scanner.Scanner
	lastToken    rune            // last token this scanner has produced
	Error        func(error)     // error handler
	unifyStrings bool            // convert single chars to strings
	classes      map[rune]string // token category → terminal
}

var _ Tokenizer = (*DefaultTokenizer)(nil)

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// GoTokenizer creates a scanner/tokenizer accepting tokens similar to the Go language.
func GoTokenizer(sourceID string, input io.Reader, opts ...Option) *DefaultTokenizer {
	t := &DefaultTokenizer{classes: make(map[rune]string)}
	t.Error = logError
	t.Init(input)
	t.Filename = sourceID
	t.Scanner.Error = func(s *scanner.Scanner, msg string) {
		t.Error(fmt.Errorf("%s: %s", s.Position, msg))
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetErrorHandler sets an error handler for the scanner.
func (t *DefaultTokenizer) SetErrorHandler(h func(error)) {
	if h == nil {
		t.Error = logError
		return
	}
	t.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// The lexeme of a token is its text, unless the token's category has been mapped to
// a terminal with option Classify. Single character tokens always carry their text.
func (t *DefaultTokenizer) NextToken() ll1.Token {
	t.lastToken = t.Scan()
	if t.lastToken == scanner.EOF {
		tracer().Debugf("DefaultTokenizer reached end of input")
		return MakeDefaultToken(EOF, "", "", ll1.Span{uint64(t.Pos().Offset), uint64(t.Pos().Offset)})
	}
	if t.unifyStrings &&
		(t.lastToken == scanner.RawString || t.lastToken == scanner.Char) {
		t.lastToken = scanner.String
	}
	text := t.TokenText()
	lexeme := text
	if terminal, ok := t.classes[t.lastToken]; ok {
		lexeme = terminal
	}
	return DefaultToken{
		kind:   ll1.TokType(t.lastToken),
		lexeme: lexeme,
		text:   text,
		span:   ll1.Span{uint64(t.Position.Offset), uint64(t.Pos().Offset)},
	}
}

// Lexemes reads all the tokens of a tokenizer up to EOF and returns their lexemes.
// The result is suitable as input for predictive.Parse.
func Lexemes(t Tokenizer) []string {
	var lexemes []string
	for token := t.NextToken(); token.TokType() != EOF; token = t.NextToken() {
		lexemes = append(lexemes, token.Lexeme())
	}
	return lexemes
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the Go
// tokenizer as well as the LexMachine scanner.
type DefaultToken struct {
	kind   ll1.TokType
	lexeme string
	text   string
	span   ll1.Span
}

// MakeDefaultToken creates a token. For tokens which are matched by their text,
// lexeme and text are identical.
func MakeDefaultToken(typ ll1.TokType, lexeme, text string, span ll1.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		text:   text,
		span:   span,
	}
}

func (t DefaultToken) TokType() ll1.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Text() string {
	return t.text
}

func (t DefaultToken) Span() ll1.Span {
	return t.span
}

func (t DefaultToken) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	if t.lexeme == t.text {
		return fmt.Sprintf("'%s'%v", t.lexeme, t.span)
	}
	return fmt.Sprintf("%s('%s')%v", t.lexeme, t.text, t.span)
}

// --- Scanner options for the default (Go) tokenizer ---------------------------

// Option configures a default tokenizer.
type Option func(p *DefaultTokenizer)

// SkipComments sets or clears mode-flag SkipComments.
func SkipComments(b bool) Option {
	return func(t *DefaultTokenizer) {
		if b {
			t.Mode |= scanner.SkipComments
		} else {
			t.Mode &^= scanner.SkipComments
		}
	}
}

// UnifyStrings sets or clears option UnifyStrings:
// treat raw strings and single chars as strings.
func UnifyStrings(b bool) Option {
	return func(t *DefaultTokenizer) {
		t.unifyStrings = b
	}
}

// Classify maps a token category (Ident, Int, …) to the name of a terminal.
// Tokens of this category will carry the terminal name as their lexeme.
func Classify(category rune, terminal string) Option {
	return func(t *DefaultTokenizer) {
		t.classes[category] = terminal
	}
}
