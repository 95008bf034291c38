/*
Package scanner defines an interface for scanners to be used with the parsers
of this module, together with an adapter for lexmachine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"
	"text/scanner"

	"github.com/npillmayer/idioms"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'idioms.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("idioms.scanner")
}

// EOF is identical to text/scanner.EOF.
// Token types are replicated here for practical reasons.
const (
	EOF     = scanner.EOF
	Ident   = scanner.Ident
	Int     = scanner.Int
)

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() idioms.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   idioms.TokType
	lexeme string
	Val    interface{}
	span   idioms.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ idioms.TokType, lexeme string, span idioms.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() idioms.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() idioms.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q%s>", t.kind, t.lexeme, t.span)
}
