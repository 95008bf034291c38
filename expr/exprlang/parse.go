package exprlang

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/idioms"
	"github.com/npillmayer/idioms/expr"
	"github.com/npillmayer/idioms/scanner"
	"github.com/timtadh/lexmachine/machines"
)

// Resolver resolves identifiers to values. *runtime.Scope is a Resolver.
type Resolver interface {
	Resolve(name string) (int, bool)
}

// Statement is the result of parsing a line of input. For assignments,
// Name is the identifier to bind; otherwise Name is empty.
type Statement struct {
	Name string
	Expr expr.Expr
}

// IsAssignment is true for statements of the form "name = expr".
func (st Statement) IsAssignment() bool {
	return st.Name != ""
}

// SyntaxError is returned for input which is not a valid expression or statement.
type SyntaxError struct {
	Span idioms.Span
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %s: %s", e.Span, e.Msg)
}

// Parse parses a single expression. Identifiers are looked up with env,
// which may be nil if the input is not expected to contain identifiers.
func Parse(input string, env Resolver) (expr.Expr, error) {
	p, err := newParser(input, env)
	if err != nil {
		return nil, err
	}
	e := p.expression()
	p.expect(scanner.EOF)
	if p.err != nil {
		return nil, p.err
	}
	return e, nil
}

// ParseStatement parses either an assignment or a plain expression.
func ParseStatement(input string, env Resolver) (Statement, error) {
	p, err := newParser(input, env)
	if err != nil {
		return Statement{}, err
	}
	st := Statement{}
	if p.peek(0).TokType() == scanner.Ident && p.peek(1).TokType() == '=' {
		st.Name = p.next().Lexeme()
		p.next()
	}
	st.Expr = p.expression()
	p.expect(scanner.EOF)
	if p.err != nil {
		return Statement{}, p.err
	}
	return st, nil
}

// MustParse is like Parse, without a resolver, and panics on errors.
// It simplifies building trees for tests and examples.
func MustParse(input string) expr.Expr {
	e, err := Parse(input, nil)
	if err != nil {
		panic(err)
	}
	return e
}

// --- Recursive descent -----------------------------------------------------

type parser struct {
	scan      scanner.Tokenizer
	lookahead []idioms.Token
	env       Resolver
	err       error // first error wins
}

func newParser(input string, env Resolver) (*parser, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{scan: scan, env: env}
	scan.SetErrorHandler(func(e error) {
		var ui *machines.UnconsumedInput
		if errors.As(e, &ui) {
			span := idioms.Span{uint64(ui.StartTC), uint64(ui.FailTC)}
			p.fail(span, "unexpected input %q", input[ui.StartTC:min(ui.FailTC+1, len(input))])
			return
		}
		p.fail(idioms.Span{}, "%v", e)
	})
	return p, nil
}

func (p *parser) fail(span idioms.Span, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	p.err = &SyntaxError{Span: span, Msg: fmt.Sprintf(format, args...)}
	tracer().Errorf("%v", p.err)
}

func (p *parser) peek(n int) idioms.Token {
	for len(p.lookahead) <= n {
		p.lookahead = append(p.lookahead, p.scan.NextToken())
	}
	return p.lookahead[n]
}

func (p *parser) next() idioms.Token {
	tok := p.peek(0)
	p.lookahead = p.lookahead[1:]
	tracer().Debugf("token %q", tok.Lexeme())
	return tok
}

func (p *parser) expect(typ idioms.TokType) idioms.Token {
	tok := p.next()
	if tok.TokType() != typ {
		p.fail(tok.Span(), "expected %s, got %s", tokenName(int(typ)), describe(tok))
	}
	return tok
}

func describe(tok idioms.Token) string {
	if tok.TokType() == scanner.EOF {
		return "end of input"
	}
	return fmt.Sprintf("%q", tok.Lexeme())
}

// Expr ::= Term { '+' Term }
func (p *parser) expression() expr.Expr {
	e := p.term()
	for p.err == nil && p.peek(0).TokType() == '+' {
		p.next()
		e = expr.Add(e, p.term())
	}
	return e
}

// Term ::= number | ident | '(' Expr ')'
func (p *parser) term() expr.Expr {
	tok := p.next()
	switch tok.TokType() {
	case scanner.Int:
		n, err := strconv.Atoi(tok.Lexeme())
		if err != nil {
			p.fail(tok.Span(), "number %s out of range", tok.Lexeme())
			return expr.N(0)
		}
		return expr.N(n)
	case scanner.Ident:
		if p.env == nil {
			p.fail(tok.Span(), "cannot resolve identifier %q", tok.Lexeme())
			return expr.N(0)
		}
		v, ok := p.env.Resolve(tok.Lexeme())
		if !ok {
			p.fail(tok.Span(), "unbound identifier %q", tok.Lexeme())
			return expr.N(0)
		}
		return expr.N(v)
	case '(':
		e := p.expression()
		p.expect(')')
		return e
	}
	p.fail(tok.Span(), "expected number, identifier or '(', got %s", describe(tok))
	return expr.N(0)
}
