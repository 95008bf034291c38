package expr

import (
	"errors"
	"fmt"
)

// ErrInvalidExpression is the error kind of every failed evaluation.
// Test for it with errors.Is.
var ErrInvalidExpression = errors.New("invalid expression")

// InvalidExpression is returned by Eval for nodes which are neither a Num nor
// a Sum. It keeps the offending node.
type InvalidExpression struct {
	Node Expr
	Msg  string
}

func invalid(e Expr) *InvalidExpression {
	if e == nil {
		return &InvalidExpression{Msg: "missing sub-expression (nil)"}
	}
	return &InvalidExpression{
		Node: e,
		Msg:  fmt.Sprintf("unknown expression type %T", e),
	}
}

func (ie *InvalidExpression) Error() string {
	return ErrInvalidExpression.Error() + ": " + ie.Msg
}

func (ie *InvalidExpression) Unwrap() error {
	return ErrInvalidExpression
}
