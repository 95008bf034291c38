package expr

import (
	"fmt"
	"iter"
)

// Expr is an expression tree node. It is either a Num or a Sum.
type Expr interface {
	fmt.Stringer
	isExpr() // seals the set of node types
}

// Num is a leaf node holding an integer.
type Num struct {
	Value int
}

// Sum is an inner node, adding its two sub-expressions.
type Sum struct {
	Left  Expr
	Right Expr
}

func (Num) isExpr() {}
func (Sum) isExpr() {}

// N creates a number node.
func N(v int) Num {
	return Num{Value: v}
}

// Add creates a sum node.
func Add(left, right Expr) Sum {
	return Sum{Left: left, Right: right}
}

func (n Num) String() string {
	return fmt.Sprintf("%d", n.Value)
}

func (s Sum) String() string {
	return fmt.Sprintf("(%s + %s)", str(s.Left), str(s.Right))
}

// str guards against nil children, which cannot be printed by themselves.
func str(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}

// --- Walking trees ---------------------------------------------------------

// Leaves is a sequence of the values of all Num leaves of an expression tree,
// left to right. Nodes of unknown type and nil children are skipped.
func Leaves(e Expr) iter.Seq[int] {
	return func(yield func(int) bool) {
		leaves(e, yield)
	}
}

func leaves(e Expr, yield func(int) bool) bool {
	switch x := e.(type) {
	case Num:
		return yield(x.Value)
	case Sum:
		return leaves(x.Left, yield) && leaves(x.Right, yield)
	}
	return true
}

// Height returns the number of nodes on the longest path from the root of e
// to a leaf. A single number has height 1, nil has height 0.
func Height(e Expr) int {
	switch x := e.(type) {
	case Num:
		return 1
	case Sum:
		return 1 + max(Height(x.Left), Height(x.Right))
	}
	return 0
}
