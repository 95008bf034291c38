/*
Package expr implements a tiny expression tree and its evaluator.

Expression trees are built from exactly two kinds of nodes: numbers and sums.
The set of node types is closed: only types of this package implement Expr.
Trees are immutable once built and, as every Sum owns its two children, they are
always finite and free of cycles.

    e := expr.Add(expr.Add(expr.N(1), expr.N(2)), expr.N(3))
    v, err := expr.Eval(e)   // v = 6

Sub-package exprlang parses expression trees from text like "1 + 2 + 3".

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'idioms.expr'.
func tracer() tracing.Trace {
	return tracing.Select("idioms.expr")
}
