package expr

// Eval computes the value of an expression tree.
//
// For a Sum, the right operand is evaluated before the left one. Both are
// always evaluated. Nodes other than Num and Sum make Eval fail with an
// *InvalidExpression, which is passed up unchanged from any depth.
func Eval(e Expr) (int, error) {
	switch x := e.(type) {
	case Num:
		return x.Value, nil
	case Sum:
		r, err := Eval(x.Right)
		if err != nil {
			return 0, err
		}
		l, err := Eval(x.Left)
		if err != nil {
			return 0, err
		}
		tracer().Debugf("eval sum %d + %d = %d", l, r, l+r)
		return r + l, nil
	}
	err := invalid(e)
	tracer().Errorf("%v", err)
	return 0, err
}

// MustEval is like Eval, but panics if the expression cannot be evaluated.
func MustEval(e Expr) int {
	v, err := Eval(e)
	if err != nil {
		panic(err)
	}
	return v
}
