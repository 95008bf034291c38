package expr

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEvalNum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "idioms.expr")
	defer teardown()
	//
	v, err := Eval(N(5))
	if err != nil || v != 5 {
		t.Errorf("expected Num(5) to evaluate to 5, is %d (%v)", v, err)
	}
}

func TestEvalSums(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "idioms.expr")
	defer teardown()
	//
	cases := []struct {
		e        Expr
		expected int
	}{
		{Add(N(1), N(2)), 3},
		{Add(Add(N(1), N(2)), N(3)), 6},
		{Add(N(1), Add(N(2), N(3))), 6},
		{Add(N(-4), N(4)), 0},
		{Add(Add(N(1), N(2)), Add(N(3), N(4))), 10},
	}
	for i, c := range cases {
		v, err := Eval(c.e)
		if err != nil {
			t.Errorf("case #%d: unexpected error %v", i, err)
		} else if v != c.expected {
			t.Errorf("case #%d: expected %s = %d, is %d", i, c.e, c.expected, v)
		}
	}
}

type foreign struct{}

func (foreign) isExpr()        {}
func (foreign) String() string { return "?" }

func TestEvalInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "idioms.expr")
	defer teardown()
	//
	for _, e := range []Expr{foreign{}, nil, Add(N(1), foreign{}), Add(Add(nil, N(1)), N(2))} {
		_, err := Eval(e)
		if err == nil {
			t.Fatalf("expected %v to fail evaluation", e)
		}
		if !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("expected error to be an invalid expression error, is %v", err)
		}
		var ie *InvalidExpression
		if !errors.As(err, &ie) || ie.Msg == "" {
			t.Errorf("expected error to carry a message, is %#v", err)
		}
	}
}

func TestEvalRightOperandFirst(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "idioms.expr")
	defer teardown()
	//
	// both operands are invalid; the error must stem from the right one
	_, err := Eval(Add(nil, foreign{}))
	var ie *InvalidExpression
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InvalidExpression, got %v", err)
	}
	if _, ok := ie.Node.(foreign); !ok {
		t.Errorf("expected error from right operand foreign{}, error is about %v", ie.Node)
	}
	_, err = Eval(Add(foreign{}, nil))
	if !errors.As(err, &ie) || ie.Node != nil {
		t.Errorf("expected error from nil right operand, error is about %v", ie.Node)
	}
}

func TestMustEvalPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustEval to panic for a foreign node")
		}
	}()
	MustEval(Add(N(1), foreign{}))
}

// randomTree builds a tree with n leaves of random shape.
func randomTree(rnd *rand.Rand, n int) Expr {
	if n == 1 {
		return N(rnd.Intn(201) - 100)
	}
	k := 1 + rnd.Intn(n-1)
	return Add(randomTree(rnd, k), randomTree(rnd, n-k))
}

func TestEvalIsSumOfLeaves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "idioms.expr")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(4711))
	for i := 0; i < 200; i++ {
		e := randomTree(rnd, 1+rnd.Intn(30))
		sum := 0
		for v := range Leaves(e) {
			sum += v
		}
		if v := MustEval(e); v != sum {
			t.Fatalf("expected %s = %d, is %d", e, sum, v)
		}
	}
}
