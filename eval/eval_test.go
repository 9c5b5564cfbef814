package eval

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/symgo/symex/expr"
	"github.com/symgo/symex/mapper"
)

func TestPolynomial(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	// 5*x**2 - 3*x at x = 5
	x := expr.Must(expr.NewVariable("x"))
	tree := expr.Must(expr.Sub(
		expr.Must(expr.NewProduct(5, expr.Must(expr.NewPower(x, 2)))),
		expr.Must(expr.NewProduct(3, x)),
	))
	r, err := Evaluate(tree, map[string]interface{}{"x": 5})
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if r.(int64) != 110 {
		t.Errorf("expected 110, got %v", r)
	}
}

func TestUnknownVariable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	_, err := Evaluate(expr.Must(expr.NewSum(x, 1)), nil)
	var unknown *UnknownVariableError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownVariableError, got %v", err)
	}
	if unknown.Name != "x" {
		t.Errorf("error should name the variable, got %q", unknown.Name)
	}
}

func TestNumericTower(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	cases := []struct {
		tree interface{}
		want interface{}
	}{
		{expr.Must(expr.NewSum(1, 2, 3)), int64(6)},
		{expr.Must(expr.NewSum(1, 2.5)), float64(3.5)},
		{expr.Must(expr.NewQuotient(7, 2)), float64(3.5)},
		{expr.Must(expr.NewFloorDiv(7, 2)), int64(3)},
		{expr.Must(expr.NewFloorDiv(-7, 2)), int64(-4)},
		{expr.Must(expr.NewRemainder(-7, 2)), int64(1)},
		{expr.Must(expr.NewPower(2, 10)), int64(1024)},
		{expr.Must(expr.NewPower(2, -1)), float64(0.5)},
		{expr.Must(expr.NewLeftShift(1, 4)), int64(16)},
		{expr.Must(expr.NewRightShift(32, 2)), int64(8)},
		{expr.Must(expr.NewBitwiseOr(1, 2, 4)), int64(7)},
		{expr.Must(expr.NewBitwiseAnd(6, 3)), int64(2)},
		{expr.Must(expr.NewBitwiseXor(6, 3)), int64(5)},
		{expr.Must(expr.NewBitwiseNot(0)), int64(-1)},
		{expr.Must(expr.NewMin(3, 1, 2)), int64(1)},
		{expr.Must(expr.NewMax(3, 1.5)), int64(3)},
	}
	for _, c := range cases {
		r, err := Evaluate(c.tree, nil)
		if err != nil {
			t.Errorf("evaluation of %v failed: %v", c.tree, err)
			continue
		}
		if r != c.want {
			t.Errorf("%v: expected %v (%T), got %v (%T)", c.tree, c.want, c.want, r, r)
		}
	}
}

func TestDivisionByZero(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	// Integer zero divisors must surface as errors scoped to the Eval
	// call, never as a runtime panic.
	var failure *Error
	if _, err := Evaluate(expr.Must(expr.NewFloorDiv(7, 0)), nil); !errors.As(err, &failure) {
		t.Errorf("integer floor division by zero should fail recoverably, got %v", err)
	}
	if _, err := Evaluate(expr.Must(expr.NewRemainder(7, 0)), nil); !errors.As(err, &failure) {
		t.Errorf("integer remainder by zero should fail recoverably, got %v", err)
	}
	// Floating-point divisors keep IEEE semantics.
	r, err := Evaluate(expr.Must(expr.NewRemainder(7.0, 0.0)), nil)
	if err != nil {
		t.Fatalf("float remainder should follow IEEE rules, got %v", err)
	}
	if !math.IsNaN(r.(float64)) {
		t.Errorf("expected NaN, got %v", r)
	}
}

func TestOversizedUnsignedOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	// uint64 values beyond the int64 range must not flip sign.
	big := uint64(1) << 63
	r, err := Evaluate(expr.Must(expr.NewSum(big, 0)), nil)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	f, ok := r.(float64)
	if !ok {
		t.Fatalf("oversized operand should promote to float64, got %T", r)
	}
	if f != float64(big) {
		t.Errorf("expected %v, got %v", float64(big), f)
	}
	if r, err := Evaluate(expr.Must(expr.NewSum(uint64(7), 1)), nil); err != nil || r.(int64) != 8 {
		t.Errorf("in-range unsigned operands should stay integral, got %v (%v)", r, err)
	}
}

func TestLogicAndConditional(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	lt := expr.Must(expr.NewComparison(x, "<", 10))
	cond := expr.Must(expr.NewIf(lt, "small", "large"))
	r, err := Evaluate(cond, map[string]interface{}{"x": 3})
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if r.(string) != "small" {
		t.Errorf("expected small, got %v", r)
	}
	r, err = Evaluate(cond, map[string]interface{}{"x": 30})
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if r.(string) != "large" {
		t.Errorf("expected large, got %v", r)
	}

	and := expr.Must(expr.NewLogicalAnd(lt, expr.Must(expr.NewComparison(x, ">", 0))))
	r, err = Evaluate(and, map[string]interface{}{"x": 3})
	if err != nil || r.(bool) != true {
		t.Errorf("expected true, got %v (%v)", r, err)
	}
	not := expr.Must(expr.NewLogicalNot(and))
	r, err = Evaluate(not, map[string]interface{}{"x": 3})
	if err != nil || r.(bool) != false {
		t.Errorf("expected false, got %v (%v)", r, err)
	}
}

func TestShortCircuit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	// The right operand would fail to evaluate; short-circuiting must
	// never reach it.
	boom := expr.Must(expr.NewVariable("boom"))
	or := expr.Must(expr.NewLogicalOr(expr.Must(expr.NewComparison(1, "<", 2)), boom))
	if r, err := Evaluate(or, nil); err != nil || r.(bool) != true {
		t.Errorf("disjunction should short-circuit, got %v (%v)", r, err)
	}
	and := expr.Must(expr.NewLogicalAnd(expr.Must(expr.NewComparison(2, "<", 1)), boom))
	if r, err := Evaluate(and, nil); err != nil || r.(bool) != false {
		t.Errorf("conjunction should short-circuit, got %v (%v)", r, err)
	}
}

func TestCallAndSubscript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	double := Function(func(args ...interface{}) (interface{}, error) {
		n, _ := toNumber(args[0])
		return 2 * n.i, nil
	})
	f := expr.Must(expr.NewVariable("double"))
	call := expr.Must(expr.NewCall(f, 21))
	r, err := Evaluate(call, map[string]interface{}{"double": double})
	if err != nil {
		t.Fatalf("call evaluation failed: %v", err)
	}
	if r.(int64) != 42 {
		t.Errorf("expected 42, got %v", r)
	}

	a := expr.Must(expr.NewVariable("a"))
	sub := expr.Must(expr.NewSubscript(a, 1))
	r, err = Evaluate(sub, map[string]interface{}{"a": []float64{1.5, 2.5}})
	if err != nil {
		t.Fatalf("subscript evaluation failed: %v", err)
	}
	if r.(float64) != 2.5 {
		t.Errorf("expected 2.5, got %v", r)
	}
}

func TestNaN(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	r, err := Evaluate(expr.NewNaN(), nil)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if !math.IsNaN(r.(float64)) {
		t.Errorf("expected NaN, got %v", r)
	}
}

func TestMarkedSubtreeEvaluatedOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	calls := 0
	count := Function(func(args ...interface{}) (interface{}, error) {
		calls++
		return args[0], nil
	})
	f := expr.Must(expr.NewVariable("count"))
	marked := expr.Must(expr.NewCommonSubexpression(expr.Must(expr.NewCall(f, 7)), "", expr.ScopeEvaluation))
	tree := expr.Must(expr.NewSum(marked, marked))
	r, err := Evaluate(tree, map[string]interface{}{"count": count})
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if r.(int64) != 14 {
		t.Errorf("expected 14, got %v", r)
	}
	if calls != 1 {
		t.Errorf("marked call should run once, ran %d times", calls)
	}
}

func TestUnevaluatableKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.eval")
	defer teardown()
	a := expr.Must(expr.NewVariable("a"))
	lookup := expr.Must(expr.NewLookup(a, "imag"))
	_, err := Evaluate(lookup, map[string]interface{}{"a": 1})
	var unsupported *mapper.UnsupportedError
	if !errors.As(err, &unsupported) {
		t.Errorf("attribute lookup has no numeric meaning, expected UnsupportedError, got %v", err)
	}
}
