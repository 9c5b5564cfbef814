package render

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/symgo/symex"
	"github.com/symgo/symex/expr"
	"github.com/symgo/symex/mapper"
)

func mustRender(t *testing.T, v interface{}) string {
	t.Helper()
	s, err := Render(v)
	if err != nil {
		t.Fatalf("rendering failed: %v", err)
	}
	return s
}

func TestPrecedenceParenthesization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.render")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	cases := []struct {
		tree interface{}
		want string
	}{
		{expr.Must(expr.NewPower(expr.Must(expr.NewSum(x, 1)), 5)), "(x + 1)**5"},
		{expr.Must(expr.NewSum(expr.Must(expr.NewSum(x, 1)), 2)), "x + 1 + 2"},
		{expr.Must(expr.NewSum(x, expr.Must(expr.NewProduct(2, x)))), "x + 2*x"},
		{expr.Must(expr.NewProduct(2, expr.Must(expr.NewSum(x, 1)))), "2*(x + 1)"},
		{expr.Must(expr.NewPower(x, expr.Must(expr.NewSum(x, 1)))), "x**(x + 1)"},
	}
	for _, c := range cases {
		if got := mustRender(t, c.tree); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}

func TestNonAssociativeOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.render")
	defer teardown()
	a := expr.Must(expr.NewVariable("a"))
	b := expr.Must(expr.NewVariable("b"))
	c := expr.Must(expr.NewVariable("c"))
	cases := []struct {
		tree interface{}
		want string
	}{
		// Divisions at equal precedence cannot rely on precedence alone.
		{expr.Must(expr.NewProduct(a, expr.Must(expr.NewQuotient(b, c)))), "a*(b / c)"},
		{expr.Must(expr.NewQuotient(expr.Must(expr.NewProduct(a, b)), c)), "(a*b) / c"},
		{expr.Must(expr.NewQuotient(a, expr.Must(expr.NewQuotient(b, c)))), "a / (b / c)"},
		{expr.Must(expr.NewRemainder(a, expr.Must(expr.NewProduct(b, c)))), "a % (b*c)"},
		{expr.Must(expr.NewFloorDiv(a, b)), "a // b"},
		// Nested shifts parenthesize instead of chaining.
		{expr.Must(expr.NewLeftShift(expr.Must(expr.NewLeftShift(a, b)), c)), "(a << b) << c"},
	}
	for _, cse := range cases {
		if got := mustRender(t, cse.tree); got != cse.want {
			t.Errorf("expected %q, got %q", cse.want, got)
		}
	}
}

func TestSignedConstants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.render")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	if got := mustRender(t, expr.Must(expr.NewProduct(-1, x))); got != "(-1)*x" {
		t.Errorf("negative factor should be parenthesized, got %q", got)
	}
	if got := mustRender(t, expr.Must(expr.NewSum(x, -1))); got != "x + -1" {
		t.Errorf("sum positions leave signed constants bare, got %q", got)
	}
}

func TestLogicAndConditionals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.render")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	a := expr.Must(expr.NewVariable("a"))
	b := expr.Must(expr.NewVariable("b"))
	lt := expr.Must(expr.NewComparison(x, "<", 5))
	if got := mustRender(t, lt); got != "x < 5" {
		t.Errorf("expected %q, got %q", "x < 5", got)
	}
	cond := expr.Must(expr.NewIf(lt, a, b))
	if got := mustRender(t, cond); got != "a if x < 5 else b" {
		t.Errorf("expected conditional form, got %q", got)
	}
	and := expr.Must(expr.NewLogicalAnd(lt, expr.Must(expr.NewLogicalNot(b))))
	if got := mustRender(t, and); got != "x < 5 and not b" {
		t.Errorf("expected %q, got %q", "x < 5 and not b", got)
	}
}

func TestStructuralForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.render")
	defer teardown()
	a := expr.Must(expr.NewVariable("a"))
	i := expr.Must(expr.NewVariable("i"))
	f := expr.Must(expr.NewFunctionSymbol("sin", 1))
	cases := []struct {
		tree interface{}
		want string
	}{
		{expr.Must(expr.NewCall(f, a)), "sin(a)"},
		{expr.Must(expr.NewSubscript(a, i)), "a[i]"},
		{expr.Must(expr.NewSubscript(a, []interface{}{i, 0})), "a[i, 0]"},
		{expr.Must(expr.NewLookup(a, "imag")), "a.imag"},
		{expr.Must(expr.NewSlice(1, 10, 2)), "1:10:2"},
		{expr.Must(expr.NewSlice(nil, 10)), ":10"},
		{expr.Must(expr.NewMin(a, i)), "min(a, i)"},
		{expr.NewNaN(), "NaN"},
		{expr.Must(expr.NewCommonSubexpression(a, "", expr.ScopeEvaluation)), "CSE(a)"},
	}
	for _, c := range cases {
		if got := mustRender(t, c.tree); got != c.want {
			t.Errorf("expected %q, got %q", c.want, got)
		}
	}
}

func TestUserDefinedOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.render")
	defer teardown()
	// A new kind integrates by registering one handler that reuses the
	// shared precedence helper.
	m := NewMapper()
	m.Handle("test_cross", func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		left, err := rec(ops[0], PrecProduct)
		if err != nil {
			return nil, err
		}
		right, err := rec(ops[1], PrecProduct)
		if err != nil {
			return nil, err
		}
		s := left.(string) + " x " + right.(string)
		return ParenthesizeIfNeeded(s, precOf(extra), PrecProduct), nil
	})
	a := expr.Must(expr.NewVariable("a"))
	b := expr.Must(expr.NewVariable("b"))
	tree := expr.Must(expr.NewSum(&cross{parts: []interface{}{a, b}}, 1))
	r, err := m.Map(tree, PrecNone)
	if err != nil {
		t.Fatalf("rendering failed: %v", err)
	}
	if r.(string) != "a x b + 1" {
		t.Errorf("expected %q, got %q", "a x b + 1", r)
	}
}

type cross struct {
	parts []interface{}
}

func (c *cross) Kind() symex.Kind { return "test_cross" }

func (c *cross) Children() []interface{} { return append([]interface{}(nil), c.parts...) }

func (c *cross) Hash() uint64 { return symex.HashChildren(c.Kind(), c.parts) }

func TestSplitterCollectsAssignments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.render")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	shared := expr.Must(expr.NewSum(x, 1))
	marked := expr.Must(expr.NewCommonSubexpression(shared, "tmp", expr.ScopeEvaluation))
	tree := expr.Must(expr.NewProduct(marked, marked))

	sp := NewSplitter()
	s, err := sp.Render(tree)
	if err != nil {
		t.Fatalf("rendering failed: %v", err)
	}
	if s != "tmp*tmp" {
		t.Errorf("markers should render as their name, got %q", s)
	}
	assignments := sp.Assignments()
	if len(assignments) != 1 {
		t.Fatalf("expected one assignment, got %d", len(assignments))
	}
	if assignments[0].Name != "tmp" || assignments[0].Text != "x + 1" {
		t.Errorf("unexpected assignment %+v", assignments[0])
	}
}

func TestSplitterDependencyOrderAndNaming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.render")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	inner := expr.Must(expr.NewCommonSubexpression(expr.Must(expr.NewSum(x, 1)), "", expr.ScopeEvaluation))
	outer := expr.Must(expr.NewCommonSubexpression(expr.Must(expr.NewPower(inner, 2)), "", expr.ScopeEvaluation))
	tree := expr.Must(expr.NewSum(outer, inner))

	sp := NewSplitter()
	s, err := sp.Render(tree)
	if err != nil {
		t.Fatalf("rendering failed: %v", err)
	}
	if s != "CSE1 + CSE0" {
		t.Errorf("expected %q, got %q", "CSE1 + CSE0", s)
	}
	assignments := sp.Assignments()
	if len(assignments) != 2 {
		t.Fatalf("expected two assignments, got %d", len(assignments))
	}
	// The inner marker is defined before the outer one that uses it.
	if assignments[0].Name != "CSE0" || assignments[0].Text != "x + 1" {
		t.Errorf("unexpected first assignment %+v", assignments[0])
	}
	if assignments[1].Name != "CSE1" || assignments[1].Text != "CSE0**2" {
		t.Errorf("unexpected second assignment %+v", assignments[1])
	}
}
