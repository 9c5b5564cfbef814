package deps

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/symgo/symex/expr"
)

func TestVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.mapper")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	y := expr.Must(expr.NewVariable("y"))
	a := expr.Must(expr.NewVariable("a"))
	tree := expr.Must(expr.NewSum(
		expr.Must(expr.NewProduct(y, x)),
		expr.Must(expr.NewSubscript(a, x)),
		x,
		3,
	))
	names, err := Variables(tree)
	if err != nil {
		t.Fatalf("collection failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"a", "x", "y"}) {
		t.Errorf("expected sorted unique names [a x y], got %v", names)
	}
}

func TestVariablesIgnoresFunctionSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.mapper")
	defer teardown()
	sin := expr.Must(expr.NewFunctionSymbol("sin", 1))
	x := expr.Must(expr.NewVariable("x"))
	tree := expr.Must(expr.NewCall(sin, x))
	names, err := Variables(tree)
	if err != nil {
		t.Fatalf("collection failed: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"x"}) {
		t.Errorf("function symbols are not variables, got %v", names)
	}
}
