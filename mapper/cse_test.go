package mapper

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/symgo/symex"
	"github.com/symgo/symex/expr"
)

func TestCacheComputesMarkedSubtreeOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.mapper")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	marked := expr.Must(expr.NewCommonSubexpression(x, "", expr.ScopeEvaluation))
	tree := expr.Must(expr.NewSum(marked, marked))

	var n int
	cached := NewCache(summing(&n))
	r, err := cached.Map(tree)
	if err != nil {
		t.Fatalf("cached map failed: %v", err)
	}
	if r.(int) != 2 {
		t.Errorf("expected 2, got %v", r)
	}
	if n != 1 {
		t.Errorf("marked subtree should be computed once under the cache, got %d computations", n)
	}

	// The same tree without the caching layer computes the payload at
	// every occurrence.
	n = 0
	plain := summing(&n)
	CSEPassThrough(plain)
	if _, err := plain.Map(tree); err != nil {
		t.Fatalf("uncached map failed: %v", err)
	}
	if n != 2 {
		t.Errorf("uncached map should compute twice, got %d computations", n)
	}
}

func TestCacheKeysByIdentityNotValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.mapper")
	defer teardown()
	// Two structurally equal but separately built payloads are distinct
	// occurrences and must be computed independently.
	a := expr.Must(expr.NewVariable("x"))
	b := expr.Must(expr.NewVariable("x"))
	if !symex.Equal(a, b) {
		t.Fatalf("test premise broken, a and b should be structurally equal")
	}
	tree := expr.Must(expr.NewSum(
		expr.Must(expr.NewCommonSubexpression(a, "", expr.ScopeEvaluation)),
		expr.Must(expr.NewCommonSubexpression(b, "", expr.ScopeEvaluation)),
	))
	var n int
	if _, err := NewCache(summing(&n)).Map(tree); err != nil {
		t.Fatalf("cached map failed: %v", err)
	}
	if n != 2 {
		t.Errorf("distinct payload objects must not be conflated, got %d computations", n)
	}
}

func TestCacheScopeLifetimes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.mapper")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	evalScoped := expr.Must(expr.NewCommonSubexpression(x, "", expr.ScopeEvaluation))
	exprScoped := expr.Must(expr.NewCommonSubexpression(x, "", expr.ScopeExpression))

	var n int
	c := NewCache(summing(&n))

	// Evaluation scope is fresh per top-level Map call.
	c.Map(evalScoped)
	c.Map(evalScoped)
	if n != 2 {
		t.Errorf("evaluation scope should not survive across calls, got %d computations", n)
	}

	// Expression scope persists across calls until Reset.
	n = 0
	c.Map(exprScoped)
	c.Map(exprScoped)
	if n != 1 {
		t.Errorf("expression scope should survive across calls, got %d computations", n)
	}
	c.Reset()
	c.Map(exprScoped)
	if n != 2 {
		t.Errorf("reset should drop expression-scoped results, got %d computations", n)
	}
}

func TestCacheForeignPayloads(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.mapper")
	defer teardown()
	var n int
	c := NewCache(summing(&n))

	// An evaluation-scoped marker over a foreign payload computes
	// uncached; recomputation within one call changes nothing.
	transient := expr.Must(expr.NewCommonSubexpression(17, "", expr.ScopeEvaluation))
	r, err := c.Map(transient)
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}
	if r.(int) != 17 {
		t.Errorf("expected 17, got %v", r)
	}

	// A persistent scope promises memoization, which needs a payload
	// identity the cache can key on. A foreign payload has none.
	persistent := expr.Must(expr.NewCommonSubexpression(17, "", expr.ScopeGlobal))
	_, err = c.Map(persistent)
	var misuse *ScopeMisuseError
	if !errors.As(err, &misuse) {
		t.Fatalf("expected ScopeMisuseError, got %v", err)
	}
	if misuse.Scope != expr.ScopeGlobal {
		t.Errorf("error should name the scope, got %s", misuse.Scope)
	}
}

func TestCacheTransparentForUnmarkedTrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.mapper")
	defer teardown()
	x := expr.Must(expr.NewVariable("x"))
	tree := expr.Must(expr.NewSum(x, x, 1))
	var n1, n2 int
	r1, err1 := summing(&n1).Map(tree)
	r2, err2 := NewCache(summing(&n2)).Map(tree)
	if err1 != nil || err2 != nil {
		t.Fatalf("map failed: %v / %v", err1, err2)
	}
	if r1.(int) != r2.(int) {
		t.Errorf("cache must be transparent for unmarked trees, got %v vs %v", r1, r2)
	}
	if n2 != 2 {
		t.Errorf("unmarked shared nodes are not cached, expected 2 computations, got %d", n2)
	}
}

func TestCacheUsesMarkerHandler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "symex.mapper")
	defer teardown()
	// A mapper with its own marker handler keeps that meaning under the
	// cache; only the memoization is added. Identity rebuilds markers, so
	// a cached identity map of a marked tree returns the marker object.
	x := expr.Must(expr.NewVariable("x"))
	marked := expr.Must(expr.NewCommonSubexpression(x, "tmp", expr.ScopeEvaluation))
	tree := expr.Must(expr.NewSum(marked, marked))
	r, err := NewCache(Identity("id")).Map(tree)
	if err != nil {
		t.Fatalf("cached identity failed: %v", err)
	}
	if r != interface{}(tree) {
		t.Errorf("cached identity should preserve the tree object")
	}
}
