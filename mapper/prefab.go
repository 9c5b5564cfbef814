package mapper

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"reflect"

	"github.com/symgo/symex"
	"github.com/symgo/symex/expr"
)

// same reports whether two operands are the identical object or value. It
// never panics on non-comparable types; those count as changed.
func same(a, b interface{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}

// recOperands maps every non-nil operand through rec and reports whether
// anything came back different.
func recOperands(rec Rec, ops []interface{}, extra ...interface{}) ([]interface{}, bool, error) {
	mapped := make([]interface{}, len(ops))
	changed := false
	for i, op := range ops {
		if op == nil {
			continue
		}
		r, err := rec(op, extra...)
		if err != nil {
			return nil, false, err
		}
		mapped[i] = r
		if !same(r, op) {
			changed = true
		}
	}
	return mapped, changed, nil
}

// rebuild makes a handler that recurses into all children and reconstructs
// the node through build only if any child changed, preserving object
// identity for untouched subtrees.
func rebuild(build func(ops []interface{}) (interface{}, error)) Handler {
	return func(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		mapped, changed, err := recOperands(rec, e.Children(), extra...)
		if err != nil {
			return nil, err
		}
		if !changed {
			return e, nil
		}
		return build(mapped)
	}
}

func keepNode(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
	return e, nil
}

func keepValue(rec Rec, v interface{}, extra ...interface{}) (interface{}, error) {
	return v, nil
}

// Identity returns a mapper that reconstructs a tree bottom-up, handling
// every built-in kind. Subtrees whose children all map to themselves are
// returned as the same object, so an unmodified tree maps to itself. A
// transformation is derived from it by overriding handlers for the kinds it
// rewrites.
func Identity(name string) *Mapper {
	m := New(name)
	m.OnConstant = keepValue
	m.OnArray = keepValue
	m.OnSequence = func(rec Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		seq := asSequence(v)
		mapped, changed, err := recOperands(rec, seq, extra...)
		if err != nil {
			return nil, err
		}
		if !changed {
			return v, nil
		}
		return mapped, nil
	}

	m.Handle(expr.KindVariable, keepNode)
	m.Handle(expr.KindFunctionSymbol, keepNode)
	m.Handle(expr.KindNaN, keepNode)

	m.Handle(expr.KindSum, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewSum(ops...)
	}))
	m.Handle(expr.KindProduct, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewProduct(ops...)
	}))
	m.Handle(expr.KindQuotient, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewQuotient(ops[0], ops[1])
	}))
	m.Handle(expr.KindFloorDiv, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewFloorDiv(ops[0], ops[1])
	}))
	m.Handle(expr.KindRemainder, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewRemainder(ops[0], ops[1])
	}))
	m.Handle(expr.KindPower, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewPower(ops[0], ops[1])
	}))
	m.Handle(expr.KindLeftShift, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewLeftShift(ops[0], ops[1])
	}))
	m.Handle(expr.KindRightShift, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewRightShift(ops[0], ops[1])
	}))
	m.Handle(expr.KindBitwiseNot, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewBitwiseNot(ops[0])
	}))
	m.Handle(expr.KindBitwiseOr, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewBitwiseOr(ops...)
	}))
	m.Handle(expr.KindBitwiseXor, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewBitwiseXor(ops...)
	}))
	m.Handle(expr.KindBitwiseAnd, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewBitwiseAnd(ops...)
	}))
	m.Handle(expr.KindLogicalNot, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewLogicalNot(ops[0])
	}))
	m.Handle(expr.KindLogicalAnd, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewLogicalAnd(ops...)
	}))
	m.Handle(expr.KindLogicalOr, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewLogicalOr(ops...)
	}))
	m.Handle(expr.KindIf, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewIf(ops[0], ops[1], ops[2])
	}))
	m.Handle(expr.KindMin, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewMin(ops...)
	}))
	m.Handle(expr.KindMax, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewMax(ops...)
	}))
	m.Handle(expr.KindCall, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewCall(ops[0], ops[1:]...)
	}))
	m.Handle(expr.KindSubscript, rebuild(func(ops []interface{}) (interface{}, error) {
		return expr.NewSubscript(ops[0], ops[1])
	}))

	m.Handle(expr.KindLookup, func(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		l := e.(*expr.Lookup)
		agg, err := rec(l.Aggregate(), extra...)
		if err != nil {
			return nil, err
		}
		if same(agg, l.Aggregate()) {
			return l, nil
		}
		return expr.NewLookup(agg, l.Name())
	})
	m.Handle(expr.KindComparison, func(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		c := e.(*expr.Comparison)
		left, err := rec(c.Left(), extra...)
		if err != nil {
			return nil, err
		}
		right, err := rec(c.Right(), extra...)
		if err != nil {
			return nil, err
		}
		if same(left, c.Left()) && same(right, c.Right()) {
			return c, nil
		}
		return expr.NewComparison(left, string(c.Operator()), right)
	})
	m.Handle(expr.KindSlice, func(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		s := e.(*expr.Slice)
		mapped, changed, err := recOperands(rec, s.Children(), extra...)
		if err != nil {
			return nil, err
		}
		if !changed {
			return s, nil
		}
		return expr.NewSlice(mapped[0], mapped[1], mapped[2])
	})
	m.Handle(expr.KindCSE, func(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		cse := e.(*expr.CommonSubexpression)
		child, err := rec(cse.Child(), extra...)
		if err != nil {
			return nil, err
		}
		if same(child, cse.Child()) {
			return cse, nil
		}
		return expr.NewCommonSubexpression(child, cse.Prefix(), cse.Scope())
	})
	return m
}

// CSEPassThrough registers a marker handler on m that computes the payload
// directly, ignoring the marker. For mappers run without a Cache, where the
// marker is advisory only.
func CSEPassThrough(m *Mapper) *Mapper {
	return m.Handle(expr.KindCSE, func(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		return rec(e.(*expr.CommonSubexpression).Child(), extra...)
	})
}

// Walker returns a mapper that visits every node and leaf of a tree in
// preorder, calling visit on each. Traversal stops at the first error
// returned by visit. The walk handles any kind without registration, so
// user-defined kinds are walked too.
func Walker(name string, visit func(v interface{}) error) *Mapper {
	m := New(name)
	m.Unsupported = func(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		if err := visit(e); err != nil {
			return nil, err
		}
		for _, c := range e.Children() {
			if c == nil {
				continue
			}
			if _, err := rec(c, extra...); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}
	leaf := func(rec Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		return nil, visit(v)
	}
	m.OnConstant = leaf
	m.OnArray = leaf
	m.OnForeign = leaf
	m.OnSequence = func(rec Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		if err := visit(v); err != nil {
			return nil, err
		}
		for _, c := range asSequence(v) {
			if c == nil {
				continue
			}
			if _, err := rec(c, extra...); err != nil {
				return nil, err
			}
		}
		return nil, nil
	}
	return m
}

func asSequence(v interface{}) []interface{} {
	switch v := v.(type) {
	case []interface{}:
		return v
	case []symex.Expression:
		seq := make([]interface{}, len(v))
		for i, e := range v {
			seq[i] = e
		}
		return seq
	}
	return nil
}
