package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"fmt"
	"math"
	"reflect"

	"github.com/symgo/symex"
	"github.com/symgo/symex/expr"
	"github.com/symgo/symex/mapper"
)

// Function is a callable bound into an evaluation context. A tree calls it
// through a Call node whose function operand evaluates to the Function.
type Function func(args ...interface{}) (interface{}, error)

// UnknownVariableError reports a variable or function symbol with no
// binding in the evaluation context.
type UnknownVariableError struct {
	Name string
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("no binding for variable %q", e.Name)
}

// Error reports an operand combination an operator cannot evaluate.
type Error struct {
	Kind   symex.Kind
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot evaluate %s: %s", e.Kind, e.Reason)
}

func evalErr(kind symex.Kind, format string, args ...interface{}) error {
	err := &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
	tracer().Debugf(err.Error())
	return err
}

// Evaluate computes the value of a tree over a set of variable bindings.
// Common-subexpression markers are honored: a marked object is computed
// once per marker scope. For repeated evaluations over changing bindings
// create one Evaluator per binding set instead.
func Evaluate(v interface{}, bindings map[string]interface{}) (interface{}, error) {
	return NewEvaluator(bindings).Eval(v)
}

// Evaluator evaluates trees over one fixed set of bindings, keeping
// expression- and global-scoped marker results across Eval calls.
type Evaluator struct {
	cache *mapper.Cache
}

// NewEvaluator builds an evaluator over the given bindings. The map is
// captured by reference and must not change while the evaluator is in use,
// since marker results computed from it are retained.
func NewEvaluator(bindings map[string]interface{}) *Evaluator {
	return &Evaluator{cache: mapper.NewCache(newMapper(bindings))}
}

// Eval computes the value of a tree.
func (ev *Evaluator) Eval(v interface{}) (interface{}, error) {
	return ev.cache.Map(v)
}

func recNumber(rec mapper.Rec, kind symex.Kind, v interface{}) (number, error) {
	r, err := rec(v)
	if err != nil {
		return number{}, err
	}
	n, ok := toNumber(r)
	if !ok {
		return number{}, evalErr(kind, "operand %v (%T) is not numeric", r, r)
	}
	return n, nil
}

func recInt(rec mapper.Rec, kind symex.Kind, v interface{}) (int64, error) {
	n, err := recNumber(rec, kind, v)
	if err != nil {
		return 0, err
	}
	if n.class != classInt {
		return 0, evalErr(kind, "operand %v is not integral", n.value())
	}
	return n.i, nil
}

func recBool(rec mapper.Rec, kind symex.Kind, v interface{}) (bool, error) {
	r, err := rec(v)
	if err != nil {
		return false, err
	}
	b, ok := r.(bool)
	if !ok {
		return false, evalErr(kind, "operand %v (%T) is not a truth value", r, r)
	}
	return b, nil
}

// foldNum makes a handler folding a binary numeric operation over the
// operand list left to right.
func foldNum(op func(a, b number) number) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		acc, err := recNumber(rec, e.Kind(), ops[0])
		if err != nil {
			return nil, err
		}
		for _, c := range ops[1:] {
			n, err := recNumber(rec, e.Kind(), c)
			if err != nil {
				return nil, err
			}
			acc = op(acc, n)
		}
		return acc.value(), nil
	}
}

func foldInt(op func(a, b int64) int64) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		acc, err := recInt(rec, e.Kind(), ops[0])
		if err != nil {
			return nil, err
		}
		for _, c := range ops[1:] {
			n, err := recInt(rec, e.Kind(), c)
			if err != nil {
				return nil, err
			}
			acc = op(acc, n)
		}
		return acc, nil
	}
}

// binNum makes a handler for a fixed two-operand numeric operation, where
// op may reject an operand combination with a reason.
func binNum(op func(a, b number) (number, string)) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		a, err := recNumber(rec, e.Kind(), ops[0])
		if err != nil {
			return nil, err
		}
		b, err := recNumber(rec, e.Kind(), ops[1])
		if err != nil {
			return nil, err
		}
		r, reason := op(a, b)
		if reason != "" {
			return nil, evalErr(e.Kind(), "%s", reason)
		}
		return r.value(), nil
	}
}

func shiftHandler(left bool) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		a, err := recInt(rec, e.Kind(), ops[0])
		if err != nil {
			return nil, err
		}
		by, err := recInt(rec, e.Kind(), ops[1])
		if err != nil {
			return nil, err
		}
		if by < 0 {
			return nil, evalErr(e.Kind(), "negative shift count %d", by)
		}
		if left {
			return a << uint64(by), nil
		}
		return a >> uint64(by), nil
	}
}

// extremum folds min or max over the operand list; want is the comparison
// outcome that replaces the accumulator.
func extremum(want int) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		acc, err := recNumber(rec, e.Kind(), ops[0])
		if err != nil {
			return nil, err
		}
		for _, c := range ops[1:] {
			n, err := recNumber(rec, e.Kind(), c)
			if err != nil {
				return nil, err
			}
			o, ok := cmpNum(n, acc)
			if !ok {
				return nil, evalErr(e.Kind(), "complex operands are unordered")
			}
			if o == want {
				acc = n
			}
		}
		return acc.value(), nil
	}
}

func newMapper(bindings map[string]interface{}) *mapper.Mapper {
	m := mapper.New("eval")

	m.OnConstant = func(rec mapper.Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		return v, nil
	}
	m.OnArray = func(rec mapper.Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		return v, nil
	}
	m.OnSequence = func(rec mapper.Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		var seq []interface{}
		switch v := v.(type) {
		case []interface{}:
			seq = v
		case []symex.Expression:
			seq = make([]interface{}, len(v))
			for i, e := range v {
				seq[i] = e
			}
		}
		out := make([]interface{}, len(seq))
		for i, c := range seq {
			r, err := rec(c)
			if err != nil {
				return nil, err
			}
			out[i] = r
		}
		return out, nil
	}

	m.Handle(expr.KindVariable, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		name := e.(*expr.Variable).Name()
		v, ok := bindings[name]
		if !ok {
			return nil, &UnknownVariableError{Name: name}
		}
		return v, nil
	})
	m.Handle(expr.KindFunctionSymbol, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		name := e.(*expr.FunctionSymbol).Name()
		v, ok := bindings[name]
		if !ok {
			return nil, &UnknownVariableError{Name: name}
		}
		return v, nil
	})
	m.Handle(expr.KindNaN, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		return math.NaN(), nil
	})

	m.Handle(expr.KindCall, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		c := e.(*expr.Call)
		fv, err := rec(c.Function())
		if err != nil {
			return nil, err
		}
		fn, ok := fv.(Function)
		if !ok {
			return nil, evalErr(expr.KindCall, "%v (%T) is not callable", fv, fv)
		}
		params := c.Parameters()
		args := make([]interface{}, len(params))
		for i, p := range params {
			r, err := rec(p)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		return fn(args...)
	})
	m.Handle(expr.KindSubscript, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		s := e.(*expr.Subscript)
		agg, err := rec(s.Aggregate())
		if err != nil {
			return nil, err
		}
		idx, err := recInt(rec, expr.KindSubscript, s.Index())
		if err != nil {
			return nil, err
		}
		rv := reflect.ValueOf(agg)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil, evalErr(expr.KindSubscript, "%T is not indexable", agg)
		}
		if idx < 0 || idx >= int64(rv.Len()) {
			return nil, evalErr(expr.KindSubscript, "index %d out of range [0, %d)", idx, rv.Len())
		}
		return rv.Index(int(idx)).Interface(), nil
	})

	m.Handle(expr.KindSum, foldNum(addNum))
	m.Handle(expr.KindProduct, foldNum(mulNum))
	m.Handle(expr.KindQuotient, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		a, err := recNumber(rec, e.Kind(), ops[0])
		if err != nil {
			return nil, err
		}
		b, err := recNumber(rec, e.Kind(), ops[1])
		if err != nil {
			return nil, err
		}
		return divNum(a, b).value(), nil
	})
	m.Handle(expr.KindFloorDiv, binNum(floorDivNum))
	m.Handle(expr.KindRemainder, binNum(modNum))
	m.Handle(expr.KindPower, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		p := e.(*expr.Power)
		a, err := recNumber(rec, expr.KindPower, p.Base())
		if err != nil {
			return nil, err
		}
		b, err := recNumber(rec, expr.KindPower, p.Exponent())
		if err != nil {
			return nil, err
		}
		return powNum(a, b).value(), nil
	})

	m.Handle(expr.KindLeftShift, shiftHandler(true))
	m.Handle(expr.KindRightShift, shiftHandler(false))
	m.Handle(expr.KindBitwiseNot, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		n, err := recInt(rec, e.Kind(), e.Children()[0])
		if err != nil {
			return nil, err
		}
		return ^n, nil
	})
	m.Handle(expr.KindBitwiseOr, foldInt(func(a, b int64) int64 { return a | b }))
	m.Handle(expr.KindBitwiseXor, foldInt(func(a, b int64) int64 { return a ^ b }))
	m.Handle(expr.KindBitwiseAnd, foldInt(func(a, b int64) int64 { return a & b }))

	m.Handle(expr.KindComparison, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		c := e.(*expr.Comparison)
		a, err := recNumber(rec, expr.KindComparison, c.Left())
		if err != nil {
			return nil, err
		}
		b, err := recNumber(rec, expr.KindComparison, c.Right())
		if err != nil {
			return nil, err
		}
		o, ok := cmpNum(a, b)
		if !ok {
			// Complex numbers support equality only.
			eq := a.cmplx() == b.cmplx()
			switch c.Operator() {
			case expr.OpEq:
				return eq, nil
			case expr.OpNe:
				return !eq, nil
			}
			return nil, evalErr(expr.KindComparison, "complex operands are unordered")
		}
		switch c.Operator() {
		case expr.OpEq:
			return o == 0, nil
		case expr.OpNe:
			return o != 0, nil
		case expr.OpLt:
			return o < 0, nil
		case expr.OpLe:
			return o <= 0, nil
		case expr.OpGt:
			return o > 0, nil
		}
		return o >= 0, nil
	})
	m.Handle(expr.KindLogicalNot, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		b, err := recBool(rec, e.Kind(), e.Children()[0])
		if err != nil {
			return nil, err
		}
		return !b, nil
	})
	m.Handle(expr.KindLogicalAnd, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		for _, c := range e.Children() {
			b, err := recBool(rec, e.Kind(), c)
			if err != nil {
				return nil, err
			}
			if !b {
				return false, nil
			}
		}
		return true, nil
	})
	m.Handle(expr.KindLogicalOr, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		for _, c := range e.Children() {
			b, err := recBool(rec, e.Kind(), c)
			if err != nil {
				return nil, err
			}
			if b {
				return true, nil
			}
		}
		return false, nil
	})
	m.Handle(expr.KindIf, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		i := e.(*expr.If)
		cond, err := recBool(rec, expr.KindIf, i.Condition())
		if err != nil {
			return nil, err
		}
		// Only the taken branch is evaluated.
		if cond {
			return rec(i.Then())
		}
		return rec(i.Else())
	})
	m.Handle(expr.KindMin, extremum(-1))
	m.Handle(expr.KindMax, extremum(1))

	return m
}
