package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/symgo/symex"
	"github.com/symgo/symex/expr"
	"github.com/symgo/symex/mapper"
)

// Precedence levels of the built-in operators. Higher binds tighter.
// PrecNone is the sentinel for atoms and for positions that never need
// parentheses. User-defined operators slot their own levels in between.
const (
	PrecNone       = 0
	PrecIf         = 3
	PrecLogicalOr  = 4
	PrecLogicalAnd = 5
	PrecComparison = 6
	PrecBitwiseOr  = 7
	PrecBitwiseXor = 8
	PrecBitwiseAnd = 9
	PrecShift      = 10
	PrecSum        = 11
	PrecProduct    = 12
	PrecUnary      = 13
	PrecPower      = 14
	PrecCall       = 15
)

// ParenthesizeIfNeeded wraps s in parentheses when the enclosing position
// binds tighter than the operator that produced s.
func ParenthesizeIfNeeded(s string, enclosing, mine int) string {
	if enclosing > mine {
		return "(" + s + ")"
	}
	return s
}

// Render returns the infix form of an operand.
func Render(v interface{}) (string, error) {
	return RenderPrec(v, PrecNone)
}

// RenderPrec renders an operand as if it sat in a position of the given
// enclosing precedence.
func RenderPrec(v interface{}, enclosing int) (string, error) {
	r, err := NewMapper().Map(v, enclosing)
	if err != nil {
		tracer().Errorf("rendering failed: %v", err)
		return "", err
	}
	return r.(string), nil
}

// precOf extracts the enclosing precedence from a handler's extra
// arguments. Handlers of this package always pass it as extra[0].
func precOf(extra []interface{}) int {
	if len(extra) > 0 {
		if p, ok := extra[0].(int); ok {
			return p
		}
	}
	return PrecNone
}

func recStr(rec mapper.Rec, v interface{}, prec int) (string, error) {
	r, err := rec(v, prec)
	if err != nil {
		return "", err
	}
	return r.(string), nil
}

// recForced renders an operand and force-wraps it when its kind is in the
// forced set, regardless of precedence. Needed on operand positions of
// non-associative operators where precedence alone cannot disambiguate,
// e.g. a/(b/c) versus a/b/c.
func recForced(rec mapper.Rec, v interface{}, prec int, forced map[symex.Kind]bool) (string, error) {
	s, err := recStr(rec, v, prec)
	if err != nil {
		return "", err
	}
	if e, ok := v.(symex.Expression); ok && forced[e.Kind()] {
		return "(" + s + ")", nil
	}
	return s, nil
}

func joinRec(rec mapper.Rec, sep string, ops []interface{}, prec int, forced map[symex.Kind]bool) (string, error) {
	parts := make([]string, len(ops))
	for i, op := range ops {
		s, err := recForced(rec, op, prec, forced)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

// divisive are the operator kinds that need forced parentheses on the
// operand positions of the multiplicative operators.
var divisive = map[symex.Kind]bool{
	expr.KindQuotient:  true,
	expr.KindFloorDiv:  true,
	expr.KindRemainder: true,
}

var multiplicative = map[symex.Kind]bool{
	expr.KindProduct:   true,
	expr.KindQuotient:  true,
	expr.KindFloorDiv:  true,
	expr.KindRemainder: true,
}

// chain makes a handler for an associative operator joined by sep at the
// given precedence. Same-precedence nesting renders flat.
func chain(sep string, prec int) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		s, err := joinRec(rec, sep, e.Children(), prec, nil)
		if err != nil {
			return nil, err
		}
		return ParenthesizeIfNeeded(s, precOf(extra), prec), nil
	}
}

// quotientLike makes a handler for the non-associative division operators.
// Both operand positions force parentheses around any multiplicative
// operand.
func quotientLike(op string) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		num, err := recForced(rec, ops[0], PrecProduct, multiplicative)
		if err != nil {
			return nil, err
		}
		den, err := recForced(rec, ops[1], PrecProduct, multiplicative)
		if err != nil {
			return nil, err
		}
		return ParenthesizeIfNeeded(num+" "+op+" "+den, precOf(extra), PrecProduct), nil
	}
}

// shiftLike makes a handler for a shift operator. Operands render one level
// above PrecShift so that nested shifts parenthesize instead of chaining,
// since shifts do not associate.
func shiftLike(op string) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		ops := e.Children()
		left, err := recStr(rec, ops[0], PrecShift+1)
		if err != nil {
			return nil, err
		}
		right, err := recStr(rec, ops[1], PrecShift+1)
		if err != nil {
			return nil, err
		}
		return ParenthesizeIfNeeded(left+" "+op+" "+right, precOf(extra), PrecShift), nil
	}
}

func unaryLike(op string, prec int) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		child, err := recStr(rec, e.Children()[0], prec)
		if err != nil {
			return nil, err
		}
		return ParenthesizeIfNeeded(op+child, precOf(extra), prec), nil
	}
}

// funcLike makes a handler rendering name(arg, …) irrespective of
// enclosing precedence.
func funcLike(name string) mapper.Handler {
	return func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		args, err := joinRec(rec, ", ", e.Children(), PrecNone, nil)
		if err != nil {
			return nil, err
		}
		return name + "(" + args + ")", nil
	}
}

// NewMapper builds the renderer for the built-in kinds. Callers derive
// custom notations by overriding or adding handlers on the result.
func NewMapper() *mapper.Mapper {
	m := mapper.New("render")

	m.OnConstant = func(rec mapper.Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		s := fmt.Sprintf("%v", v)
		// Signed or composite constant literals such as -1 or (1+2i) can
		// change meaning inside a tighter-binding position.
		if !(strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")) &&
			(strings.Contains(s, "-") || strings.Contains(s, "+")) &&
			precOf(extra) > PrecSum {
			return "(" + s + ")", nil
		}
		return s, nil
	}
	m.OnSequence = func(rec mapper.Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		seq := asSequence(v)
		s, err := joinRec(rec, ", ", seq, PrecNone, nil)
		if err != nil {
			return nil, err
		}
		if len(seq) == 1 {
			s += ","
		}
		return "(" + s + ")", nil
	}
	m.OnArray = func(rec mapper.Rec, v interface{}, extra ...interface{}) (interface{}, error) {
		rv := reflect.ValueOf(v)
		parts := make([]string, rv.Len())
		for i := range parts {
			s, err := recStr(rec, rv.Index(i).Interface(), PrecNone)
			if err != nil {
				return nil, err
			}
			parts[i] = s
		}
		return "array(" + strings.Join(parts, ", ") + ")", nil
	}

	m.Handle(expr.KindVariable, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		return e.(*expr.Variable).Name(), nil
	})
	m.Handle(expr.KindFunctionSymbol, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		return e.(*expr.FunctionSymbol).Name(), nil
	})
	m.Handle(expr.KindNaN, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		return "NaN", nil
	})

	m.Handle(expr.KindCall, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		c := e.(*expr.Call)
		fn, err := recStr(rec, c.Function(), PrecCall)
		if err != nil {
			return nil, err
		}
		args, err := joinRec(rec, ", ", c.Parameters(), PrecNone, nil)
		if err != nil {
			return nil, err
		}
		return fn + "(" + args + ")", nil
	})
	m.Handle(expr.KindSubscript, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		s := e.(*expr.Subscript)
		agg, err := recStr(rec, s.Aggregate(), PrecCall)
		if err != nil {
			return nil, err
		}
		index, err := joinRec(rec, ", ", s.IndexSeq(), PrecNone, nil)
		if err != nil {
			return nil, err
		}
		return ParenthesizeIfNeeded(agg+"["+index+"]", precOf(extra), PrecCall), nil
	})
	m.Handle(expr.KindLookup, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		l := e.(*expr.Lookup)
		agg, err := recStr(rec, l.Aggregate(), PrecCall)
		if err != nil {
			return nil, err
		}
		return ParenthesizeIfNeeded(agg+"."+l.Name(), precOf(extra), PrecCall), nil
	})

	m.Handle(expr.KindSum, chain(" + ", PrecSum))
	m.Handle(expr.KindProduct, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		s, err := joinRec(rec, "*", e.Children(), PrecProduct, divisive)
		if err != nil {
			return nil, err
		}
		return ParenthesizeIfNeeded(s, precOf(extra), PrecProduct), nil
	})
	m.Handle(expr.KindQuotient, quotientLike("/"))
	m.Handle(expr.KindFloorDiv, quotientLike("//"))
	m.Handle(expr.KindRemainder, quotientLike("%"))
	m.Handle(expr.KindPower, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		p := e.(*expr.Power)
		pbase, err := recStr(rec, p.Base(), PrecPower)
		if err != nil {
			return nil, err
		}
		exp, err := recStr(rec, p.Exponent(), PrecPower)
		if err != nil {
			return nil, err
		}
		return ParenthesizeIfNeeded(pbase+"**"+exp, precOf(extra), PrecPower), nil
	})

	m.Handle(expr.KindLeftShift, shiftLike("<<"))
	m.Handle(expr.KindRightShift, shiftLike(">>"))
	m.Handle(expr.KindBitwiseNot, unaryLike("~", PrecUnary))
	m.Handle(expr.KindBitwiseOr, chain(" | ", PrecBitwiseOr))
	m.Handle(expr.KindBitwiseXor, chain(" ^ ", PrecBitwiseXor))
	m.Handle(expr.KindBitwiseAnd, chain(" & ", PrecBitwiseAnd))

	m.Handle(expr.KindComparison, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		c := e.(*expr.Comparison)
		left, err := recStr(rec, c.Left(), PrecComparison)
		if err != nil {
			return nil, err
		}
		right, err := recStr(rec, c.Right(), PrecComparison)
		if err != nil {
			return nil, err
		}
		s := left + " " + string(c.Operator()) + " " + right
		return ParenthesizeIfNeeded(s, precOf(extra), PrecComparison), nil
	})
	m.Handle(expr.KindLogicalNot, unaryLike("not ", PrecUnary))
	m.Handle(expr.KindLogicalAnd, chain(" and ", PrecLogicalAnd))
	m.Handle(expr.KindLogicalOr, chain(" or ", PrecLogicalOr))
	m.Handle(expr.KindIf, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		i := e.(*expr.If)
		then, err := recStr(rec, i.Then(), PrecLogicalOr)
		if err != nil {
			return nil, err
		}
		cond, err := recStr(rec, i.Condition(), PrecLogicalOr)
		if err != nil {
			return nil, err
		}
		els, err := recStr(rec, i.Else(), PrecLogicalOr)
		if err != nil {
			return nil, err
		}
		s := then + " if " + cond + " else " + els
		return ParenthesizeIfNeeded(s, precOf(extra), PrecIf), nil
	})
	m.Handle(expr.KindMin, funcLike("min"))
	m.Handle(expr.KindMax, funcLike("max"))

	m.Handle(expr.KindSlice, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		s := e.(*expr.Slice)
		bound := func(v interface{}) (string, error) {
			if v == nil {
				return "", nil
			}
			return recStr(rec, v, PrecNone)
		}
		start, err := bound(s.Start())
		if err != nil {
			return nil, err
		}
		stop, err := bound(s.Stop())
		if err != nil {
			return nil, err
		}
		text := start + ":" + stop
		if s.Step() != nil {
			step, err := bound(s.Step())
			if err != nil {
				return nil, err
			}
			text += ":" + step
		}
		return ParenthesizeIfNeeded(text, precOf(extra), PrecNone), nil
	})

	m.Handle(expr.KindCSE, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		child, err := recStr(rec, e.(*expr.CommonSubexpression).Child(), PrecNone)
		if err != nil {
			return nil, err
		}
		return "CSE(" + child + ")", nil
	})

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
