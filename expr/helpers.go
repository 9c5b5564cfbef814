package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"strings"

	"github.com/symgo/symex"
)

// Must unwraps a constructor result, panicking on error. Intended for
// statically known-good trees, typically in tests and examples.
func Must[E any](e E, err error) E {
	if err != nil {
		panic(err)
	}
	return e
}

// Variables builds variable leaves from a whitespace- or comma-separated
// list of names, e.g. Variables("x y z").
func Variables(names string) []*Variable {
	fields := strings.FieldsFunc(names, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	vars := make([]*Variable, len(fields))
	for i, f := range fields {
		vars[i] = Must(NewVariable(f))
	}
	return vars
}

// IsZero tells whether v is a numeric foreign constant equal to zero.
func IsZero(v interface{}) bool {
	switch n := v.(type) {
	case int:
		return n == 0
	case int8:
		return n == 0
	case int16:
		return n == 0
	case int32:
		return n == 0
	case int64:
		return n == 0
	case uint:
		return n == 0
	case uint8:
		return n == 0
	case uint16:
		return n == 0
	case uint32:
		return n == 0
	case uint64:
		return n == 0
	case float32:
		return n == 0
	case float64:
		return n == 0
	case complex64:
		return n == 0
	case complex128:
		return n == 0
	}
	return false
}

// IsOne tells whether v is a numeric foreign constant equal to one.
func IsOne(v interface{}) bool {
	switch n := v.(type) {
	case int:
		return n == 1
	case int8:
		return n == 1
	case int16:
		return n == 1
	case int32:
		return n == 1
	case int64:
		return n == 1
	case uint:
		return n == 1
	case uint8:
		return n == 1
	case uint16:
		return n == 1
	case uint32:
		return n == 1
	case uint64:
		return n == 1
	case float32:
		return n == 1
	case float64:
		return n == 1
	case complex64:
		return n == 1
	case complex128:
		return n == 1
	}
	return false
}

// FlattenedSum builds a sum with nested sums spliced into the operand list
// and zero terms dropped. An empty result collapses to the constant 0, a
// single remaining term is returned unwrapped. This is the only place sums
// are ever flattened; NewSum preserves nesting as written.
func FlattenedSum(terms ...interface{}) (interface{}, error) {
	queue := append([]interface{}(nil), terms...)
	var done []interface{}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if s, ok := item.(*Sum); ok {
			queue = append(s.Terms(), queue...)
			continue
		}
		if IsZero(item) {
			continue
		}
		if err := checkOperands(KindSum, item); err != nil {
			return nil, err
		}
		done = append(done, item)
	}
	switch len(done) {
	case 0:
		return 0, nil
	case 1:
		return done[0], nil
	}
	return NewSum(done...)
}

// FlattenedProduct builds a product with nested products spliced into the
// operand list and unit factors dropped. A zero factor collapses the whole
// product to 0, an empty result to 1, a single remaining factor is returned
// unwrapped.
func FlattenedProduct(factors ...interface{}) (interface{}, error) {
	queue := append([]interface{}(nil), factors...)
	var done []interface{}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if p, ok := item.(*Product); ok {
			queue = append(p.Terms(), queue...)
			continue
		}
		if IsZero(item) {
			return 0, nil
		}
		if IsOne(item) {
			continue
		}
		if err := checkOperands(KindProduct, item); err != nil {
			return nil, err
		}
		done = append(done, item)
	}
	switch len(done) {
	case 0:
		return 1, nil
	case 1:
		return done[0], nil
	}
	return NewProduct(done...)
}

// --- Infix-style builders ---------------------------------------------------

// Add builds a + b without flattening or simplification.
func Add(a, b interface{}) (symex.Expression, error) {
	return NewSum(a, b)
}

// Sub builds a - b, represented as a + (-1)*b.
func Sub(a, b interface{}) (symex.Expression, error) {
	nb, err := Neg(b)
	if err != nil {
		return nil, err
	}
	return NewSum(a, nb)
}

// Mul builds a * b without flattening or simplification.
func Mul(a, b interface{}) (symex.Expression, error) {
	return NewProduct(a, b)
}

// Div builds a / b.
func Div(a, b interface{}) (symex.Expression, error) {
	return NewQuotient(a, b)
}

// Neg builds -a, represented as (-1)*a.
func Neg(a interface{}) (symex.Expression, error) {
	return NewProduct(-1, a)
}

// Pow builds a ** b.
func Pow(a, b interface{}) (symex.Expression, error) {
	return NewPower(a, b)
}

// WrapCommonSubexpression marks v as a common subexpression. Foreign
// constants are returned unchanged since caching them buys nothing, and an
// existing marker is not wrapped a second time.
func WrapCommonSubexpression(v interface{}, prefix string, scope Scope) (interface{}, error) {
	if symex.IsConstant(v) {
		return v, nil
	}
	if cse, ok := v.(*CommonSubexpression); ok {
		return cse, nil
	}
	return NewCommonSubexpression(v, prefix, scope)
}
