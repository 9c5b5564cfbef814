package eval

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"math"
	"math/cmplx"
)

// Numeric tower: integers promote to floats, floats to complex. Every
// arithmetic result is demoted back to one of int64, float64 or complex128.
const (
	classInt = iota
	classFloat
	classComplex
)

type number struct {
	class int
	i     int64
	f     float64
	c     complex128
}

func toNumber(v interface{}) (number, bool) {
	switch n := v.(type) {
	case int:
		return number{class: classInt, i: int64(n)}, true
	case int8:
		return number{class: classInt, i: int64(n)}, true
	case int16:
		return number{class: classInt, i: int64(n)}, true
	case int32:
		return number{class: classInt, i: int64(n)}, true
	case int64:
		return number{class: classInt, i: n}, true
	case uint8:
		return number{class: classInt, i: int64(n)}, true
	case uint16:
		return number{class: classInt, i: int64(n)}, true
	case uint32:
		return number{class: classInt, i: int64(n)}, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return number{class: classFloat, f: float64(n)}, true
		}
		return number{class: classInt, i: int64(n)}, true
	case uint64:
		// Values beyond the int64 range would flip sign on conversion.
		if n > math.MaxInt64 {
			return number{class: classFloat, f: float64(n)}, true
		}
		return number{class: classInt, i: int64(n)}, true
	case float32:
		return number{class: classFloat, f: float64(n)}, true
	case float64:
		return number{class: classFloat, f: n}, true
	case complex64:
		return number{class: classComplex, c: complex128(n)}, true
	case complex128:
		return number{class: classComplex, c: n}, true
	}
	return number{}, false
}

func (n number) float() float64 {
	if n.class == classInt {
		return float64(n.i)
	}
	return n.f
}

func (n number) cmplx() complex128 {
	if n.class == classComplex {
		return n.c
	}
	return complex(n.float(), 0)
}

func (n number) value() interface{} {
	switch n.class {
	case classInt:
		return n.i
	case classFloat:
		return n.f
	}
	return n.c
}

func joinClass(a, b number) int {
	if a.class > b.class {
		return a.class
	}
	return b.class
}

func addNum(a, b number) number {
	switch joinClass(a, b) {
	case classInt:
		return number{class: classInt, i: a.i + b.i}
	case classFloat:
		return number{class: classFloat, f: a.float() + b.float()}
	}
	return number{class: classComplex, c: a.cmplx() + b.cmplx()}
}

func mulNum(a, b number) number {
	switch joinClass(a, b) {
	case classInt:
		return number{class: classInt, i: a.i * b.i}
	case classFloat:
		return number{class: classFloat, f: a.float() * b.float()}
	}
	return number{class: classComplex, c: a.cmplx() * b.cmplx()}
}

// divNum is true division: integer operands promote to floating point.
func divNum(a, b number) number {
	if joinClass(a, b) == classComplex {
		return number{class: classComplex, c: a.cmplx() / b.cmplx()}
	}
	return number{class: classFloat, f: a.float() / b.float()}
}

// floorDivInt rounds toward negative infinity, so the remainder carries
// the divisor's sign.
func floorDivInt(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func modInt(a, b int64) int64 {
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

// floorDivNum and modNum report a non-empty reason instead of a result when
// the operand combination has no value, so the evaluator can surface it as a
// recoverable error rather than tripping a runtime panic.
func floorDivNum(a, b number) (number, string) {
	switch joinClass(a, b) {
	case classInt:
		if b.i == 0 {
			return number{}, "division by zero"
		}
		return number{class: classInt, i: floorDivInt(a.i, b.i)}, ""
	case classFloat:
		return number{class: classFloat, f: math.Floor(a.float() / b.float())}, ""
	}
	return number{}, "not defined on complex operands"
}

func modNum(a, b number) (number, string) {
	switch joinClass(a, b) {
	case classInt:
		if b.i == 0 {
			return number{}, "division by zero"
		}
		return number{class: classInt, i: modInt(a.i, b.i)}, ""
	case classFloat:
		r := math.Mod(a.float(), b.float())
		if r != 0 && (r < 0) != (b.float() < 0) {
			r += b.float()
		}
		return number{class: classFloat, f: r}, ""
	}
	return number{}, "not defined on complex operands"
}

// powNum keeps integral bases with non-negative integral exponents exact.
func powNum(a, b number) number {
	if joinClass(a, b) == classComplex {
		return number{class: classComplex, c: cmplx.Pow(a.cmplx(), b.cmplx())}
	}
	if a.class == classInt && b.class == classInt && b.i >= 0 {
		r := int64(1)
		base := a.i
		for e := b.i; e > 0; e >>= 1 {
			if e&1 == 1 {
				r *= base
			}
			base *= base
		}
		return number{class: classInt, i: r}
	}
	return number{class: classFloat, f: math.Pow(a.float(), b.float())}
}

// cmpNum orders two non-complex numbers: -1, 0 or +1.
func cmpNum(a, b number) (int, bool) {
	if a.class == classComplex || b.class == classComplex {
		return 0, false
	}
	if a.class == classInt && b.class == classInt {
		switch {
		case a.i < b.i:
			return -1, true
		case a.i > b.i:
			return 1, true
		}
		return 0, true
	}
	switch {
	case a.float() < b.float():
		return -1, true
	case a.float() > b.float():
		return 1, true
	}
	return 0, true
}
