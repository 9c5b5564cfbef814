package symex

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"
	"strings"

	"github.com/cnf/structhash"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors
*/

// --- Dispatch keys and the Expression interface ----------------------------

// Kind is the dispatch key of an expression node. Every node kind carries a
// stable tag, identical across all instances of the kind, which mappers use to
// route a node to its handler. User-defined kinds pick their own tags; tags
// must be unique within a process for dispatch to stay unambiguous.
type Kind string

// Expression is a node of a symbolic expression tree. Nodes are immutable
// after construction and may be shared: the same node object may appear as a
// child of any number of parents. Cycles are not allowed; traversals assume
// trees (with benign DAG sharing).
//
// Children returns the ordered operand list that defines the node's identity.
// Each element is either another Expression or a foreign leaf value (see
// Categorize). Implementations return a fresh slice on every call, so a
// caller can never mutate a node through it.
type Expression interface {
	Kind() Kind
	Children() []interface{}
	Hash() uint64
}

// --- Foreign values --------------------------------------------------------

// Category classifies a non-Expression value embedded in a tree.
type Category int8

// Foreign-value categories. A leaf is a Constant if its concrete type has
// been registered (see RegisterConstant), a Sequence if it is a heterogeneous
// tuple of operands, and an Array if it is a homogeneous slice or array of a
// registered constant type. Anything else is Unrecognized and will hit a
// mapper's generic foreign fallback.
const (
	Unrecognized Category = iota
	Constant
	Sequence
	Array
)

func (c Category) String() string {
	switch c {
	case Constant:
		return "constant"
	case Sequence:
		return "sequence"
	case Array:
		return "array"
	}
	return "unrecognized"
}

// constantTypes is the process-wide registry of leaf types that count as
// foreign constants. The registry is register-before-use: embedding code
// registers additional types during setup, before any dispatch runs. It is
// deliberately not synchronized; see the concurrency note on package mapper.
var constantTypes = make(map[reflect.Type]bool)

func init() {
	for _, sample := range []interface{}{
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0), complex64(0), complex128(0),
		false, "",
	} {
		constantTypes[reflect.TypeOf(sample)] = true
	}
}

// RegisterConstant registers the concrete type of sample as a foreign
// constant type. Registration affects future categorization only; results a
// caching layer already holds are not revisited.
func RegisterConstant(sample interface{}) {
	if sample == nil {
		return
	}
	constantTypes[reflect.TypeOf(sample)] = true
}

// UnregisterConstant removes the concrete type of sample from the constant
// registry. Unregistering a type that was never registered is a no-op.
func UnregisterConstant(sample interface{}) {
	if sample == nil {
		return
	}
	delete(constantTypes, reflect.TypeOf(sample))
}

// IsConstant tells whether v is a registered foreign constant.
func IsConstant(v interface{}) bool {
	if v == nil {
		return false
	}
	return constantTypes[reflect.TypeOf(v)]
}

// Categorize classifies a foreign (non-Expression) leaf value. The boundary
// between the categories is policy, made explicit here rather than inferred
// from a leaf's shape:
//
//	Constant  ⇔ the concrete type is in the constant registry
//	Sequence  ⇔ []interface{} or []Expression (heterogeneous operand tuples)
//	Array     ⇔ slice/array with a registered constant element type
//
// Everything else is Unrecognized.
func Categorize(v interface{}) Category {
	if v == nil {
		return Unrecognized
	}
	if IsConstant(v) {
		return Constant
	}
	switch v.(type) {
	case []interface{}, []Expression:
		return Sequence
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		if constantTypes[t.Elem()] {
			return Array
		}
	}
	return Unrecognized
}

// IsOperand tells whether v may appear as a child of an expression node:
// either an Expression or a recognized foreign value.
func IsOperand(v interface{}) bool {
	if _, ok := v.(Expression); ok {
		return true
	}
	return Categorize(v) != Unrecognized
}

// --- Structural hashing and equality ---------------------------------------

// HashChildren derives a node's structural hash from its kind and operand
// list. Child hashes are combined rather than recomputed, so shared subtrees
// (DAG sharing) are hashed once each, not once per reference. Foreign leaf
// values are hashed by content via structhash. Node constructors call this
// once and cache the result for the lifetime of the node.
func HashChildren(kind Kind, children []interface{}) uint64 {
	h := fnv.New64a()
	h.Write([]byte(kind))
	var buf [8]byte
	for _, c := range children {
		switch c := c.(type) {
		case nil:
			h.Write([]byte{0})
		case Expression:
			binary.BigEndian.PutUint64(buf[:], c.Hash())
			h.Write(buf[:])
		default:
			h.Write(structhash.Sha1(c, 1))
		}
	}
	return h.Sum64()
}

// Equal reports deep structural equality of two expressions: equal kinds and
// pairwise-equal children, recursively. Two separately constructed trees with
// identical shape and leaf values are equal. Identity and cached hashes are
// used as fast paths.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || a.Hash() != b.Hash() {
		return false
	}
	ca, cb := a.Children(), b.Children()
	if len(ca) != len(cb) {
		return false
	}
	for i := range ca {
		if !operandEqual(ca[i], cb[i]) {
			return false
		}
	}
	return true
}

func operandEqual(a, b interface{}) bool {
	ea, aok := a.(Expression)
	eb, bok := b.(Expression)
	if aok != bok {
		return false
	}
	if aok {
		return Equal(ea, eb)
	}
	return reflect.DeepEqual(a, b)
}

// --- Debug representation --------------------------------------------------

// Repr returns a structural debug representation of an operand, of the form
// Kind(child, …). It is not the pretty infix form; use package render for
// that. Output is depth-limited so that very deep trees stay printable.
func Repr(v interface{}) string {
	return repr(v, 10)
}

func repr(v interface{}, limit int) string {
	if limit <= 0 {
		return "…"
	}
	switch v := v.(type) {
	case nil:
		return "nil"
	case Expression:
		children := v.Children()
		parts := make([]string, len(children))
		for i, c := range children {
			parts[i] = repr(c, limit-1)
		}
		return fmt.Sprintf("%s(%s)", v.Kind(), strings.Join(parts, ", "))
	case []interface{}:
		parts := make([]string, len(v))
		for i, c := range v {
			parts[i] = repr(c, limit-1)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
