package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"github.com/symgo/symex"
)

// Dispatch keys of the built-in node kinds. User-defined kinds must not
// collide with these tags.
const (
	KindVariable       symex.Kind = "variable"
	KindFunctionSymbol symex.Kind = "function_symbol"
	KindCall           symex.Kind = "call"
	KindSubscript      symex.Kind = "subscript"
	KindLookup         symex.Kind = "lookup"
	KindSum            symex.Kind = "sum"
	KindProduct        symex.Kind = "product"
	KindQuotient       symex.Kind = "quotient"
	KindFloorDiv       symex.Kind = "floor_div"
	KindRemainder      symex.Kind = "remainder"
	KindPower          symex.Kind = "power"
	KindLeftShift      symex.Kind = "left_shift"
	KindRightShift     symex.Kind = "right_shift"
	KindBitwiseNot     symex.Kind = "bitwise_not"
	KindBitwiseOr      symex.Kind = "bitwise_or"
	KindBitwiseXor     symex.Kind = "bitwise_xor"
	KindBitwiseAnd     symex.Kind = "bitwise_and"
	KindComparison     symex.Kind = "comparison"
	KindLogicalNot     symex.Kind = "logical_not"
	KindLogicalAnd     symex.Kind = "logical_and"
	KindLogicalOr      symex.Kind = "logical_or"
	KindIf             symex.Kind = "if"
	KindMin            symex.Kind = "min"
	KindMax            symex.Kind = "max"
	KindSlice          symex.Kind = "slice"
	KindNaN            symex.Kind = "nan"
	KindCSE            symex.Kind = "common_subexpression"
)

// --- Shared node plumbing --------------------------------------------------

// base carries the kind tag and the structural hash, computed once at
// construction from (kind, children).
type base struct {
	kind symex.Kind
	hash uint64
}

func mkbase(kind symex.Kind, children []interface{}) base {
	return base{kind: kind, hash: symex.HashChildren(kind, children)}
}

// Kind returns the node's dispatch key.
func (b *base) Kind() symex.Kind { return b.kind }

// Hash returns the node's cached structural hash.
func (b *base) Hash() uint64 { return b.hash }

// nary is the common shape of variable-arity operators (sums, products,
// bitwise and logical chains, min/max).
type nary struct {
	base
	children []interface{}
}

func mknary(kind symex.Kind, terms []interface{}) (nary, error) {
	if len(terms) < 2 {
		return nary{}, malformed(kind, "needs at least two operands, got %d", len(terms))
	}
	if err := checkOperands(kind, terms...); err != nil {
		return nary{}, err
	}
	children := append([]interface{}(nil), terms...)
	return nary{base: mkbase(kind, children), children: children}, nil
}

// Children returns a fresh copy of the operand list.
func (n *nary) Children() []interface{} {
	return append([]interface{}(nil), n.children...)
}

// Terms returns a fresh copy of the operand list.
func (n *nary) Terms() []interface{} {
	return append([]interface{}(nil), n.children...)
}

// unary is the common shape of single-operand operators.
type unary struct {
	base
	child interface{}
}

func mkunary(kind symex.Kind, child interface{}) (unary, error) {
	if err := checkOperands(kind, child); err != nil {
		return unary{}, err
	}
	return unary{base: mkbase(kind, []interface{}{child}), child: child}, nil
}

// Child returns the single operand.
func (u *unary) Child() interface{} { return u.child }

// Children returns the single operand.
func (u *unary) Children() []interface{} { return []interface{}{u.child} }

// --- Leaves ----------------------------------------------------------------

// Variable is a named symbolic leaf.
type Variable struct {
	base
	name string
}

// NewVariable creates a variable leaf. The name must be non-empty.
func NewVariable(name string) (*Variable, error) {
	if name == "" {
		return nil, malformed(KindVariable, "empty variable name")
	}
	return &Variable{base: mkbase(KindVariable, []interface{}{name}), name: name}, nil
}

func (v *Variable) Name() string { return v.name }

func (v *Variable) Children() []interface{} { return []interface{}{v.name} }

func (v *Variable) String() string { return symex.Repr(v) }

// FunctionSymbol names a function. A non-negative arity lets NewCall check
// the number of arguments; a negative arity leaves it unspecified.
type FunctionSymbol struct {
	base
	name  string
	arity int
}

// NewFunctionSymbol creates a function-name leaf.
func NewFunctionSymbol(name string, arity int) (*FunctionSymbol, error) {
	if name == "" {
		return nil, malformed(KindFunctionSymbol, "empty function name")
	}
	if arity < 0 {
		arity = -1
	}
	return &FunctionSymbol{
		base:  mkbase(KindFunctionSymbol, []interface{}{name, arity}),
		name:  name,
		arity: arity,
	}, nil
}

func (f *FunctionSymbol) Name() string { return f.name }

func (f *FunctionSymbol) Arity() int { return f.arity }

func (f *FunctionSymbol) Children() []interface{} { return []interface{}{f.name, f.arity} }

func (f *FunctionSymbol) String() string { return symex.Repr(f) }

// NaN is a leaf representing not-a-number. All NaN nodes compare equal, as
// one would expect for program representation; otherwise trees containing
// NaNs would never equal themselves.
type NaN struct {
	base
}

// NewNaN creates a NaN leaf.
func NewNaN() *NaN {
	return &NaN{base: mkbase(KindNaN, nil)}
}

func (n *NaN) Children() []interface{} { return nil }

func (n *NaN) String() string { return symex.Repr(n) }

// --- Structural nodes ------------------------------------------------------

// Call is a function invocation.
type Call struct {
	base
	function   interface{}
	parameters []interface{}
}

// NewCall creates a function invocation. If function is a FunctionSymbol
// with a declared arity, the number of parameters is checked against it.
func NewCall(function interface{}, parameters ...interface{}) (*Call, error) {
	if err := checkOperands(KindCall, function); err != nil {
		return nil, err
	}
	if err := checkOperands(KindCall, parameters...); err != nil {
		return nil, err
	}
	if fs, ok := function.(*FunctionSymbol); ok && fs.arity >= 0 && len(parameters) != fs.arity {
		return nil, malformed(KindCall, "%s called with wrong number of arguments (need %d, got %d)",
			fs.name, fs.arity, len(parameters))
	}
	params := append([]interface{}(nil), parameters...)
	children := append([]interface{}{function}, params...)
	return &Call{base: mkbase(KindCall, children), function: function, parameters: params}, nil
}

func (c *Call) Function() interface{} { return c.function }

// Parameters returns a fresh copy of the positional parameters.
func (c *Call) Parameters() []interface{} {
	return append([]interface{}(nil), c.parameters...)
}

func (c *Call) Children() []interface{} {
	return append([]interface{}{c.function}, c.parameters...)
}

func (c *Call) String() string { return symex.Repr(c) }

// Subscript is an aggregate indexing, a[i]. The index may be a single
// operand or a sequence of operands.
type Subscript struct {
	base
	aggregate interface{}
	index     interface{}
}

// NewSubscript creates an indexing node.
func NewSubscript(aggregate, index interface{}) (*Subscript, error) {
	if err := checkOperands(KindSubscript, aggregate, index); err != nil {
		return nil, err
	}
	return &Subscript{
		base:      mkbase(KindSubscript, []interface{}{aggregate, index}),
		aggregate: aggregate,
		index:     index,
	}, nil
}

func (s *Subscript) Aggregate() interface{} { return s.aggregate }

func (s *Subscript) Index() interface{} { return s.index }

// IndexSeq returns the index wrapped in a single-element sequence if it is
// not a sequence already.
func (s *Subscript) IndexSeq() []interface{} {
	if seq, ok := s.index.([]interface{}); ok {
		return append([]interface{}(nil), seq...)
	}
	return []interface{}{s.index}
}

func (s *Subscript) Children() []interface{} {
	return []interface{}{s.aggregate, s.index}
}

func (s *Subscript) String() string { return symex.Repr(s) }

// Lookup is an attribute access on an aggregate, a.name.
type Lookup struct {
	base
	aggregate interface{}
	name      string
}

// NewLookup creates an attribute-access node.
func NewLookup(aggregate interface{}, name string) (*Lookup, error) {
	if err := checkOperands(KindLookup, aggregate); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, malformed(KindLookup, "empty attribute name")
	}
	return &Lookup{
		base:      mkbase(KindLookup, []interface{}{aggregate, name}),
		aggregate: aggregate,
		name:      name,
	}, nil
}

func (l *Lookup) Aggregate() interface{} { return l.aggregate }

func (l *Lookup) Name() string { return l.name }

func (l *Lookup) Children() []interface{} { return []interface{}{l.aggregate, l.name} }

func (l *Lookup) String() string { return symex.Repr(l) }

// --- Arithmetic ------------------------------------------------------------

// Sum is an n-ary addition.
type Sum struct {
	nary
}

// NewSum creates an n-ary sum over two or more operands. No flattening or
// reordering is performed; see FlattenedSum for the explicit variant.
func NewSum(terms ...interface{}) (*Sum, error) {
	n, err := mknary(KindSum, terms)
	if err != nil {
		return nil, err
	}
	return &Sum{nary: n}, nil
}

func (s *Sum) String() string { return symex.Repr(s) }

// Product is an n-ary multiplication.
type Product struct {
	nary
}

// NewProduct creates an n-ary product over two or more operands.
func NewProduct(factors ...interface{}) (*Product, error) {
	n, err := mknary(KindProduct, factors)
	if err != nil {
		return nil, err
	}
	return &Product{nary: n}, nil
}

func (p *Product) String() string { return symex.Repr(p) }

// quotientLike is the shared shape of the three division operators.
type quotientLike struct {
	base
	numerator   interface{}
	denominator interface{}
}

func mkquotient(kind symex.Kind, num, den interface{}) (quotientLike, error) {
	if err := checkOperands(kind, num, den); err != nil {
		return quotientLike{}, err
	}
	return quotientLike{
		base:        mkbase(kind, []interface{}{num, den}),
		numerator:   num,
		denominator: den,
	}, nil
}

func (q *quotientLike) Numerator() interface{} { return q.numerator }

func (q *quotientLike) Denominator() interface{} { return q.denominator }

func (q *quotientLike) Children() []interface{} {
	return []interface{}{q.numerator, q.denominator}
}

// Quotient is a true division.
type Quotient struct {
	quotientLike
}

// NewQuotient creates a division node.
func NewQuotient(numerator, denominator interface{}) (*Quotient, error) {
	q, err := mkquotient(KindQuotient, numerator, denominator)
	if err != nil {
		return nil, err
	}
	return &Quotient{quotientLike: q}, nil
}

func (q *Quotient) String() string { return symex.Repr(q) }

// FloorDiv is a flooring division.
type FloorDiv struct {
	quotientLike
}

// NewFloorDiv creates a flooring-division node.
func NewFloorDiv(numerator, denominator interface{}) (*FloorDiv, error) {
	q, err := mkquotient(KindFloorDiv, numerator, denominator)
	if err != nil {
		return nil, err
	}
	return &FloorDiv{quotientLike: q}, nil
}

func (f *FloorDiv) String() string { return symex.Repr(f) }

// Remainder is a modulo operation.
type Remainder struct {
	quotientLike
}

// NewRemainder creates a modulo node.
func NewRemainder(numerator, denominator interface{}) (*Remainder, error) {
	q, err := mkquotient(KindRemainder, numerator, denominator)
	if err != nil {
		return nil, err
	}
	return &Remainder{quotientLike: q}, nil
}

func (r *Remainder) String() string { return symex.Repr(r) }

// Power is an exponentiation.
type Power struct {
	base
	pbase    interface{}
	exponent interface{}
}

// NewPower creates an exponentiation node.
func NewPower(pbase, exponent interface{}) (*Power, error) {
	if err := checkOperands(KindPower, pbase, exponent); err != nil {
		return nil, err
	}
	return &Power{
		base:     mkbase(KindPower, []interface{}{pbase, exponent}),
		pbase:    pbase,
		exponent: exponent,
	}, nil
}

func (p *Power) Base() interface{} { return p.pbase }

func (p *Power) Exponent() interface{} { return p.exponent }

func (p *Power) Children() []interface{} { return []interface{}{p.pbase, p.exponent} }

func (p *Power) String() string { return symex.Repr(p) }

// --- Shift and bitwise operators -------------------------------------------

// shift is the shared shape of the two shift operators.
type shift struct {
	base
	shiftee interface{}
	amount  interface{}
}

func mkshift(kind symex.Kind, shiftee, amount interface{}) (shift, error) {
	if err := checkOperands(kind, shiftee, amount); err != nil {
		return shift{}, err
	}
	return shift{
		base:    mkbase(kind, []interface{}{shiftee, amount}),
		shiftee: shiftee,
		amount:  amount,
	}, nil
}

func (s *shift) Shiftee() interface{} { return s.shiftee }

func (s *shift) Shift() interface{} { return s.amount }

func (s *shift) Children() []interface{} { return []interface{}{s.shiftee, s.amount} }

// LeftShift shifts its operand left.
type LeftShift struct {
	shift
}

// NewLeftShift creates a left-shift node.
func NewLeftShift(shiftee, amount interface{}) (*LeftShift, error) {
	s, err := mkshift(KindLeftShift, shiftee, amount)
	if err != nil {
		return nil, err
	}
	return &LeftShift{shift: s}, nil
}

func (l *LeftShift) String() string { return symex.Repr(l) }

// RightShift shifts its operand right.
type RightShift struct {
	shift
}

// NewRightShift creates a right-shift node.
func NewRightShift(shiftee, amount interface{}) (*RightShift, error) {
	s, err := mkshift(KindRightShift, shiftee, amount)
	if err != nil {
		return nil, err
	}
	return &RightShift{shift: s}, nil
}

func (r *RightShift) String() string { return symex.Repr(r) }

// BitwiseNot is a bitwise complement.
type BitwiseNot struct {
	unary
}

// NewBitwiseNot creates a bitwise-complement node.
func NewBitwiseNot(child interface{}) (*BitwiseNot, error) {
	u, err := mkunary(KindBitwiseNot, child)
	if err != nil {
		return nil, err
	}
	return &BitwiseNot{unary: u}, nil
}

func (b *BitwiseNot) String() string { return symex.Repr(b) }

// BitwiseOr is an n-ary bitwise or.
type BitwiseOr struct {
	nary
}

// NewBitwiseOr creates an n-ary bitwise-or node.
func NewBitwiseOr(terms ...interface{}) (*BitwiseOr, error) {
	n, err := mknary(KindBitwiseOr, terms)
	if err != nil {
		return nil, err
	}
	return &BitwiseOr{nary: n}, nil
}

func (b *BitwiseOr) String() string { return symex.Repr(b) }

// BitwiseXor is an n-ary bitwise exclusive or.
type BitwiseXor struct {
	nary
}

// NewBitwiseXor creates an n-ary bitwise-xor node.
func NewBitwiseXor(terms ...interface{}) (*BitwiseXor, error) {
	n, err := mknary(KindBitwiseXor, terms)
	if err != nil {
		return nil, err
	}
	return &BitwiseXor{nary: n}, nil
}

func (b *BitwiseXor) String() string { return symex.Repr(b) }

// BitwiseAnd is an n-ary bitwise and.
type BitwiseAnd struct {
	nary
}

// NewBitwiseAnd creates an n-ary bitwise-and node.
func NewBitwiseAnd(terms ...interface{}) (*BitwiseAnd, error) {
	n, err := mknary(KindBitwiseAnd, terms)
	if err != nil {
		return nil, err
	}
	return &BitwiseAnd{nary: n}, nil
}

func (b *BitwiseAnd) String() string { return symex.Repr(b) }

// --- Comparisons, logic, conditionals --------------------------------------

// CompareOp is the operator symbol of a Comparison.
type CompareOp string

// The six comparison operators.
const (
	OpEq CompareOp = "=="
	OpNe CompareOp = "!="
	OpLt CompareOp = "<"
	OpLe CompareOp = "<="
	OpGt CompareOp = ">"
	OpGe CompareOp = ">="
)

var compareOpNames = map[string]CompareOp{
	"eq": OpEq, "ne": OpNe, "lt": OpLt, "le": OpLe, "gt": OpGt, "ge": OpGe,
	"==": OpEq, "!=": OpNe, "<": OpLt, "<=": OpLe, ">": OpGt, ">=": OpGe,
}

// Comparison relates two operands by one of the six comparison operators.
// Note that comparisons are never constructed implicitly by comparing nodes.
type Comparison struct {
	base
	left     interface{}
	operator CompareOp
	right    interface{}
}

// NewComparison creates a comparison node. The operator accepts both symbol
// forms ("==", "<", …) and name forms ("eq", "lt", …).
func NewComparison(left interface{}, operator string, right interface{}) (*Comparison, error) {
	op, ok := compareOpNames[operator]
	if !ok {
		return nil, malformed(KindComparison, "invalid operator %q", operator)
	}
	if err := checkOperands(KindComparison, left, right); err != nil {
		return nil, err
	}
	return &Comparison{
		base:     mkbase(KindComparison, []interface{}{left, string(op), right}),
		left:     left,
		operator: op,
		right:    right,
	}, nil
}

func (c *Comparison) Left() interface{} { return c.left }

func (c *Comparison) Operator() CompareOp { return c.operator }

func (c *Comparison) Right() interface{} { return c.right }

func (c *Comparison) Children() []interface{} {
	return []interface{}{c.left, string(c.operator), c.right}
}

func (c *Comparison) String() string { return symex.Repr(c) }

// LogicalNot is a boolean negation.
type LogicalNot struct {
	unary
}

// NewLogicalNot creates a boolean-negation node.
func NewLogicalNot(child interface{}) (*LogicalNot, error) {
	u, err := mkunary(KindLogicalNot, child)
	if err != nil {
		return nil, err
	}
	return &LogicalNot{unary: u}, nil
}

func (l *LogicalNot) String() string { return symex.Repr(l) }

// LogicalAnd is an n-ary boolean conjunction.
type LogicalAnd struct {
	nary
}

// NewLogicalAnd creates an n-ary conjunction node.
func NewLogicalAnd(terms ...interface{}) (*LogicalAnd, error) {
	n, err := mknary(KindLogicalAnd, terms)
	if err != nil {
		return nil, err
	}
	return &LogicalAnd{nary: n}, nil
}

func (l *LogicalAnd) String() string { return symex.Repr(l) }

// LogicalOr is an n-ary boolean disjunction.
type LogicalOr struct {
	nary
}

// NewLogicalOr creates an n-ary disjunction node.
func NewLogicalOr(terms ...interface{}) (*LogicalOr, error) {
	n, err := mknary(KindLogicalOr, terms)
	if err != nil {
		return nil, err
	}
	return &LogicalOr{nary: n}, nil
}

func (l *LogicalOr) String() string { return symex.Repr(l) }

// If is a conditional expression.
type If struct {
	base
	condition interface{}
	then      interface{}
	els       interface{}
}

// NewIf creates a conditional node with exactly three operands.
func NewIf(condition, then, els interface{}) (*If, error) {
	if err := checkOperands(KindIf, condition, then, els); err != nil {
		return nil, err
	}
	return &If{
		base:      mkbase(KindIf, []interface{}{condition, then, els}),
		condition: condition,
		then:      then,
		els:       els,
	}, nil
}

func (i *If) Condition() interface{} { return i.condition }

func (i *If) Then() interface{} { return i.then }

func (i *If) Else() interface{} { return i.els }

func (i *If) Children() []interface{} {
	return []interface{}{i.condition, i.then, i.els}
}

func (i *If) String() string { return symex.Repr(i) }

// Min is an n-ary minimum.
type Min struct {
	nary
}

// NewMin creates an n-ary minimum node.
func NewMin(terms ...interface{}) (*Min, error) {
	n, err := mknary(KindMin, terms)
	if err != nil {
		return nil, err
	}
	return &Min{nary: n}, nil
}

func (m *Min) String() string { return symex.Repr(m) }

// Max is an n-ary maximum.
type Max struct {
	nary
}

// NewMax creates an n-ary maximum node.
func NewMax(terms ...interface{}) (*Max, error) {
	n, err := mknary(KindMax, terms)
	if err != nil {
		return nil, err
	}
	return &Max{nary: n}, nil
}

func (m *Max) String() string { return symex.Repr(m) }

// Slice is a slice expression as in a[1:7:2]. Any of start, stop and step
// may be nil for an open bound.
type Slice struct {
	base
	start interface{}
	stop  interface{}
	step  interface{}
}

// NewSlice creates a slice node from up to three parts, in start, stop, step
// order. A single part is the stop bound, mirroring conventional slice
// notation.
func NewSlice(parts ...interface{}) (*Slice, error) {
	if len(parts) > 3 {
		return nil, malformed(KindSlice, "slice with more than three parts (%d)", len(parts))
	}
	for _, p := range parts {
		if p == nil {
			continue
		}
		if err := checkOperands(KindSlice, p); err != nil {
			return nil, err
		}
	}
	s := &Slice{}
	switch len(parts) {
	case 1:
		s.stop = parts[0]
	case 2:
		s.start, s.stop = parts[0], parts[1]
	case 3:
		s.start, s.stop, s.step = parts[0], parts[1], parts[2]
	}
	s.base = mkbase(KindSlice, []interface{}{s.start, s.stop, s.step})
	return s, nil
}

func (s *Slice) Start() interface{} { return s.start }

func (s *Slice) Stop() interface{} { return s.stop }

func (s *Slice) Step() interface{} { return s.step }

func (s *Slice) Children() []interface{} {
	return []interface{}{s.start, s.stop, s.step}
}

func (s *Slice) String() string { return symex.Repr(s) }

// --- Common-subexpression markers ------------------------------------------

// Scope determines the lifetime of a cached common-subexpression result.
type Scope string

// Lifetimes for cached common-subexpression results. Evaluation scope lasts
// for one top-level dispatch; expression scope for the lifetime of the cache
// instance holding the tree; global scope for the execution context.
const (
	ScopeEvaluation Scope = "symex_eval"
	ScopeExpression Scope = "symex_expr"
	ScopeGlobal     Scope = "symex_global"
)

func validScope(s Scope) bool {
	return s == ScopeEvaluation || s == ScopeExpression || s == ScopeGlobal
}

// CommonSubexpression marks its child as a subexpression whose result should
// be computed at most once per scope and reused at every further occurrence
// of the same child object. The marker is advisory: transformations that run
// without a caching layer simply compute the child directly. The prefix, if
// non-empty, suggests a variable name to code generators.
type CommonSubexpression struct {
	base
	child  interface{}
	prefix string
	scope  Scope
}

// NewCommonSubexpression creates a marker node. An empty scope defaults to
// ScopeEvaluation.
func NewCommonSubexpression(child interface{}, prefix string, scope Scope) (*CommonSubexpression, error) {
	if scope == "" {
		scope = ScopeEvaluation
	}
	if !validScope(scope) {
		return nil, malformed(KindCSE, "invalid scope %q", scope)
	}
	if err := checkOperands(KindCSE, child); err != nil {
		return nil, err
	}
	return &CommonSubexpression{
		base:   mkbase(KindCSE, []interface{}{child, prefix, string(scope)}),
		child:  child,
		prefix: prefix,
		scope:  scope,
	}, nil
}

func (c *CommonSubexpression) Child() interface{} { return c.child }

func (c *CommonSubexpression) Prefix() string { return c.prefix }

func (c *CommonSubexpression) Scope() Scope { return c.scope }

func (c *CommonSubexpression) Children() []interface{} {
	return []interface{}{c.child, c.prefix, string(c.scope)}
}

func (c *CommonSubexpression) String() string { return symex.Repr(c) }

// --- Interface compliance --------------------------------------------------

var (
	_ symex.Expression = (*Variable)(nil)
	_ symex.Expression = (*FunctionSymbol)(nil)
	_ symex.Expression = (*NaN)(nil)
	_ symex.Expression = (*Call)(nil)
	_ symex.Expression = (*Subscript)(nil)
	_ symex.Expression = (*Lookup)(nil)
	_ symex.Expression = (*Sum)(nil)
	_ symex.Expression = (*Product)(nil)
	_ symex.Expression = (*Quotient)(nil)
	_ symex.Expression = (*FloorDiv)(nil)
	_ symex.Expression = (*Remainder)(nil)
	_ symex.Expression = (*Power)(nil)
	_ symex.Expression = (*LeftShift)(nil)
	_ symex.Expression = (*RightShift)(nil)
	_ symex.Expression = (*BitwiseNot)(nil)
	_ symex.Expression = (*BitwiseOr)(nil)
	_ symex.Expression = (*BitwiseXor)(nil)
	_ symex.Expression = (*BitwiseAnd)(nil)
	_ symex.Expression = (*Comparison)(nil)
	_ symex.Expression = (*LogicalNot)(nil)
	_ symex.Expression = (*LogicalAnd)(nil)
	_ symex.Expression = (*LogicalOr)(nil)
	_ symex.Expression = (*If)(nil)
	_ symex.Expression = (*Min)(nil)
	_ symex.Expression = (*Max)(nil)
	_ symex.Expression = (*Slice)(nil)
	_ symex.Expression = (*CommonSubexpression)(nil)
)
