/*
Package expr defines the built-in expression node kinds of symex.

Nodes are immutable values: constructors validate arity and operand types,
returning a *MalformedError for violations, and never rewrite, simplify or
evaluate anything. Structural equality and hashing are derived from
(kind, children) via the base symex package. Explicit helpers for flattening
nested sums/products and for marking common subexpressions are provided, but
they only run when called; building a tree leaves it exactly as written.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors


*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.expr'.
func tracer() tracing.Trace {
	return tracing.Select("symex.expr")
}
