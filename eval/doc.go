/*
Package eval numerically evaluates expression trees.

Evaluation binds variables to values through a context map, folds the
arithmetic, bitwise and logical operators over Go numbers, and honors
common-subexpression markers through the caching layer of package mapper.
Integer operands stay integral as long as the operator permits; true
division and fractional powers promote to floating point, complex operands
promote further. Floor division and remainder follow the sign of the
divisor.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors


*/
package eval

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.eval'.
func tracer() tracing.Trace {
	return tracing.Select("symex.eval")
}
