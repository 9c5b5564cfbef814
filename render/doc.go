/*
Package render turns expression trees back into infix text.

The renderer is an ordinary mapper whose handlers thread an enclosing
precedence level through the recursion as an extra argument. Each handler
renders its children at the precedence its operator position demands and
wraps its own result in parentheses when the surrounding position binds
tighter. Handlers for user-defined kinds call ParenthesizeIfNeeded with
their kind's precedence and integrate without engine changes.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors


*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.render'.
func tracer() tracing.Trace {
	return tracing.Select("symex.render")
}
