/*
Package mapper implements the dispatch engine of symex.

A Mapper is a transformation over expression trees: a table of per-kind
handlers plus slots for foreign leaves and for unsupported kinds. Dispatch is
keyed by a node's kind tag, not by its Go type, so a transformation is the
unit of extension. A new node kind integrates by handing every interested
mapper a handler under its tag; mappers that do not care fall through to
their unsupported slot.

Handlers recurse explicitly through the Rec callback they receive. This
keeps wrapping layers such as the common-subexpression Cache in the
recursion loop, and lets a handler skip, reorder or transform children
non-uniformly. Traversal depth equals tree depth on the native call stack;
trees deep enough to exhaust goroutine stack growth are out of scope.

Mappers and caches are not synchronized. Nodes are immutable and freely
shared across goroutines, but each concurrent traversal must use its own
Cache instance, and handler tables as well as the constant-type registry of
the base package are meant to be populated during setup, before dispatch
runs.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors


*/
package mapper

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'symex.mapper'.
func tracer() tracing.Trace {
	return tracing.Select("symex.mapper")
}
