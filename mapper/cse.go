package mapper

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"fmt"

	"github.com/symgo/symex"
	"github.com/symgo/symex/expr"
)

// cseKey keys a cached result by the identity of the marker's payload
// crossed with the marker's scope. Interface comparison on node pointers is
// object identity; structurally equal but separately built payloads get
// distinct entries on purpose, since a producer marking two distinct
// objects intends two distinct occurrences.
type cseKey struct {
	payload symex.Expression
	scope   expr.Scope
}

// Cache wraps a mapper so that common-subexpression markers are computed at
// most once per scope. For unmarked nodes the wrapper is transparent: Map
// behaves exactly like the wrapped mapper's Map.
//
// Evaluation-scoped results live for a single top-level Map call.
// Expression- and global-scoped results persist across Map calls for the
// lifetime of the Cache instance; Reset drops the expression-scoped ones.
// A Cache is not synchronized; concurrent traversals need one instance
// each.
//
// Extra arguments are deliberately not part of the cache key. A marker
// promises that its payload means the same thing everywhere it occurs
// within a scope; callers varying extra arguments per occurrence must not
// share markers across those occurrences.
type Cache struct {
	m          *Mapper
	expression map[cseKey]interface{}
	global     map[cseKey]interface{}
}

// NewCache wraps m in a fresh common-subexpression cache.
func NewCache(m *Mapper) *Cache {
	return &Cache{
		m:          m,
		expression: make(map[cseKey]interface{}),
		global:     make(map[cseKey]interface{}),
	}
}

// Mapper returns the wrapped mapper.
func (c *Cache) Mapper() *Mapper { return c.m }

// Reset drops all expression-scoped results, for reuse of the Cache on a
// tree that shares no marked objects with previous ones. Global-scoped
// results survive.
func (c *Cache) Reset() {
	c.expression = make(map[cseKey]interface{})
}

// Map transforms a tree like the wrapped mapper's Map, but resolves
// common-subexpression markers through the cache. The evaluation-scoped
// part of the cache is fresh for this one call.
func (c *Cache) Map(v interface{}, extra ...interface{}) (interface{}, error) {
	evaluation := make(map[cseKey]interface{})
	var rec Rec
	rec = func(v interface{}, extra ...interface{}) (interface{}, error) {
		cse, ok := v.(*expr.CommonSubexpression)
		if !ok {
			return c.m.Dispatch(rec, v, extra...)
		}
		payload, ok := cse.Child().(symex.Expression)
		if !ok {
			// A foreign payload has no usable object identity, so there
			// is nothing to key a cache entry on. Within one evaluation
			// recomputation is harmless; a persistent scope promises
			// memoization this cache cannot deliver.
			if cse.Scope() != expr.ScopeEvaluation {
				return nil, &ScopeMisuseError{
					Scope:  cse.Scope(),
					Reason: "foreign payload has no identity to key a persistent result on",
				}
			}
			tracer().Debugf("cache %s: foreign payload under marker, computing uncached", c.m.name)
			return c.uncached(rec, cse, extra...)
		}
		var store map[cseKey]interface{}
		switch cse.Scope() {
		case expr.ScopeExpression:
			store = c.expression
		case expr.ScopeGlobal:
			store = c.global
		default:
			store = evaluation
		}
		key := cseKey{payload: payload, scope: cse.Scope()}
		if r, hit := store[key]; hit {
			return r, nil
		}
		r, err := c.uncached(rec, cse, extra...)
		if err != nil {
			return nil, err
		}
		store[key] = r
		return r, nil
	}
	return rec(v, extra...)
}

// uncached computes a marker the way the wrapped mapper would: through its
// own marker handler when it has one, otherwise by dispatching the payload.
func (c *Cache) uncached(rec Rec, cse *expr.CommonSubexpression, extra ...interface{}) (interface{}, error) {
	if h, ok := c.m.HandlerFor(expr.KindCSE); ok {
		return h(rec, cse, extra...)
	}
	return c.m.Dispatch(rec, cse.Child(), extra...)
}

// ScopeMisuseError reports a marker whose scope cannot be honored by the
// facility it was handed to, e.g. a persistent scope on a renderer that
// splits assignments per call.
type ScopeMisuseError struct {
	Scope  expr.Scope
	Reason string
}

func (e *ScopeMisuseError) Error() string {
	return fmt.Sprintf("common-subexpression scope %s: %s", e.Scope, e.Reason)
}
