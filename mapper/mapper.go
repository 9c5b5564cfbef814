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
)

// Rec is the re-entry point a handler uses to recurse into children. It is
// not necessarily the raw dispatch of the mapper: wrappers such as Cache
// pass a Rec that routes child traversal back through the wrapper.
type Rec func(v interface{}, extra ...interface{}) (interface{}, error)

// Handler transforms a single expression node. Recursion into children is
// the handler's responsibility, via rec. The extra arguments are passed
// through from the top-level Map call and are commonly threaded unchanged
// to child recursions.
type Handler func(rec Rec, e symex.Expression, extra ...interface{}) (interface{}, error)

// ForeignHandler transforms a foreign (non-Expression) leaf value.
type ForeignHandler func(rec Rec, v interface{}, extra ...interface{}) (interface{}, error)

// Mapper is a transformation over expression trees: per-kind handlers plus
// the foreign and fallback slots. The slots are exported fields so that a
// transformation author can install defaults after New; the kind table is
// populated through Handle.
type Mapper struct {
	name     string
	handlers map[symex.Kind]Handler

	// Unsupported is invoked for nodes whose kind has no registered
	// handler. When nil, dispatch fails with an UnsupportedError.
	Unsupported Handler

	// Foreign-leaf slots by category. A nil category slot falls through to
	// OnForeign; a nil OnForeign fails with a ForeignValueError.
	OnConstant ForeignHandler
	OnSequence ForeignHandler
	OnArray    ForeignHandler
	OnForeign  ForeignHandler
}

// New creates an empty mapper. The name appears in traces and errors.
func New(name string) *Mapper {
	return &Mapper{
		name:     name,
		handlers: make(map[symex.Kind]Handler),
	}
}

// Name returns the mapper's diagnostic name.
func (m *Mapper) Name() string { return m.name }

// Handle registers h as the handler for kind k, replacing any previous
// registration. It returns m for chaining.
func (m *Mapper) Handle(k symex.Kind, h Handler) *Mapper {
	m.handlers[k] = h
	return m
}

// HandlerFor returns the handler registered for kind k, if any.
func (m *Mapper) HandlerFor(k symex.Kind) (Handler, bool) {
	h, ok := m.handlers[k]
	return h, ok
}

// Map transforms a tree, dispatching v and, through the handlers, its
// descendants. Extra arguments are handed to every handler invocation.
func (m *Mapper) Map(v interface{}, extra ...interface{}) (interface{}, error) {
	var rec Rec
	rec = func(v interface{}, extra ...interface{}) (interface{}, error) {
		return m.Dispatch(rec, v, extra...)
	}
	return rec(v, extra...)
}

// Dispatch routes a single value to its handler: expression nodes by kind
// tag, foreign leaves by category. Handlers receive rec for recursion, so a
// wrapper that wants to stay in the loop passes its own Rec here. Dispatch
// never mutates v; a failed dispatch affects nothing beyond the returned
// error.
func (m *Mapper) Dispatch(rec Rec, v interface{}, extra ...interface{}) (interface{}, error) {
	if e, ok := v.(symex.Expression); ok {
		if h, ok := m.handlers[e.Kind()]; ok {
			return h(rec, e, extra...)
		}
		if m.Unsupported != nil {
			return m.Unsupported(rec, e, extra...)
		}
		tracer().Errorf("mapper %s cannot handle %s nodes", m.name, e.Kind())
		return nil, &UnsupportedError{Mapper: m.name, Kind: e.Kind()}
	}
	switch symex.Categorize(v) {
	case symex.Constant:
		if m.OnConstant != nil {
			return m.OnConstant(rec, v, extra...)
		}
	case symex.Sequence:
		if m.OnSequence != nil {
			return m.OnSequence(rec, v, extra...)
		}
	case symex.Array:
		if m.OnArray != nil {
			return m.OnArray(rec, v, extra...)
		}
	}
	if m.OnForeign != nil {
		return m.OnForeign(rec, v, extra...)
	}
	return nil, &ForeignValueError{Mapper: m.name, Value: v}
}

// UnsupportedError reports a node kind for which a mapper has no handler
// and no fallback. Callers may recover by substituting a default result.
type UnsupportedError struct {
	Mapper string
	Kind   symex.Kind
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("mapper %s: unsupported expression kind %s", e.Mapper, e.Kind)
}

// ForeignValueError reports a foreign leaf no slot of the mapper accepts.
type ForeignValueError struct {
	Mapper string
	Value  interface{}
}

func (e *ForeignValueError) Error() string {
	return fmt.Sprintf("mapper %s: unrecognized foreign value of type %T", e.Mapper, e.Value)
}
