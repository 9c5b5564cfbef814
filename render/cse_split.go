package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"fmt"
	"reflect"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/symgo/symex"
	"github.com/symgo/symex/expr"
	"github.com/symgo/symex/mapper"
)

// Assignment is one named common subexpression collected by a Splitter.
type Assignment struct {
	Name string
	Text string
}

// Splitter is a renderer that pulls common-subexpression markers out of the
// rendered text. A marker renders as a generated (or prefix-suggested)
// name, and the payload's rendering is collected as an assignment to that
// name. Assignments come out in dependency order: emitting them top to
// bottom never references a name before its definition.
//
// Names are keyed by payload object identity, so the same marked object
// renders as the same name throughout, while structurally equal but
// distinct payloads get distinct names.
type Splitter struct {
	m           *mapper.Mapper
	byChild     map[interface{}]string
	names       map[string]bool
	assignments *arraylist.List
	counter     int
}

// NewSplitter builds a fresh CSE-splitting renderer.
func NewSplitter() *Splitter {
	sp := &Splitter{
		m:           NewMapper(),
		byChild:     make(map[interface{}]string),
		names:       make(map[string]bool),
		assignments: arraylist.New(),
	}
	sp.m.Handle(expr.KindCSE, func(rec mapper.Rec, e symex.Expression, extra ...interface{}) (interface{}, error) {
		cse := e.(*expr.CommonSubexpression)
		child := cse.Child()
		keyable := child != nil && reflect.TypeOf(child).Comparable()
		if keyable {
			if name, ok := sp.byChild[child]; ok {
				return name, nil
			}
		}
		text, err := recStr(rec, child, PrecNone)
		if err != nil {
			return nil, err
		}
		name := sp.pickName(cse.Prefix())
		sp.assignments.Add(Assignment{Name: name, Text: text})
		sp.names[name] = true
		if keyable {
			sp.byChild[child] = name
		}
		return name, nil
	})
	return sp
}

// Mapper returns the underlying renderer, for overriding further handlers.
func (sp *Splitter) Mapper() *mapper.Mapper { return sp.m }

// Render renders an operand, collecting assignments for every marker
// encountered. Repeated Render calls on the same Splitter share names and
// accumulate into one assignment list.
func (sp *Splitter) Render(v interface{}) (string, error) {
	r, err := sp.m.Map(v, PrecNone)
	if err != nil {
		return "", err
	}
	return r.(string), nil
}

// Assignments returns the collected assignments in dependency order.
func (sp *Splitter) Assignments() []Assignment {
	out := make([]Assignment, 0, sp.assignments.Size())
	it := sp.assignments.Iterator()
	for it.Next() {
		out = append(out, it.Value().(Assignment))
	}
	return out
}

func (sp *Splitter) pickName(prefix string) string {
	if prefix != "" {
		if !sp.names[prefix] {
			return prefix
		}
		for i := 2; ; i++ {
			name := fmt.Sprintf("%s_%d", prefix, i)
			if !sp.names[name] {
				return name
			}
		}
	}
	for {
		name := fmt.Sprintf("CSE%d", sp.counter)
		sp.counter++
		if !sp.names[name] {
			return name
		}
	}
}
