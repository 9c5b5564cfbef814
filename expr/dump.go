package expr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors

*/

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/symgo/symex"
)

// Dump prints an expression tree to the terminal, one line per node, as an
// indented tree. Intended for interactive debugging; programmatic clients
// should use symex.Repr or package render instead.
func Dump(label string, v interface{}) {
	pterm.Println(label)
	ll := leveledOperand(v, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	if err := pterm.DefaultTree.WithRoot(root).Render(); err != nil {
		tracer().Errorf("tree dump failed: %v", err)
	}
}

func leveledOperand(v interface{}, ll pterm.LeveledList, level int) pterm.LeveledList {
	switch v := v.(type) {
	case nil:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  "nil",
		})
	case symex.Expression:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  string(v.Kind()),
		})
		for _, c := range v.Children() {
			ll = leveledOperand(c, ll, level+1)
		}
	case []interface{}:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  "sequence",
		})
		for _, c := range v {
			ll = leveledOperand(c, ll, level+1)
		}
	default:
		ll = append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%v", v),
		})
	}
	return ll
}
