/*
Package deps collects the variables an expression depends on.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors


*/
package deps

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/symgo/symex/expr"
	"github.com/symgo/symex/mapper"
)

// Variables returns the names of all variables occurring in a tree, sorted
// and without duplicates. Function symbols do not count as variables; the
// function position of a call contributes only when it is itself a
// variable.
func Variables(v interface{}) ([]string, error) {
	set := treeset.NewWith(utils.StringComparator)
	w := mapper.Walker("deps", func(v interface{}) error {
		if vn, ok := v.(*expr.Variable); ok {
			set.Add(vn.Name())
		}
		return nil
	})
	if _, err := w.Map(v); err != nil {
		return nil, err
	}
	names := make([]string, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		names = append(names, it.Value().(string))
	}
	return names, nil
}
