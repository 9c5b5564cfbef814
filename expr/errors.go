package expr

import (
	"fmt"

	"github.com/symgo/symex"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023–2026 The symex authors
*/

// MalformedError is returned by node constructors when children counts or
// leaf types violate the arity contract of a kind. Construction either
// succeeds completely or fails with this error; a node is never partially
// built.
type MalformedError struct {
	Kind   symex.Kind
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed %s expression: %s", e.Kind, e.Reason)
}

func malformed(kind symex.Kind, format string, args ...interface{}) error {
	err := &MalformedError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
	tracer().Errorf(err.Error())
	return err
}

// checkOperands verifies that every value is a legal operand: an Expression
// or a recognized foreign value.
func checkOperands(kind symex.Kind, operands ...interface{}) error {
	for i, v := range operands {
		if v == nil {
			return malformed(kind, "operand %d is nil", i)
		}
		if !symex.IsOperand(v) {
			return malformed(kind, "operand %d (%T) is neither an expression nor a recognized foreign value", i, v)
		}
	}
	return nil
}
