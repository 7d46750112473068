/*
File   : golox/internal/eval/eval_helpers.go
Package: eval

Small helpers shared across the evaluation files, grounded on the
teacher's eval_helpers.go / evaluator_helpers.go split (IsError,
StrictEqual, switchValuesEqual) but retargeted at spec §4.4's
truthiness and equality rules instead of GoMix's.
*/
package eval

import (
	"github.com/loxlang/golox/internal/loxerror"
	"github.com/loxlang/golox/internal/values"
)

// rtErr builds a position-stamped runtime error, mirroring the
// teacher's Evaluator.CreateError convention.
func rtErr(line int, format string, a ...interface{}) error {
	return loxerror.NewRuntimeError(line, format, a...)
}

// isTruthy implements spec §4.4: nil and false are false, everything
// else (including 0 and "") is true.
func isTruthy(v values.Value) bool {
	switch val := v.(type) {
	case values.Nil:
		return false
	case values.Bool:
		return val.Value
	default:
		return true
	}
}

// isEqual implements spec §4.4's equality rule: nil == nil; values of
// different kinds are never equal; numbers/strings compare by value;
// functions/classes/instances compare by identity (the default Go
// `==` on their pointer values, reached by the default case here).
func isEqual(a, b values.Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case values.Nil:
		return true
	case values.Bool:
		return av.Value == b.(values.Bool).Value
	case values.Number:
		return av.Value == b.(values.Number).Value
	case values.String:
		return av.Value == b.(values.String).Value
	default:
		return a == b
	}
}
