/*
File   : golox/internal/natives/natives.go
Package: natives

Package natives registers the native function table into the global
environment at evaluator startup, mirroring the teacher's std.Builtins
registration (std/builtins.go's init() appending to a package-level
slice, consumed by Evaluator.NewEvaluator's registration loop). Spec
§4.4 requires at minimum `clock`; no other natives are added since
broader stdlib surfaces are explicitly out of scope for this core.
*/
package natives

import (
	"time"

	"github.com/loxlang/golox/internal/callable"
	"github.com/loxlang/golox/internal/environment"
	"github.com/loxlang/golox/internal/values"
)

// All is the fixed set of native functions this core exposes.
var All = []*callable.Native{
	{
		FnName: "clock",
		FnAr:   0,
		Fn: func(args []values.Value) (values.Value, error) {
			return values.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	},
}

// Register defines every native function by name in env, normally the
// global frame.
func Register(env *environment.Environment) {
	for _, n := range All {
		env.Define(n.FnName, n)
	}
}
