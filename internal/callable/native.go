/*
File   : golox/internal/callable/native.go
Package: callable

Native mirrors the teacher's std.Builtin (std/builtins.go): a name paired
with a Go callback, registered into the global environment at evaluator
startup instead of being parsed from source.
*/
package callable

import "github.com/loxlang/golox/internal/values"

// NativeFn is the signature every native function implements.
type NativeFn func(args []values.Value) (values.Value, error)

// Native is a built-in callable exposed to Lox code, such as `clock`.
type Native struct {
	FnName string
	FnAr   int
	Fn     NativeFn
}

func (n *Native) Type() values.Type { return values.NativeType }
func (n *Native) String() string    { return "<native fn>" }
func (n *Native) Arity() int        { return n.FnAr }
func (n *Native) Name() string      { return n.FnName }
func (n *Native) Call(args []values.Value) (values.Value, error) {
	return n.Fn(args)
}
