/*
File   : golox/internal/callable/function.go
Package: callable

Package callable defines Function, the runtime representation of a Lox
function or method, adapted from the teacher's function.Function
(function/function.go): a declaration, a captured closure environment,
and — Lox-specific, absent from the teacher's version — an
IsInitializer flag that changes what a bare `return;` yields (spec §3's
"is_initializer functions always return this" invariant).
*/
package callable

import (
	"fmt"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/environment"
	"github.com/loxlang/golox/internal/values"
)

// Function is a user-defined function or method value: it captures the
// environment in which it was declared (its closure), enabling
// first-class functions and late-binding of `this`/`super` via the
// one-entry frames a method binding injects.
type Function struct {
	Declaration   *ast.Function
	Closure       *environment.Environment
	IsInitializer bool
}

func (f *Function) Type() values.Type { return values.FunctionType }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Arity is the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Name returns the function's declared name (empty for none, though
// Lox has no anonymous function literals at the statement level).
func (f *Function) Name() string {
	return f.Declaration.Name.Lexeme
}

// Bind returns a new Function identical to f except its closure is
// extended with a single frame binding `this` to instance. This is how
// `obj.method` produces a bound method (spec §4.4's Property access)
// without mutating the method stored on the class.
func (f *Function) Bind(instance values.Value) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return &Function{
		Declaration:   f.Declaration,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}
