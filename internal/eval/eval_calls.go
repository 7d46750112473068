/*
File   : golox/internal/eval/eval_calls.go
Package: eval

Call dispatch: `callee(args)` where callee is a user-defined function, a
native function, or a class (construction). A plain Go type switch —
"dynamic dispatch on AST node kind is a tagged-variant match; no open
set is needed" (spec §9) applies equally to the call target's runtime
kind as it does to the AST node kind.
*/
package eval

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/callable"
	"github.com/loxlang/golox/internal/class"
	"github.com/loxlang/golox/internal/environment"
	"github.com/loxlang/golox/internal/values"
)

func (in *Interpreter) evalCall(e *ast.Call) (values.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]values.Value, len(e.Args))
	for i, a := range e.Args {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch fn := callee.(type) {
	case *callable.Function:
		if len(args) != fn.Arity() {
			return nil, rtErr(e.CallSite.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return in.callFunction(fn, args)

	case *callable.Native:
		if len(args) != fn.Arity() {
			return nil, rtErr(e.CallSite.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		v, err := fn.Call(args)
		if err != nil {
			return nil, rtErr(e.CallSite.Line, "%s", err.Error())
		}
		return v, nil

	case *class.Class:
		if len(args) != fn.Arity() {
			return nil, rtErr(e.CallSite.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return in.instantiate(fn, args)

	default:
		return nil, rtErr(e.CallSite.Line, "Can only call functions and classes.")
	}
}

// callFunction runs a user-defined function body in a fresh frame
// whose parent is the function's closure, binding parameters by
// position, and converts the returnSignal control value (if any) into
// its carried value. A genuine runtime error from the body propagates
// immediately, even inside an initializer — only a returnSignal (or
// normal completion) reaches the "initializers always yield `this`"
// rule (spec §3/§4.4); a bare `return;` from init() is fine, but a
// thrown runtime error must still halt execution per spec §7.
func (in *Interpreter) callFunction(fn *callable.Function, args []values.Value) (values.Value, error) {
	callEnv := environment.New(fn.Closure)
	for i, param := range fn.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(fn.Declaration.Body, callEnv)
	if err != nil {
		if _, ok := err.(*returnSignal); !ok {
			return nil, err
		}
	}
	if fn.IsInitializer {
		this, getErr := fn.Closure.GetAt(0, "this")
		if getErr != nil {
			return nil, getErr
		}
		return this, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.value, nil
	}
	return values.NilValue, nil
}

// instantiate implements spec §4.4's class-call semantics: construct
// an instance and, if the class (or an ancestor) defines `init`, bind
// and invoke it with the call's arguments.
func (in *Interpreter) instantiate(cls *class.Class, args []values.Value) (values.Value, error) {
	instance := class.NewInstance(cls)
	if init, ok := cls.FindMethod("init"); ok {
		bound := init.Bind(instance)
		if _, err := in.callFunction(bound, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
