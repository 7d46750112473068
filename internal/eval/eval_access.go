/*
File   : golox/internal/eval/eval_access.go
Package: eval

Property access: `obj.name`, `obj.name = value`, and `super.method`,
mirroring the teacher's split-out eval_access.go (struct member access)
but generalized to Lox's single-inheritance method resolution.
*/
package eval

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/class"
	"github.com/loxlang/golox/internal/values"
)

func (in *Interpreter) evalGet(e *ast.Get) (values.Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*class.Instance)
	if !ok {
		return nil, rtErr(e.Name.Line, "Only instances have properties.")
	}
	v, err := inst.Get(e.Name.Lexeme)
	if err != nil {
		return nil, rtErr(e.Name.Line, "%s", err.Error())
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.Set) (values.Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*class.Instance)
	if !ok {
		return nil, rtErr(e.Name.Line, "Only instances have fields.")
	}
	value, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, value)
	return value, nil
}

// evalSuper reads `super.method`, binding `this` (one environment
// frame inside the injected `super` slot — spec §4.4) to the current
// instance rather than to the superclass.
func (in *Interpreter) evalSuper(e *ast.Super) (values.Value, error) {
	depth := in.locals[e]
	superVal, err := in.env.GetAt(depth, "super")
	if err != nil {
		return nil, rtErr(e.Keyword.Line, "%s", err.Error())
	}
	superclass := superVal.(*class.Class)

	thisVal, err := in.env.GetAt(depth-1, "this")
	if err != nil {
		return nil, rtErr(e.Keyword.Line, "%s", err.Error())
	}

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, rtErr(e.Method.Line, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(thisVal), nil
}
