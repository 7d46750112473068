/*
File   : golox/internal/eval/eval_statements.go
Package: eval

Statement execution, mirroring the file split the teacher uses
(eval/eval_statements.go, eval/eval_structs.go): one function per
ast.Stmt variant, returning a non-nil error only for a returnSignal or
a loxerror.RuntimeError — normal completion is a nil error.
*/
package eval

import (
	"fmt"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/callable"
	"github.com/loxlang/golox/internal/class"
	"github.com/loxlang/golox/internal/environment"
	"github.com/loxlang/golox/internal/values"
)

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.evaluate(s.Expr)
		return err

	case *ast.Print:
		v, err := in.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Writer, v.String())
		return nil

	case *ast.Var:
		in.env.Declare(s.Name.Lexeme)
		v := values.NilValue
		if s.Initializer != nil {
			var err error
			v, err = in.evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Statements, environment.New(in.env))

	case *ast.If:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if isTruthy(cond) {
			return in.execute(s.Then)
		} else if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := in.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !isTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := &callable.Function{Declaration: s, Closure: in.env, IsInitializer: false}
		in.env.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var v values.Value = values.NilValue
		if s.Value != nil {
			var err error
			v, err = in.evaluate(s.Value)
			if err != nil {
				return err
			}
		}
		return &returnSignal{value: v}

	case *ast.Class:
		return in.executeClass(s)
	}
	return nil
}

// executeBlock runs statements in a fresh environment, restoring the
// caller's environment on the way out even if an error or return
// signal unwinds early.
func (in *Interpreter) executeBlock(statements []ast.Stmt, env *environment.Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// executeClass implements spec §4.3/§4.4's class evaluation: resolve
// the (optional) superclass, bind a `super` slot one level out from
// the method-binding `this` slot when there is one, build the method
// table, and bind the class object under its own name.
func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *class.Class
	if s.Superclass != nil {
		v, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*class.Class)
		if !ok {
			return rtErr(s.Superclass.Name.Line, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, environment.Uninitialized)

	classEnv := in.env
	if s.Superclass != nil {
		classEnv = environment.New(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*callable.Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &callable.Function{
			Declaration:   m,
			Closure:       classEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	cls := &class.Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	in.env.Assign(s.Name.Lexeme, cls)
	return nil
}
