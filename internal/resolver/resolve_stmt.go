/*
File   : golox/internal/resolver/resolve_stmt.go
Package: resolver

Statement-level resolution, one case per ast.Stmt variant.
*/
package resolver

import "github.com/loxlang/golox/internal/ast"

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.Var:
		r.declareName(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.defineName(s.Name)

	case *ast.Function:
		r.declareName(s.Name)
		r.defineName(s.Name)
		r.resolveFunction(s, fkFunction)

	case *ast.ExprStmt:
		r.resolveExpr(s.Expr)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.Print:
		r.resolveExpr(s.Expr)

	case *ast.Return:
		if r.currentFunction == fkNone {
			r.error(s.Keyword.Line, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == fkInitializer {
				r.error(s.Keyword.Line, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.Class:
		r.resolveClass(s)
	}
}

// resolveFunction pushes a scope, declares+defines each parameter, and
// resolves the body under the given FunctionKind, restoring the
// enclosing kind afterward (functions can nest).
func (r *Resolver) resolveFunction(fn *ast.Function, kind functionKind) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declareName(param)
		r.defineName(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

// resolveClass implements spec §4.3's class rule: define the class
// name; resolve the superclass reference if present (rejecting
// self-inheritance); push a `super` scope for subclasses, then a
// `this` scope for every class; resolve each method (initializers
// under fkInitializer, others under fkMethod); pop the scopes in
// reverse order.
func (r *Resolver) resolveClass(c *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = ckClass

	r.declareName(c.Name)
	r.defineName(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.error(c.Superclass.Name.Line, "A class can't inherit from itself.")
		} else {
			r.currentClass = ckSubclass
			r.resolveExpr(c.Superclass)
		}
	}

	if c.Superclass != nil {
		r.beginScope()
		r.currentScope()["super"] = &binding{state: defined}
	}

	r.beginScope()
	r.currentScope()["this"] = &binding{state: defined}

	for _, method := range c.Methods {
		kind := fkMethod
		if method.Name.Lexeme == "init" {
			kind = fkInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}
