/*
File   : golox/internal/resolver/resolve_expr.go
Package: resolver

Expression-level resolution, one case per ast.Expr variant.
*/
package resolver

import "github.com/loxlang/golox/internal/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if scope := r.currentScope(); scope != nil {
			if b, ok := scope[e.Name.Lexeme]; ok && b.state == declared {
				r.error(e.Name.Line, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// no sub-expressions, no names

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Unary:
		r.resolveExpr(e.Operand)

	case *ast.This:
		if r.currentClass == ckNone {
			r.error(e.Keyword.Line, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	case *ast.Super:
		if r.currentClass == ckNone {
			r.error(e.Keyword.Line, "Can't use 'super' outside of a class.")
		} else if r.currentClass != ckSubclass {
			r.error(e.Keyword.Line, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")
	}
}
