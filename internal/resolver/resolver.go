/*
File   : golox/internal/resolver/resolver.go
Package: resolver

Package resolver implements the static pre-pass spec §4.3 describes: a
single walk over the AST that binds each variable-referencing
expression to a lexical scope depth (or leaves it unresolved, meaning
global) and enforces the scope/usage rules that would otherwise be
under-specified evaluator invariants — self-referencing initializers,
`this`/`super` outside a class, bad `return` placement, and
self-inheriting classes.

There is no resolver in the teacher repo (GoMix resolves names at
evaluation time via the scope chain, not statically); this component is
grounded directly on spec §4.3's state-machine description and on the
same tagged-variant dispatch style (a type switch per node kind) the
teacher's evaluator uses, rather than on a specific teacher file.
*/
package resolver

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/loxerror"
	"github.com/loxlang/golox/internal/token"
)

// varState tracks whether a name in a scope has been declared, defined
// (initializer evaluated), or read — spec §4.3's per-scope state.
type varState int

const (
	declared varState = iota
	defined
	read
)

type binding struct {
	state varState
	line  int
}

type functionKind int

const (
	fkNone functionKind = iota
	fkFunction
	fkMethod
	fkInitializer
)

type classKind int

const (
	ckNone classKind = iota
	ckClass
	ckSubclass
)

// Resolver performs the static pass and accumulates its two outputs:
// Locals (the scope-depth side table) and Errors.
type Resolver struct {
	scopes          []map[string]*binding
	currentFunction functionKind
	currentClass    classKind

	Locals map[ast.Expr]int
	Errors []*loxerror.ResolveError
}

// New creates a Resolver ready to walk a program.
func New() *Resolver {
	return &Resolver{
		Locals: make(map[ast.Expr]int),
	}
}

// Resolve walks a whole program's statements.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStmts(statements)
}

// ResolveExpr walks a single bare expression, used by the REPL's
// expression-fallback mode (spec §6) where input has no enclosing
// statement.
func (r *Resolver) ResolveExpr(expr ast.Expr) {
	r.resolveExpr(expr)
}

func (r *Resolver) error(line int, message string) {
	r.Errors = append(r.Errors, &loxerror.ResolveError{Line: line, Message: message})
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]*binding))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) currentScope() map[string]*binding {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declareName inserts name into the innermost scope as "declared" —
// redeclaring a name already declared/defined in a LOCAL scope is a
// static error (spec §3's invariant); the global scope (no enclosing
// scopes) may be redeclared freely.
func (r *Resolver) declareName(name token.Token) {
	scope := r.currentScope()
	if scope == nil {
		return
	}
	if _, ok := scope[name.Lexeme]; ok {
		r.error(name.Line, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = &binding{state: declared, line: name.Line}
}

func (r *Resolver) defineName(name token.Token) {
	scope := r.currentScope()
	if scope == nil {
		return
	}
	if b, ok := scope[name.Lexeme]; ok {
		b.state = defined
	} else {
		scope[name.Lexeme] = &binding{state: defined, line: name.Line}
	}
}

// resolveLocal searches the scope stack from innermost outward; the
// first match records the walked depth. No match means the reference
// is global and no depth is recorded (spec §3 invariant).
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i][name]; ok {
			b.state = read
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}
