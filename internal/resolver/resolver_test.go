/*
File   : golox/internal/resolver/resolver_test.go
Package: resolver
*/
package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/lexer"
	"github.com/loxlang/golox/internal/parser"
)

func resolveSource(t *testing.T, src string) (*Resolver, []ast.Stmt) {
	t.Helper()
	l := lexer.New(src)
	p := parser.New(l.Scan())
	stmts := p.Parse()
	require.Empty(t, p.Errors, "unexpected parse errors")
	r := New()
	r.Resolve(stmts)
	return r, stmts
}

func TestResolve_LocalShadowsGlobalAtDepthZero(t *testing.T) {
	r, stmts := resolveSource(t, `var a = "global"; { var a = "local"; print a; }`)
	assert.Empty(t, r.Errors)
	block := stmts[1].(*ast.Block)
	printStmt := block.Statements[1].(*ast.Print)
	v := printStmt.Expr.(*ast.Variable)
	depth, ok := r.Locals[v]
	require.True(t, ok)
	assert.Equal(t, 0, depth)
}

func TestResolve_GlobalReferenceFromNestedBlockHasNoDepth(t *testing.T) {
	r, stmts := resolveSource(t, `var a = 1; { { print a; } }`)
	assert.Empty(t, r.Errors)
	outer := stmts[1].(*ast.Block)
	inner := outer.Statements[0].(*ast.Block)
	printStmt := inner.Statements[0].(*ast.Print)
	v := printStmt.Expr.(*ast.Variable)
	_, ok := r.Locals[v]
	assert.False(t, ok, "reference to a global has no recorded depth")
}

func TestResolve_SelfReferencingInitializerIsError(t *testing.T) {
	r, _ := resolveSource(t, `{ var a = a; }`)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "own initializer")
}

func TestResolve_RedeclarationInLocalScopeIsError(t *testing.T) {
	r, _ := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "Already a variable")
}

func TestResolve_RedeclarationAtGlobalScopeIsAllowed(t *testing.T) {
	r, _ := resolveSource(t, `var a = 1; var a = 2;`)
	assert.Empty(t, r.Errors)
}

func TestResolve_ReturnAtTopLevelIsError(t *testing.T) {
	r, _ := resolveSource(t, `return 1;`)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "return from top-level")
}

func TestResolve_ReturnValueFromInitializerIsError(t *testing.T) {
	r, _ := resolveSource(t, `class C { init() { return 1; } }`)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "return a value from an initializer")
}

func TestResolve_BareReturnFromInitializerIsFine(t *testing.T) {
	r, _ := resolveSource(t, `class C { init() { return; } }`)
	assert.Empty(t, r.Errors)
}

func TestResolve_ThisOutsideClassIsError(t *testing.T) {
	r, _ := resolveSource(t, `print this;`)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "'this' outside of a class")
}

func TestResolve_SuperOutsideSubclassIsError(t *testing.T) {
	r, _ := resolveSource(t, `class C { m() { super.m(); } }`)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "no superclass")
}

func TestResolve_ClassInheritingFromItselfIsError(t *testing.T) {
	r, _ := resolveSource(t, `class C < C {}`)
	require.Len(t, r.Errors, 1)
	assert.Contains(t, r.Errors[0].Message, "inherit from itself")
}

func TestResolve_SuperInSubclassMethodResolves(t *testing.T) {
	r, _ := resolveSource(t, `class A { m() {} } class B < A { m() { super.m(); } }`)
	assert.Empty(t, r.Errors)
}
