/*
File   : golox/internal/parser/parser_test.go
Package: parser
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/lexer"
)

func parse(src string) ([]ast.Stmt, *Parser) {
	l := lexer.New(src)
	p := New(l.Scan())
	stmts := p.Parse()
	return stmts, p
}

func TestParse_BinaryPrecedence(t *testing.T) {
	stmts, p := parse("1 + 2 * 3;")
	require.Empty(t, p.Errors)
	require.Len(t, stmts, 1)
	exprStmt := stmts[0].(*ast.ExprStmt)
	bin := exprStmt.Expr.(*ast.Binary)
	assert.Equal(t, "+", string(bin.Op.Kind))
	assert.IsType(t, &ast.Literal{}, bin.Left)
	assert.IsType(t, &ast.Binary{}, bin.Right)
}

func TestParse_LogicalIsNotBinary(t *testing.T) {
	stmts, p := parse("true and false;")
	require.Empty(t, p.Errors)
	exprStmt := stmts[0].(*ast.ExprStmt)
	assert.IsType(t, &ast.Logical{}, exprStmt.Expr)
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmts, p := parse("a = b = 1;")
	require.Empty(t, p.Errors)
	exprStmt := stmts[0].(*ast.ExprStmt)
	outer := exprStmt.Expr.(*ast.Assign)
	assert.Equal(t, "a", outer.Name.Lexeme)
	inner := outer.Value.(*ast.Assign)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetIsError(t *testing.T) {
	_, p := parse("1 = 2;")
	require.NotEmpty(t, p.Errors)
	assert.Contains(t, p.Errors[0].Message, "Invalid assignment target")
}

func TestParse_GetBecomesSetOnAssignment(t *testing.T) {
	stmts, p := parse("a.b = 1;")
	require.Empty(t, p.Errors)
	exprStmt := stmts[0].(*ast.ExprStmt)
	set := exprStmt.Expr.(*ast.Set)
	assert.Equal(t, "b", set.Name.Lexeme)
}

func TestParse_CallChain(t *testing.T) {
	stmts, p := parse("a(1)(2).b;")
	require.Empty(t, p.Errors)
	exprStmt := stmts[0].(*ast.ExprStmt)
	get := exprStmt.Expr.(*ast.Get)
	assert.Equal(t, "b", get.Name.Lexeme)
	assert.IsType(t, &ast.Call{}, get.Object)
}

func TestParse_MaxArguments(t *testing.T) {
	src := "f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ","
		}
		src += "1"
	}
	src += ");"
	_, p := parse(src)
	require.NotEmpty(t, p.Errors)
	assert.Contains(t, p.Errors[0].Message, "Can't have more than 255 arguments")
}

func TestParse_ForDesugarsIntoWhile(t *testing.T) {
	stmts, p := parse("for (var i = 0; i < 3; i = i + 1) print i;")
	require.Empty(t, p.Errors)
	require.Len(t, stmts, 1)
	block := stmts[0].(*ast.Block)
	require.Len(t, block.Statements, 2)
	assert.IsType(t, &ast.Var{}, block.Statements[0])
	whileStmt := block.Statements[1].(*ast.While)
	bodyBlock := whileStmt.Body.(*ast.Block)
	assert.Len(t, bodyBlock.Statements, 2)
}

func TestParse_ForMissingConditionIsTrue(t *testing.T) {
	stmts, p := parse("for (;;) print 1;")
	require.Empty(t, p.Errors)
	whileStmt := stmts[0].(*ast.While)
	lit := whileStmt.Condition.(*ast.Literal)
	assert.Equal(t, true, lit.Value)
}

func TestParse_IfElseBindsToNearest(t *testing.T) {
	stmts, p := parse("if (true) if (false) print 1; else print 2;")
	require.Empty(t, p.Errors)
	outer := stmts[0].(*ast.If)
	inner := outer.Then.(*ast.If)
	assert.NotNil(t, inner.Else)
}

func TestParse_ClassWithSuperclass(t *testing.T) {
	stmts, p := parse("class B < A { m() { return 1; } }")
	require.Empty(t, p.Errors)
	class := stmts[0].(*ast.Class)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "A", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 1)
	assert.Equal(t, "m", class.Methods[0].Name.Lexeme)
}

func TestParse_SuperRequiresDot(t *testing.T) {
	_, p := parse("class B < A { m() { super; } }")
	require.NotEmpty(t, p.Errors)
	assert.Contains(t, p.Errors[0].Message, "Expect '.' after 'super'")
}

func TestParse_SynchronizesAfterError(t *testing.T) {
	stmts, p := parse("var = ; print 1;")
	require.NotEmpty(t, p.Errors)
	require.Len(t, stmts, 1)
	assert.IsType(t, &ast.Print{}, stmts[0])
}

func TestParseExpression_ForREPLFallback(t *testing.T) {
	expr, ok := New(lexer.New("1 + 2").Scan()).ParseExpression()
	require.True(t, ok)
	assert.IsType(t, &ast.Binary{}, expr)
}
