/*
File   : golox/internal/parser/parser_statements.go
Package: parser

Statement-level parsing: the declaration dispatcher, `var`, `print`,
bare expression statements, and blocks.
*/
package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

// declaration dispatches to a class/fun/var declaration or falls
// through to an ordinary statement, synchronizing on error so one bad
// statement doesn't stop the rest of the program from parsing (spec
// §4.2).
func (p *Parser) declaration() ast.Stmt {
	errCountBefore := len(p.Errors)
	var stmt ast.Stmt
	switch {
	case p.match(token.Class):
		stmt = p.classDeclaration()
	case p.match(token.Fun):
		stmt = p.function("function")
	case p.match(token.Var):
		stmt = p.varDeclaration()
	default:
		stmt = p.statement()
	}
	if len(p.Errors) > errCountBefore {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) varDeclaration() ast.Stmt {
	name, ok := p.consume(token.Identifier, "Expect variable name.")
	if !ok {
		return nil
	}
	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.Var{Name: name, Initializer: initializer}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.Block{Statements: p.block()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.Print{Expr: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExprStmt{Expr: expr}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return statements
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.Return{Keyword: keyword, Value: value}
}
