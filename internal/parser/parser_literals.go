/*
File   : golox/internal/parser/parser_literals.go
Package: parser

primary covers literals, `this`, `super.IDENT`, grouping, and bare
identifiers (spec §4.2).
*/
package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False):
		return &ast.Literal{Value: false}
	case p.match(token.True):
		return &ast.Literal{Value: true}
	case p.match(token.Nil):
		return &ast.Literal{Value: nil}
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}
	case p.match(token.Super):
		keyword := p.previous()
		if _, ok := p.consume(token.Dot, "Expect '.' after 'super'."); !ok {
			return &ast.Literal{Value: nil}
		}
		method, ok := p.consume(token.Identifier, "Expect superclass method name.")
		if !ok {
			return &ast.Literal{Value: nil}
		}
		return &ast.Super{Keyword: keyword, Method: method}
	case p.match(token.This):
		return &ast.This{Keyword: p.previous()}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	}

	p.error(p.peek(), "Expect expression.")
	// Synchronize-free recovery: return a harmless literal so callers
	// higher up the ladder can keep unwinding instead of dereferencing
	// nil; the error already recorded is what the caller reports.
	return &ast.Literal{Value: nil}
}
