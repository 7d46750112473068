/*
File   : golox/internal/parser/parser_functions.go
Package: parser

Function (and method) declarations: name, parameter list, block body.
kind distinguishes "function" from "method" only for error messages.
*/
package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

func (p *Parser) function(kind string) *ast.Function {
	name, ok := p.consume(token.Identifier, "Expect "+kind+" name.")
	if !ok {
		return nil
	}
	p.consume(token.LeftParen, "Expect '(' after "+kind+" name.")
	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				p.error(p.peek(), "Can't have more than 255 parameters.")
			}
			param, ok := p.consume(token.Identifier, "Expect parameter name.")
			if ok {
				params = append(params, param)
			}
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, "Expect '{' before "+kind+" body.")
	body := p.block()
	return &ast.Function{Name: name, Params: params, Body: body}
}
