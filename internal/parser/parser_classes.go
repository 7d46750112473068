/*
File   : golox/internal/parser/parser_classes.go
Package: parser

Class declaration: `class NAME ( '<' SUPER )? '{' METHOD* '}'` (spec
§4.2), mirroring the split-out struct-parsing file the teacher keeps
(parser/parser_structs.go) but with single-inheritance superclass
syntax, which GoMix structs don't have.
*/
package parser

import (
	"github.com/loxlang/golox/internal/ast"
	"github.com/loxlang/golox/internal/token"
)

func (p *Parser) classDeclaration() ast.Stmt {
	name, ok := p.consume(token.Identifier, "Expect class name.")
	if !ok {
		return nil
	}

	var superclass *ast.Variable
	if p.match(token.Less) {
		if _, ok := p.consume(token.Identifier, "Expect superclass name."); ok {
			superclass = &ast.Variable{Name: p.previous()}
		}
	}

	p.consume(token.LeftBrace, "Expect '{' before class body.")
	var methods []*ast.Function
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if m := p.function("method"); m != nil {
			methods = append(methods, m)
		}
	}
	p.consume(token.RightBrace, "Expect '}' after class body.")

	return &ast.Class{Name: name, Superclass: superclass, Methods: methods}
}
