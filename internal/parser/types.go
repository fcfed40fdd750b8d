package parser

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/token"
)

// parseTypeExpr parses a primitive keyword or class-name type, optionally
// suffixed with `&` for a reference type.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	tok := p.peek()
	var name string
	switch tok.Kind {
	case token.KW_INT:
		name = "int"
	case token.KW_BOOL:
		name = "bool"
	case token.KW_CHAR:
		name = "char"
	case token.KW_STRING:
		name = "string"
	case token.KW_VOID:
		name = "void"
	case token.IDENT:
		name = tok.Lexeme
	default:
		p.errorf(tok, "expected a type, got %q", tok.Lexeme)
	}
	p.next()

	isRef := false
	if p.peek().Kind == token.AMP {
		p.next()
		isRef = true
	}
	return &ast.TypeExpr{Token: tok, Name: name, IsRef: isRef}
}

// parseParamList parses a parenthesized, comma-separated (Type name)
// list.
func (p *Parser) parseParamList() []*ast.Param {
	p.expect(token.LPAREN, "(")
	var params []*ast.Param
	for p.peek().Kind != token.RPAREN && p.peek().Kind != token.EOF {
		if len(params) > 0 {
			p.expect(token.COMMA, ",")
		}
		pt := p.parseTypeExpr()
		nameTok := p.expect(token.IDENT, "parameter name")
		params = append(params, &ast.Param{Token: pt.Token, Type: pt, Name: nameTok.Lexeme})
	}
	p.expect(token.RPAREN, ")")
	return params
}

// parseArgList parses a parenthesized, comma-separated expression list.
func (p *Parser) parseArgList() []ast.Expression {
	p.expect(token.LPAREN, "(")
	var args []ast.Expression
	for p.peek().Kind != token.RPAREN && p.peek().Kind != token.EOF {
		if len(args) > 0 {
			p.expect(token.COMMA, ",")
		}
		args = append(args, p.parseExpression(lowest))
	}
	p.expect(token.RPAREN, ")")
	return args
}
