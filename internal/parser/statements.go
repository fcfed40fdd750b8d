package parser

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/token"
)

func (p *Parser) parseBlock() *ast.Block {
	tok := p.expect(token.LBRACE, "{")
	block := &ast.Block{Token: tok}
	for p.peek().Kind != token.RBRACE && p.peek().Kind != token.EOF {
		block.Stmts = append(block.Stmts, p.parseStatement())
	}
	p.expect(token.RBRACE, "}")
	return block
}

// ParseStatement is exported for the interactive front end, which wraps
// loose statement submissions into an anonymous body and parses each
// statement directly.
func (p *Parser) ParseStatement() ast.Statement { return p.parseStatement() }

// ParseStatements parses a whole loose-statement submission: every
// statement up to EOF, in order.
func (p *Parser) ParseStatements() []ast.Statement {
	var stmts []ast.Statement
	for p.peek().Kind != token.EOF {
		stmts = append(stmts, p.parseStatement())
	}
	return stmts
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.peek().Kind {
	case token.LBRACE:
		return p.parseBlock()
	case token.KW_IF:
		return p.parseIf()
	case token.KW_WHILE:
		return p.parseWhile()
	case token.KW_RETURN:
		return p.parseReturn()
	default:
		if p.looksLikeVarDecl() {
			return p.parseVarDecl()
		}
		return p.parseExprStmt()
	}
}

// looksLikeVarDecl recognizes "<type-ish> [&] ident [= init] ;":
// primitive keyword types always start a declaration; an identifier only
// starts one when it names a known class. The type may be followed by a
// `&` marking a reference-typed local variable before the name itself.
func (p *Parser) looksLikeVarDecl() bool {
	if !p.startsType(p.peek()) {
		return false
	}
	if p.peekAt(1).Kind == token.AMP {
		return p.peekAt(2).Kind == token.IDENT
	}
	return p.peekAt(1).Kind == token.IDENT
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	ty := p.parseTypeExpr()
	nameTok := p.expect(token.IDENT, "variable name")
	decl := &ast.VarDecl{Token: ty.Token, Type: ty, Name: nameTok.Lexeme}
	if p.peek().Kind == token.ASSIGN {
		p.next()
		decl.Init = p.parseExpression(lowest)
	}
	p.expect(token.SEMI, ";")
	return decl
}

func (p *Parser) parseIf() *ast.If {
	tok := p.expect(token.KW_IF, "if")
	p.expect(token.LPAREN, "(")
	cond := p.parseExpression(lowest)
	p.expect(token.RPAREN, ")")
	then := p.parseStatement()
	stmt := &ast.If{Token: tok, Cond: cond, Then: then}
	if p.peek().Kind == token.KW_ELSE {
		p.next()
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhile() *ast.While {
	tok := p.expect(token.KW_WHILE, "while")
	p.expect(token.LPAREN, "(")
	cond := p.parseExpression(lowest)
	p.expect(token.RPAREN, ")")
	body := p.parseStatement()
	return &ast.While{Token: tok, Cond: cond, Body: body}
}

func (p *Parser) parseReturn() *ast.Return {
	tok := p.expect(token.KW_RETURN, "return")
	stmt := &ast.Return{Token: tok}
	if p.peek().Kind != token.SEMI {
		stmt.Value = p.parseExpression(lowest)
	}
	p.expect(token.SEMI, ";")
	return stmt
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	tok := p.peek()
	expr := p.parseExpression(lowest)
	p.expect(token.SEMI, ";")
	return &ast.ExprStmt{Token: tok, Expr: expr}
}
