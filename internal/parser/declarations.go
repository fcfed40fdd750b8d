package parser

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/token"
)

// parseFunctionDef parses `ReturnType name(params) { body }`.
func (p *Parser) parseFunctionDef() *ast.FunctionDef {
	retType := p.parseTypeExpr()
	nameTok := p.expect(token.IDENT, "function name")
	params := p.parseParamList()
	body := p.parseBlock()
	return &ast.FunctionDef{
		Token:      retType.Token,
		Name:       nameTok.Lexeme,
		ReturnType: retType,
		Params:     params,
		Body:       body,
	}
}

// parseClassDef parses:
//
//	class Name [: public Base] { fields; constructors; methods }
func (p *Parser) parseClassDef() *ast.ClassDef {
	classTok := p.expect(token.KW_CLASS, "class")
	nameTok := p.expect(token.IDENT, "class name")
	p.classNames[nameTok.Lexeme] = true

	cls := &ast.ClassDef{Token: classTok, Name: nameTok.Lexeme}

	if p.peek().Kind == token.COLON {
		p.next()
		if p.peek().Kind == token.KW_PUBLIC {
			p.next()
		}
		baseTok := p.expect(token.IDENT, "base class name")
		cls.BaseName = baseTok.Lexeme
	}

	p.expect(token.LBRACE, "{")
	for p.peek().Kind != token.RBRACE && p.peek().Kind != token.EOF {
		p.parseClassMember(cls)
	}
	p.expect(token.RBRACE, "}")
	return cls
}

func (p *Parser) parseClassMember(cls *ast.ClassDef) {
	virtual := false
	if p.peek().Kind == token.KW_VIRTUAL {
		virtual = true
		p.next()
	}

	// A constructor is `ClassName ( params ) { body }`.
	if p.peek().Kind == token.IDENT && p.peek().Lexeme == cls.Name && p.peekAt(1).Kind == token.LPAREN {
		ctorTok := p.next()
		params := p.parseParamList()
		body := p.parseBlock()
		cls.Constructors = append(cls.Constructors, &ast.ConstructorDef{
			Token: ctorTok, Params: params, Body: body,
		})
		return
	}

	ty := p.parseTypeExpr()
	nameTok := p.expect(token.IDENT, "member name")

	if p.peek().Kind == token.LPAREN {
		// Method: Type name(params) { body }
		params := p.parseParamList()
		body := p.parseBlock()
		cls.Methods = append(cls.Methods, &ast.MethodDef{
			Token:      ty.Token,
			Name:       nameTok.Lexeme,
			ReturnType: ty,
			Params:     params,
			Body:       body,
			Virtual:    virtual,
		})
		return
	}

	// Field: Type name ;
	p.expect(token.SEMI, ";")
	cls.Fields = append(cls.Fields, &ast.FieldDecl{Token: ty.Token, Type: ty, Name: nameTok.Lexeme})
}
