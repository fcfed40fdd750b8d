package parser

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/lexer"
	"github.com/oolang/oolang/internal/token"
)

// Precedence levels, lowest to highest: assignment
// (right-assoc) < logical-or < logical-and < equality < relational <
// additive < multiplicative < unary < postfix". Each level below is its
// own recursive-descent function rather than a generic precedence table,
// since the grammar's operator set is small and fixed.
const lowest = 0

// parseExpression is the single entry point every statement/arg-list
// caller uses; the precedence argument exists only so call sites read
// the same as the classic Pratt-parser shape.
func (p *Parser) parseExpression(_ int) ast.Expression {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.Expression {
	lhs := p.parseOr()
	if p.peek().Kind != token.ASSIGN {
		return lhs
	}
	eq := p.next()
	rhs := p.parseAssignment() // right-associative

	switch target := lhs.(type) {
	case *ast.Var:
		return &ast.Assign{Token: eq, Name: target.Name, Value: rhs}
	case *ast.MemberAccess:
		return &ast.FieldAssign{Token: eq, Object: target.Object, Field: target.Field, Value: rhs}
	default:
		p.errorf(eq, "left-hand side of assignment is not an lvalue")
		return lhs
	}
}

func (p *Parser) parseOr() ast.Expression {
	lhs := p.parseAnd()
	for p.peek().Kind == token.OR_OR {
		tok := p.next()
		rhs := p.parseAnd()
		lhs = &ast.Binary{Token: tok, Op: ast.OrOr, Lhs: lhs, Rhs: rhs}
	}
	return lhs
}

func (p *Parser) parseAnd() ast.Expression {
	lhs := p.parseEquality()
	for p.peek().Kind == token.AND_AND {
		tok := p.next()
		rhs := p.parseEquality()
		lhs = &ast.Binary{Token: tok, Op: ast.AndAnd, Lhs: lhs, Rhs: rhs}
	}
	return lhs
}

func (p *Parser) parseEquality() ast.Expression {
	lhs := p.parseRelational()
	for p.peek().Kind == token.EQ || p.peek().Kind == token.NOT_EQ {
		tok := p.next()
		op := ast.Eq
		if tok.Kind == token.NOT_EQ {
			op = ast.Ne
		}
		rhs := p.parseRelational()
		lhs = &ast.Binary{Token: tok, Op: op, Lhs: lhs, Rhs: rhs}
	}
	return lhs
}

func (p *Parser) parseRelational() ast.Expression {
	lhs := p.parseAdditive()
	for {
		var op ast.BinaryOp
		switch p.peek().Kind {
		case token.LT:
			op = ast.Lt
		case token.LE:
			op = ast.Le
		case token.GT:
			op = ast.Gt
		case token.GE:
			op = ast.Ge
		default:
			return lhs
		}
		tok := p.next()
		rhs := p.parseAdditive()
		lhs = &ast.Binary{Token: tok, Op: op, Lhs: lhs, Rhs: rhs}
	}
}

func (p *Parser) parseAdditive() ast.Expression {
	lhs := p.parseMultiplicative()
	for {
		var op ast.BinaryOp
		switch p.peek().Kind {
		case token.PLUS:
			op = ast.Add
		case token.MINUS:
			op = ast.Sub
		default:
			return lhs
		}
		tok := p.next()
		rhs := p.parseMultiplicative()
		lhs = &ast.Binary{Token: tok, Op: op, Lhs: lhs, Rhs: rhs}
	}
}

func (p *Parser) parseMultiplicative() ast.Expression {
	lhs := p.parseUnary()
	for {
		var op ast.BinaryOp
		switch p.peek().Kind {
		case token.STAR:
			op = ast.Mul
		case token.SLASH:
			op = ast.Div
		case token.PERCENT:
			op = ast.Mod
		default:
			return lhs
		}
		tok := p.next()
		rhs := p.parseUnary()
		lhs = &ast.Binary{Token: tok, Op: op, Lhs: lhs, Rhs: rhs}
	}
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.peek().Kind {
	case token.BANG:
		tok := p.next()
		operand := p.parseUnary()
		return &ast.Unary{Token: tok, Op: ast.Not, Operand: operand}
	case token.MINUS:
		tok := p.next()
		operand := p.parseUnary()
		return &ast.Unary{Token: tok, Op: ast.Neg, Operand: operand}
	case token.PLUS:
		// The AST has no Pos variant (only Neg/Not): unary + is encoded
		// as a double negation, which enforces the same Int-only rule
		// and yields the same value.
		tok := p.next()
		operand := p.parseUnary()
		return &ast.Unary{Token: tok, Op: ast.Neg, Operand: &ast.Unary{Token: tok, Op: ast.Neg, Operand: operand}}
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for p.peek().Kind == token.DOT {
		p.next()
		nameTok := p.expect(token.IDENT, "member name")
		if p.peek().Kind == token.LPAREN {
			args := p.parseArgList()
			expr = &ast.MethodCall{Token: nameTok, Object: expr, Method: nameTok.Lexeme, Args: args}
		} else {
			expr = &ast.MemberAccess{Token: nameTok, Object: expr, Field: nameTok.Lexeme}
		}
	}
	return expr
}

func (p *Parser) parsePrimary() ast.Expression {
	tok := p.peek()
	switch tok.Kind {
	case token.INT_LIT:
		p.next()
		v, err := lexer.ParseIntLiteral(tok.Lexeme)
		if err != nil {
			p.errorf(tok, "%s", err.Error())
		}
		return &ast.IntLit{Token: tok, Value: v}
	case token.KW_TRUE:
		p.next()
		return &ast.BoolLit{Token: tok, Value: true}
	case token.KW_FALSE:
		p.next()
		return &ast.BoolLit{Token: tok, Value: false}
	case token.CHAR_LIT:
		p.next()
		var b byte
		if len(tok.Lexeme) > 0 {
			b = tok.Lexeme[0]
		}
		return &ast.CharLit{Token: tok, Value: b}
	case token.STRING_LIT:
		p.next()
		return &ast.StringLit{Token: tok, Value: tok.Lexeme}
	case token.LPAREN:
		p.next()
		inner := p.parseExpression(lowest)
		p.expect(token.RPAREN, ")")
		return inner
	case token.IDENT:
		return p.parseIdentOrCall()
	default:
		p.errorf(tok, "unexpected token %q in expression", tok.Lexeme)
		p.next()
		return &ast.IntLit{Token: tok, Value: 0}
	}
}

// parseIdentOrCall resolves "Identifier(" into a Construct or a Call
// using the pre-scanned class-name set, and a bare identifier into a Var.
func (p *Parser) parseIdentOrCall() ast.Expression {
	tok := p.next()
	if p.peek().Kind != token.LPAREN {
		return &ast.Var{Token: tok, Name: tok.Lexeme}
	}
	args := p.parseArgList()
	if p.classNames[tok.Lexeme] {
		return &ast.Construct{Token: tok, Class: tok.Lexeme, Args: args}
	}
	return &ast.Call{Token: tok, Callee: tok.Lexeme, Args: args}
}
