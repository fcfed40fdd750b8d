// Package parser is a recursive-descent/precedence-climbing parser
// producing an ast.Program from a token stream.
package parser

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/lexer"
	"github.com/oolang/oolang/internal/token"
)

// Parser consumes a lexer.TokenStream and produces an *ast.Program.
type Parser struct {
	ts         *lexer.TokenStream
	classNames map[string]bool
	errors     []*diagnostics.Diagnostic
}

// New creates a Parser over ts. knownClasses is the pre-scanned set of
// class names visible to this submission: every class already promoted
// into the durable program, plus (merged in by the caller before
// invoking New, via lexer.ScanClassNames) every class declared in this
// submission itself.
func New(ts *lexer.TokenStream, knownClasses map[string]bool) *Parser {
	classNames := make(map[string]bool, len(knownClasses))
	for k := range knownClasses {
		classNames[k] = true
	}
	return &Parser{ts: ts, classNames: classNames}
}

// Errors returns every diagnostic accumulated while parsing.
func (p *Parser) Errors() []*diagnostics.Diagnostic { return p.errors }

func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) {
	p.errors = append(p.errors, diagnostics.NewError(diagnostics.ErrP001, tok.Pos, format, args...))
}

func (p *Parser) peek() token.Token        { return p.ts.Peek() }
func (p *Parser) peekAt(n int) token.Token { return p.ts.PeekAt(n) }
func (p *Parser) next() token.Token        { return p.ts.Next() }

func (p *Parser) expect(kind token.Kind, what string) token.Token {
	tok := p.peek()
	if tok.Kind != kind {
		p.errorf(tok, "expected %s, got %q", what, tok.Lexeme)
		return tok
	}
	return p.next()
}

// ParseProgram parses every top-level ClassDef/FunctionDef in the token
// stream.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Token: p.peek()}
	for p.peek().Kind != token.EOF {
		switch {
		case p.peek().Kind == token.KW_CLASS:
			if c := p.parseClassDef(); c != nil {
				prog.Classes = append(prog.Classes, c)
			}
		case p.looksLikeFunctionDef():
			if f := p.parseFunctionDef(); f != nil {
				prog.Funcs = append(prog.Funcs, f)
			}
		default:
			p.errorf(p.peek(), "expected class or function definition, got %q", p.peek().Lexeme)
			p.next()
		}
	}
	return prog
}

// LooksLikeDefinition reports whether the next tokens open a top-level
// class or function definition, without consuming them — the
// interactive front end's classification step uses this to decide
// whether a submission is a definition or a loose statement body.
func (p *Parser) LooksLikeDefinition() bool {
	return p.peek().Kind == token.KW_CLASS || p.looksLikeFunctionDef()
}

// looksLikeFunctionDef recognizes the shape "<type-ish> ident ( ... ) {"
// used for a top-level function definition.
func (p *Parser) looksLikeFunctionDef() bool {
	if !p.startsType(p.peek()) {
		return false
	}
	return p.peekAt(1).Kind == token.IDENT && p.peekAt(2).Kind == token.LPAREN
}

func (p *Parser) startsType(tok token.Token) bool {
	switch tok.Kind {
	case token.KW_INT, token.KW_BOOL, token.KW_CHAR, token.KW_STRING, token.KW_VOID:
		return true
	case token.IDENT:
		return p.classNames[tok.Lexeme]
	default:
		return false
	}
}
