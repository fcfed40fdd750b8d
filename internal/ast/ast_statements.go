package ast

import "github.com/oolang/oolang/internal/token"

// Block is a brace-delimited list of statements.
type Block struct {
	Token token.Token
	Stmts []Statement
}

func (b *Block) GetToken() token.Token { return b.Token }
func (b *Block) statementNode()        {}
func (b *Block) Accept(v Visitor)      { v.VisitBlock(b) }

// ExprStmt is a statement consisting of a single expression.
type ExprStmt struct {
	Token token.Token
	Expr  Expression
}

func (e *ExprStmt) GetToken() token.Token { return e.Token }
func (e *ExprStmt) statementNode()        {}
func (e *ExprStmt) Accept(v Visitor)      { v.VisitExprStmt(e) }

// VarDecl declares a local variable, optionally with an initializer.
type VarDecl struct {
	Token token.Token
	Type  *TypeExpr
	Name  string
	Init  Expression // nil if absent
}

func (d *VarDecl) GetToken() token.Token { return d.Token }
func (d *VarDecl) statementNode()        {}
func (d *VarDecl) Accept(v Visitor)      { v.VisitVarDecl(d) }

// If is an if/else statement; Else is nil when absent.
type If struct {
	Token token.Token
	Cond  Expression
	Then  Statement
	Else  Statement
}

func (i *If) GetToken() token.Token { return i.Token }
func (i *If) statementNode()        {}
func (i *If) Accept(v Visitor)      { v.VisitIf(i) }

// While is a pre-tested loop.
type While struct {
	Token token.Token
	Cond  Expression
	Body  Statement
}

func (w *While) GetToken() token.Token { return w.Token }
func (w *While) statementNode()        {}
func (w *While) Accept(v Visitor)      { v.VisitWhile(w) }

// Return is a return statement with an optional value.
type Return struct {
	Token token.Token
	Value Expression // nil if absent
}

func (r *Return) GetToken() token.Token { return r.Token }
func (r *Return) statementNode()        {}
func (r *Return) Accept(v Visitor)      { v.VisitReturn(r) }
