package ast

import "github.com/oolang/oolang/internal/token"

// UnaryOp enumerates the unary operators.
type UnaryOp int

const (
	Neg UnaryOp = iota
	Not
)

// BinaryOp enumerates the binary operators.
type BinaryOp int

const (
	Add BinaryOp = iota
	Sub
	Mul
	Div
	Mod
	Lt
	Le
	Gt
	Ge
	Eq
	Ne
	AndAnd
	OrOr
)

// IntLit is an integer literal expression.
type IntLit struct {
	Token token.Token
	Value int64
}

func (e *IntLit) GetToken() token.Token { return e.Token }
func (e *IntLit) expressionNode()       {}
func (e *IntLit) Accept(v Visitor)      { v.VisitIntLit(e) }

// BoolLit is a boolean literal expression.
type BoolLit struct {
	Token token.Token
	Value bool
}

func (e *BoolLit) GetToken() token.Token { return e.Token }
func (e *BoolLit) expressionNode()       {}
func (e *BoolLit) Accept(v Visitor)      { v.VisitBoolLit(e) }

// CharLit is a character literal expression.
type CharLit struct {
	Token token.Token
	Value byte
}

func (e *CharLit) GetToken() token.Token { return e.Token }
func (e *CharLit) expressionNode()       {}
func (e *CharLit) Accept(v Visitor)      { v.VisitCharLit(e) }

// StringLit is a string literal expression.
type StringLit struct {
	Token token.Token
	Value string
}

func (e *StringLit) GetToken() token.Token { return e.Token }
func (e *StringLit) expressionNode()       {}
func (e *StringLit) Accept(v Visitor)      { v.VisitStringLit(e) }

// Var is a bare identifier used as an expression.
type Var struct {
	Token token.Token
	Name  string
}

func (e *Var) GetToken() token.Token { return e.Token }
func (e *Var) expressionNode()       {}
func (e *Var) Accept(v Visitor)      { v.VisitVar(e) }

// Assign is `name = value`.
type Assign struct {
	Token token.Token
	Name  string
	Value Expression
}

func (e *Assign) GetToken() token.Token { return e.Token }
func (e *Assign) expressionNode()       {}
func (e *Assign) Accept(v Visitor)      { v.VisitAssign(e) }

// FieldAssign is `object.field = value`.
type FieldAssign struct {
	Token  token.Token
	Object Expression
	Field  string
	Value  Expression
}

func (e *FieldAssign) GetToken() token.Token { return e.Token }
func (e *FieldAssign) expressionNode()       {}
func (e *FieldAssign) Accept(v Visitor)      { v.VisitFieldAssign(e) }

// Unary is a prefix unary expression.
type Unary struct {
	Token   token.Token
	Op      UnaryOp
	Operand Expression
}

func (e *Unary) GetToken() token.Token { return e.Token }
func (e *Unary) expressionNode()       {}
func (e *Unary) Accept(v Visitor)      { v.VisitUnary(e) }

// Binary is an infix binary expression.
type Binary struct {
	Token token.Token
	Op    BinaryOp
	Lhs   Expression
	Rhs   Expression
}

func (e *Binary) GetToken() token.Token { return e.Token }
func (e *Binary) expressionNode()       {}
func (e *Binary) Accept(v Visitor)      { v.VisitBinary(e) }

// Call is a free-function call; the parser has already resolved
// "identifier(" into Call vs Construct using the pre-scanned class-name
// set.
type Call struct {
	Token  token.Token
	Callee string
	Args   []Expression
}

func (e *Call) GetToken() token.Token { return e.Token }
func (e *Call) expressionNode()       {}
func (e *Call) Accept(v Visitor)      { v.VisitCall(e) }

// Construct is a class-construction call `ClassName(args)`.
type Construct struct {
	Token token.Token
	Class string
	Args  []Expression
}

func (e *Construct) GetToken() token.Token { return e.Token }
func (e *Construct) expressionNode()       {}
func (e *Construct) Accept(v Visitor)      { v.VisitConstruct(e) }

// MemberAccess is `object.field`.
type MemberAccess struct {
	Token  token.Token
	Object Expression
	Field  string
}

func (e *MemberAccess) GetToken() token.Token { return e.Token }
func (e *MemberAccess) expressionNode()       {}
func (e *MemberAccess) Accept(v Visitor)      { v.VisitMemberAccess(e) }

// MethodCall is `object.method(args)`.
type MethodCall struct {
	Token  token.Token
	Object Expression
	Method string
	Args   []Expression
}

func (e *MethodCall) GetToken() token.Token { return e.Token }
func (e *MethodCall) expressionNode()       {}
func (e *MethodCall) Accept(v Visitor)      { v.VisitMethodCall(e) }
