// Package ast defines the ownership tree produced by the parser and
// consumed by the analyzer and executor.
package ast

import "github.com/oolang/oolang/internal/token"

// Node is the base interface for every AST node.
type Node interface {
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node that can appear in a statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that can appear in an expression position.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parsed submission: a set of top-level
// class and function definitions.
type Program struct {
	Token   token.Token
	Classes []*ClassDef
	Funcs   []*FunctionDef
}

func (p *Program) GetToken() token.Token { return p.Token }
func (p *Program) Accept(v Visitor)      { v.VisitProgram(p) }

// Param is a (Type, name) pair shared by function parameters and field
// declarations.
type Param struct {
	Token token.Token
	Type  *TypeExpr
	Name  string
}

// FieldDecl is a (Type, name) pair declared inside a ClassDef.
type FieldDecl struct {
	Token token.Token
	Type  *TypeExpr
	Name  string
}

// FunctionDef is a free-function declaration.
type FunctionDef struct {
	Token      token.Token
	Name       string
	ReturnType *TypeExpr
	Params     []*Param
	Body       *Block
}

func (f *FunctionDef) GetToken() token.Token { return f.Token }
func (f *FunctionDef) Accept(v Visitor)      { v.VisitFunctionDef(f) }

// ConstructorDef is a class constructor.
type ConstructorDef struct {
	Token  token.Token
	Params []*Param
	Body   *Block
}

func (c *ConstructorDef) GetToken() token.Token { return c.Token }

// MethodDef is a method declared on a class; Virtual records whether the
// `virtual` keyword was written (classtable.Build may still mark it
// virtual in the vtable via propagation from an overridden base method).
type MethodDef struct {
	Token      token.Token
	Name       string
	ReturnType *TypeExpr
	Params     []*Param
	Body       *Block
	Virtual    bool
}

func (m *MethodDef) GetToken() token.Token { return m.Token }

// ClassDef declares a class, its optional base, its fields, constructors
// and methods.
type ClassDef struct {
	Token        token.Token
	Name         string
	BaseName     string // "" if none
	Fields       []*FieldDecl
	Constructors []*ConstructorDef
	Methods      []*MethodDef
}

func (c *ClassDef) GetToken() token.Token { return c.Token }
func (c *ClassDef) Accept(v Visitor)      { v.VisitClassDef(c) }
