package ast

import "github.com/oolang/oolang/internal/token"

// TypeExpr is the surface syntax for a type: a primitive keyword, a class
// name, or either suffixed with `&` for a reference parameter/variable
//. The analyzer resolves a TypeExpr into a typesystem.Type.
type TypeExpr struct {
	Token token.Token
	Name  string // "int", "bool", "char", "string", "void", or a class name
	IsRef bool
}

func (t *TypeExpr) GetToken() token.Token { return t.Token }
