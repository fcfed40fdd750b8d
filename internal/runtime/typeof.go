package runtime

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/typesystem"
)

// declaredType mirrors the analyzer's type resolution for a syntax-level
// TypeExpr, safe to call at execution time because the analyzer has
// already validated every type name that reaches here.
func declaredType(te *ast.TypeExpr) typesystem.Type {
	var base typesystem.Type
	switch te.Name {
	case "int":
		base = typesystem.Int_()
	case "bool":
		base = typesystem.Bool_()
	case "char":
		base = typesystem.Char_()
	case "string":
		base = typesystem.String_()
	case "void":
		base = typesystem.Void_()
	default:
		base = typesystem.ClassType(te.Name)
	}
	if te.IsRef {
		base = base.Ref()
	}
	return base
}
