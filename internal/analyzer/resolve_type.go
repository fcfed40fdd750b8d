package analyzer

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/typesystem"
)

// resolveType turns a parsed ast.TypeExpr into a typesystem.Type. classes
// is the set of class names visible to the whole program being analyzed.
// An unknown identifier that is not a known class is reported as a
// semantic error and resolved to Void so analysis can keep going.
func (a *Analyzer) resolveType(te *ast.TypeExpr, classes map[string]bool) typesystem.Type {
	if te == nil {
		return typesystem.Void_()
	}
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
		if classes[te.Name] {
			base = typesystem.ClassType(te.Name)
		} else {
			a.errorf(te.Token, diagnostics.ErrS001, "unknown type %q", te.Name)
			base = typesystem.Void_()
		}
	}
	if te.IsRef {
		base = base.Ref()
	}
	return base
}
