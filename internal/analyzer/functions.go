package analyzer

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// collectFunctions builds the free-function overload map, rejecting two
// declarations that share the same parameter-type list.
func (a *Analyzer) collectFunctions(defs []*ast.FunctionDef) {
	for _, f := range defs {
		ptypes := a.paramTypes(f.Params)
		if findDuplicateOverload(paramsOf(a.functions[f.Name]), ptypes) {
			a.errorf(f.Token, diagnostics.ErrS005, "function %q is already declared with this parameter list", f.Name)
			continue
		}
		rt := a.resolveType(f.ReturnType, a.classes)
		a.functions[f.Name] = append(a.functions[f.Name], symbols.Signature{
			ReturnType: rt,
			Params:     ptypes,
			FuncDecl:   f,
		})
	}
}

// checkMainSignature enforces the "main" discipline: at most one
// function named main, taking no parameters, returning int or void.
func (a *Analyzer) checkMainSignature(defs []*ast.FunctionDef) {
	var mains []*ast.FunctionDef
	for _, f := range defs {
		if f.Name == "main" {
			mains = append(mains, f)
		}
	}
	if len(mains) == 0 {
		return
	}
	if len(mains) > 1 {
		a.errorf(mains[len(mains)-1].Token, diagnostics.ErrS009, "only one definition of %q is allowed", "main")
	}
	for _, f := range mains {
		if len(f.Params) != 0 {
			a.errorf(f.Token, diagnostics.ErrS009, "%q must take no parameters", "main")
		}
		rt := a.resolveType(f.ReturnType, a.classes)
		if !(rt.Equal(typesystem.Int_()) || rt.Equal(typesystem.Void_())) {
			a.errorf(f.Token, diagnostics.ErrS009, "%q must return int or void, got %s", "main", rt)
		}
	}
}
