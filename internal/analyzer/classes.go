package analyzer

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/token"
	"github.com/oolang/oolang/internal/typesystem"
)

// collectClasses builds one ClassSymbol per declared class: own fields,
// own constructor overloads, own method overloads. It does not type-check
// bodies yet.
func (a *Analyzer) collectClasses(defs []*ast.ClassDef) {
	for _, cd := range defs {
		if a.ct.Has(cd.Name) {
			a.errorf(cd.Token, diagnostics.ErrS005, "class %q is already declared", cd.Name)
			continue
		}
		sym := symbols.NewClassSymbol(cd.Name, cd.BaseName)
		a.ct.Add(sym)
	}

	for _, cd := range defs {
		sym, ok := a.ct.Get(cd.Name)
		if !ok {
			continue // already reported as a duplicate above
		}
		a.collectFields(sym, cd)
		a.collectConstructors(sym, cd)
		a.collectMethods(sym, cd)
	}
}

func (a *Analyzer) collectFields(sym *symbols.ClassSymbol, cd *ast.ClassDef) {
	for _, f := range cd.Fields {
		if f.Type.IsRef {
			a.errorf(f.Token, diagnostics.ErrS002, "field %q cannot be declared as a reference type", f.Name)
			continue
		}
		t := a.resolveType(f.Type, a.classes)
		if !sym.AddField(f.Name, t) {
			a.errorf(f.Token, diagnostics.ErrS005, "field %q is already declared on class %q", f.Name, sym.Name)
		}
	}
}

func (a *Analyzer) paramTypes(params []*ast.Param) []typesystem.Type {
	out := make([]typesystem.Type, len(params))
	for i, p := range params {
		out[i] = a.resolveType(p.Type, a.classes)
	}
	return out
}

func (a *Analyzer) collectConstructors(sym *symbols.ClassSymbol, cd *ast.ClassDef) {
	for _, c := range cd.Constructors {
		ptypes := a.paramTypes(c.Params)
		if dup := findDuplicateOverload(paramsOf(sym.Constructors), ptypes); dup {
			a.errorf(c.Token, diagnostics.ErrS005, "class %q already declares a constructor with this parameter list", sym.Name)
			continue
		}
		sym.Constructors = append(sym.Constructors, symbols.Signature{
			ReturnType: typesystem.Void_(),
			Params:     ptypes,
			CtorDecl:   c,
		})
	}
}

func (a *Analyzer) collectMethods(sym *symbols.ClassSymbol, cd *ast.ClassDef) {
	for _, m := range cd.Methods {
		ptypes := a.paramTypes(m.Params)
		if dup := findDuplicateOverload(paramsOf(sym.Methods[m.Name]), ptypes); dup {
			a.errorf(m.Token, diagnostics.ErrS005, "method %q is already declared on class %q with this parameter list", m.Name, sym.Name)
			continue
		}
		rt := a.resolveType(m.ReturnType, a.classes)
		sym.AddMethod(m.Name, symbols.Signature{
			ReturnType: rt,
			Params:     ptypes,
			Virtual:    m.Virtual,
			MethodDecl: m,
		})
	}
}

func paramsOf(sigs []symbols.Signature) [][]typesystem.Type {
	out := make([][]typesystem.Type, len(sigs))
	for i, s := range sigs {
		out[i] = s.Params
	}
	return out
}

func findDuplicateOverload(existing [][]typesystem.Type, params []typesystem.Type) bool {
	for _, e := range existing {
		if sameParamList(e, params) {
			return true
		}
	}
	return false
}

func sameParamList(a, b []typesystem.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// checkOverrides rejects a return-type mismatch between a class's own
// method and the signature-matching declaration it overrides on its
// nearest ancestor.
func (a *Analyzer) checkOverrides() {
	for _, name := range a.ct.Names() {
		sym, _ := a.ct.Get(name)
		if sym.BaseName == "" {
			continue
		}
		for methodName, sigs := range sym.Methods {
			ownerSym, ok := a.ct.FindMethodOwner(sym.BaseName, methodName)
			if !ok {
				continue
			}
			for _, sig := range sigs {
				for _, baseSig := range ownerSym.Methods[methodName] {
					if !sameParamList(sig.Params, baseSig.Params) {
						continue
					}
					if !sig.ReturnType.Equal(baseSig.ReturnType) {
						tok := declToken(sig)
						a.errorf(tok, diagnostics.ErrS007,
							"method %q overrides %s.%s with a different return type (%s vs %s)",
							methodName, ownerSym.Name, methodName, sig.ReturnType, baseSig.ReturnType)
					}
				}
			}
		}
	}
}

func declToken(sig symbols.Signature) token.Token {
	switch {
	case sig.MethodDecl != nil:
		return sig.MethodDecl.Token
	case sig.CtorDecl != nil:
		return sig.CtorDecl.Token
	case sig.FuncDecl != nil:
		return sig.FuncDecl.Token
	default:
		return token.Token{}
	}
}
