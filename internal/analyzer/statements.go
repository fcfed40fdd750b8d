package analyzer

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// checkClassBodies type-checks every constructor and method body declared
// directly on cd, in a scope seeded with the class's own merged fields
// followed by its parameters in the same scope — a
// parameter that shadows a field name is a duplicate declaration, not a
// shadow, matching the single-scope invariant Environment enforces
// at runtime.
func (a *Analyzer) checkClassBodies(cd *ast.ClassDef) {
	sym, ok := a.ct.Get(cd.Name)
	if !ok {
		return
	}
	merged, order := a.ct.MergedFields(cd.Name)

	for _, c := range cd.Constructors {
		scope := a.bodyScope(merged, order)
		for _, p := range c.Params {
			if !scope.DeclareVar(p.Name, a.resolveType(p.Type, a.classes)) {
				a.errorf(p.Token, diagnostics.ErrS005, "parameter %q collides with a field or earlier parameter", p.Name)
			}
		}
		a.checkStmtsInScope(c.Body.Stmts, scope, typesystem.Void_())
	}

	for _, m := range cd.Methods {
		scope := a.bodyScope(merged, order)
		for _, p := range m.Params {
			if !scope.DeclareVar(p.Name, a.resolveType(p.Type, a.classes)) {
				a.errorf(p.Token, diagnostics.ErrS005, "parameter %q collides with a field or earlier parameter", p.Name)
			}
		}
		rt := a.resolveType(m.ReturnType, a.classes)
		a.checkStmtsInScope(m.Body.Stmts, scope, rt)
	}

	_ = sym
}

func (a *Analyzer) bodyScope(merged map[string]typesystem.Type, order []string) *symbols.Scope {
	scope := symbols.NewScope()
	for _, name := range order {
		scope.DeclareVar(name, merged[name])
	}
	return scope
}

// checkFunctionBody type-checks a free function: a fresh scope holding
// only its parameters.
func (a *Analyzer) checkFunctionBody(f *ast.FunctionDef) {
	scope := symbols.NewScope()
	for _, p := range f.Params {
		if !scope.DeclareVar(p.Name, a.resolveType(p.Type, a.classes)) {
			a.errorf(p.Token, diagnostics.ErrS005, "parameter %q is already declared", p.Name)
		}
	}
	rt := a.resolveType(f.ReturnType, a.classes)
	a.checkStmtsInScope(f.Body.Stmts, scope, rt)
}

func (a *Analyzer) checkStmtsInScope(stmts []ast.Statement, scope *symbols.Scope, expectedReturn typesystem.Type) {
	for _, st := range stmts {
		a.checkStatement(st, scope, expectedReturn)
	}
}

func (a *Analyzer) checkStatement(stmt ast.Statement, scope *symbols.Scope, expectedReturn typesystem.Type) {
	switch st := stmt.(type) {
	case *ast.Block:
		child := symbols.NewChildScope(scope)
		a.checkStmtsInScope(st.Stmts, child, expectedReturn)

	case *ast.ExprStmt:
		a.checkExpr(st.Expr, scope)

	case *ast.VarDecl:
		a.checkVarDecl(st, scope)

	case *ast.If:
		a.checkCondition(st.Cond, scope)
		a.checkStatement(st.Then, scope, expectedReturn)
		if st.Else != nil {
			a.checkStatement(st.Else, scope, expectedReturn)
		}

	case *ast.While:
		a.checkCondition(st.Cond, scope)
		a.checkStatement(st.Body, scope, expectedReturn)

	case *ast.Return:
		a.checkReturn(st, expectedReturn, scope)
	}
}

func (a *Analyzer) checkVarDecl(st *ast.VarDecl, scope *symbols.Scope) {
	declared := a.resolveType(st.Type, a.classes)

	if declared.IsRef {
		a.checkRefVarDecl(st, declared, scope)
		return
	}

	if st.Init != nil {
		initT := a.checkExpr(st.Init, scope)
		// Declaration-time initialization requires an exact class match;
		// only plain assignment later permits slicing a derived value
		// into a base-typed slot.
		if !declared.SameBase(initT.Base()) {
			a.errorf(st.Token, diagnostics.ErrS002, "cannot initialize %q of type %s with value of type %s", st.Name, declared, initT)
		}
	}
	if !scope.DeclareVar(st.Name, declared) {
		a.errorf(st.Token, diagnostics.ErrS005, "variable %q is already declared in this scope", st.Name)
	}
}

// checkRefVarDecl handles a reference-typed local declaration: its
// initializer must be an lvalue of matching base type (no slicing — a
// reference's base must equal the lvalue's base exactly).
func (a *Analyzer) checkRefVarDecl(st *ast.VarDecl, declared typesystem.Type, scope *symbols.Scope) {
	if st.Init == nil {
		a.errorf(st.Token, diagnostics.ErrS002, "reference variable %q must be initialized", st.Name)
		scope.DeclareVar(st.Name, declared)
		return
	}
	initT := a.checkExpr(st.Init, scope)
	if !isLvalue(st.Init) {
		a.errorf(st.Token, diagnostics.ErrS002, "reference variable %q must be initialized from an lvalue", st.Name)
	} else if !declared.Base().SameBase(initT.Base()) {
		a.errorf(st.Token, diagnostics.ErrS002, "cannot bind reference %q of type %s to value of type %s", st.Name, declared, initT)
	}
	if !scope.DeclareVar(st.Name, declared) {
		a.errorf(st.Token, diagnostics.ErrS005, "variable %q is already declared in this scope", st.Name)
	}
}

func (a *Analyzer) checkCondition(cond ast.Expression, scope *symbols.Scope) {
	t := a.checkExpr(cond, scope)
	if t.IsRef || !t.Base().IsPrimitiveValue() {
		a.errorf(cond.GetToken(), diagnostics.ErrS002, "condition must be a primitive value, got %s", t)
	}
}

func (a *Analyzer) checkReturn(st *ast.Return, expectedReturn typesystem.Type, scope *symbols.Scope) {
	if st.Value == nil {
		if !expectedReturn.Equal(typesystem.Void_()) {
			a.errorf(st.Token, diagnostics.ErrS002, "missing return value, expected %s", expectedReturn)
		}
		return
	}
	valT := a.checkExpr(st.Value, scope)
	if expectedReturn.Equal(typesystem.Void_()) {
		a.errorf(st.Token, diagnostics.ErrS002, "void function cannot return a value")
		return
	}
	if !a.assignableTo(expectedReturn.Base(), valT.Base()) {
		a.errorf(st.Token, diagnostics.ErrS002, "cannot return value of type %s from a function returning %s", valT, expectedReturn)
	}
}
