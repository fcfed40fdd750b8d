package analyzer

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// checkExpr type-checks expr, records its resolved type, and returns it.
// Errors resolve to Void_() so the caller can keep walking without a nil
// check at every step.
func (a *Analyzer) checkExpr(expr ast.Expression, scope *symbols.Scope) typesystem.Type {
	t := a.checkExprKind(expr, scope)
	a.types[expr] = t
	return t
}

func (a *Analyzer) checkExprKind(expr ast.Expression, scope *symbols.Scope) typesystem.Type {
	switch e := expr.(type) {
	case *ast.IntLit:
		return typesystem.Int_()
	case *ast.BoolLit:
		return typesystem.Bool_()
	case *ast.CharLit:
		return typesystem.Char_()
	case *ast.StringLit:
		return typesystem.String_()

	case *ast.Var:
		t, ok := scope.LookupVar(e.Name)
		if !ok {
			a.errorf(e.Token, diagnostics.ErrS001, "undeclared identifier %q", e.Name)
			return typesystem.Void_()
		}
		return t

	case *ast.Assign:
		valT := a.checkExpr(e.Value, scope)
		target, ok := scope.LookupVar(e.Name)
		if !ok {
			a.errorf(e.Token, diagnostics.ErrS001, "undeclared identifier %q", e.Name)
			return typesystem.Void_()
		}
		if !a.assignableTo(target.Base(), valT.Base()) {
			a.errorf(e.Token, diagnostics.ErrS002, "cannot assign value of type %s to %q of type %s", valT, e.Name, target)
		}
		return target.Base()

	case *ast.FieldAssign:
		return a.checkFieldAssign(e, scope)

	case *ast.Unary:
		return a.checkUnary(e, scope)

	case *ast.Binary:
		return a.checkBinary(e, scope)

	case *ast.Call:
		return a.checkCall(e, scope)

	case *ast.Construct:
		return a.checkConstruct(e, scope)

	case *ast.MemberAccess:
		return a.checkMemberAccess(e, scope)

	case *ast.MethodCall:
		return a.checkMethodCall(e, scope)

	default:
		return typesystem.Void_()
	}
}

func (a *Analyzer) checkFieldAssign(e *ast.FieldAssign, scope *symbols.Scope) typesystem.Type {
	objT := a.checkExpr(e.Object, scope)
	if objT.Base().Kind != typesystem.Class {
		a.errorf(e.Token, diagnostics.ErrS002, "cannot access field %q on non-class type %s", e.Field, objT)
		a.checkExpr(e.Value, scope)
		return typesystem.Void_()
	}
	fieldT, ok := a.ct.FindField(objT.Base().ClassName, e.Field)
	valT := a.checkExpr(e.Value, scope)
	if !ok {
		a.errorf(e.Token, diagnostics.ErrS001, "class %q has no field %q", objT.Base().ClassName, e.Field)
		return typesystem.Void_()
	}
	if !a.assignableTo(fieldT.Base(), valT.Base()) {
		a.errorf(e.Token, diagnostics.ErrS002, "cannot assign value of type %s to field %q of type %s", valT, e.Field, fieldT)
	}
	return fieldT
}

func (a *Analyzer) checkMemberAccess(e *ast.MemberAccess, scope *symbols.Scope) typesystem.Type {
	objT := a.checkExpr(e.Object, scope)
	if objT.Base().Kind != typesystem.Class {
		a.errorf(e.Token, diagnostics.ErrS002, "cannot access field %q on non-class type %s", e.Field, objT)
		return typesystem.Void_()
	}
	fieldT, ok := a.ct.FindField(objT.Base().ClassName, e.Field)
	if !ok {
		a.errorf(e.Token, diagnostics.ErrS001, "class %q has no field %q", objT.Base().ClassName, e.Field)
		return typesystem.Void_()
	}
	return fieldT
}

func (a *Analyzer) checkUnary(e *ast.Unary, scope *symbols.Scope) typesystem.Type {
	t := a.checkExpr(e.Operand, scope)
	switch e.Op {
	case ast.Neg:
		if !t.Base().Equal(typesystem.Int_()) {
			a.errorf(e.Token, diagnostics.ErrS002, "unary - requires int, got %s", t)
		}
		return typesystem.Int_()
	case ast.Not:
		if !t.Base().Equal(typesystem.Bool_()) {
			a.errorf(e.Token, diagnostics.ErrS002, "unary ! requires bool, got %s", t)
		}
		return typesystem.Bool_()
	default:
		return typesystem.Void_()
	}
}

func (a *Analyzer) checkBinary(e *ast.Binary, scope *symbols.Scope) typesystem.Type {
	lt := a.checkExpr(e.Lhs, scope)
	rt := a.checkExpr(e.Rhs, scope)

	switch e.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod:
		if !lt.Base().Equal(typesystem.Int_()) || !rt.Base().Equal(typesystem.Int_()) {
			a.errorf(e.Token, diagnostics.ErrS002, "arithmetic requires int operands, got %s and %s", lt, rt)
		}
		return typesystem.Int_()

	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		ltb, rtb := lt.Base(), rt.Base()
		relOk := (ltb.Kind == typesystem.Int || ltb.Kind == typesystem.Char) && ltb.SameBase(rtb)
		if !relOk {
			a.errorf(e.Token, diagnostics.ErrS002, "relational comparison requires matching int or char operands, got %s and %s", lt, rt)
		}
		return typesystem.Bool_()

	case ast.Eq, ast.Ne:
		if !lt.Base().IsPrimitiveValue() || !rt.Base().IsPrimitiveValue() || !lt.Base().SameBase(rt.Base()) {
			a.errorf(e.Token, diagnostics.ErrS002, "== / != requires matching primitive operands, got %s and %s", lt, rt)
		}
		return typesystem.Bool_()

	case ast.AndAnd, ast.OrOr:
		if !lt.Base().Equal(typesystem.Bool_()) || !rt.Base().Equal(typesystem.Bool_()) {
			a.errorf(e.Token, diagnostics.ErrS002, "&& / || requires bool operands, got %s and %s", lt, rt)
		}
		return typesystem.Bool_()

	default:
		return typesystem.Void_()
	}
}

func (a *Analyzer) evalArgs(args []ast.Expression, scope *symbols.Scope) ([]typesystem.Type, []bool) {
	argTypes := make([]typesystem.Type, len(args))
	argLvalue := make([]bool, len(args))
	for i, arg := range args {
		argTypes[i] = a.checkExpr(arg, scope).Base()
		argLvalue[i] = isLvalue(arg)
	}
	return argTypes, argLvalue
}

func isLvalue(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Var, *ast.MemberAccess:
		return true
	default:
		return false
	}
}

func (a *Analyzer) checkCall(e *ast.Call, scope *symbols.Scope) typesystem.Type {
	argTypes, argLvalue := a.evalArgs(e.Args, scope)
	sigs, ok := a.functions[e.Callee]
	if !ok {
		a.errorf(e.Token, diagnostics.ErrS001, "undeclared function %q", e.Callee)
		return typesystem.Void_()
	}
	chosen, ambiguous := a.resolveOverload(sigs, argTypes, argLvalue)
	switch {
	case ambiguous:
		a.errorf(e.Token, diagnostics.ErrS003, "ambiguous call to %q", e.Callee)
		return typesystem.Void_()
	case chosen == nil:
		a.errorf(e.Token, diagnostics.ErrS004, "no matching overload of %q for the given arguments", e.Callee)
		return typesystem.Void_()
	}
	a.calls[e] = &CallResolution{Sig: chosen}
	return chosen.ReturnType
}

func (a *Analyzer) checkConstruct(e *ast.Construct, scope *symbols.Scope) typesystem.Type {
	sym, ok := a.ct.Get(e.Class)
	if !ok {
		a.errorf(e.Token, diagnostics.ErrS001, "unknown class %q", e.Class)
		for _, arg := range e.Args {
			a.checkExpr(arg, scope)
		}
		return typesystem.Void_()
	}
	argTypes, argLvalue := a.evalArgs(e.Args, scope)
	classType := typesystem.ClassType(e.Class)

	if len(sym.Constructors) == 0 {
		if len(e.Args) != 0 {
			a.errorf(e.Token, diagnostics.ErrS004, "class %q has no declared constructor accepting arguments", e.Class)
			return classType
		}
		a.constructs[e] = &CallResolution{Sig: nil}
		return classType
	}

	chosen, ambiguous := a.resolveOverload(sym.Constructors, argTypes, argLvalue)
	switch {
	case ambiguous:
		a.errorf(e.Token, diagnostics.ErrS003, "ambiguous constructor call for class %q", e.Class)
		return classType
	case chosen == nil:
		a.errorf(e.Token, diagnostics.ErrS004, "no matching constructor for class %q", e.Class)
		return classType
	}
	a.constructs[e] = &CallResolution{Sig: chosen}
	return classType
}

func (a *Analyzer) checkMethodCall(e *ast.MethodCall, scope *symbols.Scope) typesystem.Type {
	objT := a.checkExpr(e.Object, scope)
	if objT.Base().Kind != typesystem.Class {
		a.errorf(e.Token, diagnostics.ErrS002, "cannot call method %q on non-class type %s", e.Method, objT)
		for _, arg := range e.Args {
			a.checkExpr(arg, scope)
		}
		return typesystem.Void_()
	}
	className := objT.Base().ClassName
	owner, ok := a.ct.FindMethodOwner(className, e.Method)
	if !ok {
		a.errorf(e.Token, diagnostics.ErrS001, "class %q has no method %q", className, e.Method)
		for _, arg := range e.Args {
			a.checkExpr(arg, scope)
		}
		return typesystem.Void_()
	}
	argTypes, argLvalue := a.evalArgs(e.Args, scope)
	chosen, ambiguous := a.resolveOverload(owner.Methods[e.Method], argTypes, argLvalue)
	for chosen == nil && !ambiguous && owner.BaseName != "" {
		next, found := a.ct.FindMethodOwner(owner.BaseName, e.Method)
		if !found {
			break
		}
		owner = next
		chosen, ambiguous = a.resolveOverload(owner.Methods[e.Method], argTypes, argLvalue)
	}
	switch {
	case ambiguous:
		a.errorf(e.Token, diagnostics.ErrS003, "ambiguous call to method %q", e.Method)
		return typesystem.Void_()
	case chosen == nil:
		a.errorf(e.Token, diagnostics.ErrS004, "no matching overload of method %q for the given arguments", e.Method)
		return typesystem.Void_()
	}
	a.methodCalls[e] = &MethodResolution{
		Sig:         chosen,
		StaticClass: owner.Name,
		Key:         symbols.SignatureKey(e.Method, chosen.Params),
	}
	return chosen.ReturnType
}
