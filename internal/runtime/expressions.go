package runtime

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/typesystem"
)

// evalExpr evaluates expr in env and returns its runtime value, or a
// diagnostic if a runtime error was raised. It never returns a *ReturnSignal: that control signal
// only ever travels through execStmt/execStmts.
func (ex *Executor) evalExpr(expr ast.Expression, env *Environment) (Object, *diagnostics.Diagnostic) {
	switch e := expr.(type) {
	case *ast.IntLit:
		return &Int{Value: e.Value}, nil
	case *ast.BoolLit:
		return &Bool{Value: e.Value}, nil
	case *ast.CharLit:
		return &Char{Value: e.Value}, nil
	case *ast.StringLit:
		return &String{Value: e.Value}, nil

	case *ast.Var:
		v, ok := env.Get(e.Name)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR003, "unknown variable %q", e.Name)
		}
		return v, nil

	case *ast.Assign:
		return ex.evalAssign(e, env)
	case *ast.FieldAssign:
		return ex.evalFieldAssign(e, env)

	case *ast.Unary:
		return ex.evalUnary(e, env)
	case *ast.Binary:
		return ex.evalBinary(e, env)

	case *ast.Call:
		return ex.evalCall(e, env)
	case *ast.Construct:
		return ex.evalConstruct(e, env)
	case *ast.MemberAccess:
		return ex.evalMemberAccess(e, env)
	case *ast.MethodCall:
		return ex.evalMethodCall(e, env)

	default:
		return nil, runtimeErr(diagnostics.ErrR001, "cannot evaluate expression")
	}
}

// evalAssign writes value into the variable named e.Name, following the
// value/reference/slicing discipline: a Class-typed
// target goes through Environment.AssignClass (which preserves handle
// identity and slices where needed), everything else is a plain
// overwrite. ex.res.Types[e] is the target's static base type, recorded
// by the analyzer while checking this very Assign node.
func (ex *Executor) evalAssign(e *ast.Assign, env *Environment) (Object, *diagnostics.Diagnostic) {
	val, err := ex.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	targetT := ex.res.Types[e]
	if targetT.Kind == typesystem.Class {
		src, ok := val.(*Instance)
		if !ok || src == nil {
			return nil, runtimeErr(diagnostics.ErrR001, "cannot assign a null object to %q", e.Name)
		}
		if !env.AssignClass(e.Name, src, ex.ft) {
			return nil, runtimeErr(diagnostics.ErrR003, "unknown variable %q", e.Name)
		}
		v, _ := env.Get(e.Name)
		return v, nil
	}
	if !env.Assign(e.Name, val) {
		return nil, runtimeErr(diagnostics.ErrR003, "unknown variable %q", e.Name)
	}
	return val, nil
}

// evalFieldAssign writes value into object.field, using the field's
// declared type as the "lhs static type" for the same value/reference/
// slicing discipline evalAssign uses for plain variables.
func (ex *Executor) evalFieldAssign(e *ast.FieldAssign, env *Environment) (Object, *diagnostics.Diagnostic) {
	objVal, err := ex.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := objVal.(*Instance)
	if !ok || inst == nil {
		return nil, runtimeErr(diagnostics.ErrR001, "cannot assign field %q on a null object", e.Field)
	}
	val, err := ex.evalExpr(e.Value, env)
	if err != nil {
		return nil, err
	}
	fieldT := ex.res.Types[e]
	if fieldT.Kind == typesystem.Class {
		src, ok := val.(*Instance)
		if !ok || src == nil {
			return nil, runtimeErr(diagnostics.ErrR001, "cannot assign a null object to field %q", e.Field)
		}
		dst, _ := inst.Fields[e.Field].(*Instance)
		if dst == nil {
			dst = NewInstance(fieldT.ClassName)
		}
		CopyAssign(dst, fieldT.ClassName, src, ex.ft)
		inst.Fields[e.Field] = dst
		return dst, nil
	}
	inst.Fields[e.Field] = val
	return val, nil
}

func (ex *Executor) evalMemberAccess(e *ast.MemberAccess, env *Environment) (Object, *diagnostics.Diagnostic) {
	objVal, err := ex.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := objVal.(*Instance)
	if !ok || inst == nil {
		return nil, runtimeErr(diagnostics.ErrR001, "cannot access field %q on a null object", e.Field)
	}
	v, ok := inst.Fields[e.Field]
	if !ok {
		return nil, runtimeErr(diagnostics.ErrR001, "class %q has no field %q", inst.Class, e.Field)
	}
	return v, nil
}

func (ex *Executor) evalUnary(e *ast.Unary, env *Environment) (Object, *diagnostics.Diagnostic) {
	v, err := ex.evalExpr(e.Operand, env)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case ast.Neg:
		i, ok := v.(*Int)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "unary - requires int")
		}
		return &Int{Value: -i.Value}, nil
	case ast.Not:
		b, ok := v.(*Bool)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "unary ! requires bool")
		}
		return &Bool{Value: !b.Value}, nil
	default:
		return nil, runtimeErr(diagnostics.ErrR002, "unsupported unary operator")
	}
}

// evalBinary evaluates a binary expression. && and || short-circuit: the
// rhs is only evaluated once the lhs cannot already decide the result,
// matching ordinary C-family semantics.
func (ex *Executor) evalBinary(e *ast.Binary, env *Environment) (Object, *diagnostics.Diagnostic) {
	if e.Op == ast.AndAnd || e.Op == ast.OrOr {
		return ex.evalShortCircuit(e, env)
	}

	lv, err := ex.evalExpr(e.Lhs, env)
	if err != nil {
		return nil, err
	}
	rv, err := ex.evalExpr(e.Rhs, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Mod:
		return ex.evalArith(e.Op, lv, rv)
	case ast.Lt, ast.Le, ast.Gt, ast.Ge:
		return ex.evalRelational(e.Op, lv, rv)
	case ast.Eq, ast.Ne:
		return ex.evalEquality(e.Op, lv, rv)
	default:
		return nil, runtimeErr(diagnostics.ErrR002, "unsupported binary operator")
	}
}

func (ex *Executor) evalShortCircuit(e *ast.Binary, env *Environment) (Object, *diagnostics.Diagnostic) {
	lv, err := ex.evalExpr(e.Lhs, env)
	if err != nil {
		return nil, err
	}
	lb, ok := lv.(*Bool)
	if !ok {
		return nil, runtimeErr(diagnostics.ErrR002, "&& / || requires bool operands")
	}
	if e.Op == ast.AndAnd && !lb.Value {
		return &Bool{Value: false}, nil
	}
	if e.Op == ast.OrOr && lb.Value {
		return &Bool{Value: true}, nil
	}
	rv, err := ex.evalExpr(e.Rhs, env)
	if err != nil {
		return nil, err
	}
	rb, ok := rv.(*Bool)
	if !ok {
		return nil, runtimeErr(diagnostics.ErrR002, "&& / || requires bool operands")
	}
	return &Bool{Value: rb.Value}, nil
}

func (ex *Executor) evalArith(op ast.BinaryOp, lv, rv Object) (Object, *diagnostics.Diagnostic) {
	li, ok1 := lv.(*Int)
	ri, ok2 := rv.(*Int)
	if !ok1 || !ok2 {
		return nil, runtimeErr(diagnostics.ErrR002, "arithmetic requires int operands")
	}
	switch op {
	case ast.Add:
		return &Int{Value: li.Value + ri.Value}, nil
	case ast.Sub:
		return &Int{Value: li.Value - ri.Value}, nil
	case ast.Mul:
		return &Int{Value: li.Value * ri.Value}, nil
	case ast.Div:
		if ri.Value == 0 {
			return nil, runtimeErr(diagnostics.ErrR005, "division by zero")
		}
		return &Int{Value: li.Value / ri.Value}, nil
	case ast.Mod:
		if ri.Value == 0 {
			return nil, runtimeErr(diagnostics.ErrR005, "division by zero")
		}
		return &Int{Value: li.Value % ri.Value}, nil
	default:
		return nil, runtimeErr(diagnostics.ErrR002, "unsupported arithmetic operator")
	}
}

func (ex *Executor) evalRelational(op ast.BinaryOp, lv, rv Object) (Object, *diagnostics.Diagnostic) {
	var l, r int64
	switch lt := lv.(type) {
	case *Int:
		rt, ok := rv.(*Int)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "relational comparison requires matching int or char operands")
		}
		l, r = lt.Value, rt.Value
	case *Char:
		rt, ok := rv.(*Char)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "relational comparison requires matching int or char operands")
		}
		l, r = int64(lt.Value), int64(rt.Value)
	default:
		return nil, runtimeErr(diagnostics.ErrR002, "relational comparison requires int or char operands")
	}
	var result bool
	switch op {
	case ast.Lt:
		result = l < r
	case ast.Le:
		result = l <= r
	case ast.Gt:
		result = l > r
	case ast.Ge:
		result = l >= r
	}
	return &Bool{Value: result}, nil
}

func (ex *Executor) evalEquality(op ast.BinaryOp, lv, rv Object) (Object, *diagnostics.Diagnostic) {
	var eq bool
	switch l := lv.(type) {
	case *Bool:
		r, ok := rv.(*Bool)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "== / != requires matching operand types")
		}
		eq = l.Value == r.Value
	case *Int:
		r, ok := rv.(*Int)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "== / != requires matching operand types")
		}
		eq = l.Value == r.Value
	case *Char:
		r, ok := rv.(*Char)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "== / != requires matching operand types")
		}
		eq = l.Value == r.Value
	case *String:
		r, ok := rv.(*String)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "== / != requires matching operand types")
		}
		eq = l.Value == r.Value
	default:
		return nil, runtimeErr(diagnostics.ErrR002, "== / != requires a primitive operand")
	}
	if op == ast.Ne {
		eq = !eq
	}
	return &Bool{Value: eq}, nil
}
