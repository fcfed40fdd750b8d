package runtime

import (
	"fmt"

	"github.com/oolang/oolang/internal/analyzer"
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// evalCall runs a free-function call site, using the overload the
// analyzer already resolved (analyzer.CallResolution). A
// nil FuncDecl marks a built-in (see analyzer.seedBuiltins): the
// executor's builtin table is consulted instead of walking a user body.
func (ex *Executor) evalCall(e *ast.Call, env *Environment) (Object, *diagnostics.Diagnostic) {
	res := ex.res.Calls[e]
	if res == nil || res.Sig == nil {
		return nil, runtimeErr(diagnostics.ErrR003, "unresolved call to %q", e.Callee)
	}
	if res.Sig.FuncDecl == nil {
		return ex.evalBuiltinCall(e.Callee, e.Args, env)
	}
	return ex.invokeFunction(res.Sig, e.Args, env)
}

// evalConstruct runs `ClassName(args)`: the object is first fully
// default-constructed, then — if the class
// declares at least one constructor — the chosen overload's body runs
// against it. There is no implicit base-constructor call: a class's own
// constructor is solely responsible for any field it cares to overwrite,
// the rest keeps its default value.
func (ex *Executor) evalConstruct(e *ast.Construct, env *Environment) (Object, *diagnostics.Diagnostic) {
	inst := DefaultInstance(e.Class, ex.ft)

	res := ex.res.Constructs[e]
	if res == nil || res.Sig == nil {
		return inst, nil
	}

	ctor := res.Sig.CtorDecl
	frame := NewEnvironment()
	info := ex.ft.Classes[e.Class]
	for _, field := range info.FieldOrder {
		frame.DeclareRef(field, NewFieldRef(inst, field, classNameOf(info.MergedFields[field])))
	}
	if err := ex.bindParams(frame, ctor.Params, res.Sig.Params, e.Args, env); err != nil {
		return nil, err
	}
	if _, err := ex.execStmts(ctor.Body.Stmts, frame); err != nil {
		return nil, err
	}
	return inst, nil
}

// evalMemberAccess's companion evalMethodCall runs `object.method(args)`
//: static lookup by default, switching to
// the receiver's dynamic-class override only when the resolved method is
// virtual *and* the call is made through a reference-typed expression.
func (ex *Executor) evalMethodCall(e *ast.MethodCall, env *Environment) (Object, *diagnostics.Diagnostic) {
	objVal, err := ex.evalExpr(e.Object, env)
	if err != nil {
		return nil, err
	}
	inst, ok := objVal.(*Instance)
	if !ok || inst == nil {
		return nil, runtimeErr(diagnostics.ErrR001, "cannot call method %q on a null object", e.Method)
	}

	res := ex.res.MethodCalls[e]
	if res == nil || res.Sig == nil {
		return nil, runtimeErr(diagnostics.ErrR003, "unresolved call to method %q", e.Method)
	}
	sig := res.Sig

	if ex.res.Types[e.Object].IsRef && ex.isVirtual(res) {
		if owner, ok := ex.ft.Classes[inst.Class].LookupOwner(res.Key); ok {
			if override := ex.findMethodSig(owner, e.Method, res.Key); override != nil {
				sig = override
			}
		}
	}

	return ex.invokeMethod(inst, sig, e.Args, env)
}

// isVirtual reports whether res resolved to a method that is virtual as
// seen from its statically declaring class — vtable_virtual is OR'd down
// the chain (classtable.Build), so this is already true for every class
// that could legally inherit the virtual flag.
func (ex *Executor) isVirtual(res *analyzer.MethodResolution) bool {
	info := ex.ft.Classes[res.StaticClass]
	if info == nil {
		return false
	}
	return info.LookupVirtual(res.Key)
}

// findMethodSig locates the overload of methodName declared directly on
// className whose signature key is key — used to fetch the overriding
// implementation a dynamic dispatch resolved to.
func (ex *Executor) findMethodSig(className, methodName, key string) *symbols.Signature {
	info := ex.ft.Classes[className]
	if info == nil {
		return nil
	}
	overloads := info.Methods[methodName]
	for i := range overloads {
		if symbols.SignatureKey(methodName, overloads[i].Params) == key {
			return &overloads[i]
		}
	}
	return nil
}

// invokeFunction runs a free function's body in a fresh root frame.
func (ex *Executor) invokeFunction(sig *symbols.Signature, args []ast.Expression, callerEnv *Environment) (Object, *diagnostics.Diagnostic) {
	fn := sig.FuncDecl
	frame := NewEnvironment()
	if err := ex.bindParams(frame, fn.Params, sig.Params, args, callerEnv); err != nil {
		return nil, err
	}
	sigObj, err := ex.execStmts(fn.Body.Stmts, frame)
	if err != nil {
		return nil, err
	}
	return unwrapReturn(sigObj), nil
}

// invokeMethod runs a method body against receiver inst. Every merged
// field of the receiver's *dynamic* class is bound into the callee frame
// as a FieldRef before parameters are bound, so a bare field name always sees the receiver's real,
// fully-merged storage regardless of which ancestor's body is executing.
func (ex *Executor) invokeMethod(inst *Instance, sig *symbols.Signature, args []ast.Expression, callerEnv *Environment) (Object, *diagnostics.Diagnostic) {
	method := sig.MethodDecl
	frame := NewEnvironment()
	dynInfo := ex.ft.Classes[inst.Class]
	for _, field := range dynInfo.FieldOrder {
		frame.DeclareRef(field, NewFieldRef(inst, field, classNameOf(dynInfo.MergedFields[field])))
	}
	if err := ex.bindParams(frame, method.Params, sig.Params, args, callerEnv); err != nil {
		return nil, err
	}
	sigObj, err := ex.execStmts(method.Body.Stmts, frame)
	if err != nil {
		return nil, err
	}
	return unwrapReturn(sigObj), nil
}

// bindParams binds each declared parameter in frame: a reference
// parameter captures the argument's lvalue; a value parameter receives
// an evaluated rvalue, cloned fresh under the parameter's own declared
// class when it is Class-typed so the callee never shares the caller's
// handle.
func (ex *Executor) bindParams(frame *Environment, params []*ast.Param, sigParams []typesystem.Type, args []ast.Expression, callerEnv *Environment) *diagnostics.Diagnostic {
	for i, p := range params {
		t := sigParams[i]
		if t.IsRef {
			ref, err := ex.lvalueRef(args[i], callerEnv, classNameOf(t))
			if err != nil {
				return err
			}
			frame.DeclareRef(p.Name, ref)
			continue
		}

		val, err := ex.evalExpr(args[i], callerEnv)
		if err != nil {
			return err
		}
		if t.Kind == typesystem.Class {
			src, ok := val.(*Instance)
			if !ok || src == nil {
				return runtimeErr(diagnostics.ErrR001, "cannot pass a null object as parameter %q", p.Name)
			}
			frame.Declare(p.Name, CloneFresh(t.ClassName, src, ex.ft), t.ClassName)
			continue
		}
		frame.Declare(p.Name, val, "")
	}
	return nil
}

// lvalueRef resolves arg's lvalue for a reference-parameter binding. The
// analyzer only scores a reference parameter viable against an lvalue
// argument (overload.go scoreOverload), so arg is always a *ast.Var or
// *ast.MemberAccess for any program that passed analysis.
func (ex *Executor) lvalueRef(arg ast.Expression, env *Environment, staticClass string) (RefTarget, *diagnostics.Diagnostic) {
	switch a := arg.(type) {
	case *ast.Var:
		return NewEnvRef(env, a.Name, staticClass), nil
	case *ast.MemberAccess:
		objVal, err := ex.evalExpr(a.Object, env)
		if err != nil {
			return nil, err
		}
		inst, ok := objVal.(*Instance)
		if !ok || inst == nil {
			return nil, runtimeErr(diagnostics.ErrR001, "cannot bind a reference through a null object")
		}
		return NewFieldRef(inst, a.Field, staticClass), nil
	default:
		return nil, runtimeErr(diagnostics.ErrR001, "argument is not assignable to a reference parameter")
	}
}

// unwrapReturn extracts the value a function/method body produced:
// falling off the end, or executing a bare `return;`, both yield the
// integer zero.
func unwrapReturn(sig Object) Object {
	if sig == nil {
		return &Int{Value: 0}
	}
	rs, ok := sig.(*ReturnSignal)
	if !ok || rs.Value == nil {
		return &Int{Value: 0}
	}
	return rs.Value
}

// evalBuiltinCall implements the four output primitives: each takes one argument of the matching primitive type,
// prints it followed by a newline, and yields zero. print_bool emits `1`
// or `0` rather than `true`/`false`.
func (ex *Executor) evalBuiltinCall(name string, args []ast.Expression, env *Environment) (Object, *diagnostics.Diagnostic) {
	val, err := ex.evalExpr(args[0], env)
	if err != nil {
		return nil, err
	}
	switch name {
	case "print_int":
		i, ok := val.(*Int)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "print_int requires an int argument")
		}
		fmt.Fprintf(ex.Out, "%d\n", i.Value)
	case "print_bool":
		b, ok := val.(*Bool)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "print_bool requires a bool argument")
		}
		if b.Value {
			fmt.Fprintln(ex.Out, "1")
		} else {
			fmt.Fprintln(ex.Out, "0")
		}
	case "print_char":
		c, ok := val.(*Char)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "print_char requires a char argument")
		}
		fmt.Fprintf(ex.Out, "%c\n", rune(c.Value))
	case "print_string":
		s, ok := val.(*String)
		if !ok {
			return nil, runtimeErr(diagnostics.ErrR002, "print_string requires a string argument")
		}
		fmt.Fprintln(ex.Out, s.Value)
	default:
		return nil, runtimeErr(diagnostics.ErrR003, "unknown built-in %q", name)
	}
	return &Int{Value: 0}, nil
}
