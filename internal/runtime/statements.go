package runtime

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/typesystem"
)

// execBlock runs a block in a fresh child scope of parent.
func (ex *Executor) execBlock(block *ast.Block, parent *Environment) (Object, *diagnostics.Diagnostic) {
	child := NewChildEnvironment(parent)
	return ex.execStmts(block.Stmts, child)
}

// execStmts runs stmts in env (without opening a further child scope —
// used both for a block's own contents and for a function/method/
// constructor's top-level body, which shares its scope with its
// parameters, mirroring the analyzer's checkStmtsInScope).
func (ex *Executor) execStmts(stmts []ast.Statement, env *Environment) (Object, *diagnostics.Diagnostic) {
	for _, st := range stmts {
		sig, err := ex.execStmt(st, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
	return nil, nil
}

// execStmt runs one statement. The returned Object is nil on ordinary
// completion or a *ReturnSignal once a return statement has been hit;
// callers propagate a non-nil result upward unchanged instead of
// continuing to execute later statements.
func (ex *Executor) execStmt(stmt ast.Statement, env *Environment) (Object, *diagnostics.Diagnostic) {
	switch st := stmt.(type) {
	case *ast.Block:
		return ex.execBlock(st, env)

	case *ast.ExprStmt:
		_, err := ex.evalExpr(st.Expr, env)
		return nil, err

	case *ast.VarDecl:
		return nil, ex.execVarDecl(st, env)

	case *ast.If:
		return ex.execIf(st, env)

	case *ast.While:
		return ex.execWhile(st, env)

	case *ast.Return:
		return ex.execReturn(st, env)

	default:
		return nil, nil
	}
}

func (ex *Executor) execVarDecl(st *ast.VarDecl, env *Environment) *diagnostics.Diagnostic {
	declared := declaredType(st.Type)

	if declared.IsRef {
		ref, err := ex.lvalueRef(st.Init, env, classNameOf(declared))
		if err != nil {
			return err
		}
		env.DeclareRef(st.Name, ref)
		return nil
	}

	if st.Init == nil {
		env.Declare(st.Name, Default(declared, ex.ft), classNameOf(declared))
		return nil
	}

	val, err := ex.evalExpr(st.Init, env)
	if err != nil {
		return err
	}
	if declared.Kind == typesystem.Class {
		src, _ := val.(*Instance)
		env.Declare(st.Name, CloneFresh(declared.ClassName, src, ex.ft), declared.ClassName)
		return nil
	}
	env.Declare(st.Name, val, "")
	return nil
}

func (ex *Executor) execIf(st *ast.If, env *Environment) (Object, *diagnostics.Diagnostic) {
	cond, err := ex.evalExpr(st.Cond, env)
	if err != nil {
		return nil, err
	}
	if truthy(cond) {
		return ex.execStmt(st.Then, env)
	}
	if st.Else != nil {
		return ex.execStmt(st.Else, env)
	}
	return nil, nil
}

func (ex *Executor) execWhile(st *ast.While, env *Environment) (Object, *diagnostics.Diagnostic) {
	for {
		cond, err := ex.evalExpr(st.Cond, env)
		if err != nil {
			return nil, err
		}
		if !truthy(cond) {
			return nil, nil
		}
		sig, err := ex.execStmt(st.Body, env)
		if err != nil {
			return nil, err
		}
		if sig != nil {
			return sig, nil
		}
	}
}

func (ex *Executor) execReturn(st *ast.Return, env *Environment) (Object, *diagnostics.Diagnostic) {
	if st.Value == nil {
		return &ReturnSignal{}, nil
	}
	val, err := ex.evalExpr(st.Value, env)
	if err != nil {
		return nil, err
	}
	return &ReturnSignal{Value: val}, nil
}

func classNameOf(t typesystem.Type) string {
	if t.Kind == typesystem.Class {
		return t.ClassName
	}
	return ""
}

func truthy(o Object) bool {
	switch v := o.(type) {
	case *Bool:
		return v.Value
	case *Int:
		return v.Value != 0
	case *Char:
		return v.Value != 0
	case *String:
		return v.Value != ""
	default:
		return false
	}
}
