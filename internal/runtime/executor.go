package runtime

import (
	"io"

	"github.com/oolang/oolang/internal/analyzer"
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/classtable"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/token"
)

// Executor is the tree-walking evaluator. It runs over one
// analyzed program at a time: ft is the class/function runtime built from
// that analysis, res carries the call-site resolutions recorded while
// type-checking it, and Out is where the print_* builtins write.
type Executor struct {
	ft  *classtable.FunctionTable
	res *analyzer.Result
	Out io.Writer
}

// New builds an Executor over a successfully analyzed program.
func New(ft *classtable.FunctionTable, res *analyzer.Result, out io.Writer) *Executor {
	return &Executor{ft: ft, res: res, Out: out}
}

func runtimeErr(code diagnostics.Code, format string, args ...interface{}) *diagnostics.Diagnostic {
	return diagnostics.NewError(code, token.Position{}, format, args...)
}

// Run executes a top-level loose-statement submission directly
// against env, which the caller keeps alive across submissions. A stray
// `return` at session scope — there being no function frame to return
// out of — simply ends this submission's execution; its value is
// discarded.
func (ex *Executor) Run(stmts []ast.Statement, env *Environment) *diagnostics.Diagnostic {
	_, err := ex.execStmts(stmts, env)
	return err
}
