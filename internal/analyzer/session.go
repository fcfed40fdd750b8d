package analyzer

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// NewSessionAnalyzer builds an Analyzer over an already-validated durable
// class table and function overload map, for checking a loose statement
// submission.
// Unlike Analyze, it does not rebuild the class table from scratch — the
// durable program's classes and functions are already known good.
func NewSessionAnalyzer(ct *symbols.ClassTable, functions map[string][]symbols.Signature) *Analyzer {
	a := New()
	a.ct = ct
	a.functions = functions
	a.classes = make(map[string]bool)
	for _, name := range ct.Names() {
		a.classes[name] = true
	}
	return a
}

// CheckStatements type-checks stmts against scope (the session's
// persistent variable scope, chained onto the durable program's
// globals) exactly as a void-returning function body would be checked,
// and returns the same kind of Result a full Analyze call would —
// Classes/Functions on the Result are simply the durable tables passed
// to NewSessionAnalyzer, since nothing new was declared.
func (a *Analyzer) CheckStatements(stmts []ast.Statement, scope *symbols.Scope) *Result {
	a.checkStmtsInScope(stmts, scope, typesystem.Void_())
	return a.result()
}
