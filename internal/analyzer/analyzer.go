// Package analyzer implements the semantic-analysis stage:
// class-table construction, inheritance validation, overload resolution,
// and full expression/statement type-checking. It is the pipeline stage
// between parsing and class-runtime construction: it either
// succeeds cleanly, in which case its ClassTable and function overload
// map are promoted into the durable program, or it reports diagnostics
// and the durable program is left untouched.
package analyzer

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/token"
	"github.com/oolang/oolang/internal/typesystem"
)

// CallResolution records which overload a Call or Construct site resolved
// to, so the executor can run it without re-resolving.
// Sig is nil for a Construct of a class with zero declared constructors:
// the synthetic default constructor has no body to point to.
type CallResolution struct {
	Sig *symbols.Signature
}

// MethodResolution records a MethodCall's static resolution: the chosen
// overload, the class in the static chain that owns it, and its vtable
// signature key. The executor calls Sig directly for non-virtual/non-ref
// dispatch, reads StaticClass's vtable to decide whether the method is
// virtual, and uses Key to probe the receiver's dynamic vtable when the
// call is virtual through a reference.
type MethodResolution struct {
	Sig         *symbols.Signature
	StaticClass string
	Key         string
}

// Result is everything the executor and the durable-program bookkeeping
// need from a successful analysis.
type Result struct {
	Classes   *symbols.ClassTable
	Functions map[string][]symbols.Signature
	Errors    []*diagnostics.Diagnostic

	Types       map[ast.Expression]typesystem.Type
	Calls       map[*ast.Call]*CallResolution
	Constructs  map[*ast.Construct]*CallResolution
	MethodCalls map[*ast.MethodCall]*MethodResolution
}

// Ok reports whether analysis found no diagnostics at all.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

// Analyzer holds the mutable state threaded through one Analyze call. A
// fresh Analyzer is used per submission; nothing here survives across
// calls, since the caller folds a successful Result into the durable
// program itself.
type Analyzer struct {
	ct        *symbols.ClassTable
	functions map[string][]symbols.Signature
	classes   map[string]bool

	errors      []*diagnostics.Diagnostic
	types       map[ast.Expression]typesystem.Type
	calls       map[*ast.Call]*CallResolution
	constructs  map[*ast.Construct]*CallResolution
	methodCalls map[*ast.MethodCall]*MethodResolution
}

// New creates an empty Analyzer.
func New() *Analyzer {
	return &Analyzer{
		types:       make(map[ast.Expression]typesystem.Type),
		calls:       make(map[*ast.Call]*CallResolution),
		constructs:  make(map[*ast.Construct]*CallResolution),
		methodCalls: make(map[*ast.MethodCall]*MethodResolution),
	}
}

func (a *Analyzer) errorf(tok token.Token, code diagnostics.Code, format string, args ...interface{}) {
	a.errors = append(a.errors, diagnostics.NewError(code, tok.Pos, format, args...))
}

// Analyze runs the full pipeline over prog, which must already contain
// every definition visible to this submission (durable program plus the
// new submission, merged by the caller, since a submission is analyzed
// in the context of everything already accumulated). It never mutates
// prog.
func (a *Analyzer) Analyze(prog *ast.Program) *Result {
	a.ct = symbols.NewClassTable()
	a.functions = make(map[string][]symbols.Signature)
	a.seedBuiltins()
	a.classes = make(map[string]bool)
	for _, c := range prog.Classes {
		a.classes[c.Name] = true
	}

	a.collectClasses(prog.Classes)
	if len(a.errors) == 0 {
		if ierrs := a.ct.ValidateInheritance(); len(ierrs) > 0 {
			for _, e := range ierrs {
				a.errors = append(a.errors, diagnostics.NewError(diagnostics.ErrS006, token.Position{}, "%s", e.Error()))
			}
		}
	}

	// A cycle or an undeclared-base error makes Chain()/MergedFields()
	// potentially return incomplete views; nothing past this point is
	// safe to trust, so stop here rather than risk cascading nonsense
	// diagnostics (or, for a genuine cycle, an unbounded walk elsewhere).
	if len(a.errors) > 0 {
		return a.result()
	}

	a.checkOverrides()
	a.collectFunctions(prog.Funcs)
	a.checkMainSignature(prog.Funcs)

	for _, c := range prog.Classes {
		a.checkClassBodies(c)
	}
	for _, f := range prog.Funcs {
		a.checkFunctionBody(f)
	}

	return a.result()
}

func (a *Analyzer) result() *Result {
	return &Result{
		Classes:     a.ct,
		Functions:   a.functions,
		Errors:      a.errors,
		Types:       a.types,
		Calls:       a.calls,
		Constructs:  a.constructs,
		MethodCalls: a.methodCalls,
	}
}
