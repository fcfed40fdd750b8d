// Package session is the interactive front end's durable state: it owns
// the accumulating durable program, classifies a Ready submission as a
// definition or a loose-statement body, and re-analyzes/re-executes it,
// rebuilding the class runtime only when a definition is promoted. It
// reuses the lex→parse→analyze pipeline threading a one-shot compiler
// would use, adding the persistence a one-shot run doesn't need: a
// durable *ast.Program, and a session-scope Environment/Scope pair that
// survive across Submit calls.
package session

import (
	"io"

	"github.com/oolang/oolang/internal/analyzer"
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/classtable"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/lexer"
	"github.com/oolang/oolang/internal/parser"
	"github.com/oolang/oolang/internal/runtime"
	"github.com/oolang/oolang/internal/symbols"
)

// Kind classifies a submission once it reaches the Ready state.
type Kind int

const (
	KindDefinition Kind = iota
	KindStatements
)

func (k Kind) String() string {
	if k == KindDefinition {
		return "definition"
	}
	return "statements"
}

// Result is what one Submit call reports back to the front end.
type Result struct {
	Kind   Kind
	Errors []*diagnostics.Diagnostic
}

// Ok reports whether the submission produced no diagnostics.
func (r *Result) Ok() bool { return len(r.Errors) == 0 }

// Session is the durable program plus the session-scope execution state
// threaded submission after submission. A Session is not safe for
// concurrent use — the front end drives it from a single goroutine, one
// submission at a time.
type Session struct {
	prog *ast.Program

	ft  *classtable.FunctionTable
	res *analyzer.Result

	scope *symbols.Scope
	env   *runtime.Environment

	// defSources holds the raw source text of every submission promoted
	// into the durable program, in promotion order — the durable program
	// is "just an ordered list of definition source strings", which internal/snapshot persists and replays.
	defSources []string

	Out io.Writer
}

// New builds an empty Session over an empty durable program, printing
// any builtin output to out.
func New(out io.Writer) *Session {
	s := &Session{
		prog:  &ast.Program{},
		scope: symbols.NewScope(),
		env:   runtime.NewEnvironment(),
		Out:   out,
	}
	result := analyzer.New().Analyze(s.prog)
	s.res = result
	s.ft = classtable.Build(result.Classes, result.Functions)
	return s
}

// Submit runs one front-end submission to completion: it classifies the
// already-bracket-balanced source (see Collector) as a definition or a
// loose-statement body and processes it accordingly.
func (s *Session) Submit(source string) *Result {
	known := s.knownClasses()
	for name := range lexer.ScanClassNames(source) {
		known[name] = true
	}

	ts := lexer.NewTokenStream(lexer.New(source))
	p := parser.New(ts, known)

	if p.LooksLikeDefinition() {
		return s.submitDefinition(p, source)
	}
	return s.submitStatements(p)
}

func (s *Session) knownClasses() map[string]bool {
	known := make(map[string]bool, len(s.prog.Classes))
	for _, c := range s.prog.Classes {
		known[c.Name] = true
	}
	return known
}

// submitDefinition parses source as a whole program of new definitions,
// re-analyzes the durable program plus the addition, and promotes it
// only on success — a parse or semantic error leaves the durable program
// untouched.
func (s *Session) submitDefinition(p *parser.Parser, source string) *Result {
	addition := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		return &Result{Kind: KindDefinition, Errors: errs}
	}

	candidate := &ast.Program{
		Classes: append(append([]*ast.ClassDef{}, s.prog.Classes...), addition.Classes...),
		Funcs:   append(append([]*ast.FunctionDef{}, s.prog.Funcs...), addition.Funcs...),
	}

	result := analyzer.New().Analyze(candidate)
	if !result.Ok() {
		return &Result{Kind: KindDefinition, Errors: result.Errors}
	}

	s.prog = candidate
	s.res = result
	s.ft = classtable.Build(result.Classes, result.Functions)
	s.defSources = append(s.defSources, source)

	for _, c := range addition.Classes {
		if !s.scope.IsClassName(c.Name) {
			s.scope.DeclareClass(c.Name)
		}
	}
	for _, f := range addition.Funcs {
		if sigs := result.Functions[f.Name]; len(sigs) > 0 {
			s.scope.DeclareFunc(f.Name, sigs[len(sigs)-1])
		}
	}

	return &Result{Kind: KindDefinition}
}

// submitStatements parses source as a sequence of loose statements,
// type-checks them against the durable program's already-validated
// tables plus the session's accumulated variable scope, and — if that
// succeeds — executes them against the session's persistent Environment.
func (s *Session) submitStatements(p *parser.Parser) *Result {
	stmts := p.ParseStatements()
	if errs := p.Errors(); len(errs) > 0 {
		return &Result{Kind: KindStatements, Errors: errs}
	}

	az := analyzer.NewSessionAnalyzer(s.res.Classes, s.res.Functions)
	result := az.CheckStatements(stmts, s.scope)
	if !result.Ok() {
		return &Result{Kind: KindStatements, Errors: result.Errors}
	}

	ex := runtime.New(s.ft, result, s.Out)
	if rtErr := ex.Run(stmts, s.env); rtErr != nil {
		return &Result{Kind: KindStatements, Errors: []*diagnostics.Diagnostic{rtErr}}
	}
	return &Result{Kind: KindStatements}
}

// ClassNames lists every class promoted into the durable program.
func (s *Session) ClassNames() []string {
	names := make([]string, 0, len(s.prog.Classes))
	for _, c := range s.prog.Classes {
		names = append(names, c.Name)
	}
	return names
}

// Handles lists the session scope's live variables and their runtime
// values, for the front end's `:handles` inspection command.
func (s *Session) Handles() map[string]runtime.Object {
	out := make(map[string]runtime.Object)
	for name := range s.scope.VarNames() {
		if v, ok := s.env.Get(name); ok {
			out[name] = v
		}
	}
	return out
}

// FunctionTable exposes the current class runtime, for callers (the CLI's
// `:classes` command) that need direct access to it.
func (s *Session) FunctionTable() *classtable.FunctionTable { return s.ft }

// Program exposes the durable program's AST, for `:ast` dumps.
func (s *Session) Program() *ast.Program { return s.prog }

// DefinitionSources returns the raw source text of every submission
// promoted into the durable program so far, in promotion order. This is
// the durable program's serializable form: internal/snapshot writes it
// out for `:save` and replays it through Submit for `:load`.
func (s *Session) DefinitionSources() []string {
	return append([]string(nil), s.defSources...)
}
