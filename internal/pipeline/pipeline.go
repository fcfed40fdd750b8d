// Package pipeline threads one submission through the lex/parse/analyze
// stages as a sequence of Processors (Pipeline, Processor, Run threading
// a *Context), continuing past a failed stage so later stages
// can still report what they can.
package pipeline

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/classtable"
	"github.com/oolang/oolang/internal/diagnostics"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// Processor is one stage of the pipeline.
type Processor interface {
	Process(ctx *Context) *Context
}

// Context carries a submission's state across pipeline stages.
type Context struct {
	Source   string
	FilePath string

	AstRoot *ast.Program
	Errors  []*diagnostics.Diagnostic

	ClassTable    *symbols.ClassTable
	FunctionTable *classtable.FunctionTable
	TypeMap       map[ast.Node]typesystem.Type
}

// NewContext builds a fresh Context for source.
func NewContext(source string) *Context {
	return &Context{
		Source:  source,
		TypeMap: make(map[ast.Node]typesystem.Type),
	}
}

// HasErrors reports whether any stage has reported a diagnostic so far.
func (c *Context) HasErrors() bool { return len(c.Errors) > 0 }

// AddError appends d to the context's diagnostic list.
func (c *Context) AddError(d *diagnostics.Diagnostic) {
	c.Errors = append(c.Errors, d)
}

// Pipeline is an ordered sequence of Processors.
type Pipeline struct {
	stages []Processor
}

// New builds a Pipeline from stages, run in order.
func New(stages ...Processor) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run threads ctx through every stage, continuing past errors so later
// stages can still contribute diagnostics rather than stopping at the
// first failure.
func (p *Pipeline) Run(ctx *Context) *Context {
	for _, stage := range p.stages {
		ctx = stage.Process(ctx)
	}
	return ctx
}
