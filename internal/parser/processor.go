package parser

import (
	"github.com/oolang/oolang/internal/lexer"
	"github.com/oolang/oolang/internal/pipeline"
)

// Processor is the pipeline.Processor wrapping lexing+parsing of
// ctx.Source into ctx.AstRoot.
type Processor struct {
	// KnownClasses is the set of class names already promoted into the
	// durable program; merged with this submission's own `class` names
	// before parsing so forward/self references resolve correctly.
	KnownClasses map[string]bool
}

func (pr *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	known := lexer.ScanClassNames(ctx.Source)
	for name := range pr.KnownClasses {
		known[name] = true
	}

	l := lexer.New(ctx.Source)
	ts := lexer.NewTokenStream(l)
	p := New(ts, known)
	ctx.AstRoot = p.ParseProgram()
	ctx.Errors = append(ctx.Errors, p.Errors()...)
	return ctx
}
