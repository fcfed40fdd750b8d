package analyzer

import (
	"github.com/oolang/oolang/internal/classtable"
	"github.com/oolang/oolang/internal/pipeline"
)

// Processor is the pipeline.Processor wrapping semantic analysis.
// ctx.AstRoot must already be the full program visible to this
// submission — the durable program merged with whatever is new — which the session layer is responsible for assembling before
// running the pipeline.
type Processor struct {
	// Result is populated after Process runs, so the caller can fold a
	// successful analysis's resolutions (Calls/Constructs/MethodCalls)
	// into the executor without threading them through pipeline.Context,
	// which only has room for the parts the spec's runtime tables name.
	Result *Result
}

func (pr *Processor) Process(ctx *pipeline.Context) *pipeline.Context {
	az := New()
	result := az.Analyze(ctx.AstRoot)
	pr.Result = result

	ctx.Errors = append(ctx.Errors, result.Errors...)
	for node, t := range result.Types {
		ctx.TypeMap[node] = t
	}

	if ctx.HasErrors() {
		return ctx
	}

	ctx.ClassTable = result.Classes
	ctx.FunctionTable = classtable.Build(result.Classes, result.Functions)
	return ctx
}
