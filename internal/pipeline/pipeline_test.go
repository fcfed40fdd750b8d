package pipeline

import (
	"testing"

	"github.com/oolang/oolang/internal/analyzer"
	"github.com/oolang/oolang/internal/parser"
)

func runCheckPipeline(source string) *Context {
	ctx := NewContext(source)
	p := New(&parser.Processor{}, &analyzer.Processor{})
	p.Run(ctx)
	return ctx
}

func TestPipelinePopulatesClassTableOnCleanProgram(t *testing.T) {
	ctx := runCheckPipeline(`
	class Animal { int legs; }
	int main(){ Animal a = Animal(); return 0; }
	`)
	if ctx.HasErrors() {
		t.Fatalf("expected no errors, got %v", ctx.Errors)
	}
	if ctx.ClassTable == nil {
		t.Fatalf("expected ClassTable to be populated after a successful run")
	}
	if !ctx.ClassTable.Has("Animal") {
		t.Errorf("expected ClassTable to contain Animal")
	}
	if ctx.FunctionTable == nil {
		t.Errorf("expected FunctionTable to be populated after a successful run")
	}
}

func TestPipelineLeavesClassTableUnsetAfterParseErrors(t *testing.T) {
	ctx := runCheckPipeline(`int main() { return }`)
	if !ctx.HasErrors() {
		t.Fatalf("expected parse errors to be recorded")
	}
	if ctx.ClassTable != nil {
		t.Errorf("expected ClassTable to stay unset when parsing fails")
	}
}

func TestPipelineRecordsSemanticErrorsWithoutClassTable(t *testing.T) {
	ctx := runCheckPipeline(`
	class A : public B { }
	class B : public A { }
	`)
	if !ctx.HasErrors() {
		t.Fatalf("expected the inheritance cycle to be reported")
	}
	if ctx.ClassTable != nil {
		t.Errorf("expected ClassTable to stay unset when analysis fails")
	}
}

func TestContextAddErrorSetsHasErrors(t *testing.T) {
	ctx := NewContext("")
	if ctx.HasErrors() {
		t.Fatalf("fresh context must start with no errors")
	}
	ctx.AddError(nil)
	if !ctx.HasErrors() {
		t.Errorf("expected AddError to flip HasErrors to true")
	}
}
