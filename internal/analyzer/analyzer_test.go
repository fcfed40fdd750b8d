package analyzer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/lexer"
	"github.com/oolang/oolang/internal/parser"
)

func mustAnalyze(t *testing.T, source string) *Result {
	t.Helper()
	classNames := lexer.ScanClassNames(source)
	ts := lexer.NewTokenStream(lexer.New(source))
	p := parser.New(ts, classNames)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors(), "expected source to parse cleanly")

	res := New().Analyze(prog)
	return res
}

func TestAnalyzeAcceptsValidProgram(t *testing.T) {
	res := mustAnalyze(t, `
	class Animal { string name; virtual void speak(){ } }
	class Dog : public Animal { void speak(){ } }
	int main(){ Dog d = Dog(); d.speak(); return 0; }
	`)
	require.True(t, res.Ok(), "expected no errors, got %v", res.Errors)
}

func TestAnalyzeRejectsInheritanceCycle(t *testing.T) {
	res := mustAnalyze(t, `
	class A : public B { }
	class B : public A { }
	`)
	require.False(t, res.Ok(), "expected a cycle to be rejected")
}

func TestAnalyzeRejectsMismatchedMainSignature(t *testing.T) {
	res := mustAnalyze(t, `bool main(){ return true; }`)
	require.False(t, res.Ok(), "expected a non-int/void main to be a semantic error")
}

func TestAnalyzeAcceptsIntOrVoidMain(t *testing.T) {
	res := mustAnalyze(t, `int main(){ return 0; }`)
	require.True(t, res.Ok(), "expected int main() to be legal, got %v", res.Errors)

	res = mustAnalyze(t, `void main(){ }`)
	require.True(t, res.Ok(), "expected void main() to be legal, got %v", res.Errors)
}

func TestRelationalAcceptsCharOperands(t *testing.T) {
	res := mustAnalyze(t, `int main(){ char a='a'; char b='b'; bool r = a < b; return 0; }`)
	require.True(t, res.Ok(), "expected char < char to be legal, got %v", res.Errors)
}

func TestRelationalRejectsMixedOperands(t *testing.T) {
	res := mustAnalyze(t, `int main(){ int a=1; char b='b'; bool r = a < b; return 0; }`)
	require.False(t, res.Ok(), "expected int < char to be rejected")
}

func TestAssignabilityAllowsDerivedIntoBase(t *testing.T) {
	res := mustAnalyze(t, `
	class Animal { }
	class Dog : public Animal { }
	int main(){ Animal a; a = Dog(); return 0; }
	`)
	require.True(t, res.Ok(), "expected a Dog to be assignable into an Animal-typed variable, got %v", res.Errors)
}

func TestAssignabilityRejectsBaseIntoDerived(t *testing.T) {
	res := mustAnalyze(t, `
	class Animal { }
	class Dog : public Animal { }
	int main(){ Animal a = Animal(); Dog d = a; return 0; }
	`)
	require.False(t, res.Ok(), "expected assigning a base-typed value into a more-derived variable to be rejected")
}

func TestOverloadResolutionPrefersRefOverValueWhenTied(t *testing.T) {
	res := mustAnalyze(t, `
	void f(int x){ }
	void f(int& x){ }
	int main(){ int a=1; f(a); return 0; }
	`)
	require.True(t, res.Ok(), "expected a resolvable overload set, got %v", res.Errors)
}

func TestOverloadResolutionRejectsAmbiguousCall(t *testing.T) {
	res := mustAnalyze(t, `
	void f(int x, bool y){ }
	void f(bool x, int y){ }
	int main(){ return 0; }
	`)
	require.True(t, res.Ok())

	// A call with no arguments exercising either overload isn't ambiguous
	// on its own; construct a genuinely ambiguous pair instead: each
	// overload takes one argument by reference and one by value, so two
	// int lvalues score the same against both.
	res = mustAnalyze(t, `
	void g(int x, int& y){ }
	void g(int& x, int y){ }
	int main(){ int a=1; int b=2; g(a, b); return 0; }
	`)
	require.False(t, res.Ok(), "expected overloads with tied ref/value scores to be ambiguous")
}

func TestMethodLookupStopsAtFirstClassWithViableOverload(t *testing.T) {
	res := mustAnalyze(t, `
	class Animal { void speak(int x){ } }
	class Dog : public Animal { void speak(bool y){ } }
	int main(){ Dog d = Dog(); d.speak(true); return 0; }
	`)
	require.True(t, res.Ok(), "expected Dog.speak(bool) overload to be visible, got %v", res.Errors)

	res2 := mustAnalyze(t, `
	class Animal { void speak(int x){ } }
	class Dog : public Animal { void speak(bool y){ } }
	int main(){ Dog d = Dog(); d.speak(1); return 0; }
	`)
	require.True(t, res2.Ok(), "expected Animal.speak(int) to be found when no Dog.speak overload is viable, got %v", res2.Errors)
}

func TestTypesMapRecordsResolvedExpressionTypes(t *testing.T) {
	classNames := lexer.ScanClassNames(`int main(){ int x = 1 + 2; return 0; }`)
	ts := lexer.NewTokenStream(lexer.New(`int main(){ int x = 1 + 2; return 0; }`))
	p := parser.New(ts, classNames)
	prog := p.ParseProgram()
	require.Empty(t, p.Errors())

	res := New().Analyze(prog)
	require.True(t, res.Ok())

	decl := prog.Funcs[0].Body.Stmts[0].(*ast.VarDecl)
	typ, ok := res.Types[decl.Init]
	require.True(t, ok, "expected the initializer expression to have a recorded type")
	require.Equal(t, "int", typ.String())
}
