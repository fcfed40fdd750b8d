package analyzer

import (
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// seedBuiltins registers the four output primitives
// (print_int, print_bool, print_char, print_string) as ordinary
// free-function overloads with no FuncDecl. A nil FuncDecl is how the
// executor tells a builtin apart from a user-declared function at the
// call site (see runtime.Executor.evalCall): overload resolution, arity
// checking and ambiguity detection all run through the exact same path
// a user function would use.
func (a *Analyzer) seedBuiltins() {
	for name, param := range map[string]typesystem.Type{
		"print_int":    typesystem.Int_(),
		"print_bool":   typesystem.Bool_(),
		"print_char":   typesystem.Char_(),
		"print_string": typesystem.String_(),
	} {
		a.functions[name] = []symbols.Signature{{
			ReturnType: typesystem.Int_(),
			Params:     []typesystem.Type{param},
		}}
	}
}
