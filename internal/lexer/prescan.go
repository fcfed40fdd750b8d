package lexer

import "github.com/oolang/oolang/internal/token"

// ScanClassNames does a throwaway lexical pass over source collecting
// every `class Name` occurrence, the pre-scanned set the parser needs to
// disambiguate "identifier followed by (" into a constructor call versus
// a function call, and "Identifier Identifier" into a variable
// declaration.
func ScanClassNames(source string) map[string]bool {
	names := make(map[string]bool)
	l := New(source)
	prev := token.Token{}
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			break
		}
		if prev.Kind == token.KW_CLASS && tok.Kind == token.IDENT {
			names[tok.Lexeme] = true
		}
		prev = tok
	}
	return names
}
