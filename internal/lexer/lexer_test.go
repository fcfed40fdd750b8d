package lexer

import (
	"testing"

	"github.com/oolang/oolang/internal/token"
)

func collectKinds(t *testing.T, source string) []token.Kind {
	t.Helper()
	l := New(source)
	var kinds []token.Kind
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Kind)
		if tok.Kind == token.EOF {
			return kinds
		}
	}
}

func TestNextTokenOperatorsAndPunctuation(t *testing.T) {
	src := `int x = 1; x = x & & && !=`
	l := New(src)

	want := []token.Kind{
		token.KW_INT, token.IDENT, token.ASSIGN, token.INT_LIT, token.SEMI,
		token.IDENT, token.ASSIGN, token.IDENT, token.AMP, token.AMP,
		token.AND_AND, token.NOT_EQ, token.EOF,
	}
	for i, w := range want {
		got := l.NextToken()
		if got.Kind != w {
			t.Fatalf("token %d: got %v, want %v (lexeme %q)", i, got.Kind, w, got.Lexeme)
		}
	}
}

func TestKeywordsRecognized(t *testing.T) {
	kinds := collectKinds(t, "int bool char string void true false if else while return class public virtual")
	want := []token.Kind{
		token.KW_INT, token.KW_BOOL, token.KW_CHAR, token.KW_STRING, token.KW_VOID,
		token.KW_TRUE, token.KW_FALSE, token.KW_IF, token.KW_ELSE, token.KW_WHILE,
		token.KW_RETURN, token.KW_CLASS, token.KW_PUBLIC, token.KW_VIRTUAL, token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestCharEscapes(t *testing.T) {
	tests := []struct {
		src  string
		want byte
	}{
		{`'\n'`, '\n'},
		{`'\t'`, '\t'},
		{`'\r'`, '\r'},
		{`'\0'`, 0},
		{`'\\'`, '\\'},
		{`'\''`, '\''},
		{`'a'`, 'a'},
	}
	for _, tt := range tests {
		l := New(tt.src)
		tok := l.NextToken()
		if tok.Kind != token.CHAR_LIT {
			t.Fatalf("%q: expected CHAR_LIT, got %v", tt.src, tok.Kind)
		}
		if len(tok.Lexeme) != 1 || tok.Lexeme[0] != tt.want {
			t.Errorf("%q: lexeme = %q, want byte %d", tt.src, tok.Lexeme, tt.want)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\"c"`)
	tok := l.NextToken()
	if tok.Kind != token.STRING_LIT {
		t.Fatalf("expected STRING_LIT, got %v", tok.Kind)
	}
	want := "a\nb\"c"
	if tok.Lexeme != want {
		t.Errorf("lexeme = %q, want %q", tok.Lexeme, want)
	}
}

func TestCommentsAndHashLinesSkipped(t *testing.T) {
	src := "# a whole line comment\nint x; // trailing\n/* block\ncomment */ int y;"
	kinds := collectKinds(t, src)
	want := []token.Kind{
		token.KW_INT, token.IDENT, token.SEMI,
		token.KW_INT, token.IDENT, token.SEMI,
		token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(kinds), kinds, len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestTokenStreamPeekDoesNotConsume(t *testing.T) {
	stream := NewTokenStream(New("int x ;"))
	first := stream.Peek()
	if first.Kind != token.KW_INT {
		t.Fatalf("Peek() = %v, want KW_INT", first.Kind)
	}
	second := stream.PeekAt(1)
	if second.Kind != token.IDENT {
		t.Fatalf("PeekAt(1) = %v, want IDENT", second.Kind)
	}
	// Peek must not have consumed anything.
	got := stream.Next()
	if got.Kind != token.KW_INT {
		t.Errorf("Next() after Peek() = %v, want KW_INT", got.Kind)
	}
	if stream.Next().Kind != token.IDENT {
		t.Errorf("expected IDENT next")
	}
}

func TestParseIntLiteral(t *testing.T) {
	n, err := ParseIntLiteral("42")
	if err != nil || n != 42 {
		t.Errorf("ParseIntLiteral(42) = %d, %v", n, err)
	}
	if _, err := ParseIntLiteral("not-a-number"); err == nil {
		t.Errorf("expected an error for a malformed literal")
	}
}

func TestScanClassNames(t *testing.T) {
	names := ScanClassNames("class Animal { } class Dog { } int main() { Dog d = Dog(); return 0; }")
	if !names["Animal"] || !names["Dog"] {
		t.Errorf("expected Animal and Dog to be recognized as class names, got %v", names)
	}
	if names["main"] {
		t.Errorf("did not expect main to be recognized as a class name")
	}
}
