package diagnostics

import (
	"testing"

	"github.com/oolang/oolang/internal/token"
)

func TestErrorPrefixPerKind(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{ErrP001, "ParseError"},
		{ErrS001, "semantic error:"},
		{ErrR001, "runtime error:"},
	}
	for _, tt := range tests {
		d := NewError(tt.code, token.Position{}, "boom")
		got := d.Error()
		if len(got) < len(tt.want) || got[:len(tt.want)] != tt.want {
			t.Errorf("code %s: Error() = %q, want prefix %q", tt.code, got, tt.want)
		}
	}
}

func TestErrorIncludesPositionWhenKnown(t *testing.T) {
	d := NewError(ErrS002, token.Position{Line: 3, Column: 7}, "bad thing")
	want := "semantic error: at 3:7: bad thing"
	if d.Error() != want {
		t.Errorf("Error() = %q, want %q", d.Error(), want)
	}
}

func TestErrorOmitsPositionWhenZero(t *testing.T) {
	d := NewError(ErrS006, token.Position{}, "whole-program error")
	want := "semantic error: whole-program error"
	if d.Error() != want {
		t.Errorf("Error() = %q, want %q", d.Error(), want)
	}
}

func TestClassificationHelpers(t *testing.T) {
	parse := NewError(ErrP002, token.Position{}, "x")
	sem := NewError(ErrS003, token.Position{}, "x")
	rt := NewError(ErrR005, token.Position{}, "x")

	if !parse.IsParseError() || parse.IsSemanticError() || parse.IsRuntimeError() {
		t.Errorf("expected ErrP002 to classify only as a parse error")
	}
	if !sem.IsSemanticError() || sem.IsParseError() || sem.IsRuntimeError() {
		t.Errorf("expected ErrS003 to classify only as a semantic error")
	}
	if !rt.IsRuntimeError() || rt.IsParseError() || rt.IsSemanticError() {
		t.Errorf("expected ErrR005 to classify only as a runtime error")
	}
}
