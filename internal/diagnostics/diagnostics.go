// Package diagnostics defines the coded, positioned errors the three
// pipeline stages raise: parse errors, semantic errors, and
// runtime errors, each with its own message prefix and propagation
// policy (diagnostics.ErrP001, diagnostics.NewError(code, pos, format, args...)).
package diagnostics

import (
	"fmt"

	"github.com/oolang/oolang/internal/token"
)

// Code identifies the category and specific rule a Diagnostic reports.
type Code string

// Parse-error codes.
const (
	ErrP001 Code = "P001" // unexpected token
	ErrP002 Code = "P002" // unterminated literal
	ErrP003 Code = "P003" // malformed declaration
)

// Semantic-error codes.
const (
	ErrS001 Code = "S001" // undeclared identifier
	ErrS002 Code = "S002" // type mismatch
	ErrS003 Code = "S003" // ambiguous overload
	ErrS004 Code = "S004" // no viable overload
	ErrS005 Code = "S005" // duplicate declaration in scope
	ErrS006 Code = "S006" // invalid inheritance
	ErrS007 Code = "S007" // invalid override
	ErrS008 Code = "S008" // not an lvalue
	ErrS009 Code = "S009" // invalid main signature
)

// Runtime-error codes.
const (
	ErrR001 Code = "R001" // null object / missing field
	ErrR002 Code = "R002" // type mismatch in builtin argument
	ErrR003 Code = "R003" // unknown variable or method at dispatch time
	ErrR004 Code = "R004" // ambiguous or missing overload at call time
	ErrR005 Code = "R005" // divide by zero
)

func (c Code) kind() string {
	switch c[0] {
	case 'P':
		return "parse"
	case 'S':
		return "semantic"
	default:
		return "runtime"
	}
}

// Diagnostic is a single positioned, coded error.
type Diagnostic struct {
	Code    Code
	Pos     token.Position
	Message string
}

// NewError builds a Diagnostic. pos may be the zero Position when no
// location is available (e.g. a whole-program inheritance error).
func NewError(code Code, pos token.Position, format string, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: code, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Error renders "ParseError" for parse errors, "semantic error:" for
// semantic errors, and "runtime error:" for runtime errors, each
// followed by line:col (when known) and the message.
func (d *Diagnostic) Error() string {
	var prefix string
	switch d.Code.kind() {
	case "parse":
		prefix = "ParseError"
	case "semantic":
		prefix = "semantic error:"
	default:
		prefix = "runtime error:"
	}
	if d.Pos.Line == 0 {
		return fmt.Sprintf("%s %s", prefix, d.Message)
	}
	return fmt.Sprintf("%s at %s: %s", prefix, d.Pos, d.Message)
}

// IsParseError, IsSemanticError, IsRuntimeError classify a Diagnostic for
// callers that need to branch on propagation policy.
func (d *Diagnostic) IsParseError() bool    { return d.Code.kind() == "parse" }
func (d *Diagnostic) IsSemanticError() bool { return d.Code.kind() == "semantic" }
func (d *Diagnostic) IsRuntimeError() bool  { return d.Code.kind() == "runtime" }
