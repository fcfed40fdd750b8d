package runtime

import "github.com/oolang/oolang/internal/typesystem"

// ReturnSignal wraps a value being returned out of a function, method, or
// constructor body. Control flow checks for this wrapper after executing
// each statement and, on seeing one, stops walking the current block and
// propagates it upward unchanged rather than unwinding via a host-language
// exception.
// Value is nil for a bare `return;` out of a void-returning body.
type ReturnSignal struct {
	Value Object
}

func (r *ReturnSignal) Type() ObjectType { return ReturnObj }

func (r *ReturnSignal) Inspect() string {
	if r.Value == nil {
		return "<void return>"
	}
	return r.Value.Inspect()
}

func (r *ReturnSignal) RuntimeType() typesystem.Type {
	if r.Value == nil {
		return typesystem.Void_()
	}
	return r.Value.RuntimeType()
}
