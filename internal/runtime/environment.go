package runtime

import (
	"sync"

	"github.com/oolang/oolang/internal/classtable"
)

// RefTarget is the indirection a reference slot binds to: some other
// storage location whose Get/Set re-resolve every time rather than
// snapshotting a value, so writes through an alias are always visible at
// the lvalue it was bound to.
// StaticClassName is "" for a non-Class target and otherwise the static
// type the reference itself was declared with. A Class assignment through
// a FieldRef slices to this width; one through an EnvRef slices to the
// target slot's own static class instead (see AssignClass).
type RefTarget interface {
	Get() Object
	Set(Object)
	StaticClassName() string
}

// EnvRef aliases a named slot in some Environment — what a by-reference
// parameter binds to when its argument was a plain variable.
type EnvRef struct {
	Env         *Environment
	Name        string
	staticClass string
}

// NewEnvRef builds an EnvRef whose static class (for Class-typed targets)
// is staticClass; pass "" for a non-Class reference.
func NewEnvRef(env *Environment, name, staticClass string) EnvRef {
	return EnvRef{Env: env, Name: name, staticClass: staticClass}
}

func (r EnvRef) Get() Object {
	v, _ := r.Env.Get(r.Name)
	return v
}
func (r EnvRef) Set(v Object)             { r.Env.Assign(r.Name, v) }
func (r EnvRef) StaticClassName() string { return r.staticClass }

// FieldRef aliases one field of a live Instance: what a method or
// constructor invocation binds every merged field of the receiver to
// inside the callee frame, and also what
// a by-reference parameter binds to when its argument was `expr.field`
// rather than a bare name.
type FieldRef struct {
	Inst        *Instance
	Field       string
	staticClass string
}

// NewFieldRef builds a FieldRef whose static class (for Class-typed
// fields) is staticClass; pass "" for a non-Class field.
func NewFieldRef(inst *Instance, field, staticClass string) FieldRef {
	return FieldRef{Inst: inst, Field: field, staticClass: staticClass}
}

func (r FieldRef) Get() Object             { return r.Inst.Fields[r.Field] }
func (r FieldRef) Set(v Object)            { r.Inst.Fields[r.Field] = v }
func (r FieldRef) StaticClassName() string { return r.staticClass }

// slot is one binding in an Environment: either a plain value or a
// reference redirecting to some other storage. staticClass is non-empty
// only for a value slot whose declared type is a Class — it is the width
// CopyAssign slices to on a later plain assignment into this slot.
type slot struct {
	value       Object
	ref         RefTarget
	staticClass string
}

// Environment is a parent-chained lexical scope of slots: no name may be
// redeclared in a single scope, and a reference slot's reads and writes
// redirect to its target lvalue. Backed by a mutex-guarded map plus an
// outer pointer, carrying reference slots and per-slot static-class
// bookkeeping alongside plain values.
type Environment struct {
	mu     sync.RWMutex
	slots  map[string]*slot
	parent *Environment
}

// NewEnvironment creates a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{slots: make(map[string]*slot)}
}

// NewChildEnvironment creates an environment nested inside parent.
func NewChildEnvironment(parent *Environment) *Environment {
	e := NewEnvironment()
	e.parent = parent
	return e
}

// Declare binds name to a fresh value slot. staticClass is the class name
// of the declared type when it is a Class type, else "". Returns false if
// name is already bound here (invariant 1); the analyzer has already
// rejected this for every reachable program, so at runtime this is only a
// sanity check.
func (e *Environment) Declare(name string, val Object, staticClass string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.slots[name]; exists {
		return false
	}
	e.slots[name] = &slot{value: val, staticClass: staticClass}
	return true
}

// DeclareRef binds name to a reference slot targeting ref.
func (e *Environment) DeclareRef(name string, ref RefTarget) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.slots[name]; exists {
		return false
	}
	e.slots[name] = &slot{ref: ref}
	return true
}

// Get resolves name, walking the parent chain, following a reference
// slot's indirection transparently.
func (e *Environment) Get(name string) (Object, bool) {
	e.mu.RLock()
	s, ok := e.slots[name]
	e.mu.RUnlock()
	if !ok {
		if e.parent != nil {
			return e.parent.Get(name)
		}
		return nil, false
	}
	if s.ref != nil {
		return s.ref.Get(), true
	}
	return s.value, true
}

// Assign overwrites the slot bound to name with val, walking the parent
// chain to find it, redirecting through a reference slot's target when
// present. Used for non-Class values, which are always replaced wholesale
// rather than mutated in place; Class-typed targets go through
// AssignClass instead, which preserves handle identity.
func (e *Environment) Assign(name string, val Object) bool {
	e.mu.Lock()
	s, ok := e.slots[name]
	e.mu.Unlock()
	if !ok {
		if e.parent != nil {
			return e.parent.Assign(name, val)
		}
		return false
	}
	if s.ref != nil {
		s.ref.Set(val)
		return true
	}
	e.mu.Lock()
	s.value = val
	e.mu.Unlock()
	return true
}

// AssignClass writes src into whatever storage name is bound to, using
// the value/reference/slicing discipline of CopyAssign: a plain value slot's existing Instance is mutated in
// place; a reference slot redirects to its target. Through an EnvRef the
// target variable's own slot governs, so the value is sliced to that
// slot's static class; through a FieldRef it is sliced to the FieldRef's
// static class.
func (e *Environment) AssignClass(name string, src *Instance, ft *classtable.FunctionTable) bool {
	e.mu.RLock()
	s, ok := e.slots[name]
	e.mu.RUnlock()
	if !ok {
		if e.parent != nil {
			return e.parent.AssignClass(name, src, ft)
		}
		return false
	}
	if s.ref != nil {
		return assignClassThroughRef(s.ref, src, ft)
	}
	dst, _ := s.value.(*Instance)
	CopyAssign(dst, s.staticClass, src, ft)
	return true
}

func assignClassThroughRef(ref RefTarget, src *Instance, ft *classtable.FunctionTable) bool {
	switch r := ref.(type) {
	case EnvRef:
		return r.Env.AssignClass(r.Name, src, ft)
	case FieldRef:
		dst, _ := r.Inst.Fields[r.Field].(*Instance)
		CopyAssign(dst, r.staticClass, src, ft)
		return true
	default:
		return false
	}
}

// InstanceAt returns the live *Instance bound to name, resolving through
// any reference indirection. Callers only ever call this once the
// analyzer has confirmed name is Class-typed.
func (e *Environment) InstanceAt(name string) *Instance {
	v, ok := e.Get(name)
	if !ok {
		return nil
	}
	inst, _ := v.(*Instance)
	return inst
}
