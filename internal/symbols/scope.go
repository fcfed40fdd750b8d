package symbols

import "github.com/oolang/oolang/internal/typesystem"

// Scope is the analyzer's lexical scope: a parent pointer, a variable
// map, a function overload map, and the class-name set visible from here
//. No name may be redefined
// within a single scope (invariant 1).
type Scope struct {
	parent    *Scope
	vars      map[string]typesystem.Type
	functions map[string][]Signature
	classes   map[string]bool
}

// NewScope creates a root scope (no parent).
func NewScope() *Scope {
	return &Scope{
		vars:      make(map[string]typesystem.Type),
		functions: make(map[string][]Signature),
		classes:   make(map[string]bool),
	}
}

// NewChildScope creates a scope nested inside parent.
func NewChildScope(parent *Scope) *Scope {
	s := NewScope()
	s.parent = parent
	return s
}

// DeclareVar adds name with type t to this scope. Returns false if name
// is already declared *in this scope* (shadowing an outer scope's name is
// fine; redefining within the same scope is not).
func (s *Scope) DeclareVar(name string, t typesystem.Type) bool {
	if _, exists := s.vars[name]; exists {
		return false
	}
	s.vars[name] = t
	return true
}

// LookupVar walks the parent chain for name.
func (s *Scope) LookupVar(name string) (typesystem.Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t, true
		}
	}
	return typesystem.Type{}, false
}

// DeclareFunc appends an overload of name to this scope's function map.
func (s *Scope) DeclareFunc(name string, sig Signature) {
	s.functions[name] = append(s.functions[name], sig)
}

// LookupFuncOverloads walks the parent chain, returning the first scope's
// overload set found for name (functions are declared at top level in
// oolang, so in practice this is always the root/global scope).
func (s *Scope) LookupFuncOverloads(name string) ([]Signature, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if sigs, ok := cur.functions[name]; ok {
			return sigs, true
		}
	}
	return nil, false
}

// DeclareClass marks name as a known class name in this scope.
func (s *Scope) DeclareClass(name string) {
	s.classes[name] = true
}

// IsClassName walks the parent chain checking whether name was declared
// as a class.
func (s *Scope) IsClassName(name string) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.classes[name] {
			return true
		}
	}
	return false
}

// Parent exposes the enclosing scope; the executor's Environment has this
// same parent-chain shape at runtime.
func (s *Scope) Parent() *Scope { return s.parent }

// VarNames lists every name declared directly in this scope (not walking
// parents) together with its type — used by the interactive front end's
// `:handles` inspection command to enumerate the session's live
// variables.
func (s *Scope) VarNames() map[string]typesystem.Type {
	out := make(map[string]typesystem.Type, len(s.vars))
	for name, t := range s.vars {
		out[name] = t
	}
	return out
}

// FuncNames lists every function name with at least one overload
// declared directly in this scope.
func (s *Scope) FuncNames() []string {
	out := make([]string, 0, len(s.functions))
	for name := range s.functions {
		out = append(out, name)
	}
	return out
}
