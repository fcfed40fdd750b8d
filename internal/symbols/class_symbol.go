// Package symbols holds the semantic tables built from the AST before
// execution: per-class symbol information, the class table (with its
// chain-lookup and merged-field views), and lexical scopes.
package symbols

import (
	"github.com/oolang/oolang/internal/ast"
	"github.com/oolang/oolang/internal/typesystem"
)

// Signature is a parameter-type vector used for constructors, functions
// and methods, carrying a pointer back to whichever declaration node
// produced it so the executor can run its body without a second lookup.
// Exactly one of FuncDecl/CtorDecl/MethodDecl is set, depending on what
// this overload belongs to.
type Signature struct {
	ReturnType typesystem.Type
	Params     []typesystem.Type
	Virtual    bool

	FuncDecl   *ast.FunctionDef
	CtorDecl   *ast.ConstructorDef
	MethodDecl *ast.MethodDef
}

// ClassSymbol is the per-class semantic record built at class-table
// construction time: name, base name, own fields, own
// constructors, own methods. "Own" means declared directly on this
// class, before chain merging.
type ClassSymbol struct {
	Name         string
	BaseName     string // "" for a root class
	OwnFields    map[string]typesystem.Type
	FieldOrder   []string // declaration order, for deterministic default-init
	Constructors []Signature
	Methods      map[string][]Signature // method name -> overload set
}

// NewClassSymbol returns an empty ClassSymbol for name/base.
func NewClassSymbol(name, base string) *ClassSymbol {
	return &ClassSymbol{
		Name:      name,
		BaseName:  base,
		OwnFields: make(map[string]typesystem.Type),
		Methods:   make(map[string][]Signature),
	}
}

// AddField records a field declared directly in this class. Returns false
// if the name is already declared on this class (field redefinition
// within the same class is forbidden).
func (c *ClassSymbol) AddField(name string, t typesystem.Type) bool {
	if _, exists := c.OwnFields[name]; exists {
		return false
	}
	c.OwnFields[name] = t
	c.FieldOrder = append(c.FieldOrder, name)
	return true
}

// AddMethod appends a method signature to the named overload set.
func (c *ClassSymbol) AddMethod(name string, sig Signature) {
	c.Methods[name] = append(c.Methods[name], sig)
}

// HasDefaultConstructor reports whether c declares a parameterless
// constructor. A class with zero declared constructors is treated as
// having a synthetic default constructor by the caller.
func (c *ClassSymbol) HasDefaultConstructor() bool {
	if len(c.Constructors) == 0 {
		return true
	}
	for _, ctor := range c.Constructors {
		if len(ctor.Params) == 0 {
			return true
		}
	}
	return false
}
