// Package classtable builds the materialized class runtime the executor
// dispatches against: merged field layouts and virtual-dispatch tables
// per class. It is rebuilt from the durable program every time a new
// definition is promoted into it.
package classtable

import (
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// ClassInfo is the per-class runtime record: merged fields, constructor
// list, method overloads, and the two dispatch maps keyed by signature
// key.
type ClassInfo struct {
	Name         string
	BaseName     string
	MergedFields map[string]typesystem.Type
	FieldOrder   []string
	Constructors []symbols.Signature
	Methods      map[string][]symbols.Signature

	// VtableOwner maps a signature key to the class whose implementation
	// this class's view of the method uses.
	VtableOwner map[string]string
	// VtableVirtual maps a signature key to whether the method is
	// virtual for this class (OR'd down the inheritance chain).
	VtableVirtual map[string]bool
}

// FunctionTable is the free-function overload map plus the class runtime.
type FunctionTable struct {
	Functions map[string][]symbols.Signature
	Classes   map[string]*ClassInfo
}

// Build materializes a FunctionTable's Classes from a validated
// symbols.ClassTable. Callers must have already run ct.ValidateInheritance
// and resolved overrides (return-type checks happen in the analyzer) —
// Build only performs the mechanical merge/dispatch construction, which
// never itself fails.
func Build(ct *symbols.ClassTable, functions map[string][]symbols.Signature) *FunctionTable {
	ft := &FunctionTable{
		Functions: functions,
		Classes:   make(map[string]*ClassInfo),
	}
	for _, name := range ct.Names() {
		ft.Classes[name] = buildClassInfo(ct, name)
	}
	return ft
}

func buildClassInfo(ct *symbols.ClassTable, name string) *ClassInfo {
	sym, _ := ct.Get(name)
	merged, order := ct.MergedFields(name)

	info := &ClassInfo{
		Name:          name,
		BaseName:      sym.BaseName,
		MergedFields:  merged,
		FieldOrder:    order,
		Constructors:  sym.Constructors,
		Methods:       sym.Methods,
		VtableOwner:   make(map[string]string),
		VtableVirtual: make(map[string]bool),
	}

	// Walk the chain from the ultimate base down to this class. For each
	// class in order, OR the key's existing virtual bit with the
	// method's own flag, and set the owner to the most-derived class
	// seen so far that declares the key.
	for _, occ := range ct.AllMethodSignatures(name) {
		key := symbols.SignatureKey(occ.MethodName, occ.Sig.Params)
		info.VtableVirtual[key] = info.VtableVirtual[key] || occ.Sig.Virtual
		info.VtableOwner[key] = occ.DeclaringClass
	}

	return info
}

// LookupVirtual reports whether key is virtual for this class. Every
// reachable key has an entry, so a missing key reports false rather
// than panicking.
func (ci *ClassInfo) LookupVirtual(key string) bool {
	return ci.VtableVirtual[key]
}

// LookupOwner returns the class that provides the implementation this
// class's view of key uses.
func (ci *ClassInfo) LookupOwner(key string) (string, bool) {
	owner, ok := ci.VtableOwner[key]
	return owner, ok
}
