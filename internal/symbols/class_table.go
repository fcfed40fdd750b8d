package symbols

import (
	"fmt"
	"sort"

	"github.com/oolang/oolang/internal/typesystem"
	"golang.org/x/exp/slices"
)

// ClassTable maps every declared class name to its ClassSymbol, plus
// derived chain-lookup and merged-field views.
type ClassTable struct {
	classes map[string]*ClassSymbol
	order   []string // declaration order, kept for deterministic reporting
}

// NewClassTable returns an empty ClassTable.
func NewClassTable() *ClassTable {
	return &ClassTable{classes: make(map[string]*ClassSymbol)}
}

// Add registers sym, keyed by its name. Returns false if the name is
// already taken (duplicate class declarations are a semantic error at
// the call site).
func (ct *ClassTable) Add(sym *ClassSymbol) bool {
	if _, exists := ct.classes[sym.Name]; exists {
		return false
	}
	ct.classes[sym.Name] = sym
	ct.order = append(ct.order, sym.Name)
	return true
}

// Get looks up a class symbol by name.
func (ct *ClassTable) Get(name string) (*ClassSymbol, bool) {
	sym, ok := ct.classes[name]
	return sym, ok
}

// Has reports whether name is a known class.
func (ct *ClassTable) Has(name string) bool {
	_, ok := ct.classes[name]
	return ok
}

// Names returns every declared class name in deterministic (sorted)
// order, used by classtable.Build, the analyzer and the CLI's `check`
// subcommand.
func (ct *ClassTable) Names() []string {
	names := slices.Clone(ct.order)
	sort.Strings(names)
	return names
}

// Chain returns the inheritance chain from name up to its ultimate base,
// name first. It assumes the table has already been validated acyclic
// (see ValidateInheritance); a cycle would loop forever otherwise.
func (ct *ClassTable) Chain(name string) []*ClassSymbol {
	var chain []*ClassSymbol
	cur := name
	for cur != "" {
		sym, ok := ct.classes[cur]
		if !ok {
			break
		}
		chain = append(chain, sym)
		cur = sym.BaseName
	}
	return chain
}

// MergedFields walks the chain upward from name to its ultimate base,
// adopting each field's type the first time its name is seen walking
// upward from name — i.e. derived-wins. Returns the merged map plus a
// deterministic field-name order (derived-first declaration order).
func (ct *ClassTable) MergedFields(name string) (map[string]typesystem.Type, []string) {
	merged := make(map[string]typesystem.Type)
	var order []string
	for _, sym := range ct.Chain(name) {
		for _, fname := range sym.FieldOrder {
			if _, seen := merged[fname]; seen {
				continue
			}
			merged[fname] = sym.OwnFields[fname]
			order = append(order, fname)
		}
	}
	return merged, order
}

// FindField resolves a field name through the inheritance chain starting
// at name, returning the type as seen by the most-derived declaration.
func (ct *ClassTable) FindField(name, field string) (typesystem.Type, bool) {
	merged, _ := ct.MergedFields(name)
	t, ok := merged[field]
	return t, ok
}

// IsDerivedFrom reports whether sub is class equal to, or a (possibly
// indirect) descendant of, base.
func (ct *ClassTable) IsDerivedFrom(sub, base string) bool {
	for _, sym := range ct.Chain(sub) {
		if sym.Name == base {
			return true
		}
	}
	return false
}

// FindMethodOwner walks the static inheritance chain starting at
// className and returns the first class in the chain that declares any
// overload of methodName, stopping there — not searching further up is
// intentional and is what enables hiding.
func (ct *ClassTable) FindMethodOwner(className, methodName string) (*ClassSymbol, bool) {
	for _, sym := range ct.Chain(className) {
		if _, ok := sym.Methods[methodName]; ok {
			return sym, true
		}
	}
	return nil, false
}

// AllMethodSignatures returns every (declaringClass, methodName, sig)
// reachable by walking className's entire chain, used by class-runtime
// construction to build vtables over every ancestor.
func (ct *ClassTable) AllMethodSignatures(className string) []MethodOccurrence {
	var occurrences []MethodOccurrence
	chain := ct.Chain(className)
	// Walk from the ultimate base down to className so vtable_virtual's
	// OR-down-the-chain construction sees ancestors first.
	for i := len(chain) - 1; i >= 0; i-- {
		sym := chain[i]
		for mname, sigs := range sym.Methods {
			for _, sig := range sigs {
				occurrences = append(occurrences, MethodOccurrence{
					DeclaringClass: sym.Name,
					MethodName:     mname,
					Sig:            sig,
				})
			}
		}
	}
	return occurrences
}

// MethodOccurrence is one method declaration found while walking a chain.
type MethodOccurrence struct {
	DeclaringClass string
	MethodName     string
	Sig            Signature
}

// SignatureKey renders the canonical textual encoding of a method name and
// its parameter-type list used as the vtable index" with reference types spelled with a
// trailing &", glossary "Signature key").
func SignatureKey(methodName string, params []typesystem.Type) string {
	s := methodName + "("
	for i, p := range params {
		if i > 0 {
			s += ","
		}
		s += p.SignatureTypeString()
	}
	return s + ")"
}

func (c *ClassSymbol) String() string {
	return fmt.Sprintf("class %s : %s", c.Name, c.BaseName)
}
