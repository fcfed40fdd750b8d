package symbols

import (
	"testing"

	"github.com/oolang/oolang/internal/typesystem"
)

func TestValidateInheritanceDetectsCycle(t *testing.T) {
	ct := NewClassTable()
	ct.Add(NewClassSymbol("A", "B"))
	ct.Add(NewClassSymbol("B", "A"))

	errs := ct.ValidateInheritance()
	if len(errs) == 0 {
		t.Fatalf("expected a cycle error, got none")
	}
}

func TestValidateInheritanceUndeclaredBase(t *testing.T) {
	ct := NewClassTable()
	ct.Add(NewClassSymbol("A", "Ghost"))

	errs := ct.ValidateInheritance()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error, got %d: %v", len(errs), errs)
	}
}

func TestValidateInheritanceRequiresBaseDefaultConstructor(t *testing.T) {
	ct := NewClassTable()
	base := NewClassSymbol("Base", "")
	base.Constructors = []Signature{{Params: []typesystem.Type{typesystem.Int_()}}}
	ct.Add(base)
	ct.Add(NewClassSymbol("Derived", "Base"))

	errs := ct.ValidateInheritance()
	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 error (no default ctor), got %d: %v", len(errs), errs)
	}
}

func TestValidateInheritanceAcceptsValidTree(t *testing.T) {
	ct := NewClassTable()
	ct.Add(NewClassSymbol("Animal", ""))
	ct.Add(NewClassSymbol("Dog", "Animal"))
	ct.Add(NewClassSymbol("Puppy", "Dog"))

	if errs := ct.ValidateInheritance(); len(errs) != 0 {
		t.Errorf("expected no errors, got %v", errs)
	}
}
