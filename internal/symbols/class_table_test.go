package symbols

import (
	"testing"

	"github.com/oolang/oolang/internal/typesystem"
)

func buildChain(t *testing.T) *ClassTable {
	t.Helper()
	ct := NewClassTable()

	animal := NewClassSymbol("Animal", "")
	animal.AddField("name", typesystem.String_())
	animal.AddMethod("speak", Signature{ReturnType: typesystem.Void_()})

	dog := NewClassSymbol("Dog", "Animal")
	dog.AddField("breed", typesystem.String_())
	dog.AddMethod("speak", Signature{ReturnType: typesystem.Void_(), Virtual: true})

	puppy := NewClassSymbol("Puppy", "Dog")
	puppy.AddField("name", typesystem.Int_()) // shadows Animal's "name" with a different type

	for _, sym := range []*ClassSymbol{animal, dog, puppy} {
		if !ct.Add(sym) {
			t.Fatalf("Add(%s) returned false", sym.Name)
		}
	}
	return ct
}

func TestChainOrderIsDerivedFirst(t *testing.T) {
	ct := buildChain(t)
	chain := ct.Chain("Puppy")
	var names []string
	for _, sym := range chain {
		names = append(names, sym.Name)
	}
	want := []string{"Puppy", "Dog", "Animal"}
	if len(names) != len(want) {
		t.Fatalf("Chain length = %d, want %d (%v)", len(names), len(want), names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Chain[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestMergedFieldsDerivedWins(t *testing.T) {
	ct := buildChain(t)
	merged, order := ct.MergedFields("Puppy")

	if typ, ok := merged["name"]; !ok || !typ.Equal(typesystem.Int_()) {
		t.Errorf("expected Puppy's int name to win over Animal's string name, got %v", typ)
	}
	if _, ok := merged["breed"]; !ok {
		t.Errorf("expected inherited field breed to be present")
	}
	if len(order) != len(merged) {
		t.Errorf("order length %d does not match merged map size %d", len(order), len(merged))
	}
}

func TestIsDerivedFrom(t *testing.T) {
	ct := buildChain(t)
	if !ct.IsDerivedFrom("Puppy", "Animal") {
		t.Errorf("expected Puppy to be derived from Animal")
	}
	if !ct.IsDerivedFrom("Dog", "Dog") {
		t.Errorf("expected a class to be derived from itself")
	}
	if ct.IsDerivedFrom("Animal", "Dog") {
		t.Errorf("expected Animal not to be derived from Dog")
	}
}

func TestFindMethodOwnerStopsAtFirstDeclaringAncestor(t *testing.T) {
	ct := buildChain(t)
	owner, ok := ct.FindMethodOwner("Puppy", "speak")
	if !ok {
		t.Fatalf("expected to find an owner for speak")
	}
	if owner.Name != "Dog" {
		t.Errorf("expected Dog to own speak (hiding should stop before Animal), got %s", owner.Name)
	}
}

func TestSignatureKeySpellsRefWithTrailingAmp(t *testing.T) {
	key := SignatureKey("bark", []typesystem.Type{typesystem.Int_(), typesystem.ClassType("Dog").Ref()})
	want := "bark(int,Dog&)"
	if key != want {
		t.Errorf("SignatureKey = %q, want %q", key, want)
	}
}

func TestAddRejectsDuplicateName(t *testing.T) {
	ct := NewClassTable()
	ct.Add(NewClassSymbol("A", ""))
	if ct.Add(NewClassSymbol("A", "")) {
		t.Errorf("expected Add to reject a duplicate class name")
	}
}

func TestNamesAreSorted(t *testing.T) {
	ct := NewClassTable()
	ct.Add(NewClassSymbol("Zebra", ""))
	ct.Add(NewClassSymbol("Ant", ""))
	names := ct.Names()
	if len(names) != 2 || names[0] != "Ant" || names[1] != "Zebra" {
		t.Errorf("Names() = %v, want sorted [Ant Zebra]", names)
	}
}
