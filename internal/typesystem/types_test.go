package typesystem

import "testing"

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"int", Int_(), "int"},
		{"bool ref", Bool_().Ref(), "bool&"},
		{"class", ClassType("Animal"), "Animal"},
		{"class ref", ClassType("Animal").Ref(), "Animal&"},
		{"void", Void_(), "void"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBaseStripsRef(t *testing.T) {
	r := Int_().Ref()
	if !r.IsRef {
		t.Fatalf("Ref() did not set IsRef")
	}
	b := r.Base()
	if b.IsRef {
		t.Errorf("Base() left IsRef set")
	}
	if b.Kind != Int {
		t.Errorf("Base() changed Kind, got %v", b.Kind)
	}
}

func TestSameBaseIgnoresRef(t *testing.T) {
	a := ClassType("Dog")
	b := ClassType("Dog").Ref()
	if !a.SameBase(b) {
		t.Errorf("expected SameBase to ignore IsRef")
	}
	c := ClassType("Cat")
	if a.SameBase(c) {
		t.Errorf("expected different class names to differ")
	}
}

func TestEqualIsStructural(t *testing.T) {
	a := Int_()
	b := Int_()
	if !a.Equal(b) {
		t.Errorf("expected two Int_() values to be equal")
	}
	if a.Equal(a.Ref()) {
		t.Errorf("expected ref and non-ref to differ")
	}
	if ClassType("A").Equal(ClassType("B")) {
		t.Errorf("expected different class names to differ")
	}
}

func TestIsPrimitiveValue(t *testing.T) {
	for _, typ := range []Type{Bool_(), Int_(), Char_(), String_()} {
		if !typ.IsPrimitiveValue() {
			t.Errorf("%s: expected IsPrimitiveValue true", typ)
		}
	}
	if Void_().IsPrimitiveValue() {
		t.Errorf("void: expected IsPrimitiveValue false")
	}
	if ClassType("Foo").IsPrimitiveValue() {
		t.Errorf("class: expected IsPrimitiveValue false")
	}
}

func TestHasScalarDefault(t *testing.T) {
	if Class.HasScalarDefault() {
		t.Errorf("Class should not have a scalar default")
	}
	if !Int.HasScalarDefault() {
		t.Errorf("Int should have a scalar default")
	}
}
