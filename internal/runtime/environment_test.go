package runtime

import "testing"

func TestEnvironmentLookupWalksParentChain(t *testing.T) {
	parent := NewEnvironment()
	parent.Declare("x", &Int{Value: 1}, "")
	child := NewChildEnvironment(parent)

	v, ok := child.Get("x")
	if !ok {
		t.Fatalf("expected child to find x declared in parent")
	}
	if v.(*Int).Value != 1 {
		t.Errorf("got %v, want 1", v.(*Int).Value)
	}
}

func TestDeclareRejectsRedeclarationInSameScope(t *testing.T) {
	env := NewEnvironment()
	if !env.Declare("x", &Int{}, "") {
		t.Fatalf("expected first declare to succeed")
	}
	if env.Declare("x", &Int{}, "") {
		t.Errorf("expected redeclaring x in the same scope to fail")
	}
}

func TestAssignWritesThroughParentChain(t *testing.T) {
	parent := NewEnvironment()
	parent.Declare("x", &Int{Value: 1}, "")
	child := NewChildEnvironment(parent)

	if !child.Assign("x", &Int{Value: 5}) {
		t.Fatalf("expected Assign to find x in the parent scope")
	}
	v, _ := parent.Get("x")
	if v.(*Int).Value != 5 {
		t.Errorf("expected parent's x to be updated to 5, got %v", v.(*Int).Value)
	}
}

func TestEnvRefRedirectsReadsAndWrites(t *testing.T) {
	target := NewEnvironment()
	target.Declare("k", &Int{Value: 5}, "")

	aliasScope := NewEnvironment()
	aliasScope.DeclareRef("r", NewEnvRef(target, "k", ""))

	v, ok := aliasScope.Get("r")
	if !ok || v.(*Int).Value != 5 {
		t.Fatalf("expected reading r to resolve through to k=5, got %v ok=%v", v, ok)
	}

	aliasScope.Assign("r", &Int{Value: 11})
	v, _ = target.Get("k")
	if v.(*Int).Value != 11 {
		t.Errorf("expected writing through r to update k, got %v", v.(*Int).Value)
	}
}

func TestFieldRefRedirectsToInstanceField(t *testing.T) {
	inst := NewInstance("Point")
	inst.Fields["x"] = &Int{Value: 3}

	env := NewEnvironment()
	env.DeclareRef("px", NewFieldRef(inst, "x", ""))

	v, _ := env.Get("px")
	if v.(*Int).Value != 3 {
		t.Fatalf("expected px to read through to field x=3, got %v", v.(*Int).Value)
	}

	env.Assign("px", &Int{Value: 42})
	if inst.Fields["x"].(*Int).Value != 42 {
		t.Errorf("expected writing through px to update inst.Fields[x], got %v", inst.Fields["x"].(*Int).Value)
	}
}

func TestInstanceAtResolvesThroughReference(t *testing.T) {
	target := NewEnvironment()
	obj := NewInstance("Dog")
	target.Declare("d", obj, "Dog")

	aliasScope := NewEnvironment()
	aliasScope.DeclareRef("ref", NewEnvRef(target, "d", "Dog"))

	got := aliasScope.InstanceAt("ref")
	if got != obj {
		t.Errorf("expected InstanceAt to resolve through the reference to the same *Instance")
	}
}
