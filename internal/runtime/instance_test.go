package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oolang/oolang/internal/classtable"
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// buildAnimalDogTable builds a minimal two-class FunctionTable (Animal,
// Dog : public Animal) for exercising CopyAssign/Default without running
// the full lex/parse/analyze pipeline.
func buildAnimalDogTable(t *testing.T) *classtable.FunctionTable {
	t.Helper()
	ct := symbols.NewClassTable()

	animal := symbols.NewClassSymbol("Animal", "")
	animal.AddField("legs", typesystem.Int_())
	require.True(t, ct.Add(animal))

	dog := symbols.NewClassSymbol("Dog", "Animal")
	dog.AddField("tailLength", typesystem.Int_())
	require.True(t, ct.Add(dog))

	return classtable.Build(ct, map[string][]symbols.Signature{})
}

func TestCopyAssignSameClassMutatesInPlace(t *testing.T) {
	ft := buildAnimalDogTable(t)
	dst := NewInstance("Dog")
	dst.Fields["tailLength"] = &Int{Value: 1}
	dst.Fields["legs"] = &Int{Value: 2}
	originalID := dst.ID

	src := NewInstance("Dog")
	src.Fields["tailLength"] = &Int{Value: 9}
	src.Fields["legs"] = &Int{Value: 4}

	CopyAssign(dst, "Dog", src, ft)

	assert.Equal(t, originalID, dst.ID, "CopyAssign must preserve dst's identity for a same-class copy")
	assert.Equal(t, int64(9), dst.Fields["tailLength"].(*Int).Value)
	assert.Equal(t, int64(4), dst.Fields["legs"].(*Int).Value)
}

func TestCopyAssignSlicesWhenDynamicClassIsMoreDerived(t *testing.T) {
	ft := buildAnimalDogTable(t)
	dst := NewInstance("Animal")
	dst.Fields["legs"] = &Int{Value: 0}
	originalID := dst.ID

	src := NewInstance("Dog")
	src.Fields["legs"] = &Int{Value: 4}
	src.Fields["tailLength"] = &Int{Value: 7}

	CopyAssign(dst, "Animal", src, ft)

	assert.Equal(t, originalID, dst.ID, "slicing must still preserve dst's own handle identity")
	assert.Equal(t, "Animal", dst.Class, "dst's dynamic class must narrow to the static class")
	assert.Equal(t, int64(4), dst.Fields["legs"].(*Int).Value)
	_, hasTail := dst.Fields["tailLength"]
	assert.False(t, hasTail, "fields unique to the wider dynamic class must be dropped after slicing")
}

func TestCopyAssignDeepCopiesNestedInstances(t *testing.T) {
	ft := buildAnimalDogTable(t)
	dst := NewInstance("Animal")
	src := NewInstance("Animal")
	nested := NewInstance("Dog")
	nested.Fields["legs"] = &Int{Value: 4}
	src.Fields["legs"] = &Int{Value: 1}
	src.Fields["pet"] = nested // not a declared field, but exercises cloneField's recursion

	CopyAssign(dst, "Animal", src, ft)

	clonedPet, ok := dst.Fields["pet"].(*Instance)
	require.True(t, ok)
	assert.NotSame(t, nested, clonedPet, "a nested Instance field must be deep-cloned, not aliased")
	assert.NotEqual(t, nested.ID, clonedPet.ID, "a deep clone must get its own identity")
}

func TestCloneFreshBuildsIndependentInstance(t *testing.T) {
	ft := buildAnimalDogTable(t)
	src := NewInstance("Dog")
	src.Fields["legs"] = &Int{Value: 4}
	src.Fields["tailLength"] = &Int{Value: 7}

	fresh := CloneFresh("Dog", src, ft)
	assert.NotSame(t, src, fresh)
	assert.NotEqual(t, src.ID, fresh.ID)
	assert.Equal(t, int64(4), fresh.Fields["legs"].(*Int).Value)

	// Mutating the source afterward must not be observed through fresh.
	src.Fields["legs"] = &Int{Value: 99}
	assert.Equal(t, int64(4), fresh.Fields["legs"].(*Int).Value)
}

func TestDefaultInstanceRecursivelyZeroes(t *testing.T) {
	ft := buildAnimalDogTable(t)
	inst := DefaultInstance("Dog", ft)
	assert.Equal(t, int64(0), inst.Fields["legs"].(*Int).Value)
	assert.Equal(t, int64(0), inst.Fields["tailLength"].(*Int).Value)
}

func TestDefaultScalarsPerKind(t *testing.T) {
	ft := buildAnimalDogTable(t)
	assert.Equal(t, false, Default(typesystem.Bool_(), ft).(*Bool).Value)
	assert.Equal(t, int64(0), Default(typesystem.Int_(), ft).(*Int).Value)
	assert.Equal(t, byte(0), Default(typesystem.Char_(), ft).(*Char).Value)
	assert.Equal(t, "", Default(typesystem.String_(), ft).(*String).Value)
}
