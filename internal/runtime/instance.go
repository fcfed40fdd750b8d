package runtime

import (
	"github.com/google/uuid"
	"github.com/oolang/oolang/internal/classtable"
	"github.com/oolang/oolang/internal/typesystem"
)

// Instance is a live class object: a dynamic class name and its merged
// field values. It is always heap-allocated and referred to by pointer —
// every Class-typed variable holds one from the moment it is declared
// (default-constructed if no initializer is given), never a null
// reference. ID exists purely for
// diagnostic/inspection purposes; dispatch and assignment never consult
// it, only the Class field and the pointer identity itself.
type Instance struct {
	ID     uuid.UUID
	Class  string
	Fields map[string]Object
}

func (o *Instance) Type() ObjectType             { return InstanceObj }
func (o *Instance) RuntimeType() typesystem.Type { return typesystem.ClassType(o.Class) }

func (o *Instance) Inspect() string {
	return "<" + o.Class + " " + o.ID.String()[:8] + ">"
}

// NewInstance allocates a fresh, empty Instance of the given dynamic
// class. Callers fill Fields via Default or CopyAssign immediately after.
func NewInstance(class string) *Instance {
	return &Instance{ID: uuid.New(), Class: class, Fields: make(map[string]Object)}
}

// CopyAssign implements the value/reference/slicing assignment discipline
// that is the executor's central invariant:
//
//   - If src's dynamic class is identical to dst's current dynamic class,
//     every field is deep-copied from src into dst in place: dst's own
//     identity (its pointer, its ID) never changes, only its field
//     contents, so anything already holding a reference to dst observes
//     the new values.
//   - Otherwise src is strictly more derived than dst's static class
//     (the analyzer already rejected the reverse), so dst is sliced down:
//     only the fields dstStaticClass's own merged layout names are kept,
//     copied from src, and dst's dynamic class is narrowed to
//     dstStaticClass. Fields and methods unique to src's wider dynamic
//     class are dropped, matching "assigning a derived value into a
//     base-typed slot slices it".
func CopyAssign(dst *Instance, dstStaticClass string, src *Instance, ft *classtable.FunctionTable) {
	if src.Class == dst.Class {
		for field, val := range src.Fields {
			dst.Fields[field] = cloneField(val)
		}
		return
	}

	info := ft.Classes[dstStaticClass]
	sliced := make(map[string]Object, len(info.FieldOrder))
	for _, field := range info.FieldOrder {
		sliced[field] = cloneField(src.Fields[field])
	}
	dst.Fields = sliced
	dst.Class = dstStaticClass
}

// cloneField returns an independently-owned copy of a field value as it
// is carried into a new owner. Primitive Objects are already immutable
// (every operator/literal allocates a fresh one), so they are shared
// as-is. A nested Instance is deep-cloned recursively so that two
// sibling objects holding the same class-typed field never alias the
// same nested handle — the value-semantics discipline applies at every
// nesting depth, not just the top field.
func cloneField(val Object) Object {
	inst, ok := val.(*Instance)
	if !ok || inst == nil {
		return val
	}
	clone := NewInstance(inst.Class)
	for field, v := range inst.Fields {
		clone.Fields[field] = cloneField(v)
	}
	return clone
}

// CloneFresh builds a brand-new Instance holding an independent copy of
// src's fields under dstStaticClass's slice of them — used when a
// Class-typed value is materialized into a location that does not yet
// own a live Instance (e.g. a freshly bound by-value parameter, or a
// constructor argument), where there is no existing handle identity to
// preserve.
func CloneFresh(dstStaticClass string, src *Instance, ft *classtable.FunctionTable) *Instance {
	dst := NewInstance(dstStaticClass)
	CopyAssign(dst, dstStaticClass, src, ft)
	return dst
}
