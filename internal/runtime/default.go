package runtime

import (
	"github.com/oolang/oolang/internal/classtable"
	"github.com/oolang/oolang/internal/typesystem"
)

// Default builds the zero value for t: a scalar default for every
// primitive kind, and a recursively default-constructed Instance for a
// Class kind.
func Default(t typesystem.Type, ft *classtable.FunctionTable) Object {
	switch t.Kind {
	case typesystem.Bool:
		return &Bool{}
	case typesystem.Int:
		return &Int{}
	case typesystem.Char:
		return &Char{}
	case typesystem.String:
		return &String{}
	case typesystem.Class:
		return DefaultInstance(t.ClassName, ft)
	default:
		return &Int{}
	}
}

// DefaultInstance recursively default-constructs every merged field of
// className, in declaration order.
func DefaultInstance(className string, ft *classtable.FunctionTable) *Instance {
	info := ft.Classes[className]
	inst := NewInstance(className)
	for _, field := range info.FieldOrder {
		inst.Fields[field] = Default(info.MergedFields[field], ft)
	}
	return inst
}
