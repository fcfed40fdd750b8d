package analyzer

import "github.com/oolang/oolang/internal/typesystem"

// assignableTo reports whether a value of type value may be stored into
// a slot of type target. Primitive kinds never
// convert — same Kind is required exactly.
func (a *Analyzer) assignableTo(target, value typesystem.Type) bool {
	if target.Kind != value.Kind {
		return false
	}
	if target.Kind == typesystem.Class {
		return target.ClassName == value.ClassName || a.ct.IsDerivedFrom(value.ClassName, target.ClassName)
	}
	return true
}
