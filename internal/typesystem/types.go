// Package typesystem defines the Type value used throughout the analyzer
// and runtime: a base kind, a reference flag, and, for Class types, a
// class name. Equality is structural over all three fields.
package typesystem

// BaseKind is the tag of a Type.
type BaseKind int

const (
	Bool BaseKind = iota
	Int
	Char
	String
	Void
	Class
)

func (k BaseKind) String() string {
	switch k {
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Char:
		return "char"
	case String:
		return "string"
	case Void:
		return "void"
	case Class:
		return "class"
	default:
		return "?"
	}
}

// Type is the tagged value described at package level.
type Type struct {
	Kind      BaseKind
	IsRef     bool
	ClassName string // only meaningful when Kind == Class
}

// Primitive constructors, used pervasively by the analyzer and executor.
func Bool_() Type   { return Type{Kind: Bool} }
func Int_() Type    { return Type{Kind: Int} }
func Char_() Type   { return Type{Kind: Char} }
func String_() Type { return Type{Kind: String} }
func Void_() Type   { return Type{Kind: Void} }

// ClassType builds a (possibly referenced) Class type.
func ClassType(name string) Type { return Type{Kind: Class, ClassName: name} }

// Ref returns t with IsRef set, leaving t itself untouched.
func (t Type) Ref() Type {
	t.IsRef = true
	return t
}

// Base strips the reference flag. Nearly every typing rule compares on
// Base.
func (t Type) Base() Type {
	t.IsRef = false
	return t
}

// SameBase reports whether t and other match as "same base": equal
// BaseKind and (for Class) equal class name, regardless of IsRef.
func (t Type) SameBase(other Type) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == Class {
		return t.ClassName == other.ClassName
	}
	return true
}

// Equal is full structural equality over all three fields.
func (t Type) Equal(other Type) bool {
	return t.Kind == other.Kind && t.IsRef == other.IsRef && t.ClassName == other.ClassName
}

// IsPrimitiveValue reports whether t's base admits truthiness in a condition
// position.
func (t Type) IsPrimitiveValue() bool {
	switch t.Kind {
	case Bool, Int, Char, String:
		return true
	default:
		return false
	}
}

// String renders a canonical, round-trippable spelling: the base keyword
// or class name, with a trailing `&` when IsRef is set.
func (t Type) String() string {
	var s string
	switch t.Kind {
	case Bool:
		s = "bool"
	case Int:
		s = "int"
	case Char:
		s = "char"
	case String:
		s = "string"
	case Void:
		s = "void"
	case Class:
		s = t.ClassName
	}
	if t.IsRef {
		s += "&"
	}
	return s
}

// SignatureTypeString renders the type exactly as used inside a
// vtable signature key. It is the same spelling as String but named separately
// because the two call sites evolve independently in a class-based
// runtime (signature keys never change once constructed; display
// formatting may grow locale/verbosity options later).
func (t Type) SignatureTypeString() string {
	return t.String()
}

// HasScalarDefault reports whether base kind k has a scalar default
// (everything except Class, which requires object allocation — see
// runtime.Default).
func (k BaseKind) HasScalarDefault() bool {
	return k != Class
}
