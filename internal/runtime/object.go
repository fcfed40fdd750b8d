// Package runtime is the tree-walking executor: the Object value model,
// the Environment binding discipline (value slots and reference slots),
// and the statement/expression evaluator built over the class runtime
// the analyzer and classtable packages produce. Object is an interface
// implemented by small value structs, with a ReturnSignal wrapper used
// as an internal control signal rather than a host-language exception.
package runtime

import (
	"strconv"

	"github.com/oolang/oolang/internal/typesystem"
)

// ObjectType tags a runtime value's dynamic kind.
type ObjectType string

const (
	BoolObj     ObjectType = "BOOL"
	IntObj      ObjectType = "INT"
	CharObj     ObjectType = "CHAR"
	StringObj   ObjectType = "STRING"
	InstanceObj ObjectType = "INSTANCE"
	ReturnObj   ObjectType = "RETURN_VALUE"
)

// Object is the runtime value interface every evaluated expression
// produces.
type Object interface {
	Type() ObjectType
	Inspect() string
	RuntimeType() typesystem.Type
}

// Bool is a boolean value object.
type Bool struct{ Value bool }

func (b *Bool) Type() ObjectType             { return BoolObj }
func (b *Bool) Inspect() string              { return boolString(b.Value) }
func (b *Bool) RuntimeType() typesystem.Type { return typesystem.Bool_() }

func boolString(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// Int is an integer value object.
type Int struct{ Value int64 }

func (i *Int) Type() ObjectType             { return IntObj }
func (i *Int) Inspect() string              { return strconv.FormatInt(i.Value, 10) }
func (i *Int) RuntimeType() typesystem.Type { return typesystem.Int_() }

// Char is a single-byte character value object.
type Char struct{ Value byte }

func (c *Char) Type() ObjectType             { return CharObj }
func (c *Char) Inspect() string              { return string(rune(c.Value)) }
func (c *Char) RuntimeType() typesystem.Type { return typesystem.Char_() }

// String is a string value object.
type String struct{ Value string }

func (s *String) Type() ObjectType             { return StringObj }
func (s *String) Inspect() string              { return s.Value }
func (s *String) RuntimeType() typesystem.Type { return typesystem.String_() }
