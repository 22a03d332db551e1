// Package value defines the runtime values the evaluator produces, per
// spec.md §3's Runtime Value definition, plus the call stack they live
// on. Grounded on funvibe/funxy's internal/object package (a tagged
// Value interface with one concrete Go type per dynamic kind, plus a
// Type() accessor used for the interpreter's runtime type checks) —
// the same shape this compiler needs since spec.md requires exact
// runtime-type comparisons at nearly every construct boundary.
package value

import (
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/rpn"
	"github.com/Synaptic-Simulations/behave/internal/typesystem"
)

// Value is any runtime value. Type returns the static type spec.md §3
// says every array/map/code value "carries" — for container values this
// is the witnessed element/key/value type, not a type recomputed from
// current contents.
type Value interface {
	Type() typesystem.Type
}

// None is the unit value, the result of `None` and of blocks/calls with
// no meaningful result.
type None struct{}

func (None) Type() typesystem.Type { return typesystem.NoneType{} }

// Number is the `num` runtime value: always a float64.
type Number float64

func (Number) Type() typesystem.Type { return typesystem.Num{} }

// Boolean is the `bool` runtime value.
type Boolean bool

func (Boolean) Type() typesystem.Type { return typesystem.Bool{} }

// String is the `str` runtime value.
type String string

func (String) Type() typesystem.Type { return typesystem.Str{} }

// Array carries its element type alongside its elements, per spec.md's
// Invariants: "Array and map value containers always carry the element
// type witnessed at construction; mutation through assignment must
// preserve that type exactly."
type Array struct {
	Elem     typesystem.Type
	Elements []Value
}

func (a *Array) Type() typesystem.Type { return typesystem.Array{Elem: a.Elem} }

// Pair is one entry of a Map, kept in insertion order: spec.md §9 notes
// map equality compares pairwise in insertion order, so order is
// semantically load-bearing, not just a construction detail.
type Pair struct {
	Key   Value
	Value Value
}

// Map carries its key and value types, per the same container-type
// invariant as Array.
type Map struct {
	Key   typesystem.Type
	Value typesystem.Type
	Pairs []Pair
}

func (m *Map) Type() typesystem.Type { return typesystem.Map{Key: m.Key, Value: m.Value} }

// Get returns the value bound to key (compared with Equal, see
// internal/evaluate) and whether it was present.
func (m *Map) Get(eq func(a, b Value) bool, key Value) (Value, bool) {
	for _, p := range m.Pairs {
		if eq(p.Key, key) {
			return p.Value, true
		}
	}
	return nil, false
}

// Object is a struct instance: a struct id plus an ordered field map.
// FieldOrder preserves the struct declaration's field order so
// evaluation and XML emission stay deterministic.
type Object struct {
	Struct     items.StructID
	Fields     map[string]Value
	FieldOrder []string
}

func (o *Object) Type() typesystem.Type {
	return typesystem.User{Kind: typesystem.UserStruct, ID: o.Struct.Index()}
}

// Enum is one variant of a user (or built-in) enum, identified by tag.
type Enum struct {
	Enum items.EnumID
	Tag  int
}

func (e Enum) Type() typesystem.Type {
	return typesystem.User{Kind: typesystem.UserEnum, ID: e.Enum.Index()}
}

// Function is a reference to an item-map function, user-declared or
// native. Sig is cached here rather than re-derived from the item map on
// every comparison, since an inline function literal is interned into
// the item map too (the evaluator assigns it a fresh FunctionID on
// evaluation) and callers should not need to re-walk its declaration
// just to compare types.
type Function struct {
	ID  items.FunctionID
	Sig typesystem.Function
}

func (f Function) Type() typesystem.Type { return f.Sig }

// Code is a compiled `code { ... }` block: a statically known result
// type plus the flat postfix opcode stream the RPN compiler produced.
type Code struct {
	ResultType typesystem.Type
	Stream     *rpn.Stream
}

func (c *Code) Type() typesystem.Type { return typesystem.Code{} }

// Template wraps one TemplateValue so it can flow through the same
// Value interface as every other runtime value (a template-mode
// statement's result, per spec.md §4.2.2, must itself be a Value the
// block-accumulation logic can type-switch on).
type Template struct {
	Value TemplateValue
}

func (Template) Type() typesystem.Type { return typesystem.NoneType{} }
