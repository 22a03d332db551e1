// Package typesystem defines the static type constructors of the behavior
// language: num, str, bool, code, user-named (struct/enum), array<T>,
// map<K,V>, optional T?, sum types, and function types. Equality is
// structural, matching spec.md §3's "Type (static)" definition.
package typesystem

import "strings"

// Type is a static type. Every concrete type below implements it.
type Type interface {
	// Equal reports structural equality, per spec.md §3: "Equality is
	// structural on these constructors."
	Equal(other Type) bool
	String() string
}

// Num is the numeric type `num` (always a float64 at runtime).
type Num struct{}

func (Num) Equal(o Type) bool { _, ok := o.(Num); return ok }
func (Num) String() string    { return "num" }

// Str is the string type `str`.
type Str struct{}

func (Str) Equal(o Type) bool { _, ok := o.(Str); return ok }
func (Str) String() string    { return "str" }

// Bool is the boolean type `bool`.
type Bool struct{}

func (Bool) Equal(o Type) bool { _, ok := o.(Bool); return ok }
func (Bool) String() string    { return "bool" }

// Code is the `code` type: a compiled RPN stream with a statically-known
// result type, never itself reducible further.
type Code struct{}

func (Code) Equal(o Type) bool { _, ok := o.(Code); return ok }
func (Code) String() string    { return "code" }

// NoneType is the unit/absent type, the type of the `None` literal and of
// a block or function with no meaningful result.
type NoneType struct{}

func (NoneType) Equal(o Type) bool { _, ok := o.(NoneType); return ok }
func (NoneType) String() string    { return "none" }

// UserKind distinguishes which item namespace a User type resolves into.
type UserKind int

const (
	UserStruct UserKind = iota
	UserEnum
)

// User is a user-declared struct or enum type, resolved to a stable item
// id so equality compares the id rather than the declaration's name
// (distinct files may declare same-named-but-different types; resolution
// already disambiguated that before a User type is ever constructed).
type User struct {
	Kind UserKind
	ID   int
	Name string // qualified name, for diagnostics only — not compared
}

func (u User) Equal(o Type) bool {
	ou, ok := o.(User)
	return ok && ou.Kind == u.Kind && ou.ID == u.ID
}
func (u User) String() string { return u.Name }

// Array is `array<Elem>`.
type Array struct{ Elem Type }

func (a Array) Equal(o Type) bool {
	oa, ok := o.(Array)
	return ok && a.Elem.Equal(oa.Elem)
}
func (a Array) String() string { return "array<" + a.Elem.String() + ">" }

// Map is `map<Key, Value>`.
type Map struct {
	Key   Type
	Value Type
}

func (m Map) Equal(o Type) bool {
	om, ok := o.(Map)
	return ok && m.Key.Equal(om.Key) && m.Value.Equal(om.Value)
}
func (m Map) String() string { return "map<" + m.Key.String() + ", " + m.Value.String() + ">" }

// Optional is `T?`.
type Optional struct{ Inner Type }

func (op Optional) Equal(o Type) bool {
	oo, ok := o.(Optional)
	return ok && op.Inner.Equal(oo.Inner)
}
func (op Optional) String() string { return op.Inner.String() + "?" }

// Sum is a sum/union of alternative types.
type Sum struct{ Options []Type }

func (s Sum) Equal(o Type) bool {
	os, ok := o.(Sum)
	if !ok || len(os.Options) != len(s.Options) {
		return false
	}
	for i, t := range s.Options {
		if !t.Equal(os.Options[i]) {
			return false
		}
	}
	return true
}
func (s Sum) String() string {
	parts := make([]string, len(s.Options))
	for i, t := range s.Options {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}

// Function is a function type: argument types plus an optional return
// type (nil Ret means the function returns `None`).
type Function struct {
	Args []Type
	Ret  Type
}

func (f Function) Equal(o Type) bool {
	of, ok := o.(Function)
	if !ok || len(of.Args) != len(f.Args) {
		return false
	}
	for i, t := range f.Args {
		if !t.Equal(of.Args[i]) {
			return false
		}
	}
	if (f.Ret == nil) != (of.Ret == nil) {
		return false
	}
	if f.Ret == nil {
		return true
	}
	return f.Ret.Equal(of.Ret)
}
func (f Function) String() string {
	parts := make([]string, len(f.Args))
	for i, t := range f.Args {
		parts[i] = t.String()
	}
	ret := "none"
	if f.Ret != nil {
		ret = f.Ret.String()
	}
	return "fn(" + strings.Join(parts, ", ") + ") -> " + ret
}
