package ast

import "github.com/Synaptic-Simulations/behave/internal/token"

// TypeExpr is a type as written in source: a primitive keyword, a
// user-named path, or a composite built from one of the others. Unlike
// typesystem.Type (the resolved, structurally-comparable static type),
// a TypeExpr is a tree of source syntax that still needs resolving.
type TypeExpr interface {
	Node
	typeExprNode()
}

// NumType is the `num` keyword.
type NumType struct{ Location token.Location }

func (t *NumType) Loc() token.Location { return t.Location }
func (*NumType) typeExprNode()         {}

// StrType is the `str` keyword.
type StrType struct{ Location token.Location }

func (t *StrType) Loc() token.Location { return t.Location }
func (*StrType) typeExprNode()         {}

// BoolType is the `bool` keyword.
type BoolType struct{ Location token.Location }

func (t *BoolType) Loc() token.Location { return t.Location }
func (*BoolType) typeExprNode()         {}

// CodeType is the `code` keyword.
type CodeType struct{ Location token.Location }

func (t *CodeType) Loc() token.Location { return t.Location }
func (*CodeType) typeExprNode()         {}

// NoneTypeExpr is the `none` keyword used in type position (a function's
// implicit or explicit no-value return type).
type NoneTypeExpr struct{ Location token.Location }

func (t *NoneTypeExpr) Loc() token.Location { return t.Location }
func (*NoneTypeExpr) typeExprNode()         {}

// UserType is a dotted path naming a struct or enum declared elsewhere in
// the project. Resolved is filled in by the resolver.
type UserType struct {
	Name     Path
	Resolved *ResolvedTypeRef
	Location token.Location
}

func (t *UserType) Loc() token.Location { return t.Location }
func (*UserType) typeExprNode()         {}

// ArrayType is `array<Elem>`.
type ArrayType struct {
	Elem     *Type
	Location token.Location
}

func (t *ArrayType) Loc() token.Location { return t.Location }
func (*ArrayType) typeExprNode()         {}

// MapType is `map<Key, Value>`.
type MapType struct {
	Key      *Type
	Value    *Type
	Location token.Location
}

func (t *MapType) Loc() token.Location { return t.Location }
func (*MapType) typeExprNode()         {}

// OptionalType is `Inner?`.
type OptionalType struct {
	Inner    *Type
	Location token.Location
}

func (t *OptionalType) Loc() token.Location { return t.Location }
func (*OptionalType) typeExprNode()         {}

// SumType is `A | B | C`.
type SumType struct {
	Options  []*Type
	Location token.Location
}

func (t *SumType) Loc() token.Location { return t.Location }
func (*SumType) typeExprNode()         {}

// FuncType is `fn(Args) -> Ret`.
type FuncType struct {
	Args     []*Type
	Ret      *Type // nil means implicit `none`
	Location token.Location
}

func (t *FuncType) Loc() token.Location { return t.Location }
func (*FuncType) typeExprNode()         {}

// Type wraps a TypeExpr with its source range, the uniform shape every
// type-position slot in the grammar (parameters, fields, returns, `let`
// annotations) is stored as.
type Type struct {
	Expr     TypeExpr
	Location token.Location
}

func (t *Type) Loc() token.Location { return t.Location }
