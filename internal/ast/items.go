package ast

import "github.com/Synaptic-Simulations/behave/internal/token"

// Item is a top-level declaration as written in source, before it is
// interned into the item map. The resolver walks these to populate
// items.Map; after that point the rest of the pipeline refers to
// declarations only by id.
type Item struct {
	Function *FunctionDecl
	Template *TemplateDecl
	Struct   *StructDecl
	Enum     *EnumDecl
	Variable *VariableDecl
	Location token.Location
}

func (i *Item) Loc() token.Location { return i.Location }

// FunctionDecl is `fn name(params) -> ret { body }`.
type FunctionDecl struct {
	Name     Ident
	Params   []Param
	Ret      *Type // nil: implicit none
	Body     *BlockExpr
	Location token.Location
}

func (d *FunctionDecl) Loc() token.Location { return d.Location }

// TemplateDecl is `template name(params) { stmts }`. Parameters may
// carry defaults; the body is evaluated in template mode (§4.2.2): the
// template values its top-level statements produce are collected into a
// block, and any other statement value is discarded.
type TemplateDecl struct {
	Name     Ident
	Params   []Param
	Body     []Expr
	Location token.Location
}

func (d *TemplateDecl) Loc() token.Location { return d.Location }

// StructField is one ordered, named field of a struct declaration.
type StructField struct {
	Name    Ident
	Type    *Type
	Default Expr // nil if the field has no default
}

// StructDecl is `struct name { fields }`.
type StructDecl struct {
	Name     Ident
	Fields   []StructField
	Location token.Location
}

func (d *StructDecl) Loc() token.Location { return d.Location }

// EnumVariant is one named variant of an enum, with its integer tag
// (assigned sequentially unless an explicit value is given).
type EnumVariant struct {
	Name     Ident
	Tag      int
	Explicit bool // true if Tag came from an explicit `= N` in source
}

// EnumDecl is `enum name { variants }`.
type EnumDecl struct {
	Name     Ident
	Variants []EnumVariant
	Location token.Location
}

func (d *EnumDecl) Loc() token.Location { return d.Location }

// VariableDecl is a `let name: Type = value` binding. The same node
// shape serves both a top-level item (ast.Item.Variable) and a local
// statement inside a function/template body (an element of
// BlockExpr.Stmts), hence it also implements Expr.
type VariableDecl struct {
	Name     Ident
	Type     *Type // nil: inferred from Value
	Value    Expr
	Location token.Location
}

func (d *VariableDecl) Loc() token.Location { return d.Location }
func (*VariableDecl) exprNode()             {}

// ---- Main-file-only nodes ------------------------------------------------

// LOD is one level-of-detail entry: a minimum on-screen size paired with
// an asset file reference.
type LOD struct {
	MinSize  Expr
	Asset    Expr
	Location token.Location
}

func (l LOD) Loc() token.Location { return l.Location }

// LODs is the main file's `lods { ... }` block.
type LODs struct {
	Entries  []LOD
	Location token.Location
}

func (l *LODs) Loc() token.Location { return l.Location }

// Behavior is the main file's `behavior { ... }` block: the root input
// to the evaluator.
type Behavior struct {
	Stmts    []Expr
	Location token.Location
}

func (b *Behavior) Loc() token.Location { return b.Location }
