// Package items is the process-wide arena spec.md §2 calls the Item Map:
// one slice per declaration kind (function, template, struct, enum),
// addressed only by the opaque id types below. Populated by the resolver
// while it walks the project tree; the evaluator also adds one Function
// entry each time it evaluates an inline function literal, and otherwise
// only reads it. Grounded on funvibe/funxy's internal/symbols package, which
// keys declarations the same way (a table per kind, ids rather than
// shared AST pointers) to keep the evaluator from needing mutable access
// back into the parse tree.
package items

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
)

// FunctionID is an opaque reference to a Function item, minted by
// Map.AddFunction. The zero value is the id of the first function added
// (in a Map built by New, the built-in format function). Index
// exists only so other packages can use an id as a map/struct-equality
// key (typesystem.User.ID); it carries no meaning outside this package.
type FunctionID struct{ idx int }

func (FunctionID) IsResolvedFunction() {}
func (id FunctionID) Index() int       { return id.idx }

// TemplateID is an opaque reference to a Template item.
type TemplateID struct{ idx int }

func (TemplateID) IsResolvedTemplate() {}
func (id TemplateID) Index() int       { return id.idx }

// StructID is an opaque reference to a Struct item.
type StructID struct{ idx int }

func (StructID) IsResolvedStruct() {}
func (id StructID) Index() int     { return id.idx }

// EnumID is an opaque reference to an Enum item.
type EnumID struct{ idx int }

func (EnumID) IsResolvedEnum() {}
func (id EnumID) Index() int   { return id.idx }

var (
	_ ast.ResolvedFunction = FunctionID{}
	_ ast.ResolvedTemplate = TemplateID{}
	_ ast.ResolvedStruct   = StructID{}
	_ ast.ResolvedEnum     = EnumID{}
)

// Function is an interned function declaration. Native is non-empty for
// the handful of built-ins the resolver seeds (currently only `format`);
// for those, Decl is nil and the evaluator dispatches on Native's name
// instead of evaluating a body.
type Function struct {
	Decl   *ast.FunctionDecl
	Native string // non-empty for built-ins, names the native implementation
}

// Template is an interned template declaration.
type Template struct {
	Decl *ast.TemplateDecl
}

// Struct is an interned struct declaration.
type Struct struct {
	Decl *ast.StructDecl
}

// Enum is an interned enum declaration. Builtin is true for the
// MouseEvent enum the resolver seeds at construction.
type Enum struct {
	Decl    *ast.EnumDecl
	Builtin bool
}

// Map is the item arena. The zero value is not usable; call New, which
// also seeds the inbuilt format function and MouseEvent enum (see
// builtins.go).
type Map struct {
	functions []Function
	templates []Template
	structs   []Struct
	enums     []Enum

	FormatFunction FunctionID
	MouseEventEnum EnumID
}

func (m *Map) AddFunction(f Function) FunctionID {
	m.functions = append(m.functions, f)
	return FunctionID{idx: len(m.functions) - 1}
}

func (m *Map) AddTemplate(t Template) TemplateID {
	m.templates = append(m.templates, t)
	return TemplateID{idx: len(m.templates) - 1}
}

func (m *Map) AddStruct(s Struct) StructID {
	m.structs = append(m.structs, s)
	return StructID{idx: len(m.structs) - 1}
}

func (m *Map) AddEnum(e Enum) EnumID {
	m.enums = append(m.enums, e)
	return EnumID{idx: len(m.enums) - 1}
}

func (m *Map) Function(id FunctionID) *Function { return &m.functions[id.idx] }
func (m *Map) Template(id TemplateID) *Template { return &m.templates[id.idx] }
func (m *Map) Struct(id StructID) *Struct       { return &m.structs[id.idx] }
func (m *Map) Enum(id EnumID) *Enum             { return &m.enums[id.idx] }
