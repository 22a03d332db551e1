// Package ast defines the AST shape the behavior-language resolver and
// evaluator consume, following spec.md §3's data model and
// original_source/behave/src/ast.rs's node shapes one-for-one. Building
// this tree from source text is the lexer/parser's job (internal/lexer,
// internal/parser); this package only fixes the contract between them and
// the core (resolver, evaluator, RPN compiler).
package ast

import "github.com/Synaptic-Simulations/behave/internal/token"

// Node is implemented by every AST node; it exposes the node's source
// range for diagnostics.
type Node interface {
	Loc() token.Location
}

// Ident is a source-level name paired with its byte range, per spec.md §3.
type Ident struct {
	Name     string
	Location token.Location
}

func (i Ident) Loc() token.Location { return i.Location }

// Path is an ordered sequence of identifiers, used both for dotted
// references (Foo.Bar.baz) and for file-tree lookup.
type Path struct {
	Parts []Ident
}

func (p Path) Loc() token.Location {
	if len(p.Parts) == 0 {
		return token.Location{}
	}
	loc := p.Parts[0].Location
	for _, part := range p.Parts[1:] {
		loc = token.Merge(loc, part.Location)
	}
	return loc
}

// Strings returns the path's segments as plain strings, the key shape
// used by the resolver's symbol tables.
func (p Path) Strings() []string {
	out := make([]string, len(p.Parts))
	for i, part := range p.Parts {
		out[i] = part.Name
	}
	return out
}

func (p Path) String() string {
	s := ""
	for i, part := range p.Parts {
		if i > 0 {
			s += "."
		}
		s += part.Name
	}
	return s
}

// ---- Resolved-reference marker interfaces -------------------------------
//
// These are implemented by the opaque id types in internal/items
// (FunctionID, TemplateID, StructID, EnumID). Keeping them as marker
// interfaces here — rather than importing internal/items directly — lets
// ast stay a leaf package: internal/items must import ast (an Item's body
// is made of ast nodes), so ast cannot import items back.

// ResolvedFunction is implemented by items.FunctionID.
type ResolvedFunction interface{ IsResolvedFunction() }

// ResolvedTemplate is implemented by items.TemplateID.
type ResolvedTemplate interface{ IsResolvedTemplate() }

// ResolvedStruct is implemented by items.StructID.
type ResolvedStruct interface{ IsResolvedStruct() }

// ResolvedEnum is implemented by items.EnumID.
type ResolvedEnum interface{ IsResolvedEnum() }

// ResolvedTypeKind distinguishes a resolved user type's item namespace.
type ResolvedTypeKind int

const (
	ResolvedStructType ResolvedTypeKind = iota
	ResolvedEnumType
)

// ResolvedTypeRef is the annotation a user-named Type node carries once
// the resolver has run: which namespace it resolved into, and the item id.
type ResolvedTypeRef struct {
	Kind   ResolvedTypeKind
	Struct ResolvedStruct
	Enum   ResolvedEnum
}

// AccessKind distinguishes a resolved identifier access: a binding looked
// up lexically on the call stack at evaluation time (Local), or one of
// the two kinds of global the resolver can settle at resolve time.
type AccessKind int

const (
	AccessLocal AccessKind = iota
	AccessGlobalFunction
	AccessGlobalEnum
)

// EnumAccessRef names one variant of a resolved enum by its tag.
type EnumAccessRef struct {
	Enum ResolvedEnum
	Tag  int
}

// ResolvedAccessRef is the annotation an Access node carries once the
// resolver has run.
type ResolvedAccessRef struct {
	Kind     AccessKind
	Function ResolvedFunction
	Enum     EnumAccessRef
}

// ---- Tree: the directory-shaped, path-addressed project AST -------------

// Tree is the recursive directory-shaped structure spec.md §3 describes:
// each interior node maps a path segment to a subtree; each leaf holds a
// parsed file. It mirrors original_source/ast.rs's ASTTree exactly.
type Tree struct {
	Branch map[string]*Tree
	Leaf   *File
}

// NewTree creates an empty branch node.
func NewTree() *Tree { return &Tree{Branch: map[string]*Tree{}} }

// Insert adds a file at the given path, creating intermediate branch
// nodes on demand. Returns false if called on a leaf node.
func (t *Tree) Insert(path []string, file *File) bool {
	if t.Leaf != nil {
		return false
	}
	if len(path) == 0 {
		return false
	}
	if len(path) == 1 {
		t.Branch[path[0]] = &Tree{Leaf: file}
		return true
	}
	next, ok := t.Branch[path[0]]
	if !ok {
		next = NewTree()
		t.Branch[path[0]] = next
	}
	return next.Insert(path[1:], file)
}

// Get looks up a subtree by path, iteratively walking branch nodes.
func (t *Tree) Get(path []string) (*Tree, bool) {
	cur := t
	for _, seg := range path {
		if cur.Branch == nil {
			return nil, false
		}
		next, ok := cur.Branch[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// Walk calls fn for every leaf file in the tree, passing the dotted path
// segments from the tree root to that leaf.
func (t *Tree) Walk(fn func(path []string, file *File)) {
	t.walk(nil, fn)
}

func (t *Tree) walk(prefix []string, fn func(path []string, file *File)) {
	if t.Leaf != nil {
		fn(prefix, t.Leaf)
		return
	}
	for seg, sub := range t.Branch {
		sub.walk(append(append([]string{}, prefix...), seg), fn)
	}
}

// ---- File / Program -------------------------------------------------------

// ImportKind distinguishes a normal (dotted-path) import from an extern
// (opaque passthrough expression) import, per spec.md §6.
type ImportKind int

const (
	ImportNormal ImportKind = iota
	ImportExtern
)

// Import is one import statement at the top of a file.
type Import struct {
	Kind     ImportKind
	Path     Path       // set when Kind == ImportNormal
	Extern   Expr       // set when Kind == ImportExtern
	Location token.Location
}

func (i Import) Loc() token.Location { return i.Location }

// FileKind distinguishes the single main file from secondary item files.
type FileKind int

const (
	FileMain FileKind = iota
	FileSecondary
)

// File is one parsed source file: either the project's single Main file
// (LODs + behavior block) or a Secondary file (a list of items).
type File struct {
	Kind     FileKind
	Path     string // filesystem path, for diagnostics
	Imports  []Import
	Items    []*Item     // set when Kind == FileSecondary
	LODs     *LODs       // set when Kind == FileMain
	Behavior *Behavior   // set when Kind == FileMain
}
