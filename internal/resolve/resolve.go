// Package resolve implements spec.md §4.1's Resolver: it builds a
// per-file symbol table from the project's cross-file item namespace and
// annotates every Access, Type and Use node with its resolved target.
// Grounded on original_source/behave/src/resolve.rs, which this package
// follows closely: the same three-namespace symbol table (types,
// templates, functions) plus a fourth helper table of enum variants, the
// same "local file + explicit imports + project root, each walked as its
// own root" algorithm, and the same ordering (secondary files first, main
// file last).
package resolve

import (
	"strings"

	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/token"
)

func key(path []string) string { return strings.Join(path, ".") }

// resolver holds one file's symbol tables plus the accumulated
// diagnostics for the whole resolve pass it participates in.
type resolver struct {
	items *items.Map

	types        map[string]ast.ResolvedTypeRef
	templates    map[string]items.TemplateID
	functions    map[string]items.FunctionID
	enumVariants map[string]ast.EnumAccessRef

	// declaredAt remembers each types/templates/functions namespace
	// entry's declaring identifier, keyed the same way, so a later
	// collision can point a secondary label at the earlier declaration's
	// range rather than only flagging the new one.
	declaredAt map[string]ast.Ident

	diags *[]*diagnostics.Diagnostic
}

// newResolver builds a resolver for one file: seeds the inbuilt globals,
// adds the file's own items under the empty prefix, then walks the
// project root plus every explicitly imported subtree as independent
// roots (spec.md §4.1, step 1–3).
func newResolver(diags *[]*diagnostics.Diagnostic, file *ast.File, tree *ast.Tree, im *items.Map) *resolver {
	r := &resolver{
		items:        im,
		types:        map[string]ast.ResolvedTypeRef{},
		templates:    map[string]items.TemplateID{},
		functions:    map[string]items.FunctionID{},
		enumVariants: map[string]ast.EnumAccessRef{},
		declaredAt:   map[string]ast.Ident{},
		diags:        diags,
	}

	r.addInbuilt()

	roots := []*ast.Tree{tree}
	for _, imp := range file.Imports {
		if imp.Kind != ast.ImportNormal {
			continue
		}
		sub, ok := tree.Get(imp.Path.Strings())
		if !ok {
			r.err(diagnostics.CodeResolutionImportMissing, "imported path does not name any known file", imp.Location)
			continue
		}
		roots = append(roots, sub)
	}

	r.addItems(file, nil)
	for _, root := range roots {
		r.addItemsRecursive(root, nil)
	}

	return r
}

func (r *resolver) err(code diagnostics.Code, msg string, loc token.Location) {
	*r.diags = append(*r.diags, diagnostics.Errorf(code, msg).WithLabel(diagnostics.PrimaryLabel(msg, loc)))
}

func (r *resolver) addInbuilt() {
	mouseEvent := r.items.MouseEventEnum
	enumDecl := r.items.Enum(mouseEvent).Decl
	for _, variant := range enumDecl.Variants {
		r.enumVariants[key([]string{enumDecl.Name.Name, variant.Name.Name})] = ast.EnumAccessRef{
			Enum: mouseEvent,
			Tag:  variant.Tag,
		}
	}
	r.functions[key([]string{"format"})] = r.items.FormatFunction
}

// addItems adds every item declared directly in file under prefix,
// diagnosing redeclarations against the same namespace.
func (r *resolver) addItems(file *ast.File, prefix []string) {
	for _, item := range file.Items {
		switch {
		case item.Enum != nil:
			path := append(append([]string{}, prefix...), item.Enum.Name.Name)
			k := key(path)
			if _, ok := r.types[k]; ok {
				r.redeclare(item.Enum.Name, "type:"+k)
			} else {
				id := r.items.AddEnum(items.Enum{Decl: item.Enum})
				r.types[k] = ast.ResolvedTypeRef{Kind: ast.ResolvedEnumType, Enum: id}
				r.declaredAt["type:"+k] = item.Enum.Name
				for _, variant := range item.Enum.Variants {
					vpath := append(append([]string{}, path...), variant.Name.Name)
					r.enumVariants[key(vpath)] = ast.EnumAccessRef{Enum: id, Tag: variant.Tag}
				}
			}
		case item.Struct != nil:
			path := append(append([]string{}, prefix...), item.Struct.Name.Name)
			k := key(path)
			if _, ok := r.types[k]; ok {
				r.redeclare(item.Struct.Name, "type:"+k)
			} else {
				id := r.items.AddStruct(items.Struct{Decl: item.Struct})
				r.types[k] = ast.ResolvedTypeRef{Kind: ast.ResolvedStructType, Struct: id}
				r.declaredAt["type:"+k] = item.Struct.Name
			}
		case item.Template != nil:
			path := append(append([]string{}, prefix...), item.Template.Name.Name)
			k := key(path)
			if _, ok := r.templates[k]; ok {
				r.redeclare(item.Template.Name, "template:"+k)
			} else {
				r.templates[k] = r.items.AddTemplate(items.Template{Decl: item.Template})
				r.declaredAt["template:"+k] = item.Template.Name
			}
		case item.Function != nil:
			path := append(append([]string{}, prefix...), item.Function.Name.Name)
			k := key(path)
			if _, ok := r.functions[k]; ok {
				r.redeclare(item.Function.Name, "function:"+k)
			} else {
				r.functions[k] = r.items.AddFunction(items.Function{Decl: item.Function})
				r.declaredAt["function:"+k] = item.Function.Name
			}
		case item.Variable != nil:
			// Top-level variables are not part of any resolver namespace,
			// and the evaluator does not bind them on its call stack
			// either: a reference to one resolves as a local access and
			// fails at evaluation time as an unbound name.
		}
	}
}

func (r *resolver) addItemsRecursive(tree *ast.Tree, prefix []string) {
	if tree.Leaf != nil {
		r.addItems(tree.Leaf, prefix)
		return
	}
	for seg, sub := range tree.Branch {
		r.addItemsRecursive(sub, append(append([]string{}, prefix...), seg))
	}
}

// redeclare diagnoses a namespace collision. declaredAtKey looks up the
// prior declaration's identifier in r.declaredAt; when found, its range
// is attached as a secondary label (spec.md §4.1's "a redeclaration
// diagnostic with the previous declaration's range as a secondary
// label"). Inbuilt entries seeded by addInbuilt (the format function,
// the MouseEvent enum's variants) have no such entry, so a collision
// against one of those only gets the primary label.
func (r *resolver) redeclare(name ast.Ident, declaredAtKey string) {
	d := diagnostics.Errorf(diagnostics.CodeResolutionRedeclaration, "redeclaration").
		WithLabel(diagnostics.PrimaryLabel("a declaration with the same name is already in scope", name.Location))
	if prev, ok := r.declaredAt[declaredAtKey]; ok {
		d.WithLabel(diagnostics.SecondaryLabel("previous declaration here", prev.Location))
	}
	*r.diags = append(*r.diags, d)
}

// Resolve runs the full two-phase resolve pass spec.md §4.1 describes:
// every secondary file first (each against the whole tree), then the
// main file. It returns every diagnostic produced; an empty result means
// the project is ready for evaluation.
func Resolve(main *ast.File, secondary *ast.Tree, im *items.Map) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic

	resolveSecondary(secondary, secondary, im, &diags)

	r := newResolver(&diags, main, secondary, im)
	for _, imp := range main.Imports {
		annotateImport(r, imp)
	}
	if main.LODs != nil {
		for i := range main.LODs.Entries {
			r.walkExpr(main.LODs.Entries[i].MinSize)
			r.walkExpr(main.LODs.Entries[i].Asset)
		}
	}
	if main.Behavior != nil {
		for _, stmt := range main.Behavior.Stmts {
			r.walkExpr(stmt)
		}
	}

	return diags
}

func resolveSecondary(root, tree *ast.Tree, im *items.Map, diags *[]*diagnostics.Diagnostic) {
	if tree.Leaf != nil {
		file := tree.Leaf
		r := newResolver(diags, file, root, im)
		for _, imp := range file.Imports {
			annotateImport(r, imp)
		}
		for _, item := range file.Items {
			r.walkItem(item)
		}
		return
	}
	for _, sub := range tree.Branch {
		resolveSecondary(root, sub, im, diags)
	}
}

func annotateImport(r *resolver, imp ast.Import) {
	if imp.Kind == ast.ImportExtern {
		r.walkExpr(imp.Extern)
	}
}
