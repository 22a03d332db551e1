package resolve

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
)

// walkItem annotates one top-level declaration's own type and expression
// subtrees: a function's params/return/body, a template's params/body, a
// struct's field types/defaults, a variable's type/value. Enum
// declarations carry no expressions to annotate.
func (r *resolver) walkItem(item *ast.Item) {
	switch {
	case item.Function != nil:
		r.walkParams(item.Function.Params)
		r.walkType(item.Function.Ret)
		r.walkBlock(item.Function.Body)
	case item.Template != nil:
		r.walkParams(item.Template.Params)
		for _, stmt := range item.Template.Body {
			r.walkExpr(stmt)
		}
	case item.Struct != nil:
		for _, f := range item.Struct.Fields {
			r.walkType(f.Type)
			if f.Default != nil {
				r.walkExpr(f.Default)
			}
		}
	case item.Enum != nil:
		// no expressions to annotate
	case item.Variable != nil:
		r.walkType(item.Variable.Type)
		if item.Variable.Value != nil {
			r.walkExpr(item.Variable.Value)
		}
	}
}

func (r *resolver) walkParams(params []ast.Param) {
	for _, p := range params {
		r.walkType(p.Type)
		if p.Default != nil {
			r.walkExpr(p.Default)
		}
	}
}

func (r *resolver) walkBlock(b *ast.BlockExpr) {
	if b == nil {
		return
	}
	for _, stmt := range b.Stmts {
		r.walkExpr(stmt)
	}
	if b.Trailing != nil {
		r.walkExpr(b.Trailing)
	}
}

// walkType resolves every UserType leaf reachable from t, recursing
// through the composite type constructors.
func (r *resolver) walkType(t *ast.Type) {
	if t == nil {
		return
	}
	switch e := t.Expr.(type) {
	case *ast.UserType:
		ref, ok := r.types[key(e.Name.Strings())]
		if !ok {
			*r.diags = append(*r.diags, diagnostics.Errorf(diagnostics.CodeResolutionUndeclaredType,
				"reference to an undeclared type").
				WithLabel(diagnostics.PrimaryLabel("no struct or enum with this name is in scope", e.Name.Loc())))
			return
		}
		resolved := ref
		e.Resolved = &resolved
	case *ast.ArrayType:
		r.walkType(e.Elem)
	case *ast.MapType:
		r.walkType(e.Key)
		r.walkType(e.Value)
	case *ast.OptionalType:
		r.walkType(e.Inner)
	case *ast.SumType:
		for _, opt := range e.Options {
			r.walkType(opt)
		}
	case *ast.FuncType:
		for _, arg := range e.Args {
			r.walkType(arg)
		}
		r.walkType(e.Ret)
	}
}

// walkExpr recurses through an expression tree, resolving every Access,
// Use and nested Type node it contains.
func (r *resolver) walkExpr(e ast.Expr) {
	if e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.NoneLit, *ast.NumberLit, *ast.BoolLit, *ast.StringLit:
		// leaves

	case *ast.FunctionLit:
		r.walkParams(n.Params)
		r.walkType(n.Ret)
		r.walkBlock(n.Body)

	case *ast.AccessExpr:
		r.resolveAccess(n)

	case *ast.IndexExpr:
		r.walkExpr(n.Base)
		r.walkExpr(n.Index)

	case *ast.AssignExpr:
		r.walkExpr(n.Target)
		r.walkExpr(n.Value)

	case *ast.UnaryExpr:
		r.walkExpr(n.Operand)

	case *ast.BinaryExpr:
		r.walkExpr(n.Left)
		r.walkExpr(n.Right)

	case *ast.CallExpr:
		r.walkExpr(n.Callee)
		for _, a := range n.Args {
			r.walkExpr(a)
		}

	case *ast.StructLiteralExpr:
		r.walkType(n.Type)
		for _, f := range n.Fields {
			r.walkExpr(f.Value)
		}

	case *ast.IfChainExpr:
		for _, c := range n.Conditions {
			r.walkExpr(c)
		}
		for _, b := range n.Blocks {
			r.walkBlock(b)
		}
		r.walkBlock(n.Else)

	case *ast.SwitchExpr:
		r.walkExpr(n.Subject)
		for _, c := range n.Cases {
			r.walkExpr(c.Value)
			r.walkExpr(c.Result)
		}

	case *ast.WhileExpr:
		r.walkExpr(n.Cond)
		r.walkBlock(n.Body)

	case *ast.ForExpr:
		r.walkExpr(n.Iterable)
		r.walkBlock(n.Body)

	case *ast.ReturnExpr:
		r.walkExpr(n.Value)

	case *ast.BreakExpr:
		r.walkExpr(n.Value)

	case *ast.BlockExpr:
		r.walkBlock(n)

	case *ast.ArrayLit:
		for _, el := range n.Elements {
			r.walkExpr(el)
		}

	case *ast.MapLit:
		for _, ent := range n.Entries {
			r.walkExpr(ent.Key)
			r.walkExpr(ent.Value)
		}

	case *ast.CodeExpr:
		r.walkBlock(n.Body)

	case *ast.UseExpr:
		r.resolveTemplateUse(n)
		for _, f := range n.Args {
			r.walkExpr(f.Value)
		}

	case *ast.ComponentExpr:
		r.walkExpr(n.Name)
		r.walkExpr(n.Node)
		r.walkBlock(n.Body)

	case *ast.AnimationExpr:
		r.walkExpr(n.Name)
		r.walkExpr(n.Lag)
		r.walkExpr(n.Length)
		r.walkExpr(n.Value)

	case *ast.VisibleExpr:
		r.walkExpr(n.Code)

	case *ast.EmissiveExpr:
		r.walkExpr(n.Code)

	case *ast.VariableDecl:
		r.walkType(n.Type)
		r.walkExpr(n.Value)
	}
}

// resolveAccess settles an identifier reference against the access
// priority order spec.md §4.1 describes: a global function or enum
// variant whose full dotted name matches wins over a local/struct-field
// lookup, which is left to the evaluator's call stack. Builtins and user
// declarations share one table per namespace (see DESIGN.md's note on
// internal/items' Inbuilt/User collapse), so within a namespace there is
// only one candidate per name; between namespaces, functions are checked
// before enum variants, mirroring the original's inbuilt-before-user,
// function-before-variant ordering once both tiers are merged.
func (r *resolver) resolveAccess(e *ast.AccessExpr) {
	path := append([]string{e.Root.Name}, identNames(e.Extra)...)
	k := key(path)

	if id, ok := r.functions[k]; ok {
		e.Resolved = &ast.ResolvedAccessRef{Kind: ast.AccessGlobalFunction, Function: id}
		return
	}
	if ref, ok := r.enumVariants[k]; ok {
		e.Resolved = &ast.ResolvedAccessRef{Kind: ast.AccessGlobalEnum, Enum: ref}
		return
	}
	e.Resolved = &ast.ResolvedAccessRef{Kind: ast.AccessLocal}
}

func (r *resolver) resolveTemplateUse(e *ast.UseExpr) {
	id, ok := r.templates[key(e.Path.Strings())]
	if !ok {
		*r.diags = append(*r.diags, diagnostics.Errorf(diagnostics.CodeResolutionUndeclaredTemplate,
			"reference to an undeclared template").
			WithLabel(diagnostics.PrimaryLabel("no template with this name is in scope", e.Path.Loc())))
		return
	}
	e.Resolved = id
}

func identNames(idents []ast.Ident) []string {
	out := make([]string, len(idents))
	for i, id := range idents {
		out[i] = id.Name
	}
	return out
}
