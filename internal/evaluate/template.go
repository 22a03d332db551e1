package evaluate

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/typesystem"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// evalUse evaluates a template-use site: binds its arguments against the
// template's parameter list (the same provided/defaults protocol struct
// literals use), then runs the template body in template mode, collecting
// the template values its top-level statements produce into a Block (see
// evalTemplateStmts).
func (e *Evaluator) evalUse(n *ast.UseExpr) Flow {
	if n.Resolved == nil {
		return Err(diagnostics.Internal("template use was never resolved", n.Location))
	}
	tid := n.Resolved.(items.TemplateID)
	t := e.Items.Template(tid)

	fields, _, diags := e.bindFields(specsFromParams(t.Decl.Params), n.Args, n)
	if len(diags) > 0 {
		return Err(diags...)
	}

	e.Stack.PushFrame()
	for name, val := range fields {
		e.Stack.Define(name, val)
	}
	values, flow := e.evalTemplateStmts(t.Decl.Body)
	e.Stack.PopFrame()
	if flow != nil {
		return *flow
	}
	return Ok(value.Template{Value: &value.Block{Values: values}})
}

// evalTemplateStmts evaluates a sequence of template-mode statements and
// collects the template value each one produces. A statement whose value
// is not a template value (a `let`, an assignment, a plain expression) is
// still evaluated, but its value is discarded without a diagnostic.
// Returns early (non-nil Flow) if a statement's Flow is anything other
// than Ok.
func (e *Evaluator) evalTemplateStmts(stmts []ast.Expr) ([]value.TemplateValue, *Flow) {
	var values []value.TemplateValue
	for _, stmt := range stmts {
		f := e.Eval(stmt)
		if !f.IsOk() {
			return nil, &f
		}
		if tv, ok := f.Value().(value.Template); ok {
			values = append(values, tv.Value)
		}
	}
	return values, nil
}

// evalComponent evaluates `component(name: expr[, node: expr]) { ... }`,
// running its body in template mode under a pushed ContextualInfo so
// any nested `visible`/`emissive` statement can see whether it's legal
// here (spec.md §4.2.2: both require a node-bound enclosing component).
func (e *Evaluator) evalComponent(n *ast.ComponentExpr) Flow {
	nameFlow := e.Eval(n.Name)
	if unwind(nameFlow) {
		return nameFlow
	}
	name, ok := nameFlow.Value().(value.String)
	if !ok {
		return Err(singleError(diagnostics.CodeTypeMismatch, "component name must be a str",
			"this must be a str", n.Name))
	}

	hasNode := n.Node != nil
	var node value.String
	if hasNode {
		nodeFlow := e.Eval(n.Node)
		if unwind(nodeFlow) {
			return nodeFlow
		}
		node, ok = nodeFlow.Value().(value.String)
		if !ok {
			return Err(singleError(diagnostics.CodeTypeMismatch, "component node must be a str",
				"this must be a str", n.Node))
		}
	}

	e.pushContext(ContextualInfo{InComponent: true, ComponentHasNode: hasNode})
	e.Stack.PushScope()

	stmts := append([]ast.Expr{}, n.Body.Stmts...)
	if n.Body.Trailing != nil {
		stmts = append(stmts, n.Body.Trailing)
	}
	values, flow := e.evalTemplateStmts(stmts)

	e.Stack.PopScope()
	e.popContext()
	if flow != nil {
		return *flow
	}

	comp := &value.RuntimeComponent{
		Name:    string(name),
		Node:    string(node),
		HasNode: hasNode,
		Body:    &value.Block{Values: values},
	}
	return Ok(value.Template{Value: comp})
}

// evalAnimation evaluates one `animation(name: ..., lag: ..., length: ...,
// value: code { ... })` entry; Value's code must resolve to num. A bool
// result is never accepted: spec.md §3 rules out implicit coercion between bool, num
// and str, so this always diagnoses, with a note suggesting the
// idiomatic bool*num fix.
func (e *Evaluator) evalAnimation(n *ast.AnimationExpr) Flow {
	name, lag, length, diags := e.evalAnimationHeader(n)
	if len(diags) > 0 {
		return Err(diags...)
	}

	codeFlow := e.Eval(n.Value)
	if unwind(codeFlow) {
		return codeFlow
	}
	code, ok := codeFlow.Value().(*value.Code)
	if !ok {
		return Err(singleError(diagnostics.CodeTypeMismatch, "animation value must be a code block",
			"this must be a code { ... } expression", n.Value))
	}
	if _, isNum := code.ResultType.(typesystem.Num); !isNum {
		d := singleError(diagnostics.CodeTypeMismatch, "animation value must resolve to num",
			"this code block resolves to "+code.ResultType.String()+", not num", n.Value)
		if _, isBool := code.ResultType.(typesystem.Bool); isBool {
			d.WithNote(boolToNumHint)
		}
		return Err(d)
	}
	return Ok(value.Template{Value: &value.RuntimeAnimation{Name: name, Lag: lag, Length: length, Value: code.Stream}})
}

func (e *Evaluator) evalAnimationHeader(n *ast.AnimationExpr) (name string, lag, length float64, diags []*diagnostics.Diagnostic) {
	nameFlow := e.Eval(n.Name)
	if nameFlow.IsErr() {
		return "", 0, 0, nameFlow.Diags()
	}
	nameStr, ok := nameFlow.Value().(value.String)
	if !ok {
		return "", 0, 0, []*diagnostics.Diagnostic{singleError(diagnostics.CodeTypeMismatch, "animation name must be a str", "this must be a str", n.Name)}
	}
	lagFlow := e.Eval(n.Lag)
	if lagFlow.IsErr() {
		return "", 0, 0, lagFlow.Diags()
	}
	lagNum, ok := lagFlow.Value().(value.Number)
	if !ok {
		return "", 0, 0, []*diagnostics.Diagnostic{singleError(diagnostics.CodeTypeMismatch, "animation lag must be a num", "this must be a num", n.Lag)}
	}
	lengthFlow := e.Eval(n.Length)
	if lengthFlow.IsErr() {
		return "", 0, 0, lengthFlow.Diags()
	}
	lengthNum, ok := lengthFlow.Value().(value.Number)
	if !ok {
		return "", 0, 0, []*diagnostics.Diagnostic{singleError(diagnostics.CodeTypeMismatch, "animation length must be a num", "this must be a num", n.Length)}
	}
	return string(nameStr), float64(lagNum), float64(lengthNum), nil
}

// evalVisible evaluates `visible(code)`, legal only directly inside a
// node-bound component.
func (e *Evaluator) evalVisible(n *ast.VisibleExpr) Flow {
	ctx := e.context()
	if !ctx.InComponent || !ctx.ComponentHasNode {
		return Err(singleError(diagnostics.CodeContextNoNode, "visibility condition has no node",
			"this statement is not inside a component bound to a scene node", n))
	}
	codeFlow := e.Eval(n.Code)
	if unwind(codeFlow) {
		return codeFlow
	}
	code, ok := codeFlow.Value().(*value.Code)
	if !ok {
		return Err(singleError(diagnostics.CodeTypeMismatch, "`visible` requires a code block",
			"this must be a code { ... } expression", n.Code))
	}
	if _, isBool := code.ResultType.(typesystem.Bool); !isBool {
		return Err(singleError(diagnostics.CodeTypeMismatch, "`visible` code must resolve to bool",
			"this code block resolves to "+code.ResultType.String()+", not bool", n.Code))
	}
	return Ok(value.Template{Value: &value.Visibility{Stream: code.Stream}})
}

// evalEmissive evaluates `emissive(code)`, legal only directly inside a
// node-bound component. Like animation's value, a bool result is never
// accepted — it always diagnoses, with a note suggesting bool*num.
func (e *Evaluator) evalEmissive(n *ast.EmissiveExpr) Flow {
	ctx := e.context()
	if !ctx.InComponent || !ctx.ComponentHasNode {
		return Err(singleError(diagnostics.CodeContextNoNode, "`emissive` requires a node-bound enclosing component",
			"this statement is not inside a component bound to a scene node", n))
	}
	codeFlow := e.Eval(n.Code)
	if unwind(codeFlow) {
		return codeFlow
	}
	code, ok := codeFlow.Value().(*value.Code)
	if !ok {
		return Err(singleError(diagnostics.CodeTypeMismatch, "`emissive` requires a code block",
			"this must be a code { ... } expression", n.Code))
	}
	if _, isNum := code.ResultType.(typesystem.Num); !isNum {
		d := singleError(diagnostics.CodeTypeMismatch, "`emissive` code must resolve to num",
			"this code block resolves to "+code.ResultType.String()+", not num", n.Code)
		if _, isBool := code.ResultType.(typesystem.Bool); isBool {
			d.WithNote(boolToNumHint)
		}
		return Err(d)
	}
	return Ok(value.Template{Value: &value.Emissive{Stream: code.Stream}})
}

// LODEntry is one evaluated `lods { ... }` line: a minimum on-screen
// size paired with the asset path to switch to below it.
type LODEntry struct {
	MinSize float64
	Asset   string
}

// Result is the evaluator's final product: the ordered LOD table and
// the root template-value block the behavior statement produced, ready
// for internal/backend to drive into XML.
type Result struct {
	LODs []LODEntry
	Root *value.Block
}

// EvaluateMain runs the full top-level evaluation spec.md §4.2 and §6
// describe: the main file's `lods` block (plain expressions, no
// template-mode requirement) followed by its `behavior` block (template
// mode, same as a template body).
func (e *Evaluator) EvaluateMain(main *ast.File) (*Result, bool) {
	result := &Result{}
	ok := true

	if main.LODs != nil {
		for _, entry := range main.LODs.Entries {
			sizeFlow := e.Eval(entry.MinSize)
			if sizeFlow.IsErr() {
				e.report(sizeFlow.Diags()...)
				ok = false
				continue
			}
			assetFlow := e.Eval(entry.Asset)
			if assetFlow.IsErr() {
				e.report(assetFlow.Diags()...)
				ok = false
				continue
			}
			size, sok := sizeFlow.Value().(value.Number)
			asset, aok := assetFlow.Value().(value.String)
			if !sok || !aok {
				e.report(singleError(diagnostics.CodeTypeMismatch, "lods entry must be (num, str)",
					"min-size must be a num and asset must be a str", entry))
				ok = false
				continue
			}
			result.LODs = append(result.LODs, LODEntry{MinSize: float64(size), Asset: string(asset)})
		}
	}

	if main.Behavior != nil {
		values, flow := e.evalTemplateStmts(main.Behavior.Stmts)
		if flow != nil {
			if flow.IsErr() {
				e.report(flow.Diags()...)
			}
			ok = false
		} else {
			result.Root = &value.Block{Values: values}
		}
	}

	return result, ok
}
