package evaluate

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// fieldSpec is the shape both a struct field and a template parameter
// reduce to for the shared provided/defaults binding protocol below.
type fieldSpec struct {
	Name    string
	Type    *ast.Type // nil: infer from Default's evaluated value
	Default ast.Expr
}

func specsFromStructFields(fields []ast.StructField) []fieldSpec {
	out := make([]fieldSpec, len(fields))
	for i, f := range fields {
		out[i] = fieldSpec{Name: f.Name.Name, Type: f.Type, Default: f.Default}
	}
	return out
}

func specsFromParams(params []ast.Param) []fieldSpec {
	out := make([]fieldSpec, len(params))
	for i, p := range params {
		out[i] = fieldSpec{Name: p.Name.Name, Type: p.Type, Default: p.Default}
	}
	return out
}

// bindFields implements the two-pass provided/defaults protocol spec.md
// §4.2.1 and §4.2.2 both describe for struct literals and template uses:
// every explicitly provided field is evaluated and type-checked against
// its declared slot first; any field left unprovided falls back to its
// default expression, and any field with neither is a missing-field
// error. Unknown provided names are diagnosed and skipped rather than
// aborting immediately, matching the evaluator's list-like
// collect-and-continue policy — every problem found along the way is
// accumulated into the returned diagnostic list (spec.md §5's merged
// Err(diagnostics) outcome) rather than reported directly, so the
// caller can fail once with the complete list instead of this call
// reporting independently of whatever Flow it returns.
func (e *Evaluator) bindFields(specs []fieldSpec, provided []ast.FieldInit, errNode ast.Node) (map[string]value.Value, []string, []*diagnostics.Diagnostic) {
	byName := make(map[string]fieldSpec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}

	fields := make(map[string]value.Value, len(specs))
	providedSet := make(map[string]bool, len(provided))
	var diags []*diagnostics.Diagnostic

	for _, f := range provided {
		spec, known := byName[f.Name.Name]
		if !known {
			diags = append(diags, singleError(diagnostics.CodeShapeUnknownField, "unknown field in literal",
				"no field or parameter with this name exists", f.Name))
			continue
		}
		valFlow := e.Eval(f.Value)
		if valFlow.IsErr() {
			diags = append(diags, valFlow.Diags()...)
			continue
		}
		if !valFlow.IsOk() {
			continue
		}
		val := valFlow.Value()
		if spec.Type != nil && !staticTypeOf(spec.Type).Equal(typeOf(val)) {
			diags = append(diags, typeError(diagnostics.CodeTypeFieldMismatch, "field type mismatch",
				"`"+spec.Name+"` expects "+staticTypeOf(spec.Type).String(), spec.Type,
				"but this value is a "+typeOf(val).String(), f.Value))
			continue
		}
		fields[f.Name.Name] = val
		providedSet[f.Name.Name] = true
	}

	order := make([]string, 0, len(specs))
	for _, spec := range specs {
		if providedSet[spec.Name] {
			order = append(order, spec.Name)
			continue
		}
		if spec.Default != nil {
			df := e.Eval(spec.Default)
			if df.IsErr() {
				diags = append(diags, df.Diags()...)
				continue
			}
			fields[spec.Name] = df.Value()
			order = append(order, spec.Name)
			continue
		}
		diags = append(diags, singleError(diagnostics.CodeShapeMissingField, "missing required field",
			"`"+spec.Name+"` has no default and was not provided", errNode))
	}

	return fields, order, diags
}

// evalStructLiteral evaluates `Type { field: value, ... }`, binding
// against the resolved struct's field list via bindFields.
func (e *Evaluator) evalStructLiteral(n *ast.StructLiteralExpr) Flow {
	ut, isUser := n.Type.Expr.(*ast.UserType)
	if !isUser || ut.Resolved == nil {
		return Err(singleError(diagnostics.CodeResolutionUndeclaredType, "struct literal names an unresolved type",
			"this type could not be resolved", n.Type))
	}
	if ut.Resolved.Kind != ast.ResolvedStructType {
		return Err(singleError(diagnostics.CodeContextStructOnEnum, "struct literal syntax used on an enum type",
			"this names an enum, which has no fields to initialize", n.Type))
	}
	sid := ut.Resolved.Struct.(items.StructID)
	s := e.Items.Struct(sid)

	fields, order, diags := e.bindFields(specsFromStructFields(s.Decl.Fields), n.Fields, n)
	if len(diags) > 0 {
		return Err(diags...)
	}
	return Ok(&value.Object{Struct: sid, Fields: fields, FieldOrder: order})
}
