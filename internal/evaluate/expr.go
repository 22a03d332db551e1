package evaluate

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/typesystem"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// Eval evaluates one expression, dispatching on its concrete node kind.
// This is the evaluator's single entry point, mirroring
// runtime.rs's ExpressionEvaluator::evaluate dispatch.
func (e *Evaluator) Eval(expr ast.Expr) Flow {
	switch n := expr.(type) {
	case *ast.NoneLit:
		return Ok(value.None{})
	case *ast.NumberLit:
		return Ok(value.Number(n.Value))
	case *ast.BoolLit:
		return Ok(value.Boolean(n.Value))
	case *ast.StringLit:
		return Ok(value.String(n.Value))
	case *ast.FunctionLit:
		return e.evalFunctionLit(n)
	case *ast.AccessExpr:
		return e.evalAccess(n)
	case *ast.IndexExpr:
		return e.evalIndex(n)
	case *ast.AssignExpr:
		return e.evalAssign(n)
	case *ast.UnaryExpr:
		return e.evalUnary(n)
	case *ast.BinaryExpr:
		return e.evalBinary(n)
	case *ast.CallExpr:
		return e.evalCall(n)
	case *ast.StructLiteralExpr:
		return e.evalStructLiteral(n)
	case *ast.IfChainExpr:
		return e.evalIfChain(n)
	case *ast.SwitchExpr:
		return e.evalSwitch(n)
	case *ast.WhileExpr:
		return e.evalWhile(n)
	case *ast.ForExpr:
		return e.evalFor(n)
	case *ast.ReturnExpr:
		if n.Value == nil {
			return Return(value.None{})
		}
		f := e.Eval(n.Value)
		if unwind(f) {
			return f
		}
		return Return(f.Value())
	case *ast.BreakExpr:
		if n.Value == nil {
			return Break(value.None{})
		}
		f := e.Eval(n.Value)
		if unwind(f) {
			return f
		}
		return Break(f.Value())
	case *ast.BlockExpr:
		return e.evalBlock(n)
	case *ast.ArrayLit:
		return e.evalArrayLit(n)
	case *ast.MapLit:
		return e.evalMapLit(n)
	case *ast.CodeExpr:
		return e.evalCode(n)
	case *ast.UseExpr:
		return e.evalUse(n)
	case *ast.ComponentExpr:
		return e.evalComponent(n)
	case *ast.AnimationExpr:
		return e.evalAnimation(n)
	case *ast.VisibleExpr:
		return e.evalVisible(n)
	case *ast.EmissiveExpr:
		return e.evalEmissive(n)
	case *ast.VariableDecl:
		return e.evalVariableDecl(n)
	default:
		return Err(diagnostics.Internal("unhandled expression kind", expr.Loc()))
	}
}

func (e *Evaluator) evalFunctionLit(n *ast.FunctionLit) Flow {
	sig := functionSigFromParams(n.Params, n.Ret)
	decl := &ast.FunctionDecl{Params: n.Params, Ret: n.Ret, Body: n.Body, Location: n.Location}
	id := e.Items.AddFunction(items.Function{Decl: decl})
	return Ok(value.Function{ID: id, Sig: sig})
}

// functionSigFromDecl derives a function value's static type from its
// interned item: native functions (currently only `format`) have no
// declaration to read parameter types from, so they're given the fixed
// `fn(str) -> str` shape and checked specially by evalCall instead of
// through the generic arg-count/arg-type path.
func functionSigFromDecl(f *items.Function) typesystem.Function {
	if f.Decl == nil {
		return typesystem.Function{Args: []typesystem.Type{typesystem.Str{}}, Ret: typesystem.Str{}}
	}
	return functionSigFromParams(f.Decl.Params, f.Decl.Ret)
}

func functionSigFromParams(params []ast.Param, ret *ast.Type) typesystem.Function {
	args := make([]typesystem.Type, len(params))
	for i, p := range params {
		args[i] = staticTypeOf(p.Type)
	}
	var retTy typesystem.Type
	if ret != nil {
		retTy = staticTypeOf(ret)
	}
	return typesystem.Function{Args: args, Ret: retTy}
}

// evalAccess resolves an identifier reference using the resolver's
// annotation: a global function/enum reference is already settled, a
// local reference is looked up on the call stack and then walked through
// any remaining dotted segments as struct field accesses.
func (e *Evaluator) evalAccess(n *ast.AccessExpr) Flow {
	if n.Resolved == nil {
		return Err(diagnostics.Internal("access expression was never resolved", n.Location))
	}
	switch n.Resolved.Kind {
	case ast.AccessGlobalFunction:
		id := n.Resolved.Function.(items.FunctionID)
		fn := e.Items.Function(id)
		return Ok(value.Function{ID: id, Sig: functionSigFromDecl(fn)})
	case ast.AccessGlobalEnum:
		id := n.Resolved.Enum.Enum.(items.EnumID)
		return Ok(value.Enum{Enum: id, Tag: n.Resolved.Enum.Tag})
	default:
		v, ok := e.Stack.Lookup(n.Root.Name)
		if !ok {
			return Err(singleError(diagnostics.CodeResolutionUndeclaredType,
				"reference to an unbound name", "no local binding with this name is in scope", n))
		}
		cur := v
		for _, field := range n.Extra {
			obj, ok := cur.(*value.Object)
			if !ok {
				return Err(singleError(diagnostics.CodeDomainNotAnObject,
					"field access on a non-struct value", "this value has no fields", n))
			}
			fv, ok := obj.Fields[field.Name]
			if !ok {
				return Err(singleError(diagnostics.CodeShapeUnknownField,
					"reference to an unknown field", "the struct has no field with this name", field))
			}
			cur = fv
		}
		return Ok(cur)
	}
}

func (e *Evaluator) evalIndex(n *ast.IndexExpr) Flow {
	baseFlow := e.Eval(n.Base)
	if unwind(baseFlow) {
		return baseFlow
	}
	idxFlow := e.Eval(n.Index)
	if unwind(idxFlow) {
		return idxFlow
	}
	base, idx := baseFlow.Value(), idxFlow.Value()

	switch b := base.(type) {
	case *value.Array:
		num, ok := idx.(value.Number)
		if !ok {
			return Err(singleError(diagnostics.CodeTypeMismatch, "array index must be a num",
				"this must be a num", n.Index))
		}
		i := int(num)
		if i < 0 || i >= len(b.Elements) {
			return Err(singleError(diagnostics.CodeDomainIndexOutOfBounds, "array index out of bounds",
				"this index is out of bounds for the array", n.Index))
		}
		return Ok(b.Elements[i])
	case *value.Map:
		if !b.Key.Equal(typeOf(idx)) {
			return Err(singleError(diagnostics.CodeTypeMismatch, "incorrect map index type",
				"this index is a "+typeOf(idx).String(), n.Index).WithNote("the map's keys are "+b.Key.String()))
		}
		v, ok := b.Get(valuesEqual, idx)
		if !ok {
			return Err(singleError(diagnostics.CodeDomainKeyAbsent, "key does not exist in map",
				"no entry in the map matches this key", n.Index))
		}
		return Ok(v)
	default:
		return Err(singleError(diagnostics.CodeDomainNotIndexable, "value is not indexable",
			"only arrays and maps can be indexed", n.Base))
	}
}

func (e *Evaluator) evalAssign(n *ast.AssignExpr) Flow {
	valFlow := e.Eval(n.Value)
	if unwind(valFlow) {
		return valFlow
	}
	newVal := valFlow.Value()

	switch target := n.Target.(type) {
	case *ast.AccessExpr:
		if len(target.Extra) > 0 {
			return Err(singleError(diagnostics.CodeInternal, "assignment to a struct field is not supported",
				"only plain local bindings and array elements can be assigned", n))
		}
		existing, ok := e.Stack.Lookup(target.Root.Name)
		if !ok {
			return Err(singleError(diagnostics.CodeResolutionUndeclaredType, "assignment to an unbound name",
				"no local binding with this name is in scope", target))
		}
		if !typeOf(existing).Equal(typeOf(newVal)) {
			return Err(typeError(diagnostics.CodeTypeAssignmentMismatch, "assignment changes the binding's type",
				"this binding already holds a "+typeOf(existing).String(), target,
				"but this value is a "+typeOf(newVal).String(), n.Value))
		}
		e.Stack.Assign(target.Root.Name, newVal)
		return Ok(value.None{})

	case *ast.IndexExpr:
		baseFlow := e.Eval(target.Base)
		if unwind(baseFlow) {
			return baseFlow
		}
		arr, ok := baseFlow.Value().(*value.Array)
		if !ok {
			return Err(singleError(diagnostics.CodeDomainNotIndexable, "assignment target is not an array",
				"only array elements can be assigned through an index", target.Base))
		}
		idxFlow := e.Eval(target.Index)
		if unwind(idxFlow) {
			return idxFlow
		}
		num, ok := idxFlow.Value().(value.Number)
		if !ok {
			return Err(singleError(diagnostics.CodeTypeMismatch, "array index must be a num",
				"this must be a num", target.Index))
		}
		i := int(num)
		if i < 0 || i >= len(arr.Elements) {
			return Err(singleError(diagnostics.CodeDomainIndexOutOfBounds, "array index out of bounds",
				"this index is out of bounds for the array", target.Index))
		}
		if !arr.Elem.Equal(typeOf(newVal)) {
			return Err(typeError(diagnostics.CodeTypeAssignmentMismatch, "assignment changes the array's element type",
				"the array holds "+arr.Elem.String(), target, "but this value is a "+typeOf(newVal).String(), n.Value))
		}
		arr.Elements[i] = newVal
		return Ok(value.None{})

	default:
		return Err(singleError(diagnostics.CodeInternal, "invalid assignment target",
			"only local bindings and array elements can appear on the left of `=`", n.Target))
	}
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpr) Flow {
	f := e.Eval(n.Operand)
	if unwind(f) {
		return f
	}
	v := f.Value()
	switch n.Op {
	case ast.UnaryNeg:
		num, ok := v.(value.Number)
		if !ok {
			return Err(singleError(diagnostics.CodeTypeMismatch, "`-` requires a num",
				"this must be a num", n.Operand))
		}
		return Ok(value.Number(-num))
	case ast.UnaryNot:
		b, ok := v.(value.Boolean)
		if !ok {
			return Err(singleError(diagnostics.CodeTypeMismatch, "`!` requires a bool",
				"this must be a bool", n.Operand))
		}
		return Ok(value.Boolean(!b))
	default:
		return Err(diagnostics.Internal("unhandled unary operator", n.Location))
	}
}

func (e *Evaluator) evalBlock(n *ast.BlockExpr) Flow {
	e.Stack.PushScope()
	defer e.Stack.PopScope()

	for _, stmt := range n.Stmts {
		f := e.Eval(stmt)
		if unwind(f) {
			return f
		}
	}
	if n.Trailing == nil {
		return Ok(value.None{})
	}
	return e.Eval(n.Trailing)
}

// evalVariableDecl evaluates a local `let` binding: its initializer,
// checked against an explicit type annotation if one was written, then
// defined into the innermost scope of the current frame. A let binding
// itself has no meaningful result, matching how the evaluator treats
// any other statement executed purely for effect.
func (e *Evaluator) evalVariableDecl(n *ast.VariableDecl) Flow {
	f := e.Eval(n.Value)
	if unwind(f) {
		return f
	}
	if n.Type != nil {
		want := staticTypeOf(n.Type)
		got := typeOf(f.Value())
		if !want.Equal(got) {
			return Err(typeError(diagnostics.CodeTypeAssignmentMismatch, "let binding type mismatch",
				"declared as "+want.String(), n.Type, "but the initializer is a "+got.String(), n.Value))
		}
	}
	e.Stack.Define(n.Name.Name, f.Value())
	return Ok(value.None{})
}

func (e *Evaluator) evalIfChain(n *ast.IfChainExpr) Flow {
	for i, cond := range n.Conditions {
		f := e.Eval(cond)
		if unwind(f) {
			return f
		}
		b, ok := f.Value().(value.Boolean)
		if !ok {
			return Err(singleError(diagnostics.CodeTypeMismatch, "condition must be a bool",
				"this must be a bool", cond))
		}
		if bool(b) {
			return e.evalBlock(n.Blocks[i])
		}
	}
	if n.Else != nil {
		return e.evalBlock(n.Else)
	}
	return Ok(value.None{})
}

func (e *Evaluator) evalSwitch(n *ast.SwitchExpr) Flow {
	subjF := e.Eval(n.Subject)
	if unwind(subjF) {
		return subjF
	}
	subj := subjF.Value()

	for _, c := range n.Cases {
		vf := e.Eval(c.Value)
		if unwind(vf) {
			return vf
		}
		if valuesEqual(subj, vf.Value()) {
			return e.Eval(c.Result)
		}
	}
	return Ok(value.None{})
}

func (e *Evaluator) evalWhile(n *ast.WhileExpr) Flow {
	for {
		condF := e.Eval(n.Cond)
		if unwind(condF) {
			return condF
		}
		b, ok := condF.Value().(value.Boolean)
		if !ok {
			return Err(singleError(diagnostics.CodeTypeMismatch, "condition must be a bool",
				"this must be a bool", n.Cond))
		}
		if !b {
			return Ok(value.None{})
		}
		f := e.evalBlock(n.Body)
		if f.IsBreak() {
			return Ok(f.Value())
		}
		if unwind(f) {
			return f
		}
	}
}

func (e *Evaluator) evalFor(n *ast.ForExpr) Flow {
	iterF := e.Eval(n.Iterable)
	if unwind(iterF) {
		return iterF
	}

	run := func(item value.Value) Flow {
		e.Stack.PushScope()
		e.Stack.Define(n.Binding.Name, item)
		f := e.evalBlock(n.Body)
		e.Stack.PopScope()
		return f
	}

	switch it := iterF.Value().(type) {
	case *value.Array:
		for _, el := range it.Elements {
			f := run(el)
			if f.IsBreak() {
				return Ok(f.Value())
			}
			if unwind(f) {
				return f
			}
		}
	case *value.Map:
		for _, pair := range it.Pairs {
			f := run(&value.Object{
				Fields:     map[string]value.Value{"key": pair.Key, "value": pair.Value},
				FieldOrder: []string{"key", "value"},
			})
			if f.IsBreak() {
				return Ok(f.Value())
			}
			if unwind(f) {
				return f
			}
		}
	default:
		return Err(singleError(diagnostics.CodeTypeMismatch, "for-loop requires an array or map",
			"this must be an array or a map", n.Iterable))
	}
	return Ok(value.None{})
}

func (e *Evaluator) evalArrayLit(n *ast.ArrayLit) Flow {
	var elems []value.Value
	var elemType typesystem.Type
	var firstEl ast.Expr
	var diags []*diagnostics.Diagnostic

	for _, el := range n.Elements {
		f := e.Eval(el)
		if f.IsErr() {
			diags = append(diags, f.Diags()...)
			continue
		}
		if !f.IsOk() {
			return f
		}
		v := f.Value()
		if elemType == nil {
			elemType = typeOf(v)
			firstEl = el
			elems = append(elems, v)
			continue
		}
		if !elemType.Equal(typeOf(v)) {
			diags = append(diags, typeError(diagnostics.CodeTypeElementMismatch, "array element type mismatch",
				"previous elements are "+elemType.String(), firstEl, "but this element is a "+typeOf(v).String(), el))
			continue
		}
		elems = append(elems, v)
	}
	if len(diags) > 0 {
		return Err(diags...)
	}
	if elemType == nil {
		elemType = typesystem.NoneType{}
	}
	return Ok(&value.Array{Elem: elemType, Elements: elems})
}

func (e *Evaluator) evalMapLit(n *ast.MapLit) Flow {
	var pairs []value.Pair
	var keyType, valType typesystem.Type
	var diags []*diagnostics.Diagnostic

	for _, ent := range n.Entries {
		kf := e.Eval(ent.Key)
		if kf.IsErr() {
			diags = append(diags, kf.Diags()...)
			continue
		}
		if !kf.IsOk() {
			return kf
		}
		vf := e.Eval(ent.Value)
		if vf.IsErr() {
			diags = append(diags, vf.Diags()...)
			continue
		}
		if !vf.IsOk() {
			return vf
		}
		k, v := kf.Value(), vf.Value()
		if keyType == nil {
			keyType, valType = typeOf(k), typeOf(v)
			pairs = append(pairs, value.Pair{Key: k, Value: v})
			continue
		}
		if !keyType.Equal(typeOf(k)) || !valType.Equal(typeOf(v)) {
			diags = append(diags, typeError(diagnostics.CodeTypeElementMismatch, "map entry type mismatch",
				"previous entries are "+keyType.String()+" -> "+valType.String(), n,
				"but this entry is "+typeOf(k).String()+" -> "+typeOf(v).String(), ent.Value))
			continue
		}
		pairs = append(pairs, value.Pair{Key: k, Value: v})
	}
	if len(diags) > 0 {
		return Err(diags...)
	}
	if keyType == nil {
		keyType, valType = typesystem.NoneType{}, typesystem.NoneType{}
	}
	return Ok(&value.Map{Key: keyType, Value: valType, Pairs: pairs})
}

// valuesEqual implements spec.md §9's structural equality for runtime
// values: same dynamic type and same contents; enum equality compares
// both the enum id and the tag (same variant of the same declaration),
// not just the tag number.
func valuesEqual(a, b value.Value) bool {
	if !typeOf(a).Equal(typeOf(b)) {
		return false
	}
	switch av := a.(type) {
	case value.None:
		return true
	case value.Number:
		return av == b.(value.Number)
	case value.Boolean:
		return av == b.(value.Boolean)
	case value.String:
		return av == b.(value.String)
	case value.Enum:
		bv := b.(value.Enum)
		return av.Enum == bv.Enum && av.Tag == bv.Tag
	case *value.Array:
		bv := b.(*value.Array)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !valuesEqual(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case *value.Map:
		bv := b.(*value.Map)
		if len(av.Pairs) != len(bv.Pairs) {
			return false
		}
		for i := range av.Pairs {
			if !valuesEqual(av.Pairs[i].Key, bv.Pairs[i].Key) || !valuesEqual(av.Pairs[i].Value, bv.Pairs[i].Value) {
				return false
			}
		}
		return true
	case *value.Object:
		bv := b.(*value.Object)
		if av.Struct != bv.Struct {
			return false
		}
		for _, name := range av.FieldOrder {
			if !valuesEqual(av.Fields[name], bv.Fields[name]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
