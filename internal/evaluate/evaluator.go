package evaluate

import (
	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/typesystem"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// ContextualInfo tracks the two pieces of ambient state the original
// threads through evaluation that aren't plain lexical bindings: whether
// the current statement is nested inside a component body, and whether
// that enclosing component is bound to a scene node (visible/emissive
// statements require both).
type ContextualInfo struct {
	InComponent      bool
	ComponentHasNode bool
}

// Evaluator is spec.md §4.2's Expression Evaluator: resolved-AST walker,
// call stack, and diagnostic sink, all sharing one item map with the
// resolver that produced the AST it's walking.
type Evaluator struct {
	Items *items.Map
	Stack *value.CallStack

	ctx   []ContextualInfo
	diags []*diagnostics.Diagnostic
}

// New builds an evaluator ready to evaluate a resolved main file's
// top-level behavior block.
func New(items *items.Map) *Evaluator {
	return &Evaluator{
		Items: items,
		Stack: value.NewCallStack(),
		ctx:   []ContextualInfo{{}},
	}
}

func (e *Evaluator) Diagnostics() []*diagnostics.Diagnostic { return e.diags }

func (e *Evaluator) report(ds ...*diagnostics.Diagnostic) {
	e.diags = append(e.diags, ds...)
}

func (e *Evaluator) context() ContextualInfo { return e.ctx[len(e.ctx)-1] }

func (e *Evaluator) pushContext(c ContextualInfo) { e.ctx = append(e.ctx, c) }
func (e *Evaluator) popContext()                  { e.ctx = e.ctx[:len(e.ctx)-1] }

// typeOf returns a runtime value's static type, the spec.md §3 contract
// every diagnostic and type-checking rule compares against.
func typeOf(v value.Value) typesystem.Type { return v.Type() }

// typeError builds the "two primary labels" diagnostic shape spec.md's
// binary/assignment/argument type mismatches use: one label on the
// expected side, one on the actual side, both Primary (not
// primary+secondary) since neither side is more at fault than the other.
func typeError(code diagnostics.Code, headline string, aMsg string, aLoc ast.Node, bMsg string, bLoc ast.Node) *diagnostics.Diagnostic {
	return diagnostics.Errorf(code, headline).
		WithLabel(diagnostics.PrimaryLabel(aMsg, aLoc.Loc())).
		WithLabel(diagnostics.PrimaryLabel(bMsg, bLoc.Loc()))
}

func singleError(code diagnostics.Code, headline, msg string, loc ast.Node) *diagnostics.Diagnostic {
	return diagnostics.Errorf(code, headline).WithLabel(diagnostics.PrimaryLabel(msg, loc.Loc()))
}

// boolToNumHint is the note attached when a `bool`-typed code block is
// used where a `num` is required (animation `value`, `emissive(...)`):
// spec.md §3's "no implicit coercion exists between bool, num, str"
// means this is always an error, but the suggested fix is worth
// spelling out since `bool * num` is the idiomatic way to turn a
// condition into a 0/1 value.
const boolToNumHint = "you can convert a `bool` to a `num` by multiplying it with a number"

func locOf(e ast.Expr) ast.Node { return e }
