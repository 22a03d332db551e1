package evaluate

import (
	"strconv"
	"strings"

	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/config"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// evalCall evaluates a call's callee and arguments (collecting per-
// argument errors and continuing, like array/map literals), then either
// dispatches to a native implementation or pushes a fresh frame and runs
// the user function's body, absorbing a `return` into the call's result.
// A `break` that escapes the body with no enclosing loop is a control-
// flow error: functions don't inherit a loop context from their caller.
func (e *Evaluator) evalCall(n *ast.CallExpr) Flow {
	calleeFlow := e.Eval(n.Callee)
	if unwind(calleeFlow) {
		return calleeFlow
	}
	fnVal, ok := calleeFlow.Value().(value.Function)
	if !ok {
		return Err(singleError(diagnostics.CodeTypeMismatch, "call target is not a function",
			"this value is not callable", n.Callee))
	}

	args := make([]value.Value, 0, len(n.Args))
	var argDiags []*diagnostics.Diagnostic
	for _, a := range n.Args {
		f := e.Eval(a)
		if f.IsErr() {
			argDiags = append(argDiags, f.Diags()...)
			continue
		}
		if !f.IsOk() {
			return f
		}
		args = append(args, f.Value())
	}
	if len(argDiags) > 0 {
		return Err(argDiags...)
	}

	fn := e.Items.Function(fnVal.ID)
	if fn.Native != "" {
		return e.evalNative(fn.Native, n, args)
	}

	decl := fn.Decl
	if len(args) != len(decl.Params) {
		return Err(singleError(diagnostics.CodeShapeMissingArgument, "wrong number of arguments",
			"this call does not match the function's parameter list", n))
	}
	for i, p := range decl.Params {
		if p.Type != nil && !staticTypeOf(p.Type).Equal(typeOf(args[i])) {
			return Err(typeError(diagnostics.CodeTypeArgumentMismatch, "argument type mismatch",
				"parameter `"+p.Name.Name+"` expects "+staticTypeOf(p.Type).String(), p.Type,
				"but this argument is a "+typeOf(args[i]).String(), n.Args[i]))
		}
	}

	e.Stack.PushFrame()
	for i, p := range decl.Params {
		e.Stack.Define(p.Name.Name, args[i])
	}
	result := e.evalBlock(decl.Body)
	e.Stack.PopFrame()

	switch {
	case result.IsReturn():
		return Ok(result.Value())
	case result.IsBreak():
		return Err(singleError(diagnostics.CodeControlFlowBadBreak, "`break` outside a loop",
			"this break has no enclosing loop in the function it appears in", decl.Body))
	default:
		return result
	}
}

// evalNative dispatches the handful of built-in functions seeded directly
// into the item map (currently only `format`).
func (e *Evaluator) evalNative(name string, call *ast.CallExpr, args []value.Value) Flow {
	switch name {
	case config.FormatFuncName:
		return e.evalFormat(call, args)
	default:
		return Err(diagnostics.Internal("unknown native function "+name, call.Location))
	}
}

// evalFormat implements `format(fmt, ...)`: each "{}" placeholder in fmt
// is replaced, left to right, by the stringified form of the
// corresponding extra argument. An arity mismatch (fewer/more
// placeholders than arguments) is a shape error.
func (e *Evaluator) evalFormat(call *ast.CallExpr, args []value.Value) Flow {
	if len(args) == 0 {
		return Err(singleError(diagnostics.CodeShapeFormatMissing, "format requires a format string",
			"this call has no format string argument", call))
	}
	fs, ok := args[0].(value.String)
	if !ok {
		return Err(singleError(diagnostics.CodeTypeMismatch, "format's first argument must be a str",
			"this must be a str", call.Args[0]))
	}

	placeholders := strings.Count(string(fs), "{}")
	extra := args[1:]
	if placeholders != len(extra) {
		return Err(singleError(diagnostics.CodeShapeFormatArity, "format placeholder count does not match argument count",
			"this call's placeholders and extra arguments do not match in number", call))
	}

	out := string(fs)
	for _, a := range extra {
		out = strings.Replace(out, "{}", stringify(a), 1)
	}
	return Ok(value.String(out))
}

func stringify(v value.Value) string {
	switch x := v.(type) {
	case value.String:
		return string(x)
	case value.Number:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case value.Boolean:
		return strconv.FormatBool(bool(x))
	case value.None:
		return "none"
	default:
		return "<value>"
	}
}
