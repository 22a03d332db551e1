// Package evaluate implements spec.md §4.2's Expression Evaluator: it
// walks a resolved AST, producing runtime values, compiled RPN code
// blocks, and diagnostics. Grounded on
// original_source/behave/src/evaluation/runtime.rs, whose evaluate_*
// methods this package's Evaluator mirrors one for one.
package evaluate

import (
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// flowKind distinguishes Flow's four outcomes. Go has no operator
// equivalent to Rust's `?`, so every evaluate call that can shortcut
// (error, `return`, `break`) returns a Flow and callers check Kind
// explicitly where the original uses `?` to propagate.
type flowKind int

const (
	flowOk flowKind = iota
	flowReturn
	flowBreak
	flowErr
)

// Flow is the tagged result of evaluating one expression: a plain value,
// a `return` or `break` signal still propagating up to its enclosing
// call/loop, or the list of diagnostics that aborted evaluation of the
// current construct. Mirrors original_source/evaluation/runtime.rs's
// `Flow<'a>` enum, whose `Err` variant carries `Vec<Diagnostic>` rather
// than a single entry, so a construct that independently evaluates
// several sub-expressions (struct-literal fields, call arguments) can
// fail once with every diagnostic that applies instead of only the
// first.
type Flow struct {
	kind  flowKind
	val   value.Value
	diags []*diagnostics.Diagnostic
}

func Ok(v value.Value) Flow     { return Flow{kind: flowOk, val: v} }
func Return(v value.Value) Flow { return Flow{kind: flowReturn, val: v} }
func Break(v value.Value) Flow  { return Flow{kind: flowBreak, val: v} }

// Err builds a failed Flow from one or more diagnostics. Most callers
// pass exactly one; callers that accumulate several independent
// failures (e.g. internal/evaluate/struct.go's bindFields) pass the
// whole collected slice.
func Err(diags ...*diagnostics.Diagnostic) Flow { return Flow{kind: flowErr, diags: diags} }

func (f Flow) IsOk() bool     { return f.kind == flowOk }
func (f Flow) IsReturn() bool { return f.kind == flowReturn }
func (f Flow) IsBreak() bool  { return f.kind == flowBreak }
func (f Flow) IsErr() bool    { return f.kind == flowErr }

// Value returns the carried value for Ok/Return/Break; nil for Err.
func (f Flow) Value() value.Value { return f.val }

// Diags returns every diagnostic carried by an Err Flow; nil otherwise.
func (f Flow) Diags() []*diagnostics.Diagnostic { return f.diags }

// unwind is the evaluator's stand-in for `?`: given a sub-expression's
// Flow, it reports whether the caller must stop and propagate f
// unchanged (true), or may continue using f.Value() (false).
func unwind(f Flow) bool { return !f.IsOk() }
