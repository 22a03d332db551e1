package evaluate

import (
	"testing"

	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/parser"
	"github.com/Synaptic-Simulations/behave/internal/resolve"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

// resolvedFunctionBody parses src as a secondary file, resolves it
// against an empty main file, and returns the body of the function
// named fnName, ready to evaluate directly with evalBlock.
func resolvedFunctionBody(t *testing.T, src, fnName string) (*ast.BlockExpr, *items.Map) {
	t.Helper()
	f, diags := parser.ParseSecondary("test.bhi", src)
	if len(diags) != 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	tree := ast.NewTree()
	tree.Insert([]string{"test"}, f)

	main, _ := parser.ParseMain("main.bhv", `behavior {}`)
	im := items.New()
	resolveDiags := resolve.Resolve(main, tree, im)
	if len(resolveDiags) != 0 {
		t.Fatalf("unexpected resolve diagnostics: %v", resolveDiags)
	}

	for _, item := range f.Items {
		if item.Function != nil && item.Function.Name.Name == fnName {
			return item.Function.Body, im
		}
	}
	t.Fatalf("no function named %q in source", fnName)
	return nil, nil
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	body, im := resolvedFunctionBody(t, `fn f() -> num { 1 + 2 * 3 }`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if flow.IsErr() {
		t.Fatalf("unexpected error: %s", flow.Diags()[0].Message)
	}
	n, ok := flow.Value().(value.Number)
	if !ok || n != 7 {
		t.Fatalf("got %v, want 7", flow.Value())
	}
}

func TestEvalLocalLetBindsAndShadows(t *testing.T) {
	body, im := resolvedFunctionBody(t, `fn f() -> num { let x = 1; let x = x + 1; x }`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if flow.IsErr() {
		t.Fatalf("unexpected error: %s", flow.Diags()[0].Message)
	}
	if flow.Value() != value.Number(2) {
		t.Fatalf("got %v, want 2", flow.Value())
	}
}

func TestEvalStructLiteralAndFieldAccess(t *testing.T) {
	body, im := resolvedFunctionBody(t, `
struct Point { x: num, y: num }
fn f() -> num {
	let p = new Point { x: 3, y: 4 };
	p.x + p.y
}`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if flow.IsErr() {
		t.Fatalf("unexpected error: %s", flow.Diags()[0].Message)
	}
	if flow.Value() != value.Number(7) {
		t.Fatalf("got %v, want 7", flow.Value())
	}
}

func TestEvalFunctionCallWithReturn(t *testing.T) {
	body, im := resolvedFunctionBody(t, `
fn add(a: num, b: num) -> num { return a + b; }
fn f() -> num { add(2, 3) }`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if flow.IsErr() {
		t.Fatalf("unexpected error: %s", flow.Diags()[0].Message)
	}
	if flow.Value() != value.Number(5) {
		t.Fatalf("got %v, want 5", flow.Value())
	}
}

func TestEvalIfChainTakesFirstTrueBranch(t *testing.T) {
	body, im := resolvedFunctionBody(t, `fn f() -> num { if false { 1 } else if true { 2 } else { 3 } }`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if flow.IsErr() {
		t.Fatalf("unexpected error: %s", flow.Diags()[0].Message)
	}
	if flow.Value() != value.Number(2) {
		t.Fatalf("got %v, want 2", flow.Value())
	}
}

func TestEvalBinaryTypeMismatchReportsDiagnostic(t *testing.T) {
	body, im := resolvedFunctionBody(t, `fn f() -> num { 1 + "x" }`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if !flow.IsErr() {
		t.Fatalf("expected a type-mismatch error, got %v", flow.Value())
	}
}

// TestStringFormat is spec.md §8 scenario 1: format("hello {}, you are
// {}", "world", 42) ⇒ "hello world, you are 42".
func TestStringFormat(t *testing.T) {
	body, im := resolvedFunctionBody(t, `fn f() -> str { format("hello {}, you are {}", "world", 42) }`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if flow.IsErr() {
		t.Fatalf("unexpected error: %s", flow.Diags()[0].Message)
	}
	if flow.Value() != value.String("hello world, you are 42") {
		t.Fatalf("got %v, want %q", flow.Value(), "hello world, you are 42")
	}
}

// TestArrayTypeMismatch is spec.md §8 scenario 3: [1, "two"] diagnoses
// one element-type-mismatch error with two labels, one at the first
// element (which fixed the element type) and one at the mismatched
// element. The array literal fails as a whole, so the diagnostic comes
// back in the Err Flow.
func TestArrayTypeMismatch(t *testing.T) {
	body, im := resolvedFunctionBody(t, `fn f() -> num { [1, "two"]; 0 }`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if !flow.IsErr() {
		t.Fatalf("expected an element-type-mismatch error, got %v", flow.Value())
	}
	diags := flow.Diags()
	if len(diags) != 1 || diags[0].Code != diagnostics.CodeTypeElementMismatch {
		t.Fatalf("expected one element-type-mismatch diagnostic, got %v", diags)
	}
	if len(diags[0].Labels) != 2 {
		t.Fatalf("expected two labels, got %v", diags[0].Labels)
	}
}

// TestUnknownStructField is spec.md §8 scenario 4: Foo { a: 1, zzz: 2 }
// where Foo has only field a diagnoses one "unknown field" error at the
// zzz identifier.
func TestUnknownStructField(t *testing.T) {
	body, im := resolvedFunctionBody(t, `
struct Foo { a: num }
fn f() -> num {
	let x = new Foo { a: 1, zzz: 2 };
	0
}`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if !flow.IsErr() {
		t.Fatalf("expected an unknown-field error, got %v", flow.Value())
	}
	if len(flow.Diags()) != 1 || flow.Diags()[0].Code != diagnostics.CodeShapeUnknownField {
		t.Fatalf("expected one unknown-field diagnostic, got %v", flow.Diags())
	}
}

// TestVisibilityOutsideComponent is spec.md §8 scenario 5: a top-level
// visible(code { true }) outside any node-bound component diagnoses
// "visibility condition has no node".
func TestVisibilityOutsideComponent(t *testing.T) {
	body, im := resolvedFunctionBody(t, `fn f() -> num { visible(code { true }); 0 }`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if !flow.IsErr() {
		t.Fatalf("expected a no-node error, got %v", flow.Value())
	}
	if flow.Diags()[0].Code != diagnostics.CodeContextNoNode {
		t.Fatalf("got code %v, want %v", flow.Diags()[0].Code, diagnostics.CodeContextNoNode)
	}
}

// TestEnumEquality is spec.md §8 scenario 6: E.A == E.A is true, E.A ==
// E.B is false, and E.A == 0 diagnoses "cannot equate" rather than
// coercing the enum to its tag number.
func TestEnumEquality(t *testing.T) {
	eval := func(src string) Flow {
		body, im := resolvedFunctionBody(t, src, "f")
		e := New(im)
		return e.evalBlock(body)
	}

	if flow := eval(`enum E { A, B } fn f() -> bool { E.A == E.A }`); flow.IsErr() || flow.Value() != value.Boolean(true) {
		t.Fatalf("E.A == E.A: got %v, err=%v", flow.Value(), flow.IsErr())
	}
	if flow := eval(`enum E { A, B } fn f() -> bool { E.A == E.B }`); flow.IsErr() || flow.Value() != value.Boolean(false) {
		t.Fatalf("E.A == E.B: got %v, err=%v", flow.Value(), flow.IsErr())
	}
	if flow := eval(`enum E { A, B } fn f() -> bool { E.A == 0 }`); !flow.IsErr() {
		t.Fatalf("E.A == 0: expected a \"cannot equate\" error, got %v", flow.Value())
	}
}

func TestEvalWhileLoopAccumulates(t *testing.T) {
	body, im := resolvedFunctionBody(t, `
fn f() -> num {
	let total = 0;
	let i = 0;
	while i < 3 {
		total = total + i;
		i = i + 1;
	};
	total
}`, "f")
	e := New(im)
	flow := e.evalBlock(body)
	if flow.IsErr() {
		t.Fatalf("unexpected error: %s", flow.Diags()[0].Message)
	}
	if flow.Value() != value.Number(3) {
		t.Fatalf("got %v, want 3 (0+1+2)", flow.Value())
	}
}
