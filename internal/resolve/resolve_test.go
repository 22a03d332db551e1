package resolve

import (
	"testing"

	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/parser"
)

func treeWithSecondary(t *testing.T, segments []string, src string) *ast.Tree {
	t.Helper()
	f, diags := parser.ParseSecondary("test.bhi", src)
	if len(diags) != 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}
	tree := ast.NewTree()
	tree.Insert(segments, f)
	return tree
}

func hasCode(diags []*diagnostics.Diagnostic, code diagnostics.Code) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestResolveFindsTemplateAcrossFiles(t *testing.T) {
	tree := treeWithSecondary(t, []string{"wheels"}, `
template Wheel(radius: num) {
	component(name: "wheel", node: "Wheel") {
		visible(code { true });
	}
}`)
	main, diags := parser.ParseMain("main.bhv", `
behavior {
	use wheels.Wheel(radius: 1.0);
}`)
	if len(diags) != 0 {
		t.Fatalf("unexpected parse diagnostics: %v", diags)
	}

	im := items.New()
	got := Resolve(main, tree, im)
	if len(got) != 0 {
		t.Fatalf("unexpected resolve diagnostics: %v", got)
	}

	use := main.Behavior.Stmts[0].(*ast.UseExpr)
	if use.Resolved == nil {
		t.Fatalf("expected UseExpr.Resolved to be set")
	}
}

func TestResolveReportsUndeclaredTemplate(t *testing.T) {
	tree := ast.NewTree()
	main, _ := parser.ParseMain("main.bhv", `
behavior {
	use wheels.DoesNotExist(radius: 1.0);
}`)

	im := items.New()
	got := Resolve(main, tree, im)
	if !hasCode(got, diagnostics.CodeResolutionUndeclaredTemplate) {
		t.Fatalf("expected an undeclared-template diagnostic, got %v", got)
	}
}

func TestResolveReportsRedeclaration(t *testing.T) {
	tree := treeWithSecondary(t, []string{"shapes"}, `
struct Point { x: num, y: num }
struct Point { x: num }
`)
	main, _ := parser.ParseMain("main.bhv", `behavior {}`)

	im := items.New()
	got := Resolve(main, tree, im)
	var d *diagnostics.Diagnostic
	for _, cand := range got {
		if cand.Code == diagnostics.CodeResolutionRedeclaration {
			d = cand
		}
	}
	if d == nil {
		t.Fatalf("expected a redeclaration diagnostic, got %v", got)
	}
	var hasPrimary, hasSecondary bool
	for _, l := range d.Labels {
		switch l.Style {
		case diagnostics.Primary:
			hasPrimary = true
		case diagnostics.Secondary:
			hasSecondary = true
		}
	}
	if !hasPrimary {
		t.Fatalf("expected a primary label on the new declaration, got %v", d.Labels)
	}
	if !hasSecondary {
		t.Fatalf("expected a secondary label pointing at the previous declaration, got %v", d.Labels)
	}
}

func TestResolveReportsMissingImport(t *testing.T) {
	tree := ast.NewTree()
	main, _ := parser.ParseMain("main.bhv", `
import does.not.exist;
behavior {}`)

	im := items.New()
	got := Resolve(main, tree, im)
	if !hasCode(got, diagnostics.CodeResolutionImportMissing) {
		t.Fatalf("expected an import-missing diagnostic, got %v", got)
	}
}
