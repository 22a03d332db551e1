package pipeline

import (
	"strings"
	"testing"

	"github.com/Synaptic-Simulations/behave/internal/testutil"
)

const fixture = `
-- main.bhv --
lods {
	10: "high.glb";
	0: "low.glb";
}
behavior {
	use wheels.Wheel(radius: 1.0);
}
-- wheels.bhi --
template Wheel(radius: num) {
	component(name: "wheel", node: "Wheel") {
		visible(code { true });
		animation(name: "spin", lag: 0.1, length: 1.0, value: code { radius * 2 });
		emissive(code { 1 });
	}
}
`

func TestRunCompilesFixtureProject(t *testing.T) {
	root := testutil.WriteProject(t, fixture)

	result := Run(root)
	if result.HasErrors() {
		for _, d := range result.Diagnostics {
			t.Logf("diag: %s", d.Message)
		}
		t.Fatalf("unexpected errors compiling fixture project")
	}

	want := []string{
		`<LOD minSize="10"`,
		`asset="high.glb"`,
		`<LOD minSize="0"`,
		`asset="low.glb"`,
		`<Component Name="wheel" Node="Wheel">`,
		`<Visibility>`,
		`<Animation Name="spin" Lag="0.1" Length="1">`,
		`<Emissive>`,
	}
	for _, w := range want {
		if !strings.Contains(result.XML, w) {
			t.Errorf("output missing %q\nfull output:\n%s", w, result.XML)
		}
	}
}

func TestRunReportsMissingTemplate(t *testing.T) {
	root := testutil.WriteProject(t, `
-- main.bhv --
behavior {
	use wheels.DoesNotExist(radius: 1.0);
}
-- wheels.bhi --
template Wheel(radius: num) {
	component(name: "wheel", node: "Wheel") {
		visible(code { true });
	}
}
`)

	result := Run(root)
	if !result.HasErrors() {
		t.Fatalf("expected an error for an undeclared template reference")
	}
}

func TestRunReportsSyntaxError(t *testing.T) {
	root := testutil.WriteProject(t, `
-- main.bhv --
behavior {
	use (
}
`)

	result := Run(root)
	if !result.HasErrors() {
		t.Fatalf("expected a syntax error diagnostic")
	}
}
