package backend

import (
	"strings"
	"testing"

	"github.com/Synaptic-Simulations/behave/internal/evaluate"
	"github.com/Synaptic-Simulations/behave/internal/rpn"
	"github.com/Synaptic-Simulations/behave/internal/value"
)

func TestEmitRendersLODsAndBehaviors(t *testing.T) {
	visStream := &rpn.Stream{}
	visStream.PushBool(true)

	animStream := &rpn.Stream{}
	animStream.LoadVar("radius")

	result := &evaluate.Result{
		LODs: []evaluate.LODEntry{
			{MinSize: 10, Asset: "high.glb"},
			{MinSize: 0, Asset: "low.glb"},
		},
		Root: &value.Block{Values: []value.TemplateValue{
			&value.RuntimeComponent{
				Name:    "wheel",
				Node:    "Wheel",
				HasNode: true,
				Body: &value.Block{Values: []value.TemplateValue{
					&value.Visibility{Stream: visStream},
					&value.RuntimeAnimation{Name: "spin", Lag: 0.1, Length: 1, Value: animStream},
				}},
			},
		}},
	}

	out := Emit(result)

	want := []string{
		`<LOD minSize="10" asset="high.glb"/>`,
		`<LOD minSize="0" asset="low.glb"/>`,
		`<Component Name="wheel" Node="Wheel">`,
		"<Visibility>",
		"true",
		`<Animation Name="spin" Lag="0.1" Length="1">`,
		"$radius",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("missing %q in output:\n%s", w, out)
		}
	}
}

func TestEmitOmitsNodeAttributeWhenComponentHasNone(t *testing.T) {
	result := &evaluate.Result{
		Root: &value.Block{Values: []value.TemplateValue{
			&value.RuntimeComponent{Name: "group", HasNode: false, Body: &value.Block{}},
		}},
	}

	out := Emit(result)
	if !strings.Contains(out, `<Component Name="group">`) {
		t.Errorf("expected nameless-node component without a Node attribute, got:\n%s", out)
	}
	if strings.Contains(out, "Node=") {
		t.Errorf("did not expect a Node attribute, got:\n%s", out)
	}
}

func TestEmitHandlesNilRoot(t *testing.T) {
	out := Emit(&evaluate.Result{})
	if !strings.Contains(out, "<Behaviors>") || !strings.Contains(out, "</Behaviors>") {
		t.Errorf("expected an empty but present Behaviors element, got:\n%s", out)
	}
}
