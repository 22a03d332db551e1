package diagnostics

import (
	"testing"

	"github.com/Synaptic-Simulations/behave/internal/token"
)

func TestHasErrorsDetectsErrorLevel(t *testing.T) {
	none := []*Diagnostic{New(Warning, CodeSyntax, "just a warning")}
	if HasErrors(none) {
		t.Fatalf("expected no errors among warnings only")
	}

	withError := append(none, Errorf(CodeInternal, "boom"))
	if !HasErrors(withError) {
		t.Fatalf("expected an error to be detected")
	}
}

func TestWithLabelAndWithNoteAccumulate(t *testing.T) {
	loc := token.Location{File: "f", Line: 1, Col: 1}
	d := Errorf(CodeTypeMismatch, "mismatch").
		WithLabel(PrimaryLabel("here", loc)).
		WithLabel(SecondaryLabel("also here", loc)).
		WithNote("a note")

	if len(d.Labels) != 2 {
		t.Fatalf("got %d labels, want 2", len(d.Labels))
	}
	if d.Labels[0].Style != Primary || d.Labels[1].Style != Secondary {
		t.Fatalf("got label styles %v, %v", d.Labels[0].Style, d.Labels[1].Style)
	}
	if len(d.Notes) != 1 || d.Notes[0] != "a note" {
		t.Fatalf("got notes %v", d.Notes)
	}
}

func TestInternalSetsKindAndLocation(t *testing.T) {
	loc := token.Location{File: "f", Line: 2, Col: 4}
	d := Internal("resolved slot missing", loc)
	if d.Code != CodeInternal || d.Level != Error {
		t.Fatalf("got code %v level %v", d.Code, d.Level)
	}
	if len(d.Labels) != 1 || d.Labels[0].Loc != loc {
		t.Fatalf("got labels %+v", d.Labels)
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		Error:   "error",
		Warning: "warning",
		Info:    "info",
		Help:    "help",
		Note:    "note",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
