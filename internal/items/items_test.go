package items

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSeedsFormatFunctionAndMouseEventEnum(t *testing.T) {
	m := New()

	fn := m.Function(m.FormatFunction)
	if fn.Native != "format" {
		t.Fatalf("got native %q, want %q", fn.Native, "format")
	}

	enum := m.Enum(m.MouseEventEnum)
	if !enum.Builtin {
		t.Fatalf("expected MouseEvent enum to be marked builtin")
	}

	type variant struct {
		Name string
		Tag  int
	}
	var got []variant
	for _, v := range enum.Decl.Variants {
		got = append(got, variant{Name: v.Name.Name, Tag: v.Tag})
	}
	var want []variant
	for i, name := range MouseEventVariants {
		want = append(want, variant{Name: name, Tag: i})
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MouseEvent variants mismatch (-want +got):\n%s", diff)
	}
}

func TestAddAndLookupAreStableAcrossKinds(t *testing.T) {
	m := New()

	id1 := m.AddStruct(Struct{})
	id2 := m.AddStruct(Struct{})
	if id1.Index() == id2.Index() {
		t.Fatalf("expected distinct ids for distinct AddStruct calls")
	}

	tid := m.AddTemplate(Template{})
	if m.Template(tid) == nil {
		t.Fatalf("expected to look up the just-added template")
	}
}
