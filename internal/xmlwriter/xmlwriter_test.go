package xmlwriter

import (
	"strings"
	"testing"
)

func TestStartEmitsModelInfoRootWithGUID(t *testing.T) {
	w := Start()
	out := w.End()
	if !strings.HasPrefix(out, "<?xml version=\"1.0\" encoding=\"utf-8\"?>") {
		t.Fatalf("missing XML declaration, got %q", out)
	}
	if !strings.Contains(out, "<ModelInfo version=\"1.0\" guid=\"{") {
		t.Fatalf("missing ModelInfo root, got %q", out)
	}
	if !strings.Contains(out, "</ModelInfo>") {
		t.Fatalf("expected a closing ModelInfo tag, got %q", out)
	}
}

func TestStartStampsADifferentGUIDEachTime(t *testing.T) {
	a := Start().End()
	b := Start().End()
	if a == b {
		t.Fatalf("expected two documents to differ by their stamped GUID")
	}
}

func TestStartElementAndEndElementBalance(t *testing.T) {
	w := Start()
	w.StartElement("Behaviors")
	w.StartElementAttrib("Component", Attr{Name: "Name", Value: "wheel"})
	w.EndElement()
	w.EndElement()
	out := w.End()

	if !strings.Contains(out, "<Behaviors>") || !strings.Contains(out, "</Behaviors>") {
		t.Fatalf("expected balanced Behaviors tags, got %q", out)
	}
	if !strings.Contains(out, `<Component Name="wheel">`) {
		t.Fatalf("expected attributed Component tag, got %q", out)
	}
}

func TestElementIsSelfClosingAndDoesNotNeedEndElement(t *testing.T) {
	w := Start()
	w.Element("LOD", Attr{Name: "minSize", Value: "10"}, Attr{Name: "asset", Value: "high.glb"})
	out := w.End()
	if !strings.Contains(out, `<LOD minSize="10" asset="high.glb"/>`) {
		t.Fatalf("got %q", out)
	}
}

func TestDataWritesVerbatimUnescaped(t *testing.T) {
	w := Start()
	w.StartElement("Code")
	w.Data(`1 2 add "a < b"`)
	w.EndElement()
	out := w.End()
	if !strings.Contains(out, `1 2 add "a < b"`) {
		t.Fatalf("expected Data payload to be embedded verbatim unescaped, got %q", out)
	}
}

func TestEscapeHandlesFourCharsButNotApostrophe(t *testing.T) {
	w := Start()
	w.Element("X", Attr{Name: "v", Value: `<a>&"b"'c'`})
	out := w.End()
	if !strings.Contains(out, `&lt;a&gt;&amp;&quot;b&quot;'c'`) {
		t.Fatalf("got %q", out)
	}
}

// TestXMLEscaping is spec.md §8 scenario 7: element("node", [("name",
// "a<b&c")]) emits <node name="a&lt;b&amp;c"/>.
func TestXMLEscaping(t *testing.T) {
	w := Start()
	w.Element("node", Attr{Name: "name", Value: "a<b&c"})
	out := w.End()
	if !strings.Contains(out, `<node name="a&lt;b&amp;c"/>`) {
		t.Fatalf("got %q", out)
	}
}
