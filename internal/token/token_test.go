package token

import "testing"

func TestLookupIdentFindsKeywords(t *testing.T) {
	cases := map[string]Type{
		"fn":       KW_FN,
		"template": KW_TEMPLATE,
		"use":      KW_USE,
		"lods":     KW_LODS,
		"array":    KW_ARRAY,
		"map":      KW_MAP,
		"new":      KW_NEW,
		"notakeyword": IDENT,
		"Component": IDENT, // case-sensitive: keywords are lowercase only
	}
	for ident, want := range cases {
		if got := LookupIdent(ident); got != want {
			t.Errorf("LookupIdent(%q) = %v, want %v", ident, got, want)
		}
	}
}

func TestMergeSpansBothLocations(t *testing.T) {
	a := Location{File: "f", Start: 5, End: 10, Line: 1, Col: 6}
	b := Location{File: "f", Start: 2, End: 20, Line: 1, Col: 3}

	m := Merge(a, b)
	if m.Start != 2 || m.End != 20 {
		t.Fatalf("got start %d end %d, want 2 20", m.Start, m.End)
	}
	if m.Line != b.Line || m.Col != b.Col {
		t.Fatalf("expected merged location to take the earlier-starting location's line/col")
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{File: "main.bhv", Line: 3, Col: 7}
	want := "main.bhv:3:7"
	if got := loc.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
