package config

import "testing"

func TestHasSourceExt(t *testing.T) {
	cases := map[string]bool{
		"main.bhv":    true,
		"wheels.bhi":  true,
		"notes.txt":   false,
		"behave.yaml": false,
	}
	for path, want := range cases {
		if got := HasSourceExt(path); got != want {
			t.Errorf("HasSourceExt(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestIsMainFile(t *testing.T) {
	if !IsMainFile("main.bhv") {
		t.Errorf("expected main.bhv to be a main file")
	}
	if IsMainFile("wheels.bhi") {
		t.Errorf("expected wheels.bhi not to be a main file")
	}
}

func TestTrimSourceExt(t *testing.T) {
	cases := map[string]string{
		"sub/wheel.bhi": "sub/wheel",
		"main.bhv":      "main",
		"no-ext":        "no-ext",
	}
	for in, want := range cases {
		if got := TrimSourceExt(in); got != want {
			t.Errorf("TrimSourceExt(%q) = %q, want %q", in, got, want)
		}
	}
}
