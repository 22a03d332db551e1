package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadFindsMainAndSecondaryFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.bhv", "behavior {}")
	writeFile(t, dir, "wheels.bhi", "struct Empty {}")
	writeFile(t, dir, "sub/wheel.bhi", "struct Empty {}")
	writeFile(t, dir, "notes.txt", "ignored")

	proj, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if proj.Main.RelPath != "main.bhv" {
		t.Fatalf("got main %q", proj.Main.RelPath)
	}
	if len(proj.Secondary) != 2 {
		t.Fatalf("got %d secondary files, want 2", len(proj.Secondary))
	}
}

func TestLoadRequiresExactlyOneMainFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wheels.bhi", "struct Empty {}")
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected an error for a project with no main file")
	}

	dir2 := t.TempDir()
	writeFile(t, dir2, "a.bhv", "behavior {}")
	writeFile(t, dir2, "b.bhv", "behavior {}")
	if _, err := Load(dir2); err == nil {
		t.Fatalf("expected an error for a project with two main files")
	}
}

func TestLoadReadsManifestAndHonorsExclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "main.bhv", "behavior {}")
	writeFile(t, dir, "vendor/skip.bhi", "struct Empty {}")
	writeFile(t, dir, "behave.yaml", "name: test-project\nexclude:\n  - vendor/skip.bhi\n")

	proj, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if proj.Manifest == nil || proj.Manifest.Name != "test-project" {
		t.Fatalf("got manifest %+v", proj.Manifest)
	}
	if len(proj.Secondary) != 0 {
		t.Fatalf("expected excluded file to be skipped, got %+v", proj.Secondary)
	}
}

func TestSegmentsOfStripsExtensionAndSplitsPath(t *testing.T) {
	got := segmentsOf("sub/wheel.bhi")
	want := []string{"sub", "wheel"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
