package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixtureProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.bhv"), []byte(`
lods {
	1: "a.glb";
}
behavior {
}
`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return dir
}

func TestRunCompilesToStdout(t *testing.T) {
	dir := writeFixtureProject(t)
	var stdout, stderr bytes.Buffer

	code := Run([]string{dir}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("got exit code %d, stderr: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "<ModelInfo") {
		t.Fatalf("expected XML on stdout, got %q", stdout.String())
	}
}

func TestRunWritesToOutFile(t *testing.T) {
	dir := writeFixtureProject(t)
	outPath := filepath.Join(t.TempDir(), "out.xml")
	var stdout, stderr bytes.Buffer

	code := Run([]string{"-o", outPath, dir}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("got exit code %d, stderr: %s", code, stderr.String())
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output file: %v", err)
	}
	if !strings.Contains(string(data), "<ModelInfo") {
		t.Fatalf("expected XML in output file, got %q", string(data))
	}
	if stdout.Len() != 0 {
		t.Fatalf("expected nothing on stdout when -o is given, got %q", stdout.String())
	}
}

func TestRunReportsMissingOutArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-o"}, &stdout, &stderr)
	if code == 0 {
		t.Fatalf("expected a nonzero exit code")
	}
	if !strings.Contains(stderr.String(), "requires a path") {
		t.Fatalf("got stderr %q", stderr.String())
	}
}

func TestRunPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-h"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("got exit code %d", code)
	}
	if !strings.Contains(stdout.String(), "usage: behave") {
		t.Fatalf("got stdout %q", stdout.String())
	}
}

func TestRunPrintsVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"-v"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("got exit code %d", code)
	}
	if !strings.HasPrefix(stdout.String(), "behave ") {
		t.Fatalf("got stdout %q", stdout.String())
	}
}

func TestRunFailsOnCompileErrors(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "main.bhv"), []byte(`behavior { use ( }`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var stdout, stderr bytes.Buffer
	code := Run([]string{dir}, &stdout, &stderr)
	if code == 0 {
		t.Fatalf("expected a nonzero exit code for a syntax error")
	}
	if stderr.Len() == 0 {
		t.Fatalf("expected diagnostics on stderr")
	}
}
