// Package testutil bundles multi-file behave project fixtures into
// single txtar archives for pipeline tests, the way
// cue-lang/cue uses golang.org/x/tools/txtar for its own multi-file
// test corpora: one readable string literal per test case instead of a
// directory of tiny files scattered across the repo.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"
)

// WriteProject materializes a txtar archive (file headers followed by
// their contents) into a fresh temp directory and returns its root.
// Each archive file name becomes a path relative to that root.
func WriteProject(t *testing.T, archive string) string {
	t.Helper()
	ar := txtar.Parse([]byte(archive))
	root := t.TempDir()
	for _, f := range ar.Files {
		path := filepath.Join(root, f.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating directory for %s: %v", f.Name, err)
		}
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", f.Name, err)
		}
	}
	return root
}
