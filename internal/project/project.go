// Package project discovers a behave project on disk: exactly one main
// (.bhv) file plus any number of secondary (.bhi) item files, and an
// optional behave.yaml manifest. Grounded on funvibe/funxy's
// internal/modules package, which walks a directory tree classifying
// files by recognized source extension before handing them to the
// lexer/parser; this package does the same discovery step; the
// directory-shaped internal/ast.Tree this feeds is built once the
// discovered files are parsed (internal/pipeline).
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Synaptic-Simulations/behave/internal/config"
	"gopkg.in/yaml.v3"
)

// Manifest is the optional behave.yaml project manifest. Every field is
// optional; an absent manifest is equivalent to one with every field at
// its zero value.
type Manifest struct {
	// Name is a human-readable project name. It is parsed but not used
	// by the compiler.
	Name string `yaml:"name"`
	// Exclude lists glob patterns (relative to the project root)
	// skipped during source discovery, for vendored or generated trees
	// a project wants the compiler to ignore.
	Exclude []string `yaml:"exclude"`
}

// SourceFile is one discovered file: its absolute path and its path
// relative to the project root, segmented and extension-stripped — the
// form internal/ast.Tree indexes secondary files by.
type SourceFile struct {
	AbsPath string
	RelPath string
	Segments []string
}

// Project is a fully discovered (not yet parsed) behave project.
type Project struct {
	Root       string
	Main       SourceFile
	Secondary  []SourceFile
	Manifest   *Manifest
}

// Load walks root, classifies every recognized source file, and loads
// behave.yaml if present. It returns an error if root contains zero or
// more than one main (.bhv) file — spec.md §6 requires exactly one.
func Load(root string) (*Project, error) {
	manifest, err := loadManifest(root)
	if err != nil {
		return nil, err
	}

	var mains []SourceFile
	var secondary []SourceFile

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !config.HasSourceExt(path) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if manifest != nil && matchesAny(manifest.Exclude, rel) {
			return nil
		}

		sf := SourceFile{
			AbsPath:  path,
			RelPath:  rel,
			Segments: segmentsOf(rel),
		}
		if config.IsMainFile(path) {
			mains = append(mains, sf)
		} else {
			secondary = append(secondary, sf)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering source files: %w", err)
	}

	if len(mains) == 0 {
		return nil, fmt.Errorf("project at %s has no %s main file", root, config.MainFileExt)
	}
	if len(mains) > 1 {
		return nil, fmt.Errorf("project at %s has more than one %s main file: %s, %s",
			root, config.MainFileExt, mains[0].RelPath, mains[1].RelPath)
	}

	return &Project{Root: root, Main: mains[0], Secondary: secondary, Manifest: manifest}, nil
}

func loadManifest(root string) (*Manifest, error) {
	path := filepath.Join(root, config.ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", config.ManifestFileName, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", config.ManifestFileName, err)
	}
	return &m, nil
}

func segmentsOf(rel string) []string {
	trimmed := config.TrimSourceExt(rel)
	parts := strings.Split(filepath.ToSlash(trimmed), "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchesAny(patterns []string, rel string) bool {
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, rel); ok {
			return true
		}
	}
	return false
}
