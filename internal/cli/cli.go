// Package cli implements the `behave` command line: a thin argument
// parser (manual flag handling, matching funvibe/funxy's own cmd/funxy
// entry point rather than reaching for a flag-parsing library) that
// drives internal/pipeline and renders the resulting diagnostics.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/Synaptic-Simulations/behave/internal/config"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/pipeline"
)

// Run executes the `behave` command for the given arguments (os.Args[1:])
// and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	var root string
	var out string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-h", "--help":
			printUsage(stdout)
			return 0
		case "-v", "--version":
			fmt.Fprintf(stdout, "behave %s\n", config.Version)
			return 0
		case "-o", "--out":
			if i+1 >= len(args) {
				fmt.Fprintln(stderr, "behave: -o requires a path argument")
				return 1
			}
			i++
			out = args[i]
		default:
			if root != "" {
				fmt.Fprintf(stderr, "behave: unexpected argument %q\n", args[i])
				return 1
			}
			root = args[i]
		}
	}
	if root == "" {
		root = "."
	}

	result := pipeline.Run(root)

	renderer := diagnostics.NewRenderer(stderr)
	renderer.RenderAll(result.Diagnostics)

	if result.HasErrors() {
		return 1
	}

	if out != "" {
		if err := os.WriteFile(out, []byte(result.XML), 0o644); err != nil {
			fmt.Fprintf(stderr, "behave: writing %s: %v\n", out, err)
			return 1
		}
		return 0
	}

	fmt.Fprintln(stdout, result.XML)
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: behave [options] [project-dir]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Compiles a behave project (one .bhv main file plus any number of")
	fmt.Fprintln(w, ".bhi item files) into a single XML behavior document.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "options:")
	fmt.Fprintln(w, "  -o, --out <path>  write the XML document to path instead of stdout")
	fmt.Fprintln(w, "  -v, --version     print the compiler version")
	fmt.Fprintln(w, "  -h, --help        print this message")
}
