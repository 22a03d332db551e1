// Package pipeline wires project discovery, parsing, resolution and
// evaluation into the single ordered run a `behave` compile performs.
// Grounded on funvibe/funxy's internal/pipeline package: a Pipeline
// runs a fixed sequence of Processor stages over a shared context.
// Every file is parsed before the run checks for errors, so syntax
// errors from several files are reported together; once a stage has
// reported an error the run stops before the next stage begins (a
// project with both syntax and resolution errors reports only the
// syntax errors). This compiler's stage list is fixed — parse, resolve,
// evaluate, emit — so the Processor interface collapses into a
// concrete ordered function list rather than a registry of
// interchangeable stages.
package pipeline

import (
	"fmt"
	"os"

	"github.com/Synaptic-Simulations/behave/internal/ast"
	"github.com/Synaptic-Simulations/behave/internal/backend"
	"github.com/Synaptic-Simulations/behave/internal/diagnostics"
	"github.com/Synaptic-Simulations/behave/internal/evaluate"
	"github.com/Synaptic-Simulations/behave/internal/items"
	"github.com/Synaptic-Simulations/behave/internal/parser"
	"github.com/Synaptic-Simulations/behave/internal/project"
	"github.com/Synaptic-Simulations/behave/internal/resolve"
)

// Result is the outcome of one full compile: the rendered XML document
// (empty on failure) and every diagnostic collected across every
// stage that ran.
type Result struct {
	XML         string
	Diagnostics []*diagnostics.Diagnostic
}

// HasErrors reports whether any collected diagnostic is an Error-level
// one, matching diagnostics.HasErrors's definition of compile failure.
func (r *Result) HasErrors() bool {
	return diagnostics.HasErrors(r.Diagnostics)
}

// Run discovers, parses, resolves and evaluates the project rooted at
// root, producing the final XML artifact. A stage that reports an
// error ends the run: the Result then holds every diagnostic gathered
// up to that point and an empty XML string.
func Run(root string) *Result {
	res := &Result{}

	proj, err := project.Load(root)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, diagnostics.Errorf(diagnostics.CodeInternal, fmt.Sprintf("loading project: %v", err)))
		return res
	}

	mainSrc, err := os.ReadFile(proj.Main.AbsPath)
	if err != nil {
		res.Diagnostics = append(res.Diagnostics, diagnostics.Errorf(diagnostics.CodeInternal, fmt.Sprintf("reading %s: %v", proj.Main.AbsPath, err)))
		return res
	}
	mainFile, mainDiags := parser.ParseMain(proj.Main.AbsPath, string(mainSrc))
	res.Diagnostics = append(res.Diagnostics, mainDiags...)

	secondary := ast.NewTree()
	for _, sf := range proj.Secondary {
		src, err := os.ReadFile(sf.AbsPath)
		if err != nil {
			res.Diagnostics = append(res.Diagnostics, diagnostics.Errorf(diagnostics.CodeInternal, fmt.Sprintf("reading %s: %v", sf.AbsPath, err)))
			continue
		}
		file, diags := parser.ParseSecondary(sf.AbsPath, string(src))
		res.Diagnostics = append(res.Diagnostics, diags...)
		secondary.Insert(sf.Segments, file)
	}

	if diagnostics.HasErrors(res.Diagnostics) {
		return res
	}

	im := items.New()
	resolveDiags := resolve.Resolve(mainFile, secondary, im)
	res.Diagnostics = append(res.Diagnostics, resolveDiags...)
	if diagnostics.HasErrors(res.Diagnostics) {
		return res
	}

	ev := evaluate.New(im)
	result, ok := ev.EvaluateMain(mainFile)
	res.Diagnostics = append(res.Diagnostics, ev.Diagnostics()...)
	if !ok {
		return res
	}

	res.XML = backend.Emit(result)
	return res
}
