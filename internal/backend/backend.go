// Package backend drives internal/xmlwriter from an evaluated project,
// turning the evaluator's LOD table and template-value tree into the
// final XML document spec.md §6 describes. Grounded on funvibe/funxy's
// internal/backend package, which likewise sits between a pipeline
// context and an output-producing backend behind a small interface —
// here specialized to the single XML-emission backend this compiler
// has (funxy's Backend interface exists to swap tree-walk vs VM
// execution; this system has exactly one output format, so the
// interface collapses to a single Emit function rather than a
// swappable implementation registry).
package backend

import (
	"strconv"

	"github.com/Synaptic-Simulations/behave/internal/evaluate"
	"github.com/Synaptic-Simulations/behave/internal/value"
	"github.com/Synaptic-Simulations/behave/internal/xmlwriter"
)

// Emit renders an evaluated project as the final XML document.
func Emit(result *evaluate.Result) string {
	w := xmlwriter.Start()

	w.StartElement("LODs")
	for _, lod := range result.LODs {
		w.Element("LOD", xmlwriter.Attr{Name: "minSize", Value: formatNum(lod.MinSize)}, xmlwriter.Attr{Name: "asset", Value: lod.Asset})
	}
	w.EndElement()

	w.StartElement("Behaviors")
	if result.Root != nil {
		emitBlock(w, result.Root)
	}
	w.EndElement()

	return w.End()
}

func emitBlock(w *xmlwriter.Writer, b *value.Block) {
	for _, v := range b.Values {
		emitTemplateValue(w, v)
	}
}

func emitTemplateValue(w *xmlwriter.Writer, v value.TemplateValue) {
	switch tv := v.(type) {
	case *value.Block:
		emitBlock(w, tv)

	case *value.RuntimeComponent:
		attrs := []xmlwriter.Attr{{Name: "Name", Value: tv.Name}}
		if tv.HasNode {
			attrs = append(attrs, xmlwriter.Attr{Name: "Node", Value: tv.Node})
		}
		w.StartElementAttrib("Component", attrs...)
		emitBlock(w, tv.Body)
		w.EndElement()

	case *value.RuntimeAnimation:
		w.StartElementAttrib("Animation",
			xmlwriter.Attr{Name: "Name", Value: tv.Name},
			xmlwriter.Attr{Name: "Lag", Value: formatNum(tv.Lag)},
			xmlwriter.Attr{Name: "Length", Value: formatNum(tv.Length)})
		w.StartElement("Code")
		w.Data(tv.Value.Render())
		w.EndElement()
		w.EndElement()

	case *value.Visibility:
		w.StartElement("Visibility")
		w.StartElement("Code")
		w.Data(tv.Stream.Render())
		w.EndElement()
		w.EndElement()

	case *value.Emissive:
		w.StartElement("Emissive")
		w.StartElement("Code")
		w.Data(tv.Stream.Render())
		w.EndElement()
		w.EndElement()
	}
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
