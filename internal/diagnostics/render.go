package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Renderer writes diagnostics to a terminal, optionally colorizing the
// level headline the way an interactive compiler CLI does.
type Renderer struct {
	w     io.Writer
	color bool
}

// NewRenderer builds a Renderer for w, auto-detecting color support via
// go-isatty when w is an *os.File attached to a terminal.
func NewRenderer(w io.Writer) *Renderer {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Renderer{w: w, color: color}
}

func (r *Renderer) levelColor(level Level) string {
	if !r.color {
		return ""
	}
	switch level {
	case Error:
		return "\x1b[1;31m"
	case Warning:
		return "\x1b[1;33m"
	case Info, Help:
		return "\x1b[1;36m"
	case Note:
		return "\x1b[1;34m"
	default:
		return ""
	}
}

func (r *Renderer) reset() string {
	if !r.color {
		return ""
	}
	return "\x1b[0m"
}

// Render writes one diagnostic to the underlying writer.
func (r *Renderer) Render(d *Diagnostic) {
	fmt.Fprintf(r.w, "%s%s%s: %s\n", r.levelColor(d.Level), d.Level.String(), r.reset(), d.Message)
	for _, label := range d.Labels {
		prefix := "  --> "
		if label.Style == Secondary {
			prefix = "  ... "
		}
		fmt.Fprintf(r.w, "%s%s: %s\n", prefix, label.Loc.String(), label.Message)
	}
	for _, note := range d.Notes {
		fmt.Fprintf(r.w, "  = note: %s\n", note)
	}
}

// RenderAll writes every diagnostic in order, separated by a blank line.
func (r *Renderer) RenderAll(diags []*Diagnostic) {
	for i, d := range diags {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		r.Render(d)
	}
}
