// Package xmlwriter emits the deterministic XML document spec.md §6
// describes: a streaming, indenting writer rather than a DOM tree,
// matching original_source/behave/src/output/xml.rs's XMLWriter one for
// one — same header/comment text, same element-stack discipline (only
// start_element/start_element_attrib push; the self-closing element()
// never does), same four-character escape set, and the same convention
// that data() embeds its argument verbatim, unescaped (the RPN stream's
// pre-rendered postfix text is exactly such a payload).
package xmlwriter

import (
	"strings"

	"github.com/google/uuid"
)

// Writer builds an XML document by appending to an internal buffer; it
// never builds a tree, so nothing about the document can be inspected
// or rewritten once written — matching the original's one-pass,
// write-only design.
type Writer struct {
	data         strings.Builder
	indent       int
	elementStack []string
}

// Start begins a new document: the fixed header comment plus a
// `<ModelInfo>` root element stamped with a fresh v4 GUID, exactly the
// text original_source/output/xml.rs's `start` produces.
func Start() *Writer {
	w := &Writer{indent: 1}
	w.data.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\n\n<!-- \n\tThis XML file was generated by the behave compiler.\n\t\t\t\n\tManual changes to this file may cause unexpected behavior.\n\tManual changes will be lost if the behave project is recompiled.\n-->\n\t\t\t\n<ModelInfo version=\"1.0\" guid=\"{")
	w.data.WriteString(uuid.New().String())
	w.data.WriteString("}\">\n")
	return w
}

// StartElement opens `<name>`, pushing name onto the element stack so a
// later EndElement knows what to close.
func (w *Writer) StartElement(name string) {
	w.writeIndent()
	w.data.WriteByte('<')
	escaped := escape(name)
	w.elementStack = append(w.elementStack, escaped)
	w.data.WriteString(escaped)
	w.data.WriteString(">\n")
	w.indent++
}

// Attr is one attribute name/value pair for StartElementAttrib/Element.
type Attr struct{ Name, Value string }

// StartElementAttrib opens `<name attr="value" ...>`, pushing name onto
// the element stack.
func (w *Writer) StartElementAttrib(name string, attrs ...Attr) {
	w.writeIndent()
	w.data.WriteByte('<')
	escaped := escape(name)
	w.elementStack = append(w.elementStack, escaped)
	w.data.WriteString(escaped)
	w.writeAttrs(attrs)
	w.data.WriteString(">\n")
	w.indent++
}

// Element writes a self-closing `<name attr="value" .../>`. Unlike
// StartElement/StartElementAttrib, this never pushes the element stack:
// there is no corresponding EndElement for a self-closing tag.
func (w *Writer) Element(name string, attrs ...Attr) {
	w.writeIndent()
	w.data.WriteByte('<')
	w.data.WriteString(escape(name))
	w.writeAttrs(attrs)
	w.data.WriteString("/>\n")
}

func (w *Writer) writeAttrs(attrs []Attr) {
	for _, a := range attrs {
		w.data.WriteByte(' ')
		w.data.WriteString(escape(a.Name))
		w.data.WriteString("=\"")
		w.data.WriteString(escape(a.Value))
		w.data.WriteByte('"')
	}
}

// Data writes one line of content verbatim: unescaped, since this is
// how pre-formatted payloads (an RPN stream's rendered text) are
// embedded, per spec.md §4.4.
func (w *Writer) Data(data string) {
	w.writeIndent()
	w.data.WriteString(data)
	w.data.WriteByte('\n')
}

// EndElement closes the innermost still-open element pushed by
// StartElement/StartElementAttrib.
func (w *Writer) EndElement() {
	w.indent--
	w.writeIndent()
	w.data.WriteString("</")
	last := w.elementStack[len(w.elementStack)-1]
	w.elementStack = w.elementStack[:len(w.elementStack)-1]
	w.data.WriteString(last)
	w.data.WriteString(">\n")
}

// End closes the root `<ModelInfo>` element and returns the finished
// document.
func (w *Writer) End() string {
	return w.data.String() + "</ModelInfo>\n"
}

func (w *Writer) writeIndent() {
	for i := 0; i < w.indent; i++ {
		w.data.WriteByte('\t')
	}
}

// escape replaces exactly the four characters XML requires escaped in
// text/attribute content: < > & ". An apostrophe is deliberately left
// unescaped, matching original_source/output/xml.rs's EscapeIterator.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '&':
			b.WriteString("&amp;")
		case '"':
			b.WriteString("&quot;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
