package source

import (
	"bytes"
	"strings"

	"github.com/npillmayer/richtext/dom"
	"golang.org/x/net/html"
)

// Serializer renders node trees as indented markup. A Serializer holds
// no state between calls and may be re-used.
type Serializer struct {
	Indent     string          // indent unit for one level of nesting
	Classifier *dom.Classifier // node categories; nil means dom.DefaultClassifier
}

// New creates a serializer indenting by width spaces. A width of 0
// disables indentation.
func New(width int) *Serializer {
	if width < 0 {
		width = 0
	}
	return &Serializer{
		Indent:     strings.Repeat(" ", width),
		Classifier: dom.DefaultClassifier(),
	}
}

// Serialize renders the content of root, i.e. its children, with an
// indentation of width spaces per nesting level. root is not modified.
func Serialize(root *html.Node, width int) string {
	return New(width).Serialize(root)
}

// SerializeMarkup parses markup and renders it with an indentation of width
// spaces per nesting level.
func SerializeMarkup(markup string, width int) (string, error) {
	return New(width).SerializeMarkup(markup)
}

// SerializeMarkup parses markup (see dom.ParseFragment) and renders it.
func (s *Serializer) SerializeMarkup(markup string) (string, error) {
	root, err := dom.ParseContainer(markup)
	if err != nil {
		return "", err
	}
	return s.Serialize(root), nil
}

// Serialize renders the content of root. If root is a text node, its
// escaped text is rendered.
//
// The result is trimmed and ends with exactly one newline.
func (s *Serializer) Serialize(root *html.Node) string {
	if root == nil {
		return "\n"
	}
	w := &writer{s: s, cl: s.Classifier}
	if w.cl == nil {
		w.cl = dom.DefaultClassifier()
	}
	if root.Type == html.TextNode {
		w.text(root)
	} else {
		w.children(root, 0)
	}
	out := strings.TrimSpace(w.b.String()) + "\n"
	tracer().Debugf("source: serialized %d bytes", len(out))
	return out
}

// writer is the per-call state of a serialization. It does not survive
// a call to Serialize.
type writer struct {
	s  *Serializer
	cl *dom.Classifier
	b  bytes.Buffer
}

// blankTail returns the number of trailing blanks on the current line, and
// wether there is nothing else on it.
func (w *writer) blankTail() (int, bool) {
	out := w.b.Bytes()
	i := len(out)
	for i > 0 && (out[i-1] == ' ' || out[i-1] == '\t') {
		i--
	}
	return len(out) - i, i == 0 || out[i-1] == '\n'
}

// atLineStart is true if nothing but blanks has been written to the
// current line.
func (w *writer) atLineStart() bool {
	_, empty := w.blankTail()
	return empty
}

// newline starts a new line, unless the output is already at the start
// of a line. Line breaks therefore never stack up. Trailing blanks of an
// empty line are dropped.
func (w *writer) newline() {
	if n, empty := w.blankTail(); empty {
		w.b.Truncate(w.b.Len() - n)
		return
	}
	w.b.WriteByte('\n')
}

// indent writes the indent prefix for a nesting depth. Indentation is
// only written at the start of a line.
func (w *writer) indent(depth int) {
	if n, empty := w.blankTail(); empty {
		w.b.Truncate(w.b.Len() - n)
		w.b.WriteString(strings.Repeat(w.s.Indent, depth))
	}
}

func (w *writer) children(parent *html.Node, depth int) {
	for c := parent.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			w.text(c)
		case html.ElementNode:
			w.element(c, parent, depth)
		case html.CommentNode:
			w.outer(c)
		}
	}
}

func (w *writer) text(n *html.Node) {
	t := n.Data
	if isNewlineSpace(t) {
		return
	}
	if w.atLineStart() {
		t = strings.TrimLeft(t, " \t\r\n\f")
	}
	w.b.WriteString(Escape(t))
}

func (w *writer) element(n, parent *html.Node, depth int) {
	cat := w.cl.Category(n)
	parentCat := w.cl.Category(parent)
	selfContained := cat == dom.SelfContainedBlock
	boundary := cat == dom.FormatBlock && parentCat != dom.SelfContainedBlock &&
		!dom.IsTableCell(parent)
	if boundary || selfContained {
		w.newline()
	}
	if selfContained || parentCat == dom.SelfContainedBlock {
		w.indent(depth)
	}
	if n.FirstChild == nil || isVerbatim(n, cat) {
		w.outer(n)
	} else {
		w.startTag(n)
		if selfContained {
			w.newline()
		}
		w.children(n, depth+1)
		if selfContained {
			w.indent(depth)
		}
		w.b.WriteString("</" + n.Data + ">")
	}
	if selfContained || cat == dom.FormatBlock {
		w.newline()
	}
}

// outer writes the markup of a node as is.
func (w *writer) outer(n *html.Node) {
	if err := html.Render(&w.b, n); err != nil {
		tracer().Errorf("source: cannot render <%s>: %v", n.Data, err)
	}
}

func (w *writer) startTag(n *html.Node) {
	w.b.WriteByte('<')
	w.b.WriteString(n.Data)
	for _, a := range n.Attr {
		w.b.WriteByte(' ')
		if a.Namespace != "" {
			w.b.WriteString(a.Namespace)
			w.b.WriteByte(':')
		}
		w.b.WriteString(a.Key)
		w.b.WriteString(`="`)
		w.b.WriteString(html.EscapeString(a.Val))
		w.b.WriteByte('"')
	}
	w.b.WriteByte('>')
}

// isVerbatim is true for elements which are never descended into.
func isVerbatim(n *html.Node, cat dom.Category) bool {
	if cat == dom.Component {
		return true
	}
	switch n.Data {
	case "pre", "script", "style", "textarea", "xmp":
		return true
	}
	return false
}

// isNewlineSpace is true for text consisting of white space including at
// least one line break. This is formatting, not content.
func isNewlineSpace(t string) bool {
	return strings.TrimSpace(t) == "" && strings.ContainsAny(t, "\n\r")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"\u00a0", "&nbsp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// Escape replaces characters with a meaning in markup by entities.
// An apostrophe becomes "&#39;" and a double quote "&quot;", as with
// html.EscapeString. Mapping the apostrophe to "&quot;" would turn it into a
// double quote on reparsing, and a second serialization would differ from
// the first.
func Escape(text string) string {
	return escaper.Replace(text)
}
