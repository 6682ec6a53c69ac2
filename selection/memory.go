package selection

import (
	"errors"
	"fmt"

	"github.com/npillmayer/richtext/dom"
	"golang.org/x/net/html"
)

// --- Modern model ----------------------------------------------------------

// Selection is an in-memory selection over a tree of html.Nodes, modelled
// after the W3C Selection interface. It is a ModernHost.
type Selection struct {
	ranges []*dom.Range
}

var _ ModernHost = &Selection{}

// NewSelection creates a selection consisting of the given ranges.
func NewSelection(ranges ...*dom.Range) *Selection {
	s := &Selection{}
	for _, r := range ranges {
		s.AddRange(r)
	}
	return s
}

// AddRange adds a range to the selection.
func (s *Selection) AddRange(r *dom.Range) {
	if r != nil {
		s.ranges = append(s.ranges, r)
	}
}

// RemoveAllRanges clears the selection.
func (s *Selection) RemoveAllRanges() {
	s.ranges = s.ranges[:0]
}

// RangeCount returns the number of ranges of the selection.
func (s *Selection) RangeCount() int {
	return len(s.ranges)
}

// RangeAt returns range i of the selection.
func (s *Selection) RangeAt(i int) (Range, error) {
	if i < 0 || i >= len(s.ranges) {
		return nil, fmt.Errorf("%w: range %d of %d", dom.ErrIndexSize, i, len(s.ranges))
	}
	return liveRange{s.ranges[i]}, nil
}

// IsCollapsed is true if the selection is empty or its first range is collapsed.
func (s *Selection) IsCollapsed() bool {
	return len(s.ranges) == 0 || s.ranges[0].Collapsed()
}

// liveRange adapts dom.Range to interface Range.
type liveRange struct {
	r *dom.Range
}

func (lr liveRange) Collapsed() bool {
	return lr.r.Collapsed()
}

func (lr liveRange) CloneContents() ([]*html.Node, error) {
	return dom.Children(lr.r.CloneContents()), nil
}

func (lr liveRange) DeleteContents() error {
	lr.r.DeleteContents()
	return nil
}

func (lr liveRange) InsertNode(n *html.Node) error {
	return lr.r.InsertNode(n)
}

// --- Legacy model ----------------------------------------------------------

// ErrNotSelected is returned when pasting into a text range which is not
// the active selection.
var ErrNotSelected = errors.New("text range is not the active selection")

// TextRangeHost emulates a legacy model host over a tree of html.Nodes.
// The host remembers a text range even when it loses focus, but pasting
// requires the range to be selected again.
type TextRangeHost struct {
	doc     *html.Node
	current *textRange
	focused bool
}

var _ LegacyHost = &TextRangeHost{}

// NewTextRangeHost creates a legacy host for document doc.
func NewTextRangeHost(doc *html.Node) *TextRangeHost {
	return &TextRangeHost{doc: doc}
}

// Document returns the document of the host.
func (h *TextRangeHost) Document() any {
	return h.doc
}

// Select makes r the active text range.
func (h *TextRangeHost) Select(r *dom.Range) {
	if r == nil {
		h.current, h.focused = nil, false
		return
	}
	h.current = &textRange{host: h, r: r}
	h.focused = true
}

// Blur makes the host lose focus. The text range is kept but is no longer
// the active selection.
func (h *TextRangeHost) Blur() {
	h.focused = false
}

// ActiveTextRange returns the current text range, if any.
func (h *TextRangeHost) ActiveTextRange() (TextRange, bool) {
	if h.current == nil {
		return nil, false
	}
	return h.current, true
}

type textRange struct {
	host *TextRangeHost
	r    *dom.Range
}

var _ HTMLPaster = &textRange{}

func (tr *textRange) ParentDocument() any {
	n := tr.r.StartContainer()
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func (tr *textRange) HTMLText() string {
	if tr.r.Collapsed() {
		return ""
	}
	markup, err := dom.InnerHTML(tr.r.CloneContents())
	if err != nil {
		tracer().Errorf("selection: text range: %v", err)
		return ""
	}
	return markup
}

func (tr *textRange) Select() error {
	tr.host.current, tr.host.focused = tr, true
	return nil
}

func (tr *textRange) PasteHTML(markup string) error {
	if tr.host.current != tr || !tr.host.focused {
		return ErrNotSelected
	}
	frag, err := dom.ParseContainer(markup)
	if err != nil {
		return err
	}
	tr.r.DeleteContents()
	return tr.r.InsertNode(frag)
}
