package selection

import (
	"golang.org/x/net/html"
)

// Range is a range of a modern selection model host.
type Range interface {
	Collapsed() bool
	// CloneContents copies the content of the range. The returned nodes are
	// the top-level nodes of the copy, in document order.
	CloneContents() ([]*html.Node, error)
	DeleteContents() error
	// InsertNode inserts a node at the start of the range. Hosts have to
	// accept fragment containers (see dom.NewFragment) and insert their
	// children.
	InsertNode(n *html.Node) error
}

// ModernHost is a host with a selection consisting of ranges.
type ModernHost interface {
	RangeCount() int
	RangeAt(i int) (Range, error)
}

// TextRange is a selection range of a legacy model host.
type TextRange interface {
	ParentDocument() any // document the range belongs to
	HTMLText() string    // markup of the content of the range
	Select() error       // make the range the active selection
}

// HTMLPaster is implemented by text ranges able to replace their content
// with markup. Pasting is possible only as long as the range is the active
// selection.
type HTMLPaster interface {
	PasteHTML(markup string) error
}

// LegacyHost is a host handing out text ranges.
type LegacyHost interface {
	Document() any // the document edited
	ActiveTextRange() (TextRange, bool)
}
