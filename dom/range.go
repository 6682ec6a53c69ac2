package dom

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ErrIndexSize is returned if a boundary offset lies outside of a node.
var ErrIndexSize = errors.New("offset out of range")

// ErrHierarchy is returned if an operation would produce an invalid tree.
var ErrHierarchy = errors.New("hierarchy request error")

// Range is a live range over a tree of html.Nodes, i.e. a pair of boundary
// points (start and end). Every boundary point is a container node and an
// offset: for text and comments the offset counts runes, for other nodes it
// counts children.
//
// Ranges follow the W3C Range interface, restricted to elements, text and
// comments. Unlike ranges in a browser, a Range is not updated for mutations
// made outside of its own methods.
type Range struct {
	startContainer *html.Node
	startOffset    int
	endContainer   *html.Node
	endOffset      int
}

// NewRange creates a range collapsed at the start of node n.
func NewRange(n *html.Node) *Range {
	return &Range{
		startContainer: n,
		endContainer:   n,
	}
}

// StartContainer returns the node where the range starts.
func (r *Range) StartContainer() *html.Node {
	return r.startContainer
}

// StartOffset returns the offset within the start container.
func (r *Range) StartOffset() int {
	return r.startOffset
}

// EndContainer returns the node where the range ends.
func (r *Range) EndContainer() *html.Node {
	return r.endContainer
}

// EndOffset returns the offset within the end container.
func (r *Range) EndOffset() int {
	return r.endOffset
}

// Collapsed returns true if start and end are the same point.
func (r *Range) Collapsed() bool {
	return r.startContainer == r.endContainer && r.startOffset == r.endOffset
}

// SetStart sets the start of the range. If the new start is after the end
// or in a different tree, the range collapses to the new start.
func (r *Range) SetStart(n *html.Node, offset int) error {
	if err := checkBoundary(n, offset); err != nil {
		return err
	}
	if rootOf(n) != rootOf(r.endContainer) ||
		comparePoints(n, offset, r.endContainer, r.endOffset) > 0 {
		r.endContainer, r.endOffset = n, offset
	}
	r.startContainer, r.startOffset = n, offset
	return nil
}

// SetEnd sets the end of the range. If the new end is before the start
// or in a different tree, the range collapses to the new end.
func (r *Range) SetEnd(n *html.Node, offset int) error {
	if err := checkBoundary(n, offset); err != nil {
		return err
	}
	if rootOf(n) != rootOf(r.startContainer) ||
		comparePoints(n, offset, r.startContainer, r.startOffset) < 0 {
		r.startContainer, r.startOffset = n, offset
	}
	r.endContainer, r.endOffset = n, offset
	return nil
}

func checkBoundary(n *html.Node, offset int) error {
	if n == nil || n.Type == html.DoctypeNode {
		return fmt.Errorf("%w: invalid boundary container", ErrHierarchy)
	}
	if offset < 0 || offset > nodeLength(n) {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrIndexSize, offset, nodeLength(n))
	}
	return nil
}

// SelectNode sets the range to contain node n.
func (r *Range) SelectNode(n *html.Node) error {
	if n == nil || n.Parent == nil {
		return fmt.Errorf("%w: cannot select a node without parent", ErrHierarchy)
	}
	i := indexOf(n)
	r.startContainer, r.startOffset = n.Parent, i
	r.endContainer, r.endOffset = n.Parent, i+1
	return nil
}

// SelectNodeContents sets the range to contain the contents of node n.
func (r *Range) SelectNodeContents(n *html.Node) error {
	if n == nil || n.Type == html.DoctypeNode {
		return fmt.Errorf("%w: invalid container", ErrHierarchy)
	}
	r.startContainer, r.startOffset = n, 0
	r.endContainer, r.endOffset = n, nodeLength(n)
	return nil
}

// Collapse collapses the range to its start (toStart) or to its end.
func (r *Range) Collapse(toStart bool) {
	if toStart {
		r.endContainer, r.endOffset = r.startContainer, r.startOffset
	} else {
		r.startContainer, r.startOffset = r.endContainer, r.endOffset
	}
}

// CommonAncestor returns the deepest node containing both boundary points.
func (r *Range) CommonAncestor() *html.Node {
	c := r.startContainer
	for c != nil && !isInclusiveAncestor(c, r.endContainer) {
		c = c.Parent
	}
	return c
}

// contains is true if all of node n is inside the range.
func (r *Range) contains(n *html.Node) bool {
	if rootOf(n) != rootOf(r.startContainer) {
		return false
	}
	return comparePoints(n, 0, r.startContainer, r.startOffset) > 0 &&
		comparePoints(n, nodeLength(n), r.endContainer, r.endOffset) < 0
}

// partiallyContains is true if n is an ancestor of one boundary point
// but not of the other.
func (r *Range) partiallyContains(n *html.Node) bool {
	return isInclusiveAncestor(n, r.startContainer) != isInclusiveAncestor(n, r.endContainer)
}

// CloneContents copies the contents of the range into a new fragment
// (see NewFragment). The tree the range lives in is not modified.
// Nodes which are only partially inside the range are cloned shallowly
// and filled with the part of their contents inside the range.
func (r *Range) CloneContents() *html.Node {
	frag := NewFragment()
	if r.Collapsed() {
		return frag
	}
	sc, so, ec, eo := r.startContainer, r.startOffset, r.endContainer, r.endOffset
	if sc == ec && IsCharacterData(sc) {
		c := CloneNode(sc, false)
		c.Data = runeSlice(sc.Data, so, eo)
		frag.AppendChild(c)
		return frag
	}
	common := r.CommonAncestor()
	var firstPartial, lastPartial *html.Node
	if !isInclusiveAncestor(sc, ec) {
		for c := common.FirstChild; c != nil; c = c.NextSibling {
			if r.partiallyContains(c) {
				firstPartial = c
				break
			}
		}
	}
	if !isInclusiveAncestor(ec, sc) {
		for c := common.LastChild; c != nil; c = c.PrevSibling {
			if r.partiallyContains(c) {
				lastPartial = c
				break
			}
		}
	}
	if firstPartial != nil {
		if IsCharacterData(firstPartial) {
			c := CloneNode(sc, false)
			c.Data = runeSlice(sc.Data, so, nodeLength(sc))
			frag.AppendChild(c)
		} else {
			c := CloneNode(firstPartial, false)
			sub := &Range{sc, so, firstPartial, nodeLength(firstPartial)}
			moveChildren(sub.CloneContents(), c)
			frag.AppendChild(c)
		}
	}
	for c := common.FirstChild; c != nil; c = c.NextSibling {
		if r.contains(c) {
			frag.AppendChild(CloneNode(c, true))
		}
	}
	if lastPartial != nil {
		if IsCharacterData(lastPartial) {
			c := CloneNode(ec, false)
			c.Data = runeSlice(ec.Data, 0, eo)
			frag.AppendChild(c)
		} else {
			c := CloneNode(lastPartial, false)
			sub := &Range{lastPartial, 0, ec, eo}
			moveChildren(sub.CloneContents(), c)
			frag.AppendChild(c)
		}
	}
	return frag
}

// DeleteContents removes the contents of the range from the tree.
// Afterwards the range is collapsed at the point of deletion.
func (r *Range) DeleteContents() {
	if r.Collapsed() {
		return
	}
	sc, so, ec, eo := r.startContainer, r.startOffset, r.endContainer, r.endOffset
	if sc == ec && IsCharacterData(sc) {
		runes := []rune(sc.Data)
		sc.Data = string(runes[:so]) + string(runes[eo:])
		r.Collapse(true)
		return
	}
	var remove []*html.Node
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r.contains(c) {
				remove = append(remove, c) // takes its descendents along
				continue
			}
			collect(c)
		}
	}
	collect(r.CommonAncestor())
	newNode, newOffset := sc, so
	if !isInclusiveAncestor(sc, ec) {
		ref := sc
		for ref.Parent != nil && !isInclusiveAncestor(ref.Parent, ec) {
			ref = ref.Parent
		}
		newNode, newOffset = ref.Parent, indexOf(ref)+1
	}
	if IsCharacterData(sc) {
		sc.Data = runeSlice(sc.Data, 0, so)
	}
	for _, n := range remove {
		n.Parent.RemoveChild(n)
	}
	if IsCharacterData(ec) {
		ec.Data = runeSlice(ec.Data, eo, nodeLength(ec))
	}
	tracer().Debugf("range: deleted %d nodes", len(remove))
	r.startContainer, r.startOffset = newNode, newOffset
	r.endContainer, r.endOffset = newNode, newOffset
}

// InsertNode inserts node n at the start of the range. If n is a fragment,
// its children are inserted, in order. If the start container is a text
// node, the text is split at the start offset.
func (r *Range) InsertNode(n *html.Node) error {
	sc, so := r.startContainer, r.startOffset
	if n == nil || sc == n || sc.Type == html.CommentNode ||
		(sc.Type == html.TextNode && sc.Parent == nil) {
		return fmt.Errorf("%w: cannot insert into %q", ErrHierarchy, sc.Data)
	}
	if n.Type == html.DocumentNode && !IsFragment(n) {
		return fmt.Errorf("%w: cannot insert a document", ErrHierarchy)
	}
	parent := sc
	if sc.Type == html.TextNode {
		parent = sc.Parent
	}
	if isInclusiveAncestor(n, parent) {
		return fmt.Errorf("%w: node is an ancestor of the insertion point", ErrHierarchy)
	}
	var ref *html.Node
	if sc.Type == html.TextNode {
		switch l := nodeLength(sc); {
		case so == 0:
			ref = sc
		case so >= l:
			ref = sc.NextSibling
		default:
			tail := NewText(runeSlice(sc.Data, so, l))
			sc.Data = runeSlice(sc.Data, 0, so)
			parent.InsertBefore(tail, sc.NextSibling)
			ref = tail
			if r.endContainer == sc && r.endOffset > so {
				r.endContainer, r.endOffset = tail, r.endOffset-so
			}
		}
	} else {
		ref = childAt(sc, so)
	}
	if ref == n {
		ref = n.NextSibling
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	newOffset := nodeLength(parent)
	if ref != nil {
		newOffset = indexOf(ref)
	}
	if IsFragment(n) {
		for c := n.FirstChild; c != nil; {
			next := c.NextSibling
			n.RemoveChild(c)
			parent.InsertBefore(c, ref)
			newOffset++
			c = next
		}
	} else {
		parent.InsertBefore(n, ref)
		newOffset++
	}
	if r.Collapsed() {
		r.endContainer, r.endOffset = parent, newOffset
	}
	return nil
}

// String returns the text content of the range.
func (r *Range) String() string {
	sc, so, ec, eo := r.startContainer, r.startOffset, r.endContainer, r.endOffset
	if sc == ec && sc.Type == html.TextNode {
		return runeSlice(sc.Data, so, eo)
	}
	var b strings.Builder
	if sc.Type == html.TextNode {
		b.WriteString(runeSlice(sc.Data, so, nodeLength(sc)))
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode && r.contains(c) {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(r.CommonAncestor())
	if ec.Type == html.TextNode {
		b.WriteString(runeSlice(ec.Data, 0, eo))
	}
	return b.String()
}

func moveChildren(from, to *html.Node) {
	for c := from.FirstChild; c != nil; {
		next := c.NextSibling
		from.RemoveChild(c)
		to.AppendChild(c)
		c = next
	}
}
