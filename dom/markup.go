package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrMalformedMarkup is returned if markup cannot be parsed into a node tree.
var ErrMalformedMarkup = errors.New("malformed markup")

// bodyContext is the context element for fragment parsing. Editor content
// always lives inside a body-like container.
func bodyContext() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}

// ParseFragment parses markup as it would be parsed as the inner HTML of a
// <body> element. The resulting top-level nodes are detached from any parent.
//
// Markup which is not valid UTF-8 is rejected with ErrMalformedMarkup.
func ParseFragment(markup string) ([]*html.Node, error) {
	if !utf8.ValidString(markup) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrMalformedMarkup)
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), bodyContext())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
	}
	for _, n := range nodes {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
	return nodes, nil
}

// ParseContainer parses markup into a fresh, detached fragment container.
// The container is private to the caller and may be mutated freely.
func ParseContainer(markup string) (*html.Node, error) {
	nodes, err := ParseFragment(markup)
	if err != nil {
		return nil, err
	}
	frag := NewFragment()
	for _, n := range nodes {
		frag.AppendChild(n)
	}
	return frag, nil
}

// NewFragment creates an empty document fragment. Fragments are containers
// for nodes not (yet) attached to a document. Inserting a fragment into a
// tree inserts its children, in order.
func NewFragment() *html.Node {
	return &html.Node{Type: html.DocumentNode}
}

// IsFragment is a predicate for fragment containers (see NewFragment).
func IsFragment(n *html.Node) bool {
	return n != nil && n.Type == html.DocumentNode && n.Parent == nil
}

// OuterHTML renders a node, including its start and end tag.
func OuterHTML(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var b strings.Builder
	if IsFragment(n) {
		return InnerHTML(n)
	}
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// InnerHTML renders the children of a node.
func InnerHTML(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// CloneNode creates a copy of n. The copy is detached. If deep is set,
// all descendents are copied as well.
func CloneNode(n *html.Node, deep bool) *html.Node {
	if n == nil {
		return nil
	}
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	if deep {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			c.AppendChild(CloneNode(ch, true))
		}
	}
	return c
}

// Children returns the children of a node as a slice.
func Children(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, c)
	}
	return children
}

// Attr returns the value of an attribute, together with an indicator
// wether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, keeping its position if already present.
func SetAttr(n *html.Node, key, value string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// NewElement creates a detached element node for a tag name.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// NewText creates a detached text node.
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}
