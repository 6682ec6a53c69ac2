package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Predicates over nodes. The editor menus consume them as pure functions.

// NodeIsText is a predicate to match text-nodes of a DOM.
func NodeIsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
func NodeIsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsBlank is true for text nodes consisting of white space only.
func IsBlank(n *html.Node) bool {
	return NodeIsText(n) && strings.TrimSpace(n.Data) == ""
}

// IsFormatElement is true for paragraph-like blocks.
func IsFormatElement(n *html.Node) bool {
	return CategoryOf(n) == FormatBlock
}

// IsSelfContainedBlock is true for tables, lists, media, hr, br and pre.
func IsSelfContainedBlock(n *html.Node) bool {
	return CategoryOf(n) == SelfContainedBlock
}

// IsComponent is true for embedded widgets.
func IsComponent(n *html.Node) bool {
	return CategoryOf(n) == Component
}

// IsTableCell is true for th and td elements.
func IsTableCell(n *html.Node) bool {
	return NodeIsElement(n) && (n.Data == "td" || n.Data == "th")
}

// IsCharacterData is true for nodes holding character data instead of
// children, i.e. text and comments.
func IsCharacterData(n *html.Node) bool {
	return n != nil && (n.Type == html.TextNode || n.Type == html.CommentNode)
}
