package style

import (
	"golang.org/x/net/html"
)

// InlineText returns the raw text of the style attribute of n.
func InlineText(n *html.Node) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			return a.Val
		}
	}
	return ""
}

// SetInline writes declarations to the style attribute of element n,
// keeping the position of an existing style attribute. Empty declarations
// remove the attribute.
func SetInline(n *html.Node, decls Declarations) {
	if n == nil || n.Type != html.ElementNode {
		return
	}
	text := decls.String()
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			if text == "" {
				n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
				return
			}
			n.Attr[i].Val = text
			return
		}
	}
	if text != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: text})
	}
	tracer().Debugf("style: <%s style=%q>", n.Data, text)
}
