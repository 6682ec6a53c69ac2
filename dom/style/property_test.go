package style_test

import (
	"testing"

	"github.com/npillmayer/richtext/dom/style"
	"golang.org/x/net/html"
)

func TestPropertyName(t *testing.T) {
	for in, out := range map[string]string{
		"lineHeight":      "line-height",
		"line-height":     "line-height",
		"Font-Size":       "font-size",
		"backgroundColor": "background-color",
		"color":           "color",
	} {
		if n := style.PropertyName(in); n != out {
			t.Errorf("expected property name for %q to be %q, is %q", in, out, n)
		}
	}
}

func TestDeclarationsSet(t *testing.T) {
	var decls style.Declarations
	decls = decls.Set("color", "red")
	decls = decls.Set("line-height", "1.5em")
	decls = decls.Set("color", "blue")
	if s := decls.String(); s != "color:blue;line-height:1.5em" {
		t.Errorf("unexpected declarations: %q", s)
	}
	decls = decls.Remove("color")
	if p, ok := decls.Get("line-height"); !ok || p != "1.5em" {
		t.Errorf("expected line-height to survive removal of color, is %q", p)
	}
	if _, ok := decls.Get("color"); ok {
		t.Errorf("expected color to be removed")
	}
}

func TestSetInline(t *testing.T) {
	n := &html.Node{Type: html.ElementNode, Data: "p", Attr: []html.Attribute{
		{Key: "style", Val: "color:red"},
		{Key: "class", Val: "x"},
	}}
	style.SetInline(n, style.Declarations{{Key: "color", Value: "green", Important: true}})
	if n.Attr[0].Val != "color:green !important" {
		t.Errorf("expected style attribute to be rewritten in place, is %v", n.Attr)
	}
	style.SetInline(n, nil)
	if len(n.Attr) != 1 || n.Attr[0].Key != "class" {
		t.Errorf("expected empty style to remove the attribute, is %v", n.Attr)
	}
}
