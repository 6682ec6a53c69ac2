package dom_test

import (
	"testing"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestCategoryTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.dom")
	defer teardown()
	//
	root := parse(t, `<table><tr><td>x</td></tr></table><p>p</p><span>s</span>`+
		`<div class="w-e-component"><p>c</p></div><hr/>`)
	var cats = map[string]dom.Category{}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, ok := cats[n.Data]; !ok {
				cats[n.Data] = dom.CategoryOf(n)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	expected := map[string]dom.Category{
		"table": dom.SelfContainedBlock,
		"tbody": dom.SelfContainedBlock,
		"tr":    dom.SelfContainedBlock,
		"td":    dom.FormatBlock,
		"p":     dom.FormatBlock,
		"span":  dom.Generic,
		"div":   dom.Component,
		"hr":    dom.SelfContainedBlock,
	}
	for tag, cat := range expected {
		if cats[tag] != cat {
			t.Errorf("expected <%s> to be %s, is %s", tag, cat, cats[tag])
		}
	}
	if dom.CategoryOf(findText(root, "x")) != dom.Generic {
		t.Errorf("expected text nodes to be generic")
	}
}

func TestClassifierSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.dom")
	defer teardown()
	//
	cl, err := dom.NewClassifier("figure.widget")
	if err != nil {
		t.Fatal(err)
	}
	root := parse(t, `<figure class="widget"></figure><div class="w-e-component"></div>`)
	if c := cl.Category(root.FirstChild); c != dom.Component {
		t.Errorf("expected figure.widget to be a component, is %s", c)
	}
	if c := cl.Category(root.LastChild); c != dom.FormatBlock {
		t.Errorf("expected div to be a format block with custom selector, is %s", c)
	}
	if _, err := dom.NewClassifier("p[["); err == nil {
		t.Errorf("expected invalid selector to be rejected")
	}
	none, _ := dom.NewClassifier("")
	if none.Category(root.LastChild) != dom.FormatBlock {
		t.Errorf("expected component detection to be disabled")
	}
}

func TestPredicates(t *testing.T) {
	root := parse(t, "<p>a</p><ul><li>b</li></ul> ")
	if !dom.IsFormatElement(root.FirstChild) {
		t.Errorf("expected <p> to be a format element")
	}
	if !dom.IsSelfContainedBlock(root.FirstChild.NextSibling) {
		t.Errorf("expected <ul> to be self-contained")
	}
	if !dom.IsBlank(root.LastChild) {
		t.Errorf("expected trailing space to be blank, is %q", root.LastChild.Data)
	}
}
