package editor_test

import (
	"testing"

	"github.com/npillmayer/richtext/config"
	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/domdbg"
	"github.com/npillmayer/richtext/editor"
	"github.com/npillmayer/richtext/selection"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// setup creates an editor for markup, with the whole content selected.
func setup(t *testing.T, markup string) (*editor.Editor, *html.Node, *selection.Selection) {
	t.Helper()
	root, err := dom.ParseContainer(markup)
	require.NoError(t, err)
	r := dom.NewRange(root)
	require.NoError(t, r.SelectNodeContents(root))
	sel := selection.NewSelection(r)
	ed, err := editor.New(root, selection.For(sel), nil)
	require.NoError(t, err)
	return ed, root, sel
}

func TestSetLineHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	ed, root, _ := setup(t, "<p>Hello</p><p>World</p>")
	require.True(t, ed.SetLineHeight("1.5"))
	assert.Equal(t,
		`<p style="line-height:1.5em">Hello</p><p style="line-height:1.5em">World</p>`,
		ed.HTML(), domdbg.Tree(root))
}

func TestSetLineHeightReset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	ed, _, _ := setup(t, "Hello")
	require.True(t, ed.SetLineHeight("1"))
	assert.Equal(t, `<p style="line-height:unset">Hello</p>`, ed.HTML())
}

func TestSetFontSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	ed, _, _ := setup(t, "<p>a<b>b</b></p>")
	assert.False(t, ed.SetFontSize("huge"))
	assert.False(t, ed.SetFontSize("16px"), "not a configured font size")
	assert.Equal(t, "<p>a<b>b</b></p>", ed.HTML())
	require.True(t, ed.SetFontSize("14pt"))
	assert.Equal(t, `<p style="font-size:14pt">a<b style="font-size:14pt">b</b></p>`, ed.HTML())
}

func TestNormalizeStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	v, err := editor.NormalizeStyle(nil, "lineHeight", "1.5")
	require.NoError(t, err)
	assert.Equal(t, "1.5em", v)
	_, err = editor.NormalizeStyle(nil, "font-size", "16px")
	assert.Error(t, err)
	cfg := config.Default()
	cfg.FontSizes = nil
	v, err = editor.NormalizeStyle(cfg, "font-size", "16px")
	require.NoError(t, err)
	assert.Equal(t, "12pt", v)
	v, err = editor.NormalizeStyle(cfg, "color", "red")
	require.NoError(t, err)
	assert.Equal(t, "red", v)
}

func TestStyleWithEmptyDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	ed, _, _ := setup(t, `<p style="color:red;;">A</p>`)
	require.True(t, ed.SetLineHeight("2"))
	assert.Equal(t, `<p style="color:red;line-height:2em">A</p>`, ed.HTML())
}

func TestPasteAfterAbandonedExtraction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	root, err := dom.ParseContainer("<p>A</p><p>B</p>")
	require.NoError(t, err)
	first, second := dom.NewRange(root), dom.NewRange(root)
	require.NoError(t, first.SelectNode(root.FirstChild))
	require.NoError(t, second.SelectNode(root.LastChild))
	sel := selection.NewSelection(first)
	a := selection.For(sel)
	ed, err := editor.New(root, a, nil)
	require.NoError(t, err)
	require.False(t, a.SelectedFragment().IsEmpty())
	sel.RemoveAllRanges()
	sel.AddRange(second)
	require.True(t, ed.Paste("<b>X</b>"))
	assert.Equal(t, "<p>A</p><b>X</b>", ed.HTML())
}

func TestStyleWithoutSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	ed, root, sel := setup(t, "<p>Hello</p>")
	r := dom.NewRange(root)
	sel.RemoveAllRanges()
	sel.AddRange(r) // collapsed
	assert.False(t, ed.ApplyStyle("color", "red"))
	assert.Equal(t, "<p>Hello</p>", ed.HTML())
}

func TestSourceView(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	cfg := config.Default()
	cfg.Indent = 2
	root, err := dom.ParseContainer("<ul><li>a</li></ul>")
	require.NoError(t, err)
	ed, err := editor.New(root, selection.For(selection.NewSelection()), cfg)
	require.NoError(t, err)
	text, on := ed.ToggleSource()
	assert.True(t, on)
	assert.True(t, ed.SourceMode())
	assert.Equal(t, "<ul>\n  <li>a</li>\n</ul>\n", text)
	assert.False(t, ed.ApplyStyle("color", "red"), "no styling in source view")
	//
	assert.Error(t, ed.SetSource("<p>\xff</p>"))
	assert.Equal(t, "<ul><li>a</li></ul>", ed.HTML())
	require.NoError(t, ed.SetSource("<ul>\n  <li>b</li>\n</ul>\n"))
	assert.False(t, ed.SourceMode())
	text, _ = ed.ToggleSource()
	assert.Equal(t, "<ul>\n  <li>b</li>\n</ul>\n", text)
	_, on = ed.ToggleSource()
	assert.False(t, on)
}

func TestPaste(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	ed, _, _ := setup(t, "<p>Hello</p>")
	require.True(t, ed.Paste(`<b class="MsoNormal">Bye</b>`))
	assert.Equal(t, "<b>Bye</b>", ed.HTML())
	//
	ed, _, _ = setup(t, "<p>Hello</p>")
	require.True(t, ed.PasteText("one\ntwo"))
	assert.Equal(t, "<p>one</p><p>two</p>", ed.HTML())
	assert.False(t, ed.Paste("<script>x()</script>"))
}

func TestMarkdown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	ed, _, _ := setup(t, "<h2>Title</h2><p>text</p>")
	md, err := ed.Markdown()
	require.NoError(t, err)
	assert.Equal(t, "## Title\n\ntext\n", md)
}
