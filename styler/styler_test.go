package styler_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/styler"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apply(t *testing.T, markup, prop, value string) string {
	t.Helper()
	out, err := styler.Apply(markup, prop, value)
	require.NoError(t, err)
	return out
}

func TestApplyParagraph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	out := apply(t, "<p>Hello</p>", "lineHeight", "1.5em")
	assert.Equal(t, `<p style="line-height:1.5em">Hello</p>`, out)
}

func TestApplyWrapsBareText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	out := apply(t, "Hello", "lineHeight", "unset")
	assert.Equal(t, `<p style="line-height:unset">Hello</p>`, out)
	out = apply(t, "Hello <b>x</b>", "color", "red")
	assert.Equal(t, `<p style="color:red">Hello </p><b style="color:red">x</b>`, out)
	//
	div := styler.New("div", nil)
	out, err := div.Apply("x", "color", "red")
	require.NoError(t, err)
	assert.Equal(t, `<div style="color:red">x</div>`, out)
}

func TestApplyKeepsBlankText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	out := apply(t, "<p>a</p> <p>b</p>", "color", "red")
	assert.Equal(t, `<p style="color:red">a</p> <p style="color:red">b</p>`, out)
}

func TestApplyPushesDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	out := apply(t, "<p>a<b>b<i>c</i></b></p>", "color", "red")
	assert.Equal(t,
		`<p style="color:red">a<b style="color:red">b<i style="color:red">c</i></b></p>`,
		out)
}

func TestApplyKeepsDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	out := apply(t, `<p style="color: blue; line-height: 2">x</p>`, "line-height", "1.5em")
	assert.Equal(t, `<p style="color:blue;line-height:1.5em">x</p>`, out)
	out = apply(t, `<p title="t" style="color: blue">x</p>`, "fontSize", "12pt")
	assert.Equal(t, `<p title="t" style="color:blue;font-size:12pt">x</p>`, out)
}

func TestApplyEmptyValueRemoves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	out := apply(t, `<p style="color:red;line-height:2">x</p>`, "lineHeight", "")
	assert.Equal(t, `<p style="color:red">x</p>`, out)
	out = apply(t, `<p style="line-height:2">x</p>`, "lineHeight", "")
	assert.Equal(t, `<p>x</p>`, out)
}

func TestApplyComponentOpaque(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	out := apply(t, `<div data-component="chart"><span>in</span></div>`, "color", "red")
	assert.Equal(t, `<div data-component="chart" style="color:red"><span>in</span></div>`, out)
	out = apply(t, `<p>a<span class="w-e-component"><i>b</i></span></p>`, "color", "red")
	assert.Equal(t,
		`<p style="color:red">a<span class="w-e-component" style="color:red"><i>b</i></span></p>`,
		out)
}

func TestApplyIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	inputs := []string{
		"Hello",
		"<p>Hello</p>",
		"a<p>b</p> c",
		`<ul><li style="color:blue">x</li><li>y <b>z</b></li></ul>`,
		`<table><tr><td>1</td></tr></table>`,
		`<div data-component="x"><p>keep</p></div>`,
	}
	for _, in := range inputs {
		once := apply(t, in, "lineHeight", "1.5em")
		twice := apply(t, once, "lineHeight", "1.5em")
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestApplyMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	_, err := styler.Apply("a\xffb", "color", "red")
	assert.True(t, errors.Is(err, dom.ErrMalformedMarkup))
}

func TestApplyToleratesEmptyDeclarations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.styler")
	defer teardown()
	//
	out := apply(t, `<p style="color:red;;">A</p>`, "lineHeight", "2em")
	assert.Equal(t, `<p style="color:red;line-height:2em">A</p>`, out)
	out = apply(t, `<p style="; ;">A</p>`, "color", "blue")
	assert.Equal(t, `<p style="color:blue">A</p>`, out)
}
