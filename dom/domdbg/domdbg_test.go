package domdbg_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/domdbg"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.dom")
	defer teardown()
	//
	root, err := dom.ParseContainer(`<table><tr><td style="color:red">x</td></tr></table>`)
	require.NoError(t, err)
	out := domdbg.Tree(root)
	t.Logf("tree:\n%s", out)
	assert.True(t, strings.HasPrefix(out, "#fragment"))
	assert.Contains(t, out, "<table> self-contained-block")
	assert.Contains(t, out, "<td> format-block {color:red}")
	assert.Contains(t, out, `"x"`)
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.dom")
	defer teardown()
	//
	root, err := dom.ParseContainer(`<p>Hello <b>World</b></p>`)
	require.NoError(t, err)
	var buf bytes.Buffer
	domdbg.ToGraphViz(root, &buf)
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "lightgoldenrod2") // <p> is a format block
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}
