package rodhost_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/npillmayer/richtext/selection"
	"github.com/npillmayer/richtext/selection/rodhost"
	"github.com/npillmayer/richtext/styler"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests need a Chrome installation and are skipped unless
// RICHTEXT_CHROME=1 is set.
func chrome(t *testing.T) (*rodhost.Browser, context.Context) {
	t.Helper()
	if os.Getenv("RICHTEXT_CHROME") != "1" {
		t.Skip("set RICHTEXT_CHROME=1 to run browser tests")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	t.Cleanup(cancel)
	b, err := rodhost.Launch(ctx, os.Getenv("RICHTEXT_CHROME_URL"), true)
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b, ctx
}

func TestPageSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.rodhost")
	defer teardown()
	//
	b, ctx := chrome(t)
	page, err := b.Open(ctx, `<html><body><div id="ed"><p>Hello</p><p>World</p></div></body></html>`)
	require.NoError(t, err)
	a := selection.For(page)
	require.Equal(t, selection.ModelModern, a.Model())
	assert.True(t, a.SelectedFragment().IsEmpty())
	//
	require.NoError(t, page.SelectContents("#ed"))
	f := a.SelectedFragment()
	assert.Equal(t, selection.Fragment{"<p>Hello</p>", "<p>World</p>"}, f)
	restyled := make(selection.Fragment, len(f))
	for i, m := range f {
		restyled[i], err = styler.Apply(m, "color", "red")
		require.NoError(t, err)
	}
	assert.True(t, a.ReplaceSelection(restyled))
	content, err := page.InnerHTML("#ed")
	require.NoError(t, err)
	assert.Contains(t, content, `<p style="color:red">Hello</p>`)
	assert.Contains(t, content, `<p style="color:red">World</p>`)
}
