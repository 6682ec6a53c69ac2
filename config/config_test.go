package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/richtext/config"
	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, dom.DefaultComponentSelector, cfg.ComponentSelector)
	cl, err := cfg.Classifier()
	require.NoError(t, err)
	assert.Equal(t, dom.DefaultComponentSelector, cl.ComponentSelector())
	assert.NotEmpty(t, cfg.PasteOptions().AllowedStyles)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
indent: 0
wrapper_tag: div
paste:
  keep_classes: true
browser:
  timeout: 5s
`))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Indent)
	assert.Equal(t, "div", cfg.WrapperTag)
	assert.True(t, cfg.Paste.KeepClasses)
	assert.Equal(t, 5*time.Second, cfg.Browser.Timeout)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, dom.DefaultComponentSelector, cfg.ComponentSelector)
	assert.Equal(t, config.Default().LineHeights, cfg.LineHeights)
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{
		"indent: -2",
		`component_selector: "p[["`,
		"trace_level: verbose",
		"indent: [1",
	} {
		_, err := config.Parse([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.editor")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "richtext.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indent: 2\ntrace_level: Debug\n"), 0o644))
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Indent)
	cfg.ApplyTraceLevel()
	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
