/*
Package config holds the configuration of the editor core. Configuration
is read from YAML:

	indent: 2
	component_selector: "[data-component], .w-e-component"
	wrapper_tag: p
	line_heights: ["1", "1.15", "1.5", "2"]
	font_sizes: ["10pt", "12pt", "14pt", "18pt", "24pt"]
	paste:
	  allowed_styles: [color, font-size]
	  keep_classes: false
	trace_level: Error
	browser:
	  remote: ""
	  headless: true
	  timeout: 30s

Keys not present keep their default values (see Default).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/paste"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Indent            int           `yaml:"indent"`
	ComponentSelector string        `yaml:"component_selector"`
	WrapperTag        string        `yaml:"wrapper_tag"`
	LineHeights       []string      `yaml:"line_heights"`
	FontSizes         []string      `yaml:"font_sizes"`
	Paste             PasteConfig   `yaml:"paste"`
	TraceLevel        string        `yaml:"trace_level"` // Error | Info | Debug
	Browser           BrowserConfig `yaml:"browser"`
}

// PasteConfig configures the paste filter.
type PasteConfig struct {
	AllowedStyles []string `yaml:"allowed_styles"`
	KeepClasses   bool     `yaml:"keep_classes"`
}

// BrowserConfig controls Chrome for live editing sessions.
type BrowserConfig struct {
	Remote   string        `yaml:"remote"` // control URL of a running Chrome
	Headless bool          `yaml:"headless"`
	Timeout  time.Duration `yaml:"timeout"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Indent:            4,
		ComponentSelector: dom.DefaultComponentSelector,
		WrapperTag:        "p",
		LineHeights:       []string{"1", "1.15", "1.5", "2", "2.5", "3"},
		FontSizes:         []string{"10pt", "12pt", "14pt", "18pt", "24pt", "32pt"},
		Paste: PasteConfig{
			AllowedStyles: append([]string(nil), paste.DefaultAllowedStyles...),
		},
		TraceLevel: "Error",
		Browser: BrowserConfig{
			Headless: true,
			Timeout:  30 * time.Second,
		},
	}
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse reads YAML configuration data. Settings missing in data are taken
// from Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("config: indent must not be negative: %d", c.Indent)
	}
	if c.WrapperTag == "" {
		c.WrapperTag = "p"
	}
	if _, err := c.Classifier(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, ok := traceLevels[strings.ToLower(c.TraceLevel)]; !ok {
		return fmt.Errorf("config: unknown trace level %q", c.TraceLevel)
	}
	if c.Browser.Timeout <= 0 {
		c.Browser.Timeout = 30 * time.Second
	}
	return nil
}

// Classifier creates a node classifier using the configured component selector.
func (c *Config) Classifier() (*dom.Classifier, error) {
	return dom.NewClassifier(c.ComponentSelector)
}

// PasteOptions returns the options for a paste filter.
func (c *Config) PasteOptions() paste.Options {
	styles := c.Paste.AllowedStyles
	if styles == nil {
		styles = []string{}
	}
	return paste.Options{
		AllowedStyles: styles,
		KeepClasses:   c.Paste.KeepClasses,
	}
}

var traceLevels = map[string]tracing.TraceLevel{
	"":      tracing.LevelError,
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}

// TraceKeys are the tracing keys of the packages of this module.
var TraceKeys = []string{
	"richtext.dom", "richtext.style", "richtext.source", "richtext.styler",
	"richtext.selection", "richtext.rodhost", "richtext.paste", "richtext.editor",
}

// ApplyTraceLevel sets the configured trace level for all tracers of this
// module.
func (c *Config) ApplyTraceLevel() {
	level := traceLevels[strings.ToLower(c.TraceLevel)]
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}
