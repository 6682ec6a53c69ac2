/*
Package paste cleans up markup pasted into the editor.

Content pasted from word processors carries a lot of baggage: XML
namespaced elements (<o:p>), conditional comments, vendor style
declarations (mso-…) and class names referring to style sheets which are
not available in the editor. A Filter reduces pasted markup to the
elements, attributes and style properties the editor knows how to handle.

Filtering is done by a policy of package github.com/microcosm-cc/bluemonday.
Filters are not a protection against malicious content: the editor does not
sanitize for XSS beyond what the policy drops anyway.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package paste

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'richtext.paste'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.paste")
}

// DefaultAllowedStyles are the style properties kept by default.
var DefaultAllowedStyles = []string{
	"color", "background-color", "font-size", "font-weight", "font-style",
	"text-align", "text-decoration", "line-height",
}

// Options configure a filter.
type Options struct {
	AllowedStyles []string // style properties to keep
	KeepClasses   bool     // keep class attributes
}

// Filter cleans up pasted content.
type Filter struct {
	policy *bluemonday.Policy
}

// NewFilter creates a filter. If opts.AllowedStyles is nil,
// DefaultAllowedStyles are used.
func NewFilter(opts Options) *Filter {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "div", "br", "hr", "span",
		"b", "strong", "i", "em", "u", "s", "strike", "sub", "sup", "code",
		"h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption")
	p.AllowStandardURLs()
	p.AllowAttrs("href", "title").OnElements("a")
	p.AllowAttrs("src", "alt", "width", "height").OnElements("img")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.SkipElementsContent("script", "style", "xml")
	styles := opts.AllowedStyles
	if styles == nil {
		styles = DefaultAllowedStyles
	}
	if len(styles) > 0 {
		p.AllowStyles(styles...).Globally()
	}
	if opts.KeepClasses {
		p.AllowAttrs("class").Globally()
	}
	return &Filter{policy: p}
}

// Default returns a filter with default options.
func Default() *Filter {
	return NewFilter(Options{})
}

var conditionalComment = regexp.MustCompile(`(?s)<!--\[if.*?<!\[endif\]-->`)

// HTML filters pasted markup.
func (f *Filter) HTML(raw string) string {
	raw = conditionalComment.ReplaceAllString(raw, "")
	clean := strings.TrimSpace(f.policy.Sanitize(raw))
	tracer().Debugf("paste: filtered %d bytes to %d bytes", len(raw), len(clean))
	return clean
}

// Text converts pasted plain text to markup, one paragraph per non-blank
// line.
func (f *Filter) Text(raw string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>")
	}
	return b.String()
}
