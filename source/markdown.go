package source

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/npillmayer/richtext/dom"
	"golang.org/x/net/html"
)

var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// Markdown renders the content of root as Markdown. Inline styles do not
// survive the conversion. Tables are rendered as pipe tables.
//
// The result is trimmed and ends with exactly one newline, as with Serialize.
func Markdown(root *html.Node) (string, error) {
	if root == nil {
		return "\n", nil
	}
	markup, err := dom.InnerHTML(root)
	if err != nil {
		return "", err
	}
	md, err := mdConverter.ConvertString(markup)
	if err != nil {
		tracer().Errorf("source: markdown conversion failed: %v", err)
		return "", fmt.Errorf("markdown: %w", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}

// MarkupToMarkdown parses markup and renders it as Markdown.
func MarkupToMarkdown(markup string) (string, error) {
	root, err := dom.ParseContainer(markup)
	if err != nil {
		return "", err
	}
	return Markdown(root)
}
