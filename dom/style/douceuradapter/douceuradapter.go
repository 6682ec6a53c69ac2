/*
Package douceuradapter parses CSS declarations with package
github.com/aymerick/douceur and converts them to style.Declarations.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/richtext/dom/style"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'richtext.style'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.style")
}

// ParseInline parses the text of a style attribute, e.g.
//
//     color: red; line-height: 1.5em
//
// Property keys are lower-cased. Later declarations of a key replace
// earlier ones, at the position of the first one. Empty declarations, as in
// "color:red;;", are skipped. Declarations douceur cannot read are dropped,
// as a browser would do.
func ParseInline(text string) (style.Declarations, error) {
	segments := splitDeclarations(text)
	if len(segments) == 0 {
		return nil, nil
	}
	decls, err := parser.ParseDeclarations(strings.Join(segments, ";"))
	if err == nil {
		return Wrap(decls), nil
	}
	var valid []*css.Declaration
	for _, seg := range segments {
		d, err := parser.ParseDeclarations(seg)
		if err != nil {
			tracer().Infof("inline style: dropping %q: %v", seg, err)
			continue
		}
		valid = append(valid, d...)
	}
	return Wrap(valid), nil
}

// splitDeclarations splits style text at semicolons which are not inside
// quotes or parentheses. Segments are trimmed, empty segments are omitted.
func splitDeclarations(text string) []string {
	var segments []string
	var quote rune
	depth, start := 0, 0
	add := func(seg string) {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments = append(segments, seg)
		}
	}
	for i, r := range text {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case r == ';' && depth == 0:
			add(text[start:i])
			start = i + 1
		}
	}
	add(text[start:])
	return segments
}

// Wrap converts douceur declarations to style.Declarations.
func Wrap(decls []*css.Declaration) style.Declarations {
	var sd style.Declarations
	for _, d := range decls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if key == "" {
			continue
		}
		kv := style.KeyValue{
			Key:       key,
			Value:     style.Property(strings.TrimSpace(d.Value)),
			Important: d.Important,
		}
		replaced := false
		for i := range sd {
			if sd[i].Key == key {
				sd[i] = kv
				replaced = true
				break
			}
		}
		if !replaced {
			sd = append(sd, kv)
		}
	}
	return sd
}

// InlineStyle returns the parsed inline style of node n.
func InlineStyle(n *html.Node) (style.Declarations, error) {
	return ParseInline(style.InlineText(n))
}

// SetProperty sets a single property in the inline style of element n,
// preserving all other declarations.
func SetProperty(n *html.Node, key string, value style.Property) error {
	decls, err := InlineStyle(n)
	if err != nil {
		return err
	}
	style.SetInline(n, decls.Set(style.PropertyName(key), value))
	return nil
}
