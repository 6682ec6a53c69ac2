package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
	"unicode"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'richtext.style'
func tracer() tracing.Trace {
	return tracing.Select("richtext.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     line-height: 1.5em
//
// a property value of "1.5em" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key       string
	Value     Property
	Important bool
}

func (kv KeyValue) String() string {
	if kv.Important {
		return kv.Key + ":" + kv.Value.String() + " !important"
	}
	return kv.Key + ":" + kv.Value.String()
}

// PropertyName converts a property name as used in scripting, e.g.
// "lineHeight", to its CSS form, e.g. "line-height". Names already in
// CSS form are returned lower-cased.
func PropertyName(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// --- Declarations -----------------------------------------------------

// Declarations is an ordered list of style properties, as found in an
// inline style attribute. nil is a legal (empty) list of declarations.
// Keys are unique.
type Declarations []KeyValue

// Get a property's value.
func (decls Declarations) Get(key string) (Property, bool) {
	for _, kv := range decls {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return NullStyle, false
}

// Set a property's value. Overwrites an existing value in place, or
// appends the property if not yet present. An existing !important flag
// is dropped, as the new value is set explicitly.
func (decls Declarations) Set(key string, p Property) Declarations {
	for i, kv := range decls {
		if kv.Key == key {
			decls[i] = KeyValue{Key: key, Value: p}
			return decls
		}
	}
	return append(decls, KeyValue{Key: key, Value: p})
}

// Remove deletes a property, if present.
func (decls Declarations) Remove(key string) Declarations {
	for i, kv := range decls {
		if kv.Key == key {
			return append(decls[:i], decls[i+1:]...)
		}
	}
	return decls
}

// String renders declarations as they appear in a style attribute, e.g.
//
//     color:red;line-height:1.5em
//
func (decls Declarations) String() string {
	parts := make([]string, 0, len(decls))
	for _, kv := range decls {
		if kv.Key == "" {
			continue
		}
		parts = append(parts, kv.String())
	}
	return strings.Join(parts, ";")
}
