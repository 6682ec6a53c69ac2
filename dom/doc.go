/*
Package dom provides the node-level utilities the editor core builds on.

Status

Works for the editor use-cases, i.e. view-source and selection-scoped
styling. The API follows the needs of these two and may grow with them.

Overview

We do not introduce a DOM of our own. Document trees are trees of
*html.Node from package golang.org/x/net/html, which is the parse tree
of the HTML5 parsing algorithm. On top of these nodes package dom offers:

- parsing of markup fragments in a body context and rendering of outer
  and inner markup (see ParseFragment, OuterHTML, InnerHTML)

- a fixed classification of elements into node categories, which drives
  line-breaking of the source view and traversal of the style mutator
  (see Category and Classifier)

- live ranges over a tree, modelled after the W3C Range interface
  (see Range). Ranges are what selections consist of.

Trees handed to this package are never shared between goroutines. All
operations run to completion on the caller's goroutine.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.dom'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.dom")
}
