/*
Package styler applies a single CSS property to a piece of markup.

The style applier is the second half of a style command in the editor: the
selection adapter extracts the selected markup, package styler rewrites it,
and the adapter puts it back in place of the selection.

Styling is pushed down: every element of the markup receives the property
in its inline style, not only the top-level ones, so that a selection
cut from the middle of a styled block keeps the new style after it has been
re-inserted. Bare text at the top level cannot carry a style and is wrapped
into a paragraph element first. Components are opaque: they are styled
as a whole, but their content is left alone.

Apply is a pure function from markup to markup. The tree it mutates is a
private copy parsed from its input.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styler

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.styler'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.styler")
}
