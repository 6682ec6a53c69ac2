/*
Package source renders editor content as indented, human-readable markup
for a "view source" mode.

Overview

The serializer walks a node tree in pre-order and decides for every
element wether it starts a new line, is indented, or stays inline with
its surroundings. These decisions depend on node categories (see package
dom): self-contained blocks like tables and lists are laid out with one
line per row or item and indented by nesting depth, paragraph-like blocks
get a line of their own, inline content flows. Components are opaque and
reproduced verbatim.

The output is deterministic and stable: parsing the output and
serializing it again yields the same text.

	<table>
	  <tbody>
	    <tr>
	      <td>x</td>
	    </tr>
	  </tbody>
	</table>

Besides markup, content may be rendered as Markdown (see Markdown).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package source

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.source'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.source")
}
