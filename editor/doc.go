/*
Package editor wires menu commands of a rich-text editor to the editor core.

An Editor owns the content root of a document and a selection adapter for
the host the document lives in. Style commands extract the selection,
restyle it and put it back in place:

	ed, _ := editor.New(root, selection.For(host), nil)
	ed.SetLineHeight("1.5")

The "view source" toggle renders the content root as indented markup, and
source edits may be applied back to the content root.

Commands do not report failures as errors. A command which cannot be
carried out leaves the document unchanged and returns false.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package editor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.editor'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.editor")
}
