/*
Package selection extracts and replaces the content of a user selection.

Hosts expose selections in one of two shapes. The modern model mirrors the
W3C Selection API: a selection consists of ranges, and ranges can clone,
delete and insert content. The legacy model mirrors text ranges as found in
older browser engines: a text range yields its markup as a string and can
paste markup in its place, but only while it is the active selection.

Package selection hides these models behind a single interface, Adapter.
Clients probe a host once for its capabilities (see Probe) and create an
adapter for them (see New). Nothing else in the editor needs to know which
model is in effect.

	caps := selection.Probe(host)
	adapter := selection.New(caps, host)
	frag := adapter.SelectedFragment()
	…
	ok := adapter.ReplaceSelection(restyled)

Expected conditions, like the absence of a selection, are not reported as
errors by the adapter: extraction returns an empty fragment, replacement
returns false. The reason is kept for inspection (see Adapter.LastError).

The package contains in-memory hosts for both models, operating on trees of
*html.Node (see Selection and TextRangeHost). Package selection/rodhost
contributes a host for pages in a live browser.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package selection

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.selection'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.selection")
}
