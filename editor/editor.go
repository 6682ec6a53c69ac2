package editor

import (
	"fmt"
	"strings"

	"github.com/npillmayer/richtext/config"
	"github.com/npillmayer/richtext/css"
	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/style"
	"github.com/npillmayer/richtext/paste"
	"github.com/npillmayer/richtext/selection"
	"github.com/npillmayer/richtext/source"
	"github.com/npillmayer/richtext/styler"
	"golang.org/x/net/html"
)

// Editor is the command layer of an editor instance.
type Editor struct {
	root       *html.Node
	cfg        *config.Config
	adapter    selection.Adapter
	serializer *source.Serializer
	styler     *styler.Styler
	filter     *paste.Filter
	sourceMode bool
}

// New creates an editor for the content below root. Selections are handled
// by adapter. If cfg is nil, config.Default is used.
func New(root *html.Node, adapter selection.Adapter, cfg *config.Config) (*Editor, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	cl, err := cfg.Classifier()
	if err != nil {
		return nil, err
	}
	s := source.New(cfg.Indent)
	s.Classifier = cl
	return &Editor{
		root:       root,
		cfg:        cfg,
		adapter:    adapter,
		serializer: s,
		styler:     styler.New(cfg.WrapperTag, cl),
		filter:     paste.NewFilter(cfg.PasteOptions()),
	}, nil
}

// Root returns the content root.
func (ed *Editor) Root() *html.Node {
	return ed.root
}

// HTML returns the markup of the content.
func (ed *Editor) HTML() string {
	markup, err := dom.InnerHTML(ed.root)
	if err != nil {
		tracer().Errorf("editor: %v", err)
	}
	return markup
}

// SourceMode is true while the source view is active.
func (ed *Editor) SourceMode() bool {
	return ed.sourceMode
}

// ApplyStyle sets a style property for the current selection. Every
// entry of the selected fragment is restyled on its own. The value is used
// as is, see Style for normalized values.
func (ed *Editor) ApplyStyle(property, value string) bool {
	if ed.sourceMode {
		return false
	}
	return StyleSelection(ed.adapter, ed.styler, property, value)
}

// Style normalizes value (see NormalizeStyle) and sets it for the current
// selection.
func (ed *Editor) Style(property, value string) bool {
	v, err := NormalizeStyle(ed.cfg, property, value)
	if err != nil {
		tracer().Infof("editor: %v", err)
		return false
	}
	return ed.ApplyStyle(property, v)
}

// SetLineHeight sets the line height of the current selection. Values
// must be one of the configured line heights. See css.LineHeight for
// their normalization.
func (ed *Editor) SetLineHeight(v string) bool {
	return ed.Style("line-height", v)
}

// SetFontSize sets the font size of the current selection. Values must be
// one of the configured font sizes. See css.FontSize for their
// normalization.
func (ed *Editor) SetFontSize(v string) bool {
	return ed.Style("font-size", v)
}

// StyleSelection restyles the selection of adapter a with st. Extraction
// and replacement go through a single handle, so a selection changed
// between two commands is never replaced by a stale one.
func StyleSelection(a selection.Adapter, st *styler.Styler, property, value string) bool {
	h, err := a.Acquire()
	if err != nil {
		tracer().Debugf("editor: nothing selected: %v", err)
		return false
	}
	f, err := h.Fragment()
	if err != nil || f.IsEmpty() {
		tracer().Debugf("editor: nothing selected: %v", err)
		return false
	}
	restyled := make(selection.Fragment, 0, len(f))
	for _, markup := range f {
		m, err := st.Apply(markup, property, value)
		if err != nil {
			tracer().Errorf("editor: cannot style selection: %v", err)
			return false
		}
		restyled = append(restyled, m)
	}
	if err := h.Replace(restyled); err != nil {
		tracer().Errorf("editor: replacement through handle %s failed: %v", h.ID(), err)
		return false
	}
	return true
}

// NormalizeStyle checks a value for a style command and normalizes it.
// Line heights and font sizes must be offered by cfg, if cfg lists any,
// and are normalized by css.LineHeight and css.FontSize. Other properties
// pass through.
func NormalizeStyle(cfg *config.Config, property, value string) (string, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	switch style.PropertyName(property) {
	case "line-height":
		if err := offered(cfg.LineHeights, value); err != nil {
			return "", err
		}
		return css.LineHeight(value)
	case "font-size":
		if err := offered(cfg.FontSizes, value); err != nil {
			return "", err
		}
		return css.FontSize(value)
	}
	return value, nil
}

func offered(menu []string, v string) error {
	if len(menu) == 0 {
		return nil
	}
	v = strings.TrimSpace(v)
	for _, entry := range menu {
		if entry == v {
			return nil
		}
	}
	return fmt.Errorf("%w: %q is not offered", css.ErrInvalidValue, v)
}

// ToggleSource switches between the rich view and the source view. When
// switching to the source view, the source text of the content is returned.
// Leaving the source view by ToggleSource discards source edits, see
// SetSource for applying them. The second return value tells wether the
// editor is in source mode afterwards.
func (ed *Editor) ToggleSource() (string, bool) {
	if ed.sourceMode {
		ed.sourceMode = false
		return "", false
	}
	ed.sourceMode = true
	return ed.serializer.Serialize(ed.root), true
}

// SetSource replaces the content by markup, as edited in the source view,
// and leaves the source view. If markup cannot be parsed, the content is
// left unchanged.
//
// Selections referring to the previous content are invalid afterwards.
func (ed *Editor) SetSource(markup string) error {
	nodes, err := dom.ParseFragment(markup)
	if err != nil {
		return err
	}
	for c := ed.root.FirstChild; c != nil; c = ed.root.FirstChild {
		ed.root.RemoveChild(c)
	}
	for _, n := range nodes {
		ed.root.AppendChild(n)
	}
	ed.sourceMode = false
	tracer().Debugf("editor: content replaced from source, %d top-level nodes", len(nodes))
	return nil
}

// Markdown renders the content as Markdown.
func (ed *Editor) Markdown() (string, error) {
	return source.Markdown(ed.root)
}

// Paste replaces the current selection by pasted markup, after filtering it.
func (ed *Editor) Paste(raw string) bool {
	if ed.sourceMode {
		return false
	}
	return ed.insert(ed.filter.HTML(raw))
}

// PasteText replaces the current selection by pasted plain text.
func (ed *Editor) PasteText(raw string) bool {
	if ed.sourceMode {
		return false
	}
	return ed.insert(ed.filter.Text(raw))
}

func (ed *Editor) insert(markup string) bool {
	if markup == "" {
		return false
	}
	return ed.adapter.ReplaceSelection(selection.Fragment{markup})
}
