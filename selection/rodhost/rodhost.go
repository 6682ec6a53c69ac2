/*
Package rodhost provides a selection host for pages in a live browser. It
drives Chrome through package github.com/go-rod/rod and translates the
operations of selection.ModernHost into calls to the W3C Selection API of
the page.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package rodhost

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/selection"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'richtext.rodhost'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.rodhost")
}

// Page is a selection.ModernHost for a browser page. All operations on the
// page are bound to the context given at construction time.
type Page struct {
	page *rod.Page
}

var _ selection.ModernHost = &Page{}

// New wraps a rod page. ctx bounds all calls to the browser.
func New(ctx context.Context, page *rod.Page) *Page {
	return &Page{page: page.Context(ctx)}
}

// Rod returns the underlying rod page.
func (p *Page) Rod() *rod.Page {
	return p.page
}

func (p *Page) eval(js string, args ...interface{}) (*proto.RuntimeRemoteObject, error) {
	res, err := p.page.Eval(js, args...)
	if err != nil {
		tracer().Errorf("rodhost: eval: %v", err)
		return nil, fmt.Errorf("rodhost: %w", err)
	}
	return res, nil
}

// RangeCount returns the number of ranges of the page's selection.
func (p *Page) RangeCount() int {
	res, err := p.eval(`() => {
		const s = window.getSelection();
		return s ? s.rangeCount : 0;
	}`)
	if err != nil {
		return 0
	}
	return res.Value.Int()
}

// RangeAt returns a handle for range i of the page's selection. The handle
// refers to the range by index, it does not pin a range object.
func (p *Page) RangeAt(i int) (selection.Range, error) {
	if i < 0 || i >= p.RangeCount() {
		return nil, fmt.Errorf("%w: range %d", dom.ErrIndexSize, i)
	}
	return pageRange{p: p, i: i}, nil
}

// SetDocument replaces the page's document by markup.
func (p *Page) SetDocument(markup string) error {
	if err := p.page.SetDocumentContent(markup); err != nil {
		return fmt.Errorf("rodhost: set document: %w", err)
	}
	return nil
}

// InnerHTML returns the markup of the content of the first element matching
// a CSS selector.
func (p *Page) InnerHTML(selector string) (string, error) {
	res, err := p.eval(`(sel) => {
		const e = document.querySelector(sel);
		return e ? e.innerHTML : null;
	}`, selector)
	if err != nil {
		return "", err
	}
	if res.Value.Nil() {
		return "", fmt.Errorf("rodhost: no element matches %q", selector)
	}
	return res.Value.Str(), nil
}

// SelectContents makes the content of the first element matching a CSS
// selector the page's selection.
func (p *Page) SelectContents(selector string) error {
	res, err := p.eval(`(sel) => {
		const e = document.querySelector(sel);
		if (!e) return false;
		const r = document.createRange();
		r.selectNodeContents(e);
		const s = window.getSelection();
		s.removeAllRanges();
		s.addRange(r);
		return true;
	}`, selector)
	if err != nil {
		return err
	}
	if !res.Value.Bool() {
		return fmt.Errorf("rodhost: no element matches %q", selector)
	}
	return nil
}

// pageRange implements selection.Range for range i of a page selection.
type pageRange struct {
	p *Page
	i int
}

func (pr pageRange) Collapsed() bool {
	res, err := pr.p.eval(`(i) => window.getSelection().getRangeAt(i).collapsed`, pr.i)
	if err != nil {
		return true
	}
	return res.Value.Bool()
}

// CloneContents has the browser clone the range, then parses the markup
// of every top-level node of the clone.
func (pr pageRange) CloneContents() ([]*html.Node, error) {
	res, err := pr.p.eval(`(i) => {
		const f = window.getSelection().getRangeAt(i).cloneContents();
		const box = document.createElement("div");
		const out = [];
		for (const n of Array.from(f.childNodes)) {
			if (n.nodeType === Node.ELEMENT_NODE) {
				out.push(n.outerHTML);
			} else if (n.nodeType === Node.TEXT_NODE) {
				box.textContent = n.data;
				out.push(box.innerHTML);
			}
		}
		return JSON.stringify(out);
	}`, pr.i)
	if err != nil {
		return nil, err
	}
	var entries []string
	if err := json.Unmarshal([]byte(res.Value.Str()), &entries); err != nil {
		return nil, fmt.Errorf("rodhost: clone contents: %w", err)
	}
	var nodes []*html.Node
	for _, markup := range entries {
		ns, err := dom.ParseFragment(markup)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, ns...)
	}
	tracer().Debugf("rodhost: cloned %d nodes from range %d", len(nodes), pr.i)
	return nodes, nil
}

func (pr pageRange) DeleteContents() error {
	_, err := pr.p.eval(`(i) => { window.getSelection().getRangeAt(i).deleteContents(); }`, pr.i)
	return err
}

// InsertNode renders n and has the browser parse it in the context of
// the range.
func (pr pageRange) InsertNode(n *html.Node) error {
	markup, err := dom.OuterHTML(n)
	if err != nil {
		return err
	}
	_, err = pr.p.eval(`(i, markup) => {
		const r = window.getSelection().getRangeAt(i);
		r.insertNode(r.createContextualFragment(markup));
	}`, pr.i, markup)
	return err
}

// --- Browser ---------------------------------------------------------------

// Browser is a Chrome instance started for editing sessions.
type Browser struct {
	browser *rod.Browser
	lnch    *launcher.Launcher
}

// Launch starts a local Chrome, or connects to a running one if controlURL
// is given.
func Launch(ctx context.Context, controlURL string, headless bool) (*Browser, error) {
	b := &Browser{}
	if controlURL == "" {
		l := launcher.New().Context(ctx).Headless(headless)
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("rodhost: launch: %w", err)
		}
		controlURL, b.lnch = u, l
	}
	b.browser = rod.New().Context(ctx).ControlURL(controlURL)
	if err := b.browser.Connect(); err != nil {
		b.Close()
		return nil, fmt.Errorf("rodhost: connect: %w", err)
	}
	tracer().Infof("rodhost: connected to %s", controlURL)
	return b, nil
}

// Open opens a new page with a document made of markup.
func (b *Browser) Open(ctx context.Context, markup string) (*Page, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("rodhost: create page: %w", err)
	}
	p := New(ctx, page)
	if err := p.SetDocument(markup); err != nil {
		page.Close()
		return nil, err
	}
	return p, nil
}

// Close shuts down the browser.
func (b *Browser) Close() error {
	var err error
	if b.browser != nil {
		err = b.browser.Close()
	}
	if b.lnch != nil {
		b.lnch.Kill()
	}
	return err
}
