package selection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNoActiveSelection flags that there is no selection or that it is empty.
	ErrNoActiveSelection = errors.New("no active selection")
	// ErrUnsupportedSelectionModel flags a host without a usable selection API.
	ErrUnsupportedSelectionModel = errors.New("unsupported selection model")
	// ErrHandleConsumed flags the re-use of a selection handle.
	ErrHandleConsumed = errors.New("selection handle already consumed")
)

// Fragment is a sequence of markup strings, one for each top-level node of
// a selection, in document order.
type Fragment []string

// IsEmpty is true for fragments without any markup.
func (f Fragment) IsEmpty() bool {
	for _, s := range f {
		if s != "" {
			return false
		}
	}
	return true
}

// Markup joins the entries of a fragment.
func (f Fragment) Markup() string {
	return strings.Join(f, "")
}

// Model is a selection model, i.e. a flavour of selection API.
type Model uint8

const (
	ModelNone Model = iota
	ModelLegacy
	ModelModern
)

func (m Model) String() string {
	switch m {
	case ModelLegacy:
		return "legacy"
	case ModelModern:
		return "modern"
	}
	return "none"
}

// Capabilities describe what a host offers. They are determined once by
// Probe and do not change afterwards.
type Capabilities struct {
	Model    Model
	CanPaste bool // selections may be replaced
}

// Probe checks the capabilities of a host. Hosts implementing ModernHost
// are preferred over hosts implementing LegacyHost.
//
// For legacy hosts, paste support is a property of text ranges. If the host
// has an active text range, it is checked; otherwise paste support is
// assumed and checked on every replacement.
func Probe(host any) Capabilities {
	var caps Capabilities
	switch h := host.(type) {
	case ModernHost:
		caps = Capabilities{Model: ModelModern, CanPaste: true}
	case LegacyHost:
		caps = Capabilities{Model: ModelLegacy, CanPaste: true}
		if tr, ok := h.ActiveTextRange(); ok {
			_, caps.CanPaste = tr.(HTMLPaster)
		}
	}
	tracer().Debugf("selection: probed host %T: model=%s, paste=%v", host, caps.Model, caps.CanPaste)
	return caps
}

// Adapter extracts and replaces the content of the selection of a host.
type Adapter interface {
	// SelectedFragment returns the markup of the current selection. An
	// empty fragment is returned if there is nothing selected.
	SelectedFragment() Fragment
	// ReplaceSelection replaces the current selection by the markup of a
	// fragment and reports wether the document has been changed. An empty
	// fragment never changes the document.
	ReplaceSelection(f Fragment) bool
	// Acquire returns a handle for the current selection.
	Acquire() (*Handle, error)
	// Model returns the selection model of the adapter.
	Model() Model
	// LastError returns the reason for the last empty extraction or failed
	// replacement, or nil.
	LastError() error
}

// New creates an adapter for host, using the capabilities determined by a
// previous call to Probe. If the host does not offer the model in caps,
// the adapter reports ErrUnsupportedSelectionModel for every operation.
func New(caps Capabilities, host any) Adapter {
	a := &adapter{caps: caps}
	switch caps.Model {
	case ModelModern:
		if h, ok := host.(ModernHost); ok {
			a.acquire = func() (binding, error) { return acquireModern(h) }
		}
	case ModelLegacy:
		if h, ok := host.(LegacyHost); ok {
			a.acquire = func() (binding, error) { return acquireLegacy(h) }
		}
	}
	if a.acquire == nil {
		a.caps.Model = ModelNone
		a.acquire = func() (binding, error) {
			return nil, fmt.Errorf("%w: host %T", ErrUnsupportedSelectionModel, host)
		}
	}
	return a
}

// For probes a host and creates an adapter for it.
func For(host any) Adapter {
	return New(Probe(host), host)
}

// binding ties a handle to the selection of one model.
type binding interface {
	fragment() (Fragment, error)
	replace(Fragment) error
}

// Handle refers to a selection as it was at the time of acquisition. The
// selection may be replaced once through a handle. Handles are invalid after
// the document has been modified by other means.
type Handle struct {
	id       uuid.UUID
	model    Model
	b        binding
	consumed bool
}

// ID identifies a handle in traces.
func (h *Handle) ID() string {
	return h.id.String()
}

// Model returns the selection model the handle is bound to.
func (h *Handle) Model() Model {
	return h.model
}

// Fragment extracts the markup of the selection. The document is not
// modified.
func (h *Handle) Fragment() (Fragment, error) {
	return h.b.fragment()
}

// Replace replaces the selection by the markup of f. A handle may be used
// for replacement only once.
func (h *Handle) Replace(f Fragment) error {
	if h.consumed {
		return ErrHandleConsumed
	}
	h.consumed = true
	tracer().Debugf("selection: replace through handle %s", h.id)
	return h.b.replace(f)
}

type adapter struct {
	caps    Capabilities
	acquire func() (binding, error)
	lastErr error
}

func (a *adapter) Model() Model {
	return a.caps.Model
}

func (a *adapter) LastError() error {
	return a.lastErr
}

func (a *adapter) Acquire() (*Handle, error) {
	b, err := a.acquire()
	if err != nil {
		return nil, err
	}
	return &Handle{id: uuid.New(), model: a.caps.Model, b: b}, nil
}

func (a *adapter) SelectedFragment() Fragment {
	a.lastErr = nil
	h, err := a.Acquire()
	if err != nil {
		return a.fail(err)
	}
	f, err := h.Fragment()
	if err != nil {
		return a.fail(err)
	}
	if f.IsEmpty() {
		return a.fail(ErrNoActiveSelection)
	}
	tracer().Debugf("selection: handle %s: %d fragment entries", h.id, len(f))
	return f
}

func (a *adapter) fail(err error) Fragment {
	a.lastErr = err
	tracer().Debugf("selection: %v", err)
	return Fragment{}
}

// ReplaceSelection binds to the selection current at the time of the call.
// Callers needing extraction and replacement on the same selection use a
// Handle.
func (a *adapter) ReplaceSelection(f Fragment) bool {
	a.lastErr = nil
	if f.IsEmpty() {
		return false
	}
	if !a.caps.CanPaste {
		a.fail(fmt.Errorf("%w: host cannot paste", ErrUnsupportedSelectionModel))
		return false
	}
	h, err := a.Acquire()
	if err != nil {
		a.fail(err)
		return false
	}
	if err := h.Replace(f); err != nil {
		tracer().Errorf("selection: replacement failed: %v", err)
		a.lastErr = err
		return false
	}
	return true
}
