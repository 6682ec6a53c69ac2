package selection

import (
	"fmt"
)

type legacyBinding struct {
	tr TextRange
}

func acquireLegacy(h LegacyHost) (binding, error) {
	tr, ok := h.ActiveTextRange()
	if !ok || tr == nil {
		return nil, ErrNoActiveSelection
	}
	if tr.ParentDocument() != h.Document() {
		return nil, fmt.Errorf("%w: range belongs to a different document", ErrNoActiveSelection)
	}
	return legacyBinding{tr: tr}, nil
}

func (b legacyBinding) fragment() (Fragment, error) {
	text := b.tr.HTMLText()
	if text == "" {
		return nil, ErrNoActiveSelection
	}
	return Fragment{text}, nil
}

// replace re-selects the range, as focus may have moved since acquisition,
// then pastes all entries at once.
func (b legacyBinding) replace(f Fragment) error {
	paster, ok := b.tr.(HTMLPaster)
	if !ok {
		return fmt.Errorf("%w: text range cannot paste markup", ErrUnsupportedSelectionModel)
	}
	if err := b.tr.Select(); err != nil {
		return err
	}
	return paster.PasteHTML(f.Markup())
}
