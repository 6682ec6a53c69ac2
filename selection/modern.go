package selection

import (
	"fmt"

	"github.com/npillmayer/richtext/dom"
)

type modernBinding struct {
	rng Range
}

func acquireModern(h ModernHost) (binding, error) {
	if h.RangeCount() == 0 {
		return nil, ErrNoActiveSelection
	}
	rng, err := h.RangeAt(0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoActiveSelection, err)
	}
	return modernBinding{rng: rng}, nil
}

func (b modernBinding) fragment() (Fragment, error) {
	if b.rng.Collapsed() {
		return nil, ErrNoActiveSelection
	}
	nodes, err := b.rng.CloneContents()
	if err != nil {
		return nil, err
	}
	f := make(Fragment, 0, len(nodes))
	for _, n := range nodes {
		markup, err := dom.OuterHTML(n)
		if err != nil {
			return nil, err
		}
		f = append(f, markup)
	}
	return f, nil
}

// replace parses all entries into a single container before it touches the
// document. Either all of f is inserted or nothing.
func (b modernBinding) replace(f Fragment) error {
	container := dom.NewFragment()
	for _, markup := range f {
		nodes, err := dom.ParseFragment(markup)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			container.AppendChild(n)
		}
	}
	if err := b.rng.DeleteContents(); err != nil {
		return err
	}
	return b.rng.InsertNode(container)
}
