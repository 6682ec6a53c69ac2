package styler

import (
	"strings"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/style"
	"github.com/npillmayer/richtext/dom/style/douceuradapter"
	"golang.org/x/net/html"
)

// DefaultWrapper is the element bare text is wrapped into.
const DefaultWrapper = "p"

// Styler applies style properties to markup. The zero value is not usable,
// use New or Default.
type Styler struct {
	wrapper    string
	classifier *dom.Classifier
}

// New creates a styler wrapping bare text into elements of tag wrapper,
// and recognizing components with classifier cl. Empty arguments select
// the defaults.
func New(wrapper string, cl *dom.Classifier) *Styler {
	wrapper = strings.ToLower(strings.TrimSpace(wrapper))
	if wrapper == "" {
		wrapper = DefaultWrapper
	}
	if cl == nil {
		cl = dom.DefaultClassifier()
	}
	return &Styler{wrapper: wrapper, classifier: cl}
}

// Default returns a styler with default settings.
func Default() *Styler {
	return New("", nil)
}

// Apply sets property to value for all of markup, see (*Styler).Apply.
func Apply(markup, property, value string) (string, error) {
	return Default().Apply(markup, property, value)
}

// Apply sets CSS property to value in the inline style of every element of
// markup and returns the resulting markup. property may be given in CSS
// form ("line-height") or in scripting form ("lineHeight"). An empty value
// removes the property.
//
// Existing declarations are kept, in order. A declaration for property is
// overwritten in place, otherwise it is appended. Applying the same
// property twice yields the same markup as applying it once.
//
// Markup which is not valid UTF-8 is rejected with dom.ErrMalformedMarkup.
func (s *Styler) Apply(markup, property, value string) (string, error) {
	root, err := dom.ParseContainer(markup)
	if err != nil {
		return "", err
	}
	if err = s.ApplyTo(root, property, value); err != nil {
		return "", err
	}
	return dom.InnerHTML(root)
}

// ApplyTo sets a property for the children of root, modifying the tree.
// Bare text children of root are replaced by wrapper elements.
func (s *Styler) ApplyTo(root *html.Node, property, value string) error {
	key := style.PropertyName(property)
	if key == "" {
		return nil
	}
	p := style.Property(strings.TrimSpace(value))
	tracer().Debugf("styler: %s = %q", key, p)
	for c := root.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case html.TextNode:
			if !dom.IsBlank(c) {
				w := s.wrap(c)
				if err := s.set(w, key, p); err != nil {
					return err
				}
			}
		case html.ElementNode:
			if err := s.push(c, key, p); err != nil {
				return err
			}
		}
		c = next
	}
	return nil
}

// wrap replaces text node t by a wrapper element containing t.
func (s *Styler) wrap(t *html.Node) *html.Node {
	w := dom.NewElement(s.wrapper)
	t.Parent.InsertBefore(w, t)
	t.Parent.RemoveChild(t)
	w.AppendChild(t)
	return w
}

// push styles element n and, unless n is a component, all elements below n.
func (s *Styler) push(n *html.Node, key string, p style.Property) error {
	if err := s.set(n, key, p); err != nil {
		return err
	}
	if s.classifier.Category(n) == dom.Component {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if err := s.push(c, key, p); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Styler) set(n *html.Node, key string, p style.Property) error {
	decls, err := douceuradapter.InlineStyle(n)
	if err != nil {
		return err
	}
	if p.IsEmpty() {
		decls = decls.Remove(key)
	} else {
		decls = decls.Set(key, p)
	}
	style.SetInline(n, decls)
	return nil
}
