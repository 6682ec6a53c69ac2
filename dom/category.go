package dom

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Category is a fixed classification of elements. It drives line-breaking
// in the source view and traversal of the style mutator.
type Category uint8

// Node categories. Every node not otherwise classified is Generic.
const (
	Generic            Category = iota // inline content and everything unknown
	SelfContainedBlock                 // tables, lists, media, hr/br, pre
	FormatBlock                        // paragraph-like blocks
	Component                          // opaque embedded widgets
)

func (c Category) String() string {
	switch c {
	case SelfContainedBlock:
		return "self-contained-block"
	case FormatBlock:
		return "format-block"
	case Component:
		return "component"
	}
	return "generic"
}

var categoryTable = map[string]Category{
	"table":      SelfContainedBlock,
	"thead":      SelfContainedBlock,
	"tbody":      SelfContainedBlock,
	"tfoot":      SelfContainedBlock,
	"tr":         SelfContainedBlock,
	"colgroup":   SelfContainedBlock,
	"col":        SelfContainedBlock,
	"ul":         SelfContainedBlock,
	"ol":         SelfContainedBlock,
	"dl":         SelfContainedBlock,
	"img":        SelfContainedBlock,
	"picture":    SelfContainedBlock,
	"video":      SelfContainedBlock,
	"audio":      SelfContainedBlock,
	"iframe":     SelfContainedBlock,
	"embed":      SelfContainedBlock,
	"object":     SelfContainedBlock,
	"canvas":     SelfContainedBlock,
	"svg":        SelfContainedBlock,
	"hr":         SelfContainedBlock,
	"br":         SelfContainedBlock,
	"pre":        SelfContainedBlock,
	"p":          FormatBlock,
	"div":        FormatBlock,
	"h1":         FormatBlock,
	"h2":         FormatBlock,
	"h3":         FormatBlock,
	"h4":         FormatBlock,
	"h5":         FormatBlock,
	"h6":         FormatBlock,
	"li":         FormatBlock,
	"td":         FormatBlock,
	"th":         FormatBlock,
	"dd":         FormatBlock,
	"dt":         FormatBlock,
	"section":    FormatBlock,
	"article":    FormatBlock,
	"header":     FormatBlock,
	"footer":     FormatBlock,
	"blockquote": FormatBlock,
	"caption":    FormatBlock,
	"figcaption": FormatBlock,
	"address":    FormatBlock,
	"aside":      FormatBlock,
	"nav":        FormatBlock,
	"main":       FormatBlock,
}

// DefaultComponentSelector matches elements marked as embedded components.
const DefaultComponentSelector = "[data-component], .w-e-component"

// Classifier assigns categories to nodes. The tag table is fixed, the
// selector recognizing components may be configured.
type Classifier struct {
	component cascadia.Selector
	selector  string
}

// NewClassifier creates a classifier recognizing components by a CSS selector.
// An empty selector disables component detection.
func NewClassifier(componentSelector string) (*Classifier, error) {
	cl := &Classifier{selector: componentSelector}
	if componentSelector == "" {
		return cl, nil
	}
	sel, err := cascadia.Compile(componentSelector)
	if err != nil {
		return nil, fmt.Errorf("component selector %q: %w", componentSelector, err)
	}
	cl.component = sel
	return cl, nil
}

var defaultClassifier = func() *Classifier {
	cl, err := NewClassifier(DefaultComponentSelector)
	if err != nil {
		panic(err)
	}
	return cl
}()

// DefaultClassifier returns a classifier using DefaultComponentSelector.
func DefaultClassifier() *Classifier {
	return defaultClassifier
}

// ComponentSelector returns the selector this classifier uses for components.
func (cl *Classifier) ComponentSelector() string {
	return cl.selector
}

// Category classifies a node. Non-element nodes are Generic.
func (cl *Classifier) Category(n *html.Node) Category {
	if n == nil || n.Type != html.ElementNode {
		return Generic
	}
	if cl.component != nil && cl.component.Match(n) {
		return Component
	}
	return categoryTable[n.Data] // zero value is Generic
}

// CategoryOf classifies a node with the default classifier.
func CategoryOf(n *html.Node) Category {
	return defaultClassifier.Category(n)
}
