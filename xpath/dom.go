// Package xpath evaluates a restricted subset of XPath against an HTML or
// XML element tree. The dialect is the one understood by HtmlCleaner-style
// scrapers: child, descendant, self and parent steps, attribute access,
// positional and boolean predicates, and a handful of functions (last,
// position, text, count, data).
//
// The package knows nothing about concrete document types. Callers supply a
// tree through the Node interface; the htmldom and etreedom packages provide
// adapters for golang.org/x/net/html and beevik/etree trees.
package xpath

// Node is the element abstraction the evaluator walks. Implementations must
// be comparable with ==, and two Node values must compare equal exactly when
// they refer to the same underlying element: the evaluator uses Nodes as map
// keys to de-duplicate overlapping descendant matches.
type Node interface {
	// Name returns the element's tag name.
	Name() string

	// Parent returns the parent element, or nil for a root element.
	Parent() Node

	// ChildElements returns the element's child elements in document order.
	// Non-element children (text, comments) are excluded.
	ChildElements() []Node

	// ChildElementsNamed returns the child elements whose tag name equals
	// name, compared case-insensitively, in document order.
	ChildElementsNamed(name string) []Node

	// DescendantElements returns all element descendants in document order
	// (preorder), excluding the receiver itself.
	DescendantElements() []Node

	// Attribute returns the value of the named attribute and whether the
	// attribute is present.
	Attribute(name string) (string, bool)

	// Attributes returns all attributes in their original order.
	Attributes() []Attr

	// TextContent returns the concatenation of all descendant text, per DOM
	// Level 2 textContent semantics.
	TextContent() string
}

// Attr is a single element attribute.
type Attr struct {
	Name  string
	Value string
}
