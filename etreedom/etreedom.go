// Package etreedom adapts beevik/etree documents to the xpath.Node
// interface. It is the adapter of choice for XML sources and for building
// trees programmatically in tests.
package etreedom

import (
	"errors"
	"strings"

	"github.com/beevik/etree"

	"github.com/htmlpath/htmlpath/xpath"
)

// node is a value type so that wrappers of the same *etree.Element compare
// equal; the evaluator uses that for de-duplication.
type node struct {
	el *etree.Element
}

var _ xpath.Node = node{}

// Wrap adapts an element.
func Wrap(el *etree.Element) (xpath.Node, error) {
	if el == nil {
		return nil, errors.New("etreedom: nil element")
	}
	return node{el}, nil
}

// FromDocument returns the document's root element.
func FromDocument(doc *etree.Document) (xpath.Node, error) {
	if doc == nil || doc.Root() == nil {
		return nil, errors.New("etreedom: document has no root element")
	}
	return node{doc.Root()}, nil
}

// Unwrap returns the underlying *etree.Element for nodes produced by this
// package.
func Unwrap(n xpath.Node) (*etree.Element, bool) {
	if en, ok := n.(node); ok {
		return en.el, true
	}
	return nil, false
}

func (e node) Name() string { return e.el.Tag }

func (e node) Parent() xpath.Node {
	if p := e.el.Parent(); p != nil {
		return node{p}
	}
	return nil
}

func (e node) ChildElements() []xpath.Node {
	children := e.el.ChildElements()
	out := make([]xpath.Node, 0, len(children))
	for _, c := range children {
		out = append(out, node{c})
	}
	return out
}

func (e node) ChildElementsNamed(name string) []xpath.Node {
	var out []xpath.Node
	for _, c := range e.el.ChildElements() {
		if strings.EqualFold(c.Tag, name) {
			out = append(out, node{c})
		}
	}
	return out
}

func (e node) DescendantElements() []xpath.Node {
	var out []xpath.Node
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		for _, c := range el.ChildElements() {
			out = append(out, node{c})
			walk(c)
		}
	}
	walk(e.el)
	return out
}

func (e node) Attribute(name string) (string, bool) {
	if a := e.el.SelectAttr(name); a != nil {
		return a.Value, true
	}
	return "", false
}

func (e node) Attributes() []xpath.Attr {
	out := make([]xpath.Attr, 0, len(e.el.Attr))
	for _, a := range e.el.Attr {
		out = append(out, xpath.Attr{Name: a.FullKey(), Value: a.Value})
	}
	return out
}

func (e node) TextContent() string {
	var b strings.Builder
	var walk func(*etree.Element)
	walk = func(el *etree.Element) {
		for _, tok := range el.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				b.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(e.el)
	return b.String()
}
