// Package htmldom adapts golang.org/x/net/html node trees to the xpath.Node
// interface.
package htmldom

import (
	"errors"
	"strings"

	"golang.org/x/net/html"

	"github.com/htmlpath/htmlpath/xpath"
)

// node is a value type so that two wrappers of the same *html.Node compare
// equal, which the evaluator relies on for de-duplication.
type node struct {
	n *html.Node
}

var _ xpath.Node = node{}

// Wrap adapts an element node. It returns an error when n is not an element.
func Wrap(n *html.Node) (xpath.Node, error) {
	if n == nil || n.Type != html.ElementNode {
		return nil, errors.New("htmldom: not an element node")
	}
	return node{n}, nil
}

// FromDocument returns the root element of a parsed document (for documents
// produced by html.Parse, the <html> element).
func FromDocument(doc *html.Node) (xpath.Node, error) {
	if doc == nil {
		return nil, errors.New("htmldom: nil document")
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return node{c}, nil
		}
	}
	return nil, errors.New("htmldom: document has no root element")
}

// Unwrap returns the underlying *html.Node for nodes produced by this
// package.
func Unwrap(n xpath.Node) (*html.Node, bool) {
	if hn, ok := n.(node); ok {
		return hn.n, true
	}
	return nil, false
}

func (e node) Name() string { return e.n.Data }

func (e node) Parent() xpath.Node {
	for p := e.n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode {
			return node{p}
		}
	}
	return nil
}

func (e node) ChildElements() []xpath.Node {
	var out []xpath.Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, node{c})
		}
	}
	return out
}

func (e node) ChildElementsNamed(name string) []xpath.Node {
	var out []xpath.Node
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && strings.EqualFold(c.Data, name) {
			out = append(out, node{c})
		}
	}
	return out
}

func (e node) DescendantElements() []xpath.Node {
	var out []xpath.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				out = append(out, node{c})
			}
			walk(c)
		}
	}
	walk(e.n)
	return out
}

func (e node) Attribute(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e node) Attributes() []xpath.Attr {
	out := make([]xpath.Attr, 0, len(e.n.Attr))
	for _, a := range e.n.Attr {
		out = append(out, xpath.Attr{Name: a.Key, Value: a.Val})
	}
	return out
}

func (e node) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
			walk(c)
		}
	}
	walk(e.n)
	return b.String()
}
