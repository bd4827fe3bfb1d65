package htmlpath

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"

	"github.com/htmlpath/htmlpath/htmldom"
	"github.com/htmlpath/htmlpath/xpath"
)

// Clean parses arbitrary, possibly malformed HTML into a single well-formed
// root element ready for evaluation. The input is decoded according to its
// BOM or declared charset before parsing. Unbalanced markup is repaired the
// way browsers repair it, and script/style content is carried through as raw
// text.
func Clean(r io.Reader) (xpath.Node, error) {
	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	doc, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	root, err := htmldom.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// CleanString is Clean over an in-memory document.
func CleanString(s string) (xpath.Node, error) {
	return Clean(strings.NewReader(s))
}
