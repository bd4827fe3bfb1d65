package htmlpath

import (
	"bytes"
	"fmt"

	"github.com/beevik/etree"
	"golang.org/x/net/html"

	"github.com/htmlpath/htmlpath/etreedom"
	"github.com/htmlpath/htmlpath/htmldom"
	"github.com/htmlpath/htmlpath/xpath"
)

// Serialize renders an evaluation result as a string. Elements become their
// markup; strings, numbers and booleans use their natural representation
// (exact integers without a decimal point, booleans as "true"/"false").
func Serialize(v xpath.Value) (string, error) {
	if v.Kind() != xpath.KindElement {
		return v.String(), nil
	}
	n := v.Element()
	if hn, ok := htmldom.Unwrap(n); ok {
		var b bytes.Buffer
		if err := html.Render(&b, hn); err != nil {
			return "", fmt.Errorf("render element: %w", err)
		}
		return b.String(), nil
	}
	if el, ok := etreedom.Unwrap(n); ok {
		doc := etree.NewDocument()
		doc.SetRoot(el.Copy())
		s, err := doc.WriteToString()
		if err != nil {
			return "", fmt.Errorf("render element: %w", err)
		}
		return s, nil
	}
	return "", fmt.Errorf("cannot serialize element of type %T", n)
}

// SerializeAll maps Serialize over a result list.
func SerializeAll(vals []xpath.Value) ([]string, error) {
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		s, err := Serialize(v)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
