package htmlpath

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/htmlpath/htmlpath/xpath"
)

func TestCleanRepairsMarkup(t *testing.T) {
	root, err := CleanString("<h1>Lorem ipsum<h2>dolor sit amet")
	require.NoError(t, err)
	require.Equal(t, "html", root.Name())

	headings, err := xpath.Evaluate(root, "/body/*")
	require.NoError(t, err)
	require.Len(t, headings, 2)
	require.Equal(t, "h1", headings[0].Element().Name())
	require.Equal(t, "h2", headings[1].Element().Name())
	require.Equal(t, "dolor sit amet", headings[1].Element().TextContent())
}

func TestCleanKeepsScriptContent(t *testing.T) {
	root, err := CleanString(`<html><body><script type="text/javascript">if (a < b) { go(); }</script></body></html>`)
	require.NoError(t, err)

	scripts, err := xpath.Evaluate(root, "//script")
	require.NoError(t, err)
	require.Len(t, scripts, 1)
	require.Equal(t, "if (a < b) { go(); }", scripts[0].Element().TextContent())
}

func TestCleanFragment(t *testing.T) {
	root, err := CleanString("<div><span>Foo</span></div>")
	require.NoError(t, err)

	// Fragments are wrapped into a full document.
	spans, err := xpath.Evaluate(root, "/body/div/span")
	require.NoError(t, err)
	require.Len(t, spans, 1)
}

func TestCleanEmptyInput(t *testing.T) {
	root, err := Clean(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, "html", root.Name())
}
