// Package htmlpath evaluates HtmlCleaner-style XPath expressions against
// real-world HTML. It wires three parts together: a cleaner that turns
// arbitrary markup into a well-formed element tree, the xpath evaluator, and
// a serializer that renders results back to strings.
//
// For one-off queries use the package-level functions:
//
//	results, err := htmlpath.Query(r, "//div[@class]//a/@href")
//
// For repeated evaluation create an Engine, which memoizes compiled
// expressions.
package htmlpath

import (
	"io"
	"log/slog"
	"sync"

	"github.com/golang/groupcache/lru"

	"github.com/htmlpath/htmlpath/xpath"
)

// defaultCacheSize bounds the compiled-expression cache of an Engine.
const defaultCacheSize = 1000

// Engine evaluates expressions against cleaned HTML documents. The zero
// value is ready to use. An Engine is safe for concurrent use.
type Engine struct {
	// Logger receives debug-level entries for each evaluation. If nil,
	// slog.Default() is used.
	Logger *slog.Logger

	// CacheSize bounds the compiled-expression cache. Zero means
	// defaultCacheSize; a negative value disables caching.
	CacheSize int

	once  sync.Once
	mu    sync.Mutex
	cache *lru.Cache
}

func (g *Engine) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

func (g *Engine) init() {
	g.once.Do(func() {
		size := g.CacheSize
		if size == 0 {
			size = defaultCacheSize
		}
		if size > 0 {
			g.cache = lru.New(size)
		}
	})
}

// compile returns a compiled expression, reusing a cached one when possible.
// Compiled token arrays are immutable, so sharing them across evaluations is
// safe.
func (g *Engine) compile(expression string) (*xpath.Expression, error) {
	g.init()
	if g.cache == nil {
		return xpath.Compile(expression)
	}
	g.mu.Lock()
	if cached, ok := g.cache.Get(expression); ok {
		g.mu.Unlock()
		return cached.(*xpath.Expression), nil
	}
	g.mu.Unlock()

	x, err := xpath.Compile(expression)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	g.cache.Add(expression, x)
	g.mu.Unlock()
	return x, nil
}

// Evaluate runs an expression against a cleaned root element.
func (g *Engine) Evaluate(root xpath.Node, expression string) ([]xpath.Value, error) {
	x, err := g.compile(expression)
	if err != nil {
		return nil, err
	}
	results, err := x.Evaluate(root)
	if err != nil {
		return nil, err
	}
	g.logger().Debug("evaluated xpath expression",
		slog.String("expression", expression),
		slog.Int("results", len(results)))
	return results, nil
}

// Query cleans the HTML read from r, evaluates the expression against it and
// serializes every result.
func (g *Engine) Query(r io.Reader, expression string) ([]string, error) {
	root, err := Clean(r)
	if err != nil {
		return nil, err
	}
	results, err := g.Evaluate(root, expression)
	if err != nil {
		return nil, err
	}
	return SerializeAll(results)
}

var defaultEngine Engine

// Evaluate runs an expression against a cleaned root element using a shared
// default Engine.
func Evaluate(root xpath.Node, expression string) ([]xpath.Value, error) {
	return defaultEngine.Evaluate(root, expression)
}

// Query cleans, evaluates and serializes using a shared default Engine.
func Query(r io.Reader, expression string) ([]string, error) {
	return defaultEngine.Query(r, expression)
}
