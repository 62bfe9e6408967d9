package utils

import (
	"crypto/sha256"
	"html/template"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
)

const renderCacheSize = 500

// RenderCache memoizes rendered Markdown keyed by a hash of the source. Entries never go
// stale because an edited blog text hashes to a different key.
type RenderCache struct {
	lruCache *lru.Cache[[sha256.Size]byte, template.HTML]
	render   func(string) template.HTML
}

func NewRenderCache(size int, render func(string) template.HTML) *RenderCache {
	l, err := lru.New[[sha256.Size]byte, template.HTML](size)
	if err != nil {
		// Only a non-positive size fails.
		slog.Error("render cache disabled", "size", size, "error", err)
		return &RenderCache{render: render}
	}
	return &RenderCache{lruCache: l, render: render}
}

func (c *RenderCache) Render(source string) template.HTML {
	if c.lruCache == nil {
		return c.render(source)
	}

	key := sha256.Sum256([]byte(source))
	if html, ok := c.lruCache.Get(key); ok {
		return html
	}
	html := c.render(source)
	c.lruCache.Add(key, html)
	return html
}

func (c *RenderCache) Len() int {
	if c.lruCache == nil {
		return 0
	}
	return c.lruCache.Len()
}

var markdownCache = NewRenderCache(renderCacheSize, renderMarkdown)

// CachedMarkdown is RenderMarkdown behind the shared render cache. Pages list many blogs and
// render the same unchanged texts on every request.
func CachedMarkdown(source string) template.HTML {
	return markdownCache.Render(source)
}
