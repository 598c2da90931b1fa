package folio

import (
	"bytes"
	"context"
	"sync"

	"github.com/a-h/templ"

	"github.com/eringen/folio/theme"
	"github.com/eringen/folio/views"
)

// PageCache memoizes the rendered page body per theme. The content tables
// are immutable, so an entry never goes stale.
type PageCache struct {
	mu      sync.RWMutex
	entries map[theme.Mode][]byte
	render  func(theme.Mode) templ.Component
	renders int
}

// NewPageCache returns a cache that renders bodies with fn.
func NewPageCache(fn func(theme.Mode) templ.Component) *PageCache {
	return &PageCache{
		entries: make(map[theme.Mode][]byte),
		render:  fn,
	}
}

// NewBodyCache returns a cache over the shipped page content.
func NewBodyCache() *PageCache {
	return NewPageCache(func(m theme.Mode) templ.Component {
		return views.Component(views.Body(views.NewPage(m)))
	})
}

// Body returns the rendered body for mode. It tries a read lock first and
// only takes the write lock to fill a missing entry.
func (c *PageCache) Body(ctx context.Context, mode theme.Mode) ([]byte, error) {
	c.mu.RLock()
	b, ok := c.entries[mode]
	c.mu.RUnlock()
	if ok {
		return b, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if b, ok := c.entries[mode]; ok {
		return b, nil
	}
	var buf bytes.Buffer
	if err := c.render(mode).Render(ctx, &buf); err != nil {
		return nil, err
	}
	c.renders++
	c.entries[mode] = buf.Bytes()
	return c.entries[mode], nil
}

// Invalidate drops every entry so the next read renders again.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[theme.Mode][]byte)
	c.mu.Unlock()
}

// Renders reports how many times the cache has rendered a body.
func (c *PageCache) Renders() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.renders
}
