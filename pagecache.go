package weddingnanny

import (
	"sync"
	"time"
)

// PageCache holds rendered public pages keyed by city id. The App invalidates
// it after every store mutation; the TTL bounds staleness for changes made by
// another process sharing the same slot.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]cachedPage
	gen   uint64 // bumped by Invalidate
	ttl   time.Duration
	now   func() time.Time
}

type cachedPage struct {
	body    []byte
	fetched time.Time
}

// NewPageCache creates an empty PageCache.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{pages: make(map[string]cachedPage), ttl: ttl, now: time.Now}
}

func (c *PageCache) valid(p cachedPage) bool {
	return p.body != nil && c.now().Sub(p.fetched) < c.ttl
}

// Invalidate drops every cached page.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.pages = make(map[string]cachedPage)
	c.gen++
	c.mu.Unlock()
}

// Len returns the number of cached pages, including expired ones.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// Get returns the cached page for id, rendering and storing it on a miss.
// Errors from render are returned and nothing is cached. A page rendered
// while an Invalidate happened is returned but not stored.
func (c *PageCache) Get(id string, render func() ([]byte, error)) ([]byte, error) {
	c.mu.RLock()
	p, ok := c.pages[id]
	gen := c.gen
	c.mu.RUnlock()
	if ok && c.valid(p) {
		return p.body, nil
	}

	body, err := render()
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if c.gen == gen {
		c.pages[id] = cachedPage{body: body, fetched: c.now()}
	}
	c.mu.Unlock()
	return body, nil
}
