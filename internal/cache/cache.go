package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is one screen-owned in-memory cache with an explicit reset
// lifecycle. Each instance has a single owner; logout invalidates them
// all.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// New creates a cache. A zero ttl means entries never expire on their
// own and only invalidation removes them.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		c.Invalidate(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	e := entry{value: value}
	if c.ttl > 0 {
		e.expiresAt = time.Now().Add(c.ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Caches groups the three independently-maintained screen caches whose
// reset is tied to logout.
type Caches struct {
	Notifications *Cache
	Profile       *Cache
	PostDetail    *Cache
}

func NewCaches() *Caches {
	return &Caches{
		Notifications: New(5 * time.Minute),
		Profile:       New(10 * time.Minute),
		PostDetail:    New(10 * time.Minute),
	}
}

// InvalidateAll resets every screen cache at once.
func (c *Caches) InvalidateAll() {
	c.Notifications.InvalidateAll()
	c.Profile.InvalidateAll()
	c.PostDetail.InvalidateAll()
}
