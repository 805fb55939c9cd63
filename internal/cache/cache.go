package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// DefaultTTL is how long a search result stays fresh.
const DefaultTTL = time.Minute

// Cache wraps go-cache for the lifetime of one session. It is never persisted.
type Cache struct {
	inner *gocache.Cache
}

// New creates an empty cache with DefaultTTL.
func New() *Cache {
	return NewWithTTL(DefaultTTL)
}

// NewWithTTL creates an empty cache whose entries expire after ttl.
func NewWithTTL(ttl time.Duration) *Cache {
	return &Cache{inner: gocache.New(ttl, 2*ttl)}
}

// Get retrieves a value by key.
func (c *Cache) Get(key string) (any, bool) {
	return c.inner.Get(key)
}

// Set stores a value with default expiration.
func (c *Cache) Set(key string, val any) {
	c.inner.Set(key, val, gocache.DefaultExpiration)
}

// Len returns the number of items, including expired ones not yet evicted.
func (c *Cache) Len() int {
	return c.inner.ItemCount()
}

// Flush clears all cached items.
func (c *Cache) Flush() {
	c.inner.Flush()
}
