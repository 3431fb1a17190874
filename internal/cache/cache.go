package cache

import (
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration time.Time
}

// Cache is a small in-memory TTL cache. Safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	items map[K]item[V]
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{items: make(map[K]item[V])}
}

// Set stores value under key for the given TTL.
func (c *Cache[K, V]) Set(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item[V]{value: value, expiration: time.Now().Add(ttl)}
}

// Get returns the stored value, or false if the key is absent or expired.
// Expired entries are removed on access.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	itm, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if time.Now().After(itm.expiration) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return itm.value, true
}

// Delete removes key from the cache.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}
