// Package cache provides a generic TTL cache
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a thread-safe map with per-entry expiry and an optional size cap.
// Expired entries are swept in the background until Close is called.
type Cache[K comparable, V any] struct {
	items    map[K]entry[V]
	mu       sync.RWMutex
	ttl      time.Duration
	maxItems int
	now      func() time.Time
	stop     chan struct{}
	once     sync.Once
}

// New creates a cache with the given TTL. maxItems caps the number of live
// entries; zero means unbounded.
func New[K comparable, V any](ttl time.Duration, maxItems int) *Cache[K, V] {
	c := &Cache[K, V]{
		items:    make(map[K]entry[V]),
		ttl:      ttl,
		maxItems: maxItems,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	if ttl > 0 {
		go c.sweep()
	}
	return c
}

// Get returns a value if present and not expired
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[key]
	if !ok || !c.now().Before(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value for the cache's TTL. When the cache is full the entry
// closest to expiry is evicted first.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && c.maxItems > 0 && len(c.items) >= c.maxItems {
		c.evictOldest()
	}

	c.items[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
}

// GetOrLoad returns the cached value for key, calling load and caching its
// result on a miss. Concurrent misses may each call load.
func (c *Cache[K, V]) GetOrLoad(key K, load func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	c.Set(key, v)
	return v, nil
}

// Delete removes a key
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Len returns the number of entries, including expired ones not yet swept
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close stops the background sweeper. It is safe to call more than once.
func (c *Cache[K, V]) Close() {
	c.once.Do(func() { close(c.stop) })
}

func (c *Cache[K, V]) evictOldest() {
	var (
		oldest    K
		oldestExp time.Time
		found     bool
	)
	for k, e := range c.items {
		if !found || e.expiresAt.Before(oldestExp) {
			oldest, oldestExp, found = k, e.expiresAt, true
		}
	}
	if found {
		delete(c.items, oldest)
	}
}

func (c *Cache[K, V]) sweep() {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache[K, V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.items {
		if !now.Before(e.expiresAt) {
			delete(c.items, k)
		}
	}
}
