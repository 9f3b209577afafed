package text

import "sync"

// cache is a small thread-safe LRU map. When it grows past limit the least
// recently used entry is evicted; a limit of 0 means unlimited.
type cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*cacheEntry[V]
	limit   int
	tick    int64
}

type cacheEntry[V any] struct {
	value V
	atime int64
}

func newCache[K comparable, V any](limit int) *cache[K, V] {
	return &cache[K, V]{entries: make(map[K]*cacheEntry[V]), limit: limit}
}

func (c *cache[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.tick++
	e.atime = c.tick
	return e.value, true
}

func (c *cache[K, V]) set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}
	if c.limit <= 0 || len(c.entries) <= c.limit {
		return
	}
	var oldest K
	first := true
	var at int64
	for k, e := range c.entries {
		if first || e.atime < at {
			oldest, at, first = k, e.atime, false
		}
	}
	delete(c.entries, oldest)
}

func (c *cache[K, V]) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *cache[K, V]) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}
