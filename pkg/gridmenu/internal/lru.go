package internal

const defaultMaxCacheSize = 8

// Cache is a small least-recently-used cache. It is not safe for concurrent
// use; owners guard it themselves.
type Cache[K comparable, V any] struct {
	values  map[K]V
	order   []K // tracks insertion order for LRU eviction
	maxSize int
	onEvict func(K, V)
}

func NewCache[K comparable, V any]() *Cache[K, V] {
	return NewCacheWithSize[K, V](defaultMaxCacheSize)
}

func NewCacheWithSize[K comparable, V any](maxSize int) *Cache[K, V] {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &Cache[K, V]{
		values:  make(map[K]V),
		order:   make([]K, 0, maxSize),
		maxSize: maxSize,
	}
}

// OnEvict registers a callback run for every value dropped from the cache.
func (c *Cache[K, V]) OnEvict(fn func(K, V)) {
	c.onEvict = fn
}

func (c *Cache[K, V]) Get(key K) (V, bool) {
	if value, exists := c.values[key]; exists {
		// Move to end (most recently used)
		c.moveToEnd(key)
		return value, true
	}
	var zero V
	return zero, false
}

func (c *Cache[K, V]) Set(key K, value V) {
	// If key already exists, just update and move to end
	if _, exists := c.values[key]; exists {
		c.values[key] = value
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}

	c.values[key] = value
	c.order = append(c.order, key)
}

func (c *Cache[K, V]) Len() int {
	return len(c.order)
}

func (c *Cache[K, V]) moveToEnd(key K) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}

func (c *Cache[K, V]) evictOldest() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if value, exists := c.values[oldest]; exists {
		delete(c.values, oldest)
		if c.onEvict != nil {
			c.onEvict(oldest, value)
		}
	}
}

// Purge drops every entry.
func (c *Cache[K, V]) Purge() {
	for key, value := range c.values {
		if c.onEvict != nil {
			c.onEvict(key, value)
		}
	}
	c.values = make(map[K]V)
	c.order = c.order[:0]
}
