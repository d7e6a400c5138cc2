package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	DefaultTTL               = 5 * time.Minute
	DefaultMaxDynamicEntries = 1024
)

// Options configures a Cache. Zero values fall back to the package defaults.
type Options struct {
	DefaultTTL        time.Duration
	MaxDynamicEntries int
	Now               func() time.Time
}

type entry[T any] struct {
	value    T
	present  bool
	storedAt time.Time
	ttl      time.Duration
}

// Cache keeps one slot per key, each with its own TTL. Named slots are
// registered up front and survive Clear; dynamic slots are created on first
// Set and live in a bounded LRU.
//
// The mutex only guards map integrity. Two callers that both miss the same
// key will both fetch and the last Set wins.
type Cache[T any] struct {
	mu         sync.RWMutex
	named      map[string]*entry[T]
	dynamic    *lru.Cache[string, *entry[T]]
	defaultTTL time.Duration
	now        func() time.Time
}

func New[T any](ttls map[string]time.Duration, opts Options) *Cache[T] {
	if opts.DefaultTTL <= 0 {
		opts.DefaultTTL = DefaultTTL
	}
	if opts.MaxDynamicEntries <= 0 {
		opts.MaxDynamicEntries = DefaultMaxDynamicEntries
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	// lru.New only fails on a non-positive size, which is ruled out above.
	dynamic, _ := lru.New[string, *entry[T]](opts.MaxDynamicEntries)

	c := &Cache[T]{
		named:      make(map[string]*entry[T], len(ttls)),
		dynamic:    dynamic,
		defaultTTL: opts.DefaultTTL,
		now:        opts.Now,
	}
	for key, ttl := range ttls {
		c.named[key] = &entry[T]{ttl: ttl}
	}
	return c
}

func (c *Cache[T]) lookup(key string) (*entry[T], bool) {
	if e, ok := c.named[key]; ok {
		return e, true
	}
	return c.dynamic.Get(key)
}

func (c *Cache[T]) valid(e *entry[T]) bool {
	return e.present && !e.storedAt.IsZero() && c.now().Sub(e.storedAt) < e.ttl
}

// IsValid reports whether key holds a value younger than its TTL.
func (c *Cache[T]) IsValid(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.lookup(key)
	return ok && c.valid(e)
}

// Get returns the stored value only while it is valid.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var zero T
	e, ok := c.lookup(key)
	if !ok || !c.valid(e) {
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the current time. Unknown keys become
// dynamic slots using the default TTL.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lookup(key)
	if !ok {
		e = &entry[T]{ttl: c.defaultTTL}
		c.dynamic.Add(key, e)
	}
	e.value = value
	e.present = true
	e.storedAt = c.now()
}

// TTL returns the configured time-to-live for key, or the default TTL for a
// key that has never been stored.
func (c *Cache[T]) TTL(key string) time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if e, ok := c.lookup(key); ok {
		return e.ttl
	}
	return c.defaultTTL
}

// Clear empties a single slot. Named slots keep their TTL, dynamic slots are
// dropped.
func (c *Cache[T]) Clear(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.named[key]; ok {
		c.reset(e)
		return
	}
	c.dynamic.Remove(key)
}

// ClearAll resets every named slot and removes all dynamic ones.
func (c *Cache[T]) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.named {
		c.reset(e)
	}
	c.dynamic.Purge()
}

func (c *Cache[T]) reset(e *entry[T]) {
	var zero T
	e.value = zero
	e.present = false
	e.storedAt = time.Time{}
}

// Snapshot reports validity for every named key.
func (c *Cache[T]) Snapshot() map[string]bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := make(map[string]bool, len(c.named))
	for key, e := range c.named {
		snapshot[key] = c.valid(e)
	}
	return snapshot
}

// DynamicLen returns the number of lazily created slots currently held.
func (c *Cache[T]) DynamicLen() int {
	return c.dynamic.Len()
}
