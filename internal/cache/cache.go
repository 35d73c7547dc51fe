// Package cache provides time-windowed memoization of generation results.
// Keys embed a coarse time bucket, so identical requests inside the same
// window share a result and the cache naturally rolls over each window.
// Eviction is deliberately lax: expired entries are dropped lazily on
// access, and a full sweep runs only when the entry count exceeds the cap.
// This is not an LRU.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultTTL matches the five-minute window the pipeline has always
	// used.
	DefaultTTL = 5 * time.Minute

	// DefaultMaxEntries triggers the opportunistic sweep in Set.
	DefaultMaxEntries = 50

	// keyWindow is the coarse bucket keys are floored to.
	keyWindow = time.Minute
)

type entry struct {
	value   any
	savedAt time.Time
}

// Cache is a process-wide, mutex-guarded result store. It is shared by all
// callers regardless of identity: two users requesting the same content
// shape inside one window get the same cached output.
type Cache struct {
	ttl        time.Duration
	maxEntries int
	now        func() time.Time

	mu      sync.Mutex
	entries map[string]entry
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock replaces the wall clock, letting tests control window
// rollover and expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates a Cache with the given TTL and size cap. Non-positive
// values fall back to the defaults.
func New(ttl time.Duration, maxEntries int, opts ...Option) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	c := &Cache{
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		entries:    make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key derives a deterministic cache key from the request shape plus the
// current time bucket. Extra parts (difficulty, strategy) keep distinct
// request shapes from colliding.
func (c *Cache) Key(kind string, cardinality, count int, extra ...string) string {
	bucket := c.now().UnixMilli()
	bucket -= bucket % keyWindow.Milliseconds()

	parts := []string{kind, fmt.Sprint(cardinality), fmt.Sprint(count)}
	parts = append(parts, extra...)
	parts = append(parts, fmt.Sprint(bucket))
	return strings.Join(parts, "_")
}

// Get returns the cached value for key, treating entries at or past the
// TTL as absent and evicting them on the spot.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.savedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores a value. When the entry count exceeds the cap it sweeps out
// every expired entry; live entries are never evicted, so the cache can
// sit above the cap between windows.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, savedAt: c.now()}

	if len(c.entries) > c.maxEntries {
		now := c.now()
		for k, e := range c.entries {
			if now.Sub(e.savedAt) >= c.ttl {
				delete(c.entries, k)
			}
		}
	}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the current entry count, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
