// ============================================================================
// rechenwerk - Numeric formula library
// ============================================================================
//
// Package:     cache
// Description: Bounded in-memory cache for formula results
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
)

// Entry is a cached evaluation: the result, or the failure it produced
type Entry struct {
	Value interface{}
	Err   error
}

// Cache is a thread-safe cache holding at most MaxItems entries. The least
// recently used entry is evicted first.
type Cache struct {
	mu       sync.Mutex
	items    map[string]*list.Element
	order    *list.List
	maxItems int

	// Metrics
	hits   int64
	misses int64
}

type item struct {
	key   string
	entry Entry
}

// Config holds cache configuration
type Config struct {
	MaxItems int
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 1024,
	}
}

// New creates a new cache instance
func New(cfg Config) *Cache {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	return &Cache{
		items:    make(map[string]*list.Element),
		order:    list.New(),
		maxItems: cfg.MaxItems,
	}
}

// Key derives a cache key from a formula id and its raw input. Map keys are
// encoded in sorted order, so equal records give equal keys. ok is false for
// inputs that cannot be encoded, such as NaN values.
func Key(formula string, input interface{}) (key string, ok bool) {
	content, err := json.Marshal([]interface{}{formula, input})
	if err != nil {
		return "", false
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]), true
}

// Get retrieves an entry from the cache
func (c *Cache) Get(key string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.items[key]
	if !exists {
		c.misses++
		return Entry{}, false
	}
	c.hits++
	c.order.MoveToFront(elem)
	return elem.Value.(*item).entry, true
}

// Set stores an entry, evicting the least recently used one at capacity
func (c *Cache) Set(key string, entry Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		elem.Value.(*item).entry = entry
		c.order.MoveToFront(elem)
		return
	}
	if c.order.Len() >= c.maxItems {
		c.evictOldest()
	}
	c.items[key] = c.order.PushFront(&item{key: key, entry: entry})
}

// GetOrSet returns the cached entry for key or computes and stores it. hit
// reports whether the entry came from the cache. Entries for which store
// returns false are returned but not kept.
func (c *Cache) GetOrSet(key string, compute func() Entry, store func(Entry) bool) (entry Entry, hit bool) {
	if entry, ok := c.Get(key); ok {
		return entry, true
	}
	entry = compute()
	if store == nil || store(entry) {
		c.Set(key, entry)
	}
	return entry, false
}

// Delete removes an entry from the cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, exists := c.items[key]; exists {
		c.order.Remove(elem)
		delete(c.items, key)
	}
}

// Clear removes all entries from the cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// Size returns the number of entries in the cache
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Stats returns cache statistics
func (c *Cache) Stats() (hits, misses int64, hitRate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hits = c.hits
	misses = c.misses
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// evictOldest removes the least recently used entry (must be called with lock held)
func (c *Cache) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.items, oldest.Value.(*item).key)
}
