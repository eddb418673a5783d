// cache.go: thread-safe cache of configured options values by name
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package options

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/agilira/go-timecache"
)

// CreateFunc produces the options value for a name on first access.
type CreateFunc[T any] func(name string) (*T, error)

// MonitorCache caches one configured options value per name on behalf of a
// monitor. All operations are total: absent names are not errors.
type MonitorCache[T any] interface {
	// GetOrAdd returns the cached value for name, invoking create and
	// caching the result on first access. When create fails nothing is
	// cached and the error is returned. create must be non-nil; there is
	// no lookup-only variant.
	GetOrAdd(name string, create CreateFunc[T]) (*T, error)

	// TryAdd inserts the value iff no value is cached for name.
	TryAdd(name string, value *T) bool

	// TryRemove removes the value for name and reports whether anything
	// was removed.
	TryRemove(name string) bool

	// Clear drops every cached entry.
	Clear()
}

// Cache is the standard MonitorCache implementation: a map guarded by a
// single mutex. The create function runs with the lock held, so concurrent
// first access for the same name observes exactly one construction.
//
// A create function must not call back into the same cache.
type Cache[T any] struct {
	mu      sync.Mutex
	entries map[string]*T

	// Lightweight counters for operational visibility; updated with
	// atomics so Stats never contends with the map lock.
	hits          atomic.Int64
	misses        atomic.Int64
	lastWriteNano atomic.Int64
}

// NewCache creates an empty options cache.
func NewCache[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]*T)}
}

// GetOrAdd implements MonitorCache.
func (c *Cache[T]) GetOrAdd(name string, create CreateFunc[T]) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if value, ok := c.entries[name]; ok {
		c.hits.Add(1)
		return value, nil
	}

	value, err := create(name)
	if err != nil {
		return nil, err
	}

	c.entries[name] = value
	c.misses.Add(1)
	c.lastWriteNano.Store(timecache.CachedTimeNano())
	return value, nil
}

// TryAdd implements MonitorCache.
func (c *Cache[T]) TryAdd(name string, value *T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[name]; ok {
		return false
	}

	c.entries[name] = value
	c.lastWriteNano.Store(timecache.CachedTimeNano())
	return true
}

// TryRemove implements MonitorCache.
func (c *Cache[T]) TryRemove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[name]; !ok {
		return false
	}

	delete(c.entries, name)
	c.lastWriteNano.Store(timecache.CachedTimeNano())
	return true
}

// Clear implements MonitorCache.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.entries)
	c.lastWriteNano.Store(timecache.CachedTimeNano())
}

// CacheStats is a point-in-time view of cache activity.
type CacheStats struct {
	// Size is the number of cached entries.
	Size int `json:"size"`

	// Hits counts GetOrAdd calls served from the cache.
	Hits int64 `json:"hits"`

	// Misses counts GetOrAdd calls that constructed a new value.
	Misses int64 `json:"misses"`

	// LastWrite is the time of the most recent mutation, zero if none.
	LastWrite time.Time `json:"last_write"`
}

// Stats returns current cache statistics.
func (c *Cache[T]) Stats() CacheStats {
	c.mu.Lock()
	size := len(c.entries)
	c.mu.Unlock()

	stats := CacheStats{
		Size:   size,
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
	}
	if nano := c.lastWriteNano.Load(); nano != 0 {
		stats.LastWrite = time.Unix(0, nano)
	}
	return stats
}
