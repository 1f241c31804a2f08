// Package cache provides the in-memory TTL caches shared by in-flight
// requests: one for full trip results, one for vehicle-model validity lists.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Memory is a TTL-bounded in-memory cache. Expired entries are treated as
// absent and dropped lazily on read. Safe for concurrent use by multiple
// in-flight requests.
//
// The clock is injected so tests can advance time deterministically instead
// of waiting out wall-clock expiry.
type Memory[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory creates a cache whose entries live for ttl after each Set.
func NewMemory[V any](ttl time.Duration) *Memory[V] {
	return NewMemoryWithClock[V](ttl, time.Now)
}

// NewMemoryWithClock creates a cache with an explicit clock.
func NewMemoryWithClock[V any](ttl time.Duration, now func() time.Time) *Memory[V] {
	return &Memory[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached value for key, or false when the key is absent
// or its entry has expired.
func (m *Memory[V]) Get(key string) (V, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if m.now().After(e.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// refreshed the entry in between.
		if cur, ok := m.entries[key]; ok && m.now().After(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()

		var zero V
		return zero, false
	}

	return e.value, true
}

// Set stores value under key with a fresh TTL.
func (m *Memory[V]) Set(key string, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry[V]{
		value:     value,
		expiresAt: m.now().Add(m.ttl),
	}
}

// Len returns the number of stored entries, including any not yet swept.
func (m *Memory[V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
