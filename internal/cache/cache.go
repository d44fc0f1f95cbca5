// Package cache provides a small expiring key/value cache behind an
// injected store interface. It exists so response caching is an explicit,
// testable component rather than ambient process state.
package cache

import (
	"sync"
	"time"
)

// Entry is one cached value with its expiry instant.
type Entry struct {
	Value     []byte
	ExpiresAt time.Time
}

// Store abstracts the backing storage of cache entries.
type Store interface {
	Get(key string) (Entry, bool)
	Set(key string, entry Entry)
	Delete(key string)
}

// MemoryStore is the in-memory Store implementation. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry, ok
}

func (s *MemoryStore) Set(key string, entry Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry
}

func (s *MemoryStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Cache couples a Store with a time-to-live.
type Cache struct {
	store Store
	ttl   time.Duration
	now   func() time.Time
}

// New creates a cache over the given store. Entries expire ttl after Set.
func New(store Store, ttl time.Duration) *Cache {
	return &Cache{store: store, ttl: ttl, now: time.Now}
}

// Get returns the cached value for key, or false when absent or expired.
// Expired entries are evicted on access.
func (c *Cache) Get(key string) ([]byte, bool) {
	entry, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	if c.now().After(entry.ExpiresAt) {
		c.store.Delete(key)
		return nil, false
	}
	return entry.Value, true
}

// Set stores value under key with the configured expiry.
func (c *Cache) Set(key string, value []byte) {
	c.store.Set(key, Entry{
		Value:     value,
		ExpiresAt: c.now().Add(c.ttl),
	})
}
