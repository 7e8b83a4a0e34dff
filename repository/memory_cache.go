package repository

import (
	"sync"
	"time"
)

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryCache is the process-local comparison cache used when no Redis
// address is configured. Entries expire after the ttl given to
// NewMemoryCache and are swept in the background; a zero ttl keeps them for
// the life of the cache.
type MemoryCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	entries   map[string]cacheEntry
	now       func() time.Time
	stopSweep chan struct{}
	stopOnce  sync.Once
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	m := newMemoryCache(ttl, time.Now)
	if ttl > 0 {
		go m.sweepLoop()
	}
	return m
}

func newMemoryCache(ttl time.Duration, now func() time.Time) *MemoryCache {
	return &MemoryCache{
		ttl:       ttl,
		entries:   make(map[string]cacheEntry),
		now:       now,
		stopSweep: make(chan struct{}),
	}
}

func (m *MemoryCache) sweepLoop() {
	ticker := time.NewTicker(m.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.sweep()
		case <-m.stopSweep:
			return
		}
	}
}

// sweep drops every expired entry.
func (m *MemoryCache) sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, e := range m.entries {
		if m.expired(e, now) {
			delete(m.entries, key)
		}
	}
}

func (m *MemoryCache) expired(e cacheEntry, now time.Time) bool {
	return m.ttl > 0 && !now.Before(e.expiresAt)
}

// Get reports a miss for absent and expired keys.
func (m *MemoryCache) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[key]
	if !ok || m.expired(e, m.now()) {
		return "", false
	}
	return e.value, true
}

func (m *MemoryCache) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = cacheEntry{value: value, expiresAt: m.now().Add(m.ttl)}
	return nil
}

// Len reports the number of stored entries, including expired ones not yet
// swept.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Close stops the background sweep. It is safe to call more than once.
func (m *MemoryCache) Close() error {
	m.stopOnce.Do(func() { close(m.stopSweep) })
	return nil
}
