package repository

import (
	"context"
	"sync"
	"time"
)

// sweepEvery is the number of writes between full passes that drop expired
// entries nobody reads again.
const sweepEvery = 256

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCache is a process-local CacheRepository used when no Redis
// address is configured, and in tests.
type MemoryCache struct {
	mu     sync.RWMutex
	data   map[string]memoryEntry
	now    func() time.Time
	writes int
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	entry, ok := m.data[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if entry.expired(m.now()) {
		m.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have refreshed it.
		if current, ok := m.data[key]; ok && current.expired(m.now()) {
			delete(m.data, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return entry.value, true
}

// Set stores value under key. A zero ttl keeps the entry forever.
func (m *MemoryCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.now().Add(ttl)
	}
	m.data[key] = entry

	m.writes++
	if m.writes >= sweepEvery {
		m.writes = 0
		m.sweepLocked()
	}
	return nil
}

func (m *MemoryCache) sweepLocked() {
	now := m.now()
	for key, entry := range m.data {
		if entry.expired(now) {
			delete(m.data, key)
		}
	}
}

// Len reports the number of stored entries, including expired ones not yet
// evicted.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
