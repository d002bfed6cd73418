// pkg/memcache/catalog_cache.go
package mem

import (
	"sync"
	"time"
)

// CatalogCache is a small TTL cache for read-only catalog snapshots.
// Catalog rows change rarely, so services read through this instead of
// hitting the database on every request.
type CatalogCache interface {
	Set(key string, value any, ttl time.Duration)

	// Get returns the cached value for key if not expired.
	Get(key string) (any, bool)

	Invalidate(key string)
}

type entry struct {
	value     any
	expiresAt time.Time
}

type Snapshots struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSnapshots() *Snapshots {
	return &Snapshots{
		data: make(map[string]entry),
	}
}

func (s *Snapshots) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Snapshots) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key) // cleanup expired
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (s *Snapshots) Invalidate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
