// Package cache provides a small owner-keyed read-through cache with a TTL.
//
// The ledger core stays stateless; read paths that want to avoid refetching
// on every render layer this on top, with explicit invalidation from the
// mutation paths. Entries are scoped by owner id so one user's churn never
// evicts another's reads.
package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type item[V any] struct {
	value   V
	expires time.Time
}

// TTLCache caches one value per owner for a fixed duration.
type TTLCache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[uuid.UUID]item[V]
}

// New creates a TTLCache with the given time-to-live.
func New[V any](ttl time.Duration) *TTLCache[V] {
	return &TTLCache[V]{
		ttl:     ttl,
		entries: make(map[uuid.UUID]item[V]),
	}
}

// Get returns the cached value for the owner if present and fresh.
func (c *TTLCache[V]) Get(ownerID uuid.UUID) (V, bool) {
	c.mu.RLock()
	entry, ok := c.entries[ownerID]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expires) {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Set stores the value for the owner.
func (c *TTLCache[V]) Set(ownerID uuid.UUID, value V) {
	c.mu.Lock()
	c.entries[ownerID] = item[V]{value: value, expires: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// Invalidate drops the owner's entry. Mutation paths call this so the next
// read goes back to the store.
func (c *TTLCache[V]) Invalidate(ownerID uuid.UUID) {
	c.mu.Lock()
	delete(c.entries, ownerID)
	c.mu.Unlock()
}
