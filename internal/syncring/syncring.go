// Package syncring wraps a hashring.HashRing with a reader/writer lock so
// one ring can be shared between a mutating owner and concurrent readers.
// Rings are mutated rarely and read heavily, which is why the core carries
// no lock of its own and this wrapper exists as a separate layer.
package syncring

import (
	"fmt"
	"sync"

	"hashring/internal/hashring"
)

// Ring is a concurrency-safe consistent hash ring. Semantics are identical
// to hashring.HashRing.
type Ring[T, U fmt.Stringer] struct {
	mu   sync.RWMutex
	ring *hashring.HashRing[T, U]
}

// New creates an empty ring.
func New[T, U fmt.Stringer]() *Ring[T, U] {
	return &Ring[T, U]{ring: hashring.New[T, U]()}
}

// Len returns the number of entries on the ring.
func (r *Ring[T, U]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ring.Len()
}

// IsEmpty reports whether the ring has no entries.
func (r *Ring[T, U]) IsEmpty() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ring.IsEmpty()
}

// Add places node on the ring.
func (r *Ring[T, U]) Add(node T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ring.Add(node)
}

// Remove detaches the entry matching node's identity hash and returns it.
func (r *Ring[T, U]) Remove(node T) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ring.Remove(node)
}

// Get returns the node responsible for key.
func (r *Ring[T, U]) Get(key U) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ring.Get(key)
}
