package hashring

import (
	"fmt"
	"sort"
)

// entry is a single position on the ring: the identity hash and the node
// stored under it.
type entry[T fmt.Stringer] struct {
	hash uint64
	node T
}

// HashRing maps keys of type U to nodes of type T. Both types only need to
// render a canonical identity via String. Entries are kept sorted by hash
// so lookups are a binary search; insert and remove shift the slice, which
// is fine for the tens-to-thousands of entries rings are built from.
type HashRing[T, U fmt.Stringer] struct {
	ring []entry[T]
}

// New creates an empty ring.
func New[T, U fmt.Stringer]() *HashRing[T, U] {
	return &HashRing[T, U]{}
}

// Len returns the number of entries on the ring.
func (r *HashRing[T, U]) Len() int {
	return len(r.ring)
}

// IsEmpty reports whether the ring has no entries.
func (r *HashRing[T, U]) IsEmpty() bool {
	return len(r.ring) == 0
}

// Add places node on the ring at the hash of its identity. The ring takes
// ownership of the value. A node whose identity collides with an existing
// entry is added alongside it; both coexist and both serve lookups, which
// is what lets callers synthesize several identities per physical backend.
func (r *HashRing[T, U]) Add(node T) {
	h := hashKey(node.String())
	idx := sort.Search(len(r.ring), func(i int) bool {
		return r.ring[i].hash >= h
	})
	r.ring = append(r.ring[:idx], append([]entry[T]{{hash: h, node: node}}, r.ring[idx:]...)...)
}

// Remove detaches the entry whose hash equals the hash of node's identity
// and returns the stored value. The second return is false when no entry
// matches. Matching is by identity hash only, never by structural equality;
// when several entries share the hash exactly one is removed.
func (r *HashRing[T, U]) Remove(node T) (T, bool) {
	h := hashKey(node.String())
	idx := sort.Search(len(r.ring), func(i int) bool {
		return r.ring[i].hash >= h
	})
	if idx == len(r.ring) || r.ring[idx].hash != h {
		var zero T
		return zero, false
	}
	removed := r.ring[idx].node
	r.ring = append(r.ring[:idx], r.ring[idx+1:]...)
	return removed, true
}

// Get returns the node responsible for key: the entry with the smallest
// hash greater than or equal to the key's hash, wrapping around to the
// first entry when the key hashes past the last one. The second return is
// false only when the ring is empty. The returned value is a copy of the
// stored node.
func (r *HashRing[T, U]) Get(key U) (T, bool) {
	if len(r.ring) == 0 {
		var zero T
		return zero, false
	}

	h := hashKey(key.String())
	idx := sort.Search(len(r.ring), func(i int) bool {
		return r.ring[i].hash >= h
	})
	if idx == len(r.ring) {
		idx = 0
	}
	return r.ring[idx].node, true
}

// Str adapts a plain string so it can be used as a ring node or key.
type Str string

// String returns the string itself as the identity.
func (s Str) String() string {
	return string(s)
}
