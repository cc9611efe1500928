// Package hashring implements a minimal consistent hash ring that maps
// request keys to a small, changing set of nodes so that membership changes
// relocate only about 1/N of keys. Nodes and keys are identified solely by
// the byte string their String method returns; the ring never compares
// values structurally, and the rendering must stay stable while a node is
// on the ring. Removal matches by identity hash, so two nodes with equal
// identities are indistinguishable.
//
// The ring is a single-owner structure with no internal locking. Callers
// that share one across goroutines should use the syncring wrapper or
// confine it behind their own lock.
package hashring
