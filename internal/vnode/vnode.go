// Package vnode builds the virtual-node identities that callers layer on
// top of the hash ring: several ring entries per physical member, which
// smooths key distribution and shrinks the slice of keys any one
// membership change relocates. The ring itself never knows about virtual
// nodes; it only sees distinct identities.
package vnode

import "strconv"

// VNode is one virtual identity of a physical member. Its ring identity is
// "<host>:<port>|<id>"; that rendering must not change while the vnode is
// on a ring.
type VNode struct {
	Addr string // host:port of the backing member
	ID   int    // ordinal distinguishing this identity from its siblings
}

// String renders the canonical ring identity.
func (v VNode) String() string {
	return v.Addr + "|" + strconv.Itoa(v.ID)
}

// Spread synthesizes count identities for one member address, with
// ordinals 0..count-1. The same address and count always produce the same
// identities, so peers that agree on membership agree on placement.
func Spread(addr string, count int) []VNode {
	vnodes := make([]VNode, count)
	for i := range vnodes {
		vnodes[i] = VNode{Addr: addr, ID: i}
	}
	return vnodes
}
