package hashring

import (
	"fmt"
	"net"
	"strconv"
	"testing"
)

// testVNode is a virtual node as a caller would synthesize one: several
// identities per backend address, rendered as "<host>:<port>|<id>".
type testVNode struct {
	id   int
	addr string
}

func newTestVNode(ip string, port, id int) testVNode {
	return testVNode{id: id, addr: net.JoinHostPort(ip, strconv.Itoa(port))}
}

func (v testVNode) String() string {
	return fmt.Sprintf("%s|%d", v.addr, v.id)
}

func TestHashRing_AddAndRemoveNodes(t *testing.T) {
	ring := New[testVNode, Str]()

	if ring.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ring.Len())
	}
	if !ring.IsEmpty() {
		t.Error("new ring should be empty")
	}

	vnode1 := newTestVNode("127.0.0.1", 1024, 1)
	vnode2 := newTestVNode("127.0.0.1", 1024, 2)
	vnode3 := newTestVNode("127.0.0.2", 1024, 1)

	ring.Add(vnode1)
	ring.Add(vnode2)
	ring.Add(vnode3)
	if ring.Len() != 3 {
		t.Errorf("Len() = %d, want 3", ring.Len())
	}
	if ring.IsEmpty() {
		t.Error("ring with 3 nodes should not be empty")
	}

	removed, ok := ring.Remove(vnode2)
	if !ok {
		t.Fatal("Remove(vnode2) should succeed")
	}
	if removed != vnode2 {
		t.Errorf("Remove(vnode2) = %v, want %v", removed, vnode2)
	}
	if ring.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ring.Len())
	}

	vnode4 := newTestVNode("127.0.0.2", 1024, 2)
	vnode5 := newTestVNode("127.0.0.2", 1024, 3)
	vnode6 := newTestVNode("127.0.0.3", 1024, 1)

	ring.Add(vnode4)
	ring.Add(vnode5)
	ring.Add(vnode6)

	for _, vn := range []testVNode{vnode1, vnode3, vnode6} {
		if _, ok := ring.Remove(vn); !ok {
			t.Errorf("Remove(%v) should succeed", vn)
		}
	}
	if ring.Len() != 2 {
		t.Errorf("Len() = %d, want 2", ring.Len())
	}
}

func TestHashRing_GetNodes(t *testing.T) {
	ring := New[testVNode, Str]()

	if _, ok := ring.Get("foo"); ok {
		t.Error("Get on empty ring should report absent")
	}

	vnode1 := newTestVNode("127.0.0.1", 1024, 1)
	vnode2 := newTestVNode("127.0.0.1", 1024, 2)
	vnode3 := newTestVNode("127.0.0.2", 1024, 1)
	vnode4 := newTestVNode("127.0.0.2", 1024, 2)
	vnode5 := newTestVNode("127.0.0.2", 1024, 3)
	vnode6 := newTestVNode("127.0.0.3", 1024, 1)

	ring.Add(vnode1)
	ring.Add(vnode2)
	ring.Add(vnode3)
	ring.Add(vnode4)
	ring.Add(vnode5)
	ring.Add(vnode6)

	tests := []struct {
		key  Str
		want testVNode
	}{
		{"foo", vnode1},
		{"bar", vnode2},
		{"baz", vnode1},
		{"abc", vnode6},
		{"def", vnode3},
		{"ghi", vnode3},
		{"cat", vnode5},
		{"dog", vnode6},
		{"bird", vnode2},
	}

	for _, tt := range tests {
		got, ok := ring.Get(tt.key)
		if !ok {
			t.Errorf("Get(%q) reported absent on a populated ring", tt.key)
			continue
		}
		if got != tt.want {
			t.Errorf("Get(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestHashRing_RemoveThenGet(t *testing.T) {
	ring := New[testVNode, Str]()

	vnodes := []testVNode{
		newTestVNode("127.0.0.1", 1024, 1),
		newTestVNode("127.0.0.1", 1024, 2),
		newTestVNode("127.0.0.2", 1024, 1),
		newTestVNode("127.0.0.2", 1024, 2),
		newTestVNode("127.0.0.2", 1024, 3),
		newTestVNode("127.0.0.3", 1024, 1),
	}
	for _, vn := range vnodes {
		ring.Add(vn)
	}

	vnode2 := vnodes[1]
	removed, ok := ring.Remove(vnode2)
	if !ok || removed != vnode2 {
		t.Fatalf("Remove(vnode2) = (%v, %v), want (%v, true)", removed, ok, vnode2)
	}

	// "bar" mapped to vnode2 before the removal; it must move elsewhere now.
	got, ok := ring.Get("bar")
	if !ok {
		t.Fatal("Get(\"bar\") reported absent on a non-empty ring")
	}
	if got == vnode2 {
		t.Errorf("Get(\"bar\") still returns removed node %v", vnode2)
	}
}

func TestHashRing_RemoveMissing(t *testing.T) {
	ring := New[testVNode, Str]()
	ring.Add(newTestVNode("127.0.0.1", 1024, 1))

	if _, ok := ring.Remove(newTestVNode("127.0.0.9", 1024, 9)); ok {
		t.Error("Remove of a node that was never added should report absent")
	}
	if ring.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ring.Len())
	}
}

func TestHashRing_RoundTrip(t *testing.T) {
	ring := New[Str, Str]()
	ring.Add("backend-a")
	ring.Add("backend-b")

	before := ring.Len()
	ring.Add("backend-c")
	removed, ok := ring.Remove("backend-c")
	if !ok {
		t.Fatal("Remove after Add should succeed")
	}
	if removed.String() != "backend-c" {
		t.Errorf("Remove returned %q, want %q", removed, "backend-c")
	}
	if ring.Len() != before {
		t.Errorf("Len() = %d after round trip, want %d", ring.Len(), before)
	}
}

func TestHashRing_DuplicateIdentities(t *testing.T) {
	ring := New[Str, Str]()

	// Identical identities land on the same hash and coexist. No
	// deduplication happens; each Remove takes out exactly one.
	ring.Add("backend-a")
	ring.Add("backend-a")
	if ring.Len() != 2 {
		t.Fatalf("Len() = %d after duplicate Add, want 2", ring.Len())
	}

	if _, ok := ring.Remove("backend-a"); !ok {
		t.Error("first Remove of duplicate should succeed")
	}
	if ring.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ring.Len())
	}
	if _, ok := ring.Remove("backend-a"); !ok {
		t.Error("second Remove of duplicate should succeed")
	}
	if _, ok := ring.Remove("backend-a"); ok {
		t.Error("third Remove should report absent")
	}
	if !ring.IsEmpty() {
		t.Error("ring should be empty after removing both duplicates")
	}
}

func TestHashRing_HeterogeneousNodeAndKeyTypes(t *testing.T) {
	// Node and key types are independent; nothing requires T == U.
	ring := New[testVNode, Str]()
	ring.Add(newTestVNode("10.0.0.1", 6000, 1))

	if _, ok := ring.Get("anything"); !ok {
		t.Error("single-node ring should answer every key")
	}
}
