package vnode

import "testing"

func TestVNode_String(t *testing.T) {
	tests := []struct {
		name string
		vn   VNode
		want string
	}{
		{"ipv4", VNode{Addr: "127.0.0.1:1024", ID: 1}, "127.0.0.1:1024|1"},
		{"another ordinal", VNode{Addr: "127.0.0.2:1024", ID: 3}, "127.0.0.2:1024|3"},
		{"zero ordinal", VNode{Addr: "10.0.0.1:7000", ID: 0}, "10.0.0.1:7000|0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vn.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSpread(t *testing.T) {
	vnodes := Spread("10.0.0.1:7000", 4)
	if len(vnodes) != 4 {
		t.Fatalf("Spread returned %d vnodes, want 4", len(vnodes))
	}

	seen := make(map[string]bool)
	for i, vn := range vnodes {
		if vn.Addr != "10.0.0.1:7000" {
			t.Errorf("vnode %d has addr %q, want 10.0.0.1:7000", i, vn.Addr)
		}
		if vn.ID != i {
			t.Errorf("vnode %d has ordinal %d", i, vn.ID)
		}
		if seen[vn.String()] {
			t.Errorf("duplicate identity %q", vn.String())
		}
		seen[vn.String()] = true
	}
}

func TestSpread_Deterministic(t *testing.T) {
	a := Spread("10.0.0.1:7000", 8)
	b := Spread("10.0.0.1:7000", 8)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Spread not deterministic at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
