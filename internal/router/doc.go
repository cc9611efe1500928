// Package router exposes the consistent hash ring as a gRPC service.
// Members join with an address and a virtual-node count; the service
// spreads each member into that many ring identities and resolves request
// keys to the owning member. Lookups are served concurrently; membership
// changes are serialized.
package router
