package discovery

import (
	"fmt"

	consulapi "github.com/hashicorp/consul/api"

	"hashring/internal/router"
)

// Resolver lists the currently healthy members of a service.
type Resolver interface {
	Resolve(service, tag string) ([]router.Member, error)
}

// ConsulResolver resolves members from the consul health catalog. Only
// instances passing their health checks are returned.
type ConsulResolver struct {
	client *consulapi.Client
	vnodes int
}

// NewConsulResolver connects to the consul agent at addr. Each resolved
// member is assigned vnodes virtual nodes.
func NewConsulResolver(addr string, vnodes int) (*ConsulResolver, error) {
	conf := consulapi.DefaultConfig()
	conf.Address = addr
	c, err := consulapi.NewClient(conf)
	if err != nil {
		return nil, fmt.Errorf("create consul client: %w", err)
	}
	return &ConsulResolver{
		client: c,
		vnodes: vnodes,
	}, nil
}

// Resolve returns one member per passing service instance. The consul
// service ID becomes the member ID.
func (r *ConsulResolver) Resolve(service, tag string) ([]router.Member, error) {
	entries, _, err := r.client.Health().Service(service, tag, true, nil)
	if err != nil {
		return nil, fmt.Errorf("resolve service %s: %w", service, err)
	}

	members := make([]router.Member, 0, len(entries))
	for _, entry := range entries {
		addr := entry.Service.Address
		if addr == "" {
			addr = entry.Node.Address
		}
		members = append(members, router.Member{
			ID:     entry.Service.ID,
			Addr:   fmt.Sprintf("%s:%d", addr, entry.Service.Port),
			VNodes: r.vnodes,
		})
	}
	return members, nil
}
