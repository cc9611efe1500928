package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"hashring/internal/router"
)

// StaticMember is a member declared ahead of time in the config file or
// on the command line, joined to the ring at startup.
type StaticMember struct {
	ID     string `yaml:"id"`
	Addr   string `yaml:"addr"`
	VNodes int    `yaml:"vnodes"`
}

// Consul holds the settings for consul-based member discovery. An empty
// Addr disables discovery.
type Consul struct {
	Addr         string        `yaml:"addr"`
	Service      string        `yaml:"service"`
	Tag          string        `yaml:"tag"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Config holds the router configuration.
type Config struct {
	ListenAddr string         `yaml:"listen_addr"`
	VNodes     int            `yaml:"vnodes"`
	Members    []StaticMember `yaml:"members"`
	Consul     Consul         `yaml:"consul"`
}

// Default returns a config with the built-in defaults applied.
func Default() *Config {
	return &Config{
		ListenAddr: "127.0.0.1:7000",
		VNodes:     router.DefaultVNodes,
		Consul: Consul{
			Service:      "hashring-member",
			PollInterval: 10 * time.Second,
		},
	}
}

// Load reads a YAML config file and applies defaults for any field the
// file leaves unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for values that cannot work at runtime.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}
	if c.VNodes <= 0 {
		return fmt.Errorf("vnodes must be positive, got %d", c.VNodes)
	}
	seen := make(map[string]bool, len(c.Members))
	for _, m := range c.Members {
		if m.ID == "" || m.Addr == "" {
			return fmt.Errorf("member ID and address cannot be empty: %+v", m)
		}
		if seen[m.ID] {
			return fmt.Errorf("duplicate member ID in config: %s", m.ID)
		}
		seen[m.ID] = true
	}
	if c.Consul.Addr != "" {
		if c.Consul.Service == "" {
			return fmt.Errorf("consul.service cannot be empty when consul.addr is set")
		}
		if c.Consul.PollInterval <= 0 {
			return fmt.Errorf("consul.poll_interval must be positive, got %s", c.Consul.PollInterval)
		}
	}
	return nil
}

// ParseMembers parses a comma-separated list of members in the format:
// "id1=addr1,id2=addr2,id3=addr3"
func ParseMembers(membersStr string) ([]StaticMember, error) {
	if membersStr == "" {
		return []StaticMember{}, nil
	}

	parts := strings.Split(membersStr, ",")
	members := make([]StaticMember, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid member format: %s (expected id=addr)", part)
		}

		id := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if id == "" || addr == "" {
			return nil, fmt.Errorf("member ID and address cannot be empty: %s", part)
		}

		members = append(members, StaticMember{
			ID:   id,
			Addr: addr,
		})
	}

	return members, nil
}

// RouterMembers converts the static member list into router members,
// filling in the configured vnode count where a member does not set one.
func (c *Config) RouterMembers() []router.Member {
	members := make([]router.Member, 0, len(c.Members))
	for _, m := range c.Members {
		vnodes := m.VNodes
		if vnodes <= 0 {
			vnodes = c.VNodes
		}
		members = append(members, router.Member{
			ID:     m.ID,
			Addr:   m.Addr,
			VNodes: vnodes,
		})
	}
	return members
}
