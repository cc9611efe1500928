package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestParseMembers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []StaticMember
		wantErr bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  []StaticMember{},
		},
		{
			name:  "single member",
			input: "m1=127.0.0.1:7001",
			want: []StaticMember{
				{ID: "m1", Addr: "127.0.0.1:7001"},
			},
		},
		{
			name:  "multiple members",
			input: "m1=127.0.0.1:7001,m2=127.0.0.1:7002,m3=127.0.0.1:7003",
			want: []StaticMember{
				{ID: "m1", Addr: "127.0.0.1:7001"},
				{ID: "m2", Addr: "127.0.0.1:7002"},
				{ID: "m3", Addr: "127.0.0.1:7003"},
			},
		},
		{
			name:  "with spaces",
			input: "m1 = 127.0.0.1:7001 , m2 = 127.0.0.1:7002",
			want: []StaticMember{
				{ID: "m1", Addr: "127.0.0.1:7001"},
				{ID: "m2", Addr: "127.0.0.1:7002"},
			},
		},
		{
			name:    "invalid format - no equals",
			input:   "m1:127.0.0.1:7001",
			wantErr: true,
		},
		{
			name:    "invalid format - empty ID",
			input:   "=127.0.0.1:7001",
			wantErr: true,
		},
		{
			name:    "invalid format - empty addr",
			input:   "m1=",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMembers(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseMembers() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if len(got) != len(tt.want) {
					t.Errorf("ParseMembers() length = %d, want %d", len(got), len(tt.want))
					return
				}
				for i := range got {
					if got[i].ID != tt.want[i].ID || got[i].Addr != tt.want[i].Addr {
						t.Errorf("ParseMembers()[%d] = %v, want %v", i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	raw := `
listen_addr: 0.0.0.0:9000
vnodes: 64
members:
  - id: m1
    addr: 10.0.0.1:7000
  - id: m2
    addr: 10.0.0.2:7000
    vnodes: 32
consul:
  addr: 127.0.0.1:8500
  service: hashring-member
  tag: prod
  poll_interval: 5s
`
	path := filepath.Join(t.TempDir(), "router.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListenAddr != "0.0.0.0:9000" {
		t.Errorf("ListenAddr = %q, want 0.0.0.0:9000", cfg.ListenAddr)
	}
	if cfg.VNodes != 64 {
		t.Errorf("VNodes = %d, want 64", cfg.VNodes)
	}
	if len(cfg.Members) != 2 {
		t.Fatalf("Members length = %d, want 2", len(cfg.Members))
	}
	if cfg.Consul.Addr != "127.0.0.1:8500" || cfg.Consul.Tag != "prod" {
		t.Errorf("Consul = %+v, want addr 127.0.0.1:8500 tag prod", cfg.Consul)
	}
	if cfg.Consul.PollInterval != 5*time.Second {
		t.Errorf("PollInterval = %s, want 5s", cfg.Consul.PollInterval)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "router.yaml")
	if err := os.WriteFile(path, []byte("listen_addr: 127.0.0.1:7100\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.VNodes != 128 {
		t.Errorf("VNodes = %d, want default 128", cfg.VNodes)
	}
	if cfg.Consul.PollInterval != 10*time.Second {
		t.Errorf("PollInterval = %s, want default 10s", cfg.Consul.PollInterval)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on a missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty listen addr",
			mutate:  func(c *Config) { c.ListenAddr = "" },
			wantErr: true,
		},
		{
			name:    "zero vnodes",
			mutate:  func(c *Config) { c.VNodes = 0 },
			wantErr: true,
		},
		{
			name: "duplicate member IDs",
			mutate: func(c *Config) {
				c.Members = []StaticMember{
					{ID: "m1", Addr: "10.0.0.1:7000"},
					{ID: "m1", Addr: "10.0.0.2:7000"},
				}
			},
			wantErr: true,
		},
		{
			name: "member without addr",
			mutate: func(c *Config) {
				c.Members = []StaticMember{{ID: "m1"}}
			},
			wantErr: true,
		},
		{
			name: "consul addr without service",
			mutate: func(c *Config) {
				c.Consul.Addr = "127.0.0.1:8500"
				c.Consul.Service = ""
			},
			wantErr: true,
		},
		{
			name: "consul addr with zero poll interval",
			mutate: func(c *Config) {
				c.Consul.Addr = "127.0.0.1:8500"
				c.Consul.PollInterval = 0
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_RouterMembers(t *testing.T) {
	cfg := &Config{
		VNodes: 64,
		Members: []StaticMember{
			{ID: "m1", Addr: "10.0.0.1:7000"},
			{ID: "m2", Addr: "10.0.0.2:7000", VNodes: 16},
		},
	}

	members := cfg.RouterMembers()
	if len(members) != 2 {
		t.Fatalf("Expected 2 members, got %d", len(members))
	}
	if members[0].VNodes != 64 {
		t.Errorf("m1 VNodes = %d, want the config default 64", members[0].VNodes)
	}
	if members[1].VNodes != 16 {
		t.Errorf("m2 VNodes = %d, want its own 16", members[1].VNodes)
	}
}
