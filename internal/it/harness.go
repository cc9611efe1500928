package it

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	routerpb "hashring/internal/gen/api"
)

// Harness manages router processes spawned for integration tests.
type Harness struct {
	routers    []*Router
	logDir     string
	binaryPath string
	mu         sync.Mutex
}

// Router is a single router process plus a connected client.
type Router struct {
	ID      string
	Addr    string
	Port    int
	cmd     *exec.Cmd
	logFile *os.File
	conn    *grpc.ClientConn
	client  routerpb.RouterClient
}

// NewHarness creates a harness writing process logs under .local/it-logs.
func NewHarness(binaryPath string) (*Harness, error) {
	logDir := filepath.Join(".local", "it-logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Harness{
		routers:    make([]*Router, 0),
		logDir:     logDir,
		binaryPath: binaryPath,
	}, nil
}

// StartRouter starts one router process with a static member list given
// in "id1=addr1,id2=addr2" form, then waits for it to answer Health.
func (h *Harness) StartRouter(ctx context.Context, id string, port int, members string, vnodes int) (*Router, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	addr := fmt.Sprintf("127.0.0.1:%d", port)
	logPath := filepath.Join(h.logDir, fmt.Sprintf("%s.log", id))
	logFile, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	cmd := exec.CommandContext(ctx, h.binaryPath,
		"--listen", addr,
		"--members", members,
		"--vnodes", fmt.Sprintf("%d", vnodes),
	)
	cmd.Stdout = logFile
	cmd.Stderr = logFile

	if err := cmd.Start(); err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to start router %s: %w", id, err)
	}

	conn, err := grpc.NewClient(
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		cmd.Process.Kill()
		logFile.Close()
		return nil, fmt.Errorf("failed to dial router %s: %w", id, err)
	}

	router := &Router{
		ID:      id,
		Addr:    addr,
		Port:    port,
		cmd:     cmd,
		logFile: logFile,
		conn:    conn,
		client:  routerpb.NewRouterClient(conn),
	}

	h.routers = append(h.routers, router)

	if err := h.waitForReady(ctx, router, 10*time.Second); err != nil {
		router.Stop()
		return nil, fmt.Errorf("router %s failed to become ready: %w", id, err)
	}

	return router, nil
}

// waitForReady polls Health until the router answers or the timeout hits.
func (h *Harness) waitForReady(ctx context.Context, router *Router, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if time.Now().After(deadline) {
				return fmt.Errorf("timeout waiting for router %s to be ready", router.ID)
			}

			healthCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			_, err := router.client.Health(healthCtx, &routerpb.HealthRequest{})
			cancel()

			if err == nil {
				return nil
			}
		}
	}
}

// Stop kills all router processes started by the harness.
func (h *Harness) Stop() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, router := range h.routers {
		router.Stop()
	}
	h.routers = nil
}

// Stop kills a single router process and closes its client connection.
func (r *Router) Stop() {
	if r.conn != nil {
		r.conn.Close()
	}
	if r.cmd != nil && r.cmd.Process != nil {
		r.cmd.Process.Kill()
		r.cmd.Wait()
	}
	if r.logFile != nil {
		r.logFile.Close()
	}
}

// Client returns the gRPC client connected to this router.
func (r *Router) Client() routerpb.RouterClient {
	return r.client
}
