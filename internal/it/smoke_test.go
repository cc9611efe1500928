package it

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	routerpb "hashring/internal/gen/api"
)

const binaryPath = "./router"

func requireBinary(t *testing.T) {
	t.Helper()
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skip("Binary not found, skipping integration test. Build with: go build -o router ./cmd/router")
	}
}

func TestSmoke_JoinLocateLeave(t *testing.T) {
	requireBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	harness, err := NewHarness(binaryPath)
	require.NoError(t, err)
	defer harness.Stop()

	router, err := harness.StartRouter(ctx, "r1", 60051,
		"m1=10.0.0.1:7000,m2=10.0.0.2:7000", 64)
	require.NoError(t, err, "Failed to start router")
	client := router.Client()

	// The static members are in the ring at startup.
	membersResp, err := client.Members(ctx, &routerpb.MembersRequest{})
	require.NoError(t, err)
	require.Len(t, membersResp.Members, 2)

	// Join
	joinResp, err := client.Join(ctx, &routerpb.JoinRequest{
		Member: &routerpb.Member{Id: "m3", Addr: "10.0.0.3:7000"},
	})
	require.NoError(t, err)
	assert.Equal(t, uint32(3*64), joinResp.RingEntries)

	// Locate resolves every key to a known member, deterministically.
	known := map[string]bool{"m1": true, "m2": true, "m3": true}
	owners := make(map[string]string)
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("key-%d", i)
		locResp, err := client.Locate(ctx, &routerpb.LocateRequest{Key: key})
		require.NoError(t, err)
		require.True(t, locResp.Found)
		assert.True(t, known[locResp.Member.Id])
		owners[key] = locResp.Member.Id
	}
	for key, owner := range owners {
		locResp, err := client.Locate(ctx, &routerpb.LocateRequest{Key: key})
		require.NoError(t, err)
		assert.Equal(t, owner, locResp.Member.Id, "key %s changed owner", key)
	}

	// Leave
	leaveResp, err := client.Leave(ctx, &routerpb.LeaveRequest{Id: "m3"})
	require.NoError(t, err)
	assert.True(t, leaveResp.Removed)

	// Keys previously owned by m3 now resolve elsewhere.
	for key, owner := range owners {
		locResp, err := client.Locate(ctx, &routerpb.LocateRequest{Key: key})
		require.NoError(t, err)
		require.True(t, locResp.Found)
		if owner == "m3" {
			assert.NotEqual(t, "m3", locResp.Member.Id)
		} else {
			assert.Equal(t, owner, locResp.Member.Id, "key %s moved off a surviving member", key)
		}
	}
}

func TestSmoke_TwoRoutersAgree(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	requireBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	harness, err := NewHarness(binaryPath)
	require.NoError(t, err)
	defer harness.Stop()

	members := "m1=10.0.0.1:7000,m2=10.0.0.2:7000,m3=10.0.0.3:7000"
	r1, err := harness.StartRouter(ctx, "r1", 60061, members, 64)
	require.NoError(t, err)
	r2, err := harness.StartRouter(ctx, "r2", 60062, members, 64)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		key := fmt.Sprintf("key-%d", i)
		resp1, err := r1.Client().Locate(ctx, &routerpb.LocateRequest{Key: key})
		require.NoError(t, err)
		resp2, err := r2.Client().Locate(ctx, &routerpb.LocateRequest{Key: key})
		require.NoError(t, err)
		require.True(t, resp1.Found)
		require.True(t, resp2.Found)
		assert.Equal(t, resp1.Member.Id, resp2.Member.Id,
			"key %s resolved differently on the two routers", key)
	}
}
