// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	redisstore "github.com/taibuivan/authors/internal/platform/redis"
)

// testRedisURL returns TEST_REDIS_URL, or starts a disposable Redis container.
func testRedisURL(t *testing.T) string {
	t.Helper()

	if url := os.Getenv("TEST_REDIS_URL"); url != "" {
		return url
	}
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate redis container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("redis://%s:%s/0", host, port.Port())
}

/*
TestCache_Lifecycle exercises miss, set, hit, expiry and delete.
*/
func TestCache_Lifecycle(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client, err := redisstore.NewClient(ctx, testRedisURL(t), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, redisstore.Ping(ctx, client))

	cache := redisstore.NewCache(client, "test:author:")
	require.NoError(t, cache.Delete(ctx, "1"))

	_, found, err := cache.Get(ctx, "1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "1", []byte(`{"id":1}`), time.Minute))
	value, found, err := cache.Get(ctx, "1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"id":1}`, string(value))

	raw, err := client.Get(ctx, "test:author:1").Result()
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, raw)

	require.NoError(t, cache.Delete(ctx, "1"))
	_, found, err = cache.Get(ctx, "1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, cache.Set(ctx, "2", []byte("x"), 50*time.Millisecond))
	assert.Eventually(t, func() bool {
		_, found, err := cache.Get(ctx, "2")
		return err == nil && !found
	}, 5*time.Second, 50*time.Millisecond)
}
