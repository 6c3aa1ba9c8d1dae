package devicestore

import (
	"context"
	"os"
	"testing"
	"time"

	"elevenstore/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	return client
}

func TestRedisStore_RoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	client.Del(ctx, "device:test-device")
	store := NewRedisStore(client, time.Minute)

	state, err := store.Load(ctx, "test-device")
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDefault, state.Permission)
	assert.False(t, state.Admin)

	require.NoError(t, store.SavePermission(ctx, "test-device", entity.PermissionDenied))
	require.NoError(t, store.SaveAdmin(ctx, "test-device", true))

	state, err = store.Load(ctx, "test-device")
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionDenied, state.Permission)
	assert.True(t, state.Admin)

	ttl, err := client.TTL(ctx, "device:test-device").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
