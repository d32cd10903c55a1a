package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRedisStore creates a redis store backed by an in-process redis server
func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(client, ttl)
	t.Cleanup(func() { store.Close() })
	return store, mr
}

func TestRedisStore_CreateResolve(t *testing.T) {
	store, mr := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 42)
	require.NoError(t, err)

	assert.True(t, mr.Exists(redisKeyPrefix+token))
	assert.Equal(t, time.Hour, mr.TTL(redisKeyPrefix+token))

	userID, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 42, userID)
}

func TestRedisStore_ResolveUnknown(t *testing.T) {
	store, _ := setupRedisStore(t, time.Hour)

	_, ok, err := store.Resolve(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 5)
	require.NoError(t, err)

	mr.FastForward(time.Hour + time.Second)

	_, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_DestroyIsIdempotent(t *testing.T) {
	store, _ := setupRedisStore(t, time.Hour)
	ctx := context.Background()

	token, err := store.Create(ctx, 5)
	require.NoError(t, err)

	assert.NoError(t, store.Destroy(ctx, token))
	assert.NoError(t, store.Destroy(ctx, token))

	_, ok, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ConnectionError(t *testing.T) {
	store, mr := setupRedisStore(t, time.Hour)
	mr.Close()

	_, err := store.Create(context.Background(), 1)
	assert.Error(t, err)

	_, ok, err := store.Resolve(context.Background(), "token")
	assert.Error(t, err)
	assert.False(t, ok)
}
