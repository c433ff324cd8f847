package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewResultCache(client)
	ctx := context.Background()

	key := "vp-001"
	value := []byte(`{"token_id":"0.0.5005","amount":25}`)

	// Get before set => nil
	result, err := cache.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)

	// Set
	err = cache.Set(ctx, key, value, 24*time.Hour)
	require.NoError(t, err)

	// Get after set
	result, err = cache.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestResultCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewResultCache(client)
	ctx := context.Background()

	err := cache.Set(ctx, "vp-002", []byte(`{"amount":1}`), 1*time.Second)
	require.NoError(t, err)

	// Fast-forward time in miniredis
	s.FastForward(2 * time.Second)

	result, err := cache.Get(ctx, "vp-002")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired key should return nil")
}

func TestResultCache_KeyPrefix(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewResultCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "vp-003", []byte("x"), time.Hour))

	// Other prefixes must not collide with the cache namespace.
	val, err := client.Get(ctx, "mint:result:vp-003").Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), val)
}
