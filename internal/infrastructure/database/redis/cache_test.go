package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openamr/amr/internal/config"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/pkg/types/mo"
)

func newTestCache(t *testing.T) (*ResolutionCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewResolutionCache(client, "amr:", time.Hour, logging.NewNopLogger())
	return cache, mr
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.RedisConfig{Addr: mr.Addr()}
	client, err := NewClient(context.Background(), cfg, logging.NewNopLogger())
	require.NoError(t, err)
	defer client.Close()

	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
}

func TestNewClientUnreachable(t *testing.T) {
	cfg := config.RedisConfig{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond}
	_, err := NewClient(context.Background(), cfg, logging.NewNopLogger())
	require.Error(t, err)
}

func TestResolutionCacheGetSet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "mo:0:false:s aureus")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "mo:0:false:s aureus", "STAAUR"))

	code, ok, err := cache.Get(ctx, "mo:0:false:s aureus")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mo.Code("STAAUR"), code)
}

func TestResolutionCacheExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "key", "ESCCOL"))
	mr.FastForward(2 * time.Hour)

	_, ok, err := cache.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestResolutionCacheFlush(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "a", "STAAUR"))
	require.NoError(t, cache.Set(ctx, "b", "ESCCOL"))
	require.NoError(t, mr.Set("other:key", "untouched"))

	require.NoError(t, cache.Flush(ctx))

	_, ok, err := cache.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, mr.Exists("other:key"))
}
