// cache/redis_test.go
package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgechev/gonotes/cache"
	logger "github.com/tgechev/gonotes/logging"
)

func newRedisCache(t *testing.T) (*cache.Redis, *miniredis.Miniredis) {
	t.Helper()
	logger.InitLogger(t.TempDir())

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return cache.NewRedis(client), mr
}

func TestRedis_PutGet(t *testing.T) {
	store, _ := newRedisCache(t)
	ctx := context.Background()

	_, hit, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, store.Put(ctx, "greeting", []byte("hello"), time.Minute))

	value, hit, err := store.Get(ctx, "greeting")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("hello"), value)
}

func TestRedis_EntryExpires(t *testing.T) {
	store, mr := newRedisCache(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "short", []byte("lived"), 10*time.Second))

	has, err := store.Has(ctx, "short")
	require.NoError(t, err)
	assert.True(t, has)

	mr.FastForward(11 * time.Second)

	has, err = store.Has(ctx, "short")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestRedis_Delete(t *testing.T) {
	store, _ := newRedisCache(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a", []byte("1"), time.Minute))
	require.NoError(t, store.Put(ctx, "b", []byte("2"), time.Minute))
	require.NoError(t, store.Delete(ctx, "a", "b"))
	require.NoError(t, store.Delete(ctx))

	for _, key := range []string{"a", "b"} {
		has, err := store.Has(ctx, key)
		require.NoError(t, err)
		assert.False(t, has)
	}
}

func TestRedis_RememberRoundTrip(t *testing.T) {
	store, _ := newRedisCache(t)
	ctx := context.Background()

	calls := 0
	compute := func() (map[string]string, error) {
		calls++
		return map[string]string{"id": "n1", "title": "My first note"}, nil
	}

	first, hit, err := cache.Remember(ctx, store, "note:n1", time.Minute, compute)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := cache.Remember(ctx, store, "note:n1", time.Minute, compute)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}
