package translation

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisCache(client, "test:i18n:", ttl), mr
}

func TestRedisCache_GetSet(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t, time.Hour)
	defer cache.Close()

	_, ok, err := cache.Get(ctx, "hi:ledger.debit")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "hi:ledger.debit", "नामे"))
	v, ok, err := cache.Get(ctx, "hi:ledger.debit")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "नामे", v)

	assert.True(t, mr.Exists("test:i18n:hi:ledger.debit"))
	assert.Equal(t, time.Hour, mr.TTL("test:i18n:hi:ledger.debit"))
}

func TestRedisCache_Expiry(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t, time.Minute)
	defer cache.Close()

	require.NoError(t, cache.Set(ctx, "k", "v"))
	mr.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_ClearOnlyOwnPrefix(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t, 0)
	defer cache.Close()

	for i := 0; i < 250; i++ {
		require.NoError(t, cache.Set(ctx, "hi:key"+strconv.Itoa(i), "x"))
	}
	require.NoError(t, mr.Set("other:key", "keep"))

	require.NoError(t, cache.Clear(ctx))

	assert.Equal(t, []string{"other:key"}, mr.Keys())
}

func TestRedisCache_ErrorsWhenServerDown(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t, 0)
	defer cache.Close()
	mr.Close()

	_, _, err := cache.Get(ctx, "k")
	assert.Error(t, err)
}

func TestTranslator_WithRedisCacheReadFailureStillTranslates(t *testing.T) {
	ctx := context.Background()
	cache, mr := newRedisCache(t, 0)
	defer cache.Close()
	mr.Close()

	tr := NewTranslator(testDictionary(), WithCache(cache))
	text, err := tr.Translate(ctx, "ledger.debit", "hi")

	require.NoError(t, err)
	assert.Equal(t, "Debit", text)
}
