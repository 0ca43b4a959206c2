package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T, ttl time.Duration) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client, "test", ttl), mr
}

func TestRedisCache_SetGet(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	want := sampleSettings("downtown")
	c.Set(ctx, SettingsKey("downtown"), want)

	assert.True(t, mr.Exists("test:settings:downtown"))

	got, ok := c.Get(ctx, SettingsKey("downtown"))
	require.True(t, ok)
	assert.Equal(t, want.LocationID, got.LocationID)
	assert.Equal(t, want.Hours, got.Hours)
	assert.True(t, want.Delivery.PerMileFee.Equal(got.Delivery.PerMileFee))
	assert.Equal(t, want.Delivery.FeeType, got.Delivery.FeeType)
}

func TestRedisCache_Miss(t *testing.T) {
	c, _ := newTestRedisCache(t, time.Minute)

	_, ok := c.Get(context.Background(), "absent")
	assert.False(t, ok)
}

func TestRedisCache_TTL(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", sampleSettings("a"))
	assert.Equal(t, time.Minute, mr.TTL("test:k"))

	mr.FastForward(2 * time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestRedisCache_Invalidate(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	c.Set(ctx, "k", sampleSettings("a"))
	c.Invalidate(ctx, "k")

	assert.False(t, mr.Exists("test:k"))
}

func TestRedisCache_ClearOnlyOwnPrefix(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		c.Set(ctx, SettingsKey(id), sampleSettings(id))
	}
	require.NoError(t, mr.Set("other:key", "keep"))

	c.Clear(ctx)

	assert.False(t, mr.Exists("test:settings:a"))
	assert.False(t, mr.Exists("test:settings:b"))
	assert.True(t, mr.Exists("other:key"))
}

func TestRedisCache_CorruptEntryIsDropped(t *testing.T) {
	c, mr := newTestRedisCache(t, time.Minute)
	require.NoError(t, mr.Set("test:k", "{not json"))

	_, ok := c.Get(context.Background(), "k")

	assert.False(t, ok)
	assert.False(t, mr.Exists("test:k"))
}

func TestRedisCache_ServerDownIsMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCache(client, "test", time.Minute)
	defer c.Stop()
	ctx := context.Background()

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
	assert.Error(t, c.Ping(ctx))
	assert.NotPanics(t, func() {
		c.Set(ctx, "k", sampleSettings("a"))
		c.Invalidate(ctx, "k")
		c.Clear(ctx)
	})
}

func TestNewRedisCache_DefaultPrefix(t *testing.T) {
	c := NewRedisCache(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), "", time.Minute)
	defer c.Stop()

	assert.Equal(t, "storefront:x", c.key("x"))
}

func TestRedisCache_ImplementsInterface(t *testing.T) {
	var _ Cache = (*RedisCache)(nil)
}
