package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

func sampleSettings(locationID string) model.StoreSettings {
	return model.StoreSettings{
		LocationID: locationID,
		Name:       "Store " + locationID,
		Delivery: model.FeeConfig{
			FeeType:               model.FeeTypePerMile,
			PerMileFee:            decimal.RequireFromString("1.50"),
			FreeDeliveryThreshold: decimal.NewFromInt(99),
		},
		Hours:   model.WeeklyHours{model.Monday: "9:00 AM - 5:00 PM"},
		Version: 1,
		Active:  true,
	}
}

func TestTTLCache_Get(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name          string
		setupCache    func() *ttlCache
		key           string
		expectedFound bool
	}{
		{
			name: "returns value when exists and not expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, time.Minute)
				c.Set(ctx, "a", sampleSettings("a"))
				return c
			},
			key:           "a",
			expectedFound: true,
		},
		{
			name: "returns false when key not found",
			setupCache: func() *ttlCache {
				return newTTLCache(10, time.Minute)
			},
			key:           "missing",
			expectedFound: false,
		},
		{
			name: "returns false when expired",
			setupCache: func() *ttlCache {
				c := newTTLCache(10, 50*time.Millisecond)
				c.Set(ctx, "a", sampleSettings("a"))
				time.Sleep(100 * time.Millisecond)
				return c
			},
			key:           "a",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.setupCache()
			defer c.Stop()

			value, found := c.Get(ctx, tt.key)
			assert.Equal(t, tt.expectedFound, found)
			if tt.expectedFound {
				assert.Equal(t, tt.key, value.LocationID)
			}
		})
	}
}

func TestTTLCache_SetUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	first := sampleSettings("a")
	c.Set(ctx, "a", first)
	second := sampleSettings("a")
	second.Version = 2
	c.Set(ctx, "a", second)

	got, ok := c.Get(ctx, "a")
	require.True(t, ok)
	assert.Equal(t, 2, got.Version)
	assert.Equal(t, 1, c.Metrics().Size)
}

func TestTTLCache_SetCopiesHours(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	s := sampleSettings("a")
	c.Set(ctx, "a", s)
	s.Hours[model.Tuesday] = "changed"

	got, _ := c.Get(ctx, "a")
	_, present := got.Hours[model.Tuesday]
	assert.False(t, present)
}

func TestTTLCache_Eviction(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(3, time.Minute)
	defer c.Stop()

	c.Set(ctx, "1", sampleSettings("1"))
	c.Set(ctx, "2", sampleSettings("2"))
	c.Set(ctx, "3", sampleSettings("3"))

	// touch 1 so 2 becomes least recently used
	c.Get(ctx, "1")
	c.Set(ctx, "4", sampleSettings("4"))

	_, ok1 := c.Get(ctx, "1")
	_, ok2 := c.Get(ctx, "2")
	_, ok3 := c.Get(ctx, "3")
	_, ok4 := c.Get(ctx, "4")

	assert.True(t, ok1)
	assert.False(t, ok2, "least recently used entry evicted")
	assert.True(t, ok3)
	assert.True(t, ok4)
	assert.Equal(t, int64(1), c.Metrics().Evictions)
}

func TestTTLCache_Metrics(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set(ctx, "a", sampleSettings("a"))
	c.Get(ctx, "a")
	c.Get(ctx, "b")
	c.Set(ctx, "b", sampleSettings("b"))

	m := c.Metrics()
	assert.Equal(t, int64(1), m.Hits)
	assert.Equal(t, int64(1), m.Misses)
	assert.Equal(t, 2, m.Size)
	assert.Equal(t, 10, m.Capacity)
}

func TestTTLCache_InvalidateAndClear(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(10, time.Minute)
	defer c.Stop()

	c.Set(ctx, "a", sampleSettings("a"))
	c.Set(ctx, "b", sampleSettings("b"))

	c.Invalidate(ctx, "a")
	_, ok := c.Get(ctx, "a")
	assert.False(t, ok)

	c.Invalidate(ctx, "never-set")

	c.Clear(ctx)
	assert.Equal(t, 0, c.Metrics().Size)
	assert.Equal(t, int64(0), c.Metrics().Misses)
}

func TestTTLCache_Cleanup(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(10, 50*time.Millisecond)
	defer c.Stop()

	c.Set(ctx, "a", sampleSettings("a"))
	c.Set(ctx, "b", sampleSettings("b"))

	// longer than ttl plus the cached clock interval
	time.Sleep(200 * time.Millisecond)
	c.cleanup()

	assert.Equal(t, 0, c.Metrics().Size)
}

func TestTTLCache_StopTwice(t *testing.T) {
	c := newTTLCache(1, time.Minute)
	assert.NotPanics(t, func() {
		c.Stop()
		c.Stop()
	})
}

func TestTTLCache_Concurrency(t *testing.T) {
	ctx := context.Background()
	c := newTTLCache(100, time.Minute)
	defer c.Stop()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				key := fmt.Sprintf("loc-%d-%d", n, j%5)
				c.Set(ctx, key, sampleSettings(key))
				c.Get(ctx, key)
				if j%7 == 0 {
					c.Invalidate(ctx, key)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Metrics().Size, 100)
}

func TestNewMemoryCache(t *testing.T) {
	c := NewMemoryCache(0, time.Minute)
	defer c.Stop()

	assert.Equal(t, 1, c.Metrics().Capacity)
}

func TestShardedCache(t *testing.T) {
	ctx := context.Background()
	sc := NewShardedCache(160, time.Minute, 5)
	defer sc.Stop()

	assert.Len(t, sc.shards, 8, "rounded up to a power of two")

	for i := 0; i < 20; i++ {
		key := SettingsKey(fmt.Sprintf("loc-%d", i))
		sc.Set(ctx, key, sampleSettings(key))
	}
	for i := 0; i < 20; i++ {
		key := SettingsKey(fmt.Sprintf("loc-%d", i))
		got, ok := sc.Get(ctx, key)
		require.True(t, ok, key)
		assert.Equal(t, key, got.LocationID)
	}

	sc.Invalidate(ctx, SettingsKey("loc-3"))
	_, ok := sc.Get(ctx, SettingsKey("loc-3"))
	assert.False(t, ok)

	m := sc.Metrics()
	assert.Equal(t, 19, m.Size)
	assert.Equal(t, 160, m.Capacity)
	assert.Equal(t, int64(20), m.Hits)

	sc.Clear(ctx)
	assert.Equal(t, 0, sc.Metrics().Size)
}

func TestShardedCache_DefaultShards(t *testing.T) {
	sc := NewShardedCache(4, time.Minute, 0)
	defer sc.Stop()

	assert.Len(t, sc.shards, 16)
	assert.Equal(t, 16, sc.Metrics().Capacity, "each shard holds at least one entry")
}

func TestShardedCache_SameKeySameShard(t *testing.T) {
	sc := NewShardedCache(16, time.Minute, 4)
	defer sc.Stop()

	assert.Same(t, sc.shard("settings:downtown"), sc.shard("settings:downtown"))
}

func TestCacheImplementations(t *testing.T) {
	var _ CacheWithMetrics = (*ttlCache)(nil)
	var _ CacheWithMetrics = (*ShardedCache)(nil)
	assert.Equal(t, "settings:uptown", SettingsKey("uptown"))
}
