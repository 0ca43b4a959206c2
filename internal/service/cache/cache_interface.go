// Package cache provides the store settings caches: an in-process TTL LRU and a Redis backed cache.
package cache

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// Cache defines the interface for cache operations.
// Implementations treat backend failures as misses.
type Cache interface {
	Get(ctx context.Context, key string) (model.StoreSettings, bool)
	Set(ctx context.Context, key string, value model.StoreSettings)
	Invalidate(ctx context.Context, key string)
	Clear(ctx context.Context)
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}

// SettingsKey returns the cache key for a location's settings.
func SettingsKey(locationID string) string {
	return "settings:" + locationID
}
