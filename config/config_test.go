package config

import (
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
		assert.True(t, cfg.Server.EnableIdempotency)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Log.Pretty)
		assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
		assert.Equal(t, 1000, cfg.Cache.Size)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
		assert.Equal(t, "storefront", cfg.Redis.KeyPrefix)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, "storefront", cfg.Database.DatabaseName)
		assert.Equal(t, "flat", cfg.Delivery.FeeType)
		assert.True(t, cfg.Delivery.FlatFee.Equal(decimal.RequireFromString("4.99")))
		assert.True(t, cfg.Delivery.FreeDeliveryThreshold.Equal(decimal.RequireFromString("50")))
		assert.Equal(t, "default", cfg.Store.LocationID)
		assert.Equal(t, DefaultStoreHours, cfg.Store.Hours)
		assert.Equal(t, 100, cfg.Batch.MaxQuotes)
		assert.Equal(t, 8, cfg.Batch.Concurrency)
	})

	t.Run("loads values from environment", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("PORT", "9090")
		_ = os.Setenv("RATE_LIMIT", "50")
		_ = os.Setenv("RATE_WINDOW", "30s")
		_ = os.Setenv("REQUEST_TIMEOUT", "5s")
		_ = os.Setenv("ADMIN_API_KEYS", "key1,key2")
		_ = os.Setenv("CACHE_BACKEND", "Redis")
		_ = os.Setenv("CACHE_SIZE", "500")
		_ = os.Setenv("CACHE_TTL", "10m")
		_ = os.Setenv("REDIS_ADDR", "redis:6379")
		_ = os.Setenv("REDIS_DB", "2")
		_ = os.Setenv("DELIVERY_FEE_TYPE", "PER_MILE")
		_ = os.Setenv("DELIVERY_PER_MILE_FEE", "2.25")
		_ = os.Setenv("DELIVERY_FREE_THRESHOLD", "99")
		_ = os.Setenv("STORE_LOCATION_ID", "store-1")
		_ = os.Setenv("STORE_HOURS", "Monday=9:00 AM - 5:00 PM; Sat = 10:00 AM - 2:00 AM ;Sunday=")
		_ = os.Setenv("BATCH_MAX_QUOTES", "25")
		_ = os.Setenv("LOG_PRETTY", "true")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, 50, cfg.Server.RateLimit)
		assert.Equal(t, 30*time.Second, cfg.Server.RateWindow)
		assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
		assert.True(t, cfg.Server.AdminAPIKeys["key1"])
		assert.True(t, cfg.Server.AdminAPIKeys["key2"])
		assert.Equal(t, CacheBackendRedis, cfg.Cache.Backend)
		assert.Equal(t, 500, cfg.Cache.Size)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.Equal(t, 2, cfg.Redis.DB)
		assert.Equal(t, "per_mile", cfg.Delivery.FeeType)
		assert.True(t, cfg.Delivery.PerMileFee.Equal(decimal.RequireFromString("2.25")))
		assert.True(t, cfg.Delivery.FreeDeliveryThreshold.Equal(decimal.NewFromInt(99)))
		assert.Equal(t, "store-1", cfg.Store.LocationID)
		assert.Equal(t, map[string]string{
			"Monday": "9:00 AM - 5:00 PM",
			"Sat":    "10:00 AM - 2:00 AM",
		}, cfg.Store.Hours)
		assert.Equal(t, 25, cfg.Batch.MaxQuotes)
		assert.True(t, cfg.Log.Pretty)
	})

	t.Run("handles invalid values gracefully", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("RATE_LIMIT", "invalid")
		_ = os.Setenv("MONGODB_ENABLED", "invalid")
		_ = os.Setenv("RATE_WINDOW", "invalid")
		_ = os.Setenv("CACHE_BACKEND", "memcached")
		_ = os.Setenv("DELIVERY_FLAT_FEE", "free")
		_ = os.Setenv("DELIVERY_PER_ITEM_FEE", "-1")
		_ = os.Setenv("STORE_HOURS", "Monday 9-5")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, 100, cfg.Server.RateLimit)
		assert.False(t, cfg.Database.Enabled)
		assert.Equal(t, time.Minute, cfg.Server.RateWindow)
		assert.Equal(t, CacheBackendMemory, cfg.Cache.Backend)
		assert.True(t, cfg.Delivery.FlatFee.Equal(decimal.RequireFromString("4.99")))
		assert.True(t, cfg.Delivery.PerItemFee.Equal(decimal.RequireFromString("0.50")))
		assert.Equal(t, DefaultStoreHours, cfg.Store.Hours)
	})

	t.Run("parses API keys with whitespace", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("ADMIN_API_KEYS", " key1 , key2 , key3 ")
		defer os.Clearenv()

		cfg := Load()

		assert.True(t, cfg.Server.AdminAPIKeys["key1"])
		assert.True(t, cfg.Server.AdminAPIKeys["key2"])
		assert.True(t, cfg.Server.AdminAPIKeys["key3"])
	})

	t.Run("returns nil for empty API keys", func(t *testing.T) {
		os.Clearenv()

		cfg := Load()

		assert.Nil(t, cfg.Server.AdminAPIKeys)
	})

	t.Run("appends CORS origins to defaults", func(t *testing.T) {
		os.Clearenv()
		_ = os.Setenv("CORS_ORIGINS", "https://shop.example.com, ")
		defer os.Clearenv()

		cfg := Load()

		assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000", "https://shop.example.com"}, cfg.Server.CORSOrigins)
	})
}

func TestParseStoreHours_DoesNotShareDefaults(t *testing.T) {
	hours := parseStoreHours("")
	hours["Monday"] = "closed for inventory"

	assert.Equal(t, "10:00 AM - 8:00 PM", DefaultStoreHours["Monday"])
}
