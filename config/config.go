// Package config provides configuration management for the storefront service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Delivery DeliveryConfig
	Store    StoreConfig
	Batch    BatchConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	AdminRateLimit    int
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	AdminAPIKeys      map[string]bool
	EnableIdempotency bool
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// CacheConfig holds settings cache configuration.
type CacheConfig struct {
	Backend string
	Size    int
	TTL     time.Duration
}

// RedisConfig holds the Redis connection used by the redis cache backend.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// SeedDefaults stores the configured defaults as version 1 of the default
	// location when it has no settings yet.
	SeedDefaults bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// DeliveryConfig holds the fee configuration served when a location has no stored settings.
type DeliveryConfig struct {
	FeeType               string
	FlatFee               decimal.Decimal
	PerMileFee            decimal.Decimal
	PerItemFee            decimal.Decimal
	FreeDeliveryThreshold decimal.Decimal
}

// StoreConfig holds the default location and its opening hours. Hours are keyed
// by day name as given, e.g. "Monday" or "Sat".
type StoreConfig struct {
	LocationID string
	Name       string
	Hours      map[string]string
}

// BatchConfig limits batch quoting.
type BatchConfig struct {
	MaxQuotes   int
	Concurrency int
}

// DefaultStoreHours is used when STORE_HOURS is unset or unparsable.
var DefaultStoreHours = map[string]string{
	"Monday":    "10:00 AM - 8:00 PM",
	"Tuesday":   "10:00 AM - 8:00 PM",
	"Wednesday": "10:00 AM - 8:00 PM",
	"Thursday":  "10:00 AM - 8:00 PM",
	"Friday":    "10:00 AM - 8:00 PM",
	"Saturday":  "11:00 AM - 6:00 PM",
	"Sunday":    "11:00 AM - 6:00 PM",
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			AdminRateLimit:    getEnvInt("ADMIN_RATE_LIMIT", 20),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			ShutdownTimeout:   getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
			AdminAPIKeys:      parseAPIKeys(os.Getenv("ADMIN_API_KEYS")),
			EnableIdempotency: getEnvBool("IDEMPOTENCY_ENABLED", true),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Cache: CacheConfig{
			Backend: parseCacheBackend(os.Getenv("CACHE_BACKEND")),
			Size:    getEnvInt("CACHE_SIZE", 1000),
			TTL:     getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Redis: RedisConfig{
			Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Password:  getEnv("REDIS_PASSWORD", ""),
			DB:        getEnvInt("REDIS_DB", 0),
			KeyPrefix: getEnv("REDIS_KEY_PREFIX", "storefront"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "storefront"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			SeedDefaults:                   getEnvBool("MONGODB_SEED_DEFAULTS", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Delivery: DeliveryConfig{
			FeeType:               strings.ToLower(getEnv("DELIVERY_FEE_TYPE", "flat")),
			FlatFee:               getEnvDecimal("DELIVERY_FLAT_FEE", decimal.RequireFromString("4.99")),
			PerMileFee:            getEnvDecimal("DELIVERY_PER_MILE_FEE", decimal.RequireFromString("1.50")),
			PerItemFee:            getEnvDecimal("DELIVERY_PER_ITEM_FEE", decimal.RequireFromString("0.50")),
			FreeDeliveryThreshold: getEnvDecimal("DELIVERY_FREE_THRESHOLD", decimal.RequireFromString("50.00")),
		},
		Store: StoreConfig{
			LocationID: getEnv("STORE_LOCATION_ID", "default"),
			Name:       getEnv("STORE_NAME", "Storefront"),
			Hours:      parseStoreHours(os.Getenv("STORE_HOURS")),
		},
		Batch: BatchConfig{
			MaxQuotes:   getEnvInt("BATCH_MAX_QUOTES", 100),
			Concurrency: getEnvInt("BATCH_CONCURRENCY", 8),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// getEnvDecimal rejects negative amounts along with unparsable ones.
func getEnvDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil && !d.IsNegative() {
			return d
		}
	}
	return defaultValue
}

func parseCacheBackend(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), CacheBackendRedis) {
		return CacheBackendRedis
	}
	return CacheBackendMemory
}

// parseStoreHours reads "Monday=10:00 AM - 8:00 PM;Sat=11:00 AM - 6:00 PM". An
// empty value after "=" marks the day closed. Malformed input yields DefaultStoreHours.
func parseStoreHours(s string) map[string]string {
	if strings.TrimSpace(s) == "" {
		return copyHours(DefaultStoreHours)
	}

	hours := make(map[string]string)
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		day, value, ok := strings.Cut(part, "=")
		day = strings.TrimSpace(day)
		if !ok || day == "" {
			return copyHours(DefaultStoreHours)
		}
		if value = strings.TrimSpace(value); value != "" {
			hours[day] = value
		}
	}
	return hours
}

func copyHours(h map[string]string) map[string]string {
	out := make(map[string]string, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
