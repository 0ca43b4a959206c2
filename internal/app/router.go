// Package app provides router configuration.
package app

import (
	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/http"
	"github.com/guttosm/storefront-service/internal/middleware"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
// caches and dbComponents may be nil.
func InitializeRouter(
	services *ServiceComponents,
	caches *CacheComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var settingsRepo repository.StoreSettingsRepositoryInterface
	var loggingService service.LoggingService
	if dbComponents != nil {
		settingsRepo = dbComponents.SettingsRepo
		loggingService = dbComponents.LoggingService
	}

	var settingsOpts []service.SettingsOption
	if caches != nil && caches.Settings != nil {
		settingsOpts = append(settingsOpts, service.WithSettingsCache(caches.Settings))
	}
	settingsService := service.NewSettingsService(settingsRepo, services.Defaults, settingsOpts...)

	handler := http.NewHandler(
		services.Pricer,
		settingsService,
		http.WithDefaultLocation(cfg.Store.LocationID),
		http.WithMaxBatchSize(cfg.Batch.MaxQuotes),
	)
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		healthHandler.RegisterCircuitBreaker("mongodb_store_settings", dbComponents.SettingsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
	}

	var idempotencyStore middleware.IdempotencyStore
	if caches != nil && caches.Redis != nil {
		if rc, ok := caches.Settings.(*cache.RedisCache); ok {
			healthHandler.RegisterChecker("redis", http.HealthCheckFunc(rc.Ping))
		}
		idempotencyStore = middleware.NewRedisIdempotencyStore(caches.Redis, cfg.Redis.KeyPrefix, middleware.IdempotencyKeyTTL)
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		AdminRateLimit:    cfg.Server.AdminRateLimit,
		RequestTimeout:    cfg.Server.RequestTimeout,
		APIKeys:           cfg.Server.AdminAPIKeys,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		IdempotencyStore:  idempotencyStore,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
