// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/http"
	"github.com/guttosm/storefront-service/internal/middleware"
)

// App is the wired application: the HTTP router plus the resources it holds.
type App struct {
	Router   *gin.Engine
	caches   *CacheComponents
	database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// It fails only when the configured store defaults are invalid; unreachable
// MongoDB or Redis degrade the service instead.
func InitializeApp(cfg config.Config) (*App, error) {
	InitializeLogger(cfg.Log)

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}

	caches := InitializeCache(cfg.Cache, cfg.Redis)
	dbComponents := InitializeDatabase(cfg.Database, services.Defaults)
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(services, caches, dbComponents, cfg)

	log.Info().
		Str("location_id", cfg.Store.LocationID).
		Str("fee_type", string(services.Defaults.Delivery.FeeType)).
		Str("cache_backend", caches.Backend).
		Bool("database", dbComponents != nil).
		Msg("Application initialized")

	return &App{
		Router:   http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config),
		caches:   caches,
		database: dbComponents,
	}, nil
}

// Close flushes pending audit logs and releases the cache and database.
func (a *App) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()
	a.caches.Stop()

	var errs []error
	if err := a.database.Close(ctx); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
