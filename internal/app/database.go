// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/circuitbreaker"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service"
)

const seedTimeout = 5 * time.Second

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	SettingsRepo           repository.StoreSettingsRepositoryInterface
	LoggingService         service.LoggingService
	SettingsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// Close disconnects from MongoDB.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}

// InitializeDatabase connects to MongoDB and creates the settings and logs repositories.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, defaults model.StoreSettings) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	settingsCB := newCircuitBreaker(cfg, "mongodb-store-settings")
	logsCB := newCircuitBreaker(cfg, "mongodb-logs")

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	settingsRepo := repository.NewStoreSettingsRepositoryWithCircuitBreaker(repository.NewStoreSettingsRepository(db), settingsCB)

	if cfg.SeedDefaults {
		if err := seedDefaultSettings(settingsRepo, defaults); err != nil {
			log.Warn().Err(err).Str("location_id", defaults.LocationID).Msg("Failed to seed default store settings")
		}
	}

	return &DatabaseComponents{
		DB:                     db,
		SettingsRepo:           settingsRepo,
		LoggingService:         service.NewLoggingService(logsRepo),
		SettingsCircuitBreaker: settingsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

func newCircuitBreaker(cfg config.DatabaseConfig, name string) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
	})
}

// seedDefaultSettings stores defaults as the first version of their location
// unless the location already has active settings.
func seedDefaultSettings(repo repository.StoreSettingsRepositoryInterface, defaults model.StoreSettings) error {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	active, err := repo.GetActive(ctx, defaults.LocationID)
	if err != nil {
		return err
	}
	if active != nil {
		return nil
	}

	seed := defaults
	seed.Hours = defaults.Hours.Clone()
	seed.UpdatedBy = "system"
	saved, err := repo.Save(ctx, seed)
	if err != nil {
		return err
	}
	log.Info().Str("location_id", saved.LocationID).Int("version", saved.Version).Msg("Seeded default store settings")
	return nil
}
