package service

import (
	"context"
	"strings"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/metrics"
	"github.com/guttosm/storefront-service/internal/repository"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

const (
	// DefaultHistoryLimit is used when History is called without a positive limit.
	DefaultHistoryLimit = 20
	// MaxHistoryLimit caps the number of versions History returns.
	MaxHistoryLimit = 100
)

// SettingsService provides store settings operations.
type SettingsService interface {
	Get(ctx context.Context, locationID string) (model.StoreSettings, error)
	Update(ctx context.Context, locationID string, update model.SettingsUpdate, updatedBy string) (model.StoreSettings, error)
	History(ctx context.Context, locationID string, limit int) ([]model.StoreSettings, error)
}

// SettingsOption configures a SettingsServiceImpl.
type SettingsOption func(*SettingsServiceImpl)

// SettingsServiceImpl implements SettingsService.
type SettingsServiceImpl struct {
	repo     repository.StoreSettingsRepositoryInterface
	cache    cache.Cache
	defaults model.StoreSettings
}

// NewSettingsService creates a settings service. defaults is returned for any location
// without stored settings; repo may be nil, in which case only defaults are served.
func NewSettingsService(repo repository.StoreSettingsRepositoryInterface, defaults model.StoreSettings, opts ...SettingsOption) *SettingsServiceImpl {
	s := &SettingsServiceImpl{
		repo:     repo,
		defaults: defaults,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithSettingsCache caches active settings per location.
func WithSettingsCache(c cache.Cache) SettingsOption {
	return func(s *SettingsServiceImpl) {
		s.cache = c
	}
}

// Get returns the active settings of a location, consulting the cache, then the
// repository, then the configured defaults. Defaults carry version 0 and are not cached.
func (s *SettingsServiceImpl) Get(ctx context.Context, locationID string) (model.StoreSettings, error) {
	locationID = strings.TrimSpace(locationID)
	if locationID == "" {
		return model.StoreSettings{}, invalidInput("location_id", "is required")
	}

	key := cache.SettingsKey(locationID)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	if s.repo != nil {
		stored, err := s.repo.GetActive(ctx, locationID)
		if err != nil {
			return model.StoreSettings{}, err
		}
		if stored != nil {
			s.store(ctx, key, *stored)
			return *stored, nil
		}
	}

	return s.defaultsFor(locationID), nil
}

// Update validates the merged settings and stores them as a new version.
func (s *SettingsServiceImpl) Update(ctx context.Context, locationID string, update model.SettingsUpdate, updatedBy string) (model.StoreSettings, error) {
	if s.repo == nil {
		return model.StoreSettings{}, ErrRepositoryNotConfigured
	}

	current, err := s.Get(ctx, locationID)
	if err != nil {
		return model.StoreSettings{}, err
	}

	next := current
	next.LocationID = strings.TrimSpace(locationID)
	next.UpdatedBy = updatedBy
	if update.Name != nil {
		next.Name = strings.TrimSpace(*update.Name)
	}
	if update.Delivery != nil {
		next.Delivery = *update.Delivery
	}
	if update.Hours != nil {
		next.Hours = update.Hours.Clone()
	}

	if err := ValidateFeeConfig(next.Delivery); err != nil {
		return model.StoreSettings{}, err
	}
	if err := ValidateHours(next.Hours); err != nil {
		return model.StoreSettings{}, err
	}

	saved, err := s.repo.Save(ctx, next)
	if err != nil {
		return model.StoreSettings{}, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, cache.SettingsKey(next.LocationID))
	}
	return *saved, nil
}

// History returns stored versions of a location's settings, newest first.
func (s *SettingsServiceImpl) History(ctx context.Context, locationID string, limit int) ([]model.StoreSettings, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	locationID = strings.TrimSpace(locationID)
	if locationID == "" {
		return nil, invalidInput("location_id", "is required")
	}

	switch {
	case limit <= 0:
		limit = DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		limit = MaxHistoryLimit
	}
	return s.repo.List(ctx, locationID, limit)
}

func (s *SettingsServiceImpl) defaultsFor(locationID string) model.StoreSettings {
	d := s.defaults
	d.LocationID = locationID
	d.Hours = s.defaults.Hours.Clone()
	d.Version = 0
	d.Active = true
	return d
}

func (s *SettingsServiceImpl) store(ctx context.Context, key string, settings model.StoreSettings) {
	if s.cache == nil {
		return
	}
	s.cache.Set(ctx, key, settings)
	if withMetrics, ok := s.cache.(cache.CacheWithMetrics); ok {
		m := withMetrics.Metrics()
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}
}
