package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/mocks"
	"github.com/guttosm/storefront-service/internal/service"
	"github.com/guttosm/storefront-service/internal/service/cache"
)

func defaultSettings() model.StoreSettings {
	return model.StoreSettings{
		Name: "Default Store",
		Delivery: model.FeeConfig{
			FeeType:               model.FeeTypeFlat,
			FlatFee:               decimal.RequireFromString("5.00"),
			FreeDeliveryThreshold: decimal.RequireFromString("50.00"),
		},
		Hours: model.WeeklyHours{
			model.Monday: "10:00 AM - 8:00 PM",
		},
	}
}

func storedSettings(loc string, version int) *model.StoreSettings {
	s := defaultSettings()
	s.LocationID = loc
	s.Name = "Stored Store"
	s.Version = version
	s.Active = true
	return &s
}

func TestSettingsService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored settings", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(storedSettings("store-1", 3), nil)

		svc := service.NewSettingsService(repo, defaultSettings())
		got, err := svc.Get(ctx, "store-1")
		require.NoError(t, err)
		assert.Equal(t, "Stored Store", got.Name)
		assert.Equal(t, 3, got.Version)
	})

	t.Run("falls back to defaults", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-2").Return(nil, nil)

		svc := service.NewSettingsService(repo, defaultSettings())
		got, err := svc.Get(ctx, "store-2")
		require.NoError(t, err)
		assert.Equal(t, "store-2", got.LocationID)
		assert.Equal(t, "Default Store", got.Name)
		assert.Equal(t, 0, got.Version)
	})

	t.Run("defaults without repository", func(t *testing.T) {
		svc := service.NewSettingsService(nil, defaultSettings())
		got, err := svc.Get(ctx, "store-3")
		require.NoError(t, err)
		assert.Equal(t, "store-3", got.LocationID)
		assert.Equal(t, model.FeeTypeFlat, got.Delivery.FeeType)
	})

	t.Run("defaults hours are copied", func(t *testing.T) {
		svc := service.NewSettingsService(nil, defaultSettings())
		got, err := svc.Get(ctx, "store-3")
		require.NoError(t, err)
		got.Hours[model.Tuesday] = "changed"

		again, err := svc.Get(ctx, "store-3")
		require.NoError(t, err)
		assert.NotContains(t, again.Hours, model.Tuesday)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(nil, errors.New("database error"))

		svc := service.NewSettingsService(repo, defaultSettings())
		_, err := svc.Get(ctx, "store-1")
		assert.EqualError(t, err, "database error")
	})

	t.Run("blank location", func(t *testing.T) {
		svc := service.NewSettingsService(nil, defaultSettings())
		_, err := svc.Get(ctx, "  ")
		assert.ErrorIs(t, err, service.ErrInvalidInput)
	})

	t.Run("cache serves repeated reads", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(storedSettings("store-1", 1), nil).Once()

		c := cache.NewMemoryCache(10, time.Minute)
		defer c.Stop()

		svc := service.NewSettingsService(repo, defaultSettings(), service.WithSettingsCache(c))
		for i := 0; i < 3; i++ {
			got, err := svc.Get(ctx, "store-1")
			require.NoError(t, err)
			assert.Equal(t, 1, got.Version)
		}
		assert.Equal(t, int64(2), c.Metrics().Hits)
	})

	t.Run("defaults are not cached", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(nil, nil).Twice()

		c := cache.NewMemoryCache(10, time.Minute)
		defer c.Stop()

		svc := service.NewSettingsService(repo, defaultSettings(), service.WithSettingsCache(c))
		_, _ = svc.Get(ctx, "store-1")
		_, _ = svc.Get(ctx, "store-1")
	})
}

func TestSettingsService_Update(t *testing.T) {
	ctx := context.Background()
	perMile := model.FeeConfig{
		FeeType:               model.FeeTypePerMile,
		PerMileFee:            decimal.RequireFromString("1.50"),
		FreeDeliveryThreshold: decimal.RequireFromString("75"),
	}

	t.Run("merges and saves", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(storedSettings("store-1", 2), nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(s model.StoreSettings) bool {
			return s.LocationID == "store-1" &&
				s.Name == "Stored Store" &&
				s.Delivery.FeeType == model.FeeTypePerMile &&
				s.Hours[model.Monday] == "10:00 AM - 8:00 PM" &&
				s.UpdatedBy == "admin"
		})).Return(storedSettings("store-1", 3), nil)

		svc := service.NewSettingsService(repo, defaultSettings())
		got, err := svc.Update(ctx, "store-1", model.SettingsUpdate{Delivery: &perMile}, "admin")
		require.NoError(t, err)
		assert.Equal(t, 3, got.Version)
	})

	t.Run("replaces hours and name", func(t *testing.T) {
		name := "  Uptown  "
		hours := model.WeeklyHours{model.Friday: "10:00 AM - 2:00 AM"}

		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(nil, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(s model.StoreSettings) bool {
			_, hasMonday := s.Hours[model.Monday]
			return s.Name == "Uptown" && !hasMonday && s.Hours[model.Friday] == "10:00 AM - 2:00 AM"
		})).Return(storedSettings("store-1", 1), nil)

		svc := service.NewSettingsService(repo, defaultSettings())
		_, err := svc.Update(ctx, "store-1", model.SettingsUpdate{Name: &name, Hours: hours}, "admin")
		require.NoError(t, err)
	})

	t.Run("rejects invalid fee config", func(t *testing.T) {
		bad := model.FeeConfig{FeeType: "distance"}
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(nil, nil)

		svc := service.NewSettingsService(repo, defaultSettings())
		_, err := svc.Update(ctx, "store-1", model.SettingsUpdate{Delivery: &bad}, "admin")
		assert.ErrorIs(t, err, service.ErrInvalidConfig)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects unparsable hours", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(nil, nil)

		svc := service.NewSettingsService(repo, defaultSettings())
		_, err := svc.Update(ctx, "store-1", model.SettingsUpdate{Hours: model.WeeklyHours{model.Monday: "noon till late"}}, "admin")
		var verr *service.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "hours.Monday", verr.Field)
	})

	t.Run("invalidates cache", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(storedSettings("store-1", 1), nil).Once()
		repo.On("Save", mock.Anything, mock.Anything).Return(storedSettings("store-1", 2), nil)
		repo.On("GetActive", mock.Anything, "store-1").Return(storedSettings("store-1", 2), nil).Once()

		c := cache.NewMemoryCache(10, time.Minute)
		defer c.Stop()

		svc := service.NewSettingsService(repo, defaultSettings(), service.WithSettingsCache(c))
		_, err := svc.Get(ctx, "store-1")
		require.NoError(t, err)

		_, err = svc.Update(ctx, "store-1", model.SettingsUpdate{Delivery: &perMile}, "admin")
		require.NoError(t, err)

		got, err := svc.Get(ctx, "store-1")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Version)
	})

	t.Run("save error", func(t *testing.T) {
		repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
		repo.On("GetActive", mock.Anything, "store-1").Return(nil, nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil, errors.New("write failed"))

		svc := service.NewSettingsService(repo, defaultSettings())
		_, err := svc.Update(ctx, "store-1", model.SettingsUpdate{}, "admin")
		assert.EqualError(t, err, "write failed")
	})

	t.Run("repository not configured", func(t *testing.T) {
		svc := service.NewSettingsService(nil, defaultSettings())
		_, err := svc.Update(ctx, "store-1", model.SettingsUpdate{}, "admin")
		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	})
}

func TestSettingsService_History(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"default limit", 0, service.DefaultHistoryLimit},
		{"given limit", 5, 5},
		{"capped limit", 1000, service.MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockStoreSettingsRepositoryInterface(t)
			repo.On("List", mock.Anything, "store-1", tt.wantLimit).
				Return([]model.StoreSettings{*storedSettings("store-1", 2), *storedSettings("store-1", 1)}, nil)

			svc := service.NewSettingsService(repo, defaultSettings())
			history, err := svc.History(ctx, "store-1", tt.limit)
			require.NoError(t, err)
			assert.Len(t, history, 2)
		})
	}

	t.Run("repository not configured", func(t *testing.T) {
		svc := service.NewSettingsService(nil, defaultSettings())
		_, err := svc.History(ctx, "store-1", 10)
		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	})
}
