// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

// StoreSettingsRepositoryInterface defines the store settings repository operations.
// GetActive returns nil, nil when the location has no active settings.
type StoreSettingsRepositoryInterface interface {
	GetActive(ctx context.Context, locationID string) (*model.StoreSettings, error)
	Save(ctx context.Context, settings model.StoreSettings) (*model.StoreSettings, error)
	List(ctx context.Context, locationID string, limit int) ([]model.StoreSettings, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
