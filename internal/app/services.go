// Package app provides service initialization.
package app

import (
	"fmt"

	"github.com/guttosm/storefront-service/config"
	"github.com/guttosm/storefront-service/internal/domain/model"
	"github.com/guttosm/storefront-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Pricer   service.DeliveryPricer
	Defaults model.StoreSettings
}

// InitializeServices builds the pricing service and the settings served to
// locations that have no stored version.
func InitializeServices(cfg config.Config) (*ServiceComponents, error) {
	defaults, err := BuildStoreDefaults(cfg)
	if err != nil {
		return nil, err
	}

	pricer := service.NewDeliveryPricingService(
		service.WithMaxBatchSize(cfg.Batch.MaxQuotes),
		service.WithBatchConcurrency(cfg.Batch.Concurrency),
	)

	return &ServiceComponents{
		Pricer:   pricer,
		Defaults: defaults,
	}, nil
}

// BuildStoreDefaults converts the delivery and store configuration into StoreSettings.
func BuildStoreDefaults(cfg config.Config) (model.StoreSettings, error) {
	feeType, ok := model.ParseFeeType(cfg.Delivery.FeeType)
	if !ok {
		return model.StoreSettings{}, fmt.Errorf("DELIVERY_FEE_TYPE: unsupported fee type %q", cfg.Delivery.FeeType)
	}

	fees := model.FeeConfig{
		FeeType:               feeType,
		FlatFee:               cfg.Delivery.FlatFee,
		PerMileFee:            cfg.Delivery.PerMileFee,
		PerItemFee:            cfg.Delivery.PerItemFee,
		FreeDeliveryThreshold: cfg.Delivery.FreeDeliveryThreshold,
	}
	if err := service.ValidateFeeConfig(fees); err != nil {
		return model.StoreSettings{}, fmt.Errorf("delivery config: %w", err)
	}

	hours, err := service.ParseWeeklyHours(cfg.Store.Hours)
	if err != nil {
		return model.StoreSettings{}, fmt.Errorf("STORE_HOURS: %w", err)
	}
	if err := service.ValidateHours(hours); err != nil {
		return model.StoreSettings{}, fmt.Errorf("STORE_HOURS: %w", err)
	}

	return model.StoreSettings{
		LocationID: cfg.Store.LocationID,
		Name:       cfg.Store.Name,
		Delivery:   fees,
		Hours:      hours,
	}, nil
}
