package service

import (
	"context"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

const (
	// DefaultMaxBatchSize caps the number of quotes in one QuoteBatch call.
	DefaultMaxBatchSize = 100
	// DefaultBatchConcurrency is the number of quotes priced in parallel.
	DefaultBatchConcurrency = 8
)

// DeliveryPricer defines the delivery pricing operations.
type DeliveryPricer interface {
	Aggregate(lines []model.CartLine) (decimal.Decimal, error)
	ComputeDelivery(subtotal decimal.Decimal, cfg model.FeeConfig, in model.DeliveryInputs) (model.PricingResult, error)
	QuoteBatch(ctx context.Context, reqs []model.QuoteRequest) ([]model.QuoteOutcome, error)
}

// PricingOption configures a DeliveryPricingService.
type PricingOption func(*DeliveryPricingService)

// DeliveryPricingService implements DeliveryPricer. It holds no mutable state
// and is safe for concurrent use.
type DeliveryPricingService struct {
	maxBatchSize     int
	batchConcurrency int
}

// NewDeliveryPricingService creates a DeliveryPricingService with the given options.
func NewDeliveryPricingService(opts ...PricingOption) *DeliveryPricingService {
	s := &DeliveryPricingService{
		maxBatchSize:     DefaultMaxBatchSize,
		batchConcurrency: DefaultBatchConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithMaxBatchSize limits how many quotes QuoteBatch accepts.
func WithMaxBatchSize(n int) PricingOption {
	return func(s *DeliveryPricingService) {
		if n > 0 {
			s.maxBatchSize = n
		}
	}
}

// WithBatchConcurrency sets how many quotes QuoteBatch prices at once.
func WithBatchConcurrency(n int) PricingOption {
	return func(s *DeliveryPricingService) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// Aggregate computes a cart subtotal. See the package level Aggregate.
func (s *DeliveryPricingService) Aggregate(lines []model.CartLine) (decimal.Decimal, error) {
	return Aggregate(lines)
}

// ComputeDelivery prices delivery for a subtotal. See the package level ComputeDelivery.
func (s *DeliveryPricingService) ComputeDelivery(subtotal decimal.Decimal, cfg model.FeeConfig, in model.DeliveryInputs) (model.PricingResult, error) {
	return ComputeDelivery(subtotal, cfg, in)
}

// QuoteBatch prices every request concurrently and returns outcomes in request order.
// A request that fails validation gets its error in its outcome; only context
// cancellation fails the whole batch.
func (s *DeliveryPricingService) QuoteBatch(ctx context.Context, reqs []model.QuoteRequest) ([]model.QuoteOutcome, error) {
	if len(reqs) == 0 {
		return nil, invalidInput("quotes", "must contain at least one quote")
	}
	if len(reqs) > s.maxBatchSize {
		return nil, invalidInput("quotes", "must contain at most %d quotes", s.maxBatchSize)
	}

	outcomes := make([]model.QuoteOutcome, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)

	for i, req := range reqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i].ID = req.ID
			result, err := ComputeDelivery(req.Subtotal, req.Config, req.Inputs)
			if err != nil {
				outcomes[i].Err = err
				return nil
			}
			outcomes[i].Result = &result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// ComputeDelivery prices delivery for an order with the given subtotal.
//
// A subtotal at or above the free delivery threshold always ships free, and the
// distance and item count are then not required. Otherwise the fee follows
// cfg.FeeType and is rounded half-up to cents. Combined fees are the sum of the
// rounded per-mile and per-item parts.
func ComputeDelivery(subtotal decimal.Decimal, cfg model.FeeConfig, in model.DeliveryInputs) (model.PricingResult, error) {
	if err := ValidateFeeConfig(cfg); err != nil {
		return model.PricingResult{}, err
	}
	if subtotal.IsNegative() {
		return model.PricingResult{}, invalidInput("subtotal", "must not be negative")
	}

	subtotal = subtotal.Round(MoneyPlaces)
	result := model.PricingResult{
		Subtotal:              subtotal,
		DeliveryFee:           decimal.Zero,
		FeeType:               cfg.FeeType,
		FreeDeliveryRemaining: decimal.Zero,
	}

	if subtotal.GreaterThanOrEqual(cfg.FreeDeliveryThreshold) {
		result.FreeDelivery = true
		result.Total = subtotal
		return result, nil
	}

	fee, err := deliveryFee(cfg, in)
	if err != nil {
		return model.PricingResult{}, err
	}

	result.DeliveryFee = fee
	result.Total = subtotal.Add(fee)
	result.FreeDeliveryRemaining = cfg.FreeDeliveryThreshold.Sub(subtotal).Round(MoneyPlaces)
	return result, nil
}

func deliveryFee(cfg model.FeeConfig, in model.DeliveryInputs) (decimal.Decimal, error) {
	switch cfg.FeeType {
	case model.FeeTypeFlat:
		return cfg.FlatFee.Round(MoneyPlaces), nil
	case model.FeeTypePerMile:
		return mileageFee(cfg, in)
	case model.FeeTypePerItem:
		return itemFee(cfg, in)
	case model.FeeTypeCombined:
		miles, err := mileageFee(cfg, in)
		if err != nil {
			return decimal.Zero, err
		}
		items, err := itemFee(cfg, in)
		if err != nil {
			return decimal.Zero, err
		}
		return miles.Add(items), nil
	}
	return decimal.Zero, invalidConfig("fee_type", "unsupported fee type %q", cfg.FeeType)
}

func mileageFee(cfg model.FeeConfig, in model.DeliveryInputs) (decimal.Decimal, error) {
	if in.DistanceMiles == nil {
		return decimal.Zero, invalidInput("distance_miles", "is required for fee type %s", cfg.FeeType)
	}
	if in.DistanceMiles.IsNegative() {
		return decimal.Zero, invalidInput("distance_miles", "must not be negative")
	}
	return cfg.PerMileFee.Mul(*in.DistanceMiles).Round(MoneyPlaces), nil
}

func itemFee(cfg model.FeeConfig, in model.DeliveryInputs) (decimal.Decimal, error) {
	if in.ItemCount == nil {
		return decimal.Zero, invalidInput("item_count", "is required for fee type %s", cfg.FeeType)
	}
	if *in.ItemCount < 0 {
		return decimal.Zero, invalidInput("item_count", "must not be negative")
	}
	return cfg.PerItemFee.Mul(decimal.NewFromInt(int64(*in.ItemCount))).Round(MoneyPlaces), nil
}

// ValidateFeeConfig checks the fee type and the amounts the fee type uses.
// Amounts of inactive formulas are not checked.
func ValidateFeeConfig(cfg model.FeeConfig) error {
	if !cfg.FeeType.Valid() {
		return invalidConfig("fee_type", "unsupported fee type %q", cfg.FeeType)
	}
	if cfg.FreeDeliveryThreshold.IsNegative() {
		return invalidConfig("free_delivery_threshold", "must not be negative")
	}

	checks := []struct {
		active bool
		field  string
		value  decimal.Decimal
	}{
		{cfg.FeeType == model.FeeTypeFlat, "flat_fee", cfg.FlatFee},
		{cfg.FeeType.NeedsDistance(), "per_mile_fee", cfg.PerMileFee},
		{cfg.FeeType.NeedsItemCount(), "per_item_fee", cfg.PerItemFee},
	}
	for _, c := range checks {
		if c.active && c.value.IsNegative() {
			return invalidConfig(c.field, "must not be negative, got %s", c.value.String())
		}
	}
	return nil
}
