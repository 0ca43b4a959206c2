// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

type MockDeliveryPricer struct {
	mock.Mock
}

func (m *MockDeliveryPricer) Aggregate(lines []model.CartLine) (decimal.Decimal, error) {
	args := m.Called(lines)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDeliveryPricer) ComputeDelivery(subtotal decimal.Decimal, cfg model.FeeConfig, in model.DeliveryInputs) (model.PricingResult, error) {
	args := m.Called(subtotal, cfg, in)
	return args.Get(0).(model.PricingResult), args.Error(1)
}

func (m *MockDeliveryPricer) QuoteBatch(ctx context.Context, reqs []model.QuoteRequest) ([]model.QuoteOutcome, error) {
	args := m.Called(ctx, reqs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuoteOutcome), args.Error(1)
}

// NewMockDeliveryPricer creates a mock that asserts its expectations when the test ends.
func NewMockDeliveryPricer(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDeliveryPricer {
	m := &MockDeliveryPricer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
