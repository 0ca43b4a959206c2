// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

type MockStoreSettingsRepositoryInterface struct {
	mock.Mock
}

func (m *MockStoreSettingsRepositoryInterface) GetActive(ctx context.Context, locationID string) (*model.StoreSettings, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreSettings), args.Error(1)
}

func (m *MockStoreSettingsRepositoryInterface) Save(ctx context.Context, settings model.StoreSettings) (*model.StoreSettings, error) {
	args := m.Called(ctx, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.StoreSettings), args.Error(1)
}

func (m *MockStoreSettingsRepositoryInterface) List(ctx context.Context, locationID string, limit int) ([]model.StoreSettings, error) {
	args := m.Called(ctx, locationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreSettings), args.Error(1)
}

// NewMockStoreSettingsRepositoryInterface creates a mock that asserts its expectations when the test ends.
func NewMockStoreSettingsRepositoryInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockStoreSettingsRepositoryInterface {
	m := &MockStoreSettingsRepositoryInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
