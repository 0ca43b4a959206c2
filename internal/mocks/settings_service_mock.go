// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/storefront-service/internal/domain/model"
)

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context, locationID string) (model.StoreSettings, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(model.StoreSettings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, locationID string, update model.SettingsUpdate, updatedBy string) (model.StoreSettings, error) {
	args := m.Called(ctx, locationID, update, updatedBy)
	return args.Get(0).(model.StoreSettings), args.Error(1)
}

func (m *MockSettingsService) History(ctx context.Context, locationID string, limit int) ([]model.StoreSettings, error) {
	args := m.Called(ctx, locationID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StoreSettings), args.Error(1)
}

// NewMockSettingsService creates a mock that asserts its expectations when the test ends.
func NewMockSettingsService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSettingsService {
	m := &MockSettingsService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
