package mocks

import (
	"context"

	"github.com/blacdimirr/traccarsavekid/console/api"

	"github.com/stretchr/testify/mock"
)

type MockApiClient struct {
	mock.Mock
}

func (m *MockApiClient) ListChildren(ctx context.Context) ([]api.Child, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Child), args.Error(1)
}

func (m *MockApiClient) GetChild(ctx context.Context, childId int64) (api.Child, error) {
	args := m.Called(ctx, childId)
	return args.Get(0).(api.Child), args.Error(1)
}

func (m *MockApiClient) GetChildByDevice(ctx context.Context, deviceId int64) (api.Child, error) {
	args := m.Called(ctx, deviceId)
	return args.Get(0).(api.Child), args.Error(1)
}

func (m *MockApiClient) AddChild(ctx context.Context, child api.Child) (api.Child, error) {
	args := m.Called(ctx, child)
	return args.Get(0).(api.Child), args.Error(1)
}

func (m *MockApiClient) UpdateChild(ctx context.Context, child api.Child) (api.Child, error) {
	args := m.Called(ctx, child)
	return args.Get(0).(api.Child), args.Error(1)
}

func (m *MockApiClient) DeleteChild(ctx context.Context, childId int64) error {
	args := m.Called(ctx, childId)
	return args.Error(0)
}

func (m *MockApiClient) ListDevices(ctx context.Context) ([]api.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]api.Device), args.Error(1)
}
