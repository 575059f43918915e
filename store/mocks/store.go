package mocks

import (
	"github.com/blacdimirr/traccarsavekid/store"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

// Transaction runs the closure against a nil tx so service tests exercise
// the same code path without a database.
func (m *MockStore) Transaction(fn func(tx *gorm.DB) error) error {
	args := m.Called(fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(nil)
}

func (m *MockStore) AddChild(tx *gorm.DB, child store.Child) (store.Child, error) {
	args := m.Called(tx, child)
	return args.Get(0).(store.Child), args.Error(1)
}

func (m *MockStore) UpdateChild(tx *gorm.DB, child store.Child) (store.Child, error) {
	args := m.Called(tx, child)
	return args.Get(0).(store.Child), args.Error(1)
}

func (m *MockStore) GetChild(tx *gorm.DB, childId int64) (store.Child, error) {
	args := m.Called(tx, childId)
	return args.Get(0).(store.Child), args.Error(1)
}

func (m *MockStore) GetChildByDevice(tx *gorm.DB, deviceId int64) (store.Child, error) {
	args := m.Called(tx, deviceId)
	return args.Get(0).(store.Child), args.Error(1)
}

func (m *MockStore) ListChildren(tx *gorm.DB) ([]store.Child, error) {
	args := m.Called(tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Child), args.Error(1)
}

func (m *MockStore) DeleteChild(tx *gorm.DB, childId int64) error {
	args := m.Called(tx, childId)
	return args.Error(0)
}

func (m *MockStore) AddHealthSample(tx *gorm.DB, sample store.ChildHealth) (store.ChildHealth, error) {
	args := m.Called(tx, sample)
	return args.Get(0).(store.ChildHealth), args.Error(1)
}

func (m *MockStore) LatestHealthSample(tx *gorm.DB, childId int64) (store.ChildHealth, error) {
	args := m.Called(tx, childId)
	return args.Get(0).(store.ChildHealth), args.Error(1)
}

func (m *MockStore) ListDevices(tx *gorm.DB) ([]store.Device, error) {
	args := m.Called(tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.Device), args.Error(1)
}
