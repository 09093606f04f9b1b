// Package mocks provides testify mocks for the catalog repository's
// leaf store interfaces.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/generic"
)

type MockManufacturerStore struct {
	mock.Mock
}

func NewMockManufacturerStore(t *testing.T) *MockManufacturerStore {
	m := &MockManufacturerStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockManufacturerStore) Create(ctx context.Context, e *model.Manufacturer) (*model.Manufacturer, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockManufacturerStore) FindByID(ctx context.Context, id string) (*model.Manufacturer, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockManufacturerStore) Find(ctx context.Context, f model.ManufacturerFilter) ([]*model.Manufacturer, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockManufacturerStore) Update(ctx context.Context, e *model.Manufacturer) (*model.Manufacturer, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockManufacturerStore) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockManufacturerStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSolarModuleStore struct {
	mock.Mock
}

func NewMockSolarModuleStore(t *testing.T) *MockSolarModuleStore {
	m := &MockSolarModuleStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockSolarModuleStore) Create(ctx context.Context, e *model.SolarModule) (*model.SolarModule, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.SolarModule)
	return out, args.Error(1)
}

func (m *MockSolarModuleStore) FindByID(ctx context.Context, id string) (*model.SolarModule, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.SolarModule)
	return out, args.Error(1)
}

func (m *MockSolarModuleStore) Find(ctx context.Context, f model.SolarModuleFilter) ([]*model.SolarModule, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]*model.SolarModule)
	return out, args.Error(1)
}

func (m *MockSolarModuleStore) FindWithPagination(ctx context.Context, f model.SolarModuleFilter, req generic.PageRequest) (*generic.Page[model.SolarModule], error) {
	args := m.Called(ctx, f, req)
	out, _ := args.Get(0).(*generic.Page[model.SolarModule])
	return out, args.Error(1)
}

func (m *MockSolarModuleStore) Update(ctx context.Context, e *model.SolarModule) (*model.SolarModule, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.SolarModule)
	return out, args.Error(1)
}

func (m *MockSolarModuleStore) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockSolarModuleStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockInverterStore struct {
	mock.Mock
}

func NewMockInverterStore(t *testing.T) *MockInverterStore {
	m := &MockInverterStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockInverterStore) Create(ctx context.Context, e *model.Inverter) (*model.Inverter, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.Inverter)
	return out, args.Error(1)
}

func (m *MockInverterStore) FindByID(ctx context.Context, id string) (*model.Inverter, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Inverter)
	return out, args.Error(1)
}

func (m *MockInverterStore) Find(ctx context.Context, f model.InverterFilter) ([]*model.Inverter, error) {
	args := m.Called(ctx, f)
	out, _ := args.Get(0).([]*model.Inverter)
	return out, args.Error(1)
}

func (m *MockInverterStore) FindWithPagination(ctx context.Context, f model.InverterFilter, req generic.PageRequest) (*generic.Page[model.Inverter], error) {
	args := m.Called(ctx, f, req)
	out, _ := args.Get(0).(*generic.Page[model.Inverter])
	return out, args.Error(1)
}

func (m *MockInverterStore) Update(ctx context.Context, e *model.Inverter) (*model.Inverter, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.Inverter)
	return out, args.Error(1)
}

func (m *MockInverterStore) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockInverterStore) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
