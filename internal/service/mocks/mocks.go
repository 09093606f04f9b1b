// Package mocks provides testify mocks for the service-layer
// dependencies.
package mocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/helioward/solar-crm/internal/client/http/pvcalc"
	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/generic"
)

type MockCatalogRepository struct {
	mock.Mock
}

func NewMockCatalogRepository(t *testing.T) *MockCatalogRepository {
	m := &MockCatalogRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCatalogRepository) LoadCatalog(ctx context.Context, scope string) (*model.EquipmentCatalog, error) {
	args := m.Called(ctx, scope)
	out, _ := args.Get(0).(*model.EquipmentCatalog)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) LoadCatalogByManufacturer(ctx context.Context, manufacturerID string) (*model.EquipmentCatalog, error) {
	args := m.Called(ctx, manufacturerID)
	out, _ := args.Get(0).(*model.EquipmentCatalog)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) SaveCatalog(ctx context.Context, c *model.EquipmentCatalog) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCatalogRepository) AddManufacturer(ctx context.Context, e *model.Manufacturer) (*model.Manufacturer, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) UpdateManufacturer(ctx context.Context, e *model.Manufacturer) (*model.Manufacturer, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) DeleteManufacturer(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) AddModule(ctx context.Context, e *model.SolarModule) (*model.SolarModule, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.SolarModule)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) UpdateModule(ctx context.Context, e *model.SolarModule) (*model.SolarModule, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.SolarModule)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) DeleteModule(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) AddInverter(ctx context.Context, e *model.Inverter) (*model.Inverter, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.Inverter)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) UpdateInverter(ctx context.Context, e *model.Inverter) (*model.Inverter, error) {
	args := m.Called(ctx, e)
	out, _ := args.Get(0).(*model.Inverter)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) DeleteInverter(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCatalogRepository) FindManufacturerByID(ctx context.Context, id string) (*model.Manufacturer, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) FindManufacturerByName(ctx context.Context, name, scope string) (*model.Manufacturer, error) {
	args := m.Called(ctx, name, scope)
	out, _ := args.Get(0).(*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) FindManufacturersByType(ctx context.Context, t model.EquipmentType, scope string) ([]*model.Manufacturer, error) {
	args := m.Called(ctx, t, scope)
	out, _ := args.Get(0).([]*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) FindAccessibleManufacturers(ctx context.Context, scope string) ([]*model.Manufacturer, error) {
	args := m.Called(ctx, scope)
	out, _ := args.Get(0).([]*model.Manufacturer)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) FindModulesByManufacturer(ctx context.Context, manufacturerID, scope string, req generic.PageRequest) (*generic.Page[model.SolarModule], error) {
	args := m.Called(ctx, manufacturerID, scope, req)
	out, _ := args.Get(0).(*generic.Page[model.SolarModule])
	return out, args.Error(1)
}

func (m *MockCatalogRepository) FindInvertersByManufacturer(ctx context.Context, manufacturerID, scope string, req generic.PageRequest) (*generic.Page[model.Inverter], error) {
	args := m.Called(ctx, manufacturerID, scope, req)
	out, _ := args.Get(0).(*generic.Page[model.Inverter])
	return out, args.Error(1)
}

func (m *MockCatalogRepository) ValidateConsistency(ctx context.Context, scope string) ([]model.Violation, error) {
	args := m.Called(ctx, scope)
	out, _ := args.Get(0).([]model.Violation)
	return out, args.Error(1)
}

func (m *MockCatalogRepository) RepairInconsistencies(ctx context.Context, scope string) (int, error) {
	args := m.Called(ctx, scope)
	return args.Int(0), args.Error(1)
}

type MockEquipmentReader struct {
	mock.Mock
}

func NewMockEquipmentReader(t *testing.T) *MockEquipmentReader {
	m := &MockEquipmentReader{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockEquipmentReader) FindModuleByID(ctx context.Context, id string) (*model.SolarModule, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.SolarModule)
	return out, args.Error(1)
}

func (m *MockEquipmentReader) FindInverterByID(ctx context.Context, id string) (*model.Inverter, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*model.Inverter)
	return out, args.Error(1)
}

type MockCalculator struct {
	mock.Mock
}

func NewMockCalculator(t *testing.T) *MockCalculator {
	m := &MockCalculator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCalculator) EstimateProduction(ctx context.Context, req pvcalc.ProductionRequest) (*pvcalc.ProductionResponse, error) {
	args := m.Called(ctx, req)
	out, _ := args.Get(0).(*pvcalc.ProductionResponse)
	return out, args.Error(1)
}
