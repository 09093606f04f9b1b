package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/platform/logger"
	"github.com/helioward/solar-crm/internal/repository/generic"
)

// CatalogRepository is the catalog-level persistence surface this
// service consumes; internal/repository/catalog produces it.
type CatalogRepository interface {
	LoadCatalog(ctx context.Context, scope string) (*model.EquipmentCatalog, error)
	LoadCatalogByManufacturer(ctx context.Context, manufacturerID string) (*model.EquipmentCatalog, error)
	SaveCatalog(ctx context.Context, c *model.EquipmentCatalog) error

	AddManufacturer(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error)
	UpdateManufacturer(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error)
	DeleteManufacturer(ctx context.Context, id string) error
	AddModule(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error)
	UpdateModule(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error)
	DeleteModule(ctx context.Context, id string) error
	AddInverter(ctx context.Context, i *model.Inverter) (*model.Inverter, error)
	UpdateInverter(ctx context.Context, i *model.Inverter) (*model.Inverter, error)
	DeleteInverter(ctx context.Context, id string) error

	FindManufacturerByID(ctx context.Context, id string) (*model.Manufacturer, error)
	FindManufacturerByName(ctx context.Context, name, scope string) (*model.Manufacturer, error)
	FindManufacturersByType(ctx context.Context, t model.EquipmentType, scope string) ([]*model.Manufacturer, error)
	FindAccessibleManufacturers(ctx context.Context, scope string) ([]*model.Manufacturer, error)
	FindModulesByManufacturer(ctx context.Context, manufacturerID, scope string, req generic.PageRequest) (*generic.Page[model.SolarModule], error)
	FindInvertersByManufacturer(ctx context.Context, manufacturerID, scope string, req generic.PageRequest) (*generic.Page[model.Inverter], error)

	ValidateConsistency(ctx context.Context, scope string) ([]model.Violation, error)
	RepairInconsistencies(ctx context.Context, scope string) (int, error)
}

type service struct {
	repo         CatalogRepository
	readTimeout  time.Duration
	writeTimeout time.Duration
}

func NewCatalogService(
	repo CatalogRepository,
	readTimeout time.Duration,
	writeTimeout time.Duration,
) *service {
	return &service{
		repo:         repo,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
	}
}

func (s *service) AddManufacturer(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error) {
	const op = "catalog.service.AddManufacturer"
	log := logger.With(
		logger.String("name", m.Name),
		logger.String("scope", m.Scope),
	)

	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		log.Error(ctx, "validation: empty manufacturer name")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("name must be non-empty"))
	}
	if m.Scope == "" {
		m.Scope = model.ScopePublic
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	out, err := s.repo.AddManufacturer(ctx, m)
	if err != nil {
		log.Error(ctx, "repository add manufacturer", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) UpdateManufacturer(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error) {
	const op = "catalog.service.UpdateManufacturer"
	log := logger.With(logger.String("manufacturer_id", m.ID))

	if strings.TrimSpace(m.ID) == "" {
		log.Error(ctx, "validation: empty manufacturer id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		log.Error(ctx, "validation: empty manufacturer name")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("name must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	out, err := s.repo.UpdateManufacturer(ctx, m)
	if err != nil {
		log.Error(ctx, "repository update manufacturer", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) DeleteManufacturer(ctx context.Context, id string) error {
	const op = "catalog.service.DeleteManufacturer"
	log := logger.With(logger.String("manufacturer_id", id))

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty manufacturer id")
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	if err := s.repo.DeleteManufacturer(ctx, id); err != nil {
		log.Error(ctx, "repository delete manufacturer", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) validateEquipment(manufacturerID, modelID string) error {
	if strings.TrimSpace(manufacturerID) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("manufacturer id must be non-empty"))
	}
	if strings.TrimSpace(modelID) == "" {
		return errors.Join(model.ErrInvalidArgument, errors.New("model must be non-empty"))
	}
	return nil
}

func (s *service) AddModule(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error) {
	const op = "catalog.service.AddModule"
	log := logger.With(
		logger.String("model", m.Model),
		logger.String("manufacturer_id", m.ManufacturerID),
	)

	m.Model = strings.TrimSpace(m.Model)
	if err := s.validateEquipment(m.ManufacturerID, m.Model); err != nil {
		log.Error(ctx, "validation failed", logger.ErrorF(err))
		return nil, err
	}
	if m.NominalPowerW <= 0 {
		log.Error(ctx, "validation: non-positive nominal power")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("nominal power must be positive"))
	}
	if m.Scope == "" {
		m.Scope = model.ScopePublic
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	out, err := s.repo.AddModule(ctx, m)
	if err != nil {
		log.Error(ctx, "repository add module", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) UpdateModule(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error) {
	const op = "catalog.service.UpdateModule"
	log := logger.With(logger.String("module_id", m.ID))

	if strings.TrimSpace(m.ID) == "" {
		log.Error(ctx, "validation: empty module id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	m.Model = strings.TrimSpace(m.Model)
	if err := s.validateEquipment(m.ManufacturerID, m.Model); err != nil {
		log.Error(ctx, "validation failed", logger.ErrorF(err))
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	out, err := s.repo.UpdateModule(ctx, m)
	if err != nil {
		log.Error(ctx, "repository update module", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) DeleteModule(ctx context.Context, id string) error {
	const op = "catalog.service.DeleteModule"
	log := logger.With(logger.String("module_id", id))

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty module id")
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	if err := s.repo.DeleteModule(ctx, id); err != nil {
		log.Error(ctx, "repository delete module", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) AddInverter(ctx context.Context, i *model.Inverter) (*model.Inverter, error) {
	const op = "catalog.service.AddInverter"
	log := logger.With(
		logger.String("model", i.Model),
		logger.String("manufacturer_id", i.ManufacturerID),
	)

	i.Model = strings.TrimSpace(i.Model)
	if err := s.validateEquipment(i.ManufacturerID, i.Model); err != nil {
		log.Error(ctx, "validation failed", logger.ErrorF(err))
		return nil, err
	}
	if i.Efficiency <= 0 || i.Efficiency > 1 {
		log.Error(ctx, "validation: efficiency out of range")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("efficiency must be in (0, 1]"))
	}
	if i.Scope == "" {
		i.Scope = model.ScopePublic
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	out, err := s.repo.AddInverter(ctx, i)
	if err != nil {
		log.Error(ctx, "repository add inverter", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) UpdateInverter(ctx context.Context, i *model.Inverter) (*model.Inverter, error) {
	const op = "catalog.service.UpdateInverter"
	log := logger.With(logger.String("inverter_id", i.ID))

	if strings.TrimSpace(i.ID) == "" {
		log.Error(ctx, "validation: empty inverter id")
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}
	i.Model = strings.TrimSpace(i.Model)
	if err := s.validateEquipment(i.ManufacturerID, i.Model); err != nil {
		log.Error(ctx, "validation failed", logger.ErrorF(err))
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	out, err := s.repo.UpdateInverter(ctx, i)
	if err != nil {
		log.Error(ctx, "repository update inverter", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) DeleteInverter(ctx context.Context, id string) error {
	const op = "catalog.service.DeleteInverter"
	log := logger.With(logger.String("inverter_id", id))

	id = strings.TrimSpace(id)
	if id == "" {
		log.Error(ctx, "validation: empty inverter id")
		return errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	if err := s.repo.DeleteInverter(ctx, id); err != nil {
		log.Error(ctx, "repository delete inverter", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Catalog(ctx context.Context, scope string) (*model.EquipmentCatalog, error) {
	const op = "catalog.service.Catalog"

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	c, err := s.repo.LoadCatalog(ctx, scope)
	if err != nil {
		logger.Error(ctx, "repository load catalog", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (s *service) ManufacturerByID(ctx context.Context, id string) (*model.Manufacturer, error) {
	const op = "catalog.service.ManufacturerByID"

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	m, err := s.repo.FindManufacturerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

func (s *service) ManufacturerByName(ctx context.Context, name, scope string) (*model.Manufacturer, error) {
	const op = "catalog.service.ManufacturerByName"

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("name must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	m, err := s.repo.FindManufacturerByName(ctx, name, scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

func (s *service) ManufacturersByType(ctx context.Context, t model.EquipmentType, scope string) ([]*model.Manufacturer, error) {
	const op = "catalog.service.ManufacturersByType"

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	out, err := s.repo.FindManufacturersByType(ctx, t, scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) AccessibleManufacturers(ctx context.Context, scope string) ([]*model.Manufacturer, error) {
	const op = "catalog.service.AccessibleManufacturers"

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	out, err := s.repo.FindAccessibleManufacturers(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) ModulesByManufacturer(ctx context.Context, manufacturerID, scope string, req generic.PageRequest) (*generic.Page[model.SolarModule], error) {
	const op = "catalog.service.ModulesByManufacturer"

	if strings.TrimSpace(manufacturerID) == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("manufacturer id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	out, err := s.repo.FindModulesByManufacturer(ctx, manufacturerID, scope, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) InvertersByManufacturer(ctx context.Context, manufacturerID, scope string, req generic.PageRequest) (*generic.Page[model.Inverter], error) {
	const op = "catalog.service.InvertersByManufacturer"

	if strings.TrimSpace(manufacturerID) == "" {
		return nil, errors.Join(model.ErrInvalidArgument, errors.New("manufacturer id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	out, err := s.repo.FindInvertersByManufacturer(ctx, manufacturerID, scope, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) ValidateConsistency(ctx context.Context, scope string) ([]model.Violation, error) {
	const op = "catalog.service.ValidateConsistency"

	ctx, cancel := context.WithTimeout(ctx, s.readTimeout)
	defer cancel()

	out, err := s.repo.ValidateConsistency(ctx, scope)
	if err != nil {
		logger.Error(ctx, "repository validate consistency", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

func (s *service) RepairInconsistencies(ctx context.Context, scope string) (int, error) {
	const op = "catalog.service.RepairInconsistencies"

	ctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
	defer cancel()

	n, err := s.repo.RepairInconsistencies(ctx, scope)
	if err != nil {
		logger.Error(ctx, "repository repair inconsistencies", logger.ErrorF(err))
		return n, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}
