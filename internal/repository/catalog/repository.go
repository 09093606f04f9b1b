// Package catalog composes the three leaf repositories and the
// EquipmentCatalog aggregate into catalog-level operations. Every
// mutation follows load → validate in memory → persist the one changed
// entity; on an invariant failure storage is never touched.
//
// There is no cross-collection transaction. Two concurrent mutations
// can both load, both pass the in-memory checks and both write; the
// unique indexes created at startup are the actual enforcement point
// for name/model uniqueness, and dangling references are picked up by
// ValidateConsistency/RepairInconsistencies.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/generic"
)

type ManufacturerStore interface {
	Create(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error)
	FindByID(ctx context.Context, id string) (*model.Manufacturer, error)
	Find(ctx context.Context, f model.ManufacturerFilter) ([]*model.Manufacturer, error)
	Update(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type SolarModuleStore interface {
	Create(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error)
	FindByID(ctx context.Context, id string) (*model.SolarModule, error)
	Find(ctx context.Context, f model.SolarModuleFilter) ([]*model.SolarModule, error)
	FindWithPagination(ctx context.Context, f model.SolarModuleFilter, req generic.PageRequest) (*generic.Page[model.SolarModule], error)
	Update(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type InverterStore interface {
	Create(ctx context.Context, i *model.Inverter) (*model.Inverter, error)
	FindByID(ctx context.Context, id string) (*model.Inverter, error)
	Find(ctx context.Context, f model.InverterFilter) ([]*model.Inverter, error)
	FindWithPagination(ctx context.Context, f model.InverterFilter, req generic.PageRequest) (*generic.Page[model.Inverter], error)
	Update(ctx context.Context, i *model.Inverter) (*model.Inverter, error)
	Exists(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Repository struct {
	manufacturers ManufacturerStore
	modules       SolarModuleStore
	inverters     InverterStore
}

func NewRepository(
	manufacturers ManufacturerStore,
	modules SolarModuleStore,
	inverters InverterStore,
) *Repository {
	return &Repository{
		manufacturers: manufacturers,
		modules:       modules,
		inverters:     inverters,
	}
}

// loadScope maps an entity's owning scope to the scope a catalog load
// should run under: public records live in the no-team view.
func loadScope(scope string) string {
	if scope == model.ScopePublic {
		return ""
	}
	return scope
}

// hasDependents checks every scope for equipment referencing the
// manufacturer. A scoped catalog load cannot see another team's
// records, so public manufacturers need this wider check: any team may
// attach equipment to them.
func (r *Repository) hasDependents(ctx context.Context, manufacturerID string) (bool, error) {
	const op = "catalog.hasDependents"

	var modules, inverters int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := r.modules.Find(gctx, model.SolarModuleFilter{AllScopes: true, ManufacturerID: manufacturerID})
		if err != nil {
			return err
		}
		modules = len(out)
		return nil
	})
	g.Go(func() error {
		out, err := r.inverters.Find(gctx, model.InverterFilter{AllScopes: true, ManufacturerID: manufacturerID})
		if err != nil {
			return err
		}
		inverters = len(out)
		return nil
	})
	if err := g.Wait(); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return modules > 0 || inverters > 0, nil
}

// nameTaken checks every scope for a live manufacturer carrying the
// name. Public names must be globally unique and the per-scope unique
// index cannot see across scopes, so public writes pre-check here.
func (r *Repository) nameTaken(ctx context.Context, name, selfID string) (bool, error) {
	const op = "catalog.nameTaken"

	out, err := r.manufacturers.Find(ctx, model.ManufacturerFilter{
		AllScopes: true,
		Names:     []string{name},
	})
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	for _, m := range out {
		if m.ID != selfID {
			return true, nil
		}
	}
	return false, nil
}

// LoadCatalog reads everything visible in the given scope from the
// three collections concurrently and assembles a fresh aggregate. The
// load is all-or-nothing: if any leaf read fails no catalog is
// returned. Nothing is cached across calls.
func (r *Repository) LoadCatalog(ctx context.Context, scope string) (*model.EquipmentCatalog, error) {
	const op = "catalog.LoadCatalog"

	var (
		manufacturers []*model.Manufacturer
		modules       []*model.SolarModule
		inverters     []*model.Inverter
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := r.manufacturers.Find(gctx, model.ManufacturerFilter{Scope: scope})
		if err != nil {
			return err
		}
		manufacturers = out
		return nil
	})
	g.Go(func() error {
		out, err := r.modules.Find(gctx, model.SolarModuleFilter{Scope: scope})
		if err != nil {
			return err
		}
		modules = out
		return nil
	})
	g.Go(func() error {
		out, err := r.inverters.Find(gctx, model.InverterFilter{Scope: scope})
		if err != nil {
			return err
		}
		inverters = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return model.NewEquipmentCatalog(scope, manufacturers, modules, inverters), nil
}

// LoadCatalogByManufacturer assembles a catalog holding one
// manufacturer and only the equipment referencing it. For a public
// manufacturer the equipment may live in any team's scope, so that
// load crosses scopes.
func (r *Repository) LoadCatalogByManufacturer(ctx context.Context, manufacturerID string) (*model.EquipmentCatalog, error) {
	const op = "catalog.LoadCatalogByManufacturer"

	m, err := r.manufacturers.FindByID(ctx, manufacturerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	scope := loadScope(m.Scope)
	modFilter := model.SolarModuleFilter{Scope: scope, ManufacturerID: manufacturerID}
	invFilter := model.InverterFilter{Scope: scope, ManufacturerID: manufacturerID}
	if m.Scope == model.ScopePublic {
		modFilter = model.SolarModuleFilter{AllScopes: true, ManufacturerID: manufacturerID}
		invFilter = model.InverterFilter{AllScopes: true, ManufacturerID: manufacturerID}
	}

	var (
		modules   []*model.SolarModule
		inverters []*model.Inverter
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		out, err := r.modules.Find(gctx, modFilter)
		if err != nil {
			return err
		}
		modules = out
		return nil
	})
	g.Go(func() error {
		out, err := r.inverters.Find(gctx, invFilter)
		if err != nil {
			return err
		}
		inverters = out
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return model.NewEquipmentCatalog(scope, []*model.Manufacturer{m}, modules, inverters), nil
}

// SaveCatalog upserts every entity of the aggregate: existing ids are
// updated, new ones inserted. The writes are independent; if the
// caller's ctx is cancelled midway the catalog may be partially
// applied.
func (r *Repository) SaveCatalog(ctx context.Context, c *model.EquipmentCatalog) error {
	const op = "catalog.SaveCatalog"

	for _, m := range c.Manufacturers() {
		ok, err := r.manufacturers.Exists(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			_, err = r.manufacturers.Update(ctx, m)
		} else {
			_, err = r.manufacturers.Create(ctx, m)
		}
		if err != nil {
			return fmt.Errorf("%s manufacturer %s: %w", op, m.ID, err)
		}
	}

	for _, m := range c.Modules() {
		ok, err := r.modules.Exists(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			_, err = r.modules.Update(ctx, m)
		} else {
			_, err = r.modules.Create(ctx, m)
		}
		if err != nil {
			return fmt.Errorf("%s module %s: %w", op, m.ID, err)
		}
	}

	for _, i := range c.Inverters() {
		ok, err := r.inverters.Exists(ctx, i.ID)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if ok {
			_, err = r.inverters.Update(ctx, i)
		} else {
			_, err = r.inverters.Create(ctx, i)
		}
		if err != nil {
			return fmt.Errorf("%s inverter %s: %w", op, i.ID, err)
		}
	}

	return nil
}

func (r *Repository) AddManufacturer(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error) {
	c, err := r.LoadCatalog(ctx, loadScope(m.Scope))
	if err != nil {
		return nil, err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if err := c.AddManufacturer(m); err != nil {
		return nil, err
	}
	if m.Scope == model.ScopePublic {
		taken, err := r.nameTaken(ctx, m.Name, m.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("manufacturer %q: %w", m.Name, model.ErrDuplicateName)
		}
	}

	return r.manufacturers.Create(ctx, m)
}

func (r *Repository) UpdateManufacturer(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error) {
	c, err := r.LoadCatalog(ctx, loadScope(m.Scope))
	if err != nil {
		return nil, err
	}

	if err := c.UpdateManufacturer(m); err != nil {
		return nil, err
	}
	if m.Scope == model.ScopePublic {
		taken, err := r.nameTaken(ctx, m.Name, m.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("manufacturer %q: %w", m.Name, model.ErrDuplicateName)
		}
	}

	return r.manufacturers.Update(ctx, m)
}

func (r *Repository) DeleteManufacturer(ctx context.Context, id string) error {
	m, err := r.manufacturers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	c, err := r.LoadCatalog(ctx, loadScope(m.Scope))
	if err != nil {
		return err
	}

	if err := c.DeleteManufacturer(id); err != nil {
		return err
	}
	if m.Scope == model.ScopePublic {
		ok, err := r.hasDependents(ctx, id)
		if err != nil {
			return err
		}
		if ok {
			return fmt.Errorf("manufacturer %s: %w", id, model.ErrHasDependents)
		}
	}

	_, err = r.manufacturers.Delete(ctx, id)
	return err
}

func (r *Repository) AddModule(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error) {
	c, err := r.LoadCatalog(ctx, loadScope(m.Scope))
	if err != nil {
		return nil, err
	}

	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if err := c.AddModule(m); err != nil {
		return nil, err
	}

	return r.modules.Create(ctx, m)
}

func (r *Repository) UpdateModule(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error) {
	c, err := r.LoadCatalog(ctx, loadScope(m.Scope))
	if err != nil {
		return nil, err
	}

	if err := c.UpdateModule(m); err != nil {
		return nil, err
	}

	return r.modules.Update(ctx, m)
}

func (r *Repository) DeleteModule(ctx context.Context, id string) error {
	m, err := r.modules.FindByID(ctx, id)
	if err != nil {
		return err
	}

	c, err := r.LoadCatalog(ctx, loadScope(m.Scope))
	if err != nil {
		return err
	}

	if err := c.DeleteModule(id); err != nil {
		return err
	}

	_, err = r.modules.Delete(ctx, id)
	return err
}

func (r *Repository) AddInverter(ctx context.Context, i *model.Inverter) (*model.Inverter, error) {
	c, err := r.LoadCatalog(ctx, loadScope(i.Scope))
	if err != nil {
		return nil, err
	}

	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	if err := c.AddInverter(i); err != nil {
		return nil, err
	}

	return r.inverters.Create(ctx, i)
}

func (r *Repository) UpdateInverter(ctx context.Context, i *model.Inverter) (*model.Inverter, error) {
	c, err := r.LoadCatalog(ctx, loadScope(i.Scope))
	if err != nil {
		return nil, err
	}

	if err := c.UpdateInverter(i); err != nil {
		return nil, err
	}

	return r.inverters.Update(ctx, i)
}

func (r *Repository) DeleteInverter(ctx context.Context, id string) error {
	i, err := r.inverters.FindByID(ctx, id)
	if err != nil {
		return err
	}

	c, err := r.LoadCatalog(ctx, loadScope(i.Scope))
	if err != nil {
		return err
	}

	if err := c.DeleteInverter(id); err != nil {
		return err
	}

	_, err = r.inverters.Delete(ctx, id)
	return err
}

func (r *Repository) FindManufacturerByID(ctx context.Context, id string) (*model.Manufacturer, error) {
	return r.manufacturers.FindByID(ctx, id)
}

func (r *Repository) FindModuleByID(ctx context.Context, id string) (*model.SolarModule, error) {
	return r.modules.FindByID(ctx, id)
}

func (r *Repository) FindInverterByID(ctx context.Context, id string) (*model.Inverter, error) {
	return r.inverters.FindByID(ctx, id)
}

func (r *Repository) FindManufacturerByName(ctx context.Context, name, scope string) (*model.Manufacturer, error) {
	out, err := r.manufacturers.Find(ctx, model.ManufacturerFilter{
		Scope: scope,
		Names: []string{name},
	})
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, model.ErrNotFound
	}
	return out[0], nil
}

// FindManufacturersByType also matches manufacturers producing both
// equipment kinds unless the caller asked for "both" explicitly.
func (r *Repository) FindManufacturersByType(ctx context.Context, t model.EquipmentType, scope string) ([]*model.Manufacturer, error) {
	types := []model.EquipmentType{t}
	if t != model.EquipmentTypeBoth {
		types = append(types, model.EquipmentTypeBoth)
	}
	return r.manufacturers.Find(ctx, model.ManufacturerFilter{
		Scope: scope,
		Types: types,
	})
}

func (r *Repository) FindAccessibleManufacturers(ctx context.Context, scope string) ([]*model.Manufacturer, error) {
	return r.manufacturers.Find(ctx, model.ManufacturerFilter{Scope: scope})
}

func (r *Repository) FindModulesByManufacturer(ctx context.Context, manufacturerID, scope string, req generic.PageRequest) (*generic.Page[model.SolarModule], error) {
	return r.modules.FindWithPagination(ctx, model.SolarModuleFilter{
		Scope:          scope,
		ManufacturerID: manufacturerID,
	}, req)
}

func (r *Repository) FindInvertersByManufacturer(ctx context.Context, manufacturerID, scope string, req generic.PageRequest) (*generic.Page[model.Inverter], error) {
	return r.inverters.FindWithPagination(ctx, model.InverterFilter{
		Scope:          scope,
		ManufacturerID: manufacturerID,
	}, req)
}

func (r *Repository) ValidateConsistency(ctx context.Context, scope string) ([]model.Violation, error) {
	c, err := r.LoadCatalog(ctx, scope)
	if err != nil {
		return nil, err
	}
	return c.ValidateConsistency(), nil
}

// RepairInconsistencies loads the catalog, lets the aggregate drop
// equipment with dangling manufacturer references, deletes the dropped
// records and persists the surviving state. Best-effort: the count is
// from a single pass and later writes may fail independently.
func (r *Repository) RepairInconsistencies(ctx context.Context, scope string) (int, error) {
	const op = "catalog.RepairInconsistencies"

	c, err := r.LoadCatalog(ctx, scope)
	if err != nil {
		return 0, err
	}

	violations := c.ValidateConsistency()
	repaired := c.RepairInconsistencies()
	if repaired == 0 {
		return 0, nil
	}

	for _, v := range violations {
		if v.Kind != model.ViolationDanglingReference {
			continue
		}
		switch v.Entity {
		case "solar_module":
			if _, err := r.modules.Delete(ctx, v.ID); err != nil {
				return repaired, fmt.Errorf("%s module %s: %w", op, v.ID, err)
			}
		case "inverter":
			if _, err := r.inverters.Delete(ctx, v.ID); err != nil {
				return repaired, fmt.Errorf("%s inverter %s: %w", op, v.ID, err)
			}
		}
	}

	if err := r.SaveCatalog(ctx, c); err != nil {
		return repaired, err
	}

	return repaired, nil
}
