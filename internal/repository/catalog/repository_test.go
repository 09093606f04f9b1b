package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/catalog"
	"github.com/helioward/solar-crm/internal/repository/catalog/mocks"
	"github.com/helioward/solar-crm/internal/repository/generic"
)

type stores struct {
	manufacturers *mocks.MockManufacturerStore
	modules       *mocks.MockSolarModuleStore
	inverters     *mocks.MockInverterStore
}

func newRepository(t *testing.T) (*catalog.Repository, stores) {
	s := stores{
		manufacturers: mocks.NewMockManufacturerStore(t),
		modules:       mocks.NewMockSolarModuleStore(t),
		inverters:     mocks.NewMockInverterStore(t),
	}
	return catalog.NewRepository(s.manufacturers, s.modules, s.inverters), s
}

// expectLoad wires the three concurrent reads LoadCatalog performs.
func (s stores) expectLoad(
	scope string,
	manufacturers []*model.Manufacturer,
	modules []*model.SolarModule,
	inverters []*model.Inverter,
) {
	s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{Scope: scope}).
		Return(manufacturers, nil).Once()
	s.modules.On("Find", mock.Anything, model.SolarModuleFilter{Scope: scope}).
		Return(modules, nil).Once()
	s.inverters.On("Find", mock.Anything, model.InverterFilter{Scope: scope}).
		Return(inverters, nil).Once()
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("assembles all three collections", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic}
		mod := &model.SolarModule{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: model.ScopePublic, Model: "X1"}
		inv := &model.Inverter{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: model.ScopePublic, Model: "INV-5"}
		s.expectLoad("team-a",
			[]*model.Manufacturer{m},
			[]*model.SolarModule{mod},
			[]*model.Inverter{inv},
		)

		c, err := repo.LoadCatalog(context.Background(), "team-a")
		require.NoError(t, err)
		assert.Equal(t, "team-a", c.Scope())
		assert.Len(t, c.Manufacturers(), 1)
		assert.Len(t, c.Modules(), 1)
		assert.Len(t, c.Inverters(), 1)
	})

	t.Run("one failed read fails the whole load", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		wantErr := errors.New("connection reset")
		s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{Scope: ""}).
			Return(nil, wantErr).Once()
		s.modules.On("Find", mock.Anything, model.SolarModuleFilter{Scope: ""}).
			Return([]*model.SolarModule{}, nil).Once()
		s.inverters.On("Find", mock.Anything, model.InverterFilter{Scope: ""}).
			Return([]*model.Inverter{}, nil).Once()

		c, err := repo.LoadCatalog(context.Background(), "")
		require.ErrorIs(t, err, wantErr)
		assert.Nil(t, c)
	})
}

func TestLoadCatalogByManufacturer(t *testing.T) {
	t.Parallel()

	t.Run("team manufacturer loads its own scope", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: "team-a"}
		mod := &model.SolarModule{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: "team-a", Model: "X1"}

		s.manufacturers.On("FindByID", mock.Anything, m.ID).Return(m, nil).Once()
		s.modules.On("Find", mock.Anything, model.SolarModuleFilter{Scope: "team-a", ManufacturerID: m.ID}).
			Return([]*model.SolarModule{mod}, nil).Once()
		s.inverters.On("Find", mock.Anything, model.InverterFilter{Scope: "team-a", ManufacturerID: m.ID}).
			Return([]*model.Inverter{}, nil).Once()

		c, err := repo.LoadCatalogByManufacturer(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Len(t, c.Manufacturers(), 1)
		assert.Len(t, c.Modules(), 1)
		assert.Empty(t, c.Inverters())
	})

	t.Run("public manufacturer collects equipment from every scope", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic}
		teamMod := &model.SolarModule{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: "team-a", Model: "X1"}

		s.manufacturers.On("FindByID", mock.Anything, m.ID).Return(m, nil).Once()
		s.modules.On("Find", mock.Anything, model.SolarModuleFilter{AllScopes: true, ManufacturerID: m.ID}).
			Return([]*model.SolarModule{teamMod}, nil).Once()
		s.inverters.On("Find", mock.Anything, model.InverterFilter{AllScopes: true, ManufacturerID: m.ID}).
			Return([]*model.Inverter{}, nil).Once()

		c, err := repo.LoadCatalogByManufacturer(context.Background(), m.ID)
		require.NoError(t, err)
		assert.Len(t, c.Modules(), 1)
	})
}

func TestAddManufacturer(t *testing.T) {
	t.Parallel()

	t.Run("assigns an id and persists", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		s.expectLoad("team-a", nil, nil, nil)

		m := &model.Manufacturer{Name: "Acme", Scope: "team-a"}
		s.manufacturers.On("Create", mock.Anything, m).Return(m, nil).Once()

		got, err := repo.AddManufacturer(context.Background(), m)
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("duplicate name aborts before storage", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		s.expectLoad("team-a", []*model.Manufacturer{
			{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic},
		}, nil, nil)

		_, err := repo.AddManufacturer(context.Background(), &model.Manufacturer{Name: "acme", Scope: "team-a"})
		require.ErrorIs(t, err, model.ErrDuplicateName)
		s.manufacturers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("public add checks the name in every scope", func(t *testing.T) {
		t.Parallel()

		// A team-owned holder is invisible to the public catalog load;
		// only the all-scope name lookup can catch the collision.
		repo, s := newRepository(t)
		s.expectLoad("", nil, nil, nil)
		holder := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme Solar", Scope: "team-a"}
		s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{
			AllScopes: true,
			Names:     []string{"Acme Solar"},
		}).Return([]*model.Manufacturer{holder}, nil).Once()

		_, err := repo.AddManufacturer(context.Background(), &model.Manufacturer{
			Name:  "Acme Solar",
			Scope: model.ScopePublic,
		})
		require.ErrorIs(t, err, model.ErrDuplicateName)
		s.manufacturers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("public add with a free name persists", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		s.expectLoad("", nil, nil, nil)
		s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{
			AllScopes: true,
			Names:     []string{"Voltix"},
		}).Return([]*model.Manufacturer{}, nil).Once()

		m := &model.Manufacturer{Name: "Voltix", Scope: model.ScopePublic}
		s.manufacturers.On("Create", mock.Anything, m).Return(m, nil).Once()

		got, err := repo.AddManufacturer(context.Background(), m)
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
	})
}

func TestUpdateManufacturer(t *testing.T) {
	t.Parallel()

	t.Run("public rename onto a team name is rejected", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Voltix", Scope: model.ScopePublic}
		s.expectLoad("", []*model.Manufacturer{m}, nil, nil)

		renamed := &model.Manufacturer{ID: m.ID, Name: "Acme Solar", Scope: model.ScopePublic}
		holder := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme Solar", Scope: "team-b"}
		s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{
			AllScopes: true,
			Names:     []string{"Acme Solar"},
		}).Return([]*model.Manufacturer{holder}, nil).Once()

		_, err := repo.UpdateManufacturer(context.Background(), renamed)
		require.ErrorIs(t, err, model.ErrDuplicateName)
		s.manufacturers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("keeping the own name is not a collision", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Voltix", Scope: model.ScopePublic}
		s.expectLoad("", []*model.Manufacturer{m}, nil, nil)

		updated := &model.Manufacturer{ID: m.ID, Name: "Voltix", Scope: model.ScopePublic, Country: "DE"}
		// The all-scope lookup sees the record itself; that must not count.
		s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{
			AllScopes: true,
			Names:     []string{"Voltix"},
		}).Return([]*model.Manufacturer{m}, nil).Once()
		s.manufacturers.On("Update", mock.Anything, updated).Return(updated, nil).Once()

		_, err := repo.UpdateManufacturer(context.Background(), updated)
		require.NoError(t, err)
	})
}

func TestDeleteManufacturer(t *testing.T) {
	t.Parallel()

	t.Run("blocked while equipment references it", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: "team-a"}
		s.manufacturers.On("FindByID", mock.Anything, m.ID).Return(m, nil).Once()
		s.expectLoad("team-a",
			[]*model.Manufacturer{m},
			[]*model.SolarModule{{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: "team-a", Model: "X1"}},
			nil,
		)

		err := repo.DeleteManufacturer(context.Background(), m.ID)
		require.ErrorIs(t, err, model.ErrHasDependents)
		s.manufacturers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("deletes an unreferenced manufacturer", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: "team-a"}
		s.manufacturers.On("FindByID", mock.Anything, m.ID).Return(m, nil).Once()
		s.expectLoad("team-a", []*model.Manufacturer{m}, nil, nil)
		s.manufacturers.On("Delete", mock.Anything, m.ID).Return(true, nil).Once()

		require.NoError(t, repo.DeleteManufacturer(context.Background(), m.ID))
	})

	t.Run("public manufacturer blocked by equipment in another scope", func(t *testing.T) {
		t.Parallel()

		// The public catalog load cannot see team-owned equipment, so
		// the delete must re-check dependents across every scope.
		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic}
		teamMod := &model.SolarModule{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: "team-a", Model: "X1"}

		s.manufacturers.On("FindByID", mock.Anything, m.ID).Return(m, nil).Once()
		s.expectLoad("", []*model.Manufacturer{m}, nil, nil)
		s.modules.On("Find", mock.Anything, model.SolarModuleFilter{AllScopes: true, ManufacturerID: m.ID}).
			Return([]*model.SolarModule{teamMod}, nil).Once()
		s.inverters.On("Find", mock.Anything, model.InverterFilter{AllScopes: true, ManufacturerID: m.ID}).
			Return([]*model.Inverter{}, nil).Once()

		err := repo.DeleteManufacturer(context.Background(), m.ID)
		require.ErrorIs(t, err, model.ErrHasDependents)
		s.manufacturers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("public manufacturer without dependents anywhere is deleted", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic}

		s.manufacturers.On("FindByID", mock.Anything, m.ID).Return(m, nil).Once()
		s.expectLoad("", []*model.Manufacturer{m}, nil, nil)
		s.modules.On("Find", mock.Anything, model.SolarModuleFilter{AllScopes: true, ManufacturerID: m.ID}).
			Return([]*model.SolarModule{}, nil).Once()
		s.inverters.On("Find", mock.Anything, model.InverterFilter{AllScopes: true, ManufacturerID: m.ID}).
			Return([]*model.Inverter{}, nil).Once()
		s.manufacturers.On("Delete", mock.Anything, m.ID).Return(true, nil).Once()

		require.NoError(t, repo.DeleteManufacturer(context.Background(), m.ID))
	})
}

func TestAddModule(t *testing.T) {
	t.Parallel()

	t.Run("dangling manufacturer aborts before storage", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		s.expectLoad("team-a", nil, nil, nil)

		_, err := repo.AddModule(context.Background(), &model.SolarModule{
			ManufacturerID: uuid.NewString(),
			Scope:          "team-a",
			Model:          "X1",
		})
		require.ErrorIs(t, err, model.ErrDanglingReference)
		s.modules.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("valid module is persisted", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: "team-a"}
		s.expectLoad("team-a", []*model.Manufacturer{m}, nil, nil)

		mod := &model.SolarModule{ManufacturerID: m.ID, Scope: "team-a", Model: "X1"}
		s.modules.On("Create", mock.Anything, mod).Return(mod, nil).Once()

		got, err := repo.AddModule(context.Background(), mod)
		require.NoError(t, err)
		assert.NotEmpty(t, got.ID)
	})
}

func TestAddInverter(t *testing.T) {
	t.Parallel()

	repo, s := newRepository(t)
	s.expectLoad("", nil, nil, nil)

	_, err := repo.AddInverter(context.Background(), &model.Inverter{
		ManufacturerID: uuid.NewString(),
		Scope:          model.ScopePublic,
		Model:          "INV-5",
	})
	require.ErrorIs(t, err, model.ErrDanglingReference)
	s.inverters.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDeleteModule(t *testing.T) {
	t.Parallel()

	repo, s := newRepository(t)
	m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: "team-a"}
	mod := &model.SolarModule{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: "team-a", Model: "X1"}

	s.modules.On("FindByID", mock.Anything, mod.ID).Return(mod, nil).Once()
	s.expectLoad("team-a", []*model.Manufacturer{m}, []*model.SolarModule{mod}, nil)
	s.modules.On("Delete", mock.Anything, mod.ID).Return(true, nil).Once()

	require.NoError(t, repo.DeleteModule(context.Background(), mod.ID))
}

func TestFindManufacturerByName(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic}
		s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{
			Scope: "team-a",
			Names: []string{"Acme"},
		}).Return([]*model.Manufacturer{m}, nil).Once()

		got, err := repo.FindManufacturerByName(context.Background(), "Acme", "team-a")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	})

	t.Run("no match maps to not found", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		s.manufacturers.On("Find", mock.Anything, mock.Anything).
			Return([]*model.Manufacturer{}, nil).Once()

		_, err := repo.FindManufacturerByName(context.Background(), "Nobody", "")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestFindManufacturersByType(t *testing.T) {
	t.Parallel()

	t.Run("specific type also matches both", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{
			Scope: "team-a",
			Types: []model.EquipmentType{model.EquipmentTypeModule, model.EquipmentTypeBoth},
		}).Return([]*model.Manufacturer{}, nil).Once()

		_, err := repo.FindManufacturersByType(context.Background(), model.EquipmentTypeModule, "team-a")
		require.NoError(t, err)
	})

	t.Run("both stays both", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		s.manufacturers.On("Find", mock.Anything, model.ManufacturerFilter{
			Types: []model.EquipmentType{model.EquipmentTypeBoth},
		}).Return([]*model.Manufacturer{}, nil).Once()

		_, err := repo.FindManufacturersByType(context.Background(), model.EquipmentTypeBoth, "")
		require.NoError(t, err)
	})
}

func TestFindModulesByManufacturer(t *testing.T) {
	t.Parallel()

	repo, s := newRepository(t)
	manufacturerID := uuid.NewString()
	req := generic.PageRequest{Page: 2, PageSize: 10}
	page := &generic.Page[model.SolarModule]{Page: 2, PageSize: 10, Total: 25, TotalPages: 3}

	s.modules.On("FindWithPagination", mock.Anything, model.SolarModuleFilter{
		Scope:          "team-a",
		ManufacturerID: manufacturerID,
	}, req).Return(page, nil).Once()

	got, err := repo.FindModulesByManufacturer(context.Background(), manufacturerID, "team-a", req)
	require.NoError(t, err)
	assert.Equal(t, page, got)
}

func TestRepairInconsistencies(t *testing.T) {
	t.Parallel()

	t.Run("consistent catalog is left untouched", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic}
		s.expectLoad("",
			[]*model.Manufacturer{m},
			[]*model.SolarModule{{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: model.ScopePublic, Model: "X1"}},
			nil,
		)

		repaired, err := repo.RepairInconsistencies(context.Background(), "")
		require.NoError(t, err)
		assert.Zero(t, repaired)
		s.modules.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		s.manufacturers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("deletes dangling equipment and saves survivors", func(t *testing.T) {
		t.Parallel()

		repo, s := newRepository(t)
		m := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic}
		kept := &model.SolarModule{ID: uuid.NewString(), ManufacturerID: m.ID, Scope: model.ScopePublic, Model: "X1"}
		orphanModule := &model.SolarModule{ID: uuid.NewString(), ManufacturerID: uuid.NewString(), Scope: model.ScopePublic, Model: "X2"}
		orphanInverter := &model.Inverter{ID: uuid.NewString(), ManufacturerID: uuid.NewString(), Scope: model.ScopePublic, Model: "INV-5"}

		s.expectLoad("",
			[]*model.Manufacturer{m},
			[]*model.SolarModule{kept, orphanModule},
			[]*model.Inverter{orphanInverter},
		)

		s.modules.On("Delete", mock.Anything, orphanModule.ID).Return(true, nil).Once()
		s.inverters.On("Delete", mock.Anything, orphanInverter.ID).Return(true, nil).Once()

		s.manufacturers.On("Exists", mock.Anything, m.ID).Return(true, nil).Once()
		s.manufacturers.On("Update", mock.Anything, m).Return(m, nil).Once()
		s.modules.On("Exists", mock.Anything, kept.ID).Return(true, nil).Once()
		s.modules.On("Update", mock.Anything, kept).Return(kept, nil).Once()

		repaired, err := repo.RepairInconsistencies(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, 2, repaired)
	})
}

func TestSaveCatalog(t *testing.T) {
	t.Parallel()

	repo, s := newRepository(t)
	existing := &model.Manufacturer{ID: uuid.NewString(), Name: "Acme", Scope: model.ScopePublic}
	added := &model.SolarModule{ID: uuid.NewString(), ManufacturerID: existing.ID, Scope: model.ScopePublic, Model: "X1"}
	c := model.NewEquipmentCatalog("", []*model.Manufacturer{existing}, []*model.SolarModule{added}, nil)

	s.manufacturers.On("Exists", mock.Anything, existing.ID).Return(true, nil).Once()
	s.manufacturers.On("Update", mock.Anything, existing).Return(existing, nil).Once()
	s.modules.On("Exists", mock.Anything, added.ID).Return(false, nil).Once()
	s.modules.On("Create", mock.Anything, added).Return(added, nil).Once()

	require.NoError(t, repo.SaveCatalog(context.Background(), c))
}
