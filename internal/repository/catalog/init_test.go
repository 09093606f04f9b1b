package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helioward/solar-crm/internal/model"
	"github.com/helioward/solar-crm/internal/repository/catalog"
)

// fakeWriter records what Bootstrap tries to persist.
type fakeWriter struct {
	existing []*model.Manufacturer
	findErr  error

	manufacturers []*model.Manufacturer
	modules       []*model.SolarModule
	inverters     []*model.Inverter
}

func (w *fakeWriter) FindAccessibleManufacturers(_ context.Context, _ string) ([]*model.Manufacturer, error) {
	return w.existing, w.findErr
}

func (w *fakeWriter) AddManufacturer(_ context.Context, m *model.Manufacturer) (*model.Manufacturer, error) {
	w.manufacturers = append(w.manufacturers, m)
	return m, nil
}

func (w *fakeWriter) AddModule(_ context.Context, m *model.SolarModule) (*model.SolarModule, error) {
	w.modules = append(w.modules, m)
	return m, nil
}

func (w *fakeWriter) AddInverter(_ context.Context, i *model.Inverter) (*model.Inverter, error) {
	w.inverters = append(w.inverters, i)
	return i, nil
}

func TestBootstrap(t *testing.T) {
	t.Parallel()

	t.Run("seeds an empty database", func(t *testing.T) {
		t.Parallel()

		w := &fakeWriter{}
		require.NoError(t, catalog.Bootstrap(context.Background(), w))

		require.Len(t, w.manufacturers, 2)
		require.Len(t, w.modules, 2)
		require.Len(t, w.inverters, 2)

		ids := make(map[string]bool, len(w.manufacturers))
		for _, m := range w.manufacturers {
			assert.Equal(t, model.ScopePublic, m.Scope)
			assert.True(t, m.IsDefault)
			ids[m.ID] = true
		}
		for _, m := range w.modules {
			assert.True(t, ids[m.ManufacturerID], "module %s references a seeded manufacturer", m.Model)
			assert.Equal(t, model.ScopePublic, m.Scope)
		}
		for _, i := range w.inverters {
			assert.True(t, ids[i.ManufacturerID], "inverter %s references a seeded manufacturer", i.Model)
			assert.Equal(t, model.ScopePublic, i.Scope)
		}
	})

	t.Run("skips a populated database", func(t *testing.T) {
		t.Parallel()

		w := &fakeWriter{existing: []*model.Manufacturer{
			{ID: "m-1", Name: "Acme", Scope: model.ScopePublic},
		}}
		require.NoError(t, catalog.Bootstrap(context.Background(), w))
		assert.Empty(t, w.manufacturers)
		assert.Empty(t, w.modules)
		assert.Empty(t, w.inverters)
	})

	t.Run("propagates the existence check error", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("connection reset")
		w := &fakeWriter{findErr: wantErr}
		assert.ErrorIs(t, catalog.Bootstrap(context.Background(), w), wantErr)
	})
}
