package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/helioward/solar-crm/internal/model"
)

type Writer interface {
	AddManufacturer(ctx context.Context, m *model.Manufacturer) (*model.Manufacturer, error)
	AddModule(ctx context.Context, m *model.SolarModule) (*model.SolarModule, error)
	AddInverter(ctx context.Context, i *model.Inverter) (*model.Inverter, error)
	FindAccessibleManufacturers(ctx context.Context, scope string) ([]*model.Manufacturer, error)
}

// Bootstrap seeds the built-in public equipment on an empty database.
// Runs through the regular mutation flow so every record passes the
// aggregate checks and gets its normalized-name fields.
func Bootstrap(ctx context.Context, w Writer) error {
	const op = "catalog.Bootstrap"

	existing, err := w.FindAccessibleManufacturers(ctx, "")
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(existing) > 0 {
		return nil
	}

	helios := &model.Manufacturer{
		ID:            uuid.NewString(),
		Name:          "Heliostar Modules",
		EquipmentType: model.EquipmentTypeModule,
		Scope:         model.ScopePublic,
		IsDefault:     true,
		Country:       "Germany",
		Website:       "https://heliostar.example.com",
	}
	voltix := &model.Manufacturer{
		ID:            uuid.NewString(),
		Name:          "Voltix Power",
		EquipmentType: model.EquipmentTypeInverter,
		Scope:         model.ScopePublic,
		IsDefault:     true,
		Country:       "Austria",
		Website:       "https://voltix.example.com",
	}

	for _, m := range []*model.Manufacturer{helios, voltix} {
		if _, err := w.AddManufacturer(ctx, m); err != nil {
			return fmt.Errorf("%s manufacturer %q: %w", op, m.Name, err)
		}
	}

	modules := []*model.SolarModule{
		{
			ID:             uuid.NewString(),
			ManufacturerID: helios.ID,
			Scope:          model.ScopePublic,
			Model:          "HS-380M",
			NominalPowerW:  380,
			Voc:            48.6,
			Isc:            9.95,
			Vmp:            40.1,
			Imp:            9.48,
			TempCoeffPmax:  -0.35,
			CellsInSeries:  72,
			Thermal:        &model.ThermalParams{A: -3.47, B: -0.0594, DeltaT: 3},
		},
		{
			ID:             uuid.NewString(),
			ManufacturerID: helios.ID,
			Scope:          model.ScopePublic,
			Model:          "HS-450M Pro",
			NominalPowerW:  450,
			Voc:            49.8,
			Isc:            11.4,
			Vmp:            41.5,
			Imp:            10.85,
			TempCoeffPmax:  -0.34,
			CellsInSeries:  72,
		},
	}
	for _, m := range modules {
		if _, err := w.AddModule(ctx, m); err != nil {
			return fmt.Errorf("%s module %q: %w", op, m.Model, err)
		}
	}

	inverters := []*model.Inverter{
		{
			ID:             uuid.NewString(),
			ManufacturerID: voltix.ID,
			Scope:          model.ScopePublic,
			Model:          "VX-5000",
			ACPowerW:       5000,
			MaxDCPowerW:    7500,
			Efficiency:     0.976,
			MPPTLowV:       80,
			MPPTHighV:      550,
			MaxDCVoltage:   600,
			Phases:         1,
		},
		{
			ID:             uuid.NewString(),
			ManufacturerID: voltix.ID,
			Scope:          model.ScopePublic,
			Model:          "VX-10000T",
			ACPowerW:       10000,
			MaxDCPowerW:    15000,
			Efficiency:     0.981,
			MPPTLowV:       200,
			MPPTHighV:      800,
			MaxDCVoltage:   1000,
			Phases:         3,
		},
	}
	for _, i := range inverters {
		if _, err := w.AddInverter(ctx, i); err != nil {
			return fmt.Errorf("%s inverter %q: %w", op, i.Model, err)
		}
	}

	return nil
}
