package solarmodule

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/helioward/solar-crm/internal/model"
)

type mapper struct{}

func (mapper) ToDomain(e *Entity) *model.SolarModule {
	if e == nil {
		return nil
	}

	out := &model.SolarModule{
		ID:             e.ID,
		ManufacturerID: e.ManufacturerID,
		Scope:          e.Scope,
		Model:          e.Model,
		NominalPowerW:  e.NominalPowerW,
		Voc:            e.Voc,
		Isc:            e.Isc,
		Vmp:            e.Vmp,
		Imp:            e.Imp,
		TempCoeffPmax:  e.TempCoeffPmax,
		CellsInSeries:  e.CellsInSeries,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}

	if e.Diode != nil {
		out.Diode = &model.SingleDiodeParams{
			IL:  e.Diode.IL,
			I0:  e.Diode.I0,
			Rs:  e.Diode.Rs,
			Rsh: e.Diode.Rsh,
			A:   e.Diode.A,
		}
	}
	if e.Thermal != nil {
		out.Thermal = &model.ThermalParams{
			A:      e.Thermal.A,
			B:      e.Thermal.B,
			DeltaT: e.Thermal.DeltaT,
		}
	}

	return out
}

func (mapper) ToPersistence(m *model.SolarModule) *Entity {
	if m == nil {
		return nil
	}

	out := &Entity{
		ID:             m.ID,
		ManufacturerID: m.ManufacturerID,
		Scope:          m.Scope,
		Model:          m.Model,
		ModelNorm:      model.NormalizeName(m.Model),
		NominalPowerW:  m.NominalPowerW,
		Voc:            m.Voc,
		Isc:            m.Isc,
		Vmp:            m.Vmp,
		Imp:            m.Imp,
		TempCoeffPmax:  m.TempCoeffPmax,
		CellsInSeries:  m.CellsInSeries,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if m.Diode != nil {
		out.Diode = &DiodeEntity{
			IL:  m.Diode.IL,
			I0:  m.Diode.I0,
			Rs:  m.Diode.Rs,
			Rsh: m.Diode.Rsh,
			A:   m.Diode.A,
		}
	}
	if m.Thermal != nil {
		out.Thermal = &ThermalEntity{
			A:      m.Thermal.A,
			B:      m.Thermal.B,
			DeltaT: m.Thermal.DeltaT,
		}
	}

	return out
}

func (mp mapper) ID(m *model.SolarModule) string { return m.ID }

func (mp mapper) ToUpdate(m *model.SolarModule) bson.M {
	e := mp.ToPersistence(m)
	set := bson.M{
		"manufacturer_id": e.ManufacturerID,
		"scope":           e.Scope,
		"model":           e.Model,
		"model_norm":      e.ModelNorm,
		"nominal_power_w": e.NominalPowerW,
		"voc":             e.Voc,
		"isc":             e.Isc,
		"vmp":             e.Vmp,
		"imp":             e.Imp,
		"temp_coeff_pmax": e.TempCoeffPmax,
		"cells_in_series": e.CellsInSeries,
		"updated_at":      e.UpdatedAt,
	}
	if e.Diode != nil {
		set["diode"] = e.Diode
	}
	if e.Thermal != nil {
		set["thermal"] = e.Thermal
	}
	return set
}
