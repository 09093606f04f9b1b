package inverter

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/helioward/solar-crm/internal/model"
)

type mapper struct{}

func (mapper) ToDomain(e *Entity) *model.Inverter {
	if e == nil {
		return nil
	}
	return &model.Inverter{
		ID:             e.ID,
		ManufacturerID: e.ManufacturerID,
		Scope:          e.Scope,
		Model:          e.Model,
		ACPowerW:       e.ACPowerW,
		MaxDCPowerW:    e.MaxDCPowerW,
		Efficiency:     e.Efficiency,
		MPPTLowV:       e.MPPTLowV,
		MPPTHighV:      e.MPPTHighV,
		MaxDCVoltage:   e.MaxDCVoltage,
		Phases:         e.Phases,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func (mapper) ToPersistence(m *model.Inverter) *Entity {
	if m == nil {
		return nil
	}
	return &Entity{
		ID:             m.ID,
		ManufacturerID: m.ManufacturerID,
		Scope:          m.Scope,
		Model:          m.Model,
		ModelNorm:      model.NormalizeName(m.Model),
		ACPowerW:       m.ACPowerW,
		MaxDCPowerW:    m.MaxDCPowerW,
		Efficiency:     m.Efficiency,
		MPPTLowV:       m.MPPTLowV,
		MPPTHighV:      m.MPPTHighV,
		MaxDCVoltage:   m.MaxDCVoltage,
		Phases:         m.Phases,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (mapper) ID(m *model.Inverter) string { return m.ID }

func (mapper) ToUpdate(m *model.Inverter) bson.M {
	return bson.M{
		"manufacturer_id": m.ManufacturerID,
		"scope":           m.Scope,
		"model":           m.Model,
		"model_norm":      model.NormalizeName(m.Model),
		"ac_power_w":      m.ACPowerW,
		"max_dc_power_w":  m.MaxDCPowerW,
		"efficiency":      m.Efficiency,
		"mppt_low_v":      m.MPPTLowV,
		"mppt_high_v":     m.MPPTHighV,
		"max_dc_voltage":  m.MaxDCVoltage,
		"phases":          m.Phases,
		"updated_at":      m.UpdatedAt,
	}
}
