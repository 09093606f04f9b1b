package manufacturer

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/helioward/solar-crm/internal/model"
)

type mapper struct{}

func (mapper) ToDomain(e *Entity) *model.Manufacturer {
	if e == nil {
		return nil
	}
	return &model.Manufacturer{
		ID:            e.ID,
		Name:          e.Name,
		EquipmentType: model.EquipmentType(e.EquipmentType),
		Scope:         e.Scope,
		IsDefault:     e.IsDefault,
		Country:       e.Country,
		Website:       e.Website,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func (mapper) ToPersistence(m *model.Manufacturer) *Entity {
	if m == nil {
		return nil
	}
	return &Entity{
		ID:            m.ID,
		Name:          m.Name,
		NameNorm:      model.NormalizeName(m.Name),
		EquipmentType: int32(m.EquipmentType),
		Scope:         m.Scope,
		IsDefault:     m.IsDefault,
		Country:       m.Country,
		Website:       m.Website,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (mapper) ID(m *model.Manufacturer) string { return m.ID }

func (mapper) ToUpdate(m *model.Manufacturer) bson.M {
	return bson.M{
		"name":           m.Name,
		"name_norm":      model.NormalizeName(m.Name),
		"equipment_type": int32(m.EquipmentType),
		"scope":          m.Scope,
		"is_default":     m.IsDefault,
		"country":        m.Country,
		"website":        m.Website,
		"notes":          m.Notes,
		"updated_at":     m.UpdatedAt,
	}
}
