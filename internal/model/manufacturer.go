package model

import "time"

// ScopePublic is the reserved scope value for globally visible equipment.
// Records owned by a team carry the team id instead.
const ScopePublic = "public"

type EquipmentType int32

const (
	EquipmentTypeUnknown EquipmentType = iota
	EquipmentTypeModule
	EquipmentTypeInverter
	EquipmentTypeBoth
)

type Manufacturer struct {
	// Globally unique identifier of the manufacturer.
	ID string
	// Display name. Unique within a scope; public manufacturers are
	// unique globally.
	Name string
	// Kind of equipment the manufacturer produces.
	EquipmentType EquipmentType
	// Owning team id, or ScopePublic.
	Scope string
	// Marks the built-in manufacturers shipped with the product.
	IsDefault bool
	// Country of origin.
	Country string
	// Official website.
	Website string
	// Free-form notes.
	Notes string
	// Timestamp when the record was created.
	CreatedAt *time.Time
	// Timestamp of the last update.
	UpdatedAt *time.Time
}

// VisibleIn reports whether the record is visible to a caller with the
// given scope. A caller with a team sees its own records plus public
// ones; a caller without a team sees public records only.
func (m *Manufacturer) VisibleIn(scope string) bool {
	return m.Scope == ScopePublic || (scope != "" && m.Scope == scope)
}

func (m *Manufacturer) Touch(now time.Time) {
	if m.CreatedAt == nil || m.CreatedAt.IsZero() {
		m.CreatedAt = &now
	}
	m.UpdatedAt = &now
}
