package manufacturer

import "time"

type Entity struct {
	ID   string `bson:"_id"`
	Name string `bson:"name"`
	// Normalized name backing the per-scope unique index.
	NameNorm      string     `bson:"name_norm"`
	EquipmentType int32      `bson:"equipment_type"`
	Scope         string     `bson:"scope"`
	IsDefault     bool       `bson:"is_default,omitempty"`
	Country       string     `bson:"country,omitempty"`
	Website       string     `bson:"website,omitempty"`
	Notes         string     `bson:"notes,omitempty"`
	IsDeleted     bool       `bson:"is_deleted,omitempty"`
	DeletedAt     *time.Time `bson:"deleted_at,omitempty"`
	CreatedAt     *time.Time `bson:"created_at,omitempty"`
	UpdatedAt     *time.Time `bson:"updated_at,omitempty"`
}
