package inverter

import "time"

type Entity struct {
	ID             string     `bson:"_id"`
	ManufacturerID string     `bson:"manufacturer_id"`
	Scope          string     `bson:"scope"`
	Model          string     `bson:"model"`
	ModelNorm      string     `bson:"model_norm"`
	ACPowerW       float64    `bson:"ac_power_w"`
	MaxDCPowerW    float64    `bson:"max_dc_power_w"`
	Efficiency     float64    `bson:"efficiency"`
	MPPTLowV       float64    `bson:"mppt_low_v"`
	MPPTHighV      float64    `bson:"mppt_high_v"`
	MaxDCVoltage   float64    `bson:"max_dc_voltage"`
	Phases         int        `bson:"phases"`
	IsDeleted      bool       `bson:"is_deleted,omitempty"`
	DeletedAt      *time.Time `bson:"deleted_at,omitempty"`
	CreatedAt      *time.Time `bson:"created_at,omitempty"`
	UpdatedAt      *time.Time `bson:"updated_at,omitempty"`
}
