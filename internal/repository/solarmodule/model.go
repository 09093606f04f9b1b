package solarmodule

import "time"

type Entity struct {
	ID             string `bson:"_id"`
	ManufacturerID string `bson:"manufacturer_id"`
	Scope          string `bson:"scope"`
	Model          string `bson:"model"`
	// Normalized model id backing the (scope, manufacturer_id, model_norm)
	// unique index.
	ModelNorm     string         `bson:"model_norm"`
	NominalPowerW float64        `bson:"nominal_power_w"`
	Voc           float64        `bson:"voc"`
	Isc           float64        `bson:"isc"`
	Vmp           float64        `bson:"vmp"`
	Imp           float64        `bson:"imp"`
	TempCoeffPmax float64        `bson:"temp_coeff_pmax,omitempty"`
	CellsInSeries int            `bson:"cells_in_series,omitempty"`
	Diode         *DiodeEntity   `bson:"diode,omitempty"`
	Thermal       *ThermalEntity `bson:"thermal,omitempty"`
	IsDeleted     bool           `bson:"is_deleted,omitempty"`
	DeletedAt     *time.Time     `bson:"deleted_at,omitempty"`
	CreatedAt     *time.Time     `bson:"created_at,omitempty"`
	UpdatedAt     *time.Time     `bson:"updated_at,omitempty"`
}

type DiodeEntity struct {
	IL  float64 `bson:"il"`
	I0  float64 `bson:"i0"`
	Rs  float64 `bson:"rs"`
	Rsh float64 `bson:"rsh"`
	A   float64 `bson:"a"`
}

type ThermalEntity struct {
	A      float64 `bson:"a"`
	B      float64 `bson:"b"`
	DeltaT float64 `bson:"delta_t"`
}
