package model

import "time"

type SolarModule struct {
	// Globally unique identifier of the module.
	ID string
	// Reference to the owning Manufacturer.
	ManufacturerID string
	// Owning team id, or ScopePublic.
	Scope string
	// Model identifier, e.g. "VBHN330SA16". Unique per (scope, manufacturer).
	Model string
	// Nominal power at STC, watts.
	NominalPowerW float64
	// Open-circuit voltage, volts.
	Voc float64
	// Short-circuit current, amperes.
	Isc float64
	// Voltage at maximum power point, volts.
	Vmp float64
	// Current at maximum power point, amperes.
	Imp float64
	// Power temperature coefficient, %/°C.
	TempCoeffPmax float64
	// Number of cells in series.
	CellsInSeries int
	// Optional single-diode model coefficients for detailed simulation.
	Diode *SingleDiodeParams
	// Optional thermal model coefficients.
	Thermal *ThermalParams
	// Timestamp when the record was created.
	CreatedAt *time.Time
	// Timestamp of the last update.
	UpdatedAt *time.Time
}

type SingleDiodeParams struct {
	// Light-generated current, amperes.
	IL float64
	// Diode saturation current, amperes.
	I0 float64
	// Series resistance, ohms.
	Rs float64
	// Shunt resistance, ohms.
	Rsh float64
	// Modified ideality factor, volts.
	A float64
}

type ThermalParams struct {
	// Sandia thermal model coefficient a.
	A float64
	// Sandia thermal model coefficient b.
	B float64
	// Temperature delta at 1000 W/m², °C.
	DeltaT float64
}

func (m *SolarModule) VisibleIn(scope string) bool {
	return m.Scope == ScopePublic || (scope != "" && m.Scope == scope)
}

func (m *SolarModule) Touch(now time.Time) {
	if m.CreatedAt == nil || m.CreatedAt.IsZero() {
		m.CreatedAt = &now
	}
	m.UpdatedAt = &now
}
