package model

import "time"

type Inverter struct {
	// Globally unique identifier of the inverter.
	ID string
	// Reference to the owning Manufacturer.
	ManufacturerID string
	// Owning team id, or ScopePublic.
	Scope string
	// Model identifier. Unique per (scope, manufacturer).
	Model string
	// Rated AC output power, watts.
	ACPowerW float64
	// Maximum DC input power, watts.
	MaxDCPowerW float64
	// Peak efficiency, fraction in (0, 1].
	Efficiency float64
	// Lower bound of the MPPT voltage window, volts.
	MPPTLowV float64
	// Upper bound of the MPPT voltage window, volts.
	MPPTHighV float64
	// Maximum DC input voltage, volts.
	MaxDCVoltage float64
	// 1 or 3.
	Phases int
	// Timestamp when the record was created.
	CreatedAt *time.Time
	// Timestamp of the last update.
	UpdatedAt *time.Time
}

func (i *Inverter) VisibleIn(scope string) bool {
	return i.Scope == ScopePublic || (scope != "" && i.Scope == scope)
}

func (i *Inverter) Touch(now time.Time) {
	if i.CreatedAt == nil || i.CreatedAt.IsZero() {
		i.CreatedAt = &now
	}
	i.UpdatedAt = &now
}
