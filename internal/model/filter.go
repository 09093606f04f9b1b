package model

// Per-entity filters. Each field is an independent fragment; unset
// fields are ignored. Scope carries the caller's team id ("" means
// public-only access). AllScopes drops the visibility predicate
// entirely; it exists for cross-scope integrity checks on public
// records (dependents of a public manufacturer live in every team's
// scope) and must never be set from caller-facing reads.

type ManufacturerFilter struct {
	Scope     string
	AllScopes bool
	Search    string
	Types     []EquipmentType
	Names     []string
}

func (f ManufacturerFilter) Empty() bool {
	return f.Scope == "" &&
		!f.AllScopes &&
		f.Search == "" &&
		len(f.Types) == 0 &&
		len(f.Names) == 0
}

type SolarModuleFilter struct {
	Scope          string
	AllScopes      bool
	ManufacturerID string
	Search         string
	MinPowerW      *float64
	MaxPowerW      *float64
}

func (f SolarModuleFilter) Empty() bool {
	return f.Scope == "" &&
		!f.AllScopes &&
		f.ManufacturerID == "" &&
		f.Search == "" &&
		f.MinPowerW == nil &&
		f.MaxPowerW == nil
}

type InverterFilter struct {
	Scope          string
	AllScopes      bool
	ManufacturerID string
	Search         string
	MinACPowerW    *float64
	MaxACPowerW    *float64
}

func (f InverterFilter) Empty() bool {
	return f.Scope == "" &&
		!f.AllScopes &&
		f.ManufacturerID == "" &&
		f.Search == "" &&
		f.MinACPowerW == nil &&
		f.MaxACPowerW == nil
}
