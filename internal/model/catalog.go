package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// NormalizeName is the canonical form used for name uniqueness checks.
// The persistence layer stores the same form in name_norm / model_norm
// fields so the unique indexes agree with the in-memory checks.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type ViolationKind string

const (
	ViolationDanglingReference ViolationKind = "dangling_reference"
	ViolationDuplicateName     ViolationKind = "duplicate_name"
)

type Violation struct {
	Kind   ViolationKind
	Entity string
	ID     string
	Detail string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s %s: %s", v.Kind, v.Entity, v.ID, v.Detail)
}

// EquipmentCatalog is the in-memory consistency boundary over the
// manufacturers, solar_modules and inverters collections. It is built
// fresh for every catalog operation from whatever the caller may see
// (its own scope plus public) and discarded afterwards; it is never
// cached across requests.
//
// Mutators only check invariants against the loaded set. They are a
// fast-path pre-check: the storage-level unique indexes remain the
// actual enforcement point under concurrent writers.
type EquipmentCatalog struct {
	scope         string
	manufacturers map[string]*Manufacturer
	modules       map[string]*SolarModule
	inverters     map[string]*Inverter
}

func NewEquipmentCatalog(
	scope string,
	manufacturers []*Manufacturer,
	modules []*SolarModule,
	inverters []*Inverter,
) *EquipmentCatalog {
	c := &EquipmentCatalog{
		scope:         scope,
		manufacturers: make(map[string]*Manufacturer, len(manufacturers)),
		modules:       make(map[string]*SolarModule, len(modules)),
		inverters:     make(map[string]*Inverter, len(inverters)),
	}
	for _, m := range manufacturers {
		if m != nil {
			c.manufacturers[m.ID] = m
		}
	}
	for _, m := range modules {
		if m != nil {
			c.modules[m.ID] = m
		}
	}
	for _, i := range inverters {
		if i != nil {
			c.inverters[i.ID] = i
		}
	}
	return c
}

func (c *EquipmentCatalog) Scope() string { return c.scope }

func (c *EquipmentCatalog) Manufacturers() []*Manufacturer {
	return lo.Values(c.manufacturers)
}

func (c *EquipmentCatalog) Modules() []*SolarModule {
	return lo.Values(c.modules)
}

func (c *EquipmentCatalog) Inverters() []*Inverter {
	return lo.Values(c.inverters)
}

func (c *EquipmentCatalog) ManufacturerByID(id string) (*Manufacturer, bool) {
	m, ok := c.manufacturers[id]
	return m, ok
}

func (c *EquipmentCatalog) ModuleByID(id string) (*SolarModule, bool) {
	m, ok := c.modules[id]
	return m, ok
}

func (c *EquipmentCatalog) InverterByID(id string) (*Inverter, bool) {
	i, ok := c.inverters[id]
	return i, ok
}

// nameConflict reports whether two manufacturers with the given scopes
// compete for the same name. Names collide within one scope; a public
// name collides with every scope.
func nameConflict(a, b string) bool {
	return a == b || a == ScopePublic || b == ScopePublic
}

func (c *EquipmentCatalog) AddManufacturer(m *Manufacturer) error {
	norm := NormalizeName(m.Name)
	for _, existing := range c.manufacturers {
		if existing.ID == m.ID {
			continue
		}
		if NormalizeName(existing.Name) == norm && nameConflict(existing.Scope, m.Scope) {
			return fmt.Errorf("manufacturer %q in scope %q: %w", m.Name, existing.Scope, ErrDuplicateName)
		}
	}
	c.manufacturers[m.ID] = m
	return nil
}

func (c *EquipmentCatalog) UpdateManufacturer(m *Manufacturer) error {
	if _, ok := c.manufacturers[m.ID]; !ok {
		return fmt.Errorf("manufacturer %s: %w", m.ID, ErrNotFound)
	}
	norm := NormalizeName(m.Name)
	for _, existing := range c.manufacturers {
		if existing.ID == m.ID {
			continue
		}
		if NormalizeName(existing.Name) == norm && nameConflict(existing.Scope, m.Scope) {
			return fmt.Errorf("manufacturer %q in scope %q: %w", m.Name, existing.Scope, ErrDuplicateName)
		}
	}
	c.manufacturers[m.ID] = m
	return nil
}

// DeleteManufacturer refuses to remove a manufacturer that is still
// referenced by loaded equipment. Cascading removal is deliberately not
// offered here; callers must delete dependents explicitly first.
func (c *EquipmentCatalog) DeleteManufacturer(id string) error {
	if _, ok := c.manufacturers[id]; !ok {
		return fmt.Errorf("manufacturer %s: %w", id, ErrNotFound)
	}
	for _, m := range c.modules {
		if m.ManufacturerID == id {
			return fmt.Errorf("manufacturer %s referenced by module %s: %w", id, m.ID, ErrHasDependents)
		}
	}
	for _, i := range c.inverters {
		if i.ManufacturerID == id {
			return fmt.Errorf("manufacturer %s referenced by inverter %s: %w", id, i.ID, ErrHasDependents)
		}
	}
	delete(c.manufacturers, id)
	return nil
}

func (c *EquipmentCatalog) resolveManufacturer(manufacturerID string) error {
	if _, ok := c.manufacturers[manufacturerID]; !ok {
		return fmt.Errorf("manufacturer %s: %w", manufacturerID, ErrDanglingReference)
	}
	return nil
}

func (c *EquipmentCatalog) AddModule(m *SolarModule) error {
	if err := c.resolveManufacturer(m.ManufacturerID); err != nil {
		return err
	}
	norm := NormalizeName(m.Model)
	for _, existing := range c.modules {
		if existing.ID == m.ID {
			continue
		}
		if existing.ManufacturerID == m.ManufacturerID &&
			existing.Scope == m.Scope &&
			NormalizeName(existing.Model) == norm {
			return fmt.Errorf("module model %q: %w", m.Model, ErrDuplicateName)
		}
	}
	c.modules[m.ID] = m
	return nil
}

func (c *EquipmentCatalog) UpdateModule(m *SolarModule) error {
	if _, ok := c.modules[m.ID]; !ok {
		return fmt.Errorf("module %s: %w", m.ID, ErrNotFound)
	}
	if err := c.resolveManufacturer(m.ManufacturerID); err != nil {
		return err
	}
	c.modules[m.ID] = m
	return nil
}

func (c *EquipmentCatalog) DeleteModule(id string) error {
	if _, ok := c.modules[id]; !ok {
		return fmt.Errorf("module %s: %w", id, ErrNotFound)
	}
	delete(c.modules, id)
	return nil
}

func (c *EquipmentCatalog) AddInverter(i *Inverter) error {
	if err := c.resolveManufacturer(i.ManufacturerID); err != nil {
		return err
	}
	norm := NormalizeName(i.Model)
	for _, existing := range c.inverters {
		if existing.ID == i.ID {
			continue
		}
		if existing.ManufacturerID == i.ManufacturerID &&
			existing.Scope == i.Scope &&
			NormalizeName(existing.Model) == norm {
			return fmt.Errorf("inverter model %q: %w", i.Model, ErrDuplicateName)
		}
	}
	c.inverters[i.ID] = i
	return nil
}

func (c *EquipmentCatalog) UpdateInverter(i *Inverter) error {
	if _, ok := c.inverters[i.ID]; !ok {
		return fmt.Errorf("inverter %s: %w", i.ID, ErrNotFound)
	}
	if err := c.resolveManufacturer(i.ManufacturerID); err != nil {
		return err
	}
	c.inverters[i.ID] = i
	return nil
}

func (c *EquipmentCatalog) DeleteInverter(id string) error {
	if _, ok := c.inverters[id]; !ok {
		return fmt.Errorf("inverter %s: %w", id, ErrNotFound)
	}
	delete(c.inverters, id)
	return nil
}

// ValidateConsistency scans the loaded set and reports every dangling
// manufacturer reference and duplicate-name collision. Violations are
// data, not errors; the caller decides how to react.
func (c *EquipmentCatalog) ValidateConsistency() []Violation {
	var out []Violation

	for _, m := range c.modules {
		if _, ok := c.manufacturers[m.ManufacturerID]; !ok {
			out = append(out, Violation{
				Kind:   ViolationDanglingReference,
				Entity: "solar_module",
				ID:     m.ID,
				Detail: fmt.Sprintf("manufacturer %s not found", m.ManufacturerID),
			})
		}
	}
	for _, i := range c.inverters {
		if _, ok := c.manufacturers[i.ManufacturerID]; !ok {
			out = append(out, Violation{
				Kind:   ViolationDanglingReference,
				Entity: "inverter",
				ID:     i.ID,
				Detail: fmt.Sprintf("manufacturer %s not found", i.ManufacturerID),
			})
		}
	}

	byName := make(map[string][]*Manufacturer, len(c.manufacturers))
	for _, m := range c.manufacturers {
		norm := NormalizeName(m.Name)
		byName[norm] = append(byName[norm], m)
	}
	for _, group := range byName {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return group[i].ID < group[j].ID })
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				if nameConflict(group[i].Scope, group[j].Scope) {
					out = append(out, Violation{
						Kind:   ViolationDuplicateName,
						Entity: "manufacturer",
						ID:     group[j].ID,
						Detail: fmt.Sprintf("name %q collides with manufacturer %s", group[j].Name, group[i].ID),
					})
				}
			}
		}
	}

	return out
}

// RepairInconsistencies makes a single best-effort pass over the
// detected violations: equipment whose manufacturer is missing is
// dropped from the catalog. Duplicate names are reported only; picking
// a survivor automatically would destroy user data. The returned count
// is advisory — the pass does not re-validate afterwards.
func (c *EquipmentCatalog) RepairInconsistencies() int {
	repaired := 0
	for _, v := range c.ValidateConsistency() {
		if v.Kind != ViolationDanglingReference {
			continue
		}
		switch v.Entity {
		case "solar_module":
			delete(c.modules, v.ID)
			repaired++
		case "inverter":
			delete(c.inverters, v.ID)
			repaired++
		}
	}
	return repaired
}
