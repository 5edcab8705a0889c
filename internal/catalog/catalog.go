// Package catalog holds the read-only product catalog the engines work from.
package catalog

import (
	"coffee-subscription/internal/domain"
)

// DefaultSavingsMachineID is the machine used for duration savings hints
// when nothing is selected yet.
const DefaultSavingsMachineID = "JURA GIGA X3"

// Catalog is loaded once at startup and never mutated afterwards.
type Catalog struct {
	Machines       []domain.Machine       `json:"machines"`
	Coffees        []domain.CoffeeVariety `json:"coffees"`
	Accompaniments []domain.Accompaniment `json:"accompaniments"`
	Accessories    []domain.Accessory     `json:"accessories"`
}

func (c *Catalog) Machine(id string) (domain.Machine, bool) {
	for _, m := range c.Machines {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Machine{}, false
}

func (c *Catalog) Coffee(id string) (domain.CoffeeVariety, bool) {
	for _, v := range c.Coffees {
		if v.ID == id {
			return v, true
		}
	}
	return domain.CoffeeVariety{}, false
}

func (c *Catalog) Accompaniment(id string) (domain.Accompaniment, bool) {
	for _, a := range c.Accompaniments {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Accompaniment{}, false
}

func (c *Catalog) Accessory(id string) (domain.Accessory, bool) {
	for _, a := range c.Accessories {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Accessory{}, false
}

// SavingsMachine returns the default reference machine for savings hints,
// or the first machine when the default is missing.
func (c *Catalog) SavingsMachine() (domain.Machine, bool) {
	if m, ok := c.Machine(DefaultSavingsMachineID); ok {
		return m, true
	}
	if len(c.Machines) > 0 {
		return c.Machines[0], true
	}
	return domain.Machine{}, false
}
