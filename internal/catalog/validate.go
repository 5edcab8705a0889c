package catalog

import (
	"errors"
	"fmt"

	"coffee-subscription/internal/validation"
)

// Validate checks every entry for required fields, value ranges and
// duplicate ids. All problems are reported together.
func (c *Catalog) Validate() error {
	v := validation.Validator()
	var errs []error

	seen := map[string]bool{}
	dup := func(kind, id string) {
		key := kind + "/" + id
		if seen[key] {
			errs = append(errs, fmt.Errorf("%s %q: duplicate id", kind, id))
		}
		seen[key] = true
	}

	for _, m := range c.Machines {
		dup("machine", m.ID)
		if err := v.Struct(m); err != nil {
			errs = append(errs, fmt.Errorf("machine %q: %w", m.ID, err))
		}
		for _, f := range m.Features {
			if !f.Type.Valid() {
				errs = append(errs, fmt.Errorf("machine %q: unknown feature type %q", m.ID, f.Type))
			}
		}
		for _, p := range []struct {
			name  string
			isNeg bool
		}{
			{"price", m.Price.IsNegative()},
			{"monthlyPrice24", m.MonthlyPrice24.IsNegative()},
			{"monthlyPrice36", m.MonthlyPrice36.IsNegative()},
			{"monthlyPrice48", m.MonthlyPrice48.IsNegative()},
		} {
			if p.isNeg {
				errs = append(errs, fmt.Errorf("machine %q: negative %s", m.ID, p.name))
			}
		}
	}
	for _, cv := range c.Coffees {
		dup("coffee", cv.ID)
		if err := v.Struct(cv); err != nil {
			errs = append(errs, fmt.Errorf("coffee %q: %w", cv.ID, err))
		}
		if cv.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("coffee %q: negative price", cv.ID))
		}
	}
	for _, a := range c.Accompaniments {
		dup("accompaniment", a.ID)
		if err := v.Struct(a); err != nil {
			errs = append(errs, fmt.Errorf("accompaniment %q: %w", a.ID, err))
		}
		if a.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("accompaniment %q: negative price", a.ID))
		}
	}
	for _, a := range c.Accessories {
		dup("accessory", a.ID)
		if err := v.Struct(a); err != nil {
			errs = append(errs, fmt.Errorf("accessory %q: %w", a.ID, err))
		}
		if a.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("accessory %q: negative price", a.ID))
		}
	}
	return errors.Join(errs...)
}

// TierWarnings lists machines whose monthly rates do not decrease with
// longer contracts. Savings hints for those machines would be negative.
func (c *Catalog) TierWarnings() []string {
	var out []string
	for _, m := range c.Machines {
		if m.MonthlyPrice48.GreaterThan(m.MonthlyPrice36) || m.MonthlyPrice36.GreaterThan(m.MonthlyPrice24) {
			out = append(out, fmt.Sprintf("machine %q: monthly rates 24/36/48 = %s/%s/%s are not decreasing",
				m.ID, m.MonthlyPrice24, m.MonthlyPrice36, m.MonthlyPrice48))
		}
	}
	return out
}
