package seed

import (
	"context"
	"fmt"

	"coffee-subscription/internal/catalog"
	catalogrepo "coffee-subscription/internal/repository/catalog"
)

// Counts reports how many entries of each kind were written.
type Counts struct {
	Machines       int
	Coffees        int
	Accompaniments int
	Accessories    int
}

// Apply writes the catalog through w. Upserts make it idempotent; a nil
// catalog seeds the built-in one.
func Apply(ctx context.Context, w catalogrepo.Writer, c *catalog.Catalog) (Counts, error) {
	if c == nil {
		c = catalog.Default()
	}
	if err := c.Validate(); err != nil {
		return Counts{}, fmt.Errorf("seed catalog invalid: %w", err)
	}

	var n Counts
	for _, m := range c.Machines {
		if err := w.UpsertMachine(ctx, m); err != nil {
			return n, fmt.Errorf("upsert machine %s: %w", m.ID, err)
		}
		n.Machines++
	}
	for _, cv := range c.Coffees {
		if err := w.UpsertCoffee(ctx, cv); err != nil {
			return n, fmt.Errorf("upsert coffee %s: %w", cv.ID, err)
		}
		n.Coffees++
	}
	for _, a := range c.Accompaniments {
		if err := w.UpsertAccompaniment(ctx, a); err != nil {
			return n, fmt.Errorf("upsert accompaniment %s: %w", a.ID, err)
		}
		n.Accompaniments++
	}
	for _, a := range c.Accessories {
		if err := w.UpsertAccessory(ctx, a); err != nil {
			return n, fmt.Errorf("upsert accessory %s: %w", a.ID, err)
		}
		n.Accessories++
	}
	return n, nil
}
