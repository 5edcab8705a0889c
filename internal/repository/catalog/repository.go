package catalog

import (
	"context"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"
)

// Repository loads the whole product catalog at once.
type Repository interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// Writer stores catalog entries. Upserts keep the original position of an
// existing id and append new ids at the end.
type Writer interface {
	UpsertMachine(ctx context.Context, m domain.Machine) error
	UpsertCoffee(ctx context.Context, c domain.CoffeeVariety) error
	UpsertAccompaniment(ctx context.Context, a domain.Accompaniment) error
	UpsertAccessory(ctx context.Context, a domain.Accessory) error
}
