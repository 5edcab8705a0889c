package catalog

import (
	"context"

	"coffee-subscription/internal/catalog"
)

type staticRepo struct {
	catalog *catalog.Catalog
}

// NewStatic serves a fixed catalog; nil means the built-in one.
func NewStatic(c *catalog.Catalog) Repository {
	if c == nil {
		c = catalog.Default()
	}
	return &staticRepo{catalog: c}
}

func (r *staticRepo) Load(context.Context) (*catalog.Catalog, error) {
	return r.catalog, nil
}
