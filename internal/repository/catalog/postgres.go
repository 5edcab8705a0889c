package catalog

import (
	"context"
	"fmt"

	"coffee-subscription/internal/catalog"
	"coffee-subscription/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PostgresRepo reads and writes the catalog tables. Money columns travel as
// text to keep decimal precision exact.
type PostgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) *PostgresRepo {
	return &PostgresRepo{pool: pool, logger: logger.With().Str("repo", "catalog").Logger()}
}

func (r *PostgresRepo) Load(ctx context.Context) (*catalog.Catalog, error) {
	machines, err := r.listMachines(ctx)
	if err != nil {
		return nil, err
	}
	coffees, err := r.listCoffees(ctx)
	if err != nil {
		return nil, err
	}
	accompaniments, err := r.listAccompaniments(ctx)
	if err != nil {
		return nil, err
	}
	accessories, err := r.listAccessories(ctx)
	if err != nil {
		return nil, err
	}

	r.logger.Debug().
		Int("machines", len(machines)).
		Int("coffees", len(coffees)).
		Int("accompaniments", len(accompaniments)).
		Int("accessories", len(accessories)).
		Msg("catalog loaded")

	return &catalog.Catalog{
		Machines:       machines,
		Coffees:        coffees,
		Accompaniments: accompaniments,
		Accessories:    accessories,
	}, nil
}

func (r *PostgresRepo) listMachines(ctx context.Context) ([]domain.Machine, error) {
	const q = `
SELECT id, name, description, image, price::text, monthly_price_24::text, monthly_price_36::text, monthly_price_48::text,
       min_cups_per_day, max_cups_per_day
FROM machines
ORDER BY position, id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list machines")
		return nil, fmt.Errorf("list machines: %w", err)
	}
	defer rows.Close()

	var (
		result []domain.Machine
		index  = map[string]int{}
	)
	for rows.Next() {
		var (
			m                    domain.Machine
			price, p24, p36, p48 string
		)
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Image, &price, &p24, &p36, &p48, &m.MinCupsPerDay, &m.MaxCupsPerDay); err != nil {
			return nil, fmt.Errorf("scan machine: %w", err)
		}
		for _, f := range []struct {
			raw string
			dst *decimal.Decimal
		}{{price, &m.Price}, {p24, &m.MonthlyPrice24}, {p36, &m.MonthlyPrice36}, {p48, &m.MonthlyPrice48}} {
			if err := parseMoney(m.ID, f.raw, f.dst); err != nil {
				return nil, err
			}
		}
		m.Features = []domain.Feature{}
		index[m.ID] = len(result)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list machines: %w", err)
	}

	const fq = `
SELECT machine_id, type, label
FROM machine_features
ORDER BY machine_id, position
`
	frows, err := r.pool.Query(ctx, fq)
	if err != nil {
		return nil, fmt.Errorf("list machine features: %w", err)
	}
	defer frows.Close()

	for frows.Next() {
		var (
			machineID string
			f         domain.Feature
		)
		if err := frows.Scan(&machineID, &f.Type, &f.Label); err != nil {
			return nil, fmt.Errorf("scan machine feature: %w", err)
		}
		if i, ok := index[machineID]; ok {
			result[i].Features = append(result[i].Features, f)
		}
	}
	if err := frows.Err(); err != nil {
		return nil, fmt.Errorf("list machine features: %w", err)
	}
	return result, nil
}

func (r *PostgresRepo) listCoffees(ctx context.Context) ([]domain.CoffeeVariety, error) {
	const q = `
SELECT id, reference, brand, name, intensity, description, image, price::text,
       cup_price_override::text, flat_monthly_override::text
FROM coffees
ORDER BY position, id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error().Err(err).Msg("list coffees")
		return nil, fmt.Errorf("list coffees: %w", err)
	}
	defer rows.Close()

	var result []domain.CoffeeVariety
	for rows.Next() {
		var (
			c         domain.CoffeeVariety
			price     string
			cup, flat *string
		)
		if err := rows.Scan(&c.ID, &c.Reference, &c.Brand, &c.Name, &c.Intensity, &c.Description, &c.Image, &price, &cup, &flat); err != nil {
			return nil, fmt.Errorf("scan coffee: %w", err)
		}
		if err := parseMoney(c.ID, price, &c.Price); err != nil {
			return nil, err
		}
		if c.CupPriceOverride, err = parseOptionalMoney(c.ID, cup); err != nil {
			return nil, err
		}
		if c.FlatMonthlyOverride, err = parseOptionalMoney(c.ID, flat); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list coffees: %w", err)
	}
	return result, nil
}

func (r *PostgresRepo) listAccompaniments(ctx context.Context) ([]domain.Accompaniment, error) {
	const q = `
SELECT id, name, description, image, price::text, category
FROM accompaniments
ORDER BY position, id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list accompaniments: %w", err)
	}
	defer rows.Close()

	var result []domain.Accompaniment
	for rows.Next() {
		var (
			a     domain.Accompaniment
			price string
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Image, &price, &a.Category); err != nil {
			return nil, fmt.Errorf("scan accompaniment: %w", err)
		}
		if err := parseMoney(a.ID, price, &a.Price); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accompaniments: %w", err)
	}
	return result, nil
}

func (r *PostgresRepo) listAccessories(ctx context.Context) ([]domain.Accessory, error) {
	const q = `
SELECT id, name, description, image, price::text
FROM accessories
ORDER BY position, id
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list accessories: %w", err)
	}
	defer rows.Close()

	var result []domain.Accessory
	for rows.Next() {
		var (
			a     domain.Accessory
			price string
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.Image, &price); err != nil {
			return nil, fmt.Errorf("scan accessory: %w", err)
		}
		if err := parseMoney(a.ID, price, &a.Price); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list accessories: %w", err)
	}
	return result, nil
}

func (r *PostgresRepo) UpsertMachine(ctx context.Context, m domain.Machine) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO machines (id, position, name, description, image, price, monthly_price_24, monthly_price_36, monthly_price_48, min_cups_per_day, max_cups_per_day)
VALUES ($1, (SELECT COALESCE(MAX(position) + 1, 0) FROM machines), $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8::numeric, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    image = EXCLUDED.image,
    price = EXCLUDED.price,
    monthly_price_24 = EXCLUDED.monthly_price_24,
    monthly_price_36 = EXCLUDED.monthly_price_36,
    monthly_price_48 = EXCLUDED.monthly_price_48,
    min_cups_per_day = EXCLUDED.min_cups_per_day,
    max_cups_per_day = EXCLUDED.max_cups_per_day,
    updated_at = now()
`
	if _, err := tx.Exec(ctx, q, m.ID, m.Name, m.Description, m.Image,
		m.Price.String(), m.MonthlyPrice24.String(), m.MonthlyPrice36.String(), m.MonthlyPrice48.String(),
		m.MinCupsPerDay, m.MaxCupsPerDay); err != nil {
		r.logger.Error().Err(err).Str("id", m.ID).Msg("upsert machine")
		return fmt.Errorf("upsert machine %s: %w", m.ID, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM machine_features WHERE machine_id = $1`, m.ID); err != nil {
		return fmt.Errorf("reset features of %s: %w", m.ID, err)
	}
	for i, f := range m.Features {
		if _, err := tx.Exec(ctx, `
INSERT INTO machine_features (machine_id, position, type, label)
VALUES ($1, $2, $3, $4)
`, m.ID, i, string(f.Type), f.Label); err != nil {
			return fmt.Errorf("insert feature %d of %s: %w", i, m.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	r.logger.Debug().Str("id", m.ID).Int("features", len(m.Features)).Msg("machine upserted")
	return nil
}

func (r *PostgresRepo) UpsertCoffee(ctx context.Context, c domain.CoffeeVariety) error {
	const q = `
INSERT INTO coffees (id, position, reference, brand, name, intensity, description, image, price, cup_price_override, flat_monthly_override)
VALUES ($1, (SELECT COALESCE(MAX(position) + 1, 0) FROM coffees), $2, $3, $4, $5, $6, $7, $8::numeric, $9::numeric, $10::numeric)
ON CONFLICT (id) DO UPDATE SET
    reference = EXCLUDED.reference,
    brand = EXCLUDED.brand,
    name = EXCLUDED.name,
    intensity = EXCLUDED.intensity,
    description = EXCLUDED.description,
    image = EXCLUDED.image,
    price = EXCLUDED.price,
    cup_price_override = EXCLUDED.cup_price_override,
    flat_monthly_override = EXCLUDED.flat_monthly_override,
    updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, c.ID, c.Reference, c.Brand, c.Name, c.Intensity, c.Description, c.Image,
		c.Price.String(), optionalMoney(c.CupPriceOverride), optionalMoney(c.FlatMonthlyOverride)); err != nil {
		r.logger.Error().Err(err).Str("id", c.ID).Msg("upsert coffee")
		return fmt.Errorf("upsert coffee %s: %w", c.ID, err)
	}
	return nil
}

func (r *PostgresRepo) UpsertAccompaniment(ctx context.Context, a domain.Accompaniment) error {
	const q = `
INSERT INTO accompaniments (id, position, name, description, image, price, category)
VALUES ($1, (SELECT COALESCE(MAX(position) + 1, 0) FROM accompaniments), $2, $3, $4, $5::numeric, $6)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    image = EXCLUDED.image,
    price = EXCLUDED.price,
    category = EXCLUDED.category,
    updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, a.ID, a.Name, a.Description, a.Image, a.Price.String(), string(a.Category)); err != nil {
		r.logger.Error().Err(err).Str("id", a.ID).Msg("upsert accompaniment")
		return fmt.Errorf("upsert accompaniment %s: %w", a.ID, err)
	}
	return nil
}

func (r *PostgresRepo) UpsertAccessory(ctx context.Context, a domain.Accessory) error {
	const q = `
INSERT INTO accessories (id, position, name, description, image, price)
VALUES ($1, (SELECT COALESCE(MAX(position) + 1, 0) FROM accessories), $2, $3, $4, $5::numeric)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    image = EXCLUDED.image,
    price = EXCLUDED.price,
    updated_at = now()
`
	if _, err := r.pool.Exec(ctx, q, a.ID, a.Name, a.Description, a.Image, a.Price.String()); err != nil {
		r.logger.Error().Err(err).Str("id", a.ID).Msg("upsert accessory")
		return fmt.Errorf("upsert accessory %s: %w", a.ID, err)
	}
	return nil
}

func parseMoney(id, raw string, dst *decimal.Decimal) error {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return fmt.Errorf("parse price %q of %s: %w", raw, id, err)
	}
	*dst = v
	return nil
}

func parseOptionalMoney(id string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	v, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, fmt.Errorf("parse price %q of %s: %w", *raw, id, err)
	}
	return &v, nil
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
