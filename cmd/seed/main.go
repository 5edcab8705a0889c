package main

import (
	"context"
	"flag"

	"coffee-subscription/internal/config"
	"coffee-subscription/internal/db"
	"coffee-subscription/internal/domain"
	"coffee-subscription/internal/logging"
	catalogrepo "coffee-subscription/internal/repository/catalog"
	"coffee-subscription/internal/seed"
)

// discardWriter accepts every entry without storing it. -dry-run uses it to
// validate and count the built-in catalog without a database.
type discardWriter struct{}

func (discardWriter) UpsertMachine(context.Context, domain.Machine) error             { return nil }
func (discardWriter) UpsertCoffee(context.Context, domain.CoffeeVariety) error        { return nil }
func (discardWriter) UpsertAccompaniment(context.Context, domain.Accompaniment) error { return nil }
func (discardWriter) UpsertAccessory(context.Context, domain.Accessory) error         { return nil }

func main() {
	var dryRun bool
	flag.BoolVar(&dryRun, "dry-run", false, "Validate the catalog and report counts without writing")
	flag.Parse()

	cfg, err := config.FromEnv()
	logger := logging.New(cfg.Logging(), "seed")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	var w catalogrepo.Writer = discardWriter{}
	if !dryRun {
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect db")
		}
		defer pool.Close()
		w = catalogrepo.NewPostgres(pool, logger)
	}

	n, err := seed.Apply(ctx, w, nil)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed apply")
	}

	logger.Info().
		Bool("dry_run", dryRun).
		Int("machines", n.Machines).
		Int("coffees", n.Coffees).
		Int("accompaniments", n.Accompaniments).
		Int("accessories", n.Accessories).
		Msg("seed applied")
}
