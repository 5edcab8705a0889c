package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"coffee-subscription/internal/config"
	"coffee-subscription/internal/db"
	"coffee-subscription/internal/logging"
	"coffee-subscription/internal/migrate"
)

type options struct {
	down int
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&opts.down, "down", 0, "Number of migration steps to roll back instead of migrating up")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.down < 0 {
		return options{}, fmt.Errorf("-down must not be negative, got %d", opts.down)
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments %v", fs.Args())
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := config.FromEnv()
	logger := logging.New(cfg.Logging(), "migrate")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	if opts.down > 0 {
		if err := migrate.Rollback(ctx, pool, opts.down); err != nil {
			logger.Fatal().Err(err).Int("steps", opts.down).Msg("rollback migrations")
		}
	} else if err := migrate.Apply(ctx, pool); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	version, dirty, err := migrate.Version(ctx, pool)
	if err != nil {
		logger.Fatal().Err(err).Msg("read schema version")
	}
	logger.Info().Uint("version", version).Bool("dirty", dirty).Msg("migrations applied")
}
