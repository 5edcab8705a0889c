package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"coffee-subscription/internal/config"
	"coffee-subscription/internal/db"
	"coffee-subscription/internal/importer"
	"coffee-subscription/internal/logging"
	catalogrepo "coffee-subscription/internal/repository/catalog"
)

func importFile(ctx context.Context, path string, w importer.MachineWriter) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return importer.NewCSVImporter(f, w).Run(ctx)
}

func main() {
	var filePath string
	flag.StringVar(&filePath, "file", "", "Path to the machine CSV export")
	flag.Parse()

	if filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.FromEnv()
	logger := logging.New(cfg.Logging(), "importer")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect db")
	}
	defer pool.Close()

	start := time.Now()
	count, err := importFile(ctx, filePath, catalogrepo.NewPostgres(pool, logger))
	if err != nil {
		logger.Fatal().Err(err).Str("file", filePath).Int("imported", count).Msg("import failed")
	}

	fmt.Printf("Imported %d machines in %s\n", count, time.Since(start).Truncate(time.Millisecond))
}
