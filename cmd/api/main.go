package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffee-subscription/internal/config"
	"coffee-subscription/internal/db"
	"coffee-subscription/internal/httpserver"
	"coffee-subscription/internal/logging"
	catalogrepo "coffee-subscription/internal/repository/catalog"
	sessionrepo "coffee-subscription/internal/repository/session"
	advisorsvc "coffee-subscription/internal/service/advisor"
	catalogsvc "coffee-subscription/internal/service/catalog"
	subscriptionsvc "coffee-subscription/internal/service/subscription"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.FromEnv()
	logger := logging.New(cfg.Logging(), "api")
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var (
		pool     *pgxpool.Pool
		catalogs catalogrepo.Repository = catalogrepo.NewStatic(nil)
	)
	if cfg.UsesDatabase() {
		pool, err = db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatal().Err(err).Msg("connect to db")
		}
		defer pool.Close()
		catalogs = catalogrepo.NewPostgres(pool, logger)
	}

	catalogService := catalogsvc.New(catalogs)
	warnings, err := catalogService.Reload(ctx)
	if err != nil {
		logger.Fatal().Err(err).Str("source", cfg.CatalogSource).Msg("load catalog")
	}
	for _, w := range warnings {
		logger.Warn().Msg(w)
	}

	sessions := sessionrepo.NewMemory(cfg.SessionTTL(), logger)
	if ttl := cfg.SessionTTL(); ttl > 0 {
		go sessions.Run(ctx, sweepInterval(ttl))
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		CatalogSvc:      catalogService,
		SubscriptionSvc: subscriptionsvc.New(sessions, catalogService),
		AdvisorSvc:      advisorsvc.New(sessions, catalogService),
	}, httpserver.Options{
		DB:                      pool,
		CORSAllowedOrigins:      cfg.CORSAllowedOrigins,
		SessionCreatesPerMinute: cfg.SessionCreatesPerMin,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Str("catalog", cfg.CatalogSource).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		logger.Error().Err(err).Msg("server error")
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		logger.Info().Msg("server stopped")
	}
}

// sweepInterval runs the janitor a few times per TTL, at most once a minute.
func sweepInterval(ttl time.Duration) time.Duration {
	iv := ttl / 4
	if iv < time.Minute {
		iv = time.Minute
	}
	return iv
}
