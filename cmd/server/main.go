// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/app"
	"github.com/festy23/footballdb/internal/config"
	dbConfig "github.com/festy23/footballdb/internal/database/config"
	"github.com/festy23/footballdb/internal/database/database"
	"github.com/festy23/footballdb/internal/database/migrate"
	"github.com/festy23/footballdb/internal/ingestion"
	"github.com/festy23/footballdb/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "footballdb: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	env := config.NewEnv()
	cfg := config.Load(env)
	dbCfg := dbConfig.LoadConfig(env)
	retryCfg := dbConfig.LoadRetryConfig(env)
	if err := errors.Join(env.Err(), cfg.Validate(), dbCfg.Validate()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	log, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	retryCfg.OnRetry = func(attempt int, delay time.Duration, err error) {
		log.Warnw("store not ready, retrying", "attempt", attempt, "delay", delay, "error", dbConfig.SanitizeError(err, dbCfg))
	}
	db, err := database.Connect(ctx, dbCfg, retryCfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Warnw("failed to close store", "error", err)
		}
	}()
	log.Infow("store opened", "driver", dbCfg.Driver)

	if err := migrate.Reset(db, dbCfg.Driver); err != nil {
		return fmt.Errorf("failed to reset schema: %w", err)
	}
	log.Infow("schema recreated")

	repos := app.NewRepositories(db)

	if cfg.Ingest.Enabled {
		if err := ingest(ctx, repos, cfg.Ingest, log); err != nil {
			return err
		}
	} else {
		log.Infow("ingestion disabled")
	}

	router := app.NewRouter(db, app.NewServices(repos, log), log)
	if cfg.Server.Pprof {
		pprof.Register(router)
		log.Infow("pprof endpoints enabled")
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Infow("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func ingest(ctx context.Context, repos app.Repositories, cfg config.IngestConfig, log *zap.SugaredLogger) error {
	catalog, err := ingestion.LoadCatalog(cfg.FeedsFile)
	if err != nil {
		return fmt.Errorf("failed to load feed catalog: %w", err)
	}

	summary, err := app.NewLoader(repos, cfg, log).Run(ctx, catalog)
	if err != nil {
		log.Errorw("ingestion failed", "error", err, "games_loaded", summary.Games)
		return fmt.Errorf("ingestion failed: %w", err)
	}

	log.Infow("ingestion finished",
		"feeds", summary.Feeds,
		"clubs", summary.Clubs,
		"rounds", summary.Rounds,
		"games", summary.Games,
	)
	return nil
}
