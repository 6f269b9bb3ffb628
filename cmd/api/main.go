// @title       pet-namer API
// @version     1.0
// @description CRUD de mascotas con nombres generados por IA.
// @BasePath    /
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	pg "pet-namer/internal/adapters/storage/postgres"
	"pet-namer/internal/config"
	"pet-namer/internal/platform/logger"
	"pet-namer/internal/router"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		App:    cfg.AppName,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("server error", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	db, err := openDB(ctx, cfg, lg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	namer, err := newNameGenerator(ctx, cfg.Naming, lg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Namer: namer, DB: db, Logger: lg}),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting server", zap.String("addr", srv.Addr), zap.String("naming_provider", cfg.Naming.Provider))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openDB abre Postgres si hay DB_DSN. Sin DSN devuelve nil (store en memoria).
func openDB(ctx context.Context, cfg *config.Config, lg *zap.Logger) (*sql.DB, error) {
	if cfg.Database.DSN == "" {
		return nil, nil
	}

	if cfg.Database.Migrate {
		if err := pg.RunMigrations(cfg.Database.DSN, lg.Named("migrate")); err != nil {
			return nil, err
		}
	}

	db, err := pg.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	lg.Info("connected to postgres")
	return db, nil
}
