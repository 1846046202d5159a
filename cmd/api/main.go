package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	"bookcatalog/internal/logging"
	"bookcatalog/internal/metrics"
	"bookcatalog/internal/server"
	"bookcatalog/internal/system"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg)
	stop()
	if err != nil {
		logging.Fatal().Err(err).Msg("Server stopped with error")
	}
	logging.Info().Msg("Server stopped")
}

// run serves the catalog until ctx is canceled or the server cannot
// continue. Cancellation is a clean stop and returns nil.
func run(ctx context.Context, cfg *config.Config) error {
	store, err := loadStore(ctx, cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	metrics.SetCatalogSize(store.Len())

	httpServer := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      newHandler(cfg, store),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sup := server.NewSupervisor(cfg.App.Name, cfg.Server.ShutdownTimeout)
	sup.Add(server.NewHTTPService(httpServer, cfg.Server.ShutdownTimeout))

	logging.Info().
		Str("addr", httpServer.Addr).
		Int("port", cfg.Server.Port).
		Str("environment", cfg.App.Environment).
		Str("version", cfg.App.Version).
		Int("books", store.Len()).
		Msg("Book API listening")

	err = sup.Serve(ctx)

	if unstopped, _ := sup.UnstoppedServiceReport(); len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadStore builds the record store from the configured snapshot source.
func loadStore(ctx context.Context, cfg config.CatalogConfig) (*catalog.Store, error) {
	books := catalog.Seed()
	source := "seed"

	if cfg.DSN != "" {
		loaded, err := catalog.OpenSnapshot(ctx, cfg.DSN, cfg.LoadTimeout)
		if err != nil {
			return nil, fmt.Errorf("load snapshot from %s: %w", catalog.RedactDSN(cfg.DSN), err)
		}
		books = loaded
		source = "postgres"
	}

	store, err := catalog.NewStore(books)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("source", source).Int("books", store.Len()).Msg("Catalog loaded")
	return store, nil
}

func newHandler(cfg *config.Config, store *catalog.Store) http.Handler {
	return server.NewRouter(
		server.RouterConfig{
			CORSOrigins: cfg.Security.CORSOrigins,
			EnableHSTS:  cfg.Security.EnableHSTS,
		},
		server.Handlers{
			Books: book.NewHTTPHandler(book.NewService(store)),
			System: system.NewHTTPHandler(system.Info{
				Service:     cfg.App.Name,
				Version:     cfg.App.Version,
				Environment: cfg.App.Environment,
			}, nil),
		},
	)
}
