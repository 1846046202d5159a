package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	"bookcatalog/internal/logging"
)

func main() {
	config.LoadEnvFiles()
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	if err := seed(context.Background(), cfg.Catalog); err != nil {
		logging.Fatal().Err(err).Str("dsn", catalog.RedactDSN(cfg.Catalog.DSN)).Msg("seed failed")
	}
}

func seed(ctx context.Context, cfg config.CatalogConfig) error {
	if cfg.DSN == "" {
		return errors.New("CATALOG_DSN is required")
	}

	pool, err := pgxpool.New(ctx, cfg.DSN)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	books := catalog.Seed()
	// Same checks the service applies when it loads the table.
	if _, err := catalog.NewStore(books); err != nil {
		return err
	}

	source := catalog.NewPostgresSource(pool, cfg.LoadTimeout)
	inserted, err := source.Insert(ctx, books)
	if err != nil {
		return err
	}

	var total int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM books").Scan(&total); err != nil {
		return fmt.Errorf("count books: %w", err)
	}

	logging.Info().
		Int64("inserted", inserted).
		Int("skipped", len(books)-int(inserted)).
		Int("total", total).
		Msg("catalog seeded")
	return nil
}
