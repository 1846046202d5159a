package main

import (
	"errors"
	"fmt"
	"os"

	"bookcatalog/internal/config"
)

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}

// loadConfig reads the shared service configuration. The migrator only
// makes sense against a database, so an empty catalog DSN is an error.
func loadConfig() (*config.Config, error) {
	// Do not override environment provided by the runtime (e.g. Docker).
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Catalog.DSN == "" {
		return nil, errors.New("CATALOG_DSN is required")
	}
	return cfg, nil
}
