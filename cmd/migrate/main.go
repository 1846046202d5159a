package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"bookcatalog/internal/logging"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	dir := migrationsDir()

	if *command == "create" {
		if *name == "" {
			logging.Fatal().Msg("name is required for 'create' command")
		}
		if err := goose.Create(nil, dir, *name, "sql"); err != nil {
			logging.Fatal().Err(err).Msg("create migration")
		}
		logging.Info().Str("name", *name).Str("dir", dir).Msg("migration created")
		return
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Catalog.DSN)
	if err != nil {
		logging.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logging.Fatal().Err(err).Msg("set goose dialect")
	}

	if err := run(db, *command, dir); err != nil {
		logging.Fatal().Err(err).Str("command", *command).Msg("migration failed")
	}
}

func run(db *sql.DB, command, dir string) error {
	switch command {
	case "up":
		if err := goose.Up(db, dir); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
		logging.Info().Str("dir", dir).Msg("migrations applied")
	case "down":
		if err := goose.Down(db, dir); err != nil {
			return fmt.Errorf("roll back migration: %w", err)
		}
		logging.Info().Str("dir", dir).Msg("migration rolled back")
	case "status":
		if err := goose.Status(db, dir); err != nil {
			return fmt.Errorf("migration status: %w", err)
		}
	default:
		return fmt.Errorf("unknown command %q, use: up, down, status, create", command)
	}
	return nil
}
