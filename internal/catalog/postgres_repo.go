package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads a catalog snapshot from the books table.
// It is only used at startup; the service never writes to the database.
type PostgresSource struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresSource(db *pgxpool.Pool, timeout time.Duration) *PostgresSource {
	return &PostgresSource{db: db, timeout: timeout}
}

func (r *PostgresSource) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

// Load returns all rows ordered the way they should be listed.
func (r *PostgresSource) Load(ctx context.Context) ([]Book, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const query = `
		SELECT id, title, author, year, genre
		FROM books
		ORDER BY position, id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}

	books, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Book])
	if err != nil {
		return nil, fmt.Errorf("scan books: %w", err)
	}
	return books, nil
}

// Insert writes books with their catalog position, skipping ids that exist.
// It backs the seed command.
func (r *PostgresSource) Insert(ctx context.Context, books []Book) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	const insertSQL = `
		INSERT INTO books (id, title, author, year, genre, position)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`

	batch := &pgx.Batch{}
	for i, b := range books {
		batch.Queue(insertSQL, b.ID, b.Title, b.Author, b.Year, b.Genre, i+1)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range books {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert book: %w", err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// OpenSnapshot connects to dsn, loads the catalog and closes the pool.
func OpenSnapshot(ctx context.Context, dsn string, timeout time.Duration) ([]Book, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	defer pool.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("ping catalog database: %w", err)
	}

	return NewPostgresSource(pool, timeout).Load(ctx)
}

// RedactDSN hides the credentials of a URL-style DSN for logging.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
