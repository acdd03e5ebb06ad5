package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Postgres keeps the ledger in a payments table. Appends are single
// INSERTs, so concurrent writers cannot lose each other's entries the
// way the file backing's full rewrite could across processes.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// RunMigrations runs database migrations
func (p *Postgres) RunMigrations(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS payments (
			id BIGSERIAL PRIMARY KEY,
			recorded_on TEXT NOT NULL,
			usd NUMERIC(14,2) NOT NULL DEFAULT 0,
			khr BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_payments_recorded_on ON payments(recorded_on);
	`)
	return err
}

func (p *Postgres) Append(ctx context.Context, e Entry) error {
	_, err := p.pool.Exec(ctx,
		"INSERT INTO payments (recorded_on, usd, khr) VALUES ($1, $2, $3)",
		e.Date, e.USD.String(), e.KHR,
	)
	return err
}

func (p *Postgres) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := p.pool.Query(ctx, "SELECT recorded_on, usd::text, khr FROM payments ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var usd string
		if err := rows.Scan(&e.Date, &usd, &e.KHR); err != nil {
			return nil, err
		}
		e.USD, err = decimal.NewFromString(usd)
		if err != nil {
			return nil, fmt.Errorf("failed to parse usd amount %q: %w", usd, err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}
