// Package postgres stores Solana transactions, slot records and checkpoints in PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// DB is satisfied by *pgxpool.Pool.
	DB interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Begin(ctx context.Context) (pgx.Tx, error)
		Ping(ctx context.Context) error
		Close()
	}
)

const (
	transactionsTable = "solana_transactions"
	slotsTable        = "solana_slots"
	checkpointsTable  = "solana_checkpoints"

	// insertChunkSize keeps a multi-row insert well below the 65535 bind parameter limit.
	insertChunkSize = 500
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	db      DB
	metrics Metrics
}

// NewRepository opens a connection pool for dsn. Connections are established lazily.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("postgres metrics is required")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}

	return &Repository{db: pool, metrics: metrics}, nil
}

// Ping verifies the connection.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Close releases the pool.
func (r *Repository) Close() error {
	r.db.Close()
	return nil
}
