// Package clickhouse stores Solana transactions, slot records and checkpoints in ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// Conn is the part of the ClickHouse driver the repository uses.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		QueryRow(ctx context.Context, query string, args ...any) Row
		Exec(ctx context.Context, query string, args ...any) error
		Ping(ctx context.Context) error
		Close() error
	}
	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Err() error
		Close() error
	}
	Row interface {
		Scan(dest ...any) error
		Err() error
	}
)

type Repository struct {
	conn    Conn
	metrics Metrics
}

// Config holds connection settings. User and Password override credentials in DSN.
type Config struct {
	DSN      string
	User     string
	Password string
}

func NewRepository(cfg Config, metrics Metrics) (*Repository, error) {
	if cfg.DSN == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("clickhouse metrics is required")
	}

	options, err := clickhouse.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	if cfg.User != "" {
		options.Auth.Username = cfg.User
	}
	if cfg.Password != "" {
		options.Auth.Password = cfg.Password
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: driverConn{conn: conn}, metrics: metrics}, nil
}

// Ping verifies the connection.
func (r *Repository) Ping(ctx context.Context) error {
	if err := r.conn.Ping(ctx); err != nil {
		return fmt.Errorf("ping clickhouse: %w", err)
	}
	return nil
}

// Close releases the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

type driverConn struct {
	conn driver.Conn
}

func (c driverConn) PrepareBatch(ctx context.Context, query string) (Batch, error) {
	return c.conn.PrepareBatch(ctx, query)
}

func (c driverConn) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	return c.conn.Query(ctx, query, args...)
}

func (c driverConn) QueryRow(ctx context.Context, query string, args ...any) Row {
	return c.conn.QueryRow(ctx, query, args...)
}

func (c driverConn) Exec(ctx context.Context, query string, args ...any) error {
	return c.conn.Exec(ctx, query, args...)
}

func (c driverConn) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

func (c driverConn) Close() error {
	return c.conn.Close()
}
