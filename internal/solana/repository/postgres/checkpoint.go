package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/neotheprogramist/solana-data-aggregator/pkg/safe"
)

const (
	loadCheckpointQuery = `SELECT slot FROM solana_checkpoints WHERE stream = $1`
	saveCheckpointQuery = `
INSERT INTO solana_checkpoints (stream, slot, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (stream) DO UPDATE SET slot = EXCLUDED.slot, updated_at = EXCLUDED.updated_at`
)

// LoadCheckpoint returns the checkpoint of stream.
func (r *Repository) LoadCheckpoint(ctx context.Context, stream string) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_checkpoint", err, start)
	}()

	var slot int64
	if err = r.db.QueryRow(ctx, loadCheckpointQuery, stream).Scan(&slot); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query checkpoint: %w", err)
	}
	out, err := safe.Uint64(slot)
	if err != nil {
		return 0, false, fmt.Errorf("checkpoint slot: %w", err)
	}
	return out, true, nil
}

// SaveCheckpoint upserts the checkpoint row of stream.
func (r *Repository) SaveCheckpoint(ctx context.Context, stream string, slot uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_checkpoint", err, start)
	}()

	value, err := safe.Int64(slot)
	if err != nil {
		return fmt.Errorf("checkpoint slot: %w", err)
	}
	if _, err = r.db.Exec(ctx, saveCheckpointQuery, stream, value); err != nil {
		return fmt.Errorf("upsert checkpoint: %w", err)
	}
	return nil
}
