package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	loadCheckpointQuery = `
SELECT slot
FROM solana_checkpoints
WHERE stream = ?
ORDER BY updated_at DESC
LIMIT 1`
	saveCheckpointQuery = `INSERT INTO solana_checkpoints (stream, slot, updated_at) VALUES (?, ?, ?)`
)

// LoadCheckpoint returns the latest checkpoint row of stream.
func (r *Repository) LoadCheckpoint(ctx context.Context, stream string) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_checkpoint", err, start)
	}()

	var slot uint64
	if err = r.conn.QueryRow(ctx, loadCheckpointQuery, stream).Scan(&slot); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query checkpoint: %w", err)
	}
	return slot, true, nil
}

// SaveCheckpoint writes a single checkpoint row. The newest updated_at wins on read and merge.
func (r *Repository) SaveCheckpoint(ctx context.Context, stream string, slot uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_checkpoint", err, start)
	}()

	if err = r.conn.Exec(ctx, saveCheckpointQuery, stream, slot, time.Now().UTC()); err != nil {
		return fmt.Errorf("insert checkpoint: %w", err)
	}
	return nil
}
