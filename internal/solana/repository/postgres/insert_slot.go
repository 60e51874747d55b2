package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/neotheprogramist/solana-data-aggregator/pkg/safe"
)

const insertSlotQuery = `
INSERT INTO solana_slots (
	cluster, slot, block_hash, parent_slot, block_time,
	tx_total, tx_stored, truncated, skipped, ingested_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (cluster, slot) DO UPDATE SET
	block_hash = EXCLUDED.block_hash,
	parent_slot = EXCLUDED.parent_slot,
	block_time = EXCLUDED.block_time,
	tx_total = EXCLUDED.tx_total,
	tx_stored = EXCLUDED.tx_stored,
	truncated = EXCLUDED.truncated,
	skipped = EXCLUDED.skipped,
	ingested_at = EXCLUDED.ingested_at`

// InsertSlot records the outcome of ingesting a slot. A re-ingested slot replaces its record.
func (r *Repository) InsertSlot(ctx context.Context, rec model.SlotRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_slot", err, start)
	}()

	slot, err := safe.Int64(rec.Slot)
	if err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	parent, err := safe.Int64(rec.ParentSlot)
	if err != nil {
		return fmt.Errorf("parent slot: %w", err)
	}

	if _, err = r.db.Exec(ctx, insertSlotQuery,
		string(rec.Cluster),
		slot,
		rec.BlockHash,
		parent,
		rec.BlockTime.UTC(),
		int64(rec.TxTotal),
		int64(rec.TxStored),
		rec.Truncated,
		rec.Skipped,
		rec.IngestedAt.UTC(),
	); err != nil {
		return fmt.Errorf("insert slot %d: %w", rec.Slot, err)
	}
	return nil
}
