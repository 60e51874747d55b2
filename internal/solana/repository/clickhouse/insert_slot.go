package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

const insertSlotQuery = `
INSERT INTO solana_slots (
	cluster,
	slot,
	block_hash,
	parent_slot,
	block_time,
	tx_total,
	tx_stored,
	truncated,
	skipped,
	ingested_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// InsertSlot records the outcome of ingesting a slot.
func (r *Repository) InsertSlot(ctx context.Context, rec model.SlotRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_slot", err, start)
	}()

	if err = r.conn.Exec(ctx, insertSlotQuery,
		string(rec.Cluster),
		rec.Slot,
		rec.BlockHash,
		rec.ParentSlot,
		rec.BlockTime,
		rec.TxTotal,
		rec.TxStored,
		rec.Truncated,
		rec.Skipped,
		rec.IngestedAt,
	); err != nil {
		return fmt.Errorf("insert slot %d: %w", rec.Slot, err)
	}
	return nil
}
