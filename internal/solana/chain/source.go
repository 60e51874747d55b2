// Package chain defines the contract between slot sources and ingestion components.
package chain

import (
	"context"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

// SlotSource provides finalized slot data.
type SlotSource interface {
	LatestSlot(ctx context.Context) (uint64, error)
	// FetchSlot returns the transactions of a slot, bounded by the source's limit.
	// A skipped slot is reported as ErrSlotSkipped.
	FetchSlot(ctx context.Context, slot uint64) (*SlotBatch, error)
}

// SlotBatch wraps a slot and the transactions fetched for it.
type SlotBatch struct {
	Slot       uint64
	BlockHash  string
	ParentSlot uint64
	BlockTime  time.Time
	// Total is the number of transactions the node reported for the slot.
	Total int
	// Truncated is set when Total exceeded the limit and only the first
	// len(Transactions) were fetched.
	Truncated    bool
	Transactions []model.Transaction
}

// Record returns the slot record describing the batch.
func (b *SlotBatch) Record(cluster model.Cluster, stored int, ingestedAt time.Time) model.SlotRecord {
	return model.SlotRecord{
		Cluster:    cluster,
		Slot:       b.Slot,
		BlockHash:  b.BlockHash,
		ParentSlot: b.ParentSlot,
		BlockTime:  b.BlockTime,
		TxTotal:    clampUint32(b.Total),
		TxStored:   clampUint32(stored),
		Truncated:  b.Truncated,
		IngestedAt: ingestedAt,
	}
}

// SkippedRecord returns the slot record for a slot the chain skipped.
func SkippedRecord(cluster model.Cluster, slot uint64, ingestedAt time.Time) model.SlotRecord {
	return model.SlotRecord{
		Cluster:    cluster,
		Slot:       slot,
		BlockTime:  time.Unix(0, 0).UTC(),
		Skipped:    true,
		IngestedAt: ingestedAt,
	}
}

func clampUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	if uint64(v) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
