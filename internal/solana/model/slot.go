package model

import "time"

// SlotRecord describes the outcome of ingesting a single slot.
type SlotRecord struct {
	Cluster    Cluster
	Slot       uint64
	BlockHash  string
	ParentSlot uint64
	BlockTime  time.Time
	// TxTotal is the number of transactions the node reported for the slot.
	TxTotal uint32
	// TxStored is the number of transactions persisted for the slot.
	TxStored   uint32
	Truncated  bool
	Skipped    bool
	IngestedAt time.Time
}
