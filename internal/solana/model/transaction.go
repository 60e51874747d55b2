// Package model defines domain models for Solana slot ingestion.
package model

import "time"

// Transaction is a stored transaction envelope. Signature is globally unique per cluster.
type Transaction struct {
	Cluster   Cluster
	Signature string
	Slot      uint64
	// TxIndex is the position of the signature in the block's signature list.
	TxIndex   uint32
	BlockHash string
	BlockTime time.Time
	Day       time.Time
	// Payload holds the node's transaction response as returned, not decoded further.
	Payload []byte
}

// Day returns the UTC calendar date bucket of t.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
