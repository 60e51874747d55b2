// Package memory provides an in-process repository for tests and local runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

type txKey struct {
	cluster   model.Cluster
	signature string
}

type slotKey struct {
	cluster model.Cluster
	slot    uint64
}

// Repository stores transactions, slot records and checkpoints in memory.
type Repository struct {
	mu          sync.RWMutex
	txs         map[txKey]model.Transaction
	slots       map[slotKey]model.SlotRecord
	checkpoints map[string]uint64
}

// NewRepository returns an empty Repository.
func NewRepository() *Repository {
	return &Repository{
		txs:         make(map[txKey]model.Transaction),
		slots:       make(map[slotKey]model.SlotRecord),
		checkpoints: make(map[string]uint64),
	}
}

// UpsertTransactions stores txs. The first write of a signature wins.
func (r *Repository) UpsertTransactions(ctx context.Context, txs []model.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tx := range txs {
		key := txKey{cluster: tx.Cluster, signature: tx.Signature}
		if _, ok := r.txs[key]; ok {
			continue
		}
		tx.Payload = append([]byte(nil), tx.Payload...)
		r.txs[key] = tx
	}
	return nil
}

// TransactionExists reports whether the signature is stored.
func (r *Repository) TransactionExists(ctx context.Context, cluster model.Cluster, signature string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.txs[txKey{cluster: cluster, signature: signature}]
	return ok, nil
}

// FindTransaction returns the stored transaction.
func (r *Repository) FindTransaction(ctx context.Context, cluster model.Cluster, signature string) (model.Transaction, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.Transaction{}, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tx, ok := r.txs[txKey{cluster: cluster, signature: signature}]
	return tx, ok, nil
}

// TransactionsByDay returns the transactions of day ordered by slot and position.
func (r *Repository) TransactionsByDay(ctx context.Context, cluster model.Cluster, day time.Time) ([]model.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	day = model.Day(day)
	r.mu.RLock()
	out := make([]model.Transaction, 0)
	for key, tx := range r.txs {
		if key.cluster == cluster && tx.Day.Equal(day) {
			out = append(out, tx)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Slot != out[j].Slot {
			return out[i].Slot < out[j].Slot
		}
		return out[i].TxIndex < out[j].TxIndex
	})
	return out, nil
}

// InsertSlot stores a slot record, replacing an earlier record of the same slot.
func (r *Repository) InsertSlot(ctx context.Context, rec model.SlotRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[slotKey{cluster: rec.Cluster, slot: rec.Slot}] = rec
	return nil
}

// Slot returns a stored slot record.
func (r *Repository) Slot(cluster model.Cluster, slot uint64) (model.SlotRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.slots[slotKey{cluster: cluster, slot: slot}]
	return rec, ok
}

// Len returns the number of stored transactions.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.txs)
}

// LoadCheckpoint implements checkpoint.Backend.
func (r *Repository) LoadCheckpoint(ctx context.Context, stream string) (uint64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	slot, ok := r.checkpoints[stream]
	return slot, ok, nil
}

// SaveCheckpoint implements checkpoint.Backend.
func (r *Repository) SaveCheckpoint(ctx context.Context, stream string, slot uint64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkpoints[stream] = slot
	return nil
}

// Ping always succeeds.
func (r *Repository) Ping(context.Context) error { return nil }

// Close is a no-op.
func (r *Repository) Close() error { return nil }
