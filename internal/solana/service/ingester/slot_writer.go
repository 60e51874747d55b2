package ingester

import (
	"context"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/chain"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"go.uber.org/zap"
)

type slotWriter struct {
	repo    Repository
	cluster model.Cluster
	retry   retryer
	now     func() time.Time
	logger  *zap.Logger
}

// WriteBatch stores the batch transactions and its slot record, retrying the whole batch on failure.
// When resume is set, transactions already present in storage are not written again.
// It returns the number of distinct transactions held in storage for the slot.
func (w *slotWriter) WriteBatch(ctx context.Context, batch *chain.SlotBatch, resume bool) (int, error) {
	txs := uniqueBySignature(batch.Transactions)
	stored := len(txs)

	err := w.retry.do(ctx, nil, func(ctx context.Context) error {
		pending := txs
		if resume {
			var err error
			if pending, err = w.missing(ctx, txs); err != nil {
				return err
			}
		}
		if len(pending) > 0 {
			if err := w.repo.UpsertTransactions(ctx, pending); err != nil {
				return fmt.Errorf("upsert transactions: %w", err)
			}
		}
		if err := w.repo.InsertSlot(ctx, batch.Record(w.cluster, stored, w.now())); err != nil {
			return fmt.Errorf("insert slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, &SlotError{Slot: batch.Slot, Kind: KindPersistFailed, Err: err}
	}
	return stored, nil
}

// WriteSkipped records that the chain skipped slot.
func (w *slotWriter) WriteSkipped(ctx context.Context, slot uint64) error {
	err := w.retry.do(ctx, nil, func(ctx context.Context) error {
		return w.repo.InsertSlot(ctx, chain.SkippedRecord(w.cluster, slot, w.now()))
	})
	if err != nil {
		return &SlotError{Slot: slot, Kind: KindPersistFailed, Err: fmt.Errorf("insert skipped slot: %w", err)}
	}
	return nil
}

func (w *slotWriter) missing(ctx context.Context, txs []model.Transaction) ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		exists, err := w.repo.TransactionExists(ctx, tx.Cluster, tx.Signature)
		if err != nil {
			return nil, fmt.Errorf("check transaction %s: %w", tx.Signature, err)
		}
		if !exists {
			out = append(out, tx)
		}
	}
	if dropped := len(txs) - len(out); dropped > 0 {
		w.logger.Info("resume slot partially stored", zap.Int("present", dropped), zap.Int("pending", len(out)))
	}
	return out, nil
}

// uniqueBySignature keeps the first occurrence of every signature, preserving order.
func uniqueBySignature(txs []model.Transaction) []model.Transaction {
	seen := make(map[string]struct{}, len(txs))
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if _, ok := seen[tx.Signature]; ok {
			continue
		}
		seen[tx.Signature] = struct{}{}
		out = append(out, tx)
	}
	return out
}
