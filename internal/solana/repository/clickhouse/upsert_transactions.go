package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

const insertTransactionsQuery = `
INSERT INTO solana_transactions (
	cluster,
	signature,
	slot,
	tx_index,
	block_hash,
	block_time,
	day,
	payload
) VALUES`

// UpsertTransactions stores transactions. The table deduplicates rows by (cluster, signature)
// and keeps the first write of a signature.
func (r *Repository) UpsertTransactions(ctx context.Context, txs []model.Transaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("upsert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertTransactionsQuery)
	if err != nil {
		return fmt.Errorf("prepare transactions batch: %w", err)
	}

	for _, tx := range txs {
		if err = batch.Append(
			string(tx.Cluster),
			tx.Signature,
			tx.Slot,
			tx.TxIndex,
			tx.BlockHash,
			tx.BlockTime,
			tx.Day,
			string(tx.Payload),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append transaction %s: %w", tx.Signature, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}
