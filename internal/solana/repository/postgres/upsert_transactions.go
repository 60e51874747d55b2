package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/neotheprogramist/solana-data-aggregator/pkg/safe"
)

var transactionColumns = []string{
	"cluster",
	"signature",
	"slot",
	"tx_index",
	"block_hash",
	"block_time",
	"day",
	"payload",
}

// UpsertTransactions inserts transactions in one database transaction. Signatures that
// already exist are left untouched.
func (r *Repository) UpsertTransactions(ctx context.Context, txs []model.Transaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("upsert_transactions", err, start)
	}()

	if len(txs) == 0 {
		return nil
	}

	dbTx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = dbTx.Rollback(ctx)
		}
	}()

	for offset := 0; offset < len(txs); offset += insertChunkSize {
		end := min(offset+insertChunkSize, len(txs))

		query := psql.Insert(transactionsTable).
			Columns(transactionColumns...).
			Suffix("ON CONFLICT (cluster, signature) DO NOTHING")
		for _, tx := range txs[offset:end] {
			slot, convErr := safe.Int64(tx.Slot)
			if convErr != nil {
				err = fmt.Errorf("transaction %s slot: %w", tx.Signature, convErr)
				return err
			}
			query = query.Values(
				string(tx.Cluster),
				tx.Signature,
				slot,
				int64(tx.TxIndex),
				tx.BlockHash,
				tx.BlockTime.UTC(),
				tx.Day,
				json.RawMessage(tx.Payload),
			)
		}

		sql, args, buildErr := query.ToSql()
		if buildErr != nil {
			err = fmt.Errorf("build insert transactions: %w", buildErr)
			return err
		}
		if _, err = dbTx.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert transactions: %w", err)
		}
	}

	if err = dbTx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transactions: %w", err)
	}
	return nil
}
