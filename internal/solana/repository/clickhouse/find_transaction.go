package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

const findTransactionQuery = `
SELECT
	cluster,
	signature,
	slot,
	tx_index,
	block_hash,
	block_time,
	day,
	payload
FROM solana_transactions FINAL
WHERE cluster = ? AND signature = ?
LIMIT 1`

// FindTransaction returns the transaction with the given signature. A missing
// signature is reported as found=false with a nil error.
func (r *Repository) FindTransaction(ctx context.Context, cluster model.Cluster, signature string) (model.Transaction, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_transaction", err, start)
	}()

	row := r.conn.QueryRow(ctx, findTransactionQuery, string(cluster), signature)
	var tx model.Transaction
	if err = scanTransaction(row, &tx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return model.Transaction{}, false, nil
		}
		return model.Transaction{}, false, fmt.Errorf("query transaction %s: %w", signature, err)
	}
	return tx, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s scanner, tx *model.Transaction) error {
	var (
		cluster string
		payload string
	)
	if err := s.Scan(
		&cluster,
		&tx.Signature,
		&tx.Slot,
		&tx.TxIndex,
		&tx.BlockHash,
		&tx.BlockTime,
		&tx.Day,
		&payload,
	); err != nil {
		return err
	}
	tx.Cluster = model.Cluster(cluster)
	tx.BlockTime = tx.BlockTime.UTC()
	tx.Day = model.Day(tx.Day)
	tx.Payload = []byte(payload)
	return nil
}
