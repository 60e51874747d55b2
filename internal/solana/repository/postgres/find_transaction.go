package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/neotheprogramist/solana-data-aggregator/pkg/safe"
)

// FindTransaction returns the transaction with the given signature.
func (r *Repository) FindTransaction(ctx context.Context, cluster model.Cluster, signature string) (model.Transaction, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("find_transaction", err, start)
	}()

	sql, args, err := psql.Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"cluster": string(cluster), "signature": signature}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("build find transaction: %w", err)
	}

	var tx model.Transaction
	if err = scanTransaction(r.db.QueryRow(ctx, sql, args...), &tx); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = nil
			return model.Transaction{}, false, nil
		}
		return model.Transaction{}, false, fmt.Errorf("query transaction %s: %w", signature, err)
	}
	return tx, true, nil
}

func scanTransaction(row pgx.Row, tx *model.Transaction) error {
	var (
		cluster string
		slot    int64
		txIndex int64
	)
	if err := row.Scan(
		&cluster,
		&tx.Signature,
		&slot,
		&txIndex,
		&tx.BlockHash,
		&tx.BlockTime,
		&tx.Day,
		&tx.Payload,
	); err != nil {
		return err
	}
	var err error
	if tx.Slot, err = safe.Uint64(slot); err != nil {
		return fmt.Errorf("slot: %w", err)
	}
	if tx.TxIndex, err = safe.Uint32(txIndex); err != nil {
		return fmt.Errorf("tx_index: %w", err)
	}
	tx.Cluster = model.Cluster(cluster)
	tx.BlockTime = tx.BlockTime.UTC()
	tx.Day = model.Day(tx.Day)
	return nil
}
