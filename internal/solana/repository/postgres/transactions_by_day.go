package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

// TransactionsByDay returns all transactions whose block time falls on day (UTC).
func (r *Repository) TransactionsByDay(ctx context.Context, cluster model.Cluster, day time.Time) (txs []model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_day", err, start)
	}()

	sql, args, err := psql.Select(transactionColumns...).
		From(transactionsTable).
		Where(sq.Eq{"cluster": string(cluster), "day": model.Day(day)}).
		OrderBy("slot ASC", "tx_index ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transactions by day: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions by day: %w", err)
	}
	defer rows.Close()

	txs = make([]model.Transaction, 0)
	for rows.Next() {
		var tx model.Transaction
		if err = scanTransaction(rows, &tx); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, tx)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}
