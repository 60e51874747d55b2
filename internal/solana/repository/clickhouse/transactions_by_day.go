package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

const transactionsByDayQuery = `
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
WHERE cluster = ? AND day = ?
ORDER BY slot ASC, tx_index ASC`

// TransactionsByDay returns all transactions whose block time falls on day (UTC).
func (r *Repository) TransactionsByDay(ctx context.Context, cluster model.Cluster, day time.Time) (txs []model.Transaction, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("transactions_by_day", err, start)
	}()

	rows, err := r.conn.Query(ctx, transactionsByDayQuery, string(cluster), model.Day(day))
	if err != nil {
		return nil, fmt.Errorf("query transactions by day: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

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
