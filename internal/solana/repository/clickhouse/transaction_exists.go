package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

const transactionExistsQuery = `SELECT count() FROM solana_transactions WHERE cluster = ? AND signature = ?`

// TransactionExists reports whether a signature has been stored.
func (r *Repository) TransactionExists(ctx context.Context, cluster model.Cluster, signature string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_exists", err, start)
	}()

	var count uint64
	if err = r.conn.QueryRow(ctx, transactionExistsQuery, string(cluster), signature).Scan(&count); err != nil {
		return false, fmt.Errorf("query transaction exists: %w", err)
	}
	return count > 0, nil
}
