package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

const transactionExistsQuery = `SELECT EXISTS (SELECT 1 FROM solana_transactions WHERE cluster = $1 AND signature = $2)`

// TransactionExists reports whether a signature has been stored.
func (r *Repository) TransactionExists(ctx context.Context, cluster model.Cluster, signature string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("transaction_exists", err, start)
	}()

	var exists bool
	if err = r.db.QueryRow(ctx, transactionExistsQuery, string(cluster), signature).Scan(&exists); err != nil {
		return false, fmt.Errorf("query transaction exists: %w", err)
	}
	return exists, nil
}
