package query

import (
	"context"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		FindTransaction(ctx context.Context, cluster model.Cluster, signature string) (model.Transaction, bool, error)
		TransactionsByDay(ctx context.Context, cluster model.Cluster, day time.Time) ([]model.Transaction, error)
	}
	Cache interface {
		Get(ctx context.Context, cluster model.Cluster, signature string) (model.Transaction, bool, error)
		Set(ctx context.Context, tx model.Transaction) error
	}
	CacheMetrics interface {
		ObserveHit()
		ObserveMiss()
		ObserveError()
	}
)
