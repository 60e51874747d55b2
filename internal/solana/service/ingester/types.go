package ingester

import (
	"context"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/chain"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SlotSource interface {
		LatestSlot(ctx context.Context) (uint64, error)
		FetchSlot(ctx context.Context, slot uint64) (*chain.SlotBatch, error)
	}
	Repository interface {
		UpsertTransactions(ctx context.Context, txs []model.Transaction) error
		TransactionExists(ctx context.Context, cluster model.Cluster, signature string) (bool, error)
		InsertSlot(ctx context.Context, rec model.SlotRecord) error
	}
	Checkpointer interface {
		Load(ctx context.Context) (uint64, bool, error)
		Save(ctx context.Context, slot uint64) error
	}
	// Pacer spaces out fetch attempts. go.uber.org/ratelimit limiters satisfy it.
	Pacer interface {
		Take() time.Time
	}
	SlotIngesterMetrics interface {
		ObserveSlot(outcome string, txs int, started time.Time)
		ObserveTruncated()
		ObserveRetry(stage, class string)
		ObserveError(kind string)
		SetCheckpoint(slot uint64)
		SetLag(lag uint64)
		SetState(state string)
	}
	SlotFetcher interface {
		Fetch(ctx context.Context, slot uint64) (*chain.SlotBatch, error)
	}
	SlotWriter interface {
		WriteBatch(ctx context.Context, batch *chain.SlotBatch, resume bool) (int, error)
		WriteSkipped(ctx context.Context, slot uint64) error
	}
)
