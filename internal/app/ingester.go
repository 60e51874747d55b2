package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/neotheprogramist/solana-data-aggregator/internal/metrics"
	"github.com/neotheprogramist/solana-data-aggregator/internal/pkg/solana/rpcclient"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/checkpoint"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/node"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/service/ingester"
	"github.com/neotheprogramist/solana-data-aggregator/internal/storage"
	"go.uber.org/zap"
)

// RunIngester follows the chain into repo until ctx is canceled or ingestion fails.
// Cancellation is a clean stop and returns nil.
func RunIngester(ctx context.Context, rpcCfg RPCConfig, cfg IngestConfig, repo storage.Repository, logger *zap.Logger) error {
	cluster, err := model.ParseCluster(rpcCfg.Cluster)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	stream := cfg.StreamName(cluster)

	client := rpcclient.NewClient(rpcCfg.URL)
	defer func() {
		if err := client.Close(); err != nil {
			logger.Warn("close rpc client", zap.Error(err))
		}
	}()
	observed := rpcclient.NewObservedClient(client, metrics.NewRPCClient(cluster), rpcCfg.RPS)

	source, err := node.NewSource(observed, node.Config{
		Cluster: cluster,
		TxLimit: cfg.TxLimit,
		Workers: rpcCfg.Workers,
		Timeout: rpcCfg.Timeout,
	})
	if err != nil {
		return fmt.Errorf("init slot source: %w", err)
	}
	store, err := checkpoint.NewStore(repo, stream, cfg.StartSlot)
	if err != nil {
		return fmt.Errorf("init checkpoint store: %w", err)
	}
	svc, err := ingester.NewSlotIngesterService(
		source,
		repo,
		store,
		metrics.NewSlotIngester(stream),
		cfg.ingesterConfig(cluster),
		logger.Named("ingester"),
	)
	if err != nil {
		return fmt.Errorf("init slot ingester: %w", err)
	}

	err = svc.Run(ctx)
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		logger.Info("slot ingestion stopped")
		return nil
	}
	return err
}
