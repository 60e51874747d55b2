package app

import (
	"context"
	"fmt"

	"github.com/neotheprogramist/solana-data-aggregator/internal/cache"
	"github.com/neotheprogramist/solana-data-aggregator/internal/metrics"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/service/query"
	"github.com/neotheprogramist/solana-data-aggregator/internal/storage"
	"github.com/neotheprogramist/solana-data-aggregator/internal/transport"
	"go.uber.org/zap"
)

// RunAPI serves the read-only query API over repo until ctx is done.
func RunAPI(ctx context.Context, clusterName string, cfg APIConfig, repo storage.Repository, logger *zap.Logger) error {
	cluster, err := model.ParseCluster(clusterName)
	if err != nil {
		return err
	}

	var lookups query.Cache
	if cfg.RedisAddr != "" {
		rds := cache.NewRedis(cfg.RedisAddr, cfg.RedisDB, cfg.RedisTTL)
		defer func() {
			_ = rds.Close()
		}()
		if err := rds.Ping(ctx); err != nil {
			logger.Warn("redis unavailable; lookups fall through to storage", zap.Error(err))
		}
		lookups = rds
	}

	svc, err := query.NewService(repo, lookups, metrics.NewQueryCache(), cluster, logger.Named("query"))
	if err != nil {
		return fmt.Errorf("init query service: %w", err)
	}
	handler := transport.NewRouter(svc, repo, metrics.NewHTTPServer(), logger.Named("http"))
	return Serve(ctx, newServer(cfg.Addr, handler), logger.Named("api"))
}
