// Package query serves read-only transaction lookups.
package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"go.uber.org/zap"
)

type Service struct {
	repo    Repository
	cache   Cache
	metrics CacheMetrics
	cluster model.Cluster
	logger  *zap.Logger
}

// NewService returns a query Service for cluster. cache may be nil, in which case every
// lookup goes to the repository.
func NewService(repo Repository, cache Cache, metrics CacheMetrics, cluster model.Cluster, logger *zap.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if cluster == "" {
		return nil, errors.New("cluster is required")
	}
	if cache != nil && metrics == nil {
		return nil, errors.New("cache metrics is required")
	}
	return &Service{
		repo:    repo,
		cache:   cache,
		metrics: metrics,
		cluster: cluster,
		logger:  logger.With(zap.String("cluster", string(cluster))),
	}, nil
}

// TransactionsByDay returns the transactions whose block time falls on the UTC date of day,
// ordered by slot and index. The result is never nil.
func (s *Service) TransactionsByDay(ctx context.Context, day time.Time) ([]model.Transaction, error) {
	txs, err := s.repo.TransactionsByDay(ctx, s.cluster, model.Day(day))
	if err != nil {
		return nil, fmt.Errorf("transactions by day: %w", err)
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	return txs, nil
}

// TransactionByID looks a transaction up by signature. Finalized transactions never change,
// so cached entries are served without revalidation.
func (s *Service) TransactionByID(ctx context.Context, signature string) (model.Transaction, bool, error) {
	if s.cache != nil {
		tx, ok, err := s.cache.Get(ctx, s.cluster, signature)
		switch {
		case err != nil:
			s.metrics.ObserveError()
			s.logger.Warn("cache get failed", zap.String("signature", signature), zap.Error(err))
		case ok:
			s.metrics.ObserveHit()
			return tx, true, nil
		default:
			s.metrics.ObserveMiss()
		}
	}

	tx, ok, err := s.repo.FindTransaction(ctx, s.cluster, signature)
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("find transaction: %w", err)
	}
	if !ok {
		return model.Transaction{}, false, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, tx); err != nil {
			s.metrics.ObserveError()
			s.logger.Warn("cache set failed", zap.String("signature", signature), zap.Error(err))
		}
	}
	return tx, true, nil
}
