// Command aggregator runs slot ingestion and the query API in one process over shared storage.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/neotheprogramist/solana-data-aggregator/internal/app"
	"github.com/neotheprogramist/solana-data-aggregator/internal/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type config struct {
	RPC     app.RPCConfig    `group:"RPC Options"`
	Ingest  app.IngestConfig `group:"Ingestion Options"`
	API     app.APIConfig    `group:"API Options"`
	Storage storage.Config   `group:"Storage Options"`
	Ops     app.OpsConfig    `group:"Ops Options"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := app.NewLogger(cfg.Ops.Verbose)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("solana aggregator failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	app.StartMetricsServer(ctx, cfg.Ops.MetricsAddr, logger)

	repo, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := app.RunIngester(ctx, cfg.RPC, cfg.Ingest, repo, logger); err != nil {
			return fmt.Errorf("ingester: %w", err)
		}
		// an end slot was reached; keep serving queries
		return nil
	})
	g.Go(func() error {
		if err := app.RunAPI(ctx, cfg.RPC.Cluster, cfg.API, repo, logger); err != nil {
			return fmt.Errorf("api: %w", err)
		}
		return nil
	})
	return g.Wait()
}
