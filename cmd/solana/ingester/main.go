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
)

type config struct {
	RPC     app.RPCConfig    `group:"RPC Options"`
	Ingest  app.IngestConfig `group:"Ingestion Options"`
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
		logger.Fatal("solana ingester failed", zap.Error(err))
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

	return app.RunIngester(ctx, cfg.RPC, cfg.Ingest, repo, logger.With(zap.String("storage", cfg.Storage.Backend)))
}
