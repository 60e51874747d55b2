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
	Cluster string         `long:"cluster" env:"SOLANA_CLUSTER" description:"cluster name" choice:"mainnet-beta" choice:"devnet" choice:"testnet" default:"mainnet-beta"`
	API     app.APIConfig  `group:"API Options"`
	Storage storage.Config `group:"Storage Options"`
	Verbose bool           `long:"verbose" env:"SOLANA_VERBOSE" description:"development logging"`
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

	logger, err := app.NewLogger(cfg.Verbose)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("api gateway failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	return app.RunAPI(ctx, cfg.Cluster, cfg.API, repo, logger)
}
