// Command checkpoint inspects and overrides ingestion stream checkpoints.
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
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/checkpoint"
	"github.com/neotheprogramist/solana-data-aggregator/internal/storage"
	"go.uber.org/zap"
)

var opts struct {
	Stream  string         `long:"stream" env:"SOLANA_STREAM" description:"checkpoint stream name" required:"true"`
	Storage storage.Config `group:"Storage Options"`
	Verbose bool           `long:"verbose" env:"SOLANA_VERBOSE" description:"development logging"`
}

type showCommand struct{}

func (c *showCommand) Execute([]string) error {
	return withStore(func(ctx context.Context, store *checkpoint.Store, _ *zap.Logger) error {
		slot, ok, err := store.Load(ctx)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("%s: no checkpoint\n", store.Stream())
			return nil
		}
		fmt.Printf("%s: %d\n", store.Stream(), slot)
		return nil
	})
}

type slotArgs struct {
	Slot uint64 `positional-arg-name:"slot" required:"yes"`
}

// setCommand moves the checkpoint forward. Moving it backwards is rejected.
type setCommand struct {
	Args slotArgs `positional-args:"yes"`
}

func (c *setCommand) Execute([]string) error {
	return withStore(func(ctx context.Context, store *checkpoint.Store, logger *zap.Logger) error {
		if _, _, err := store.Load(ctx); err != nil {
			return err
		}
		if err := store.Save(ctx, c.Args.Slot); err != nil {
			return err
		}
		logger.Info("checkpoint set", zap.Uint64("slot", c.Args.Slot))
		return nil
	})
}

// resetCommand overwrites the checkpoint, including moving it backwards to re-ingest a range.
type resetCommand struct {
	Args slotArgs `positional-args:"yes"`
}

func (c *resetCommand) Execute([]string) error {
	return withStore(func(ctx context.Context, store *checkpoint.Store, logger *zap.Logger) error {
		if err := store.Reset(ctx, c.Args.Slot); err != nil {
			return err
		}
		logger.Warn("checkpoint reset", zap.Uint64("slot", c.Args.Slot))
		return nil
	})
}

func withStore(fn func(context.Context, *checkpoint.Store, *zap.Logger) error) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := app.NewLogger(opts.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	repo, err := storage.Open(ctx, opts.Storage)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		_ = repo.Close()
	}()

	store, err := checkpoint.NewStore(repo, opts.Stream, 0)
	if err != nil {
		return err
	}
	return fn(ctx, store, logger.With(zap.String("stream", opts.Stream)))
}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	commands := []struct {
		name, short string
		data        any
	}{
		{name: "show", short: "print the stream checkpoint", data: &showCommand{}},
		{name: "set", short: "advance the stream checkpoint", data: &setCommand{}},
		{name: "reset", short: "overwrite the stream checkpoint", data: &resetCommand{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.short, c.data); err != nil {
			panic(err)
		}
	}

	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}
