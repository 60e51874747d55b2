// Package ingester drives the checkpointed slot ingestion loop.
package ingester

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/clock"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/chain"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/checkpoint"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config tunes the ingestion loop. Zero values fall back to defaults.
type Config struct {
	Cluster model.Cluster
	Stream  string
	// RootLag keeps the loop this many slots behind the latest finalized slot.
	RootLag uint64
	// EndSlot stops the loop after the slot is checkpointed. Zero means follow the chain.
	EndSlot uint64
	// PaceInterval is the minimum time between fetch attempts. Zero disables pacing.
	PaceInterval time.Duration

	FetchAttempts      int
	PersistAttempts    int
	CheckpointAttempts int

	BackoffInitial    time.Duration
	BackoffMax        time.Duration
	BackoffMultiplier float64

	RateLimitDelay    time.Duration
	RateLimitCooldown time.Duration
	IdleSleep         time.Duration
}

func (c Config) withDefaults() Config {
	if c.FetchAttempts <= 0 {
		c.FetchAttempts = defaultFetchAttempts
	}
	if c.PersistAttempts <= 0 {
		c.PersistAttempts = defaultPersistAttempts
	}
	if c.CheckpointAttempts <= 0 {
		c.CheckpointAttempts = defaultCheckpointAttempts
	}
	if c.BackoffInitial <= 0 {
		c.BackoffInitial = defaultBackoffInitial
	}
	if c.BackoffMax <= 0 {
		c.BackoffMax = defaultBackoffMax
	}
	if c.BackoffMultiplier < 1 {
		c.BackoffMultiplier = defaultBackoffMultiplier
	}
	if c.RateLimitDelay <= 0 {
		c.RateLimitDelay = defaultRateLimitDelay
	}
	if c.RateLimitCooldown <= 0 {
		c.RateLimitCooldown = defaultRateLimitCooldown
	}
	if c.IdleSleep <= 0 {
		c.IdleSleep = defaultIdleSleep
	}
	return c
}

// NewPacer returns a limiter allowing one fetch per interval, or an unlimited one.
func NewPacer(interval time.Duration) Pacer {
	if interval <= 0 {
		return ratelimit.NewUnlimited()
	}
	return ratelimit.New(1, ratelimit.Per(interval), ratelimit.WithoutSlack)
}

type SlotIngesterService struct {
	logger      *zap.Logger
	source      SlotSource
	checkpoints Checkpointer
	metrics     SlotIngesterMetrics
	sleep       func(context.Context, time.Duration) error
	fetcher     SlotFetcher
	writer      SlotWriter
	saveRetry   retryer

	rootLag   uint64
	endSlot   uint64
	idleSleep time.Duration

	// safeTip caches the highest slot known to be eligible for ingestion.
	safeTip  uint64
	tipKnown bool
}

func NewSlotIngesterService(
	source SlotSource,
	repo Repository,
	checkpoints Checkpointer,
	metrics SlotIngesterMetrics,
	cfg Config,
	logger *zap.Logger,
) (*SlotIngesterService, error) {
	if source == nil {
		return nil, errors.New("slot source is required")
	}
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	if checkpoints == nil {
		return nil, errors.New("checkpoint store is required")
	}
	if metrics == nil {
		return nil, errors.New("slot ingester metrics is required")
	}
	if cfg.Cluster == "" {
		return nil, errors.New("cluster is required")
	}
	cfg = cfg.withDefaults()
	logger = logger.With(
		zap.String("cluster", string(cfg.Cluster)),
		zap.String("stream", cfg.Stream),
	)

	policy := backoffPolicy{
		initial:    cfg.BackoffInitial,
		max:        cfg.BackoffMax,
		multiplier: cfg.BackoffMultiplier,
	}
	retryLogger := func(stage string, log *zap.Logger) func(int, error, time.Duration) {
		return func(attempt int, err error, delay time.Duration) {
			metrics.ObserveRetry(stage, chain.Classify(err).String())
			log.Warn(stage+" failed; retrying",
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
				zap.Error(err),
			)
		}
	}

	s := &SlotIngesterService{
		logger:      logger,
		source:      source,
		checkpoints: checkpoints,
		metrics:     metrics,
		sleep:       clock.SleepWithContext,
		rootLag:     cfg.RootLag,
		endSlot:     cfg.EndSlot,
		idleSleep:   cfg.IdleSleep,
	}
	s.fetcher = &slotFetcher{
		source:    source,
		pacer:     NewPacer(cfg.PaceInterval),
		metrics:   metrics,
		logger:    logger.Named("slotFetcher"),
		sleep:     s.sleepFn,
		policy:    policy,
		attempts:  cfg.FetchAttempts,
		limitWait: cfg.RateLimitDelay,
		cooldown:  cfg.RateLimitCooldown,
	}
	writerLogger := logger.Named("slotWriter")
	s.writer = &slotWriter{
		repo:    repo,
		cluster: cfg.Cluster,
		now:     func() time.Time { return time.Now().UTC() },
		logger:  writerLogger,
		retry: retryer{
			attempts: cfg.PersistAttempts,
			policy:   policy,
			sleep:    s.sleepFn,
			onRetry:  retryLogger("persist", writerLogger),
		},
	}
	s.saveRetry = retryer{
		attempts: cfg.CheckpointAttempts,
		policy:   policy,
		sleep:    s.sleepFn,
		onRetry:  retryLogger("checkpoint", logger),
	}
	return s, nil
}

// sleepFn defers to s.sleep at call time so tests can swap it after construction.
func (s *SlotIngesterService) sleepFn(ctx context.Context, d time.Duration) error {
	return s.sleep(ctx, d)
}

// Run ingests slots in order until ctx is canceled, a slot fails permanently, or the end slot
// is checkpointed. An in-flight slot is always persisted and checkpointed before Run returns.
func (s *SlotIngesterService) Run(ctx context.Context) error {
	last, ok, err := s.checkpoints.Load(ctx)
	if err != nil {
		return fmt.Errorf("load checkpoint: %w", err)
	}
	// without a persisted checkpoint, last is the start slot and counts as already stored
	next := last + 1
	s.metrics.SetCheckpoint(last)
	s.logger.Info("starting slot ingestion", zap.Uint64("next_slot", next), zap.Bool("resumed", ok))

	resume := true
	for {
		if s.endSlot > 0 && next > s.endSlot {
			s.setState(StateIdle)
			s.logger.Info("end slot reached", zap.Uint64("end_slot", s.endSlot))
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.ingest(ctx, next, resume); err != nil {
			return s.fail(next, err)
		}
		resume = false
		next++
	}
}

func (s *SlotIngesterService) ingest(ctx context.Context, slot uint64, resume bool) error {
	s.setState(StateIdle)
	if err := s.waitForSlot(ctx, slot); err != nil {
		return err
	}

	started := time.Now()
	s.setState(StateFetching)
	batch, err := s.fetcher.Fetch(ctx, slot)
	skipped := isSkipped(err)
	if err != nil && !skipped {
		return err
	}

	// the slot has been fetched; finish it even if shutdown was requested
	ctx = context.WithoutCancel(ctx)

	if skipped {
		s.setState(StateAdvancing)
		if err := s.writer.WriteSkipped(ctx, slot); err != nil {
			return err
		}
		if err := s.advance(ctx, slot); err != nil {
			return err
		}
		s.metrics.ObserveSlot("skipped", 0, started)
		s.logger.Debug("slot skipped", zap.Uint64("slot", slot))
		return nil
	}

	s.setState(StatePersisting)
	if batch.Truncated {
		s.metrics.ObserveTruncated()
		s.logger.Warn("slot truncated",
			zap.Uint64("slot", slot),
			zap.Int("total", batch.Total),
			zap.Int("fetched", len(batch.Transactions)),
		)
	}
	stored, err := s.writer.WriteBatch(ctx, batch, resume)
	if err != nil {
		return err
	}

	s.setState(StateAdvancing)
	if err := s.advance(ctx, slot); err != nil {
		return err
	}
	s.metrics.ObserveSlot("stored", stored, started)
	s.logger.Debug("slot stored", zap.Uint64("slot", slot), zap.Int("transactions", stored))
	return nil
}

func (s *SlotIngesterService) advance(ctx context.Context, slot uint64) error {
	err := s.saveRetry.do(ctx, func(err error) bool {
		return errors.Is(err, checkpoint.ErrRegression)
	}, func(ctx context.Context) error {
		return s.checkpoints.Save(ctx, slot)
	})
	if err != nil {
		return &SlotError{Slot: slot, Kind: KindCheckpointFailed, Err: err}
	}
	s.metrics.SetCheckpoint(slot)
	return nil
}

// waitForSlot blocks until slot is at least rootLag slots behind the latest finalized slot.
func (s *SlotIngesterService) waitForSlot(ctx context.Context, slot uint64) error {
	for !s.tipKnown || slot > s.safeTip {
		latest, err := s.source.LatestSlot(ctx)
		if err != nil {
			kind := chain.Classify(err)
			switch {
			case kind == chain.KindFatal:
				return &SlotError{Slot: slot, Kind: KindFatal, Err: fmt.Errorf("latest slot: %w", err)}
			case ctx.Err() != nil:
				return ctx.Err()
			}
			s.metrics.ObserveRetry("latest_slot", kind.String())
			s.logger.Warn("latest slot failed", zap.Error(err))
			if err := s.sleep(ctx, s.idleSleep); err != nil {
				return err
			}
			continue
		}
		if latest >= s.rootLag {
			s.safeTip = latest - s.rootLag
			s.tipKnown = true
		}
		if s.tipKnown && slot <= s.safeTip {
			break
		}
		s.metrics.SetLag(0)
		if err := s.sleep(ctx, s.idleSleep); err != nil {
			return err
		}
	}
	s.metrics.SetLag(s.safeTip - slot)
	return nil
}

func (s *SlotIngesterService) fail(slot uint64, err error) error {
	var se *SlotError
	if !errors.As(err, &se) {
		return err
	}
	s.setState(StateError)
	s.metrics.ObserveError(string(se.Kind))
	s.logger.Error("slot ingestion failed",
		zap.Uint64("slot", slot),
		zap.String("kind", string(se.Kind)),
		zap.Error(se.Err),
	)
	return se
}

func (s *SlotIngesterService) setState(state State) {
	s.metrics.SetState(state.String())
}
