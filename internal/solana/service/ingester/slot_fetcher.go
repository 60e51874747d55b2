package ingester

import (
	"context"
	"errors"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/chain"
	"go.uber.org/zap"
)

type slotFetcher struct {
	source    SlotSource
	pacer     Pacer
	metrics   SlotIngesterMetrics
	logger    *zap.Logger
	sleep     func(context.Context, time.Duration) error
	policy    backoffPolicy
	attempts  int
	limitWait time.Duration
	cooldown  time.Duration
}

// Fetch returns the batch for slot. A skipped slot is reported as chain.ErrSlotSkipped.
// Rate-limited fetches that exhaust their attempts cool down and start over instead of failing.
func (f *slotFetcher) Fetch(ctx context.Context, slot uint64) (*chain.SlotBatch, error) {
	b := f.policy.new()
	attempt := 0
	for {
		attempt++
		f.pacer.Take()
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch, err := f.source.FetchSlot(ctx, slot)
		if err == nil {
			return batch, nil
		}

		kind := chain.Classify(err)
		switch kind {
		case chain.KindSkipped:
			return nil, err
		case chain.KindFatal:
			return nil, &SlotError{Slot: slot, Kind: KindFatal, Err: err}
		case chain.KindCanceled:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
		}

		if attempt >= f.attempts {
			if kind != chain.KindRateLimited {
				return nil, &SlotError{Slot: slot, Kind: KindRetryExhausted, Err: err}
			}
			f.metrics.ObserveRetry("fetch", "cooldown")
			f.logger.Warn("rate limited on every attempt; cooling down",
				zap.Uint64("slot", slot),
				zap.Int("attempts", attempt),
				zap.Duration("cooldown", f.cooldown),
				zap.Error(err),
			)
			if err := f.sleep(ctx, f.cooldown); err != nil {
				return nil, err
			}
			attempt = 0
			b.Reset()
			continue
		}

		delay := b.NextBackOff()
		if kind == chain.KindRateLimited {
			delay = max(delay, f.limitWait, chain.RetryAfter(err))
		}
		f.metrics.ObserveRetry("fetch", kind.String())
		f.logger.Debug("fetch slot failed; retrying",
			zap.Uint64("slot", slot),
			zap.Int("attempt", attempt),
			zap.String("class", kind.String()),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if err := f.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

func isSkipped(err error) bool {
	return errors.Is(err, chain.ErrSlotSkipped)
}
