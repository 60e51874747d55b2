package ingester

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type backoffPolicy struct {
	initial    time.Duration
	max        time.Duration
	multiplier float64
}

func (p backoffPolicy) new() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.initial
	b.MaxInterval = p.max
	b.Multiplier = p.multiplier
	b.RandomizationFactor = backoffJitter
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// retryer runs an operation up to attempts times, sleeping with exponential backoff between tries.
type retryer struct {
	attempts int
	policy   backoffPolicy
	sleep    func(context.Context, time.Duration) error
	onRetry  func(attempt int, err error, delay time.Duration)
}

// do returns nil on the first success, or the last error. Errors for which permanent
// reports true are returned without retrying.
func (r retryer) do(ctx context.Context, permanent func(error) bool, op func(context.Context) error) error {
	b := r.policy.new()
	var err error
	for attempt := 1; ; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if (permanent != nil && permanent(err)) || attempt >= r.attempts {
			return err
		}
		delay := b.NextBackOff()
		if r.onRetry != nil {
			r.onRetry(attempt, err, delay)
		}
		if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
}
