package chain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrSlotSkipped reports a slot that the chain skipped or pruned. It is not a failure.
var ErrSlotSkipped = errors.New("slot skipped")

// Kind classifies a fetch error for retry decisions.
type Kind int

const (
	// KindTransient is retryable with backoff.
	KindTransient Kind = iota
	// KindRateLimited is retryable after the provider's delay.
	KindRateLimited
	// KindSkipped is not an error.
	KindSkipped
	// KindFatal must not be retried.
	KindFatal
	// KindCanceled means the caller's context ended.
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindTransient:
		return "transient"
	case KindRateLimited:
		return "rate_limited"
	case KindSkipped:
		return "skipped"
	case KindFatal:
		return "fatal"
	case KindCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// RateLimitError is returned when the node asked the caller to slow down.
// RetryAfter is zero when the node did not say how long to wait.
type RateLimitError struct {
	RetryAfter time.Duration
	Err        error
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("rate limited: %v", e.Err)
}

func (e *RateLimitError) Unwrap() error { return e.Err }

// FatalError wraps a protocol error that retrying cannot fix, such as a malformed
// response or rejected credentials.
type FatalError struct {
	Err error
}

func (e *FatalError) Error() string { return fmt.Sprintf("fatal: %v", e.Err) }

func (e *FatalError) Unwrap() error { return e.Err }

// Fatal marks err as not retryable.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &FatalError{Err: err}
}

// Classify reports how a fetch error should be handled.
func Classify(err error) Kind {
	if err == nil {
		return KindTransient
	}
	var fatal *FatalError
	var limited *RateLimitError
	switch {
	case errors.Is(err, ErrSlotSkipped):
		return KindSkipped
	case errors.As(err, &fatal):
		return KindFatal
	case errors.As(err, &limited):
		return KindRateLimited
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindTransient
	}
}

// RetryAfter returns the delay requested by a rate-limited node, or zero.
func RetryAfter(err error) time.Duration {
	var limited *RateLimitError
	if errors.As(err, &limited) {
		return limited.RetryAfter
	}
	return 0
}
