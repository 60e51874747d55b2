package ingester

import "time"

const (
	defaultFetchAttempts      = 5
	defaultPersistAttempts    = 5
	defaultCheckpointAttempts = 5

	defaultBackoffInitial    = 500 * time.Millisecond
	defaultBackoffMax        = 30 * time.Second
	defaultBackoffMultiplier = 2.0
	backoffJitter            = 0.2

	defaultRateLimitDelay    = 1 * time.Second
	defaultRateLimitCooldown = 1 * time.Minute
	defaultIdleSleep         = 400 * time.Millisecond
)
