// Package app wires the ingestion loop and the query API into runnable components.
package app

import (
	"errors"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/service/ingester"
)

type RPCConfig struct {
	URL     string        `long:"rpc-url" env:"SOLANA_RPC_URL" description:"Solana JSON-RPC endpoint" default:"https://api.mainnet-beta.solana.com"`
	Cluster string        `long:"cluster" env:"SOLANA_CLUSTER" description:"cluster name" choice:"mainnet-beta" choice:"devnet" choice:"testnet" default:"mainnet-beta"`
	RPS     int           `long:"rpc-rps" env:"SOLANA_RPC_RPS" description:"maximum RPC requests per second, 0 for unlimited" default:"10"`
	Timeout time.Duration `long:"rpc-timeout" env:"SOLANA_RPC_TIMEOUT" description:"timeout of a single RPC call" default:"30s"`
	Workers int           `long:"rpc-workers" env:"SOLANA_RPC_WORKERS" description:"concurrent transaction fetches per slot" default:"8"`
}

type IngestConfig struct {
	Stream             string        `long:"stream" env:"SOLANA_STREAM" description:"checkpoint stream name, defaults to the cluster"`
	StartSlot          uint64        `long:"start-slot" env:"SOLANA_START_SLOT" description:"initial checkpoint of a new stream; ingestion starts at the next slot"`
	EndSlot            uint64        `long:"end-slot" env:"SOLANA_END_SLOT" description:"stop after this slot, 0 to follow the chain"`
	TxLimit            int           `long:"tx-limit" env:"SOLANA_TX_LIMIT" description:"maximum transactions stored per slot" default:"1000"`
	RootLag            uint64        `long:"root-lag" env:"SOLANA_ROOT_LAG" description:"slots to stay behind the latest finalized slot" default:"0"`
	PaceInterval       time.Duration `long:"pace-interval" env:"SOLANA_PACE_INTERVAL" description:"minimum time between slot fetch attempts" default:"0s"`
	FetchAttempts      int           `long:"fetch-attempts" env:"SOLANA_FETCH_ATTEMPTS" description:"fetch attempts per slot" default:"5"`
	PersistAttempts    int           `long:"persist-attempts" env:"SOLANA_PERSIST_ATTEMPTS" description:"persist attempts per slot" default:"5"`
	CheckpointAttempts int           `long:"checkpoint-attempts" env:"SOLANA_CHECKPOINT_ATTEMPTS" description:"checkpoint save attempts per slot" default:"5"`
	BackoffInitial     time.Duration `long:"backoff-initial" env:"SOLANA_BACKOFF_INITIAL" description:"first retry delay" default:"500ms"`
	BackoffMax         time.Duration `long:"backoff-max" env:"SOLANA_BACKOFF_MAX" description:"retry delay cap" default:"30s"`
	BackoffMultiplier  float64       `long:"backoff-multiplier" env:"SOLANA_BACKOFF_MULTIPLIER" description:"retry delay growth factor" default:"2"`
	RateLimitDelay     time.Duration `long:"rate-limit-delay" env:"SOLANA_RATE_LIMIT_DELAY" description:"minimum wait after a rate limited response" default:"1s"`
	RateLimitCooldown  time.Duration `long:"rate-limit-cooldown" env:"SOLANA_RATE_LIMIT_COOLDOWN" description:"pause after a slot is rate limited on every attempt" default:"1m"`
	IdleSleep          time.Duration `long:"idle-sleep" env:"SOLANA_IDLE_SLEEP" description:"poll interval while waiting for new slots" default:"400ms"`
}

type APIConfig struct {
	Addr      string        `long:"addr" env:"SOLANA_API_ADDR" description:"query API listen address" default:":8000"`
	RedisAddr string        `long:"redis-addr" env:"SOLANA_REDIS_ADDR" description:"Redis address for the lookup cache, empty to disable"`
	RedisDB   int           `long:"redis-db" env:"SOLANA_REDIS_DB" description:"Redis database" default:"0"`
	RedisTTL  time.Duration `long:"redis-ttl" env:"SOLANA_REDIS_TTL" description:"cache entry lifetime" default:"24h"`
}

type OpsConfig struct {
	MetricsAddr string `long:"metrics-addr" env:"SOLANA_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	Verbose     bool   `long:"verbose" env:"SOLANA_VERBOSE" description:"development logging"`
}

// StreamName returns the configured stream or the cluster name.
func (c IngestConfig) StreamName(cluster model.Cluster) string {
	if c.Stream != "" {
		return c.Stream
	}
	return string(cluster)
}

// Validate rejects ranges that can never make progress.
func (c IngestConfig) Validate() error {
	if c.EndSlot > 0 && c.EndSlot <= c.StartSlot {
		return errors.New("end slot must be above start slot")
	}
	if c.TxLimit < 0 {
		return errors.New("tx limit must not be negative")
	}
	return nil
}

func (c IngestConfig) ingesterConfig(cluster model.Cluster) ingester.Config {
	return ingester.Config{
		Cluster:            cluster,
		Stream:             c.StreamName(cluster),
		RootLag:            c.RootLag,
		EndSlot:            c.EndSlot,
		PaceInterval:       c.PaceInterval,
		FetchAttempts:      c.FetchAttempts,
		PersistAttempts:    c.PersistAttempts,
		CheckpointAttempts: c.CheckpointAttempts,
		BackoffInitial:     c.BackoffInitial,
		BackoffMax:         c.BackoffMax,
		BackoffMultiplier:  c.BackoffMultiplier,
		RateLimitDelay:     c.RateLimitDelay,
		RateLimitCooldown:  c.RateLimitCooldown,
		IdleSleep:          c.IdleSleep,
	}
}
