// Package cache keeps finalized transactions in Redis for lookups by signature.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "solana:tx:"

type Redis struct {
	cli *redis.Client
	ttl time.Duration
}

// NewRedis returns a cache backed by the Redis server at addr. A ttl of zero keeps entries
// until they are evicted.
func NewRedis(addr string, db int, ttl time.Duration) *Redis {
	cli := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	return &Redis{cli: cli, ttl: ttl}
}

func (r *Redis) Ping(ctx context.Context) error { return r.cli.Ping(ctx).Err() }

func (r *Redis) Close() error { return r.cli.Close() }

type entry struct {
	Slot      uint64    `json:"slot"`
	TxIndex   uint32    `json:"tx_index"`
	BlockHash string    `json:"block_hash"`
	BlockTime time.Time `json:"block_time"`
	Day       time.Time `json:"day"`
	Payload   []byte    `json:"payload"`
}

func key(cluster model.Cluster, signature string) string {
	return keyPrefix + string(cluster) + ":" + signature
}

// Get returns the cached transaction. A miss is (_, false, nil).
func (r *Redis) Get(ctx context.Context, cluster model.Cluster, signature string) (model.Transaction, bool, error) {
	raw, err := r.cli.Get(ctx, key(cluster, signature)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.Transaction{}, false, nil
	}
	if err != nil {
		return model.Transaction{}, false, fmt.Errorf("redis get: %w", err)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return model.Transaction{}, false, fmt.Errorf("decode cached transaction: %w", err)
	}
	return model.Transaction{
		Cluster:   cluster,
		Signature: signature,
		Slot:      e.Slot,
		TxIndex:   e.TxIndex,
		BlockHash: e.BlockHash,
		BlockTime: e.BlockTime.UTC(),
		Day:       e.Day.UTC(),
		Payload:   e.Payload,
	}, true, nil
}

func (r *Redis) Set(ctx context.Context, tx model.Transaction) error {
	raw, err := json.Marshal(entry{
		Slot:      tx.Slot,
		TxIndex:   tx.TxIndex,
		BlockHash: tx.BlockHash,
		BlockTime: tx.BlockTime,
		Day:       tx.Day,
		Payload:   tx.Payload,
	})
	if err != nil {
		return fmt.Errorf("encode transaction: %w", err)
	}
	if err := r.cli.Set(ctx, key(tx.Cluster, tx.Signature), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
