package rpcclient

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/ratelimit"
)

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps the Solana JSON-RPC client with per-call metrics and optional pacing.
type ObservedClient struct {
	client     *rpc.Client
	rpcMetrics RPCMetrics
	limiter    ratelimit.Limiter
}

// NewObservedClient wraps client. A non-positive rps disables pacing.
func NewObservedClient(client *rpc.Client, rpcMetrics RPCMetrics, rps int) *ObservedClient {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
		limiter:    limiter,
	}
}

func (r *ObservedClient) GetSlot(ctx context.Context, commitment rpc.CommitmentType) (slot uint64, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_slot", err, started)
	}()
	return r.client.GetSlot(ctx, commitment)
}

func (r *ObservedClient) GetBlockWithOpts(ctx context.Context, slot uint64, opts *rpc.GetBlockOpts) (res *rpc.GetBlockResult, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block", err, started)
	}()
	return r.client.GetBlockWithOpts(ctx, slot, opts)
}

func (r *ObservedClient) GetTransaction(ctx context.Context, signature solana.Signature, opts *rpc.GetTransactionOpts) (res *rpc.GetTransactionResult, err error) {
	r.limiter.Take()
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_transaction", err, started)
	}()
	return r.client.GetTransaction(ctx, signature, opts)
}
