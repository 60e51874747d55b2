// Package node fetches finalized slots from a Solana JSON-RPC node.
package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/chain"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/neotheprogramist/solana-data-aggregator/pkg/safe"
	"github.com/neotheprogramist/solana-data-aggregator/pkg/workerpool"
)

const (
	// DefaultTxLimit bounds the number of transactions fetched per slot.
	DefaultTxLimit     = 1000
	defaultWorkerCount = 8
)

var maxSupportedTransactionVersion uint64

// Config tunes a Source.
type Config struct {
	Cluster model.Cluster
	// TxLimit is the maximum number of transactions fetched per slot.
	TxLimit int
	// Workers bounds concurrent getTransaction calls within a slot.
	Workers int
	// Timeout applies to each RPC call. Zero disables it.
	Timeout time.Duration
}

// Source implements chain.SlotSource over JSON-RPC.
type Source struct {
	rpc        RPCClient
	cluster    model.Cluster
	txLimit    int
	workers    int
	timeout    time.Duration
	commitment rpc.CommitmentType
}

var _ chain.SlotSource = (*Source)(nil)

// NewSource creates a Source reading finalized data.
func NewSource(client RPCClient, cfg Config) (*Source, error) {
	if client == nil {
		return nil, errors.New("rpc client is required")
	}
	if cfg.Cluster == "" {
		return nil, errors.New("cluster is required")
	}
	if cfg.TxLimit <= 0 {
		cfg.TxLimit = DefaultTxLimit
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}
	return &Source{
		rpc:        client,
		cluster:    cfg.Cluster,
		txLimit:    cfg.TxLimit,
		workers:    cfg.Workers,
		timeout:    cfg.Timeout,
		commitment: rpc.CommitmentFinalized,
	}, nil
}

// LatestSlot returns the latest finalized slot.
func (s *Source) LatestSlot(ctx context.Context) (uint64, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	slot, err := s.rpc.GetSlot(callCtx, s.commitment)
	if err != nil {
		return 0, fmt.Errorf("get slot: %w", classify(ctx, err))
	}
	return slot, nil
}

// FetchSlot retrieves the block at slot and up to txLimit of its transactions in block order.
func (s *Source) FetchSlot(ctx context.Context, slot uint64) (*chain.SlotBatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	block, err := s.getBlock(ctx, slot)
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", slot, err)
	}

	blockTime := time.Unix(0, 0).UTC()
	if block.BlockTime != nil {
		blockTime = block.BlockTime.Time().UTC()
	}

	signatures := block.Signatures
	total := len(signatures)
	truncated := total > s.txLimit
	if truncated {
		signatures = signatures[:s.txLimit]
	}

	batch := &chain.SlotBatch{
		Slot:       slot,
		BlockHash:  block.Blockhash.String(),
		ParentSlot: block.ParentSlot,
		BlockTime:  blockTime,
		Total:      total,
		Truncated:  truncated,
	}

	type indexed struct {
		index     int
		signature solana.Signature
	}
	items := make([]indexed, len(signatures))
	for i, sig := range signatures {
		items[i] = indexed{index: i, signature: sig}
	}

	txs, err := workerpool.Map(ctx, s.workers, items, func(ctx context.Context, it indexed) (model.Transaction, error) {
		payload, err := s.getTransaction(ctx, it.signature)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("get transaction %s: %w", it.signature, err)
		}
		txIndex, err := safe.Uint32(it.index)
		if err != nil {
			return model.Transaction{}, chain.Fatal(fmt.Errorf("transaction index overflow: %w", err))
		}
		return model.Transaction{
			Cluster:   s.cluster,
			Signature: it.signature.String(),
			Slot:      slot,
			TxIndex:   txIndex,
			BlockHash: batch.BlockHash,
			BlockTime: blockTime,
			Day:       model.Day(blockTime),
			Payload:   payload,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("slot %d: %w", slot, err)
	}
	batch.Transactions = txs
	return batch, nil
}

func (s *Source) getBlock(ctx context.Context, slot uint64) (*rpc.GetBlockResult, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	rewards := false
	block, err := s.rpc.GetBlockWithOpts(callCtx, slot, &rpc.GetBlockOpts{
		TransactionDetails:             rpc.TransactionDetailsSignatures,
		Rewards:                        &rewards,
		Commitment:                     s.commitment,
		MaxSupportedTransactionVersion: &maxSupportedTransactionVersion,
	})
	if err != nil {
		return nil, classifyBlock(ctx, err)
	}
	return block, nil
}

func (s *Source) getTransaction(ctx context.Context, signature solana.Signature) ([]byte, error) {
	callCtx, cancel := s.callContext(ctx)
	defer cancel()

	tx, err := s.rpc.GetTransaction(callCtx, signature, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     s.commitment,
		MaxSupportedTransactionVersion: &maxSupportedTransactionVersion,
	})
	if err != nil {
		return nil, classifyTransaction(ctx, err)
	}
	payload, err := json.Marshal(tx)
	if err != nil {
		return nil, chain.Fatal(fmt.Errorf("encode transaction payload: %w", err))
	}
	return payload, nil
}

func (s *Source) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}
