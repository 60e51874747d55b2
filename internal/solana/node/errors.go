package node

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
	"github.com/neotheprogramist/solana-data-aggregator/internal/pkg/solana/rpcclient"
	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/chain"
)

// JSON-RPC error codes returned by Solana validators.
const (
	codeInvalidRequest  = -32600
	codeMethodNotFound  = -32601
	codeInvalidParams   = -32602
	codeNodeUnhealthy   = -32005
	codeSlotSkipped     = -32007
	codeLongTermSkipped = -32009
	codeTooManyRequests = 429
)

// ErrRequestTimeout is returned when a single RPC call exceeds the configured timeout.
var ErrRequestTimeout = errors.New("rpc request timed out")

// classify maps a raw RPC error onto the chain error taxonomy. parent is the caller's
// context; a deadline hit only by the per-call timeout stays transient.
func classify(parent context.Context, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
		return fmt.Errorf("%w: %v", ErrRequestTimeout, err)
	}

	var rpcErr *jsonrpc.RPCError
	if errors.As(err, &rpcErr) {
		switch rpcErr.Code {
		case codeSlotSkipped, codeLongTermSkipped:
			return fmt.Errorf("%w: %s", chain.ErrSlotSkipped, rpcErr.Message)
		case codeTooManyRequests, codeNodeUnhealthy:
			return &chain.RateLimitError{RetryAfter: rpcclient.RetryAfter(err), Err: err}
		case codeInvalidRequest, codeMethodNotFound, codeInvalidParams:
			return chain.Fatal(err)
		}
		return err
	}

	var httpErr *jsonrpc.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusTooManyRequests:
			return &chain.RateLimitError{RetryAfter: rpcclient.RetryAfter(err), Err: err}
		case http.StatusUnauthorized, http.StatusForbidden:
			return chain.Fatal(err)
		}
		return err
	}

	var decodeErr *rpcclient.DecodeError
	if errors.As(err, &decodeErr) {
		return chain.Fatal(err)
	}
	return err
}

// classifyBlock treats a null getBlock result as a skipped slot. The client reports
// it as rpc.ErrNotConfirmed.
func classifyBlock(parent context.Context, err error) error {
	if errors.Is(err, rpc.ErrNotConfirmed) {
		return chain.ErrSlotSkipped
	}
	return classify(parent, err)
}

// classifyTransaction treats a missing transaction of a finalized block as a protocol violation.
// The client reports a null result as rpc.ErrNotFound.
func classifyTransaction(parent context.Context, err error) error {
	if errors.Is(err, rpc.ErrNotFound) {
		return chain.Fatal(err)
	}
	return classify(parent, err)
}
