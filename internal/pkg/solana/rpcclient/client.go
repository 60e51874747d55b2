package rpcclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/jsonrpc"
)

const (
	maxIdleConnsPerHost = 9
	httpTimeout         = 5 * time.Minute
)

// DecodeError is returned when the node answered with a body that is not a valid
// JSON-RPC response or whose result does not match the expected shape.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RetryAfterError carries the delay a node asked for in the Retry-After header of a 429 response.
type RetryAfterError struct {
	After time.Duration
	Err   error
}

func (e *RetryAfterError) Error() string {
	return fmt.Sprintf("%v (retry after %s)", e.Err, e.After)
}

func (e *RetryAfterError) Unwrap() error { return e.Err }

// RetryAfter returns the delay carried by err, or zero.
func RetryAfter(err error) time.Duration {
	var ra *RetryAfterError
	if errors.As(err, &ra) {
		return ra.After
	}
	return 0
}

// NewClient creates a Solana JSON-RPC client for endpoint whose call errors are
// typed: undecodable responses become *DecodeError and throttled responses keep
// their Retry-After delay as *RetryAfterError.
func NewClient(endpoint string) *rpc.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxConnsPerHost = maxIdleConnsPerHost
	transport.MaxIdleConnsPerHost = maxIdleConnsPerHost

	httpClient := &http.Client{
		Timeout:   httpTimeout,
		Transport: &callTransport{base: transport, now: time.Now},
	}
	inner := jsonrpc.NewClientWithOpts(endpoint, &jsonrpc.RPCClientOpts{HTTPClient: httpClient})
	return rpc.NewWithCustomRPCClient(&jsonRPCClient{RPCClient: inner})
}

type callInfoKey struct{}

// callInfo collects what the transport saw for one call.
type callInfo struct {
	retryAfter time.Duration
	readErr    error
}

type jsonRPCClient struct {
	jsonrpc.RPCClient
}

func (c *jsonRPCClient) CallForInto(ctx context.Context, out interface{}, method string, params []interface{}) error {
	info := &callInfo{}
	err := c.RPCClient.CallForInto(context.WithValue(ctx, callInfoKey{}, info), out, method, params)
	if err == nil {
		return nil
	}
	return callError(method, err, info)
}

func callError(method string, err error, info *callInfo) error {
	var (
		rpcErr  *jsonrpc.RPCError
		httpErr *jsonrpc.HTTPError
		urlErr  *url.Error
	)
	switch {
	case errors.As(err, &rpcErr), errors.As(err, &httpErr):
		if info.retryAfter > 0 {
			return &RetryAfterError{After: info.retryAfter, Err: err}
		}
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded), errors.As(err, &urlErr):
		return err
	case info.readErr != nil:
		// the body broke off mid-read, the decoder only saw a truncated document
		return fmt.Errorf("%w: %v", info.readErr, err)
	default:
		return &DecodeError{Method: method, Err: err}
	}
}

// callTransport records the Retry-After delay of 429 responses and body read
// failures into the callInfo of the request context.
type callTransport struct {
	base http.RoundTripper
	now  func() time.Time
}

func (t *callTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	info, ok := req.Context().Value(callInfoKey{}).(*callInfo)
	if !ok {
		return resp, nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		info.retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), t.now())
	}
	resp.Body = &trackedBody{ReadCloser: resp.Body, info: info}
	return resp, nil
}

type trackedBody struct {
	io.ReadCloser
	info *callInfo
}

func (b *trackedBody) Read(p []byte) (int, error) {
	n, err := b.ReadCloser.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		b.info.readErr = err
	}
	return n, err
}

// parseRetryAfter accepts both delay-seconds and HTTP-date forms.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs <= 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	at, err := http.ParseTime(v)
	if err != nil {
		return 0
	}
	if d := at.Sub(now); d > 0 {
		return d
	}
	return 0
}
