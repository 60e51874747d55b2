package metrics

import (
	"time"

	"github.com/neotheprogramist/solana-data-aggregator/internal/solana/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operations_total",
		Help:      "Count of Solana JSON-RPC operations.",
	}, []string{"operation", "cluster", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of Solana JSON-RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "cluster", "status"})
)

// RPCClient tracks metrics for RPC calls to Solana nodes.
type RPCClient struct {
	cluster model.Cluster
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(cluster model.Cluster) *RPCClient {
	if cluster == "" {
		cluster = unknown
	}
	return &RPCClient{cluster: cluster}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	rpcRequestsTotal.WithLabelValues(operation, string(m.cluster), s).Inc()
	rpcRequestDuration.WithLabelValues(operation, string(m.cluster), s).Observe(time.Since(started).Seconds())
}
