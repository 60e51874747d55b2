// Package metrics exposes Prometheus collectors for the aggregator components.
package metrics

const (
	namespace = "solana_aggregator"
	unknown   = "unknown"
)

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
