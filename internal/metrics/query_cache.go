package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var queryCacheLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Subsystem: "query_cache",
	Name:      "lookups_total",
	Help:      "Count of transaction cache lookups by result.",
}, []string{"result"})

// QueryCache records cache lookup results.
type QueryCache struct{}

func NewQueryCache() *QueryCache {
	return &QueryCache{}
}

func (QueryCache) ObserveHit()   { queryCacheLookupsTotal.WithLabelValues("hit").Inc() }
func (QueryCache) ObserveMiss()  { queryCacheLookupsTotal.WithLabelValues("miss").Inc() }
func (QueryCache) ObserveError() { queryCacheLookupsTotal.WithLabelValues("error").Inc() }
