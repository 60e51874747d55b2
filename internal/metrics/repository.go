package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"backend", "operation", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"backend", "operation", "status"})
)

// Repository tracks metrics for storage backend operations.
type Repository struct {
	backend string
}

// NewRepository creates a Repository metrics collector for backend.
func NewRepository(backend string) *Repository {
	if backend == "" {
		backend = unknown
	}
	return &Repository{backend: backend}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	s := status(err)
	repositoryRequestsTotal.WithLabelValues(m.backend, operation, s).Inc()
	repositoryRequestDuration.WithLabelValues(m.backend, operation, s).Observe(time.Since(started).Seconds())
}
