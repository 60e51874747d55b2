package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	slotProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "slots_total",
		Help:      "Count of slots handled, by outcome.",
	}, []string{"stream", "outcome"})

	slotProcessDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "slot_duration_seconds",
		Help:      "Duration from first fetch attempt to checkpoint of a slot.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stream", "outcome"})

	slotTransactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "transactions_total",
		Help:      "Count of transactions persisted.",
	}, []string{"stream"})

	slotTruncatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "truncated_slots_total",
		Help:      "Count of slots whose transaction list exceeded the fetch limit.",
	}, []string{"stream"})

	slotRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "retries_total",
		Help:      "Count of retried attempts, by stage and error class.",
	}, []string{"stream", "stage", "class"})

	slotErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "errors_total",
		Help:      "Count of slot errors that stopped ingestion, by kind.",
	}, []string{"stream", "kind"})

	slotCheckpoint = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "checkpoint_slot",
		Help:      "Highest slot fully stored.",
	}, []string{"stream"})

	slotLag = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "lag_slots",
		Help:      "Distance between the finalized tip and the next slot to ingest.",
	}, []string{"stream"})

	slotState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "slot_ingester",
		Name:      "state",
		Help:      "Current state of the ingestion loop; 1 for the active state.",
	}, []string{"stream", "state"})
)

var ingesterStates = []string{"idle", "fetching", "persisting", "advancing", "error"}

// SlotIngester records ingestion loop metrics for one checkpoint stream.
type SlotIngester struct {
	stream string
}

func NewSlotIngester(stream string) *SlotIngester {
	if stream == "" {
		stream = unknown
	}
	return &SlotIngester{stream: stream}
}

// ObserveSlot records a completed slot. outcome is "stored" or "skipped".
func (m SlotIngester) ObserveSlot(outcome string, txs int, started time.Time) {
	slotProcessedTotal.WithLabelValues(m.stream, outcome).Inc()
	slotProcessDuration.WithLabelValues(m.stream, outcome).Observe(time.Since(started).Seconds())
	slotTransactionsTotal.WithLabelValues(m.stream).Add(float64(txs))
}

func (m SlotIngester) ObserveTruncated() {
	slotTruncatedTotal.WithLabelValues(m.stream).Inc()
}

func (m SlotIngester) ObserveRetry(stage, class string) {
	slotRetriesTotal.WithLabelValues(m.stream, stage, class).Inc()
}

func (m SlotIngester) ObserveError(kind string) {
	slotErrorsTotal.WithLabelValues(m.stream, kind).Inc()
}

func (m SlotIngester) SetCheckpoint(slot uint64) {
	slotCheckpoint.WithLabelValues(m.stream).Set(float64(slot))
}

func (m SlotIngester) SetLag(lag uint64) {
	slotLag.WithLabelValues(m.stream).Set(float64(lag))
}

// SetState marks state as the active one.
func (m SlotIngester) SetState(state string) {
	for _, s := range ingesterStates {
		v := 0.0
		if s == state {
			v = 1
		}
		slotState.WithLabelValues(m.stream, s).Set(v)
	}
}
