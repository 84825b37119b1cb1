package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the exchange module.
type Metrics struct {
	// Operation outcomes by operation name and result code
	OperationOutcome *prometheus.CounterVec

	// Operation latency under the store lock
	OperationLatency *prometheus.HistogramVec

	// Group sizes at pairing time
	PairingGroupSize prometheus.Histogram

	// Groups closed by a pairing run
	GroupsClosed prometheus.Counter
}

// New creates a Metrics instance with all exchange metrics registered.
func New() *Metrics {
	return &Metrics{
		OperationOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "santa_exchange_operations_total",
			Help: "Total exchange operations by name and result",
		}, []string{"operation", "result"}),

		OperationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "santa_exchange_operation_duration_seconds",
			Help:    "Duration of exchange operations including lock wait",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}, []string{"operation"}),

		PairingGroupSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "santa_exchange_pairing_group_size",
			Help:    "Number of members in a group when the pairing runs",
			Buckets: []float64{1, 2, 3, 5, 10, 25, 50, 100},
		}),

		GroupsClosed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "santa_exchange_groups_closed_total",
			Help: "Total groups closed by a pairing run",
		}),
	}
}

// ObserveOperation records one operation's result and latency.
func (m *Metrics) ObserveOperation(operation, result string, d time.Duration) {
	if m != nil {
		m.OperationOutcome.WithLabelValues(operation, result).Inc()
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// ObservePairing records a completed pairing run.
func (m *Metrics) ObservePairing(groupSize int) {
	if m != nil {
		m.PairingGroupSize.Observe(float64(groupSize))
		m.GroupsClosed.Inc()
	}
}
