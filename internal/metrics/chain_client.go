package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traceanchor",
		Subsystem: "chain_client",
		Name:      "operations_total",
		Help:      "Count of chain client operations.",
	}, []string{"operation", "status"})
	chainRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "traceanchor",
		Subsystem: "chain_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain client operations, confirmation wait included.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30, 60, 120},
	}, []string{"operation", "status"})
	chainGasUsed = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "traceanchor",
		Subsystem: "chain_client",
		Name:      "anchor_gas_used",
		Help:      "Gas consumed by confirmed anchor transactions.",
		Buckets:   prometheus.ExponentialBuckets(21000, 2, 8),
	})
)

// ChainClient tracks metrics for anchor transactions and chain reads.
type ChainClient struct{}

// NewChainClient constructs a ChainClient metrics collector.
func NewChainClient() *ChainClient {
	return &ChainClient{}
}

// Observe records a single chain operation outcome and duration.
func (m ChainClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	chainRequestsTotal.WithLabelValues(operation, status).Inc()
	chainRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveGasUsed records gas consumed by a confirmed anchor transaction.
func (m ChainClient) ObserveGasUsed(gasUsed uint64) {
	chainGasUsed.Observe(float64(gasUsed))
}
