package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ipfsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traceanchor",
		Subsystem: "ipfs_client",
		Name:      "operations_total",
		Help:      "Count of content-store operations.",
	}, []string{"operation", "status"})
	ipfsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "traceanchor",
		Subsystem: "ipfs_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of content-store operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	ipfsGatewayAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traceanchor",
		Subsystem: "ipfs_client",
		Name:      "gateway_attempts_total",
		Help:      "Count of per-gateway retrieval attempts.",
	}, []string{"gateway", "status"})
)

// IPFSClient tracks metrics for content-store uploads and retrievals.
type IPFSClient struct{}

// NewIPFSClient constructs an IPFSClient metrics collector.
func NewIPFSClient() *IPFSClient {
	return &IPFSClient{}
}

// Observe records a single content-store operation outcome and duration.
func (m IPFSClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ipfsRequestsTotal.WithLabelValues(operation, status).Inc()
	ipfsRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveGatewayAttempt records the outcome of one gateway retrieval attempt.
func (m IPFSClient) ObserveGatewayAttempt(gateway string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ipfsGatewayAttemptsTotal.WithLabelValues(gateway, status).Inc()
}
