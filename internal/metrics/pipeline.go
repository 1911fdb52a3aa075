package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineCompletionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traceanchor",
		Subsystem: "pipeline",
		Name:      "stage_completions_total",
		Help:      "Count of stage-completion attempts by outcome.",
	}, []string{"outcome"})
	pipelineCompletionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "traceanchor",
		Subsystem: "pipeline",
		Name:      "stage_completion_duration_seconds",
		Help:      "End-to-end duration of stage-completion attempts.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"outcome"})
	pipelineVerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traceanchor",
		Subsystem: "pipeline",
		Name:      "verifications_total",
		Help:      "Count of record verifications by verdict.",
	}, []string{"status"})
	pipelineScanFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "traceanchor",
		Subsystem: "pipeline",
		Name:      "scan_flushes_total",
		Help:      "Count of product-scan batch flushes.",
	}, []string{"status"})
	pipelineScanFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "traceanchor",
		Subsystem: "pipeline",
		Name:      "scan_flush_size",
		Help:      "Number of scan events per batch flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"status"})
)

// Pipeline tracks metrics for the stage-completion and track services.
type Pipeline struct{}

// NewPipeline constructs a Pipeline metrics collector.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// ObserveCompletion records the outcome and duration of a stage-completion
// attempt.
func (m Pipeline) ObserveCompletion(outcome string, started time.Time) {
	pipelineCompletionsTotal.WithLabelValues(outcome).Inc()
	pipelineCompletionDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

// ObserveVerification records a verification verdict.
func (m Pipeline) ObserveVerification(status string) {
	pipelineVerificationsTotal.WithLabelValues(status).Inc()
}

// ObserveScanFlush records the outcome of one product-scan batch flush.
func (m Pipeline) ObserveScanFlush(size int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pipelineScanFlushTotal.WithLabelValues(status).Inc()
	pipelineScanFlushSize.WithLabelValues(status).Observe(float64(size))
}
