// Package metrics holds Prometheus collectors for the hidden message scanner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockSourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_source",
		Name:      "operations_total",
		Help:      "Count of block source operations.",
	}, []string{"operation", "source", "status"})
	blockSourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "block_source",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block source operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "source", "status"})
)

// BlockSource tracks calls made by a block source (explorer HTTP API or node RPC).
type BlockSource struct {
	source string
}

// NewBlockSource constructs a metrics collector labeled with the source name.
func NewBlockSource(source string) *BlockSource {
	if source == "" {
		source = "unknown"
	}
	return &BlockSource{source: source}
}

// Observe records a single operation outcome and duration.
func (m BlockSource) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	blockSourceRequestsTotal.WithLabelValues(operation, m.source, status).Inc()
	blockSourceRequestDuration.WithLabelValues(operation, m.source, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
