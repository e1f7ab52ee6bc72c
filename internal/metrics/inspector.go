package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-hidden-messages/internal/stego/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	inspectorFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "inspector",
		Name:      "fetch_block_total",
		Help:      "Count of block fetch attempts.",
	}, []string{"source", "status"})

	inspectorFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "inspector",
		Name:      "fetch_block_duration_seconds",
		Help:      "Duration of fetching a block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"source", "status"})

	inspectorMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "inspector",
		Name:      "messages_total",
		Help:      "Count of hidden messages found, by field.",
	}, []string{"source", "field"})
)

// Inspector tracks the fetch and scan steps of a transaction inspection.
type Inspector struct {
	source string
}

// NewInspector constructs a metrics collector labeled with the block source name.
func NewInspector(source string) *Inspector {
	if source == "" {
		source = "unknown"
	}
	return &Inspector{source: source}
}

// ObserveFetch records the outcome and duration of a block fetch.
func (m Inspector) ObserveFetch(err error, started time.Time) {
	status := statusOf(err)
	inspectorFetchTotal.WithLabelValues(m.source, status).Inc()
	inspectorFetchDuration.WithLabelValues(m.source, status).Observe(time.Since(started).Seconds())
}

// ObserveMessages counts found messages per field label.
func (m Inspector) ObserveMessages(messages []model.Message) {
	for _, msg := range messages {
		inspectorMessagesTotal.WithLabelValues(m.source, string(msg.Source)).Inc()
	}
}
