package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds process-level metrics shared across modules.
type Metrics struct {
	NotificationQueueDepth prometheus.Gauge
	SnapshotDuration       prometheus.Histogram
}

// New creates and registers all process-level metrics.
func New() *Metrics {
	return &Metrics{
		NotificationQueueDepth: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "denclass_notification_queue_depth",
			Help: "Current number of undismissed notifications",
		}),
		SnapshotDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "denclass_readiness_snapshot_duration_seconds",
			Help:    "Duration of readiness queue metric snapshots",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// ObserveSnapshot records the duration of a readiness snapshot.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSnapshot(start time.Time) {
	m.SnapshotDuration.Observe(time.Since(start).Seconds())
}
