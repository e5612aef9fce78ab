package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the certificate module.
// Tracks review outcomes and the review critical path duration.
type Metrics struct {
	CertificatesApproved prometheus.Counter
	CertificatesRejected prometheus.Counter
	ReviewDuration       prometheus.Histogram
}

// New creates a Metrics instance with all certificate module metrics registered.
func New() *Metrics {
	return &Metrics{
		CertificatesApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "denclass_certificates_approved_total",
			Help: "Total number of certificates approved",
		}),
		CertificatesRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "denclass_certificates_rejected_total",
			Help: "Total number of certificates rejected",
		}),
		ReviewDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "denclass_certificate_review_duration_seconds",
			Help:    "Duration of certificate review mutations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementApproved records a successful approval.
func (m *Metrics) IncrementApproved() {
	m.CertificatesApproved.Inc()
}

// IncrementRejected records a successful rejection.
func (m *Metrics) IncrementRejected() {
	m.CertificatesRejected.Inc()
}

// ObserveReview records the duration of a review mutation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveReview(start time.Time) {
	m.ReviewDuration.Observe(time.Since(start).Seconds())
}
