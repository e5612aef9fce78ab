package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the treatment-plan module.
type Metrics struct {
	PlansApproved  prometheus.Counter
	PlansReturned  prometheus.Counter
	ReviewDuration prometheus.Histogram
}

// New creates a Metrics instance with all treatment-plan module metrics registered.
func New() *Metrics {
	return &Metrics{
		PlansApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "denclass_treatment_plans_approved_total",
			Help: "Total number of treatment plans approved",
		}),
		PlansReturned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "denclass_treatment_plans_returned_total",
			Help: "Total number of treatment plans returned to provider",
		}),
		ReviewDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "denclass_treatment_plan_review_duration_seconds",
			Help:    "Duration of treatment plan review mutations",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementDecision records a review outcome.
func (m *Metrics) IncrementDecision(approved bool) {
	if approved {
		m.PlansApproved.Inc()
		return
	}
	m.PlansReturned.Inc()
}

// ObserveReview records the duration of a review mutation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveReview(start time.Time) {
	m.ReviewDuration.Observe(time.Since(start).Seconds())
}
