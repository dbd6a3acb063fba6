package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks calculator usage and lead capture.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	EstimatesTotal      *prometheus.CounterVec
	EstimateDuration    prometheus.Histogram
	ReportsRendered     prometheus.Counter
	LeadsCaptured       prometheus.Counter
	LeadCaptureFailures prometheus.Counter
}

// New registers the gateway metrics on reg. Pass prometheus.DefaultRegisterer
// in production and a fresh prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		EstimatesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "nishad_estimates_total",
			Help: "Total number of cost estimates computed",
		}, []string{"activity", "city"}),
		EstimateDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "nishad_estimate_duration_seconds",
			Help:    "Duration of estimate requests including lead dispatch",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		ReportsRendered: f.NewCounter(prometheus.CounterOpts{
			Name: "nishad_estimate_reports_rendered_total",
			Help: "Total number of PDF estimate reports rendered",
		}),
		LeadsCaptured: f.NewCounter(prometheus.CounterOpts{
			Name: "nishad_leads_captured_total",
			Help: "Total number of calculator leads persisted",
		}),
		LeadCaptureFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "nishad_lead_capture_failures_total",
			Help: "Total number of calculator leads that could not be persisted",
		}),
	}
}

// ObserveEstimate records one estimate. Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveEstimate(activity, city string, start time.Time) {
	if m == nil {
		return
	}
	if activity == "" {
		activity = "unknown"
	}
	if city == "" {
		city = "unknown"
	}
	m.EstimatesTotal.WithLabelValues(activity, city).Inc()
	m.EstimateDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementReportsRendered() {
	if m == nil {
		return
	}
	m.ReportsRendered.Inc()
}

func (m *Metrics) IncrementLeadsCaptured() {
	if m == nil {
		return
	}
	m.LeadsCaptured.Inc()
}

func (m *Metrics) IncrementLeadCaptureFailures() {
	if m == nil {
		return
	}
	m.LeadCaptureFailures.Inc()
}
