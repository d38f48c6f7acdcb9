package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for contact submissions
const (
	OutcomeSent          = "sent"
	OutcomeInvalidBody   = "invalid_body"
	OutcomeInvalidFields = "invalid_fields"
	OutcomeNotConfigured = "not_configured"
	OutcomeVerifyFailed  = "verify_failed"
	OutcomeSendFailed    = "send_failed"
	OutcomeError         = "error"
)

// ContactMetrics groups the collectors for the contact endpoint. A nil
// *ContactMetrics is valid and records nothing.
type ContactMetrics struct {
	Submissions *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewContactMetrics registers the contact collectors on reg, or on the default
// registerer when reg is nil.
func NewContactMetrics(namespace string, reg prometheus.Registerer) *ContactMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &ContactMetrics{
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "contact_submissions_total",
			Help:      "Count of contact form submissions by outcome.",
		}, []string{"outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "contact_submission_duration_ms",
			Help:      "Time spent handling a contact submission in milliseconds.",
			Buckets:   []float64{5, 25, 100, 250, 500, 1000, 2500, 5000, 10000},
		}, []string{"outcome"}),
	}
	m.Submissions = registerCounter(reg, m.Submissions)
	m.Duration = registerHistogram(reg, m.Duration)
	return m
}

// Observe records one submission with its outcome and elapsed time
func (m *ContactMetrics) Observe(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
	m.Duration.WithLabelValues(outcome).Observe(float64(elapsed) / float64(time.Millisecond))
}

func registerCounter(reg prometheus.Registerer, c *prometheus.CounterVec) *prometheus.CounterVec {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register counter: %w", err))
	}
	return c
}

func registerHistogram(reg prometheus.Registerer, h *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register histogram: %w", err))
	}
	return h
}
