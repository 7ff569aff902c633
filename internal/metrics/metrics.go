// Package metrics holds the prometheus collectors for the completion
// pipeline and the result recorder.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeDropped = "dropped"
	// OutcomeCanceled marks calls abandoned because the client went away.
	OutcomeCanceled = "canceled"
)

type Metrics struct {
	completionTotal    *prometheus.CounterVec
	completionDuration *prometheus.HistogramVec
	degradedTotal      prometheus.Counter
	extractionFailures prometheus.Counter
	recordsTotal       *prometheus.CounterVec
}

// New registers the collectors on reg. Tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		completionTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "completion_requests_total",
				Help: "Completion provider calls by flow and outcome",
			},
			[]string{"flow", "outcome"},
		),
		completionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "completion_request_duration_seconds",
				Help:    "Completion provider call latency",
				Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 60},
			},
			[]string{"flow"},
		),
		degradedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "resume_analysis_degraded_total",
			Help: "Resume reviews that fell back to the degraded shape",
		}),
		extractionFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "document_extraction_failures_total",
			Help: "Uploaded documents that yielded no text",
		}),
		recordsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "interview_results_writes_total",
				Help: "interview_results inserts by outcome",
			},
			[]string{"outcome"},
		),
	}

	reg.MustRegister(
		m.completionTotal,
		m.completionDuration,
		m.degradedTotal,
		m.extractionFailures,
		m.recordsTotal,
	)
	return m
}

func (m *Metrics) ObserveCompletion(flow string, started time.Time, err error) {
	outcome := OutcomeSuccess
	switch {
	case errors.Is(err, context.Canceled):
		outcome = OutcomeCanceled
	case err != nil:
		outcome = OutcomeFailure
	}
	m.completionTotal.WithLabelValues(flow, outcome).Inc()
	m.completionDuration.WithLabelValues(flow).Observe(time.Since(started).Seconds())
}

func (m *Metrics) IncDegraded() {
	m.degradedTotal.Inc()
}

func (m *Metrics) IncExtractionFailure() {
	m.extractionFailures.Inc()
}

func (m *Metrics) IncRecord(outcome string) {
	m.recordsTotal.WithLabelValues(outcome).Inc()
}
