// Package metrics exposes job and context counters for Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frobware/go-xdna/job"
)

// Metrics holds the collectors of one device. Each instance owns its
// registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	JobsSubmitted   *prometheus.CounterVec
	JobsFinished    *prometheus.CounterVec
	JobDuration     prometheus.Histogram
	ContextsActive  prometheus.Gauge
	ContextsCreated prometheus.Counter
	ColumnsInUse    prometheus.Gauge
	BuffersMapped   prometheus.Gauge
}

// New registers the xdna collectors plus the Go and process
// collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		JobsSubmitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xdna_jobs_submitted_total",
				Help: "Number of commands admitted, by opcode",
			},
			[]string{"opcode"},
		),
		JobsFinished: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xdna_jobs_finished_total",
				Help: "Number of commands that reached a terminal state, by state",
			},
			[]string{"state"},
		),
		JobDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "xdna_job_duration_seconds",
				Help:    "Time from admission to terminal state",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
		),
		ContextsActive: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "xdna_contexts_active",
				Help: "Number of hardware contexts currently allocated",
			},
		),
		ContextsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "xdna_contexts_created_total",
				Help: "Number of hardware contexts created",
			},
		),
		ColumnsInUse: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "xdna_columns_in_use",
				Help: "Number of device columns allocated to contexts",
			},
		),
		BuffersMapped: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "xdna_buffers_mapped",
				Help: "Number of buffer objects currently mapped",
			},
		),
	}
	m.registry.MustRegister(
		m.JobsSubmitted,
		m.JobsFinished,
		m.JobDuration,
		m.ContextsActive,
		m.ContextsCreated,
		m.ColumnsInUse,
		m.BuffersMapped,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors are registered on.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// JobHooks returns tracker hooks that count admissions and
// completions. next, when non-nil, is called after counting.
func (m *Metrics) JobHooks(next job.Hooks) job.Hooks {
	return job.Hooks{
		Admitted: func(i job.Info) {
			m.JobsSubmitted.WithLabelValues(i.Opcode.String()).Inc()
			if next.Admitted != nil {
				next.Admitted(i)
			}
		},
		Finished: func(i job.Info) {
			m.JobsFinished.WithLabelValues(i.State.String()).Inc()
			if !i.FinishedAt.IsZero() {
				m.JobDuration.Observe(i.FinishedAt.Sub(i.SubmittedAt).Seconds())
			}
			if next.Finished != nil {
				next.Finished(i)
			}
		},
	}
}
