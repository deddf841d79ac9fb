// Package metrics holds the Prometheus collectors of the dashboard service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upload results.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

// Metrics groups the collectors registered on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	uploads        *prometheus.CounterVec
	rowsProcessed  prometheus.Counter
	ingestDuration prometheus.Histogram
	sessions       prometheus.Gauge
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_uploads_total",
			Help: "Uploaded files by ingestion result.",
		}, []string{"result"}),
		rowsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_rows_processed_total",
			Help: "Order rows turned into canonical rows.",
		}),
		ingestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dashboard_ingest_duration_seconds",
			Help:    "Time spent parsing and processing one upload.",
			Buckets: prometheus.DefBuckets,
		}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_sessions",
			Help: "Sessions currently held in memory.",
		}),
	}
	m.registry.MustRegister(m.uploads, m.rowsProcessed, m.ingestDuration, m.sessions)
	return m
}

// ObserveUpload records one ingestion attempt.
func (m *Metrics) ObserveUpload(result string, rows int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(result).Inc()
	m.rowsProcessed.Add(float64(rows))
	m.ingestDuration.Observe(elapsed.Seconds())
}

// SetSessions publishes the number of live sessions.
func (m *Metrics) SetSessions(n int) {
	if m == nil {
		return
	}
	m.sessions.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
