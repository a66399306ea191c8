// Package metrics exposes Prometheus counters for result ingestion.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Ingestion outcomes
const (
	OutcomeSuccess        = "success"
	OutcomeInvalidPayload = "invalid_payload"
	OutcomeEventNotFound  = "event_not_found"
	OutcomeError          = "error"
)

// Leaderboard entry statuses
const (
	EntryUpserted = "upserted"
	EntrySkipped  = "skipped"
	EntryFailed   = "failed"
)

// Recorder holds the ingestion metrics registered on one registry
type Recorder struct {
	registry *prometheus.Registry

	ingestions      *prometheus.CounterVec
	entries         *prometheus.CounterVec
	ingestDuration  prometheus.Histogram
	standingsServed prometheus.Counter
}

// NewRecorder registers the league metrics on a fresh registry
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	auto := promauto.With(registry)

	return &Recorder{
		registry: registry,
		ingestions: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "league",
			Subsystem: "results",
			Name:      "ingestions_total",
			Help:      "Result file ingestions by outcome",
		}, []string{"outcome"}),
		entries: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "league",
			Subsystem: "results",
			Name:      "leaderboard_entries_total",
			Help:      "Leaderboard entries seen during ingestion by status",
		}, []string{"status"}),
		ingestDuration: auto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "league",
			Subsystem: "results",
			Name:      "ingestion_duration_seconds",
			Help:      "Time spent parsing and storing one result file",
			Buckets:   prometheus.DefBuckets,
		}),
		standingsServed: auto.NewCounter(prometheus.CounterOpts{
			Namespace: "league",
			Subsystem: "standings",
			Name:      "requests_total",
			Help:      "Standings computations served",
		}),
	}
}

// RecordIngestion counts one ingestion call and how long it took
func (r *Recorder) RecordIngestion(outcome string, seconds float64) {
	if r == nil {
		return
	}
	r.ingestions.WithLabelValues(outcome).Inc()
	r.ingestDuration.Observe(seconds)
}

// RecordEntries adds per-entry counters of one parsed file
func (r *Recorder) RecordEntries(upserted, skipped, failed int) {
	if r == nil {
		return
	}
	r.entries.WithLabelValues(EntryUpserted).Add(float64(upserted))
	r.entries.WithLabelValues(EntrySkipped).Add(float64(skipped))
	r.entries.WithLabelValues(EntryFailed).Add(float64(failed))
}

// RecordStandings counts one standings computation
func (r *Recorder) RecordStandings() {
	if r == nil {
		return
	}
	r.standingsServed.Inc()
}

// Registry returns the registry the metrics live on
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
