// Package metrics exposes the Prometheus collectors the pipeline updates as
// it processes files, mirroring the teacher repo's use of
// github.com/prometheus/client_golang for its own indexer/policy counters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles every collector the pipeline and emitter touch. The zero
// value is not usable; build one with New, which registers it with the
// default registry (or use NewForRegistry for tests that want an isolated one).
type Metrics struct {
	FilesProcessed       prometheus.Counter
	FactsEmitted         prometheus.Counter
	EdgesEmitted         prometheus.Counter
	UnresolvedReferences prometheus.Counter
	ExtractionDuration   prometheus.Histogram
}

// New registers and returns a Metrics bound to prometheus's default
// registry, for use from cmd/hdlfacts's optional /metrics listener.
func New() *Metrics {
	return NewForRegistry(prometheus.DefaultRegisterer)
}

// NewForRegistry registers against reg, letting tests use a private
// prometheus.NewRegistry() instead of the global default.
func NewForRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FilesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hdlfacts_files_processed_total",
			Help: "Source files run through the extraction pipeline.",
		}),
		FactsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hdlfacts_facts_emitted_total",
			Help: "Kythe fact records written to the sink.",
		}),
		EdgesEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hdlfacts_edges_emitted_total",
			Help: "Kythe edge records written to the sink.",
		}),
		UnresolvedReferences: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "hdlfacts_unresolved_references_total",
			Help: "References that found no matching definition in scope.",
		}),
		ExtractionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hdlfacts_extraction_duration_seconds",
			Help:    "Wall time spent extracting facts from a single file.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.FilesProcessed, m.FactsEmitted, m.EdgesEmitted, m.UnresolvedReferences, m.ExtractionDuration)
	return m
}

// ObserveExtraction records d against the extraction duration histogram.
// Safe to call on a nil *Metrics (no-op), so callers can leave metrics
// disabled without guarding every call site.
func (m *Metrics) ObserveExtraction(d time.Duration) {
	if m == nil {
		return
	}
	m.ExtractionDuration.Observe(d.Seconds())
}

// IncFilesProcessed records one file having completed extraction.
func (m *Metrics) IncFilesProcessed() {
	if m != nil {
		m.FilesProcessed.Inc()
	}
}

// IncFactsEmitted records one fact record written to the sink.
func (m *Metrics) IncFactsEmitted() {
	if m != nil {
		m.FactsEmitted.Inc()
	}
}

// IncEdgesEmitted records one edge record written to the sink.
func (m *Metrics) IncEdgesEmitted() {
	if m != nil {
		m.EdgesEmitted.Inc()
	}
}

// IncUnresolvedReferences records one reference that resolved to nothing.
func (m *Metrics) IncUnresolvedReferences() {
	if m != nil {
		m.UnresolvedReferences.Inc()
	}
}
