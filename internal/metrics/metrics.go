// Package metrics provides Prometheus metrics for latexdoc
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for latexdoc
type Metrics struct {
	// Parse metrics
	ParsesTotal      *prometheus.CounterVec
	SectionsPerParse prometheus.Histogram

	// Mutation metrics
	MutationsTotal    *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec

	// Serialization metrics
	RendersTotal prometheus.Counter
	SavesTotal   *prometheus.CounterVec

	// Extraction metrics
	ExtractionsTotal    *prometheus.CounterVec
	ExtractedItemsTotal *prometheus.CounterVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide metrics instance, creating and
// registering it on first use. Collectors register on the default
// Prometheus registry; the host application exposes them however it
// serves its own /metrics endpoint.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = newMetrics()
	})
	return defaultMetrics
}

// newMetrics creates and registers all Prometheus metrics
func newMetrics() *Metrics {
	m := &Metrics{}

	// Parse metrics
	m.ParsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latexdoc_parses_total",
			Help: "Total number of document parses",
		},
		[]string{"source", "status"},
	)

	m.SectionsPerParse = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "latexdoc_sections_per_parse",
			Help:    "Number of sections discovered per successful parse",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64},
		},
	)

	// Mutation metrics
	m.MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latexdoc_mutations_total",
			Help: "Total number of section mutations",
		},
		[]string{"operation", "status"},
	)

	m.OperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "latexdoc_operation_duration_seconds",
			Help:    "Duration of document operations in seconds",
			Buckets: []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		},
		[]string{"operation"},
	)

	// Serialization metrics
	m.RendersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "latexdoc_renders_total",
			Help: "Total number of document renders",
		},
	)

	m.SavesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latexdoc_saves_total",
			Help: "Total number of document save operations",
		},
		[]string{"status"},
	)

	// Extraction metrics
	m.ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latexdoc_extractions_total",
			Help: "Total number of extraction runs",
		},
		[]string{"extractor"},
	)

	m.ExtractedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "latexdoc_extracted_items_total",
			Help: "Total number of items returned by extractors",
		},
		[]string{"extractor"},
	)

	return m
}

// RecordParse records a parse attempt with its outcome
func (m *Metrics) RecordParse(source string, status string, sections int, duration time.Duration) {
	m.ParsesTotal.WithLabelValues(source, status).Inc()
	m.OperationDuration.WithLabelValues("parse").Observe(duration.Seconds())
	if status == "success" {
		m.SectionsPerParse.Observe(float64(sections))
	}
}

// RecordMutation records a section mutation with its outcome
func (m *Metrics) RecordMutation(operation string, status string, duration time.Duration) {
	m.MutationsTotal.WithLabelValues(operation, status).Inc()
	m.OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRender records a document render
func (m *Metrics) RecordRender() {
	m.RendersTotal.Inc()
}

// RecordSave records a save operation with its outcome
func (m *Metrics) RecordSave(status string) {
	m.SavesTotal.WithLabelValues(status).Inc()
}

// RecordExtraction records an extraction run and its item count
func (m *Metrics) RecordExtraction(extractor string, items int) {
	m.ExtractionsTotal.WithLabelValues(extractor).Inc()
	m.ExtractedItemsTotal.WithLabelValues(extractor).Add(float64(items))
}
