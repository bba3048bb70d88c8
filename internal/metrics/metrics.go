// Package metrics provides Prometheus metrics for alert extraction.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/theoremus-urban-solutions/ttc-alerts/record"
)

// Pipeline names used as label values.
const (
	PipelineMarkup   = "markup"
	PipelineBulletin = "bulletin"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Registry is the Prometheus registry for this metrics instance
	Registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Extraction metrics
	InputsTotal    *prometheus.CounterVec
	RecordsTotal   *prometheus.CounterVec
	DroppedTotal   *prometheus.CounterVec
	DecodeErrors   prometheus.Counter
	ExportWarnings *prometheus.CounterVec

	// Server cache metrics
	CacheLookups *prometheus.CounterVec
}

// New creates and registers all application metrics with a new registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ttc_alerts_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ttc_alerts_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	inputsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ttc_alerts_inputs_total",
			Help: "Markup entries or bulletin notices seen by an extractor; cache hits skip extraction",
		},
		[]string{"pipeline"},
	)

	recordsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ttc_alerts_records_total",
			Help: "Records emitted by an extractor; cache hits skip extraction",
		},
		[]string{"pipeline", "kind"},
	)

	droppedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ttc_alerts_dropped_total",
			Help: "Inputs that produced no meaningful record",
		},
		[]string{"pipeline"},
	)

	decodeErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ttc_alerts_decode_errors_total",
		Help: "Markup inputs rejected as invalid JSON",
	})

	exportWarnings := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ttc_alerts_export_warnings_total",
			Help: "Records that could not be fully exported, by warning type",
		},
		[]string{"type"},
	)

	cacheLookups := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ttc_alerts_cache_lookups_total",
			Help: "Server extraction cache lookups, by result (hit or miss)",
		},
		[]string{"pipeline", "result"},
	)

	registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		inputsTotal,
		recordsTotal,
		droppedTotal,
		decodeErrors,
		exportWarnings,
		cacheLookups,
	)

	return &Metrics{
		Registry:            registry,
		HTTPRequestsTotal:   httpRequestsTotal,
		HTTPRequestDuration: httpRequestDuration,
		InputsTotal:         inputsTotal,
		RecordsTotal:        recordsTotal,
		DroppedTotal:        droppedTotal,
		DecodeErrors:        decodeErrors,
		ExportWarnings:      exportWarnings,
		CacheLookups:        cacheLookups,
	}
}

// ObserveExtraction counts one extraction run: inputs seen, records emitted
// per kind, and the inputs that were dropped. Safe on a nil receiver.
func (m *Metrics) ObserveExtraction(pipeline string, inputs int, records []record.Alert) {
	if m == nil {
		return
	}
	m.InputsTotal.WithLabelValues(pipeline).Add(float64(inputs))
	for _, a := range records {
		m.RecordsTotal.WithLabelValues(pipeline, KindLabel(a)).Inc()
	}
	if dropped := inputs - len(records); dropped > 0 {
		m.DroppedTotal.WithLabelValues(pipeline).Add(float64(dropped))
	}
}

// ObserveDecodeError counts a rejected markup input. Safe on a nil receiver.
func (m *Metrics) ObserveDecodeError() {
	if m == nil {
		return
	}
	m.DecodeErrors.Inc()
}

// ObserveExportWarning counts n records flagged with warning type typ.
func (m *Metrics) ObserveExportWarning(typ string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.ExportWarnings.WithLabelValues(typ).Add(float64(n))
}

// ObserveCacheLookup counts one extraction cache lookup. Safe on a nil
// receiver.
func (m *Metrics) ObserveCacheLookup(pipeline string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(pipeline, result).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// KindLabel is the kind label of a record; markup records are "alert".
func KindLabel(a record.Alert) string {
	if a.FromMarkup() {
		return "alert"
	}
	return string(a.Kind)
}
