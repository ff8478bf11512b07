package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics registered on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	// Resolution layer
	ResolutionsTotal *prometheus.CounterVec
	UnresolvedTotal  prometheus.Counter
	ResolveDuration  prometheus.Histogram
	ResolveBatchSize prometheus.Histogram
	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter

	// Interpretation layer
	InterpretationsTotal *prometheus.CounterVec

	// HTTP layer
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// DefaultDurationBuckets covers sub-millisecond lookups up to slow batch calls.
var DefaultDurationBuckets = []float64{.0001, .0005, .001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// NewMetrics registers all metrics under the given namespace.
func NewMetrics(namespace string) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		ResolutionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolutions_total",
			Help:      "Total microorganism name resolutions by outcome",
		}, []string{"outcome"}),
		UnresolvedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "unresolved_inputs_total",
			Help:      "Total distinct inputs that failed to resolve",
		}),
		ResolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolve_duration_seconds",
			Help:      "Duration of resolution calls",
			Buckets:   DefaultDurationBuckets,
		}),
		ResolveBatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resolve_batch_size",
			Help:      "Number of inputs per resolution call",
			Buckets:   []float64{1, 2, 5, 10, 50, 100, 500, 1000, 5000},
		}),
		CacheHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolution_cache_hits_total",
			Help:      "Total resolution cache hits",
		}),
		CacheMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resolution_cache_misses_total",
			Help:      "Total resolution cache misses",
		}),
		InterpretationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interpretations_total",
			Help:      "Total susceptibility value interpretations by result",
		}, []string{"value"}),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	registry.MustRegister(
		m.ResolutionsTotal,
		m.UnresolvedTotal,
		m.ResolveDuration,
		m.ResolveBatchSize,
		m.CacheHitsTotal,
		m.CacheMissesTotal,
		m.InterpretationsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry for additional collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
