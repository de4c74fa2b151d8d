// Package metrics holds the Prometheus collectors of the VIN service on a
// dedicated registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vin"

// Metrics is the collector set. The zero value is not usable; use New.
type Metrics struct {
	Registry *prometheus.Registry

	Decodes          *prometheus.CounterVec
	DecodeDuration   prometheus.Histogram
	Rejected         prometheus.Counter
	ProviderCalls    *prometheus.CounterVec
	ProviderDuration *prometheus.HistogramVec
	BreakerState     *prometheus.GaugeVec
	CacheLookups     *prometheus.CounterVec
	SinkErrors       *prometheus.CounterVec
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// New creates and registers every collector, plus the Go and process
// collectors, on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "decodes_total",
			Help: "Decoded VINs by confidence and source.",
		}, []string{"confidence", "source"}),
		DecodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace, Name: "lookup_duration_seconds",
			Help:    "End-to-end lookup duration including providers.",
			Buckets: []float64{0.001, 0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		Rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "rejected_total",
			Help: "Lookups rejected as structurally invalid.",
		}),
		ProviderCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "provider_calls_total",
			Help: "Provider calls by provider and outcome.",
		}, []string{"provider", "outcome"}),
		ProviderDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Name: "provider_duration_seconds",
			Help:    "Provider call duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		BreakerState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "provider_breaker_state",
			Help: "Circuit breaker state per provider: 0 closed, 1 open, 2 half-open.",
		}, []string{"provider"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "cache_lookups_total",
			Help: "Decode cache lookups by result.",
		}, []string{"result"}),
		SinkErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "sink_errors_total",
			Help: "Failed writes to persistence and event sinks.",
		}, []string{"sink"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
	m.Registry.MustRegister(
		m.Decodes, m.DecodeDuration, m.Rejected,
		m.ProviderCalls, m.ProviderDuration, m.BreakerState,
		m.CacheLookups, m.SinkErrors,
		m.HTTPRequests, m.HTTPDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveDecode records one successful lookup.
func (m *Metrics) ObserveDecode(confidence, source string, d time.Duration) {
	m.Decodes.WithLabelValues(confidence, source).Inc()
	m.DecodeDuration.Observe(d.Seconds())
}

// ObserveProvider records one provider call. outcome is "ok", "empty",
// "error" or "open".
func (m *Metrics) ObserveProvider(provider, outcome string, d time.Duration) {
	m.ProviderCalls.WithLabelValues(provider, outcome).Inc()
	m.ProviderDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// SetBreakerState exports a breaker state as its numeric value.
func (m *Metrics) SetBreakerState(provider string, state int) {
	m.BreakerState.WithLabelValues(provider).Set(float64(state))
}

// ObserveCache records a cache lookup: "hit", "miss" or "error".
func (m *Metrics) ObserveCache(result string) {
	m.CacheLookups.WithLabelValues(result).Inc()
}

// ObserveSinkError records a failed write to store, graph or bus.
func (m *Metrics) ObserveSinkError(sink string) {
	m.SinkErrors.WithLabelValues(sink).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}
