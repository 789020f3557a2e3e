package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all Prometheus metrics of the tracking service on its own
// prometheus.Registry, so several instances can coexist in one process.
type Registry struct {
	reg *prometheus.Registry

	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge
	RateLimitedTotal     prometheus.Counter

	// Cache Metrics
	LookupCacheTotal *prometheus.CounterVec

	// Tracking Metrics
	ProjectionsTotal *prometheus.CounterVec
	ResolutionsTotal *prometheus.CounterVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,

		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracking_http_requests_total",
				Help: "Total HTTP requests processed by route, method, and status code",
			},
			[]string{"route", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tracking_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"route", "method"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "tracking_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),
		RateLimitedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "tracking_http_rate_limited_total",
				Help: "Requests rejected by the per-client rate limiter",
			},
		),

		LookupCacheTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracking_lookup_cache_total",
				Help: "Status lookup cache reads by result (hit, miss, error)",
			},
			[]string{"result"},
		),

		ProjectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracking_projections_total",
				Help: "Route projections by view status",
			},
			[]string{"status"},
		),
		ResolutionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tracking_resolutions_total",
				Help: "Tracking point resolutions by deciding source",
			},
			[]string{"source"},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{Registry: r.reg})
}

// The helpers below accept a nil receiver so that callers can run
// without metrics.

func (r *Registry) LookupCache(result string) {
	if r == nil {
		return
	}
	r.LookupCacheTotal.WithLabelValues(result).Inc()
}

func (r *Registry) Projection(status string) {
	if r == nil {
		return
	}
	r.ProjectionsTotal.WithLabelValues(status).Inc()
}

func (r *Registry) Resolution(source string) {
	if r == nil {
		return
	}
	r.ResolutionsTotal.WithLabelValues(source).Inc()
}
