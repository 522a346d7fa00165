package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds the advisory service metrics.
type Collector struct {
	registry *prometheus.Registry

	AdvisoriesTotal       *prometheus.CounterVec
	ValidationErrorsTotal *prometheus.CounterVec
	RemoteErrorsTotal     *prometheus.CounterVec
	RemoteDuration        prometheus.Histogram
	HTTPRequestDuration   *prometheus.HistogramVec
}

// NewCollector registers all metrics on a dedicated registry.
func NewCollector(namespace string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		AdvisoriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "advisories_total",
				Help:      "Advisories produced by variant and category",
			},
			[]string{"variant", "category"},
		),

		ValidationErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_errors_total",
				Help:      "Rejected advisory requests by variant",
			},
			[]string{"variant"},
		),

		RemoteErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "remote_errors_total",
				Help:      "Remote analysis failures by kind",
			},
			[]string{"kind"}, // "status", "network", "decode"
		),

		RemoteDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "remote_request_duration_seconds",
				Help:      "Remote analysis call duration in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0, 5.0},
			},
			[]string{"path", "method", "status"},
		),
	}
}

// Registry exposes the underlying registry for the /metrics handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordAdvisory counts a produced advisory.
func (c *Collector) RecordAdvisory(variant, category string) {
	if c == nil {
		return
	}
	c.AdvisoriesTotal.WithLabelValues(variant, category).Inc()
}

// RecordValidationError counts a rejected request.
func (c *Collector) RecordValidationError(variant string) {
	if c == nil {
		return
	}
	c.ValidationErrorsTotal.WithLabelValues(variant).Inc()
}

// RecordRemoteError counts a failed remote analysis call.
func (c *Collector) RecordRemoteError(kind string) {
	if c == nil {
		return
	}
	c.RemoteErrorsTotal.WithLabelValues(kind).Inc()
}

// ObserveRemote records the latency of a remote analysis call.
func (c *Collector) ObserveRemote(d time.Duration) {
	if c == nil {
		return
	}
	c.RemoteDuration.Observe(d.Seconds())
}

// ObserveHTTP records the latency of a served request.
func (c *Collector) ObserveHTTP(path, method, status string, d time.Duration) {
	if c == nil {
		return
	}
	c.HTTPRequestDuration.WithLabelValues(path, method, status).Observe(d.Seconds())
}
