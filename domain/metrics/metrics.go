// Package metrics exposes the Prometheus registry for the site: HTTP
// traffic by route plus content-store gauges, served under /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aks-labs/website/pkg/apperror"
)

// Metrics owns a private registry so tests can create isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DocumentsLoaded     prometheus.Gauge
	ContentReloads      prometheus.Counter
}

// New builds the registry and all site collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "website",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "website",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DocumentsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "website",
			Subsystem: "content",
			Name:      "documents_loaded",
			Help:      "Documents currently held in the content store.",
		}),
		ContentReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "website",
			Subsystem: "content",
			Name:      "reloads_total",
			Help:      "Completed content store reloads since start.",
		}),
	}

	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DocumentsLoaded,
		m.ContentReloads,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and latencies. The route template is
// used as the path label so cardinality stays bounded; probe and metrics
// endpoints are skipped.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if path == "/metrics" || path == "/health" || path == "/healthz" || path == "/ready" {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status, _ = apperror.Classify(err)
			}

			route := c.Path()
			if route == "" {
				route = path
			}
			method := c.Request().Method

			m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
