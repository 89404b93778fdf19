package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the prometheus collectors of the dashboard backend. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	viewCacheHits     prometheus.Counter
	viewCacheMisses   prometheus.Counter
	datasetLoads      *prometheus.CounterVec
	loadDuration      prometheus.Histogram
	droppedRows       prometheus.Counter
	datasetRecords    prometheus.Gauge
	datasetFallback   prometheus.Gauge
}

// NewMetrics creates the collectors on a private registry so tests can build as many
// instances as they need.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		viewCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "view_cache_hits_total",
			Help: "Total converted-view cache hits.",
		}),
		viewCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "view_cache_misses_total",
			Help: "Total converted-view cache misses.",
		}),
		datasetLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Dataset loads by outcome (source or fallback).",
		}, []string{"outcome"}),
		loadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Histogram of dataset load durations, fetch included.",
			Buckets: prometheus.DefBuckets,
		}),
		droppedRows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dataset_dropped_rows_total",
			Help: "Total CSV rows dropped because their date could not be read.",
		}),
		datasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dataset_records",
			Help: "Number of records in the current dataset.",
		}),
		datasetFallback: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dataset_fallback",
			Help: "1 when the current dataset is the embedded fallback, 0 otherwise.",
		}),
	}

	m.registry.MustRegister(
		m.httpRequestsTotal,
		m.httpDuration,
		m.viewCacheHits,
		m.viewCacheMisses,
		m.datasetLoads,
		m.loadDuration,
		m.droppedRows,
		m.datasetRecords,
		m.datasetFallback,
		collectors.NewGoCollector(),
	)

	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// GinMiddleware records request count and latency per matched route.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) ViewCacheHit() {
	if m == nil {
		return
	}
	m.viewCacheHits.Inc()
}

func (m *Metrics) ViewCacheMiss() {
	if m == nil {
		return
	}
	m.viewCacheMisses.Inc()
}

// DatasetLoaded records one finished load.
func (m *Metrics) DatasetLoaded(duration time.Duration, fallback bool, records, dropped int) {
	if m == nil {
		return
	}
	outcome := "source"
	fb := 0.0
	if fallback {
		outcome = "fallback"
		fb = 1
	}
	m.datasetLoads.WithLabelValues(outcome).Inc()
	m.loadDuration.Observe(duration.Seconds())
	m.droppedRows.Add(float64(dropped))
	m.datasetRecords.Set(float64(records))
	m.datasetFallback.Set(fb)
}
