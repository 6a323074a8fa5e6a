// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns the application's Prometheus registry and instruments.
type Collector struct {
	registry            *prometheus.Registry
	httpRequests        *prometheus.CounterVec
	httpDuration        prometheus.Histogram
	transactionsCreated *prometheus.CounterVec
	transactionsFailed  prometheus.Counter
}

// NewCollector creates a Collector with its own registry.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	return &Collector{
		registry: registry,
		httpRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method and status",
		}, []string{"method", "status"}),
		httpDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken to serve an HTTP request",
			Buckets: prometheus.DefBuckets,
		}),
		transactionsCreated: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "journal_transactions_total",
			Help: "Total number of journal transactions recorded, by type",
		}, []string{"type"}),
		transactionsFailed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "journal_transactions_rejected_total",
			Help: "Total number of journal transactions rejected by validation",
		}),
	}
}

// RecordTransaction counts one committed journal entry.
func (c *Collector) RecordTransaction(txType string) {
	c.transactionsCreated.WithLabelValues(txType).Inc()
}

// RecordRejectedTransaction counts one rejected journal entry.
func (c *Collector) RecordRejectedTransaction() {
	c.transactionsFailed.Inc()
}

// Handler returns the /metrics scrape handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Middleware instruments HTTP requests with a count and duration.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		c.httpRequests.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		c.httpDuration.Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
