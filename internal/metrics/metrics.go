// Package metrics provides Prometheus metrics collection for the storefront service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// DeliveryQuotesTotal counts delivery quotes by fee type and outcome.
	DeliveryQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_quotes_total",
			Help: "Total number of delivery quotes",
		},
		[]string{"fee_type", "status"},
	)

	// DeliveryQuoteDuration tracks how long pricing a quote takes.
	DeliveryQuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_quote_duration_seconds",
			Help:    "Delivery quote duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	// StoreHoursFormatsTotal counts store hours summaries.
	StoreHoursFormatsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_hours_formats_total",
			Help: "Total number of store hours summaries rendered",
		},
		[]string{"status"},
	)

	// CircuitBreakerState exposes breaker state: 0 closed, 1 open, 2 half-open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// AsyncLogEntriesTotal counts log entries handled by the async log writer.
	AsyncLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "async_log_entries_total",
			Help: "Log entries handled by the async writer by result",
		},
		[]string{"result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordDeliveryQuote records metrics for one priced quote.
func RecordDeliveryQuote(duration time.Duration, feeType, status string) {
	DeliveryQuoteDuration.Observe(duration.Seconds())
	DeliveryQuotesTotal.WithLabelValues(feeType, status).Inc()
}

// RecordHoursFormat records a store hours summary.
func RecordHoursFormat(status string) {
	StoreHoursFormatsTotal.WithLabelValues(status).Inc()
}

// SetCircuitBreakerState records the current state of a named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// RecordAsyncLog records n log entries with the given result: written, dropped or failed.
func RecordAsyncLog(result string, n int) {
	AsyncLogEntriesTotal.WithLabelValues(result).Add(float64(n))
}
