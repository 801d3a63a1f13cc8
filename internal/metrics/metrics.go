package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request counter
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// HTTP request duration histogram
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// Active HTTP connections gauge
	HTTPActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	// GatewayCallsTotal tracks calls made to the gateway API
	GatewayCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_calls_total",
			Help: "Total number of calls to the gateway API",
		},
		[]string{"operation", "status"}, // "list_drafts", "approve", "publish"; "success", "error"
	)

	// GatewayCallDuration tracks gateway call duration
	GatewayCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_call_duration_seconds",
			Help:    "Duration of gateway API calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// Business logic metrics
	EditorActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "editor_actions_total",
			Help: "Total number of editor actions",
		},
		[]string{"action", "result"}, // "approve", "publish"; "success", "gateway_error", "bad_request"
	)
)

// RecordHTTPRequest records metrics for an HTTP request
func RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)

	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordGatewayCall records metrics for a gateway API call
func RecordGatewayCall(operation, status string, duration time.Duration) {
	GatewayCallsTotal.WithLabelValues(operation, status).Inc()
	GatewayCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordEditorAction records business logic metrics
func RecordEditorAction(action, result string) {
	EditorActionsTotal.WithLabelValues(action, result).Inc()
}

// IncActiveConnections increments active connections
func IncActiveConnections() {
	HTTPActiveConnections.Inc()
}

// DecActiveConnections decrements active connections
func DecActiveConnections() {
	HTTPActiveConnections.Dec()
}
