package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Vendor API metrics
	VendorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vendor_requests_total",
			Help: "Total number of requests sent to the telematics vendor",
		},
		[]string{"service", "operation", "status"},
	)

	VendorRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vendor_request_duration_seconds",
			Help:    "Telematics vendor request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "operation"},
	)

	// Business metrics
	RegisteredVehiclesGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "registered_vehicles_total",
			Help: "Current number of vehicles held in the registry",
		},
		[]string{"service"},
	)

	RemoteCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "remote_commands_total",
			Help: "Total number of remote vehicle commands issued",
		},
		[]string{"service", "command", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordVendorRequest records a single vendor API call
func RecordVendorRequest(service, operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	VendorRequestsTotal.WithLabelValues(service, operation, status).Inc()
	VendorRequestDuration.WithLabelValues(service, operation).Observe(duration.Seconds())
}

// RecordRemoteCommand records the outcome of a remote vehicle command
func RecordRemoteCommand(service, command string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RemoteCommandsTotal.WithLabelValues(service, command, status).Inc()
}
