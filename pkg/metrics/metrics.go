package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Availability check outcomes.
const (
	OutcomeApplied  = "applied"
	OutcomeStale    = "stale"
	OutcomeError    = "error"
	OutcomeCapacity = "capacity"
)

// StatusTransportError is used as the status label when no HTTP response was received.
const StatusTransportError = "transport_error"

// Metrics Prometheus collectors of the client process.
type Metrics struct {
	httpRequestsTotal      *prometheus.CounterVec
	httpRequestDuration    *prometheus.HistogramVec
	backendRequestsTotal   *prometheus.CounterVec
	backendRequestDuration *prometheus.HistogramVec
	availabilityChecks     *prometheus.CounterVec
}

// New creates and registers the collectors in reg.
func New(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests served by the client API.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "Duration of HTTP requests served by the client API.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		backendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_requests_total",
			Help:        "Total number of requests sent to the booking backend.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		backendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Duration of requests sent to the booking backend.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		availabilityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "wizard_availability_checks_total",
			Help:        "Availability checks of the booking wizard by outcome.",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.backendRequestsTotal,
		m.backendRequestDuration,
		m.availabilityChecks,
	)

	return m
}

// ObserveHTTPRequest records a request served by the client API.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveBackendRequest records a request sent to the booking backend.
func (m *Metrics) ObserveBackendRequest(method, route, status string, duration time.Duration) {
	m.backendRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.backendRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncAvailabilityCheck counts one availability evaluation of the wizard.
func (m *Metrics) IncAvailabilityCheck(outcome string) {
	m.availabilityChecks.WithLabelValues(outcome).Inc()
}
