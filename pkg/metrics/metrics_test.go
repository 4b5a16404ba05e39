package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New("luxora-client", reg)

	m.ObserveHTTPRequest("GET", "/api/v1/wizard", 200, 10*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/wizard", 200, 5*time.Millisecond)
	m.ObserveBackendRequest("PUT", "/bookings/{id}/cancel", "2xx", time.Millisecond)
	m.IncAvailabilityCheck(OutcomeStale)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/wizard", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendRequestsTotal.WithLabelValues("PUT", "/bookings/{id}/cancel", "2xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityChecks.WithLabelValues(OutcomeStale)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.availabilityChecks.WithLabelValues(OutcomeApplied)))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New("a", reg)
	assert.Panics(t, func() { New("a", reg) })
}
