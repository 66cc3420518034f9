package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/api/v1/rooms", 200, time.Millisecond)
		m.ObserveDBQuery("select", nil, time.Millisecond)
		m.SetDBConnections(1, 1, 0)
		m.IncQuote("D")
		m.IncQuoteCache(true)
		m.IncValidationError("date_conflict")
		m.IncOptimisticOperation("move", "rolled_back")
		m.IncNotificationDropped()
	})
}

func TestCounters(t *testing.T) {
	m := NewWithRegistry("hotel-test", prometheus.NewRegistry())

	m.IncValidationError("date_conflict")
	m.IncValidationError("date_conflict")
	m.IncOptimisticOperation("create", "success")
	m.IncQuoteCache(false)
	m.ObserveDBQuery("insert", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.validationErrors.WithLabelValues("date_conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.optimisticOperations.WithLabelValues("create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.quoteCacheTotal.WithLabelValues("miss")))
}
