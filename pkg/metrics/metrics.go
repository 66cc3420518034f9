// Package metrics содержит Prometheus-коллекторы сервиса.
// Методы записи безопасно вызывать на nil *Metrics: его получают компоненты,
// когда метрики выключены в конфиге.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics коллекторы HTTP, БД и движка бронирования
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbOpenConns     prometheus.Gauge
	dbInUseConns    prometheus.Gauge
	dbIdleConns     prometheus.Gauge

	quotesTotal          *prometheus.CounterVec
	quoteCacheTotal      *prometheus.CounterVec
	validationErrors     *prometheus.CounterVec
	optimisticOperations *prometheus.CounterVec
	notificationsDropped prometheus.Counter
}

// New регистрирует коллекторы в prometheus.DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует коллекторы в переданном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: labels,
		}, []string{"method", "path"}),
		dbQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		dbOpenConns: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established database connections",
			ConstLabels: labels,
		}),
		dbInUseConns: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of database connections currently in use",
			ConstLabels: labels,
		}),
		dbIdleConns: factory.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle database connections",
			ConstLabels: labels,
		}),
		quotesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "stay_quotes_total",
			Help:        "Number of computed stay quotes by seasonal period",
			ConstLabels: labels,
		}, []string{"period"}),
		quoteCacheTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "stay_quote_cache_total",
			Help:        "Quote cache lookups by result",
			ConstLabels: labels,
		}, []string{"result"}),
		validationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_validation_errors_total",
			Help:        "Booking validation errors by type",
			ConstLabels: labels,
		}, []string{"type"}),
		optimisticOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "optimistic_operations_total",
			Help:        "Optimistic reservation mutations by kind and final status",
			ConstLabels: labels,
		}, []string{"kind", "status"}),
		notificationsDropped: factory.NewCounter(prometheus.CounterOpts{
			Name:        "notifications_dropped_total",
			Help:        "Operator notifications dropped by the rate limiter",
			ConstLabels: labels,
		}),
	}
}

// ObserveHTTPRequest записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery записывает длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// SetDBConnections обновляет статистику пула соединений
func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.dbOpenConns.Set(float64(open))
	m.dbInUseConns.Set(float64(inUse))
	m.dbIdleConns.Set(float64(idle))
}

func (m *Metrics) IncQuote(period string) {
	if m == nil {
		return
	}
	m.quotesTotal.WithLabelValues(period).Inc()
}

func (m *Metrics) IncQuoteCache(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.quoteCacheTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) IncValidationError(errorType string) {
	if m == nil {
		return
	}
	m.validationErrors.WithLabelValues(errorType).Inc()
}

func (m *Metrics) IncOptimisticOperation(kind, status string) {
	if m == nil {
		return
	}
	m.optimisticOperations.WithLabelValues(kind, status).Inc()
}

func (m *Metrics) IncNotificationDropped() {
	if m == nil {
		return
	}
	m.notificationsDropped.Inc()
}
