// Package metrics registers the Prometheus collectors exposed by the service.
package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector registered by the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     prometheus.Gauge
	dbConnsInUse    prometheus.Gauge
	dbConnsIdle     prometheus.Gauge
}

// New registers and returns the service collectors. serviceName is attached
// as a constant label so dashboards can aggregate across services.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Number of HTTP requests handled, by method, route and status code.",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency, by method and route.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency, by operation.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		dbConnsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open connections in the database pool.",
			ConstLabels: constLabels,
		}),
		dbConnsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Connections currently in use.",
			ConstLabels: constLabels,
		}),
		dbConnsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle connections in the database pool.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest records one handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery records one database query.
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats publishes the current connection pool state.
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbConnsOpen.Set(float64(stats.OpenConnections))
	m.dbConnsInUse.Set(float64(stats.InUse))
	m.dbConnsIdle.Set(float64(stats.Idle))
}
