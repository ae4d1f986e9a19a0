package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	UsersRegistered     prometheus.Counter
	TransactionsCreated prometheus.Counter
	TransactionsUpdated prometheus.Counter
	TransactionsDeleted prometheus.Counter
	StatusTransitions   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		UsersRegistered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_users_registered_total",
				Help: "Total number of registered users",
			},
		),
		TransactionsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_created_total",
				Help: "Total number of transactions created",
			},
		),
		TransactionsUpdated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_updated_total",
				Help: "Total number of transactions updated",
			},
		),
		TransactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_deleted_total",
				Help: "Total number of transactions deleted",
			},
		),
		StatusTransitions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_status_transitions_total",
				Help: "Total number of transaction status transitions",
			},
			[]string{"status_id"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordStatusTransition(statusID string) {
	m.StatusTransitions.WithLabelValues(statusID).Inc()
}
