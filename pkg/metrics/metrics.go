package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreated     prometheus.Counter
	BookingsReplaced    prometheus.Counter
	BookingsRejected    *prometheus.CounterVec
	NotificationsFailed prometheus.Counter
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		BookingsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of accepted bookings",
			ConstLabels: labels,
		}),

		BookingsReplaced: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_replaced_total",
			Help:        "Total number of bookings that replaced a prior booking for the same email",
			ConstLabels: labels,
		}),

		BookingsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Total number of rejected booking submissions",
			ConstLabels: labels,
		}, []string{"reason"}),

		NotificationsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "notifications_failed_total",
			Help:        "Total number of failed notification deliveries",
			ConstLabels: labels,
		}),
	}
}
