// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tailor/internal/core/ports"
)

// Metrics holds every collector of the service, registered on one registry.
type Metrics struct {
	notifications *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tailor_notifications_total",
				Help: "Customer notifications by channel and outcome",
			},
			[]string{"channel", "outcome", "reason"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_ms",
				Help:    "Duration of HTTP requests in ms",
				Buckets: []float64{5, 10, 25, 50, 100, 200, 400, 800, 1600},
			},
			[]string{"method", "path"},
		),
	}
}

func (m *Metrics) NotificationSent(channel string) {
	m.notifications.WithLabelValues(channel, "sent", "").Inc()
}

func (m *Metrics) NotificationSkipped(channel, reason string) {
	m.notifications.WithLabelValues(channel, "skipped", reason).Inc()
}

func (m *Metrics) NotificationFailed(channel string) {
	m.notifications.WithLabelValues(channel, "failed", "").Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, path, status string, durationMs float64) {
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(durationMs)
}

var _ ports.NotificationMetrics = (*Metrics)(nil)
