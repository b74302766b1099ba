// Package metrics holds the Prometheus collectors shared across the service.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for compose invocations, project state and
// HTTP traffic.
type Metrics struct {
	// Compose CLI
	ComposeCommandsTotal   *prometheus.CounterVec
	ComposeCommandDuration *prometheus.HistogramVec

	// Status reporter
	ProjectsTotal   prometheus.Gauge
	ProjectsRunning prometheus.Gauge

	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LoginThrottledTotal prometheus.Counter
}

// New returns the process wide metrics, registering them on first use.
//
// Metrics:
//   - stackdeck_compose_commands_total{verb,result}
//   - stackdeck_compose_command_duration_seconds{verb}
//   - stackdeck_projects_total
//   - stackdeck_projects_running
//   - stackdeck_http_requests_total{method,route,status}
//   - stackdeck_http_request_duration_seconds{method,route}
//   - stackdeck_auth_login_throttled_total
func New() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			ComposeCommandsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "stackdeck_compose_commands_total",
					Help: "Total number of compose CLI invocations",
				},
				[]string{"verb", "result"}, // result: "ok", "failed", "timeout"
			),

			ComposeCommandDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "stackdeck_compose_command_duration_seconds",
					Help:    "Duration of compose CLI invocations in seconds",
					Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300},
				},
				[]string{"verb"},
			),

			ProjectsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "stackdeck_projects_total",
					Help: "Number of project directories at the last status check",
				},
			),

			ProjectsRunning: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "stackdeck_projects_running",
					Help: "Number of running projects at the last status check",
				},
			),

			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "stackdeck_http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "route", "status"},
			),

			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "stackdeck_http_request_duration_seconds",
					Help:    "Duration of HTTP requests in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"method", "route"},
			),

			LoginThrottledTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "stackdeck_auth_login_throttled_total",
					Help: "Total number of login attempts rejected by the rate limiter",
				},
			),
		}
	})
	return globalMetrics
}
