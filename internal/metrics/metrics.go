// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metric names.
const (
	MetricReportsTotal          = "accounts_reports_total"
	MetricReportDurationSeconds = "accounts_report_duration_seconds"
	MetricReportAccountsSkipped = "accounts_report_accounts_skipped_total"
	MetricHTTPRequestsTotal     = "accounts_http_requests_total"
	MetricHTTPDurationSeconds   = "accounts_http_request_duration_seconds"
)

// Registry owns every collector of the service. A dedicated registry keeps
// tests independent of the global default one.
type Registry struct {
	registry *prometheus.Registry

	reportsTotal    *prometheus.CounterVec
	reportDuration  *prometheus.HistogramVec
	accountsSkipped *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// NewRegistry creates and registers all collectors, including the Go runtime
// and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricReportsTotal,
			Help: "Total number of report generations by report kind and outcome",
		}, []string{"report", "outcome"}),
		reportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricReportDurationSeconds,
			Help:    "Duration of report generation",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2, 5},
		}, []string{"report"}),
		accountsSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricReportAccountsSkipped,
			Help: "Accounts left out of a report, by reason",
		}, []string{"report", "reason"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricHTTPRequestsTotal,
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    MetricHTTPDurationSeconds,
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.reportsTotal,
		r.reportDuration,
		r.accountsSkipped,
		r.httpRequests,
		r.httpDuration,
	)
	return r
}

// ObserveReport records one finished report generation.
func (r *Registry) ObserveReport(report, outcome string, elapsed time.Duration) {
	r.reportsTotal.WithLabelValues(report, outcome).Inc()
	r.reportDuration.WithLabelValues(report).Observe(elapsed.Seconds())
}

// AccountSkipped records an account excluded from a report.
func (r *Registry) AccountSkipped(report, reason string) {
	r.accountsSkipped.WithLabelValues(report, reason).Inc()
}

// ObserveHTTPRequest records one served HTTP request.
func (r *Registry) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Gatherer exposes the underlying registry for inspection.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
