// Package metrics collects and exposes Prometheus metrics for the API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what services and middleware use to record metrics.
type Recorder interface {
	RecordSubjectCreated()
	RecordSessionRequested()
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// Collector is the Prometheus-backed Recorder.
type Collector struct {
	subjectsCreated   prometheus.Counter
	sessionsRequested prometheus.Counter
	httpRequests      *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		subjectsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unitutor_subjects_created_total",
			Help: "Number of subjects created.",
		}),
		sessionsRequested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "unitutor_instruction_sessions_requested_total",
			Help: "Number of instruction sessions requested by students.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "unitutor_http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unitutor_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.subjectsCreated,
		c.sessionsRequested,
		c.httpRequests,
		c.httpDuration,
	)

	return c
}

// RecordSubjectCreated increments the created-subjects counter.
func (c *Collector) RecordSubjectCreated() {
	c.subjectsCreated.Inc()
}

// RecordSessionRequested increments the requested-sessions counter.
func (c *Collector) RecordSessionRequested() {
	c.sessionsRequested.Inc()
}

// RecordHTTPRequest records one served request.
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Noop discards everything. Used by tools and tests that do not expose metrics.
type Noop struct{}

func (Noop) RecordSubjectCreated() {}
func (Noop) RecordSessionRequested() {}
func (Noop) RecordHTTPRequest(string, string, int, time.Duration) {}
