package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the API and
// the mission domain counters the teacher dashboard cares about.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	completions     prometheus.Counter
	submissions     prometheus.Counter
	decisions       *prometheus.CounterVec
	uploads         prometheus.Counter
	feedbackTotal   *prometheus.CounterVec
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	completions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mission_completions_total",
		Help: "Total module completions recorded",
	})

	submissions := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "plan_submissions_total",
		Help: "Total plans submitted for review",
	})

	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "review_decisions_total",
		Help: "Teacher review decisions by outcome",
	}, []string{"outcome"})

	uploads := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "evidence_uploads_total",
		Help: "Total evidence files stored",
	})

	feedbackTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mentor_feedback_requests_total",
		Help: "Mentor feedback requests by result",
	}, []string{"result"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, completions, submissions, decisions, uploads, feedbackTotal, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		completions:     completions,
		submissions:     submissions,
		decisions:       decisions,
		uploads:         uploads,
		feedbackTotal:   feedbackTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records per-request latency and counts.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// IncCompletion counts a module completion.
func (m *MetricsService) IncCompletion() {
	if m != nil {
		m.completions.Inc()
	}
}

// IncSubmission counts a plan entering the review queue.
func (m *MetricsService) IncSubmission() {
	if m != nil {
		m.submissions.Inc()
	}
}

// IncReviewDecision counts a teacher decision, outcome "approved" or
// "rejected".
func (m *MetricsService) IncReviewDecision(outcome string) {
	if m != nil {
		m.decisions.WithLabelValues(outcome).Inc()
	}
}

// IncUpload counts a stored evidence file.
func (m *MetricsService) IncUpload() {
	if m != nil {
		m.uploads.Inc()
	}
}

// IncFeedback counts a mentor feedback request, result "ok" or "error".
func (m *MetricsService) IncFeedback(result string) {
	if m != nil {
		m.feedbackTotal.WithLabelValues(result).Inc()
	}
}
