// Package metrics exposes Prometheus instrumentation for the course server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the collectors and owns their registry, so tests can
// construct isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	chapterViews    *prometheus.CounterVec
	quizSubmissions *prometheus.CounterVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "course_http_requests_total",
		Help: "HTTP requests by method and status code.",
	}, []string{"method", "status"})

	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "course_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	m.chapterViews = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "course_chapter_views_total",
		Help: "Chapter detail views by chapter number.",
	}, []string{"chapter"})

	m.quizSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "course_quiz_submissions_total",
		Help: "Graded quiz submissions by chapter and outcome.",
	}, []string{"chapter", "outcome"})

	m.registry.MustRegister(m.httpRequests, m.httpDuration, m.chapterViews, m.quizSubmissions)
	return m
}

// Handler returns the /metrics exporter for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware instruments every request with count and latency.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		m.httpRequests.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
		m.httpDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}

// ChapterViewed counts one chapter detail view.
func (m *Metrics) ChapterViewed(chapter int) {
	m.chapterViews.WithLabelValues(strconv.Itoa(chapter)).Inc()
}

// QuizSubmitted counts one graded submission.
func (m *Metrics) QuizSubmitted(chapter int, passed bool) {
	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	m.quizSubmissions.WithLabelValues(strconv.Itoa(chapter), outcome).Inc()
}
