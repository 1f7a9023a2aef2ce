package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the web server.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	themeToggles    *prometheus.CounterVec
	signIns         *prometheus.CounterVec
}

// NewMetrics registers the collectors with registry under namespace.
func NewMetrics(registry prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(registry)

	return &Metrics{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		themeToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "theme_toggles_total",
			Help:      "Total number of admin theme toggles by resulting theme",
		}, []string{"theme"}),

		signIns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "admin_sign_ins_total",
			Help:      "Total number of admin sign-in attempts by provider and result",
		}, []string{"provider", "result"}),
	}
}

// Handler returns a middleware recording request counts and latency. The
// route label is the chi route pattern so path parameters do not explode
// cardinality.
func (m *Metrics) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		m.requestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(rw.status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// ThemeToggled counts a toggle ending in theme.
func (m *Metrics) ThemeToggled(theme string) {
	m.themeToggles.WithLabelValues(theme).Inc()
}

// SignIn counts a sign-in attempt.
func (m *Metrics) SignIn(provider string, ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	m.signIns.WithLabelValues(provider, result).Inc()
}
