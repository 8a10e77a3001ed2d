package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "streamtracker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "streamtracker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "streamtracker",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	insightsComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "streamtracker",
			Subsystem: "insights",
			Name:      "computations_total",
			Help:      "Total number of insight report computations",
		},
		[]string{"outcome"},
	)

	insightsComputationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "streamtracker",
			Subsystem: "insights",
			Name:      "computation_duration_seconds",
			Help:      "Duration of one insight report computation",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
	)

	insightsCohortSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "streamtracker",
			Subsystem: "insights",
			Name:      "cohort_size",
			Help:      "Number of subscribed platforms scored per report",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		},
	)
)

// Handler returns the prometheus metrics endpoint handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instruments HTTP requests with prometheus metrics
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			httpRequestsInFlight.Inc()
			defer httpRequestsInFlight.Dec()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			// Use the route pattern rather than the raw path so that
			// /api/v1/platforms/42 does not explode label cardinality.
			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					path = pattern
				}
			}

			status := strconv.Itoa(ww.status)
			httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		})
	}
}

// ObserveInsightsComputation records one insights engine run
func ObserveInsightsComputation(outcome string, cohort int, d time.Duration) {
	insightsComputationsTotal.WithLabelValues(outcome).Inc()
	insightsComputationDuration.Observe(d.Seconds())
	insightsCohortSize.Observe(float64(cohort))
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
