// AngelaMos | 2026
// metrics.go

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the request-level Prometheus metrics. Route labels use
// the chi pattern ("/v1/users/{userID}"), not the raw path, to keep the
// cardinality bounded.
type Collector struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	inFlight  prometheus.Gauge
	respBytes *prometheus.CounterVec
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "HTTP requests currently being served.",
		}),
		respBytes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_response_bytes_total",
			Help: "Response body bytes by method and route.",
		}, []string{"method", "route"}),
	}

	c.registry.MustRegister(
		c.requests,
		c.duration,
		c.inFlight,
		c.respBytes,
	)

	return c
}

// Middleware records one observation per request. It must sit inside the
// chi router so the route pattern is resolvable after ServeHTTP returns.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.inFlight.Inc()
		defer c.inFlight.Dec()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		route := routePattern(r)
		c.requests.WithLabelValues(
			r.Method, route, strconv.Itoa(rec.status),
		).Inc()
		c.duration.WithLabelValues(r.Method, route).
			Observe(time.Since(start).Seconds())
		c.respBytes.WithLabelValues(r.Method, route).
			Add(float64(rec.bytes))
	})
}

// Handler returns the scrape endpoint for this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return r.URL.Path
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
