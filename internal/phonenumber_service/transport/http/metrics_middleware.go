package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// rejectionNone labels requests that did not fail to parse a phone number.
const rejectionNone = "none"

var (
	phoneRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phone_number",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Phone number API requests by route, status and parse rejection kind.",
		},
		[]string{"method", "route", "status_code", "rejection"},
	)

	phoneRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phone_number",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Phone number API request latency by route.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)
)

type rejectionKey struct{}

// rejection is filled in by handlers when the request carried an unparseable number.
type rejection struct {
	kind string
}

// recordRejection tags the in-flight request with a parse error kind, if it
// passed through RequestMetricsMiddleware.
func recordRejection(r *http.Request, kind string) {
	if rej, ok := r.Context().Value(rejectionKey{}).(*rejection); ok {
		rej.kind = kind
	}
}

// RequestMetricsMiddleware records phone number API traffic labelled by chi
// route pattern, so /v1/phone-numbers/{number} is one series regardless of
// the number requested.
func RequestMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rej := &rejection{kind: rejectionNone}
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), rejectionKey{}, rej)))

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		phoneRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		phoneRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status), rej.kind).Inc()
	})
}
