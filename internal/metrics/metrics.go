package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Mutation outcomes.
const (
	OutcomeOK        = "ok"
	OutcomeForbidden = "forbidden"
	OutcomeNotFound  = "not_found"
)

var (
	JokesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "joejokes_jokes_total",
		Help: "Current number of jokes in the collection.",
	})

	MutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "joejokes_mutations_total",
		Help: "Mutating requests by operation and outcome.",
	}, []string{"op", "outcome"})

	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "joejokes_request_duration_seconds",
		Help:    "Time from request receipt to response, by route pattern and status.",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
	}, []string{"route", "status"})
)

// Instrument records RequestDuration for every request. The route label is the chi
// route pattern so that ids in the path do not explode cardinality.
func Instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RequestDuration.
			WithLabelValues(route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
