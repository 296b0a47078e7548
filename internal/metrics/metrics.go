// Package metrics exposes Prometheus collectors for ticket transitions and
// HTTP traffic.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/civicdesk-backend/internal/domain"
)

// Result labels for ticket_transitions_total.
const (
	ResultOK            = "ok"
	ResultUnauthorized  = "unauthorized"
	ResultForbidden     = "forbidden"
	ResultNotFound      = "not_found"
	ResultRuleViolation = "rule_violation"
	ResultValidation    = "validation"
	ResultError         = "error"
)

// Metrics holds the application collectors.
type Metrics struct {
	transitions  *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	gatherer     prometheus.Gatherer
}

// New registers the collectors with reg. Pass prometheus.NewRegistry() in
// tests to avoid clashing with the default registry.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "civicdesk",
			Name:      "ticket_transitions_total",
			Help:      "Ticket lifecycle operations by outcome.",
		}, []string{"operation", "result"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "civicdesk",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		gatherer: reg,
	}
}

// ObserveTransition counts one lifecycle operation.
func (m *Metrics) ObserveTransition(operation string, err error) {
	m.transitions.WithLabelValues(operation, Result(err)).Inc()
}

// Result maps an operation error to its metric label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrUnauthorized):
		return ResultUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return ResultForbidden
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrRuleViolation):
		return ResultRuleViolation
	case errors.Is(err, domain.ErrValidation):
		return ResultValidation
	default:
		return ResultError
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware records request latency labelled by the matched chi route
// pattern, so ticket ids do not explode label cardinality.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil {
			if p := rc.RoutePattern(); p != "" {
				route = p
			}
		}
		m.httpDuration.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
