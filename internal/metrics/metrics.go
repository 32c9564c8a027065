// Package metrics exposes Prometheus collectors for the ledger and the HTTP surface.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mitra"

// LedgerMetrics records balance aggregation runs.
type LedgerMetrics struct {
	runs         prometheus.Counter
	failures     *prometheus.CounterVec
	transactions prometheus.Histogram
	farmers      prometheus.Histogram
	duration     prometheus.Histogram
}

// NewLedgerMetrics registers the aggregation metrics on the provided registerer.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	m := &LedgerMetrics{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_aggregations_total",
			Help:      "Successful farmer balance aggregations.",
		}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_aggregation_failures_total",
			Help:      "Aggregations rejected because of a malformed transaction.",
		}, []string{"reason"}),
		transactions: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_aggregation_transactions",
			Help:      "Transactions folded per aggregation.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		farmers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_aggregation_farmers",
			Help:      "Distinct farmers per aggregation.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ledger_aggregation_duration_seconds",
			Help:      "Time spent aggregating balances.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.runs, m.failures, m.transactions, m.farmers, m.duration)
	return m
}

// ObserveAggregation records one successful aggregation.
func (m *LedgerMetrics) ObserveAggregation(transactions int, farmers int, elapsed time.Duration) {
	if m == nil || m.runs == nil {
		return
	}
	m.runs.Inc()
	m.transactions.Observe(float64(transactions))
	m.farmers.Observe(float64(farmers))
	m.duration.Observe(elapsed.Seconds())
}

// AggregationFailed counts a rejected aggregation.
func (m *LedgerMetrics) AggregationFailed(reason string) {
	if m == nil || m.failures == nil {
		return
	}
	m.failures.WithLabelValues(normalizeLabel(reason)).Inc()
}

// HTTPMetrics records API requests.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewHTTPMetrics registers the request metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	m := &HTTPMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.requests, m.latency)
	return m
}

// Observe records one completed request.
func (m *HTTPMetrics) Observe(method, route, status string, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(method, route, status).Inc()
	m.latency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
