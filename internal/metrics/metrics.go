package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels recorded per tool call
const (
	OutcomeSuccess          = "success"
	OutcomeMissingFields    = "missing_fields"
	OutcomeNoChanges        = "no_changes"
	OutcomeInvalidParameter = "invalid_parameter"
	OutcomeNotFound         = "not_found"
	OutcomePermissionDenied = "permission_denied"
)

// Metrics owns the Prometheus registry and collectors for the service
type Metrics struct {
	registry  *prometheus.Registry
	toolCalls *prometheus.CounterVec
}

// New registers the service collectors on a fresh registry.
// activeListings is sampled on every scrape.
func New(activeListings func() int) *Metrics {
	reg := prometheus.NewRegistry()

	toolCalls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roomiematch",
		Name:      "tool_calls_total",
		Help:      "Tool invocations by tool name and outcome.",
	}, []string{"tool", "outcome"})

	listings := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "roomiematch",
		Name:      "active_listings",
		Help:      "Number of active room listings in the store.",
	}, func() float64 { return float64(activeListings()) })

	reg.MustRegister(
		toolCalls,
		listings,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:  reg,
		toolCalls: toolCalls,
	}
}

// ToolCall records one invocation of a tool endpoint
func (m *Metrics) ToolCall(tool, outcome string) {
	m.toolCalls.WithLabelValues(tool, outcome).Inc()
}

// Handler exposes the registry for Prometheus scraping
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
