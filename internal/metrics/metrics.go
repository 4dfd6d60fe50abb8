// Package metrics defines the prometheus collectors for the calculation
// services. The core serves no HTTP endpoint; callers register the
// collectors on their own registry and expose them however they like.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the counters the services increment.
type Metrics struct {
	QuotesComputed *prometheus.CounterVec
	QuoteErrors    *prometheus.CounterVec
	Trades         *prometheus.CounterVec
}

// New creates the collectors and registers them with reg. Passing
// prometheus.DefaultRegisterer gives the usual global behavior.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		QuotesComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ammkit",
			Name:      "quotes_computed_total",
			Help:      "Quotes computed, by kind (swap, liquidity, route).",
		}, []string{"kind"}),
		QuoteErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ammkit",
			Name:      "quote_errors_total",
			Help:      "Quote computations that failed, by error code.",
		}, []string{"code"}),
		Trades: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ammkit",
			Name:      "trades_total",
			Help:      "Trading operations by terminal outcome.",
		}, []string{"kind", "outcome"}),
	}

	if reg != nil {
		reg.MustRegister(m.QuotesComputed, m.QuoteErrors, m.Trades)
	}

	return m
}

// NewNop creates unregistered collectors for tests and library callers
// that don't care about metrics.
func NewNop() *Metrics {
	return New(nil)
}
