// Package metrics provides Prometheus instrumentation for a game session.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for one session on a private registry, so
// several sessions (or tests) never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	// Ticks counts market ticks.
	Ticks prometheus.Counter

	// PriceEvents counts jump events across all instruments.
	PriceEvents prometheus.Counter

	// Fills counts executed trades, partitioned by side.
	Fills *prometheus.CounterVec

	// Rejections counts refused trades, partitioned by reason.
	Rejections *prometheus.CounterVec

	// Cash is the ledger's cash after the last operation.
	Cash prometheus.Gauge

	// TotalValue is cash plus portfolio value after the last operation.
	TotalValue prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockgame_ticks_total",
			Help: "Total number of market ticks",
		}),
		PriceEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockgame_price_events_total",
			Help: "Total number of price jump events",
		}),
		Fills: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockgame_fills_total",
			Help: "Total number of executed trades",
		}, []string{"side"}),
		Rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockgame_rejections_total",
			Help: "Total number of rejected trades",
		}, []string{"kind"}),
		Cash: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stockgame_cash",
			Help: "Ledger cash balance",
		}),
		TotalValue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "stockgame_total_value",
			Help: "Ledger cash plus portfolio value",
		}),
	}
	m.Registry.MustRegister(m.Ticks, m.PriceEvents, m.Fills, m.Rejections, m.Cash, m.TotalValue)
	return m
}

// Handler returns the Prometheus HTTP handler for the session registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
