package observability

import (
	"context"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/agentdeck/pkg/domain"
)

// Metrics holds the Prometheus collectors fed by the lifecycle hooks.
type Metrics struct {
	SlideVisits      *prometheus.CounterVec
	Exchanges        *prometheus.CounterVec
	ExchangeDuration prometheus.Histogram
	InFlight         prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SlideVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentdeck_slide_visits_total",
				Help: "Total number of slide visits",
			},
			[]string{"index", "kind"},
		),
		Exchanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agentdeck_agent_exchanges_total",
				Help: "Total number of agent demo exchanges by outcome",
			},
			[]string{"outcome"},
		),
		ExchangeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "agentdeck_agent_exchange_duration_seconds",
				Help:    "Duration of agent demo exchanges",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
			},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "agentdeck_agent_exchanges_in_flight",
				Help: "Agent demo exchanges awaiting a response",
			},
		),
	}
	reg.MustRegister(m.SlideVisits, m.Exchanges, m.ExchangeDuration, m.InFlight)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnSlideEnter: func(ctx context.Context, e *domain.SlideEvent) {
			m.SlideVisits.WithLabelValues(strconv.Itoa(e.Index), string(e.Kind)).Inc()
		},
		OnExchangeStart: func(ctx context.Context, e *domain.ExchangeEvent) {
			m.InFlight.Inc()
		},
		OnExchangeEnd: func(ctx context.Context, e *domain.ExchangeEvent) {
			m.InFlight.Dec()
			outcome := "ok"
			if e.IsError {
				outcome = "error"
			}
			m.Exchanges.WithLabelValues(outcome).Inc()
			m.ExchangeDuration.Observe(e.Duration.Seconds())
		},
	}
}
