// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values.
const (
	OutcomeOK          = "ok"
	OutcomeIntegrity   = "integrity"
	OutcomeOperational = "operational"
	OutcomeError       = "error"
)

// Metrics holds the Prometheus collectors for a cache database.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	QueriesTotal        *prometheus.CounterVec
	QueryDuration       *prometheus.HistogramVec
	BootstrapRunsTotal  *prometheus.CounterVec
	BootstrapStatements prometheus.Counter
	Connected           prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// Collectors already registered by an earlier call are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		QueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ccapi_db_queries_total",
				Help: "Total number of statements executed against the cache database",
			},
			[]string{"outcome"},
		),
		QueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ccapi_db_query_duration_seconds",
				Help:    "Statement latency in seconds, including row decoding",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5, 10},
			},
			[]string{"outcome"},
		),
		BootstrapRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ccapi_db_bootstrap_runs_total",
				Help: "Total number of bootstrap script runs",
			},
			[]string{"outcome"},
		),
		BootstrapStatements: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ccapi_db_bootstrap_statements_total",
				Help: "Total number of bootstrap statements executed",
			},
		),
		Connected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ccapi_db_connected",
				Help: "Whether the cache database handle holds a connection (1) or not (0)",
			},
		),
	}

	var err error
	if m.QueriesTotal, err = register(reg, m.QueriesTotal); err != nil {
		return nil, err
	}
	if m.QueryDuration, err = register(reg, m.QueryDuration); err != nil {
		return nil, err
	}
	if m.BootstrapRunsTotal, err = register(reg, m.BootstrapRunsTotal); err != nil {
		return nil, err
	}
	if m.BootstrapStatements, err = register(reg, m.BootstrapStatements); err != nil {
		return nil, err
	}
	if m.Connected, err = register(reg, m.Connected); err != nil {
		return nil, err
	}
	return m, nil
}

// register adds c to reg, returning the existing collector if an identical one is already there.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// outcome maps an error to its label value.
func outcome(err error) string {
	switch Classify(err) {
	case KindNone:
		return OutcomeOK
	case KindIntegrity:
		return OutcomeIntegrity
	case KindOperational:
		return OutcomeOperational
	default:
		return OutcomeError
	}
}

func (m *Metrics) observeQuery(start time.Time, err error) {
	if m == nil {
		return
	}
	o := outcome(err)
	m.QueriesTotal.WithLabelValues(o).Inc()
	m.QueryDuration.WithLabelValues(o).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeBootstrap(err error) {
	if m == nil {
		return
	}
	m.BootstrapRunsTotal.WithLabelValues(outcome(err)).Inc()
}

func (m *Metrics) bootstrapStatement() {
	if m == nil {
		return
	}
	m.BootstrapStatements.Inc()
}

func (m *Metrics) setConnected(connected bool) {
	if m == nil {
		return
	}
	if connected {
		m.Connected.Set(1)
	} else {
		m.Connected.Set(0)
	}
}
