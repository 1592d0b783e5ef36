package metrics

import (
	"sync"
	"time"

	"github.com/SscSPs/online_banking_backend/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// SettlementMetrics exports daily settlement telemetry.
type SettlementMetrics struct {
	accountOutcomes *prometheus.CounterVec
	runDuration     prometheus.Histogram
	lastRunAccounts *prometheus.GaugeVec
	lastRunFinished prometheus.Gauge
}

var (
	settlementOnce     sync.Once
	settlementRegistry *SettlementMetrics
)

// Settlement returns the process-wide settlement metrics, registering them on first use.
func Settlement() *SettlementMetrics {
	settlementOnce.Do(func() {
		settlementRegistry = newSettlementMetrics()
		prometheus.MustRegister(
			settlementRegistry.accountOutcomes,
			settlementRegistry.runDuration,
			settlementRegistry.lastRunAccounts,
			settlementRegistry.lastRunFinished,
		)
	})
	return settlementRegistry
}

func newSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		accountOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "savings_settlement_account_outcomes_total",
			Help: "Savings accounts processed by the daily settlement, by outcome.",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "savings_settlement_run_duration_seconds",
			Help:    "Wall time of one daily settlement run.",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		}),
		lastRunAccounts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "savings_settlement_last_run_accounts",
			Help: "Account counts of the most recent settlement run, by outcome.",
		}, []string{"outcome"}),
		lastRunFinished: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "savings_settlement_last_run_finished_timestamp_seconds",
			Help: "Unix time the most recent settlement run finished.",
		}),
	}
}

func (m *SettlementMetrics) ObserveAccountOutcome(outcome domain.AccrualOutcome) {
	if m == nil {
		return
	}
	label := string(outcome)
	if label == "" {
		label = "unknown"
	}
	m.accountOutcomes.WithLabelValues(label).Inc()
}

func (m *SettlementMetrics) ObserveRun(report domain.SettlementReport, duration time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.Observe(duration.Seconds())
	m.lastRunAccounts.WithLabelValues(string(domain.OutcomeAccrued)).Set(float64(report.Accrued))
	m.lastRunAccounts.WithLabelValues(string(domain.OutcomeSettled)).Set(float64(report.Settled))
	m.lastRunAccounts.WithLabelValues(string(domain.OutcomeSkipped)).Set(float64(report.Skipped))
	m.lastRunAccounts.WithLabelValues(string(domain.OutcomeFailed)).Set(float64(report.Failed))
	m.lastRunFinished.Set(float64(report.FinishedAt.Unix()))
}
