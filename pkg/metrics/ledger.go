package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Ledger operation labels.
const (
	OpApply    = "apply"
	OpRollback = "rollback"

	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// LedgerMetrics records commission ledger activity.
type LedgerMetrics struct {
	operations *prometheus.CounterVec
	amount     *prometheus.CounterVec
	floored    prometheus.Counter
}

// NewLedgerMetrics registers the ledger metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewLedgerMetrics(reg prometheus.Registerer) *LedgerMetrics {
	if reg == nil {
		return &LedgerMetrics{}
	}
	operations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "commission_ledger_operations_total",
		Help: "Commission ledger operations by kind and outcome.",
	}, []string{"operation", "outcome"})
	amount := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "commission_ledger_amount_total",
		Help: "Commission amount moved through the ledger, in currency units.",
	}, []string{"operation"})
	floored := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "commission_ledger_floored_rollbacks_total",
		Help: "Rollbacks whose requested amount exceeded the partner balance.",
	})
	reg.MustRegister(operations, amount, floored)
	return &LedgerMetrics{
		operations: operations,
		amount:     amount,
		floored:    floored,
	}
}

// ObserveOperation counts one ledger operation and, on success, the amount moved.
func (m *LedgerMetrics) ObserveOperation(op string, success bool, amount float64) {
	if m == nil || m.operations == nil {
		return
	}
	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	m.operations.WithLabelValues(op, outcome).Inc()
	if success && amount > 0 {
		m.amount.WithLabelValues(op).Add(amount)
	}
}

// IncFloored counts a rollback that was clamped at zero.
func (m *LedgerMetrics) IncFloored() {
	if m == nil || m.floored == nil {
		return
	}
	m.floored.Inc()
}

// ReconcileMetrics records reconciliation runs and the drift they find.
type ReconcileMetrics struct {
	drift        *prometheus.GaugeVec
	inconsistent prometheus.Gauge
	duration     prometheus.Histogram
	runs         *prometheus.CounterVec
}

// NewReconcileMetrics registers the reconciliation metrics on the provided registerer.
func NewReconcileMetrics(reg prometheus.Registerer) *ReconcileMetrics {
	if reg == nil {
		return &ReconcileMetrics{}
	}
	drift := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "commission_reconcile_drift",
		Help: "Balance minus history net for partners currently drifting, per history source.",
	}, []string{"partner_id", "source"})
	inconsistent := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "commission_reconcile_inconsistent_partners",
		Help: "Partners with non-zero drift in the last reconciliation run.",
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "commission_reconcile_duration_seconds",
		Help:    "Duration of full reconciliation runs in seconds.",
		Buckets: prometheus.DefBuckets,
	})
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "commission_reconcile_runs_total",
		Help: "Reconciliation runs by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(drift, inconsistent, duration, runs)
	return &ReconcileMetrics{
		drift:        drift,
		inconsistent: inconsistent,
		duration:     duration,
		runs:         runs,
	}
}

// SetDrift records the wallet and ledger drift for one partner. Only
// drifting partners keep a series; a partner that reconciles clean has its
// series removed.
func (m *ReconcileMetrics) SetDrift(partnerID string, walletDrift, ledgerDrift float64) {
	if m == nil || m.drift == nil {
		return
	}
	if walletDrift == 0 && ledgerDrift == 0 {
		m.drift.DeleteLabelValues(partnerID, "wallet")
		m.drift.DeleteLabelValues(partnerID, "ledger")
		return
	}
	m.drift.WithLabelValues(partnerID, "wallet").Set(walletDrift)
	m.drift.WithLabelValues(partnerID, "ledger").Set(ledgerDrift)
}

// ObserveRun records a completed reconciliation pass.
func (m *ReconcileMetrics) ObserveRun(duration time.Duration, inconsistent int, err error) {
	if m == nil || m.runs == nil {
		return
	}
	m.duration.Observe(duration.Seconds())
	if err != nil {
		m.runs.WithLabelValues(OutcomeFailure).Inc()
		return
	}
	m.runs.WithLabelValues(OutcomeSuccess).Inc()
	m.inconsistent.Set(float64(inconsistent))
}
