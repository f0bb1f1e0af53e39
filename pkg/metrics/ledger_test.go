package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerMetrics_CountsOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedgerMetrics(reg)

	m.ObserveOperation(OpApply, true, 150)
	m.ObserveOperation(OpApply, true, 50)
	m.ObserveOperation(OpRollback, false, 0)
	m.IncFloored()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	got, err := counterValue(mfs, "commission_ledger_operations_total", map[string]string{"operation": OpApply, "outcome": OutcomeSuccess})
	require.NoError(t, err)
	assert.Equal(t, float64(2), got)

	got, err = counterValue(mfs, "commission_ledger_operations_total", map[string]string{"operation": OpRollback, "outcome": OutcomeFailure})
	require.NoError(t, err)
	assert.Equal(t, float64(1), got)

	got, err = counterValue(mfs, "commission_ledger_amount_total", map[string]string{"operation": OpApply})
	require.NoError(t, err)
	assert.Equal(t, float64(200), got)

	got, err = counterValue(mfs, "commission_ledger_floored_rollbacks_total", nil)
	require.NoError(t, err)
	assert.Equal(t, float64(1), got)
}

func TestReconcileMetrics_RecordsDrift(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewReconcileMetrics(reg)

	m.SetDrift("p-1", 150, 0)
	m.ObserveRun(20*time.Millisecond, 1, nil)
	m.ObserveRun(time.Millisecond, 0, errors.New("db down"))

	mfs, err := reg.Gather()
	require.NoError(t, err)

	mf := findFamily(mfs, "commission_reconcile_drift")
	require.NotNil(t, mf)
	var walletDrift float64
	for _, metric := range mf.GetMetric() {
		if hasLabels(metric.GetLabel(), map[string]string{"partner_id": "p-1", "source": "wallet"}) {
			walletDrift = metric.GetGauge().GetValue()
		}
	}
	assert.Equal(t, float64(150), walletDrift)

	inconsistent := findFamily(mfs, "commission_reconcile_inconsistent_partners")
	require.NotNil(t, inconsistent)
	assert.Equal(t, float64(1), inconsistent.GetMetric()[0].GetGauge().GetValue())

	got, err := counterValue(mfs, "commission_reconcile_runs_total", map[string]string{"outcome": OutcomeFailure})
	require.NoError(t, err)
	assert.Equal(t, float64(1), got)
}

func TestReconcileMetrics_CleanPartnerDropsSeries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewReconcileMetrics(reg)

	m.SetDrift("p-clean", 0, 0)
	m.SetDrift("p-1", 150, 150)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	mf := findFamily(mfs, "commission_reconcile_drift")
	require.NotNil(t, mf)
	assert.Len(t, mf.GetMetric(), 2)
	for _, metric := range mf.GetMetric() {
		assert.False(t, hasLabels(metric.GetLabel(), map[string]string{"partner_id": "p-clean"}))
	}

	// p-1 is repaired on the next run.
	m.SetDrift("p-1", 0, 0)

	mfs, err = reg.Gather()
	require.NoError(t, err)
	assert.Nil(t, findFamily(mfs, "commission_reconcile_drift"))
}

func TestNilRegistererIsNoop(t *testing.T) {
	ledger := NewLedgerMetrics(nil)
	reconcile := NewReconcileMetrics(nil)

	assert.NotPanics(t, func() {
		ledger.ObserveOperation(OpApply, true, 1)
		ledger.IncFloored()
		reconcile.SetDrift("p", 1, 1)
		reconcile.ObserveRun(time.Second, 0, nil)
	})

	var nilLedger *LedgerMetrics
	assert.NotPanics(t, func() { nilLedger.ObserveOperation(OpRollback, false, 0) })
}

func counterValue(mfs []*dto.MetricFamily, name string, labels map[string]string) (float64, error) {
	mf := findFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if hasLabels(metric.GetLabel(), labels) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing labels %v", name, labels)
}

func findFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func hasLabels(pairs []*dto.LabelPair, want map[string]string) bool {
	for name, value := range want {
		found := false
		for _, pair := range pairs {
			if pair.GetName() == name && pair.GetValue() == value {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
