package metrics_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_BusinessCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	rec.ShiftOpened(domain.PeriodMorning)
	rec.ShiftOpened(domain.PeriodMorning)
	rec.ShiftClosed(domain.PeriodMorning)
	rec.MovementRecorded(domain.BoxCounter, domain.Inflow)
	rec.IncidentRecorded(domain.BoxOther)
	rec.ReconciliationMismatch(domain.BoxCounter, domain.DirectionUnder)
	rec.NotificationDispatched("github", false)
	rec.NotificationDispatched("github", true)

	count, err := testutil.GatherAndCount(reg,
		"shift_cashbox_shifts_opened_total",
		"shift_cashbox_shifts_closed_total",
		"shift_cashbox_movements_recorded_total",
		"shift_cashbox_incidents_recorded_total",
		"shift_cashbox_reconciliation_mismatches_total",
		"shift_cashbox_notification_dispatches_total",
	)
	require.NoError(t, err)
	// one series each, plus a second notification outcome
	assert.Equal(t, 7, count)
}

func TestRecorder_ObserveHTTP(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg)

	rec.ObserveHTTP(http.MethodGet, "/api/v1/shifts", http.StatusOK, 20*time.Millisecond)
	rec.ObserveHTTP(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "shift_cashbox_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
