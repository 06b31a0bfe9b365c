package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftMapping_JSONBColumns(t *testing.T) {
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	collected := decimal.NewFromInt(1150)
	shift := domain.Shift{
		ShiftID:     "s-1",
		Date:        "2024-01-01",
		Period:      domain.PeriodMorning,
		CashierName: "Ana",
		Boxes: map[domain.BoxID]domain.Box{
			domain.BoxCounter: {
				InitialFund:            decimal.NewFromInt(1000),
				CollectedCash:          &collected,
				CollectedCashBreakdown: domain.NewBreakdown(map[string]int{"1000": 1, "100": 1, "50": 1}),
			},
			domain.BoxGamingDesk: {InitialFund: decimal.Zero},
		},
		ProductCounts: domain.ProductCounts{Opening: map[domain.ProductID]int{domain.ProductTobacco: 4}},
		AuditFields:   domain.NewAuditFields("cashier-1", now),
	}

	m, err := ToModelShift(shift)
	require.NoError(t, err)
	assert.Nil(t, m.CashierEmail, "blank email is stored as NULL")
	assert.Equal(t, "morning", m.ShiftPeriod)

	back, err := ToDomainShift(m)
	require.NoError(t, err)

	counter := back.Boxes[domain.BoxCounter]
	require.NotNil(t, counter.CollectedCash)
	assert.True(t, collected.Equal(*counter.CollectedCash))
	require.NotNil(t, counter.CollectedCashBreakdown)
	assert.True(t, collected.Equal(counter.CollectedCashBreakdown.Total))
	assert.Nil(t, back.Boxes[domain.BoxGamingDesk].CollectedCash)
	assert.Equal(t, 4, back.ProductCounts.Opening[domain.ProductTobacco])
	assert.Nil(t, back.ProductCounts.Closing)
}

func TestMovementMapping_NullBreakdown(t *testing.T) {
	m, err := ToModelMovement(domain.Movement{MovementID: "m-1", Amount: decimal.NewFromInt(5)})
	require.NoError(t, err)
	assert.Nil(t, m.Breakdown)

	d, err := ToDomainMovement(m)
	require.NoError(t, err)
	assert.Nil(t, d.Breakdown)
}
