package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newShift(id, date string, period domain.ShiftPeriod, createdAt time.Time) domain.Shift {
	return domain.Shift{
		ShiftID: id,
		Date:    date,
		Period:  period,
		Boxes: map[domain.BoxID]domain.Box{
			domain.BoxCounter:    {InitialFund: decimal.NewFromInt(1000)},
			domain.BoxGamingDesk: {InitialFund: decimal.NewFromInt(500)},
		},
		ProductCounts: domain.ProductCounts{Opening: map[domain.ProductID]int{domain.ProductTobacco: 4}},
		AuditFields:   domain.NewAuditFields("cashier-1", createdAt),
	}
}

func closure(at time.Time) domain.ShiftClosure {
	return domain.ShiftClosure{
		ClosedAt: at,
		ClosedBy: "cashier-1",
		CollectedCash: map[domain.BoxID]decimal.Decimal{
			domain.BoxCounter:    decimal.NewFromInt(1150),
			domain.BoxGamingDesk: decimal.Zero,
		},
		ClosingCounts: map[domain.ProductID]int{domain.ProductTobacco: 2},
	}
}

func TestCreateShift_OneOpenShiftPerDateAndPeriod(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	now := time.Now().UTC()

	require.NoError(t, store.CreateShift(ctx, newShift("s-1", "2024-01-01", domain.PeriodMorning, now)))

	err := store.CreateShift(ctx, newShift("s-2", "2024-01-01", domain.PeriodMorning, now))
	assert.ErrorIs(t, err, apperrors.ErrDuplicateActiveShift)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	assert.NoError(t, store.CreateShift(ctx, newShift("s-3", "2024-01-01", domain.PeriodAfternoon, now)))

	// closing frees the slot
	require.NoError(t, store.CloseShift(ctx, "s-1", closure(now)))
	assert.NoError(t, store.CreateShift(ctx, newShift("s-4", "2024-01-01", domain.PeriodMorning, now)))
}

func TestCreateShift_ConcurrentStartsYieldOneShift(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	now := time.Now().UTC()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.CreateShift(ctx, newShift(fmt.Sprintf("s-%d", i), "2024-01-01", domain.PeriodMorning, now))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, apperrors.ErrDuplicateActiveShift))
	}
	assert.Equal(t, 1, succeeded)
}

func TestCloseShift_IsTerminal(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	now := time.Now().UTC()
	require.NoError(t, store.CreateShift(ctx, newShift("s-1", "2024-01-01", domain.PeriodMorning, now)))

	require.NoError(t, store.CloseShift(ctx, "s-1", closure(now)))
	assert.ErrorIs(t, store.CloseShift(ctx, "s-1", closure(now)), apperrors.ErrShiftClosed)
	assert.ErrorIs(t, store.CloseShift(ctx, "missing", closure(now)), apperrors.ErrNotFound)

	shift, err := store.FindShiftByID(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, shift.Closed)
	require.NotNil(t, shift.Boxes[domain.BoxCounter].CollectedCash)
	assert.True(t, decimal.NewFromInt(1150).Equal(*shift.Boxes[domain.BoxCounter].CollectedCash))
	assert.Equal(t, 2, shift.ProductCounts.Closing[domain.ProductTobacco])

	_, err = store.FindActiveShift(ctx, "2024-01-01", domain.PeriodMorning)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	err = store.CreateMovement(ctx, domain.Movement{MovementID: "m-1", ShiftID: "s-1", Amount: decimal.NewFromInt(5)})
	assert.ErrorIs(t, err, apperrors.ErrShiftClosed)
	err = store.CreateIncident(ctx, domain.Incident{IncidentID: "i-1", ShiftID: "s-1"})
	assert.ErrorIs(t, err, apperrors.ErrShiftClosed)

	movements, err := store.ListMovementsByShift(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.CreateShift(ctx, newShift("s-1", "2024-01-01", domain.PeriodMorning, time.Now())))

	shift, err := store.FindShiftByID(ctx, "s-1")
	require.NoError(t, err)
	shift.Boxes[domain.BoxCounter] = domain.Box{InitialFund: decimal.NewFromInt(1)}
	shift.ProductCounts.Opening[domain.ProductTobacco] = 99

	again, err := store.FindShiftByID(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(again.Boxes[domain.BoxCounter].InitialFund))
	assert.Equal(t, 4, again.ProductCounts.Opening[domain.ProductTobacco])
}

func TestMovements_CreationOrderUpdateDelete(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	require.NoError(t, store.CreateShift(ctx, newShift("s-1", "2024-01-01", domain.PeriodMorning, time.Now())))

	for i, amount := range []int64{100, 50, 25} {
		require.NoError(t, store.CreateMovement(ctx, domain.Movement{
			MovementID: fmt.Sprintf("m-%d", i),
			ShiftID:    "s-1",
			Box:        domain.BoxCounter,
			Type:       domain.Inflow,
			Amount:     decimal.NewFromInt(amount),
		}))
	}
	assert.ErrorIs(t, store.CreateMovement(ctx, domain.Movement{MovementID: "m-x", ShiftID: "nope"}), apperrors.ErrNotFound)

	updated := domain.Movement{MovementID: "m-1", ShiftID: "other", Box: domain.BoxCounter, Type: domain.Outflow, Amount: decimal.NewFromInt(30)}
	require.NoError(t, store.UpdateMovement(ctx, updated))
	require.NoError(t, store.DeleteMovement(ctx, "m-0"))
	assert.ErrorIs(t, store.DeleteMovement(ctx, "m-0"), apperrors.ErrNotFound)

	movements, err := store.ListMovementsByShift(ctx, "s-1")
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, "m-1", movements[0].MovementID)
	assert.Equal(t, "s-1", movements[0].ShiftID, "a movement cannot be moved to another shift")
	assert.Equal(t, domain.Outflow, movements[0].Type)
	assert.Equal(t, "m-2", movements[1].MovementID)
}

func TestListShifts_PagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	for i, date := range dates {
		require.NoError(t, store.CreateShift(ctx, newShift("m-"+date, date, domain.PeriodMorning, base.AddDate(0, 0, i))))
		require.NoError(t, store.CreateShift(ctx, newShift("a-"+date, date, domain.PeriodAfternoon, base.AddDate(0, 0, i).Add(6*time.Hour))))
	}

	page, token, err := store.ListShifts(ctx, domain.ListShiftsParams{Limit: 4})
	require.NoError(t, err)
	require.Len(t, page, 4)
	require.NotNil(t, token)
	assert.Equal(t, "a-2024-01-03", page[0].ShiftID)
	assert.Equal(t, "m-2024-01-03", page[1].ShiftID)
	assert.Equal(t, "m-2024-01-02", page[3].ShiftID)

	rest, next, err := store.ListShifts(ctx, domain.ListShiftsParams{Limit: 4, NextToken: token})
	require.NoError(t, err)
	assert.Nil(t, next)
	require.Len(t, rest, 2)
	assert.Equal(t, "a-2024-01-01", rest[0].ShiftID)

	filtered, _, err := store.ListShifts(ctx, domain.ListShiftsParams{Date: "2024-01-02"})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)

	bad := "%%%"
	_, _, err = store.ListShifts(ctx, domain.ListShiftsParams{NextToken: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestNotifications_PendingUntilSent(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	now := time.Now().UTC()

	require.NoError(t, store.CreateNotification(ctx, domain.Notification{NotificationID: "n-1", Title: "Shift started", CreatedAt: now}))
	require.NoError(t, store.CreateNotification(ctx, domain.Notification{NotificationID: "n-2", Title: "Shift closed", CreatedAt: now}))

	require.NoError(t, store.RecordNotificationFailure(ctx, "n-1", "github: 502"))
	require.NoError(t, store.MarkNotificationSent(ctx, "n-2", now))
	assert.ErrorIs(t, store.MarkNotificationSent(ctx, "missing", now), apperrors.ErrNotFound)

	pending, err := store.ListPendingNotifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "n-1", pending[0].NotificationID)
	assert.Equal(t, 1, pending[0].Attempts)
	require.NotNil(t, pending[0].LastError)
	assert.Equal(t, "github: 502", *pending[0].LastError)
}
