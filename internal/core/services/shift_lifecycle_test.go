package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/core/services"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/SscSPs/shift_cashbox_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// ShiftLifecycleTestSuite drives whole shifts through the in-memory store.
type ShiftLifecycleTestSuite struct {
	suite.Suite
	store         *memory.Store
	notifications portssvc.NotificationSvcFacade
	service       portssvc.ShiftSvcFacade
	ctx           context.Context
}

func (suite *ShiftLifecycleTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.New()

	notifications, err := services.NewNotificationService(suite.store)
	suite.Require().NoError(err)
	suite.notifications = notifications

	svc, err := services.NewShiftService(suite.store, suite.store, suite.store, notifications)
	suite.Require().NoError(err)
	suite.service = svc
}

func (suite *ShiftLifecycleTestSuite) start(period domain.ShiftPeriod, counterFund int64) *domain.Shift {
	req := startRequest("2024-01-01", period)
	req.Boxes[domain.BoxCounter] = dto.BoxOpeningRequest{InitialFund: dec(counterFund)}
	shift, err := suite.service.StartShift(suite.ctx, req, "cashier-1")
	suite.Require().NoError(err)
	return shift
}

func (suite *ShiftLifecycleTestSuite) move(shiftID string, typ domain.MovementType, amount int64) *domain.Movement {
	m, err := suite.service.RecordMovement(suite.ctx, shiftID, dto.MovementRequest{
		Box:    domain.BoxCounter,
		Type:   typ,
		Amount: dec(amount),
		Reason: "till",
	}, "cashier-1")
	suite.Require().NoError(err)
	return m
}

func (suite *ShiftLifecycleTestSuite) balance(shiftID string) decimal.Decimal {
	b, err := suite.service.GetBoxBalance(suite.ctx, shiftID, domain.BoxCounter)
	suite.Require().NoError(err)
	return b
}

func (suite *ShiftLifecycleTestSuite) TestOneOpenShiftPerDateAndPeriod() {
	morning := suite.start(domain.PeriodMorning, 1000)

	_, err := suite.service.StartShift(suite.ctx, startRequest("2024-01-01", domain.PeriodMorning), "cashier-2")
	suite.ErrorIs(err, apperrors.ErrDuplicateActiveShift)

	afternoon := suite.start(domain.PeriodAfternoon, 1000)
	suite.NotEqual(morning.ShiftID, afternoon.ShiftID)

	active, err := suite.service.GetActiveShift(suite.ctx, "2024-01-01", domain.PeriodMorning)
	suite.Require().NoError(err)
	suite.Equal(morning.ShiftID, active.ShiftID)
}

func (suite *ShiftLifecycleTestSuite) TestRunningBalanceFollowsMovements() {
	shift := suite.start(domain.PeriodMorning, 200)
	suite.move(shift.ShiftID, domain.Inflow, 100)
	suite.move(shift.ShiftID, domain.Inflow, 50)
	last := suite.move(shift.ShiftID, domain.Inflow, 25)
	suite.move(shift.ShiftID, domain.Outflow, 30)

	suite.True(decimal.NewFromInt(345).Equal(suite.balance(shift.ShiftID)))

	suite.Require().NoError(suite.service.DeleteMovement(suite.ctx, last.MovementID, "cashier-1"))
	suite.True(decimal.NewFromInt(320).Equal(suite.balance(shift.ShiftID)))

	_, err := suite.service.UpdateMovement(suite.ctx, last.MovementID, dto.MovementRequest{
		Box: domain.BoxCounter, Type: domain.Inflow, Amount: dec(1), Reason: "gone",
	}, "cashier-1")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ShiftLifecycleTestSuite) TestFullShift() {
	shift := suite.start(domain.PeriodMorning, 1000)
	suite.move(shift.ShiftID, domain.Inflow, 200)
	suite.move(shift.ShiftID, domain.Outflow, 50)

	_, err := suite.service.RecordIncident(suite.ctx, shift.ShiftID, dto.IncidentRequest{
		Type:        domain.IncidentIncompletePayment,
		Box:         domain.BoxCounter,
		Description: "customer left 5 short",
		Amount:      dec(5),
	}, "cashier-1")
	suite.Require().NoError(err)

	req := closeRequest(1150, domain.NewBreakdown(map[string]int{"1000": 1, "100": 1, "50": 1}), false)
	closed, results, err := suite.service.CloseShift(suite.ctx, shift.ShiftID, req, "cashier-1")
	suite.Require().NoError(err)
	suite.True(closed.Closed)
	suite.Require().Len(results, 1)
	suite.Equal(domain.ReconciliationAccepted, results[0].Status)

	suite.True(decimal.NewFromInt(2300).Equal(suite.balance(shift.ShiftID)))

	summary, err := suite.service.GetSummary(suite.ctx, shift.ShiftID)
	suite.Require().NoError(err)
	suite.True(summary.Closed)
	suite.Equal(2, summary.MovementCount)
	suite.Len(summary.Incidents, 1)
	suite.Equal(-2, summary.ProductDeltas[domain.ProductCoffeeSenior])

	_, err = suite.service.RecordMovement(suite.ctx, shift.ShiftID, dto.MovementRequest{
		Box: domain.BoxCounter, Type: domain.Inflow, Amount: dec(10), Reason: "late sale",
	}, "cashier-1")
	suite.ErrorIs(err, apperrors.ErrShiftClosed)

	_, _, err = suite.service.CloseShift(suite.ctx, shift.ShiftID, req, "cashier-1")
	suite.ErrorIs(err, apperrors.ErrShiftClosed)

	movements, err := suite.service.ListMovements(suite.ctx, shift.ShiftID)
	suite.Require().NoError(err)
	suite.Len(movements, 2, "the rejected movement left no row")

	// a new morning shift may start once the previous one is closed
	suite.start(domain.PeriodMorning, 1000)
}

func (suite *ShiftLifecycleTestSuite) TestNotificationsStayPendingWithoutDispatchers() {
	shift := suite.start(domain.PeriodMorning, 1000)
	suite.Require().NotNil(shift)

	pending, err := suite.store.ListPendingNotifications(suite.ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal("Shift started", pending[0].Title)

	dispatcher := &MockDispatcher{name: "github"}
	dispatcher.On("Dispatch", mock.Anything, mock.Anything).Return(nil).Once()
	retrying, err := services.NewNotificationService(suite.store, services.WithDispatchers(dispatcher))
	suite.Require().NoError(err)

	delivered, err := retrying.RetryPending(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal(1, delivered)

	pending, err = suite.store.ListPendingNotifications(suite.ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func TestShiftLifecycleTestSuite(t *testing.T) {
	suite.Run(t, new(ShiftLifecycleTestSuite))
}
