package handlers_test

import (
	"context"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShiftService ---
type MockShiftService struct {
	mock.Mock
}

var _ portssvc.ShiftSvcFacade = (*MockShiftService)(nil)

func (m *MockShiftService) GetShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) GetActiveShift(ctx context.Context, date string, period domain.ShiftPeriod) (*domain.Shift, error) {
	args := m.Called(ctx, date, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) ListShifts(ctx context.Context, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListShiftsResponse), args.Error(1)
}

func (m *MockShiftService) GetSummary(ctx context.Context, shiftID string) (*domain.ShiftSummary, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShiftSummary), args.Error(1)
}

func (m *MockShiftService) GetBoxBalance(ctx context.Context, shiftID string, box domain.BoxID) (decimal.Decimal, error) {
	args := m.Called(ctx, shiftID, box)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockShiftService) StartShift(ctx context.Context, req dto.StartShiftRequest, actorID string) (*domain.Shift, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftService) ReconcileBox(ctx context.Context, shiftID string, req dto.ReconcileRequest) (*domain.ReconciliationResult, error) {
	args := m.Called(ctx, shiftID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationResult), args.Error(1)
}

func (m *MockShiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, actorID string) (*domain.Shift, []domain.ReconciliationResult, error) {
	args := m.Called(ctx, shiftID, req, actorID)
	var results []domain.ReconciliationResult
	if r := args.Get(1); r != nil {
		results = r.([]domain.ReconciliationResult)
	}
	if args.Get(0) == nil {
		return nil, results, args.Error(2)
	}
	return args.Get(0).(*domain.Shift), results, args.Error(2)
}

func (m *MockShiftService) RecordMovement(ctx context.Context, shiftID string, req dto.MovementRequest, actorID string) (*domain.Movement, error) {
	args := m.Called(ctx, shiftID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockShiftService) UpdateMovement(ctx context.Context, movementID string, req dto.MovementRequest, actorID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockShiftService) DeleteMovement(ctx context.Context, movementID string, actorID string) error {
	args := m.Called(ctx, movementID, actorID)
	return args.Error(0)
}

func (m *MockShiftService) GetMovement(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockShiftService) ListMovements(ctx context.Context, shiftID string) ([]domain.Movement, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockShiftService) RecordIncident(ctx context.Context, shiftID string, req dto.IncidentRequest, actorID string) (*domain.Incident, error) {
	args := m.Called(ctx, shiftID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Incident), args.Error(1)
}

func (m *MockShiftService) GetIncident(ctx context.Context, incidentID string) (*domain.Incident, error) {
	args := m.Called(ctx, incidentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Incident), args.Error(1)
}

func (m *MockShiftService) ListIncidents(ctx context.Context, shiftID string) ([]domain.Incident, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Incident), args.Error(1)
}
