package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/ports/events"
	"github.com/stretchr/testify/mock"
)

// --- Mock ShiftRepository ---
type MockShiftRepository struct {
	mock.Mock
}

func (m *MockShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) FindActiveShift(ctx context.Context, date string, period domain.ShiftPeriod) (*domain.Shift, error) {
	args := m.Called(ctx, date, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shift), args.Error(1)
}

func (m *MockShiftRepository) ListShifts(ctx context.Context, params domain.ListShiftsParams) ([]domain.Shift, *string, error) {
	args := m.Called(ctx, params)
	var shifts []domain.Shift
	if args.Get(0) != nil {
		shifts = args.Get(0).([]domain.Shift)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return shifts, token, args.Error(2)
}

func (m *MockShiftRepository) CreateShift(ctx context.Context, shift domain.Shift) error {
	args := m.Called(ctx, shift)
	return args.Error(0)
}

func (m *MockShiftRepository) CloseShift(ctx context.Context, shiftID string, closure domain.ShiftClosure) error {
	args := m.Called(ctx, shiftID, closure)
	return args.Error(0)
}

// --- Mock MovementRepository ---
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	args := m.Called(ctx, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListMovementsByShift(ctx context.Context, shiftID string) ([]domain.Movement, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) CreateMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	args := m.Called(ctx, movementID)
	return args.Error(0)
}

// --- Mock IncidentRepository ---
type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) FindIncidentByID(ctx context.Context, incidentID string) (*domain.Incident, error) {
	args := m.Called(ctx, incidentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Incident), args.Error(1)
}

func (m *MockIncidentRepository) ListIncidentsByShift(ctx context.Context, shiftID string) ([]domain.Incident, error) {
	args := m.Called(ctx, shiftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Incident), args.Error(1)
}

func (m *MockIncidentRepository) CreateIncident(ctx context.Context, incident domain.Incident) error {
	args := m.Called(ctx, incident)
	return args.Error(0)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationSent(ctx context.Context, notificationID string, sentAt time.Time) error {
	args := m.Called(ctx, notificationID, sentAt)
	return args.Error(0)
}

func (m *MockNotificationRepository) RecordNotificationFailure(ctx context.Context, notificationID string, reason string) error {
	args := m.Called(ctx, notificationID, reason)
	return args.Error(0)
}

func (m *MockNotificationRepository) ListPendingNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, title, message string) (string, bool) {
	args := m.Called(ctx, title, message)
	return args.String(0), args.Bool(1)
}

// --- Mock Dispatcher ---
type MockDispatcher struct {
	mock.Mock
	name string
}

func (m *MockDispatcher) Name() string {
	return m.name
}

func (m *MockDispatcher) Dispatch(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

// --- Mock ChangeFeed ---
type MockFeed struct {
	mock.Mock
}

func (m *MockFeed) Publish(ctx context.Context, event domain.ChangeEvent) {
	m.Called(ctx, event)
}

func (m *MockFeed) SubscribeShifts(listener events.Listener) events.Unsubscribe {
	m.Called(listener)
	return func() {}
}

func (m *MockFeed) SubscribeShift(shiftID string, listener events.Listener) events.Unsubscribe {
	m.Called(shiftID, listener)
	return func() {}
}

func (m *MockFeed) SubscribeMovements(shiftID string, listener events.Listener) events.Unsubscribe {
	m.Called(shiftID, listener)
	return func() {}
}

// eventKind matches a published event of the given kind for shiftID.
func eventKind(kind domain.ChangeKind, shiftID string) any {
	return mock.MatchedBy(func(e domain.ChangeEvent) bool {
		return e.Kind == kind && e.ShiftID == shiftID
	})
}
