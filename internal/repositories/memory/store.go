// Package memory keeps shifts in process memory. It backs local development
// when no database is configured and exercises the services in tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	"github.com/SscSPs/shift_cashbox_app/internal/utils/pagination"
)

// Store implements every repository port behind one lock, so "check the shift
// is open, then write" is atomic in the same way the SQL conditional writes are.
type Store struct {
	mu                sync.RWMutex
	shiftsByID        map[string]domain.Shift
	activeShiftByKey  map[string]string
	movementsByID     map[string]domain.Movement
	movementOrder     []string
	incidentsByID     map[string]domain.Incident
	incidentOrder     []string
	notificationsByID map[string]domain.Notification
	notificationOrder []string
}

var (
	_ portsrepo.ShiftRepositoryFacade        = (*Store)(nil)
	_ portsrepo.MovementRepositoryFacade     = (*Store)(nil)
	_ portsrepo.IncidentRepositoryFacade     = (*Store)(nil)
	_ portsrepo.NotificationRepositoryFacade = (*Store)(nil)
)

// New returns an empty store.
func New() *Store {
	return &Store{
		shiftsByID:        make(map[string]domain.Shift),
		activeShiftByKey:  make(map[string]string),
		movementsByID:     make(map[string]domain.Movement),
		incidentsByID:     make(map[string]domain.Incident),
		notificationsByID: make(map[string]domain.Notification),
	}
}

// NewRepositoryProvider wires one store into every repository slot.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShiftRepo:        s,
		MovementRepo:     s,
		IncidentRepo:     s,
		NotificationRepo: s,
	}
}

func activeKey(date string, period domain.ShiftPeriod) string {
	return date + "|" + string(period)
}

// --- shifts ---

func (s *Store) FindShiftByID(_ context.Context, shiftID string) (*domain.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shift, ok := s.shiftsByID[shiftID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := cloneShift(shift)
	return &out, nil
}

func (s *Store) FindActiveShift(_ context.Context, date string, period domain.ShiftPeriod) (*domain.Shift, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.activeShiftByKey[activeKey(date, period)]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := cloneShift(s.shiftsByID[id])
	return &out, nil
}

func (s *Store) ListShifts(_ context.Context, params domain.ListShiftsParams) ([]domain.Shift, *string, error) {
	var cursor *pagination.Cursor
	if params.NextToken != nil && *params.NextToken != "" {
		c, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError([]string{"nextToken is invalid"})
		}
		cursor = &c
	}
	limit := pagination.NormalizeLimit(params.Limit)

	s.mu.RLock()
	all := make([]domain.Shift, 0, len(s.shiftsByID))
	for _, shift := range s.shiftsByID {
		if params.Date != "" && shift.Date != params.Date {
			continue
		}
		if params.OnlyOpen && shift.Closed {
			continue
		}
		if cursor != nil && !cursor.After(shift.Date, shift.CreatedAt, shift.ShiftID) {
			continue
		}
		all = append(all, cloneShift(shift))
	}
	s.mu.RUnlock()

	slices.SortFunc(all, func(a, b domain.Shift) int {
		if c := strings.Compare(b.Date, a.Date); c != 0 {
			return c
		}
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ShiftID, a.ShiftID)
	})

	if len(all) <= limit {
		return all, nil, nil
	}
	page := all[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.ShiftID})
	return page, &token, nil
}

func (s *Store) CreateShift(_ context.Context, shift domain.Shift) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.shiftsByID[shift.ShiftID]; exists {
		return fmt.Errorf("shift %s: %w", shift.ShiftID, apperrors.ErrDuplicate)
	}
	key := activeKey(shift.Date, shift.Period)
	if !shift.Closed {
		if _, exists := s.activeShiftByKey[key]; exists {
			return apperrors.ErrDuplicateActiveShift
		}
		s.activeShiftByKey[key] = shift.ShiftID
	}
	s.shiftsByID[shift.ShiftID] = cloneShift(shift)
	return nil
}

func (s *Store) CloseShift(_ context.Context, shiftID string, closure domain.ShiftClosure) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shift, ok := s.shiftsByID[shiftID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if shift.Closed {
		return apperrors.ErrShiftClosed
	}
	closed := closure.Apply(cloneShift(shift))
	s.shiftsByID[shiftID] = cloneShift(closed)
	delete(s.activeShiftByKey, activeKey(shift.Date, shift.Period))
	return nil
}

// openShiftLocked reports ErrNotFound or ErrShiftClosed. Callers hold the lock.
func (s *Store) openShiftLocked(shiftID string) error {
	shift, ok := s.shiftsByID[shiftID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if shift.Closed {
		return apperrors.ErrShiftClosed
	}
	return nil
}

// --- movements ---

func (s *Store) FindMovementByID(_ context.Context, movementID string) (*domain.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movementsByID[movementID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := cloneMovement(m)
	return &out, nil
}

func (s *Store) ListMovementsByShift(_ context.Context, shiftID string) ([]domain.Movement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Movement{}
	for _, id := range s.movementOrder {
		if m := s.movementsByID[id]; m.ShiftID == shiftID {
			out = append(out, cloneMovement(m))
		}
	}
	return out, nil
}

func (s *Store) CreateMovement(_ context.Context, movement domain.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.openShiftLocked(movement.ShiftID); err != nil {
		return err
	}
	if _, exists := s.movementsByID[movement.MovementID]; exists {
		return fmt.Errorf("movement %s: %w", movement.MovementID, apperrors.ErrDuplicate)
	}
	s.movementsByID[movement.MovementID] = cloneMovement(movement)
	s.movementOrder = append(s.movementOrder, movement.MovementID)
	return nil
}

func (s *Store) UpdateMovement(_ context.Context, movement domain.Movement) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.movementsByID[movement.MovementID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if err := s.openShiftLocked(existing.ShiftID); err != nil {
		return err
	}
	movement.ShiftID = existing.ShiftID
	movement.CreatedAt = existing.CreatedAt
	movement.CreatedBy = existing.CreatedBy
	s.movementsByID[movement.MovementID] = cloneMovement(movement)
	return nil
}

func (s *Store) DeleteMovement(_ context.Context, movementID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.movementsByID[movementID]; !ok {
		return apperrors.ErrNotFound
	}
	delete(s.movementsByID, movementID)
	s.movementOrder = slices.DeleteFunc(s.movementOrder, func(id string) bool { return id == movementID })
	return nil
}

// --- incidents ---

func (s *Store) FindIncidentByID(_ context.Context, incidentID string) (*domain.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.incidentsByID[incidentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := cloneIncident(i)
	return &out, nil
}

func (s *Store) ListIncidentsByShift(_ context.Context, shiftID string) ([]domain.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Incident{}
	for _, id := range s.incidentOrder {
		if i := s.incidentsByID[id]; i.ShiftID == shiftID {
			out = append(out, cloneIncident(i))
		}
	}
	return out, nil
}

func (s *Store) CreateIncident(_ context.Context, incident domain.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.openShiftLocked(incident.ShiftID); err != nil {
		return err
	}
	if _, exists := s.incidentsByID[incident.IncidentID]; exists {
		return fmt.Errorf("incident %s: %w", incident.IncidentID, apperrors.ErrDuplicate)
	}
	s.incidentsByID[incident.IncidentID] = cloneIncident(incident)
	s.incidentOrder = append(s.incidentOrder, incident.IncidentID)
	return nil
}

// --- notifications ---

func (s *Store) CreateNotification(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notificationsByID[n.NotificationID]; exists {
		return fmt.Errorf("notification %s: %w", n.NotificationID, apperrors.ErrDuplicate)
	}
	s.notificationsByID[n.NotificationID] = n
	s.notificationOrder = append(s.notificationOrder, n.NotificationID)
	return nil
}

func (s *Store) MarkNotificationSent(_ context.Context, notificationID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notificationsByID[notificationID]
	if !ok {
		return apperrors.ErrNotFound
	}
	n.Sent = true
	n.SentAt = &sentAt
	n.Attempts++
	n.LastError = nil
	s.notificationsByID[notificationID] = n
	return nil
}

func (s *Store) RecordNotificationFailure(_ context.Context, notificationID string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notificationsByID[notificationID]
	if !ok {
		return apperrors.ErrNotFound
	}
	n.Attempts++
	n.LastError = &reason
	s.notificationsByID[notificationID] = n
	return nil
}

func (s *Store) ListPendingNotifications(_ context.Context, limit int) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Notification{}
	for _, id := range s.notificationOrder {
		if limit > 0 && len(out) >= limit {
			break
		}
		if n := s.notificationsByID[id]; !n.Sent {
			out = append(out, n)
		}
	}
	return out, nil
}
