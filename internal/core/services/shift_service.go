package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	"github.com/SscSPs/shift_cashbox_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shift_cashbox_app/internal/core/ports/services"
	"github.com/SscSPs/shift_cashbox_app/internal/core/validation"
	"github.com/SscSPs/shift_cashbox_app/internal/dto"
	"github.com/SscSPs/shift_cashbox_app/internal/utils"
	"github.com/SscSPs/shift_cashbox_app/internal/utils/accounting"
	"github.com/SscSPs/shift_cashbox_app/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// shiftService implements the shift lifecycle, movements, incidents and derived figures.
type shiftService struct {
	BaseService
	shiftRepo    portsrepo.ShiftRepositoryFacade
	movementRepo portsrepo.MovementRepositoryFacade
	incidentRepo portsrepo.IncidentRepositoryFacade
	notifier     portssvc.NotifierSvc
	feed         events.ChangeFeed
	metrics      portssvc.MetricsRecorder
	now          func() time.Time
}

// ShiftServiceOption is a function that configures a shiftService
type ShiftServiceOption func(*shiftService)

// WithChangeFeed publishes a ChangeEvent after every successful write
func WithChangeFeed(feed events.ChangeFeed) ShiftServiceOption {
	return func(s *shiftService) {
		s.feed = feed
	}
}

// WithMetrics sets the business counter recorder
func WithMetrics(m portssvc.MetricsRecorder) ShiftServiceOption {
	return func(s *shiftService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithClock overrides the time source, mainly for tests
func WithClock(now func() time.Time) ShiftServiceOption {
	return func(s *shiftService) {
		if now != nil {
			s.now = now
		}
	}
}

// NewShiftService creates a new shift service. Every repository and the notifier are required.
func NewShiftService(
	shiftRepo portsrepo.ShiftRepositoryFacade,
	movementRepo portsrepo.MovementRepositoryFacade,
	incidentRepo portsrepo.IncidentRepositoryFacade,
	notifier portssvc.NotifierSvc,
	options ...ShiftServiceOption,
) (portssvc.ShiftSvcFacade, error) {
	switch {
	case shiftRepo == nil:
		return nil, errors.New("shift service: shift repository is required")
	case movementRepo == nil:
		return nil, errors.New("shift service: movement repository is required")
	case incidentRepo == nil:
		return nil, errors.New("shift service: incident repository is required")
	case notifier == nil:
		return nil, errors.New("shift service: notifier is required")
	}

	svc := &shiftService{
		shiftRepo:    shiftRepo,
		movementRepo: movementRepo,
		incidentRepo: incidentRepo,
		notifier:     notifier,
		metrics:      noopMetrics{},
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc, nil
}

var _ portssvc.ShiftSvcFacade = (*shiftService)(nil)

// StartShift validates the request, refuses a second open shift for the same
// date and period, and stores the new shift.
func (s *shiftService) StartShift(ctx context.Context, req dto.StartShiftRequest, actorID string) (*domain.Shift, error) {
	if err := validation.ValidateShiftStart(req.ToShiftStart()).Err(); err != nil {
		s.LogDebug(ctx, "Shift start rejected by validation", slog.Any("details", apperrors.ValidationDetails(err)))
		return nil, err
	}

	existing, err := s.shiftRepo.FindActiveShift(ctx, req.Date, req.ShiftPeriod)
	if err == nil && existing != nil {
		s.LogInfo(ctx, "Open shift already exists",
			slog.String("shift_id", existing.ShiftID),
			slog.String("date", req.Date),
			slog.String("period", string(req.ShiftPeriod)))
		return nil, apperrors.ErrDuplicateActiveShift
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up active shift", slog.String("date", req.Date))
		return nil, err
	}

	now := s.now()
	boxes := make(map[domain.BoxID]domain.Box, len(domain.CashBoxes))
	for _, id := range domain.CashBoxes {
		opening := req.Boxes[id]
		boxes[id] = domain.Box{
			InitialFund:          *opening.InitialFund,
			InitialFundBreakdown: opening.InitialFundBreakdown,
		}
	}
	opening := make(map[domain.ProductID]int, len(domain.Products))
	for _, p := range domain.Products {
		opening[p] = req.OpeningProductCounts[p]
	}

	shift := domain.Shift{
		ShiftID:       uuid.NewString(),
		Date:          req.Date,
		Period:        req.ShiftPeriod,
		CashierName:   strings.TrimSpace(req.CashierName),
		CashierEmail:  strings.TrimSpace(req.CashierEmail),
		Boxes:         boxes,
		ProductCounts: domain.ProductCounts{Opening: opening},
		AuditFields:   domain.NewAuditFields(actorID, now),
	}

	if err := s.shiftRepo.CreateShift(ctx, shift); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Concurrent shift start lost the race", slog.String("date", shift.Date), slog.String("period", string(shift.Period)))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to create shift", slog.String("date", shift.Date))
		return nil, err
	}

	s.LogInfo(ctx, "Shift started",
		slog.String("shift_id", shift.ShiftID),
		slog.String("date", shift.Date),
		slog.String("period", string(shift.Period)))
	s.metrics.ShiftOpened(shift.Period)
	s.publish(ctx, domain.ShiftChanged, shift.ShiftID)
	s.notify(ctx, "Shift started", fmt.Sprintf("%s started the %s shift of %s with %s at the counter and %s at the gaming desk.",
		shift.CashierName, shift.Period, shift.Date,
		utils.FormatMoney(boxes[domain.BoxCounter].InitialFund),
		utils.FormatMoney(boxes[domain.BoxGamingDesk].InitialFund)))
	return &shift, nil
}

// ReconcileBox compares a declared breakdown against an expected amount. The shift is not modified.
func (s *shiftService) ReconcileBox(ctx context.Context, shiftID string, req dto.ReconcileRequest) (*domain.ReconciliationResult, error) {
	if _, err := s.GetShift(ctx, shiftID); err != nil {
		return nil, err
	}

	res := validation.ValidateAmount(req.Expected, "expected amount")
	if !req.Box.IsCashBox() {
		res = mergeInvalidBox(res)
	}
	if req.Breakdown == nil {
		res = mergeMessage(res, "breakdown is required")
	} else {
		res.Merge(validation.ValidateBreakdown(req.Breakdown), "")
	}
	if err := res.Err(); err != nil {
		return nil, err
	}

	result := accounting.Reconcile(req.Breakdown, *req.Expected)
	result.Box = req.Box
	return &result, nil
}

// CloseShift validates the closing data, reconciles every box that declared a
// breakdown, and writes the closure. A mismatch without an explicit override
// aborts the close with an *apperrors.ReconciliationError.
func (s *shiftService) CloseShift(ctx context.Context, shiftID string, req dto.CloseShiftRequest, actorID string) (*domain.Shift, []domain.ReconciliationResult, error) {
	shift, err := s.GetShift(ctx, shiftID)
	if err != nil {
		return nil, nil, err
	}
	if shift.Closed {
		return nil, nil, apperrors.ErrShiftClosed
	}

	res := validation.CanClose(shift)
	res.Merge(validation.ValidateClose(shift, req.CollectedCash()), "")
	for _, id := range domain.CashBoxes {
		if b := req.Boxes[id].CollectedCashBreakdown; b != nil {
			res.Merge(validation.ValidateBreakdown(b), string(id))
		}
	}
	res.Merge(validation.ValidateProductCounts(req.ClosingProductCounts, true), "closing counts")
	if err := res.Err(); err != nil {
		s.LogDebug(ctx, "Shift close rejected by validation",
			slog.String("shift_id", shiftID),
			slog.Any("details", apperrors.ValidationDetails(err)))
		return nil, nil, err
	}

	results := make([]domain.ReconciliationResult, 0, len(domain.CashBoxes))
	var mismatches []domain.ReconciliationResult
	for _, id := range domain.CashBoxes {
		box := req.Boxes[id]
		if box.CollectedCashBreakdown == nil {
			continue
		}
		r := accounting.Reconcile(box.CollectedCashBreakdown, *box.CollectedCash)
		r.Box = id
		if r.IsMismatch() {
			s.metrics.ReconciliationMismatch(id, r.Direction)
			if box.AcceptOverride {
				r = r.AcceptOverride()
				s.LogInfo(ctx, "Reconciliation mismatch overridden",
					slog.String("shift_id", shiftID),
					slog.String("box", string(id)),
					slog.String("difference", r.Difference.StringFixed(2)),
					slog.String("direction", string(r.Direction)))
			} else {
				mismatches = append(mismatches, r)
			}
		}
		results = append(results, r)
	}
	if len(mismatches) > 0 {
		return nil, results, &apperrors.ReconciliationError{Mismatches: mismatches}
	}

	closure := domain.ShiftClosure{
		ClosedAt:      s.now(),
		ClosedBy:      actorID,
		CollectedCash: make(map[domain.BoxID]decimal.Decimal, len(domain.CashBoxes)),
		Breakdowns:    make(map[domain.BoxID]*domain.Breakdown, len(domain.CashBoxes)),
		ClosingCounts: make(map[domain.ProductID]int, len(domain.Products)),
	}
	for _, id := range domain.CashBoxes {
		box := req.Boxes[id]
		closure.CollectedCash[id] = *box.CollectedCash
		closure.Breakdowns[id] = box.CollectedCashBreakdown
	}
	for _, p := range domain.Products {
		closure.ClosingCounts[p] = req.ClosingProductCounts[p]
	}
	if req.Observations != nil {
		if obs := strings.TrimSpace(*req.Observations); obs != "" {
			closure.Observations = &obs
		}
	}

	if err := s.shiftRepo.CloseShift(ctx, shiftID, closure); err != nil {
		if errors.Is(err, apperrors.ErrShiftClosed) {
			s.LogInfo(ctx, "Shift was closed concurrently", slog.String("shift_id", shiftID))
			return nil, nil, err
		}
		s.LogError(ctx, err, "Failed to close shift", slog.String("shift_id", shiftID))
		return nil, nil, err
	}

	closed := closure.Apply(*shift)
	s.LogInfo(ctx, "Shift closed",
		slog.String("shift_id", shiftID),
		slog.String("collected", closed.TotalCollected().StringFixed(2)))
	s.metrics.ShiftClosed(closed.Period)
	s.publish(ctx, domain.ShiftChanged, shiftID)
	s.notify(ctx, "Shift closed", fmt.Sprintf("%s closed the %s shift of %s. Collected cash: %s.",
		closed.CashierName, closed.Period, closed.Date, utils.FormatMoney(closed.TotalCollected())))
	return &closed, results, nil
}

// GetShift retrieves a shift by its ID.
func (s *shiftService) GetShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load shift", slog.String("shift_id", shiftID))
		}
		return nil, err
	}
	return shift, nil
}

// GetActiveShift retrieves the open shift for a date and period.
func (s *shiftService) GetActiveShift(ctx context.Context, date string, period domain.ShiftPeriod) (*domain.Shift, error) {
	if !period.IsValid() {
		return nil, apperrors.NewValidationError([]string{
			fmt.Sprintf("shift period must be one of: %s, %s", domain.PeriodMorning, domain.PeriodAfternoon),
		})
	}
	shift, err := s.shiftRepo.FindActiveShift(ctx, date, period)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up active shift", slog.String("date", date))
		}
		return nil, err
	}
	return shift, nil
}

// ListShifts retrieves a page of shifts, newest first.
func (s *shiftService) ListShifts(ctx context.Context, params dto.ListShiftsParams) (*dto.ListShiftsResponse, error) {
	shifts, nextToken, err := s.shiftRepo.ListShifts(ctx, domain.ListShiftsParams{
		Limit:     pagination.NormalizeLimit(params.Limit),
		NextToken: params.NextToken,
		Date:      params.Date,
		OnlyOpen:  params.OnlyOpen,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list shifts")
		return nil, err
	}
	return &dto.ListShiftsResponse{
		Shifts:    dto.ToShiftResponses(shifts),
		NextToken: nextToken,
	}, nil
}

// GetSummary derives the report summary from the current snapshot of the shift.
func (s *shiftService) GetSummary(ctx context.Context, shiftID string) (*domain.ShiftSummary, error) {
	shift, err := s.GetShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	movements, err := s.ListMovements(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	incidents, err := s.ListIncidents(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	summary := accounting.Summarize(*shift, movements, incidents)
	return &summary, nil
}

// GetBoxBalance computes initialFund + collectedCash + inflows - outflows for one box.
func (s *shiftService) GetBoxBalance(ctx context.Context, shiftID string, box domain.BoxID) (decimal.Decimal, error) {
	if !box.IsCashBox() {
		return decimal.Zero, mergeInvalidBox(validation.Result{Valid: true}).Err()
	}
	shift, err := s.GetShift(ctx, shiftID)
	if err != nil {
		return decimal.Zero, err
	}
	movements, err := s.ListMovements(ctx, shiftID)
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.BoxBalance(*shift, movements, box), nil
}

// loadOpenShift fails with ErrNotFound or ErrShiftClosed before any child record is written.
func (s *shiftService) loadOpenShift(ctx context.Context, shiftID string) (*domain.Shift, error) {
	shift, err := s.GetShift(ctx, shiftID)
	if err != nil {
		return nil, err
	}
	if shift.Closed {
		return nil, apperrors.ErrShiftClosed
	}
	return shift, nil
}

func (s *shiftService) publish(ctx context.Context, kind domain.ChangeKind, shiftID string) {
	if s.feed == nil {
		return
	}
	s.feed.Publish(ctx, domain.ChangeEvent{Kind: kind, ShiftID: shiftID, OccurredAt: s.now()})
}

// notify never fails the calling operation.
func (s *shiftService) notify(ctx context.Context, title, message string) {
	if _, ok := s.notifier.Notify(ctx, title, message); !ok {
		s.LogDebug(ctx, "Notification was not recorded", slog.String("title", title))
	}
}

func mergeMessage(res validation.Result, msg string) validation.Result {
	res.Merge(validation.Result{Errors: []string{msg}}, "")
	return res
}

func mergeInvalidBox(res validation.Result) validation.Result {
	return mergeMessage(res, fmt.Sprintf("box must be one of: %s, %s", domain.BoxCounter, domain.BoxGamingDesk))
}
