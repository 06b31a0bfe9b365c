package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	"github.com/SscSPs/shift_cashbox_app/internal/models"
	"github.com/SscSPs/shift_cashbox_app/internal/utils/mapping"
	"github.com/SscSPs/shift_cashbox_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const shiftColumns = `shift_id, to_char(shift_date, 'YYYY-MM-DD'), shift_period, cashier_name, cashier_email,
	boxes, product_counts, closed, closed_at, observations,
	created_at, created_by, last_updated_at, last_updated_by`

const openSlotConstraint = "shifts_one_open_per_slot"

type PgxShiftRepository struct {
	BaseRepository
}

// newPgxShiftRepository creates a new repository for shift data.
func newPgxShiftRepository(pool *pgxpool.Pool) portsrepo.ShiftRepositoryFacade {
	return &PgxShiftRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ShiftRepositoryFacade = (*PgxShiftRepository)(nil)

func scanShift(row pgx.Row) (*domain.Shift, error) {
	var m models.Shift
	err := row.Scan(
		&m.ShiftID,
		&m.ShiftDate,
		&m.ShiftPeriod,
		&m.CashierName,
		&m.CashierEmail,
		&m.Boxes,
		&m.ProductCounts,
		&m.Closed,
		&m.ClosedAt,
		&m.Observations,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	d, err := mapping.ToDomainShift(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxShiftRepository) FindShiftByID(ctx context.Context, shiftID string) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts WHERE shift_id = $1;`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find shift %s: %w", shiftID, err)
	}
	return shift, nil
}

func (r *PgxShiftRepository) FindActiveShift(ctx context.Context, date string, period domain.ShiftPeriod) (*domain.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts
		WHERE shift_date = $1::text::date AND shift_period = $2 AND NOT closed;`
	shift, err := scanShift(r.Pool.QueryRow(ctx, query, date, string(period)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active %s shift for %s: %w", period, date, err)
	}
	return shift, nil
}

func (r *PgxShiftRepository) ListShifts(ctx context.Context, params domain.ListShiftsParams) ([]domain.Shift, *string, error) {
	limit := pagination.NormalizeLimit(params.Limit)
	// One extra row tells us whether another page exists.
	fetchLimit := limit + 1

	var conditions []string
	var args []interface{}
	if params.Date != "" {
		args = append(args, params.Date)
		conditions = append(conditions, "shift_date = $"+strconv.Itoa(len(args))+"::text::date")
	}
	if params.OnlyOpen {
		conditions = append(conditions, "NOT closed")
	}
	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError([]string{"nextToken is invalid"})
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(shift_date, created_at, shift_id) < ($%d::text::date, $%d, $%d)", n-2, n-1, n))
	}

	query := `SELECT ` + shiftColumns + ` FROM shifts`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY shift_date DESC, created_at DESC, shift_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query shifts", err)
	}
	defer rows.Close()

	shifts := make([]domain.Shift, 0, fetchLimit)
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan shift row", err)
		}
		shifts = append(shifts, *shift)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating shift rows", err)
	}

	if len(shifts) <= limit {
		return shifts, nil, nil
	}
	page := shifts[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.ShiftID})
	return page, &token, nil
}

func (r *PgxShiftRepository) CreateShift(ctx context.Context, shift domain.Shift) error {
	m, err := mapping.ToModelShift(shift)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO shifts (shift_id, shift_date, shift_period, cashier_name, cashier_email,
			boxes, product_counts, closed, closed_at, observations,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2::text::date, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.ShiftID,
		m.ShiftDate,
		m.ShiftPeriod,
		m.CashierName,
		m.CashierEmail,
		m.Boxes,
		m.ProductCounts,
		m.Closed,
		m.ClosedAt,
		m.Observations,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		switch uniqueConstraint(err) {
		case "":
			return fmt.Errorf("failed to insert shift %s: %w", m.ShiftID, err)
		case openSlotConstraint:
			return apperrors.ErrDuplicateActiveShift
		default:
			return fmt.Errorf("shift %s: %w", m.ShiftID, apperrors.ErrDuplicate)
		}
	}
	return nil
}

// CloseShift locks the row, applies the closure and writes it back in one transaction.
func (r *PgxShiftRepository) CloseShift(ctx context.Context, shiftID string, closure domain.ShiftClosure) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	shift, err := scanShift(tx.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE shift_id = $1 FOR UPDATE;`, shiftID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock shift %s: %w", shiftID, err)
	}
	if shift.Closed {
		return apperrors.ErrShiftClosed
	}

	m, err := mapping.ToModelShift(closure.Apply(*shift))
	if err != nil {
		return err
	}

	query := `
		UPDATE shifts
		SET boxes = $2, product_counts = $3, closed = TRUE, closed_at = $4, observations = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE shift_id = $1 AND NOT closed;
	`
	tag, err := tx.Exec(ctx, query,
		m.ShiftID,
		m.Boxes,
		m.ProductCounts,
		m.ClosedAt,
		m.Observations,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to close shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrShiftClosed
	}
	return r.Commit(ctx, tx)
}
