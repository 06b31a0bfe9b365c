package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	"github.com/SscSPs/shift_cashbox_app/internal/models"
	"github.com/SscSPs/shift_cashbox_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const movementColumns = `movement_id, shift_id, box, movement_type, amount, reason, moment, breakdown,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxMovementRepository struct {
	BaseRepository
}

func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

func scanMovement(row pgx.Row) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.ShiftID,
		&m.Box,
		&m.MovementType,
		&m.Amount,
		&m.Reason,
		&m.Moment,
		&m.Breakdown,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM shift_movements WHERE movement_id = $1;`
	m, err := scanMovement(r.Pool.QueryRow(ctx, query, movementID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	d, err := mapping.ToDomainMovement(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxMovementRepository) ListMovementsByShift(ctx context.Context, shiftID string) ([]domain.Movement, error) {
	query := `SELECT ` + movementColumns + `
		FROM shift_movements
		WHERE shift_id = $1
		ORDER BY created_at, movement_id;`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements of shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Movement, error) {
		return scanMovement(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan movements of shift %s: %w", shiftID, err)
	}
	return mapping.ToDomainMovementSlice(ms)
}

func (r *PgxMovementRepository) CreateMovement(ctx context.Context, movement domain.Movement) (err error) {
	m, err := mapping.ToModelMovement(movement)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	if err := r.lockOpenShift(ctx, tx, m.ShiftID); err != nil {
		return err
	}

	query := `
		INSERT INTO shift_movements (movement_id, shift_id, box, movement_type, amount, reason, moment, breakdown,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.MovementID,
		m.ShiftID,
		m.Box,
		m.MovementType,
		m.Amount,
		m.Reason,
		m.Moment,
		m.Breakdown,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if uniqueConstraint(err) != "" {
			return fmt.Errorf("movement %s: %w", m.MovementID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert movement %s: %w", m.MovementID, err)
	}
	return r.Commit(ctx, tx)
}

// UpdateMovement rewrites the editable fields. The shift and creation stamp never change.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) (err error) {
	m, err := mapping.ToModelMovement(movement)
	if err != nil {
		return err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = r.Rollback(ctx, tx)
		}
	}()

	var shiftID string
	err = tx.QueryRow(ctx, `SELECT shift_id FROM shift_movements WHERE movement_id = $1 FOR UPDATE;`, m.MovementID).Scan(&shiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock movement %s: %w", m.MovementID, err)
	}
	if err := r.lockOpenShift(ctx, tx, shiftID); err != nil {
		return err
	}

	query := `
		UPDATE shift_movements
		SET box = $2, movement_type = $3, amount = $4, reason = $5, breakdown = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE movement_id = $1;
	`
	_, err = tx.Exec(ctx, query,
		m.MovementID,
		m.Box,
		m.MovementType,
		m.Amount,
		m.Reason,
		m.Breakdown,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update movement %s: %w", m.MovementID, err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM shift_movements WHERE movement_id = $1;`, movementID)
	if err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", movementID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
