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

const incidentColumns = `incident_id, shift_id, incident_type, custom_type, box, description, amount,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxIncidentRepository struct {
	BaseRepository
}

func newPgxIncidentRepository(pool *pgxpool.Pool) portsrepo.IncidentRepositoryFacade {
	return &PgxIncidentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.IncidentRepositoryFacade = (*PgxIncidentRepository)(nil)

func scanIncident(row pgx.Row) (models.Incident, error) {
	var m models.Incident
	err := row.Scan(
		&m.IncidentID,
		&m.ShiftID,
		&m.IncidentType,
		&m.CustomType,
		&m.Box,
		&m.Description,
		&m.Amount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxIncidentRepository) FindIncidentByID(ctx context.Context, incidentID string) (*domain.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM shift_incidents WHERE incident_id = $1;`
	m, err := scanIncident(r.Pool.QueryRow(ctx, query, incidentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find incident %s: %w", incidentID, err)
	}
	d := mapping.ToDomainIncident(m)
	return &d, nil
}

func (r *PgxIncidentRepository) ListIncidentsByShift(ctx context.Context, shiftID string) ([]domain.Incident, error) {
	query := `SELECT ` + incidentColumns + `
		FROM shift_incidents
		WHERE shift_id = $1
		ORDER BY created_at, incident_id;`
	rows, err := r.Pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidents of shift %s: %w", shiftID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Incident, error) {
		return scanIncident(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan incidents of shift %s: %w", shiftID, err)
	}
	return mapping.ToDomainIncidentSlice(ms), nil
}

func (r *PgxIncidentRepository) CreateIncident(ctx context.Context, incident domain.Incident) (err error) {
	m := mapping.ToModelIncident(incident)

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
		INSERT INTO shift_incidents (incident_id, shift_id, incident_type, custom_type, box, description, amount,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err = tx.Exec(ctx, query,
		m.IncidentID,
		m.ShiftID,
		m.IncidentType,
		m.CustomType,
		m.Box,
		m.Description,
		m.Amount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if uniqueConstraint(err) != "" {
			return fmt.Errorf("incident %s: %w", m.IncidentID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert incident %s: %w", m.IncidentID, err)
	}
	return r.Commit(ctx, tx)
}
