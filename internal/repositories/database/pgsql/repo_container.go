package pgsql

import (
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ShiftRepo:        newPgxShiftRepository(dbPool),
		MovementRepo:     newPgxMovementRepository(dbPool),
		IncidentRepo:     newPgxIncidentRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
	}
}
