package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/shift_cashbox_app/internal/apperrors"
	"github.com/SscSPs/shift_cashbox_app/internal/core/domain"
	portsrepo "github.com/SscSPs/shift_cashbox_app/internal/core/ports/repositories"
	"github.com/SscSPs/shift_cashbox_app/internal/models"
	"github.com/SscSPs/shift_cashbox_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) CreateNotification(ctx context.Context, n domain.Notification) error {
	m := mapping.ToModelNotification(n)
	query := `
		INSERT INTO notifications (notification_id, title, message, sent, sent_at, attempts, last_error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID,
		m.Title,
		m.Message,
		m.Sent,
		m.SentAt,
		m.Attempts,
		m.LastError,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification %s: %w", m.NotificationID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkNotificationSent(ctx context.Context, notificationID string, sentAt time.Time) error {
	query := `
		UPDATE notifications
		SET sent = TRUE, sent_at = $2, attempts = attempts + 1, last_error = NULL
		WHERE notification_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, notificationID, sentAt)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s sent: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) RecordNotificationFailure(ctx context.Context, notificationID string, reason string) error {
	query := `
		UPDATE notifications
		SET attempts = attempts + 1, last_error = $2
		WHERE notification_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, notificationID, reason)
	if err != nil {
		return fmt.Errorf("failed to record failure of notification %s: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxNotificationRepository) ListPendingNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT notification_id, title, message, sent, sent_at, attempts, last_error, created_at
		FROM notifications
		WHERE NOT sent
		ORDER BY created_at, notification_id
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending notifications: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notification, error) {
		var n models.Notification
		err := row.Scan(
			&n.NotificationID,
			&n.Title,
			&n.Message,
			&n.Sent,
			&n.SentAt,
			&n.Attempts,
			&n.LastError,
			&n.CreatedAt,
		)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pending notifications: %w", err)
	}
	return mapping.ToDomainNotificationSlice(ms), nil
}
