package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	"github.com/openhrm/leave_workflow_app/internal/models"
	"github.com/openhrm/leave_workflow_app/internal/utils/mapping"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for workflow notifications.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

// SaveNotification inserts a notification row. One multicast row carries its
// whole recipient list.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	m := mapping.ToModelNotification(n)
	query := `
		INSERT INTO notifications (notification_id, recipient_ids, type, delivery_type, title, message, related_entity_id, related_module, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID,
		m.RecipientIDs,
		m.Type,
		m.DeliveryType,
		m.Title,
		m.Message,
		m.RelatedEntityID,
		m.RelatedModule,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", m.NotificationID, err)
	}
	return nil
}

// ListNotificationsByRecipient retrieves the newest notifications addressed to
// one recipient.
func (r *PgxNotificationRepository) ListNotificationsByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, recipient_ids, type, delivery_type, title, message, related_entity_id, related_module, created_at, created_by, last_updated_at, last_updated_by
		FROM notifications
		WHERE $1 = ANY(recipient_ids)
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for recipient %s: %w", recipientID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notification, error) {
		var m models.Notification
		err := row.Scan(
			&m.NotificationID,
			&m.RecipientIDs,
			&m.Type,
			&m.DeliveryType,
			&m.Title,
			&m.Message,
			&m.RelatedEntityID,
			&m.RelatedModule,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan notifications: %w", err)
	}
	return mapping.ToDomainNotificationSlice(ms), nil
}
