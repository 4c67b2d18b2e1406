package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	"github.com/openhrm/leave_workflow_app/internal/models"
	"github.com/openhrm/leave_workflow_app/internal/utils/mapping"
)

type PgxAttachmentRepository struct {
	BaseRepository
}

// newPgxAttachmentRepository creates a new repository for attachment metadata.
func newPgxAttachmentRepository(pool *pgxpool.Pool) portsrepo.AttachmentRepositoryFacade {
	return &PgxAttachmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AttachmentRepositoryFacade = (*PgxAttachmentRepository)(nil)

// SaveAttachment inserts an attachment metadata row. Rows are immutable.
func (r *PgxAttachmentRepository) SaveAttachment(ctx context.Context, a domain.Attachment) error {
	m := mapping.ToModelAttachment(a)
	query := `
		INSERT INTO attachments (attachment_id, file_name, content_type, size_bytes, uploaded_by, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AttachmentID,
		m.FileName,
		m.ContentType,
		m.SizeBytes,
		m.UploadedBy,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save attachment %s: %w", m.AttachmentID, err)
	}
	return nil
}

// FindAttachmentByID retrieves attachment metadata by its ID.
func (r *PgxAttachmentRepository) FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	query := `
		SELECT attachment_id, file_name, content_type, size_bytes, uploaded_by, created_at, created_by, last_updated_at, last_updated_by
		FROM attachments
		WHERE attachment_id = $1;
	`
	var m models.Attachment
	err := r.Pool.QueryRow(ctx, query, attachmentID).Scan(
		&m.AttachmentID,
		&m.FileName,
		&m.ContentType,
		&m.SizeBytes,
		&m.UploadedBy,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attachment %s: %w", attachmentID, err)
	}

	d := mapping.ToDomainAttachment(m)
	return &d, nil
}
