package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
)

// attachmentService stores immutable attachment metadata; the documents
// themselves live in external storage.
type attachmentService struct {
	attachmentRepo portsrepo.AttachmentRepositoryFacade
}

// NewAttachmentService creates the attachment metadata service.
func NewAttachmentService(attachmentRepo portsrepo.AttachmentRepositoryFacade) portssvc.AttachmentSvcFacade {
	return &attachmentService{attachmentRepo: attachmentRepo}
}

var _ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)

func (s *attachmentService) CreateAttachment(ctx context.Context, req dto.CreateAttachmentRequest, actorID string) (*domain.Attachment, error) {
	now := time.Now().UTC()
	a := domain.Attachment{
		AttachmentID: uuid.NewString(),
		FileName:     req.FileName,
		ContentType:  req.ContentType,
		SizeBytes:    req.SizeBytes,
		UploadedBy:   actorID,
		AuditFields: domain.NewAuditFields(actorID, now),
	}
	if err := s.attachmentRepo.SaveAttachment(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to save attachment: %w", err)
	}
	return &a, nil
}

func (s *attachmentService) GetAttachment(ctx context.Context, attachmentID string) (*domain.Attachment, error) {
	return s.attachmentRepo.FindAttachmentByID(ctx, attachmentID)
}
