package services

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/dto"
)

// LeaveConfigSvcFacade manages the read-mostly configuration the evaluator
// validates against: leave types, policies and calendar blackouts.
type LeaveConfigSvcFacade interface {
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
	CreateLeaveType(ctx context.Context, req dto.CreateLeaveTypeRequest, actorID string) (*domain.LeaveType, error)
	ListPolicies(ctx context.Context) ([]domain.LeavePolicy, error)
	CreatePolicy(ctx context.Context, req dto.CreateLeavePolicyRequest, actorID string) (*domain.LeavePolicy, error)
	ListBlockedPeriods(ctx context.Context, year int) ([]domain.BlockedPeriod, error)
	AddBlockedPeriod(ctx context.Context, year int, req dto.CreateBlockedPeriodRequest, actorID string) (*domain.BlockedPeriod, error)
}

// AttachmentSvcFacade stores and resolves attachment metadata.
type AttachmentSvcFacade interface {
	CreateAttachment(ctx context.Context, req dto.CreateAttachmentRequest, actorID string) (*domain.Attachment, error)
	GetAttachment(ctx context.Context, attachmentID string) (*domain.Attachment, error)
}
