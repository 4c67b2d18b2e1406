package repositories

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
)

// LeaveTypeRepositoryFacade provides access to leave types and their policies.
type LeaveTypeRepositoryFacade interface {
	FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error)
	ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error)
	SaveLeaveType(ctx context.Context, lt domain.LeaveType) error

	// FindPolicyByLeaveTypeID returns apperrors.ErrNotFound when the leave type
	// has no configured policy.
	FindPolicyByLeaveTypeID(ctx context.Context, leaveTypeID string) (*domain.LeavePolicy, error)
	ListPolicies(ctx context.Context) ([]domain.LeavePolicy, error)
	SavePolicy(ctx context.Context, p domain.LeavePolicy) error
}

// CalendarRepositoryFacade provides access to calendar blocked periods.
type CalendarRepositoryFacade interface {
	FindBlockedPeriodsByYear(ctx context.Context, year int) ([]domain.BlockedPeriod, error)
	SaveBlockedPeriod(ctx context.Context, p domain.BlockedPeriod) error
}

// AttachmentRepositoryFacade provides access to attachment metadata.
type AttachmentRepositoryFacade interface {
	SaveAttachment(ctx context.Context, a domain.Attachment) error
	FindAttachmentByID(ctx context.Context, attachmentID string) (*domain.Attachment, error)
}

// NotificationRepositoryFacade persists notifications for later delivery.
type NotificationRepositoryFacade interface {
	SaveNotification(ctx context.Context, n domain.Notification) error
	ListNotificationsByRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error)
}
