package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

// notifierService composes and persists workflow notifications. Dispatch is
// fire-and-forget: every failure is logged and swallowed, the primary
// operation's success never depends on it.
type notifierService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
	directory        portssvc.EmployeeDirectorySvcFacade
	resolver         portssvc.ManagerResolverSvcFacade
}

// NewNotifierService creates the notification fan-out service.
func NewNotifierService(
	notificationRepo portsrepo.NotificationRepositoryFacade,
	directory portssvc.EmployeeDirectorySvcFacade,
	resolver portssvc.ManagerResolverSvcFacade,
) portssvc.NotifierSvcFacade {
	return &notifierService{
		notificationRepo: notificationRepo,
		directory:        directory,
		resolver:         resolver,
	}
}

var _ portssvc.NotifierSvcFacade = (*notifierService)(nil)

func (s *notifierService) dispatch(ctx context.Context, n domain.Notification) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(n.RecipientIDs) == 0 {
		logger.Debug("Notification skipped, no recipients", slog.String("type", n.Type))
		return
	}

	now := time.Now().UTC()
	n.NotificationID = uuid.NewString()
	n.RelatedModule = domain.ModuleLeave
	n.CreatedAt = now
	n.LastUpdatedAt = now

	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		logger.Warn("Notification dispatch failed",
			slog.String("type", n.Type),
			slog.String("related_entity_id", n.RelatedEntityID),
			slog.String("error", err.Error()),
		)
	}
}

// resolvedManagerID returns the manager's id, or "" when resolution fails or
// yields nothing. Resolution failures are a notification concern only.
func (s *notifierService) resolvedManagerID(ctx context.Context, employeeID string) string {
	manager, err := s.resolver.ResolveManager(ctx, employeeID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Manager resolution failed during notification",
			slog.String("employee_id", employeeID),
			slog.String("error", err.Error()),
		)
		return ""
	}
	if manager == nil {
		return ""
	}
	return manager.EmployeeID
}

func dateRange(req *domain.LeaveRequest) string {
	const layout = "2006-01-02"
	return fmt.Sprintf("%s to %s", req.FromDate.Format(layout), req.ToDate.Format(layout))
}

func (s *notifierService) RequestSubmitted(ctx context.Context, req *domain.LeaveRequest) {
	managerID := s.resolvedManagerID(ctx, req.EmployeeID)
	if managerID == "" {
		return
	}
	s.dispatch(ctx, domain.Notification{
		RecipientIDs:    []string{managerID},
		Type:            domain.NotifyLeaveSubmitted,
		DeliveryType:    domain.Unicast,
		Title:           "New Leave Request for Review",
		Message:         fmt.Sprintf("A leave request for %s days (%s) awaits your review.", req.DurationDays, dateRange(req)),
		RelatedEntityID: req.RequestID,
	})
}

func (s *notifierService) RequestModified(ctx context.Context, req *domain.LeaveRequest, changedFields []string) {
	s.dispatch(ctx, domain.Notification{
		RecipientIDs:    []string{req.EmployeeID},
		Type:            domain.NotifyLeaveModified,
		DeliveryType:    domain.Unicast,
		Title:           "Leave Request Updated",
		Message:         fmt.Sprintf("Your leave request was updated (%s).", strings.Join(changedFields, ", ")),
		RelatedEntityID: req.RequestID,
	})

	managerID := s.resolvedManagerID(ctx, req.EmployeeID)
	if managerID == "" {
		return
	}
	s.dispatch(ctx, domain.Notification{
		RecipientIDs:    []string{managerID},
		Type:            domain.NotifyLeaveModified,
		DeliveryType:    domain.Unicast,
		Title:           "Leave Request Changed",
		Message:         fmt.Sprintf("A pending leave request changed its %s and needs re-review.", strings.Join(changedFields, ", ")),
		RelatedEntityID: req.RequestID,
	})
}

// FlowConfigured notifies every employee in the upward chain whose system roles
// intersect the configured approval roles.
func (s *notifierService) FlowConfigured(ctx context.Context, req *domain.LeaveRequest, roles []string) {
	chain, err := s.resolver.ResolveChainAbove(ctx, req.EmployeeID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Chain resolution failed during flow notification",
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()),
		)
		return
	}

	var recipients []string
	for i := range chain {
		if chain[i].HasAnyRole(roles) {
			recipients = append(recipients, chain[i].EmployeeID)
		}
	}

	s.dispatch(ctx, domain.Notification{
		RecipientIDs:    recipients,
		Type:            domain.NotifyApprovalPending,
		DeliveryType:    domain.Multicast,
		Title:           "Leave Request Awaiting Approval",
		Message:         fmt.Sprintf("A leave request (%s) requires your approval.", dateRange(req)),
		RelatedEntityID: req.RequestID,
	})
}

func (s *notifierService) DecisionRecorded(ctx context.Context, req *domain.LeaveRequest, step domain.ApprovalStep) {
	verdict := "approved"
	if step.Status == domain.DecisionRejected {
		verdict = "rejected"
	}
	msg := fmt.Sprintf("Your leave request was %s at the %s level.", verdict, step.Role)
	if step.Notes != "" {
		msg += " Note: " + step.Notes
	}
	s.dispatch(ctx, domain.Notification{
		RecipientIDs:    []string{req.EmployeeID},
		Type:            domain.NotifyLeaveDecision,
		DeliveryType:    domain.Unicast,
		Title:           "Leave Request Decision",
		Message:         msg,
		RelatedEntityID: req.RequestID,
	})
}

// RequestFinalized fans out to the employee, the resolved manager and all
// payroll coordinators so payroll readiness is signalled.
func (s *notifierService) RequestFinalized(ctx context.Context, req *domain.LeaveRequest) {
	recipients := []string{req.EmployeeID}

	if managerID := s.resolvedManagerID(ctx, req.EmployeeID); managerID != "" {
		recipients = append(recipients, managerID)
	}

	coordinators, err := s.directory.FindByRole(ctx, domain.RolePayrollCoordinator)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Payroll coordinator lookup failed during finalize notification",
			slog.String("request_id", req.RequestID),
			slog.String("error", err.Error()),
		)
	}
	for i := range coordinators {
		recipients = append(recipients, coordinators[i].EmployeeID)
	}

	s.dispatch(ctx, domain.Notification{
		RecipientIDs:    recipients,
		Type:            domain.NotifyLeaveFinalized,
		DeliveryType:    domain.Multicast,
		Title:           "Leave Request Finalized",
		Message:         fmt.Sprintf("Leave request for %s days (%s) is finalized as %s.", req.DurationDays, dateRange(req), req.Status),
		RelatedEntityID: req.RequestID,
	})
}

func (s *notifierService) OverrideRejected(ctx context.Context, req *domain.LeaveRequest, reason string) {
	s.dispatch(ctx, domain.Notification{
		RecipientIDs:    []string{req.EmployeeID},
		Type:            domain.NotifyLeaveRejected,
		DeliveryType:    domain.Unicast,
		Title:           "Leave Request Rejected",
		Message:         fmt.Sprintf("Your leave request was rejected by HR. Reason: %s", reason),
		RelatedEntityID: req.RequestID,
	})
}

func (s *notifierService) StatusChanged(ctx context.Context, req *domain.LeaveRequest, newStatus domain.RequestStatus) {
	s.dispatch(ctx, domain.Notification{
		RecipientIDs:    []string{req.EmployeeID},
		Type:            domain.NotifyLeaveStatus,
		DeliveryType:    domain.Unicast,
		Title:           "Leave Request Status Changed",
		Message:         fmt.Sprintf("Your leave request status is now %s.", newStatus),
		RelatedEntityID: req.RequestID,
	})
}

func (s *notifierService) ListForRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.notificationRepo.ListNotificationsByRecipient(ctx, recipientID, limit)
}
