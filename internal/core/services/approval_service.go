package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

// The approval flow is a two-tier design: role-level decisions accumulate on
// the flow while the request's overall status stays PENDING; only HR
// finalization (or an override) moves the overall status.

func (s *leaveRequestService) SetApprovalFlow(ctx context.Context, requestID string, roles []string, actorID string) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(roles) == 0 {
		roles = s.cfg.ApprovalRoles
	}

	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	flow := make([]domain.ApprovalStep, len(roles))
	for i, role := range roles {
		flow[i] = domain.ApprovalStep{Role: role, Status: domain.DecisionPending}
	}
	request.ApprovalFlow = flow
	request.Touch(actorID, time.Now().UTC())

	if err := s.requestRepo.UpdateLeaveRequest(ctx, *request); err != nil {
		return nil, fmt.Errorf("failed to set approval flow: %w", err)
	}

	s.notifier.FlowConfigured(ctx, request, roles)

	logger.Info("Approval flow configured", slog.String("request_id", requestID), slog.Any("roles", roles))
	return request, nil
}

// recordDecision appends or updates one role's flow entry. The overall status
// is never touched here.
func (s *leaveRequestService) recordDecision(ctx context.Context, requestID, role, actorID, justification string, decision domain.ApprovalDecision) (*domain.LeaveRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if role == "" {
		return nil, newValidationError(CodeInvalidStateTransition, "approver role is required")
	}

	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.StatusPending {
		return newInvalidTransition("decide on", request.Status)
	}

	now := time.Now().UTC()
	step := domain.ApprovalStep{
		Role:      role,
		Status:    decision,
		DecidedBy: actorID,
		DecidedAt: &now,
		Notes:     justification,
	}

	updated, err := s.requestRepo.UpdateWithApprovalFlow(ctx, requestID, nil, step, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to record %s decision: %w", role, err)
	}

	s.notifier.DecisionRecorded(ctx, updated, step)

	logger.Info("Approval decision recorded",
		slog.String("request_id", requestID),
		slog.String("role", role),
		slog.String("decision", string(decision)),
	)
	return updated, nil
}

func (s *leaveRequestService) ManagerApprove(ctx context.Context, requestID, role, actorID, justification string) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	return s.recordDecision(ctx, requestID, role, actorID, justification, domain.DecisionApproved)
}

func (s *leaveRequestService) ManagerReject(ctx context.Context, requestID, role, actorID, justification string) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	return s.recordDecision(ctx, requestID, role, actorID, justification, domain.DecisionRejected)
}

// FinalizeLeaveRequest is the positive HR gate. Only APPROVED is accepted as
// the final status; a rejection must go through OverrideLeaveRequest. Repeated
// finalization is harmless: the ledger's pending guard turns the second
// application into a no-op.
func (s *leaveRequestService) FinalizeLeaveRequest(ctx context.Context, requestID, hrUserID string, finalStatus domain.RequestStatus) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	if finalStatus != domain.StatusApproved {
		return nil, newValidationError(CodeInvalidStateTransition, "finalize only accepts %s; use override for %s", domain.StatusApproved, finalStatus)
	}

	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if step, ok := request.FlowStep(domain.RoleHR); !ok || step.Status != domain.DecisionApproved {
		return nil, newValidationError(CodeInvalidStateTransition, "medical/document verification by hr is not approved")
	}
	if step, ok := request.FlowStep(domain.RoleDepartmentHead); !ok || step.Status != domain.DecisionApproved {
		return nil, newValidationError(CodeInvalidStateTransition, "department head approval is missing")
	}

	now := time.Now().UTC()
	request.Status = domain.StatusApproved
	request.DecidedBy = &hrUserID
	request.DecidedAt = &now
	request.Touch(hrUserID, now)

	if err := s.requestRepo.UpdateLeaveRequest(ctx, *request); err != nil {
		return nil, fmt.Errorf("failed to finalize leave request: %w", err)
	}

	if err := s.entitlementSvc.OnFinalize(ctx, request.EmployeeID, request.LeaveTypeID, request.DurationDays, domain.StatusApproved, hrUserID); err != nil {
		logger.Error("Ledger commit failed on finalize", slog.String("request_id", requestID), slog.String("error", err.Error()))
		return nil, err
	}

	s.notifier.RequestFinalized(ctx, request)

	logger.Info("Leave request finalized", slog.String("request_id", requestID), slog.String("hr_user_id", hrUserID))
	return request, nil
}

// OverrideLeaveRequest is the HR escape hatch: it bypasses the finalize gate
// and sets the overall status unconditionally, recording the decision under
// the hr_manager pseudo-role.
func (s *leaveRequestService) OverrideLeaveRequest(ctx context.Context, requestID, hrUserID string, newStatus domain.RequestStatus, reason string) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.KnownStatus(newStatus) {
		return nil, newValidationError(CodeInvalidStateTransition, "unknown override status %q", newStatus)
	}

	if _, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID); err != nil {
		return nil, err
	}

	decision := domain.DecisionApproved
	if newStatus == domain.StatusRejected {
		decision = domain.DecisionRejected
	}
	now := time.Now().UTC()
	step := domain.ApprovalStep{
		Role:      domain.RoleHRManager,
		Status:    decision,
		DecidedBy: hrUserID,
		DecidedAt: &now,
		Notes:     reason,
	}
	patch := &domain.StatusPatch{Status: newStatus, DecidedBy: hrUserID, DecidedAt: now}

	updated, err := s.requestRepo.UpdateWithApprovalFlow(ctx, requestID, patch, step, hrUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to override leave request: %w", err)
	}

	switch newStatus {
	case domain.StatusApproved:
		if err := s.entitlementSvc.OnFinalize(ctx, updated.EmployeeID, updated.LeaveTypeID, updated.DurationDays, domain.StatusApproved, hrUserID); err != nil {
			logger.Error("Ledger commit failed on override", slog.String("request_id", requestID), slog.String("error", err.Error()))
			return nil, err
		}
		s.notifier.RequestFinalized(ctx, updated)
	case domain.StatusRejected:
		if err := s.entitlementSvc.OnFinalize(ctx, updated.EmployeeID, updated.LeaveTypeID, updated.DurationDays, domain.StatusRejected, hrUserID); err != nil {
			logger.Error("Ledger reversal failed on override", slog.String("request_id", requestID), slog.String("error", err.Error()))
			return nil, err
		}
		s.notifier.OverrideRejected(ctx, updated, reason)
	default:
		s.notifier.StatusChanged(ctx, updated, newStatus)
	}

	logger.Info("Leave request overridden",
		slog.String("request_id", requestID),
		slog.String("new_status", string(newStatus)),
		slog.String("hr_user_id", hrUserID),
	)
	return updated, nil
}

// VerifyMedicalDocuments records the hr-role verification entry that gates
// finalization of attachment-backed requests.
func (s *leaveRequestService) VerifyMedicalDocuments(ctx context.Context, requestID, hrUserID string, verified bool, notes string) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.AttachmentID == nil {
		return nil, fmt.Errorf("%w: request %s has no attachment to verify", apperrors.ErrValidation, requestID)
	}

	decision := domain.DecisionApproved
	if !verified {
		decision = domain.DecisionRejected
	}
	now := time.Now().UTC()
	step := domain.ApprovalStep{
		Role:      domain.RoleHR,
		Status:    decision,
		DecidedBy: hrUserID,
		DecidedAt: &now,
		Notes:     notes,
	}

	updated, err := s.requestRepo.UpdateWithApprovalFlow(ctx, requestID, nil, step, hrUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to record document verification: %w", err)
	}

	logger.Info("Medical documents verified",
		slog.String("request_id", requestID),
		slog.Bool("verified", verified),
	)
	return updated, nil
}
