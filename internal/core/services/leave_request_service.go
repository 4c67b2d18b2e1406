package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// enrichmentParallelism bounds the concurrent profile/leave-type lookups when
// enriching request listings.
const enrichmentParallelism = 4

// LeaveRequestServiceConfig tunes the orchestrator.
type LeaveRequestServiceConfig struct {
	// OperationTimeout bounds each public operation; zero disables the bound.
	OperationTimeout time.Duration
	// ApprovalRoles is the ordered default flow configured on new requests.
	ApprovalRoles []string
}

// leaveRequestService orchestrates validation, persistence, the entitlement
// ledger and notification fan-out behind the public workflow operations.
type leaveRequestService struct {
	requestRepo    portsrepo.LeaveRequestRepositoryFacade
	leaveTypeRepo  portsrepo.LeaveTypeRepositoryFacade
	calendarRepo   portsrepo.CalendarRepositoryFacade
	attachmentRepo portsrepo.AttachmentRepositoryFacade
	entitlementSvc portssvc.EntitlementSvcFacade
	directory      portssvc.EmployeeDirectorySvcFacade
	notifier       portssvc.NotifierSvcFacade
	cfg            LeaveRequestServiceConfig
}

// NewLeaveRequestService creates the workflow orchestrator.
func NewLeaveRequestService(
	requestRepo portsrepo.LeaveRequestRepositoryFacade,
	leaveTypeRepo portsrepo.LeaveTypeRepositoryFacade,
	calendarRepo portsrepo.CalendarRepositoryFacade,
	attachmentRepo portsrepo.AttachmentRepositoryFacade,
	entitlementSvc portssvc.EntitlementSvcFacade,
	directory portssvc.EmployeeDirectorySvcFacade,
	notifier portssvc.NotifierSvcFacade,
	cfg LeaveRequestServiceConfig,
) portssvc.LeaveRequestSvcFacade {
	if len(cfg.ApprovalRoles) == 0 {
		cfg.ApprovalRoles = []string{domain.RoleDepartmentHead, domain.RoleHR}
	}
	return &leaveRequestService{
		requestRepo:    requestRepo,
		leaveTypeRepo:  leaveTypeRepo,
		calendarRepo:   calendarRepo,
		attachmentRepo: attachmentRepo,
		entitlementSvc: entitlementSvc,
		directory:      directory,
		notifier:       notifier,
		cfg:            cfg,
	}
}

var _ portssvc.LeaveRequestSvcFacade = (*leaveRequestService)(nil)

// boundCtx applies the configured operation timeout. Timeouts surface before
// any ledger mutation is committed, so a timed-out operation never leaves a
// partial reservation behind.
func (s *leaveRequestService) boundCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OperationTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.OperationTimeout)
}

// inclusiveDays is the default duration of [from, to]: whole calendar days,
// both endpoints counted.
func inclusiveDays(from, to time.Time) decimal.Decimal {
	days := int64(atMidnight(to).Sub(atMidnight(from)).Hours()/24) + 1
	return decimal.NewFromInt(days)
}

// gatherValidationInput loads everything the pure evaluator needs for a draft.
// Policy and entitlement lookups tolerate absence; the evaluator decides what
// that means.
func (s *leaveRequestService) gatherValidationInput(ctx context.Context, draft RequestDraft) (*ValidationInput, error) {
	leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, draft.LeaveTypeID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to load leave type %s: %w", draft.LeaveTypeID, err)
	}

	var policy *domain.LeavePolicy
	if leaveType != nil {
		policy, err = s.leaveTypeRepo.FindPolicyByLeaveTypeID(ctx, draft.LeaveTypeID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load policy for leave type %s: %w", draft.LeaveTypeID, err)
		}
	}

	profile, err := s.directory.GetProfile(ctx, draft.EmployeeID)
	if err != nil {
		return nil, err
	}

	blocked, err := s.calendarRepo.FindBlockedPeriodsByYear(ctx, draft.FromDate.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar for %d: %w", draft.FromDate.Year(), err)
	}

	existing, err := s.requestRepo.FindActiveByEmployee(ctx, draft.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active requests for %s: %w", draft.EmployeeID, err)
	}

	entitlement, err := s.entitlementFor(ctx, draft.EmployeeID, draft.LeaveTypeID)
	if err != nil {
		return nil, err
	}

	return &ValidationInput{
		Draft:            draft,
		LeaveType:        leaveType,
		Policy:           policy,
		Profile:          profile,
		BlockedPeriods:   blocked,
		ExistingRequests: existing,
		Entitlement:      entitlement,
		Now:              time.Now().UTC(),
	}, nil
}

// entitlementFor fetches the balance record, mapping absence to nil.
func (s *leaveRequestService) entitlementFor(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveEntitlement, error) {
	entitlements, err := s.entitlementSvc.GetEntitlements(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	for i := range entitlements {
		if entitlements[i].LeaveTypeID == leaveTypeID {
			return &entitlements[i], nil
		}
	}
	return nil, nil
}

func (s *leaveRequestService) SubmitLeaveRequest(ctx context.Context, req dto.SubmitLeaveRequestRequest, actorID string) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	duration := inclusiveDays(req.FromDate, req.ToDate)
	if req.DurationDays != nil {
		duration = *req.DurationDays
	}

	if req.AttachmentID != nil {
		if _, err := s.attachmentRepo.FindAttachmentByID(ctx, *req.AttachmentID); err != nil {
			return nil, fmt.Errorf("attachment %s: %w", *req.AttachmentID, err)
		}
	}

	draft := RequestDraft{
		EmployeeID:   req.EmployeeID,
		LeaveTypeID:  req.LeaveTypeID,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		DurationDays: duration,
		AttachmentID: req.AttachmentID,
		Emergency:    req.Emergency,
	}
	input, err := s.gatherValidationInput(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := ValidateRequest(*input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	request := domain.LeaveRequest{
		RequestID:     uuid.NewString(),
		EmployeeID:    req.EmployeeID,
		LeaveTypeID:   req.LeaveTypeID,
		FromDate:      req.FromDate,
		ToDate:        req.ToDate,
		DurationDays:  duration,
		Justification: req.Justification,
		AttachmentID:  req.AttachmentID,
		Emergency:     req.Emergency,
		Status:        domain.StatusPending,
		ApprovalFlow:  []domain.ApprovalStep{},
		AuditFields: domain.NewAuditFields(actorID, now),
	}

	if err := s.requestRepo.SaveLeaveRequest(ctx, request); err != nil {
		logger.Error("Failed to save leave request", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}

	if err := s.entitlementSvc.OnSubmit(ctx, request.EmployeeID, request.LeaveTypeID, duration, actorID); err != nil {
		logger.Error("Ledger reservation failed after save", slog.String("request_id", request.RequestID), slog.String("error", err.Error()))
		return nil, err
	}

	s.notifier.RequestSubmitted(ctx, &request)

	logger.Info("Leave request submitted",
		slog.String("request_id", request.RequestID),
		slog.String("employee_id", request.EmployeeID),
		slog.String("duration_days", duration.String()),
	)
	return &request, nil
}

func (s *leaveRequestService) ModifyLeaveRequest(ctx context.Context, requestID string, req dto.ModifyLeaveRequestRequest, actorID string) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.StatusPending {
		return newInvalidTransition("modify", request.Status)
	}

	oldDuration := request.DurationDays
	var changed []string

	if req.FromDate != nil {
		request.FromDate = *req.FromDate
		changed = append(changed, "fromDate")
	}
	if req.ToDate != nil {
		request.ToDate = *req.ToDate
		changed = append(changed, "toDate")
	}
	if req.DurationDays != nil {
		request.DurationDays = *req.DurationDays
		changed = append(changed, "durationDays")
	} else if req.FromDate != nil || req.ToDate != nil {
		request.DurationDays = inclusiveDays(request.FromDate, request.ToDate)
		changed = append(changed, "durationDays")
	}
	if req.Justification != nil {
		request.Justification = *req.Justification
		changed = append(changed, "justification")
	}
	if req.AttachmentID != nil {
		if _, err := s.attachmentRepo.FindAttachmentByID(ctx, *req.AttachmentID); err != nil {
			return nil, fmt.Errorf("attachment %s: %w", *req.AttachmentID, err)
		}
		request.AttachmentID = req.AttachmentID
		changed = append(changed, "attachmentID")
	}

	if len(changed) == 0 {
		logger.Debug("No fields provided for modification", slog.String("request_id", requestID))
		return request, nil
	}

	draft := RequestDraft{
		EmployeeID:       request.EmployeeID,
		LeaveTypeID:      request.LeaveTypeID,
		FromDate:         request.FromDate,
		ToDate:           request.ToDate,
		DurationDays:     request.DurationDays,
		AttachmentID:     request.AttachmentID,
		Emergency:        request.Emergency,
		ExcludeRequestID: request.RequestID,
	}
	input, err := s.gatherValidationInput(ctx, draft)
	if err != nil {
		return nil, err
	}
	if err := ValidateRequest(*input); err != nil {
		return nil, err
	}

	if !request.DurationDays.Equal(oldDuration) {
		if err := s.entitlementSvc.OnModify(ctx, request.EmployeeID, request.LeaveTypeID, oldDuration, request.DurationDays, actorID); err != nil {
			return nil, err
		}
	}

	request.Touch(actorID, time.Now().UTC())
	if err := s.requestRepo.UpdateLeaveRequest(ctx, *request); err != nil {
		logger.Error("Failed to persist modification", slog.String("request_id", requestID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update leave request: %w", err)
	}

	s.notifier.RequestModified(ctx, request, changed)

	logger.Info("Leave request modified", slog.String("request_id", requestID), slog.Any("changed_fields", changed))
	return request, nil
}

func (s *leaveRequestService) CancelLeaveRequest(ctx context.Context, requestID string, actorID string) (*domain.LeaveRequest, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != domain.StatusPending {
		return newInvalidTransition("cancel", request.Status)
	}

	now := time.Now().UTC()
	request.Status = domain.StatusCancelled
	request.DecidedBy = &actorID
	request.DecidedAt = &now
	request.Touch(actorID, now)

	if err := s.requestRepo.UpdateLeaveRequest(ctx, *request); err != nil {
		return nil, fmt.Errorf("failed to cancel leave request: %w", err)
	}

	if err := s.entitlementSvc.OnCancel(ctx, request.EmployeeID, request.LeaveTypeID, request.DurationDays, actorID); err != nil {
		logger.Error("Ledger release failed on cancel", slog.String("request_id", requestID), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Leave request cancelled", slog.String("request_id", requestID))
	return request, nil
}

// newInvalidTransition builds the BadRequest for lifecycle operations attempted
// on a request that is no longer PENDING.
func newInvalidTransition(op string, status domain.RequestStatus) (*domain.LeaveRequest, error) {
	return nil, newValidationError(CodeInvalidStateTransition, "cannot %s a %s request", op, status)
}

func (s *leaveRequestService) GetLeaveRequest(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	request, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.enrich(ctx, request)
	return request, nil
}

func (s *leaveRequestService) ListLeaveRequests(ctx context.Context, params dto.ListLeaveRequestsParams) (*dto.ListLeaveRequestsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	filter := portsrepo.LeaveRequestFilter{
		EmployeeID: params.EmployeeID,
		Status:     domain.RequestStatus(params.Status),
	}
	requests, nextToken, err := s.requestRepo.ListLeaveRequests(ctx, filter, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list leave requests", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve leave requests: %w", err)
	}

	// Per-item enrichment runs in parallel; a failed lookup degrades that item
	// to unenriched rather than failing the listing.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichmentParallelism)
	for i := range requests {
		g.Go(func() error {
			s.enrich(gctx, &requests[i])
			return nil
		})
	}
	_ = g.Wait()

	resp := &dto.ListLeaveRequestsResponse{
		Requests:  dto.ToLeaveRequestResponses(requests),
		NextToken: nextToken,
	}
	logger.Debug("Leave requests listed", slog.Int("count", len(requests)))
	return resp, nil
}

// enrich resolves display fields for one request, tolerating lookup failures.
func (s *leaveRequestService) enrich(ctx context.Context, request *domain.LeaveRequest) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if profile, err := s.directory.GetProfile(ctx, request.EmployeeID); err == nil {
		request.EmployeeName = profile.FullName
	} else {
		logger.Debug("Enrichment profile lookup failed", slog.String("employee_id", request.EmployeeID))
	}

	if leaveType, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, request.LeaveTypeID); err == nil {
		request.LeaveTypeLabel = leaveType.Name
	} else {
		logger.Debug("Enrichment leave type lookup failed", slog.String("leave_type_id", request.LeaveTypeID))
	}
}
