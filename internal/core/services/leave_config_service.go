package services

import (
	"context"
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
)

// leaveConfigService manages the configuration the evaluator reads: leave
// types, per-type policies and calendar blackouts.
type leaveConfigService struct {
	leaveTypeRepo portsrepo.LeaveTypeRepositoryFacade
	calendarRepo  portsrepo.CalendarRepositoryFacade
}

// NewLeaveConfigService creates the configuration service.
func NewLeaveConfigService(leaveTypeRepo portsrepo.LeaveTypeRepositoryFacade, calendarRepo portsrepo.CalendarRepositoryFacade) portssvc.LeaveConfigSvcFacade {
	return &leaveConfigService{leaveTypeRepo: leaveTypeRepo, calendarRepo: calendarRepo}
}

var _ portssvc.LeaveConfigSvcFacade = (*leaveConfigService)(nil)

func (s *leaveConfigService) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	return s.leaveTypeRepo.ListLeaveTypes(ctx)
}

func (s *leaveConfigService) CreateLeaveType(ctx context.Context, req dto.CreateLeaveTypeRequest, actorID string) (*domain.LeaveType, error) {
	now := time.Now().UTC()
	lt := domain.LeaveType{
		LeaveTypeID:        uuid.NewString(),
		Name:               req.Name,
		Code:               req.Code,
		IsPaid:             req.IsPaid,
		RequiresAttachment: req.RequiresAttachment,
		MaxDurationDays:    req.MaxDurationDays,
		AuditFields: domain.NewAuditFields(actorID, now),
	}
	if err := s.leaveTypeRepo.SaveLeaveType(ctx, lt); err != nil {
		return nil, fmt.Errorf("failed to save leave type: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Leave type created", slog.String("leave_type_id", lt.LeaveTypeID), slog.String("code", lt.Code))
	return &lt, nil
}

func (s *leaveConfigService) ListPolicies(ctx context.Context) ([]domain.LeavePolicy, error) {
	return s.leaveTypeRepo.ListPolicies(ctx)
}

func (s *leaveConfigService) CreatePolicy(ctx context.Context, req dto.CreateLeavePolicyRequest, actorID string) (*domain.LeavePolicy, error) {
	if _, err := s.leaveTypeRepo.FindLeaveTypeByID(ctx, req.LeaveTypeID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	p := domain.LeavePolicy{
		PolicyID:      uuid.NewString(),
		LeaveTypeID:   req.LeaveTypeID,
		MinNoticeDays: req.MinNoticeDays,
		Eligibility: domain.EligibilityRule{
			MinTenureMonths:      req.MinTenureMonths,
			ContractTypesAllowed: req.ContractTypesAllowed,
			PositionsAllowed:     req.PositionsAllowed,
		},
		AuditFields: domain.NewAuditFields(actorID, now),
	}
	if err := s.leaveTypeRepo.SavePolicy(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save leave policy: %w", err)
	}
	middleware.GetLoggerFromCtx(ctx).Info("Leave policy created", slog.String("policy_id", p.PolicyID), slog.String("leave_type_id", p.LeaveTypeID))
	return &p, nil
}

func (s *leaveConfigService) ListBlockedPeriods(ctx context.Context, year int) ([]domain.BlockedPeriod, error) {
	return s.calendarRepo.FindBlockedPeriodsByYear(ctx, year)
}

func (s *leaveConfigService) AddBlockedPeriod(ctx context.Context, year int, req dto.CreateBlockedPeriodRequest, actorID string) (*domain.BlockedPeriod, error) {
	if req.ToDate.Before(req.FromDate) {
		return nil, fmt.Errorf("%w: blocked period toDate precedes fromDate", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	p := domain.BlockedPeriod{
		PeriodID: uuid.NewString(),
		Year:     year,
		Name:     req.Name,
		FromDate: req.FromDate,
		ToDate:   req.ToDate,
		AuditFields: domain.NewAuditFields(actorID, now),
	}
	if err := s.calendarRepo.SaveBlockedPeriod(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save blocked period: %w", err)
	}
	return &p, nil
}
