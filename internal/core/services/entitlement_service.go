package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// entitlementService owns the three-counter balance ledger. All mutations go
// through single atomic counter deltas at the repository; there is no
// read-modify-write of counters in this layer.
type entitlementService struct {
	entitlementRepo portsrepo.EntitlementRepositoryFacade
}

// NewEntitlementService creates the entitlement ledger service.
func NewEntitlementService(entitlementRepo portsrepo.EntitlementRepositoryFacade) portssvc.EntitlementSvcFacade {
	return &entitlementService{entitlementRepo: entitlementRepo}
}

var _ portssvc.EntitlementSvcFacade = (*entitlementService)(nil)

// applyDelta applies one delta, tolerating an absent entitlement record: leave
// types without a tracked balance skip the ledger entirely.
func (s *entitlementService) applyDelta(ctx context.Context, employeeID, leaveTypeID string, delta domain.CounterDelta, actorID, op string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	applied, err := s.entitlementRepo.ApplyCounterDelta(ctx, employeeID, leaveTypeID, delta, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Debug("No entitlement record, ledger skipped",
				slog.String("employee_id", employeeID),
				slog.String("leave_type_id", leaveTypeID),
				slog.String("op", op),
			)
			return nil
		}
		return fmt.Errorf("ledger %s failed: %w", op, err)
	}
	if !applied {
		// Guard not met: the reservation was already consumed by an earlier
		// finalization of the same request.
		logger.Warn("Ledger delta skipped by pending guard",
			slog.String("employee_id", employeeID),
			slog.String("leave_type_id", leaveTypeID),
			slog.String("op", op),
		)
	}
	return nil
}

func (s *entitlementService) OnSubmit(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, actorID string) error {
	return s.applyDelta(ctx, employeeID, leaveTypeID, domain.CounterDelta{
		Remaining: duration.Neg(),
		Pending:   duration,
	}, actorID, "submit")
}

func (s *entitlementService) OnModify(ctx context.Context, employeeID, leaveTypeID string, oldDuration, newDuration decimal.Decimal, actorID string) error {
	// Revert-then-apply collapsed into one atomic delta.
	return s.applyDelta(ctx, employeeID, leaveTypeID, domain.CounterDelta{
		Remaining: oldDuration.Sub(newDuration),
		Pending:   newDuration.Sub(oldDuration),
	}, actorID, "modify")
}

func (s *entitlementService) OnCancel(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, actorID string) error {
	return s.applyDelta(ctx, employeeID, leaveTypeID, domain.CounterDelta{
		Remaining: duration,
		Pending:   duration.Neg(),
	}, actorID, "cancel")
}

func (s *entitlementService) OnFinalize(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, outcome domain.RequestStatus, actorID string) error {
	guard := duration
	switch outcome {
	case domain.StatusApproved:
		return s.applyDelta(ctx, employeeID, leaveTypeID, domain.CounterDelta{
			Pending:               duration.Neg(),
			Taken:                 duration,
			RequirePendingAtLeast: &guard,
		}, actorID, "finalize-approve")
	case domain.StatusRejected:
		return s.applyDelta(ctx, employeeID, leaveTypeID, domain.CounterDelta{
			Pending:               duration.Neg(),
			Remaining:             duration,
			RequirePendingAtLeast: &guard,
		}, actorID, "finalize-reject")
	default:
		return fmt.Errorf("%w: finalize outcome %s has no ledger effect", apperrors.ErrValidation, outcome)
	}
}

func (s *entitlementService) GetEntitlements(ctx context.Context, employeeID string) ([]domain.LeaveEntitlement, error) {
	entitlements, err := s.entitlementRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entitlements for employee %s: %w", employeeID, err)
	}
	return entitlements, nil
}
