package services

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntitlementSvcFacade is the entitlement ledger: every counter mutation the
// engine performs goes through one of these delta operations. A missing
// entitlement record is tolerated silently (the leave type is untracked).
type EntitlementSvcFacade interface {
	// OnSubmit reserves the duration: remaining -= d, pending += d.
	OnSubmit(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, actorID string) error

	// OnModify moves the reservation from the old to the new duration in one
	// atomic delta.
	OnModify(ctx context.Context, employeeID, leaveTypeID string, oldDuration, newDuration decimal.Decimal, actorID string) error

	// OnCancel releases the reservation: remaining += d, pending -= d.
	OnCancel(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, actorID string) error

	// OnFinalize commits (APPROVED: pending -= d, taken += d) or reverses
	// (REJECTED: pending -= d, remaining += d) the reservation. Guarded by
	// pending >= d so that repeated finalization is a no-op.
	OnFinalize(ctx context.Context, employeeID, leaveTypeID string, duration decimal.Decimal, outcome domain.RequestStatus, actorID string) error

	// GetEntitlements lists an employee's tracked balances.
	GetEntitlements(ctx context.Context, employeeID string) ([]domain.LeaveEntitlement, error)
}
