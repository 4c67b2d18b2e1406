package repositories

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
)

// EntitlementReader defines read operations for entitlement records.
type EntitlementReader interface {
	// FindByEmployeeAndLeaveType retrieves the balance record for one
	// (employee, leave type) pair. Returns apperrors.ErrNotFound when the leave
	// type carries no tracked balance for the employee.
	FindByEmployeeAndLeaveType(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveEntitlement, error)

	// ListByEmployee retrieves every entitlement record of one employee.
	ListByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveEntitlement, error)
}

// EntitlementWriter defines write operations for entitlement records.
type EntitlementWriter interface {
	// ApplyCounterDelta applies the delta to the stored counters in a single
	// atomic update. It returns false without error when the delta's pending
	// guard was not met (the finalize idempotency no-op), and
	// apperrors.ErrNotFound when no record exists for the pair.
	ApplyCounterDelta(ctx context.Context, employeeID, leaveTypeID string, delta domain.CounterDelta, updatedBy string) (bool, error)
}

// EntitlementRepositoryFacade combines the entitlement repository interfaces.
type EntitlementRepositoryFacade interface {
	EntitlementReader
	EntitlementWriter
}
