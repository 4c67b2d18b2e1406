package repositories

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
)

// LeaveRequestFilter narrows request listings.
type LeaveRequestFilter struct {
	EmployeeID string
	Status     domain.RequestStatus
}

// LeaveRequestReader defines read operations for leave request data.
type LeaveRequestReader interface {
	// FindLeaveRequestByID retrieves a specific request by its identifier.
	FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error)

	// ListLeaveRequests retrieves a paginated list of requests using token-based
	// pagination. It returns the requests, a token for the next page, and an error.
	ListLeaveRequests(ctx context.Context, filter LeaveRequestFilter, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error)

	// FindActiveByEmployee retrieves the employee's PENDING and APPROVED requests,
	// the set the overlap check runs against.
	FindActiveByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)
}

// LeaveRequestWriter defines write operations for leave request data.
type LeaveRequestWriter interface {
	// SaveLeaveRequest persists a newly submitted request.
	SaveLeaveRequest(ctx context.Context, req domain.LeaveRequest) error

	// UpdateLeaveRequest persists mutated top-level fields and the full approval flow.
	// Returns apperrors.ErrConflict when the row vanished between read and write.
	UpdateLeaveRequest(ctx context.Context, req domain.LeaveRequest) error

	// UpdateWithApprovalFlow atomically appends or updates the flow entry for
	// step.Role and, when statusPatch is non-nil, patches the top-level decision
	// fields in the same persisted operation.
	UpdateWithApprovalFlow(ctx context.Context, requestID string, statusPatch *domain.StatusPatch, step domain.ApprovalStep, updatedBy string) (*domain.LeaveRequest, error)
}

// LeaveRequestRepositoryFacade combines all leave-request repository interfaces.
type LeaveRequestRepositoryFacade interface {
	LeaveRequestReader
	LeaveRequestWriter
}
