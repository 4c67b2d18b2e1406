package services

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
)

// EmployeeDirectorySvcFacade is the narrow contract to the employee/organization
// profile collaborator.
type EmployeeDirectorySvcFacade interface {
	GetProfile(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error)
	GetManagerForEmployee(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error)
	GetTeamProfiles(ctx context.Context, managerID string) ([]domain.EmployeeProfile, error)
	FindAll(ctx context.Context, limit, offset int) ([]domain.EmployeeProfile, error)
	FindByRole(ctx context.Context, role string) ([]domain.EmployeeProfile, error)
}

// ManagerResolverSvcFacade walks the position hierarchy upwards.
type ManagerResolverSvcFacade interface {
	// ResolveManager resolves the direct manager, falling back to matching the
	// employee's supervisor position against the roster. Returns (nil, nil) when
	// no manager can be resolved.
	ResolveManager(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error)

	// ResolveChainAbove returns the ordered ancestor chain above the employee,
	// bounded by a hop cap and protected against cycles.
	ResolveChainAbove(ctx context.Context, employeeID string) ([]domain.EmployeeProfile, error)
}

// NotifierSvcFacade composes and dispatches workflow notifications. Every method
// is fire-and-forget: failures are logged at the call site and never propagate.
type NotifierSvcFacade interface {
	RequestSubmitted(ctx context.Context, req *domain.LeaveRequest)
	RequestModified(ctx context.Context, req *domain.LeaveRequest, changedFields []string)
	FlowConfigured(ctx context.Context, req *domain.LeaveRequest, roles []string)
	DecisionRecorded(ctx context.Context, req *domain.LeaveRequest, step domain.ApprovalStep)
	RequestFinalized(ctx context.Context, req *domain.LeaveRequest)
	OverrideRejected(ctx context.Context, req *domain.LeaveRequest, reason string)
	StatusChanged(ctx context.Context, req *domain.LeaveRequest, newStatus domain.RequestStatus)

	// ListForRecipient returns the stored notifications addressed to one user.
	ListForRecipient(ctx context.Context, recipientID string, limit int) ([]domain.Notification, error)
}
