package repositories

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
)

// EmployeeRepositoryFacade is the adapter boundary to the employee/organization
// profile store. The engine only reads from it.
type EmployeeRepositoryFacade interface {
	FindProfileByID(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error)

	// FindManagerForEmployee resolves the directly recorded manager.
	// Returns (nil, nil) when no direct manager is recorded.
	FindManagerForEmployee(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error)

	FindTeamByManager(ctx context.Context, managerID string) ([]domain.EmployeeProfile, error)

	// ListProfiles pages through the full roster; used by the position-match
	// fallback of manager resolution.
	ListProfiles(ctx context.Context, limit, offset int) ([]domain.EmployeeProfile, error)

	// ListByRole returns every employee holding the given system role.
	ListByRole(ctx context.Context, role string) ([]domain.EmployeeProfile, error)
}
