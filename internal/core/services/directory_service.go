package services

import (
	"context"
	"fmt"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
)

// employeeDirectoryService fronts the profile store behind the narrow
// collaborator contract the engine consumes.
type employeeDirectoryService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeDirectoryService creates the directory collaborator adapter.
func NewEmployeeDirectoryService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeDirectorySvcFacade {
	return &employeeDirectoryService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeDirectorySvcFacade = (*employeeDirectoryService)(nil)

func (s *employeeDirectoryService) GetProfile(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	profile, err := s.employeeRepo.FindProfileByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", employeeID, err)
	}
	return profile, nil
}

func (s *employeeDirectoryService) GetManagerForEmployee(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	return s.employeeRepo.FindManagerForEmployee(ctx, employeeID)
}

func (s *employeeDirectoryService) GetTeamProfiles(ctx context.Context, managerID string) ([]domain.EmployeeProfile, error) {
	return s.employeeRepo.FindTeamByManager(ctx, managerID)
}

func (s *employeeDirectoryService) FindAll(ctx context.Context, limit, offset int) ([]domain.EmployeeProfile, error) {
	if limit <= 0 {
		limit = 200
	}
	return s.employeeRepo.ListProfiles(ctx, limit, offset)
}

func (s *employeeDirectoryService) FindByRole(ctx context.Context, role string) ([]domain.EmployeeProfile, error) {
	return s.employeeRepo.ListByRole(ctx, role)
}
