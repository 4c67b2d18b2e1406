package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

const rosterPageSize = 200

// managerResolverService resolves direct and indirect managers by walking the
// position hierarchy.
type managerResolverService struct {
	directory portssvc.EmployeeDirectorySvcFacade
	maxHops   int
}

// NewManagerResolverService creates the resolver. maxHops bounds upward
// traversal; values below 1 fall back to 10.
func NewManagerResolverService(directory portssvc.EmployeeDirectorySvcFacade, maxHops int) portssvc.ManagerResolverSvcFacade {
	if maxHops < 1 {
		maxHops = 10
	}
	return &managerResolverService{directory: directory, maxHops: maxHops}
}

var _ portssvc.ManagerResolverSvcFacade = (*managerResolverService)(nil)

// ResolveManager resolves the direct manager, falling back to matching the
// employee's supervisor position against the roster. The fallback scans the
// full roster page by page; an indexed position lookup would replace this once
// the org-structure service exposes one.
func (s *managerResolverService) ResolveManager(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	manager, err := s.directory.GetManagerForEmployee(ctx, employeeID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to resolve manager for %s: %w", employeeID, err)
	}
	if manager != nil {
		return manager, nil
	}

	profile, err := s.directory.GetProfile(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if profile.SupervisorPositionID == nil {
		return nil, nil
	}

	for offset := 0; ; offset += rosterPageSize {
		page, err := s.directory.FindAll(ctx, rosterPageSize, offset)
		if err != nil {
			return nil, fmt.Errorf("roster scan failed at offset %d: %w", offset, err)
		}
		for i := range page {
			candidate := &page[i]
			if candidate.PrimaryPositionID != nil && *candidate.PrimaryPositionID == *profile.SupervisorPositionID {
				return candidate, nil
			}
		}
		if len(page) < rosterPageSize {
			return nil, nil
		}
	}
}

// ResolveChainAbove walks ResolveManager upwards until the chain ends, the hop
// cap is reached, or a cycle is detected.
func (s *managerResolverService) ResolveChainAbove(ctx context.Context, employeeID string) ([]domain.EmployeeProfile, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	var chain []domain.EmployeeProfile
	visited := map[string]struct{}{employeeID: {}}

	current := employeeID
	for hop := 0; hop < s.maxHops; hop++ {
		manager, err := s.ResolveManager(ctx, current)
		if err != nil {
			return nil, err
		}
		if manager == nil {
			break
		}
		if _, seen := visited[manager.EmployeeID]; seen {
			logger.Warn("Cycle detected in position hierarchy",
				slog.String("employee_id", employeeID),
				slog.String("repeated_id", manager.EmployeeID),
			)
			break
		}
		visited[manager.EmployeeID] = struct{}{}
		chain = append(chain, *manager)
		current = manager.EmployeeID
	}

	return chain, nil
}
