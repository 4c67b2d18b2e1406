package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	"github.com/openhrm/leave_workflow_app/internal/models"
	"github.com/openhrm/leave_workflow_app/internal/utils/mapping"
)

// PgxEmployeeRepository reads the employee_profiles projection maintained by
// the HR profile system. The workflow engine never writes to it.
type PgxEmployeeRepository struct {
	BaseRepository
}

// newPgxEmployeeRepository creates a new read-only repository over employee profiles.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeProfileColumns = `
	employee_id, full_name, email, date_of_hire, contract_type, system_roles,
	primary_position_id, supervisor_position_id, manager_id
`

func scanEmployeeProfile(row pgx.Row) (models.EmployeeProfile, error) {
	var m models.EmployeeProfile
	err := row.Scan(
		&m.EmployeeID,
		&m.FullName,
		&m.Email,
		&m.DateOfHire,
		&m.ContractType,
		&m.SystemRoles,
		&m.PrimaryPositionID,
		&m.SupervisorPositionID,
		&m.ManagerID,
	)
	return m, err
}

// FindProfileByID retrieves an employee profile by its ID.
func (r *PgxEmployeeRepository) FindProfileByID(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	query := `SELECT ` + employeeProfileColumns + ` FROM employee_profiles WHERE employee_id = $1;`
	m, err := scanEmployeeProfile(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee profile %s: %w", employeeID, err)
	}
	d := mapping.ToDomainEmployeeProfile(m)
	return &d, nil
}

// FindManagerForEmployee resolves the directly recorded manager via a self join.
// Returns (nil, nil) when no direct manager is recorded.
func (r *PgxEmployeeRepository) FindManagerForEmployee(ctx context.Context, employeeID string) (*domain.EmployeeProfile, error) {
	query := `
		SELECT m.employee_id, m.full_name, m.email, m.date_of_hire, m.contract_type, m.system_roles,
		       m.primary_position_id, m.supervisor_position_id, m.manager_id
		FROM employee_profiles e
		JOIN employee_profiles m ON m.employee_id = e.manager_id
		WHERE e.employee_id = $1;
	`
	m, err := scanEmployeeProfile(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find manager for employee %s: %w", employeeID, err)
	}
	d := mapping.ToDomainEmployeeProfile(m)
	return &d, nil
}

// FindTeamByManager retrieves every employee reporting directly to the manager.
func (r *PgxEmployeeRepository) FindTeamByManager(ctx context.Context, managerID string) ([]domain.EmployeeProfile, error) {
	query := `SELECT ` + employeeProfileColumns + ` FROM employee_profiles WHERE manager_id = $1 ORDER BY employee_id;`
	rows, err := r.Pool.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team for manager %s: %w", managerID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.EmployeeProfile, error) {
		return scanEmployeeProfile(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan team profiles: %w", err)
	}
	return mapping.ToDomainEmployeeProfileSlice(ms), nil
}

// ListProfiles pages through the full roster in stable employee_id order.
func (r *PgxEmployeeRepository) ListProfiles(ctx context.Context, limit, offset int) ([]domain.EmployeeProfile, error) {
	query := `SELECT ` + employeeProfileColumns + ` FROM employee_profiles ORDER BY employee_id LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query employee profiles: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.EmployeeProfile, error) {
		return scanEmployeeProfile(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employee profiles: %w", err)
	}
	return mapping.ToDomainEmployeeProfileSlice(ms), nil
}

// ListByRole retrieves every employee holding the given system role.
func (r *PgxEmployeeRepository) ListByRole(ctx context.Context, role string) ([]domain.EmployeeProfile, error) {
	query := `SELECT ` + employeeProfileColumns + ` FROM employee_profiles WHERE $1 = ANY(system_roles) ORDER BY employee_id;`
	rows, err := r.Pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees by role %s: %w", role, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.EmployeeProfile, error) {
		return scanEmployeeProfile(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees by role: %w", err)
	}
	return mapping.ToDomainEmployeeProfileSlice(ms), nil
}
