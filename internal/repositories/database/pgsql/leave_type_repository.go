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

type PgxLeaveTypeRepository struct {
	BaseRepository
}

// newPgxLeaveTypeRepository creates a new repository for leave types and policies.
func newPgxLeaveTypeRepository(pool *pgxpool.Pool) portsrepo.LeaveTypeRepositoryFacade {
	return &PgxLeaveTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LeaveTypeRepositoryFacade = (*PgxLeaveTypeRepository)(nil)

const leaveTypeColumns = `
	leave_type_id, name, code, is_paid, requires_attachment, max_duration_days,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanLeaveType(row pgx.Row) (models.LeaveType, error) {
	var m models.LeaveType
	err := row.Scan(
		&m.LeaveTypeID,
		&m.Name,
		&m.Code,
		&m.IsPaid,
		&m.RequiresAttachment,
		&m.MaxDurationDays,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindLeaveTypeByID retrieves a leave type by its ID.
func (r *PgxLeaveTypeRepository) FindLeaveTypeByID(ctx context.Context, leaveTypeID string) (*domain.LeaveType, error) {
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types WHERE leave_type_id = $1;`
	m, err := scanLeaveType(r.Pool.QueryRow(ctx, query, leaveTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave type %s: %w", leaveTypeID, err)
	}
	d := mapping.ToDomainLeaveType(m)
	return &d, nil
}

// ListLeaveTypes retrieves all leave types.
func (r *PgxLeaveTypeRepository) ListLeaveTypes(ctx context.Context) ([]domain.LeaveType, error) {
	query := `SELECT ` + leaveTypeColumns + ` FROM leave_types ORDER BY code;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave types: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LeaveType, error) {
		return scanLeaveType(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan leave types: %w", err)
	}
	return mapping.ToDomainLeaveTypeSlice(ms), nil
}

// SaveLeaveType inserts or updates a leave type.
func (r *PgxLeaveTypeRepository) SaveLeaveType(ctx context.Context, lt domain.LeaveType) error {
	m := mapping.ToModelLeaveType(lt)
	query := `
		INSERT INTO leave_types (leave_type_id, name, code, is_paid, requires_attachment, max_duration_days, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (leave_type_id) DO UPDATE SET
			name = EXCLUDED.name,
			code = EXCLUDED.code,
			is_paid = EXCLUDED.is_paid,
			requires_attachment = EXCLUDED.requires_attachment,
			max_duration_days = EXCLUDED.max_duration_days,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.LeaveTypeID,
		m.Name,
		m.Code,
		m.IsPaid,
		m.RequiresAttachment,
		m.MaxDurationDays,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave type %s: %w", m.LeaveTypeID, err)
	}
	return nil
}

const leavePolicyColumns = `
	policy_id, leave_type_id, min_notice_days, min_tenure_months,
	contract_types_allowed, positions_allowed,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanLeavePolicy(row pgx.Row) (models.LeavePolicy, error) {
	var m models.LeavePolicy
	err := row.Scan(
		&m.PolicyID,
		&m.LeaveTypeID,
		&m.MinNoticeDays,
		&m.MinTenureMonths,
		&m.ContractTypesAllowed,
		&m.PositionsAllowed,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindPolicyByLeaveTypeID retrieves the policy configured for a leave type.
func (r *PgxLeaveTypeRepository) FindPolicyByLeaveTypeID(ctx context.Context, leaveTypeID string) (*domain.LeavePolicy, error) {
	query := `SELECT ` + leavePolicyColumns + ` FROM leave_policies WHERE leave_type_id = $1;`
	m, err := scanLeavePolicy(r.Pool.QueryRow(ctx, query, leaveTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find policy for leave type %s: %w", leaveTypeID, err)
	}
	d := mapping.ToDomainLeavePolicy(m)
	return &d, nil
}

// ListPolicies retrieves all leave policies.
func (r *PgxLeaveTypeRepository) ListPolicies(ctx context.Context) ([]domain.LeavePolicy, error) {
	query := `SELECT ` + leavePolicyColumns + ` FROM leave_policies ORDER BY leave_type_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leave policies: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LeavePolicy, error) {
		return scanLeavePolicy(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan leave policies: %w", err)
	}
	return mapping.ToDomainLeavePolicySlice(ms), nil
}

// SavePolicy inserts or updates a leave policy. One policy per leave type.
func (r *PgxLeaveTypeRepository) SavePolicy(ctx context.Context, p domain.LeavePolicy) error {
	m := mapping.ToModelLeavePolicy(p)
	query := `
		INSERT INTO leave_policies (policy_id, leave_type_id, min_notice_days, min_tenure_months, contract_types_allowed, positions_allowed, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (leave_type_id) DO UPDATE SET
			min_notice_days = EXCLUDED.min_notice_days,
			min_tenure_months = EXCLUDED.min_tenure_months,
			contract_types_allowed = EXCLUDED.contract_types_allowed,
			positions_allowed = EXCLUDED.positions_allowed,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PolicyID,
		m.LeaveTypeID,
		m.MinNoticeDays,
		m.MinTenureMonths,
		m.ContractTypesAllowed,
		m.PositionsAllowed,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave policy %s: %w", m.PolicyID, err)
	}
	return nil
}
