package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	"github.com/openhrm/leave_workflow_app/internal/models"
	"github.com/openhrm/leave_workflow_app/internal/utils/mapping"
)

type PgxEntitlementRepository struct {
	BaseRepository
}

// newPgxEntitlementRepository creates a new repository for entitlement balances.
func newPgxEntitlementRepository(pool *pgxpool.Pool) portsrepo.EntitlementRepositoryFacade {
	return &PgxEntitlementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.EntitlementRepositoryFacade = (*PgxEntitlementRepository)(nil)

const entitlementColumns = `
	entitlement_id, employee_id, leave_type_id, yearly_entitlement,
	accrued_actual, accrued_rounded, carry_forward, taken, pending, remaining,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanEntitlement(row pgx.Row) (models.LeaveEntitlement, error) {
	var m models.LeaveEntitlement
	err := row.Scan(
		&m.EntitlementID,
		&m.EmployeeID,
		&m.LeaveTypeID,
		&m.YearlyEntitlement,
		&m.AccruedActual,
		&m.AccruedRounded,
		&m.CarryForward,
		&m.Taken,
		&m.Pending,
		&m.Remaining,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindByEmployeeAndLeaveType retrieves the balance record for one pair.
func (r *PgxEntitlementRepository) FindByEmployeeAndLeaveType(ctx context.Context, employeeID, leaveTypeID string) (*domain.LeaveEntitlement, error) {
	query := `SELECT ` + entitlementColumns + `
		FROM leave_entitlements
		WHERE employee_id = $1 AND leave_type_id = $2;`

	m, err := scanEntitlement(r.Pool.QueryRow(ctx, query, employeeID, leaveTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entitlement for employee %s leave type %s: %w", employeeID, leaveTypeID, err)
	}
	d := mapping.ToDomainLeaveEntitlement(m)
	return &d, nil
}

// ListByEmployee retrieves every entitlement record of one employee.
func (r *PgxEntitlementRepository) ListByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveEntitlement, error) {
	query := `SELECT ` + entitlementColumns + `
		FROM leave_entitlements
		WHERE employee_id = $1
		ORDER BY leave_type_id;`

	rows, err := r.Pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entitlements for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LeaveEntitlement, error) {
		return scanEntitlement(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan entitlements: %w", err)
	}

	return mapping.ToDomainLeaveEntitlementSlice(ms), nil
}

// ApplyCounterDelta adjusts the three counters in a single UPDATE so concurrent
// workflow operations never interleave a read-modify-write. The optional pending
// guard moves idempotency into the WHERE clause: when the stored pending counter
// has already been consumed, zero rows match and the delta reports unapplied.
func (r *PgxEntitlementRepository) ApplyCounterDelta(ctx context.Context, employeeID, leaveTypeID string, delta domain.CounterDelta, updatedBy string) (bool, error) {
	query := `
		UPDATE leave_entitlements SET
			remaining = remaining + $3,
			pending = pending + $4,
			taken = taken + $5,
			last_updated_at = $6,
			last_updated_by = $7
		WHERE employee_id = $1 AND leave_type_id = $2
	`
	args := []any{employeeID, leaveTypeID, delta.Remaining, delta.Pending, delta.Taken, time.Now().UTC(), updatedBy}
	if delta.RequirePendingAtLeast != nil {
		query += ` AND pending >= $8`
		args = append(args, *delta.RequirePendingAtLeast)
	}

	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to apply counter delta for employee %s leave type %s: %w", employeeID, leaveTypeID, err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}

	// Zero rows either means the record does not exist or the pending guard
	// filtered it out; probe to tell the two apart.
	var exists bool
	probe := `SELECT EXISTS (SELECT 1 FROM leave_entitlements WHERE employee_id = $1 AND leave_type_id = $2);`
	if err := r.Pool.QueryRow(ctx, probe, employeeID, leaveTypeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to probe entitlement existence: %w", err)
	}
	if !exists {
		return false, apperrors.ErrNotFound
	}
	return false, nil
}
