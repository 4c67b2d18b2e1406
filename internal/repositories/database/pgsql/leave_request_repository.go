package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portsrepo "github.com/openhrm/leave_workflow_app/internal/core/ports/repositories"
	"github.com/openhrm/leave_workflow_app/internal/models"
	"github.com/openhrm/leave_workflow_app/internal/utils/mapping"
	"github.com/openhrm/leave_workflow_app/internal/utils/pagination"
)

type PgxLeaveRequestRepository struct {
	BaseRepository
}

// newPgxLeaveRequestRepository creates a new repository for leave request data.
func newPgxLeaveRequestRepository(pool *pgxpool.Pool) portsrepo.LeaveRequestRepositoryFacade {
	return &PgxLeaveRequestRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LeaveRequestRepositoryFacade = (*PgxLeaveRequestRepository)(nil)

const leaveRequestColumns = `
	request_id, employee_id, leave_type_id, from_date, to_date, duration_days,
	justification, attachment_id, emergency, status, approval_flow,
	decided_by, decided_at, irregular_pattern,
	created_at, created_by, last_updated_at, last_updated_by
`

// scanLeaveRequest scans one leave_requests row, decoding the approval_flow
// JSONB document.
func scanLeaveRequest(row pgx.Row) (models.LeaveRequest, error) {
	var m models.LeaveRequest
	var flowJSON []byte
	err := row.Scan(
		&m.RequestID,
		&m.EmployeeID,
		&m.LeaveTypeID,
		&m.FromDate,
		&m.ToDate,
		&m.DurationDays,
		&m.Justification,
		&m.AttachmentID,
		&m.Emergency,
		&m.Status,
		&flowJSON,
		&m.DecidedBy,
		&m.DecidedAt,
		&m.IrregularPattern,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return models.LeaveRequest{}, err
	}
	if len(flowJSON) > 0 {
		if err := json.Unmarshal(flowJSON, &m.ApprovalFlow); err != nil {
			return models.LeaveRequest{}, fmt.Errorf("failed to decode approval flow for request %s: %w", m.RequestID, err)
		}
	}
	return m, nil
}

// SaveLeaveRequest persists a newly submitted request.
func (r *PgxLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, req domain.LeaveRequest) error {
	m := mapping.ToModelLeaveRequest(req)
	flowJSON, err := json.Marshal(m.ApprovalFlow)
	if err != nil {
		return fmt.Errorf("failed to encode approval flow for request %s: %w", m.RequestID, err)
	}

	query := `
		INSERT INTO leave_requests (
			request_id, employee_id, leave_type_id, from_date, to_date, duration_days,
			justification, attachment_id, emergency, status, approval_flow,
			decided_by, decided_at, irregular_pattern,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.RequestID,
		m.EmployeeID,
		m.LeaveTypeID,
		m.FromDate,
		m.ToDate,
		m.DurationDays,
		m.Justification,
		m.AttachmentID,
		m.Emergency,
		m.Status,
		flowJSON,
		m.DecidedBy,
		m.DecidedAt,
		m.IrregularPattern,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert leave request %s: %w", m.RequestID, err)
	}
	return nil
}

// FindLeaveRequestByID retrieves a request by its ID.
func (r *PgxLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE request_id = $1;`
	m, err := scanLeaveRequest(r.Pool.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave request %s: %w", requestID, err)
	}
	d := mapping.ToDomainLeaveRequest(m)
	return &d, nil
}

// ListLeaveRequests retrieves a page of requests using keyset pagination on
// (created_at, request_id) descending.
func (r *PgxLeaveRequestRepository) ListLeaveRequests(ctx context.Context, filter portsrepo.LeaveRequestFilter, limit int, nextToken *string) ([]domain.LeaveRequest, *string, error) {
	query := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE 1=1`
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != "" {
		query += ` AND employee_id = $` + strconv.Itoa(argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}
	if filter.Status != "" {
		query += ` AND status = $` + strconv.Itoa(argIdx)
		args = append(args, string(filter.Status))
		argIdx++
	}
	if nextToken != nil && *nextToken != "" {
		createdAt, rowID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` AND (created_at, request_id) < ($` + strconv.Itoa(argIdx) + `, $` + strconv.Itoa(argIdx+1) + `)`
		args = append(args, createdAt, rowID)
		argIdx += 2
	}

	// Fetch one extra row to detect whether a further page exists.
	query += ` ORDER BY created_at DESC, request_id DESC LIMIT $` + strconv.Itoa(argIdx)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query leave requests: %w", err)
	}
	defer rows.Close()

	modelReqs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LeaveRequest, error) {
		return scanLeaveRequest(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan leave requests: %w", err)
	}

	var token *string
	if len(modelReqs) > limit {
		modelReqs = modelReqs[:limit]
		last := modelReqs[len(modelReqs)-1]
		t := pagination.EncodeToken(last.CreatedAt, last.RequestID)
		token = &t
	}

	return mapping.ToDomainLeaveRequestSlice(modelReqs), token, nil
}

// FindActiveByEmployee retrieves the employee's PENDING and APPROVED requests.
func (r *PgxLeaveRequestRepository) FindActiveByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	query := `SELECT ` + leaveRequestColumns + `
		FROM leave_requests
		WHERE employee_id = $1 AND status IN ($2, $3)
		ORDER BY from_date;`

	rows, err := r.Pool.Query(ctx, query, employeeID, models.StatusPending, models.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to query active leave requests for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	modelReqs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LeaveRequest, error) {
		return scanLeaveRequest(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan active leave requests: %w", err)
	}

	return mapping.ToDomainLeaveRequestSlice(modelReqs), nil
}

// UpdateLeaveRequest persists mutated top-level fields and the full approval flow.
func (r *PgxLeaveRequestRepository) UpdateLeaveRequest(ctx context.Context, req domain.LeaveRequest) error {
	m := mapping.ToModelLeaveRequest(req)
	flowJSON, err := json.Marshal(m.ApprovalFlow)
	if err != nil {
		return fmt.Errorf("failed to encode approval flow for request %s: %w", m.RequestID, err)
	}

	query := `
		UPDATE leave_requests SET
			from_date = $2,
			to_date = $3,
			duration_days = $4,
			justification = $5,
			attachment_id = $6,
			emergency = $7,
			status = $8,
			approval_flow = $9,
			decided_by = $10,
			decided_at = $11,
			irregular_pattern = $12,
			last_updated_at = $13,
			last_updated_by = $14
		WHERE request_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.RequestID,
		m.FromDate,
		m.ToDate,
		m.DurationDays,
		m.Justification,
		m.AttachmentID,
		m.Emergency,
		m.Status,
		flowJSON,
		m.DecidedBy,
		m.DecidedAt,
		m.IrregularPattern,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update leave request %s: %w", m.RequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: leave request %s disappeared during update", apperrors.ErrConflict, m.RequestID)
	}
	return nil
}

// UpdateWithApprovalFlow appends or replaces the flow entry for step.Role and,
// when statusPatch is set, patches the top-level decision fields in the same
// database transaction. The row is locked so concurrent decisions on different
// roles serialize instead of overwriting each other's flow document.
func (r *PgxLeaveRequestRepository) UpdateWithApprovalFlow(ctx context.Context, requestID string, statusPatch *domain.StatusPatch, step domain.ApprovalStep, updatedBy string) (*domain.LeaveRequest, error) {
	var m models.LeaveRequest
	err := r.withTx(ctx, func(tx pgx.Tx) error {
		selectQuery := `SELECT ` + leaveRequestColumns + ` FROM leave_requests WHERE request_id = $1 FOR UPDATE;`
		var scanErr error
		m, scanErr = scanLeaveRequest(tx.QueryRow(ctx, selectQuery, requestID))
		if scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to lock leave request %s: %w", requestID, scanErr)
		}

		modelStep := mapping.ToModelApprovalFlow([]domain.ApprovalStep{step})[0]
		replaced := false
		for i := range m.ApprovalFlow {
			if m.ApprovalFlow[i].Role == modelStep.Role {
				m.ApprovalFlow[i] = modelStep
				replaced = true
				break
			}
		}
		if !replaced {
			m.ApprovalFlow = append(m.ApprovalFlow, modelStep)
		}

		flowJSON, err := json.Marshal(m.ApprovalFlow)
		if err != nil {
			return fmt.Errorf("failed to encode approval flow for request %s: %w", requestID, err)
		}

		now := time.Now().UTC()
		m.LastUpdatedAt = now
		m.LastUpdatedBy = updatedBy
		if statusPatch != nil {
			m.Status = models.RequestStatus(statusPatch.Status)
			m.DecidedBy = &statusPatch.DecidedBy
			decidedAt := statusPatch.DecidedAt
			m.DecidedAt = &decidedAt
		}

		updateQuery := `
			UPDATE leave_requests SET
				status = $2,
				approval_flow = $3,
				decided_by = $4,
				decided_at = $5,
				last_updated_at = $6,
				last_updated_by = $7
			WHERE request_id = $1;
		`
		if _, err := tx.Exec(ctx, updateQuery,
			m.RequestID,
			m.Status,
			flowJSON,
			m.DecidedBy,
			m.DecidedAt,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		); err != nil {
			return fmt.Errorf("failed to update approval flow for request %s: %w", requestID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainLeaveRequest(m)
	return &d, nil
}
