package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the overall state of a leave request. APPROVED, REJECTED and
// CANCELLED are terminal; a request is never physically deleted.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// IsTerminal reports whether the status admits no further lifecycle transitions.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// KnownStatus reports whether s is one of the recognised request statuses.
func KnownStatus(s RequestStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// ApprovalDecision is the state of a single role's entry in the approval flow,
// independent of the request's overall status.
type ApprovalDecision string

const (
	DecisionPending  ApprovalDecision = "PENDING"
	DecisionApproved ApprovalDecision = "APPROVED"
	DecisionRejected ApprovalDecision = "REJECTED"
)

// Well-known approval roles. RoleHRManager is the pseudo-role recorded on overrides.
const (
	RoleHR                 = "hr"
	RoleDepartmentHead     = "department_head"
	RoleHRManager          = "hr_manager"
	RolePayrollCoordinator = "payroll_coordinator"
)

// ApprovalStep is one role's decision on a request.
type ApprovalStep struct {
	Role      string           `json:"role"`
	Status    ApprovalDecision `json:"status"`
	DecidedBy string           `json:"decidedBy,omitempty"`
	DecidedAt *time.Time       `json:"decidedAt,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// LeaveRequest is an employee's request for a span of leave days against one leave type.
type LeaveRequest struct {
	RequestID        string          `json:"requestID"`
	EmployeeID       string          `json:"employeeID"`
	LeaveTypeID      string          `json:"leaveTypeID"`
	FromDate         time.Time       `json:"fromDate"`
	ToDate           time.Time       `json:"toDate"`
	DurationDays     decimal.Decimal `json:"durationDays"`
	Justification    string          `json:"justification"`
	AttachmentID     *string         `json:"attachmentID,omitempty"`
	Emergency        bool            `json:"emergency"`
	Status           RequestStatus   `json:"status"`
	ApprovalFlow     []ApprovalStep  `json:"approvalFlow"`
	DecidedBy        *string         `json:"decidedBy,omitempty"`
	DecidedAt        *time.Time      `json:"decidedAt,omitempty"`
	IrregularPattern bool            `json:"irregularPattern"`
	AuditFields

	// Enrichment-only fields, populated on reads for display; never persisted.
	EmployeeName   string `json:"employeeName,omitempty"`
	LeaveTypeLabel string `json:"leaveTypeLabel,omitempty"`
}

// FlowStep returns the approval-flow entry for the given role, if present.
func (r *LeaveRequest) FlowStep(role string) (ApprovalStep, bool) {
	for _, step := range r.ApprovalFlow {
		if step.Role == role {
			return step, true
		}
	}
	return ApprovalStep{}, false
}

// StatusPatch is the set of top-level fields an approval-flow update may patch
// atomically alongside the flow entry itself.
type StatusPatch struct {
	Status    RequestStatus
	DecidedBy string
	DecidedAt time.Time
}

// Overlaps reports whether the request's date span intersects [from, to].
// Both bounds are inclusive.
func (r *LeaveRequest) Overlaps(from, to time.Time) bool {
	return !r.FromDate.After(to) && !r.ToDate.Before(from)
}
