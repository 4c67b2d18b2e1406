package dto

import (
	"time"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitLeaveRequestRequest is the payload for submitting a new leave request.
// DurationDays may be omitted, in which case the inclusive day span of the date
// range is used.
type SubmitLeaveRequestRequest struct {
	EmployeeID    string           `json:"employeeID" binding:"required"`
	LeaveTypeID   string           `json:"leaveTypeID" binding:"required"`
	FromDate      time.Time        `json:"fromDate" binding:"required"`
	ToDate        time.Time        `json:"toDate" binding:"required"`
	DurationDays  *decimal.Decimal `json:"durationDays,omitempty" binding:"omitempty,halfday"`
	Justification string           `json:"justification"`
	AttachmentID  *string          `json:"attachmentID,omitempty"`
	Emergency     bool             `json:"emergency"`
}

// ModifyLeaveRequestRequest is the closed set of fields a pending request may
// patch. Nil means "leave unchanged".
type ModifyLeaveRequestRequest struct {
	FromDate      *time.Time       `json:"fromDate,omitempty"`
	ToDate        *time.Time       `json:"toDate,omitempty"`
	DurationDays  *decimal.Decimal `json:"durationDays,omitempty" binding:"omitempty,halfday"`
	Justification *string          `json:"justification,omitempty"`
	AttachmentID  *string          `json:"attachmentID,omitempty"`
}

// SetApprovalFlowRequest configures the ordered approval roles for a request.
type SetApprovalFlowRequest struct {
	Roles []string `json:"roles" binding:"required,min=1,dive,required"`
}

// DecisionRequest carries a manager's flow-level approve/reject.
type DecisionRequest struct {
	Role          string `json:"role" binding:"required"`
	Justification string `json:"justification"`
}

// FinalizeRequest carries the HR finalization verdict.
type FinalizeRequest struct {
	FinalStatus string `json:"finalStatus" binding:"required"`
}

// OverrideRequest carries an HR override of a request's terminal status.
type OverrideRequest struct {
	NewStatus string `json:"newStatus" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// VerifyDocumentsRequest records the outcome of medical/document verification.
type VerifyDocumentsRequest struct {
	Verified *bool  `json:"verified" binding:"required"`
	Notes    string `json:"notes"`
}

// Bulk actions accepted by the bulk processor.
const (
	BulkActionApprove         = "approve"
	BulkActionReject          = "reject"
	BulkActionFinalize        = "finalize"
	BulkActionOverrideApprove = "override_approve"
	BulkActionOverrideReject  = "override_reject"
)

// BulkProcessRequest applies one action to a set of requests, best effort.
type BulkProcessRequest struct {
	RequestIDs []string `json:"requestIDs" binding:"required,min=1"`
	Action     string   `json:"action" binding:"required,oneof=approve reject finalize override_approve override_reject"`
	Reason     string   `json:"reason"`
}

// BulkProcessResult summarises a best-effort batch.
type BulkProcessResult struct {
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
}

// ListLeaveRequestsParams holds parameters for listing leave requests.
type ListLeaveRequestsParams struct {
	EmployeeID string
	Status     string
	Limit      int
	NextToken  *string
}

// ApprovalStepResponse mirrors one approval-flow entry.
type ApprovalStepResponse struct {
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	DecidedBy string     `json:"decidedBy,omitempty"`
	DecidedAt *time.Time `json:"decidedAt,omitempty"`
	Notes     string     `json:"notes,omitempty"`
}

// LeaveRequestResponse defines the data returned for a leave request.
type LeaveRequestResponse struct {
	RequestID        string                 `json:"requestID"`
	EmployeeID       string                 `json:"employeeID"`
	EmployeeName     string                 `json:"employeeName,omitempty"`
	LeaveTypeID      string                 `json:"leaveTypeID"`
	LeaveTypeLabel   string                 `json:"leaveTypeLabel,omitempty"`
	FromDate         time.Time              `json:"fromDate"`
	ToDate           time.Time              `json:"toDate"`
	DurationDays     decimal.Decimal        `json:"durationDays"`
	Justification    string                 `json:"justification,omitempty"`
	AttachmentID     *string                `json:"attachmentID,omitempty"`
	Emergency        bool                   `json:"emergency"`
	Status           string                 `json:"status"`
	ApprovalFlow     []ApprovalStepResponse `json:"approvalFlow"`
	DecidedBy        *string                `json:"decidedBy,omitempty"`
	DecidedAt        *time.Time             `json:"decidedAt,omitempty"`
	IrregularPattern bool                   `json:"irregularPattern"`
	CreatedAt        time.Time              `json:"createdAt"`
}

// ListLeaveRequestsResponse is a page of requests plus the next-page token.
type ListLeaveRequestsResponse struct {
	Requests  []LeaveRequestResponse `json:"requests"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToLeaveRequestResponse converts a domain.LeaveRequest to its response DTO.
func ToLeaveRequestResponse(r *domain.LeaveRequest) LeaveRequestResponse {
	flow := make([]ApprovalStepResponse, len(r.ApprovalFlow))
	for i, step := range r.ApprovalFlow {
		flow[i] = ApprovalStepResponse{
			Role:      step.Role,
			Status:    string(step.Status),
			DecidedBy: step.DecidedBy,
			DecidedAt: step.DecidedAt,
			Notes:     step.Notes,
		}
	}
	return LeaveRequestResponse{
		RequestID:        r.RequestID,
		EmployeeID:       r.EmployeeID,
		EmployeeName:     r.EmployeeName,
		LeaveTypeID:      r.LeaveTypeID,
		LeaveTypeLabel:   r.LeaveTypeLabel,
		FromDate:         r.FromDate,
		ToDate:           r.ToDate,
		DurationDays:     r.DurationDays,
		Justification:    r.Justification,
		AttachmentID:     r.AttachmentID,
		Emergency:        r.Emergency,
		Status:           string(r.Status),
		ApprovalFlow:     flow,
		DecidedBy:        r.DecidedBy,
		DecidedAt:        r.DecidedAt,
		IrregularPattern: r.IrregularPattern,
		CreatedAt:        r.CreatedAt,
	}
}

// ToLeaveRequestResponses converts a slice of domain requests.
func ToLeaveRequestResponses(rs []domain.LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, len(rs))
	for i := range rs {
		out[i] = ToLeaveRequestResponse(&rs[i])
	}
	return out
}
