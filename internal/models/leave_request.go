package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus mirrors the overall request state stored in leave_requests.status.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// ApprovalDecision is the per-role decision state inside the approval_flow document.
type ApprovalDecision string

// ApprovalStep is one element of the approval_flow JSONB document.
type ApprovalStep struct {
	Role      string           `json:"role"`
	Status    ApprovalDecision `json:"status"`
	DecidedBy string           `json:"decidedBy,omitempty"`
	DecidedAt *time.Time       `json:"decidedAt,omitempty"`
	Notes     string           `json:"notes,omitempty"`
}

// LeaveRequest maps to the leave_requests table. ApprovalFlow is persisted as a
// single JSONB column so a flow update and a status patch commit together.
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
}
