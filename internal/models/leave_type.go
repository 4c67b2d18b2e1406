package models

import "github.com/shopspring/decimal"

// LeaveType maps to the leave_types table.
type LeaveType struct {
	LeaveTypeID        string           `json:"leaveTypeID"`
	Name               string           `json:"name"`
	Code               string           `json:"code"`
	IsPaid             bool             `json:"isPaid"`
	RequiresAttachment bool             `json:"requiresAttachment"`
	MaxDurationDays    *decimal.Decimal `json:"maxDurationDays,omitempty"`
	AuditFields
}

// LeavePolicy maps to the leave_policies table. The eligibility allow-lists are
// stored as text[] columns; a NULL tenure bound means unconstrained.
type LeavePolicy struct {
	PolicyID             string   `json:"policyID"`
	LeaveTypeID          string   `json:"leaveTypeID"`
	MinNoticeDays        int      `json:"minNoticeDays"`
	MinTenureMonths      *int     `json:"minTenureMonths,omitempty"`
	ContractTypesAllowed []string `json:"contractTypesAllowed,omitempty"`
	PositionsAllowed     []string `json:"positionsAllowed,omitempty"`
	AuditFields
}
