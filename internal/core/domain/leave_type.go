package domain

import "github.com/shopspring/decimal"

// LeaveType describes one category of leave (annual, sick, unpaid, ...).
type LeaveType struct {
	LeaveTypeID        string           `json:"leaveTypeID"`
	Name               string           `json:"name"`
	Code               string           `json:"code"`
	IsPaid             bool             `json:"isPaid"`
	RequiresAttachment bool             `json:"requiresAttachment"`
	MaxDurationDays    *decimal.Decimal `json:"maxDurationDays,omitempty"`
	AuditFields
}

// EligibilityRule constrains who may request a leave type. Empty allow-lists
// and a nil tenure bound mean the dimension is unconstrained.
type EligibilityRule struct {
	MinTenureMonths      *int     `json:"minTenureMonths,omitempty"`
	ContractTypesAllowed []string `json:"contractTypesAllowed,omitempty"`
	PositionsAllowed     []string `json:"positionsAllowed,omitempty"`
}

// LeavePolicy is the per-leave-type rule set the evaluator enforces. Read-only
// to the engine.
type LeavePolicy struct {
	PolicyID      string          `json:"policyID"`
	LeaveTypeID   string          `json:"leaveTypeID"`
	MinNoticeDays int             `json:"minNoticeDays"`
	Eligibility   EligibilityRule `json:"eligibility"`
	AuditFields
}
