package models

import "github.com/shopspring/decimal"

// LeaveEntitlement maps to the leave_entitlements table, unique per
// (employee_id, leave_type_id).
type LeaveEntitlement struct {
	EntitlementID     string          `json:"entitlementID"`
	EmployeeID        string          `json:"employeeID"`
	LeaveTypeID       string          `json:"leaveTypeID"`
	YearlyEntitlement decimal.Decimal `json:"yearlyEntitlement"`
	AccruedActual     decimal.Decimal `json:"accruedActual"`
	AccruedRounded    decimal.Decimal `json:"accruedRounded"`
	CarryForward      decimal.Decimal `json:"carryForward"`
	Taken             decimal.Decimal `json:"taken"`
	Pending           decimal.Decimal `json:"pending"`
	Remaining         decimal.Decimal `json:"remaining"`
	AuditFields
}
