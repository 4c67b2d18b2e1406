package domain

import "github.com/shopspring/decimal"

// LeaveEntitlement is the per-employee, per-leave-type balance record.
//
// Invariant: Remaining reflects capacity not yet committed, Pending the capacity
// reserved by open requests, and Taken the capacity consumed by finalized-approved
// requests. The engine mutates the three counters exclusively through CounterDelta
// applications; creation and accrual belong to an external process.
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

// CounterDelta is one atomic adjustment of the three entitlement counters.
// When RequirePendingAtLeast is set the delta must only be applied if the stored
// pending counter is at least that value; otherwise it is a no-op. This is the
// idempotency guard for finalization.
type CounterDelta struct {
	Remaining             decimal.Decimal
	Pending               decimal.Decimal
	Taken                 decimal.Decimal
	RequirePendingAtLeast *decimal.Decimal
}
