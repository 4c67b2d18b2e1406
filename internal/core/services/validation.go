package services

import (
	"fmt"
	"time"

	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Validation reason codes. Each maps to a BadRequest-class failure except
// CodeLeaveTypeNotFound, which is a NotFound.
const (
	CodeLeaveTypeNotFound     = "LEAVE_TYPE_NOT_FOUND"
	CodePolicyNotConfigured   = "POLICY_NOT_CONFIGURED"
	CodeAttachmentRequired    = "ATTACHMENT_REQUIRED"
	CodeDurationExceedsMax    = "DURATION_EXCEEDS_MAX"
	CodeNoticeTooShort        = "NOTICE_TOO_SHORT"
	CodeTenureUnknown         = "TENURE_UNKNOWN"
	CodeTenureTooShort        = "TENURE_TOO_SHORT"
	CodeContractNotAllowed    = "CONTRACT_TYPE_NOT_ALLOWED"
	CodePositionNotAllowed    = "POSITION_NOT_ALLOWED"
	CodeBlackoutPeriod        = "BLACKOUT_PERIOD"
	CodeOverlappingRequest    = "OVERLAPPING_REQUEST"
	CodeInsufficientBalance   = "INSUFFICIENT_BALANCE"
	CodeInvalidDateRange      = "INVALID_DATE_RANGE"
	CodeInvalidDuration       = "INVALID_DURATION"
	CodeInvalidStateTransition = "INVALID_STATE_TRANSITION"
)

// ValidationError is a single pipeline failure with its taxonomy code. It
// unwraps to apperrors.ErrValidation so handlers can classify it.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return apperrors.ErrValidation
}

func newValidationError(code, format string, args ...any) *ValidationError {
	return &ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// RequestDraft is the candidate submission or modification under validation.
type RequestDraft struct {
	EmployeeID       string
	LeaveTypeID      string
	FromDate         time.Time
	ToDate           time.Time
	DurationDays     decimal.Decimal
	AttachmentID     *string
	Emergency        bool
	ExcludeRequestID string // set when re-validating a modification
}

// ValidationInput bundles everything the evaluator needs. The evaluator is a
// pure decision function over this data; it performs no I/O.
type ValidationInput struct {
	Draft            RequestDraft
	LeaveType        *domain.LeaveType
	Policy           *domain.LeavePolicy
	Profile          *domain.EmployeeProfile
	BlockedPeriods   []domain.BlockedPeriod
	ExistingRequests []domain.LeaveRequest // employee's PENDING and APPROVED requests
	Entitlement      *domain.LeaveEntitlement
	Now              time.Time
}

// atMidnight normalizes a time to its calendar day, discarding time-of-day.
func atMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateRequest runs the submission pipeline in fixed order and returns the
// first failure. Order matters: callers rely on cheap structural checks failing
// before balance checks.
func ValidateRequest(in ValidationInput) error {
	draft := in.Draft

	if in.LeaveType == nil {
		return fmt.Errorf("%w: leave type %s", apperrors.ErrNotFound, draft.LeaveTypeID)
	}

	if in.Policy == nil {
		return newValidationError(CodePolicyNotConfigured, "no leave policy configured for leave type %s", draft.LeaveTypeID)
	}

	if draft.ToDate.Before(draft.FromDate) {
		return newValidationError(CodeInvalidDateRange, "toDate precedes fromDate")
	}
	if draft.DurationDays.LessThanOrEqual(decimal.Zero) {
		return newValidationError(CodeInvalidDuration, "duration must be positive, got %s", draft.DurationDays)
	}

	if in.LeaveType.RequiresAttachment && draft.AttachmentID == nil {
		return newValidationError(CodeAttachmentRequired, "leave type %s requires a supporting document", in.LeaveType.Code)
	}

	if max := in.LeaveType.MaxDurationDays; max != nil && draft.DurationDays.GreaterThan(*max) {
		return newValidationError(CodeDurationExceedsMax, "duration %s exceeds maximum of %s days", draft.DurationDays, max)
	}

	if !draft.Emergency {
		noticeDays := int(atMidnight(draft.FromDate).Sub(atMidnight(in.Now)).Hours() / 24)
		if noticeDays < in.Policy.MinNoticeDays {
			return newValidationError(CodeNoticeTooShort, "requests need %d days notice, got %d", in.Policy.MinNoticeDays, noticeDays)
		}
	}

	if min := in.Policy.Eligibility.MinTenureMonths; min != nil {
		months, ok := in.Profile.TenureMonths(in.Now)
		if !ok {
			return newValidationError(CodeTenureUnknown, "tenure rule configured but employee %s has no hire date", draft.EmployeeID)
		}
		if months < *min {
			return newValidationError(CodeTenureTooShort, "minimum tenure is %d months, employee has %d", *min, months)
		}
	}

	if allowed := in.Policy.Eligibility.ContractTypesAllowed; len(allowed) > 0 {
		found := false
		for _, ct := range allowed {
			if ct == in.Profile.ContractType {
				found = true
				break
			}
		}
		if !found {
			return newValidationError(CodeContractNotAllowed, "contract type %s is not eligible for leave type %s", in.Profile.ContractType, in.LeaveType.Code)
		}
	}

	if allowed := in.Policy.Eligibility.PositionsAllowed; len(allowed) > 0 {
		if !in.Profile.HasAnyRole(allowed) {
			return newValidationError(CodePositionNotAllowed, "employee roles are not eligible for leave type %s", in.LeaveType.Code)
		}
	}

	for i := range in.BlockedPeriods {
		if in.BlockedPeriods[i].Covers(draft.FromDate, draft.ToDate) {
			return newValidationError(CodeBlackoutPeriod, "requested range intersects blocked period %q", in.BlockedPeriods[i].Name)
		}
	}

	for i := range in.ExistingRequests {
		other := &in.ExistingRequests[i]
		if other.RequestID == draft.ExcludeRequestID {
			continue
		}
		if other.Status != domain.StatusPending && other.Status != domain.StatusApproved {
			continue
		}
		if other.Overlaps(draft.FromDate, draft.ToDate) {
			return newValidationError(CodeOverlappingRequest, "range overlaps existing %s request %s", other.Status, other.RequestID)
		}
	}

	// No entitlement record means the leave type is untracked for this employee;
	// the balance check is skipped entirely.
	if !draft.Emergency && in.Entitlement != nil {
		if in.Entitlement.Remaining.LessThan(draft.DurationDays) {
			return newValidationError(CodeInsufficientBalance, "remaining balance %s is below requested %s days", in.Entitlement.Remaining, draft.DurationDays)
		}
	}

	return nil
}
