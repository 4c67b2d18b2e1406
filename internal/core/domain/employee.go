package domain

import "time"

// EmployeeProfile is the slice of the employee directory the engine consumes.
// It is owned by the profile collaborator; the engine never mutates it.
type EmployeeProfile struct {
	EmployeeID           string     `json:"employeeID"`
	FullName             string     `json:"fullName"`
	Email                string     `json:"email"`
	DateOfHire           *time.Time `json:"dateOfHire,omitempty"`
	ContractType         string     `json:"contractType"`
	SystemRoles          []string   `json:"systemRoles"`
	PrimaryPositionID    *string    `json:"primaryPositionID,omitempty"`
	SupervisorPositionID *string    `json:"supervisorPositionID,omitempty"`
	ManagerID            *string    `json:"managerID,omitempty"`
}

// HasRole reports whether the profile carries the given system role.
func (p *EmployeeProfile) HasRole(role string) bool {
	for _, r := range p.SystemRoles {
		if r == role {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether the profile carries at least one of the given roles.
func (p *EmployeeProfile) HasAnyRole(roles []string) bool {
	for _, r := range roles {
		if p.HasRole(r) {
			return true
		}
	}
	return false
}

// TenureMonths computes the employee's tenure in whole elapsed months at the
// given instant. A month only counts once its day-of-month has passed. Returns
// false when no hire date is recorded.
func (p *EmployeeProfile) TenureMonths(now time.Time) (int, bool) {
	if p.DateOfHire == nil {
		return 0, false
	}
	hire := *p.DateOfHire
	months := (now.Year()-hire.Year())*12 + int(now.Month()) - int(hire.Month())
	if now.Day() < hire.Day() {
		months--
	}
	if months < 0 {
		months = 0
	}
	return months, true
}
