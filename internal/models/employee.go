package models

import "time"

// EmployeeProfile maps to the employee_profiles table, the read model of the
// employee directory.
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
