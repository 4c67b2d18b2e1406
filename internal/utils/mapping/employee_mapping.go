package mapping

import (
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/models"
)

// ToDomainEmployeeProfile converts a model EmployeeProfile to a domain EmployeeProfile
func ToDomainEmployeeProfile(m models.EmployeeProfile) domain.EmployeeProfile {
	return domain.EmployeeProfile{
		EmployeeID:           m.EmployeeID,
		FullName:             m.FullName,
		Email:                m.Email,
		DateOfHire:           m.DateOfHire,
		ContractType:         m.ContractType,
		SystemRoles:          m.SystemRoles,
		PrimaryPositionID:    m.PrimaryPositionID,
		SupervisorPositionID: m.SupervisorPositionID,
		ManagerID:            m.ManagerID,
	}
}

// ToDomainEmployeeProfileSlice converts a slice of model EmployeeProfiles to domain form
func ToDomainEmployeeProfileSlice(ms []models.EmployeeProfile) []domain.EmployeeProfile {
	ds := make([]domain.EmployeeProfile, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployeeProfile(m)
	}
	return ds
}
