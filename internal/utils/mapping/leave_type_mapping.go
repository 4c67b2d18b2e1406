package mapping

import (
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/models"
)

// ToModelLeaveType converts a domain LeaveType to a model LeaveType
func ToModelLeaveType(d domain.LeaveType) models.LeaveType {
	return models.LeaveType{
		LeaveTypeID:        d.LeaveTypeID,
		Name:               d.Name,
		Code:               d.Code,
		IsPaid:             d.IsPaid,
		RequiresAttachment: d.RequiresAttachment,
		MaxDurationDays:    d.MaxDurationDays,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveType converts a model LeaveType to a domain LeaveType
func ToDomainLeaveType(m models.LeaveType) domain.LeaveType {
	return domain.LeaveType{
		LeaveTypeID:        m.LeaveTypeID,
		Name:               m.Name,
		Code:               m.Code,
		IsPaid:             m.IsPaid,
		RequiresAttachment: m.RequiresAttachment,
		MaxDurationDays:    m.MaxDurationDays,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeaveTypeSlice converts a slice of model LeaveTypes to domain form
func ToDomainLeaveTypeSlice(ms []models.LeaveType) []domain.LeaveType {
	ds := make([]domain.LeaveType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveType(m)
	}
	return ds
}

// ToModelLeavePolicy converts a domain LeavePolicy to a model LeavePolicy
func ToModelLeavePolicy(d domain.LeavePolicy) models.LeavePolicy {
	return models.LeavePolicy{
		PolicyID:             d.PolicyID,
		LeaveTypeID:          d.LeaveTypeID,
		MinNoticeDays:        d.MinNoticeDays,
		MinTenureMonths:      d.Eligibility.MinTenureMonths,
		ContractTypesAllowed: d.Eligibility.ContractTypesAllowed,
		PositionsAllowed:     d.Eligibility.PositionsAllowed,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeavePolicy converts a model LeavePolicy to a domain LeavePolicy
func ToDomainLeavePolicy(m models.LeavePolicy) domain.LeavePolicy {
	return domain.LeavePolicy{
		PolicyID:      m.PolicyID,
		LeaveTypeID:   m.LeaveTypeID,
		MinNoticeDays: m.MinNoticeDays,
		Eligibility: domain.EligibilityRule{
			MinTenureMonths:      m.MinTenureMonths,
			ContractTypesAllowed: m.ContractTypesAllowed,
			PositionsAllowed:     m.PositionsAllowed,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeavePolicySlice converts a slice of model LeavePolicies to domain form
func ToDomainLeavePolicySlice(ms []models.LeavePolicy) []domain.LeavePolicy {
	ds := make([]domain.LeavePolicy, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeavePolicy(m)
	}
	return ds
}
