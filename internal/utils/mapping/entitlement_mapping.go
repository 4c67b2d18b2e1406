package mapping

import (
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/models"
)

// ToModelLeaveEntitlement converts a domain LeaveEntitlement to a model LeaveEntitlement
func ToModelLeaveEntitlement(d domain.LeaveEntitlement) models.LeaveEntitlement {
	return models.LeaveEntitlement{
		EntitlementID:     d.EntitlementID,
		EmployeeID:        d.EmployeeID,
		LeaveTypeID:       d.LeaveTypeID,
		YearlyEntitlement: d.YearlyEntitlement,
		AccruedActual:     d.AccruedActual,
		AccruedRounded:    d.AccruedRounded,
		CarryForward:      d.CarryForward,
		Taken:             d.Taken,
		Pending:           d.Pending,
		Remaining:         d.Remaining,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveEntitlement converts a model LeaveEntitlement to a domain LeaveEntitlement
func ToDomainLeaveEntitlement(m models.LeaveEntitlement) domain.LeaveEntitlement {
	return domain.LeaveEntitlement{
		EntitlementID:     m.EntitlementID,
		EmployeeID:        m.EmployeeID,
		LeaveTypeID:       m.LeaveTypeID,
		YearlyEntitlement: m.YearlyEntitlement,
		AccruedActual:     m.AccruedActual,
		AccruedRounded:    m.AccruedRounded,
		CarryForward:      m.CarryForward,
		Taken:             m.Taken,
		Pending:           m.Pending,
		Remaining:         m.Remaining,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLeaveEntitlementSlice converts a slice of model LeaveEntitlements to domain form
func ToDomainLeaveEntitlementSlice(ms []models.LeaveEntitlement) []domain.LeaveEntitlement {
	ds := make([]domain.LeaveEntitlement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveEntitlement(m)
	}
	return ds
}
