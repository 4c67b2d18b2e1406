package mapping

import (
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/models"
)

// ToModelLeaveRequest converts a domain LeaveRequest to a model LeaveRequest
func ToModelLeaveRequest(d domain.LeaveRequest) models.LeaveRequest {
	return models.LeaveRequest{
		RequestID:        d.RequestID,
		EmployeeID:       d.EmployeeID,
		LeaveTypeID:      d.LeaveTypeID,
		FromDate:         d.FromDate,
		ToDate:           d.ToDate,
		DurationDays:     d.DurationDays,
		Justification:    d.Justification,
		AttachmentID:     d.AttachmentID,
		Emergency:        d.Emergency,
		Status:           models.RequestStatus(d.Status),
		ApprovalFlow:     ToModelApprovalFlow(d.ApprovalFlow),
		DecidedBy:        d.DecidedBy,
		DecidedAt:        d.DecidedAt,
		IrregularPattern: d.IrregularPattern,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLeaveRequest converts a model LeaveRequest to a domain LeaveRequest
func ToDomainLeaveRequest(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		RequestID:        m.RequestID,
		EmployeeID:       m.EmployeeID,
		LeaveTypeID:      m.LeaveTypeID,
		FromDate:         m.FromDate,
		ToDate:           m.ToDate,
		DurationDays:     m.DurationDays,
		Justification:    m.Justification,
		AttachmentID:     m.AttachmentID,
		Emergency:        m.Emergency,
		Status:           domain.RequestStatus(m.Status),
		ApprovalFlow:     ToDomainApprovalFlow(m.ApprovalFlow),
		DecidedBy:        m.DecidedBy,
		DecidedAt:        m.DecidedAt,
		IrregularPattern: m.IrregularPattern,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelApprovalFlow converts a domain approval flow to its model form
func ToModelApprovalFlow(ds []domain.ApprovalStep) []models.ApprovalStep {
	ms := make([]models.ApprovalStep, len(ds))
	for i, d := range ds {
		ms[i] = models.ApprovalStep{
			Role:      d.Role,
			Status:    models.ApprovalDecision(d.Status),
			DecidedBy: d.DecidedBy,
			DecidedAt: d.DecidedAt,
			Notes:     d.Notes,
		}
	}
	return ms
}

// ToDomainApprovalFlow converts a model approval flow to its domain form
func ToDomainApprovalFlow(ms []models.ApprovalStep) []domain.ApprovalStep {
	ds := make([]domain.ApprovalStep, len(ms))
	for i, m := range ms {
		ds[i] = domain.ApprovalStep{
			Role:      m.Role,
			Status:    domain.ApprovalDecision(m.Status),
			DecidedBy: m.DecidedBy,
			DecidedAt: m.DecidedAt,
			Notes:     m.Notes,
		}
	}
	return ds
}

// ToDomainLeaveRequestSlice converts a slice of model LeaveRequests to domain form
func ToDomainLeaveRequestSlice(ms []models.LeaveRequest) []domain.LeaveRequest {
	ds := make([]domain.LeaveRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveRequest(m)
	}
	return ds
}
