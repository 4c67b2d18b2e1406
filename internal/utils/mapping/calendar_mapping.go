package mapping

import (
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/models"
)

// ToModelBlockedPeriod converts a domain BlockedPeriod to a model BlockedPeriod
func ToModelBlockedPeriod(d domain.BlockedPeriod) models.BlockedPeriod {
	return models.BlockedPeriod{
		PeriodID:    d.PeriodID,
		Year:        d.Year,
		Name:        d.Name,
		FromDate:    d.FromDate,
		ToDate:      d.ToDate,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBlockedPeriod converts a model BlockedPeriod to a domain BlockedPeriod
func ToDomainBlockedPeriod(m models.BlockedPeriod) domain.BlockedPeriod {
	return domain.BlockedPeriod{
		PeriodID:    m.PeriodID,
		Year:        m.Year,
		Name:        m.Name,
		FromDate:    m.FromDate,
		ToDate:      m.ToDate,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBlockedPeriodSlice converts a slice of model BlockedPeriods to domain form
func ToDomainBlockedPeriodSlice(ms []models.BlockedPeriod) []domain.BlockedPeriod {
	ds := make([]domain.BlockedPeriod, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBlockedPeriod(m)
	}
	return ds
}
