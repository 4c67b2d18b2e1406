package mapping

import (
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	return models.Notification{
		NotificationID:  d.NotificationID,
		RecipientIDs:    d.RecipientIDs,
		Type:            d.Type,
		DeliveryType:    string(d.DeliveryType),
		Title:           d.Title,
		Message:         d.Message,
		RelatedEntityID: d.RelatedEntityID,
		RelatedModule:   d.RelatedModule,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID:  m.NotificationID,
		RecipientIDs:    m.RecipientIDs,
		Type:            m.Type,
		DeliveryType:    domain.DeliveryType(m.DeliveryType),
		Title:           m.Title,
		Message:         m.Message,
		RelatedEntityID: m.RelatedEntityID,
		RelatedModule:   m.RelatedModule,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainNotificationSlice converts a slice of model Notifications to domain form
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}
