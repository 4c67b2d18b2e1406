package mapping

import (
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/models"
)

// ToModelAttachment converts a domain Attachment to a model Attachment
func ToModelAttachment(d domain.Attachment) models.Attachment {
	return models.Attachment{
		AttachmentID: d.AttachmentID,
		FileName:     d.FileName,
		ContentType:  d.ContentType,
		SizeBytes:    d.SizeBytes,
		UploadedBy:   d.UploadedBy,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAttachment converts a model Attachment to a domain Attachment
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID: m.AttachmentID,
		FileName:     m.FileName,
		ContentType:  m.ContentType,
		SizeBytes:    m.SizeBytes,
		UploadedBy:   m.UploadedBy,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
