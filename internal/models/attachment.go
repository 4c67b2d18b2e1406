package models

// Attachment maps to the attachments table. Rows are immutable once written.
type Attachment struct {
	AttachmentID string `json:"attachmentID"`
	FileName     string `json:"fileName"`
	ContentType  string `json:"contentType"`
	SizeBytes    int64  `json:"sizeBytes"`
	UploadedBy   string `json:"uploadedBy"`
	AuditFields
}
