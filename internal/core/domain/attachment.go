package domain

// Attachment is the immutable metadata record of an uploaded supporting document.
type Attachment struct {
	AttachmentID string `json:"attachmentID"`
	FileName     string `json:"fileName"`
	ContentType  string `json:"contentType"`
	SizeBytes    int64  `json:"sizeBytes"`
	UploadedBy   string `json:"uploadedBy"`
	AuditFields
}
