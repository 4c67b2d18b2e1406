package models

// Notification maps to the notifications table. RecipientIDs is a text[] column
// so one multicast row covers its whole audience.
type Notification struct {
	NotificationID  string   `json:"notificationID"`
	RecipientIDs    []string `json:"recipientIDs"`
	Type            string   `json:"type"`
	DeliveryType    string   `json:"deliveryType"`
	Title           string   `json:"title"`
	Message         string   `json:"message"`
	RelatedEntityID string   `json:"relatedEntityID"`
	RelatedModule   string   `json:"relatedModule"`
	AuditFields
}
