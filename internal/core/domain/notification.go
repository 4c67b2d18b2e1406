package domain

// DeliveryType distinguishes a single-recipient notification from a fan-out.
type DeliveryType string

const (
	Unicast   DeliveryType = "UNICAST"
	Multicast DeliveryType = "MULTICAST"
)

// Notification kinds emitted by the leave workflow.
const (
	NotifyLeaveSubmitted  = "LEAVE_REQUEST_SUBMITTED"
	NotifyLeaveModified   = "LEAVE_REQUEST_MODIFIED"
	NotifyLeaveDecision   = "LEAVE_REQUEST_DECISION"
	NotifyLeaveFinalized  = "LEAVE_REQUEST_FINALIZED"
	NotifyLeaveRejected   = "LEAVE_REQUEST_REJECTED"
	NotifyApprovalPending = "LEAVE_APPROVAL_PENDING"
	NotifyLeaveStatus     = "LEAVE_REQUEST_STATUS"
)

// RelatedModule value stamped on every notification this engine emits.
const ModuleLeave = "leave"

// Notification is a message persisted for one or more recipients. Delivery is
// fire-and-forget from the engine's perspective.
type Notification struct {
	NotificationID  string       `json:"notificationID"`
	RecipientIDs    []string     `json:"recipientIDs"`
	Type            string       `json:"type"`
	DeliveryType    DeliveryType `json:"deliveryType"`
	Title           string       `json:"title"`
	Message         string       `json:"message"`
	RelatedEntityID string       `json:"relatedEntityID"`
	RelatedModule   string       `json:"relatedModule"`
	AuditFields
}
