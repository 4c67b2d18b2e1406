package dto

import (
	"time"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLeaveTypeRequest defines a new leave category.
type CreateLeaveTypeRequest struct {
	Name               string           `json:"name" binding:"required"`
	Code               string           `json:"code" binding:"required"`
	IsPaid             bool             `json:"isPaid"`
	RequiresAttachment bool             `json:"requiresAttachment"`
	MaxDurationDays    *decimal.Decimal `json:"maxDurationDays,omitempty" binding:"omitempty,halfday"`
}

// CreateLeavePolicyRequest defines the rule set for one leave type.
type CreateLeavePolicyRequest struct {
	LeaveTypeID          string   `json:"leaveTypeID" binding:"required"`
	MinNoticeDays        int      `json:"minNoticeDays" binding:"gte=0"`
	MinTenureMonths      *int     `json:"minTenureMonths,omitempty" binding:"omitempty,gte=0"`
	ContractTypesAllowed []string `json:"contractTypesAllowed,omitempty"`
	PositionsAllowed     []string `json:"positionsAllowed,omitempty"`
}

// CreateBlockedPeriodRequest adds a blackout range to a calendar year.
type CreateBlockedPeriodRequest struct {
	Name     string    `json:"name" binding:"required"`
	FromDate time.Time `json:"fromDate" binding:"required"`
	ToDate   time.Time `json:"toDate" binding:"required"`
}

// CreateAttachmentRequest registers metadata of an uploaded document.
type CreateAttachmentRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	SizeBytes   int64  `json:"sizeBytes" binding:"gte=0"`
}

// EntitlementResponse exposes one balance record.
type EntitlementResponse struct {
	EntitlementID     string          `json:"entitlementID"`
	EmployeeID        string          `json:"employeeID"`
	LeaveTypeID       string          `json:"leaveTypeID"`
	YearlyEntitlement decimal.Decimal `json:"yearlyEntitlement"`
	CarryForward      decimal.Decimal `json:"carryForward"`
	Taken             decimal.Decimal `json:"taken"`
	Pending           decimal.Decimal `json:"pending"`
	Remaining         decimal.Decimal `json:"remaining"`
}

// ToEntitlementResponse converts a domain entitlement to its response DTO.
func ToEntitlementResponse(e *domain.LeaveEntitlement) EntitlementResponse {
	return EntitlementResponse{
		EntitlementID:     e.EntitlementID,
		EmployeeID:        e.EmployeeID,
		LeaveTypeID:       e.LeaveTypeID,
		YearlyEntitlement: e.YearlyEntitlement,
		CarryForward:      e.CarryForward,
		Taken:             e.Taken,
		Pending:           e.Pending,
		Remaining:         e.Remaining,
	}
}

// NotificationResponse exposes one stored notification.
type NotificationResponse struct {
	NotificationID  string    `json:"notificationID"`
	Type            string    `json:"type"`
	DeliveryType    string    `json:"deliveryType"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	RelatedEntityID string    `json:"relatedEntityID"`
	RelatedModule   string    `json:"relatedModule"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain notification to its response DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID:  n.NotificationID,
		Type:            n.Type,
		DeliveryType:    string(n.DeliveryType),
		Title:           n.Title,
		Message:         n.Message,
		RelatedEntityID: n.RelatedEntityID,
		RelatedModule:   n.RelatedModule,
		CreatedAt:       n.CreatedAt,
	}
}
