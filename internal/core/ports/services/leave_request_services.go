package services

import (
	"context"

	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/dto"
)

// LeaveRequestSubmitter covers the employee-side lifecycle of a request.
type LeaveRequestSubmitter interface {
	// SubmitLeaveRequest validates and persists a new request, reserves the
	// requested days on the entitlement ledger and notifies the resolved manager.
	SubmitLeaveRequest(ctx context.Context, req dto.SubmitLeaveRequestRequest, actorID string) (*domain.LeaveRequest, error)

	// ModifyLeaveRequest patches a PENDING request, re-validates it and moves the
	// ledger reservation from the old duration to the new one.
	ModifyLeaveRequest(ctx context.Context, requestID string, req dto.ModifyLeaveRequestRequest, actorID string) (*domain.LeaveRequest, error)

	// CancelLeaveRequest cancels a PENDING request and releases its reservation.
	CancelLeaveRequest(ctx context.Context, requestID string, actorID string) (*domain.LeaveRequest, error)
}

// LeaveRequestApprover covers the approval-flow state machine.
type LeaveRequestApprover interface {
	// SetApprovalFlow initialises one pending flow entry per role. It never
	// changes the overall status.
	SetApprovalFlow(ctx context.Context, requestID string, roles []string, actorID string) (*domain.LeaveRequest, error)

	// ManagerApprove records a role-level approval. The overall status stays
	// PENDING until HR finalizes.
	ManagerApprove(ctx context.Context, requestID, role, actorID, justification string) (*domain.LeaveRequest, error)

	// ManagerReject records a role-level rejection without touching the overall status.
	ManagerReject(ctx context.Context, requestID, role, actorID, justification string) (*domain.LeaveRequest, error)

	// FinalizeLeaveRequest is the HR gate: it requires approved hr and
	// department-head flow entries, accepts only APPROVED as the final status,
	// commits the ledger and fans out finalize notifications.
	FinalizeLeaveRequest(ctx context.Context, requestID, hrUserID string, finalStatus domain.RequestStatus) (*domain.LeaveRequest, error)

	// OverrideLeaveRequest bypasses the finalize gate and sets the overall status
	// unconditionally, recording an hr_manager flow entry with the reason.
	OverrideLeaveRequest(ctx context.Context, requestID, hrUserID string, newStatus domain.RequestStatus, reason string) (*domain.LeaveRequest, error)

	// VerifyMedicalDocuments records the hr verification entry; it requires an
	// attachment on the request.
	VerifyMedicalDocuments(ctx context.Context, requestID, hrUserID string, verified bool, notes string) (*domain.LeaveRequest, error)
}

// LeaveRequestReaderSvc covers read access with display enrichment.
type LeaveRequestReaderSvc interface {
	GetLeaveRequest(ctx context.Context, requestID string) (*domain.LeaveRequest, error)
	ListLeaveRequests(ctx context.Context, params dto.ListLeaveRequestsParams) (*dto.ListLeaveRequestsResponse, error)
}

// LeaveRequestBulkProcessor applies one action to many requests, best effort.
type LeaveRequestBulkProcessor interface {
	BulkProcess(ctx context.Context, req dto.BulkProcessRequest, hrUserID string) (*dto.BulkProcessResult, error)
}

// LeaveRequestSvcFacade combines the full public surface of the workflow engine.
type LeaveRequestSvcFacade interface {
	LeaveRequestSubmitter
	LeaveRequestApprover
	LeaveRequestReaderSvc
	LeaveRequestBulkProcessor
}
