package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

// BulkProcess applies one action to each request independently. The batch is
// explicitly best effort: a failed item is counted and skipped, there is no
// rollback of items already processed.
func (s *leaveRequestService) BulkProcess(ctx context.Context, req dto.BulkProcessRequest, hrUserID string) (*dto.BulkProcessResult, error) {
	ctx, cancel := s.boundCtx(ctx)
	defer cancel()
	logger := middleware.GetLoggerFromCtx(ctx)

	result := &dto.BulkProcessResult{}
	for _, requestID := range req.RequestIDs {
		if err := s.bulkOne(ctx, requestID, req.Action, hrUserID, req.Reason); err != nil {
			logger.Warn("Bulk item failed",
				slog.String("request_id", requestID),
				slog.String("action", req.Action),
				slog.String("error", err.Error()),
			)
			result.Failed++
			continue
		}
		result.Processed++
	}

	logger.Info("Bulk processing finished",
		slog.String("action", req.Action),
		slog.Int("processed", result.Processed),
		slog.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *leaveRequestService) bulkOne(ctx context.Context, requestID, action, hrUserID, reason string) error {
	// Existence is checked up front so a missing id is one failed item rather
	// than an aborted batch.
	if _, err := s.requestRepo.FindLeaveRequestByID(ctx, requestID); err != nil {
		return err
	}

	var err error
	switch action {
	case dto.BulkActionApprove:
		_, err = s.ManagerApprove(ctx, requestID, domain.RoleDepartmentHead, hrUserID, reason)
	case dto.BulkActionReject:
		_, err = s.ManagerReject(ctx, requestID, domain.RoleDepartmentHead, hrUserID, reason)
	case dto.BulkActionFinalize:
		_, err = s.FinalizeLeaveRequest(ctx, requestID, hrUserID, domain.StatusApproved)
	case dto.BulkActionOverrideApprove:
		_, err = s.OverrideLeaveRequest(ctx, requestID, hrUserID, domain.StatusApproved, reason)
	case dto.BulkActionOverrideReject:
		_, err = s.OverrideLeaveRequest(ctx, requestID, hrUserID, domain.StatusRejected, reason)
	default:
		err = fmt.Errorf("%w: unknown bulk action %q", apperrors.ErrValidation, action)
	}
	return err
}
