package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

// leaveRequestHandler handles HTTP requests for the leave workflow.
type leaveRequestHandler struct {
	leaveRequestService portssvc.LeaveRequestSvcFacade
}

// newLeaveRequestHandler creates a new leaveRequestHandler.
func newLeaveRequestHandler(leaveRequestService portssvc.LeaveRequestSvcFacade) *leaveRequestHandler {
	return &leaveRequestHandler{
		leaveRequestService: leaveRequestService,
	}
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting update", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// submitLeaveRequest godoc
// @Summary Submit a new leave request
// @Description Validates the request against policy, calendar, overlap and balance rules, reserves the days and notifies the manager
// @Tags leave-requests
// @Accept  json
// @Produce  json
// @Param   request body dto.SubmitLeaveRequestRequest true "Leave request details"
// @Success 201 {object} dto.LeaveRequestResponse "The created request"
// @Failure 400 {object} map[string]string "Invalid request format or validation failure"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to submit leave request"
// @Router /leave-requests [post]
func (h *leaveRequestHandler) submitLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for SubmitLeaveRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Actor user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.leaveRequestService.SubmitLeaveRequest(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit leave request")
		return
	}

	logger.Info("Leave request submitted", slog.String("request_id", request.RequestID))
	c.JSON(http.StatusCreated, dto.ToLeaveRequestResponse(request))
}

// getLeaveRequest godoc
// @Summary Get a leave request
// @Description Retrieves one leave request with its approval flow and display enrichment
// @Tags leave-requests
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Success 200 {object} dto.LeaveRequestResponse "The request"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to retrieve leave request"
// @Router /leave-requests/{requestID} [get]
func (h *leaveRequestHandler) getLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	request, err := h.leaveRequestService.GetLeaveRequest(c.Request.Context(), requestID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve leave request")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// listLeaveRequests godoc
// @Summary List leave requests
// @Description Lists leave requests with optional employee/status filters and token pagination
// @Tags leave-requests
// @Produce  json
// @Param   employeeID query string false "Filter by employee"
// @Param   status query string false "Filter by overall status"
// @Param   limit query int false "Page size (default 20)"
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListLeaveRequestsResponse "A page of requests"
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list leave requests"
// @Router /leave-requests [get]
func (h *leaveRequestHandler) listLeaveRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params := dto.ListLeaveRequestsParams{
		EmployeeID: c.Query("employeeID"),
		Status:     c.Query("status"),
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		params.Limit = limit
	}
	if token := c.Query("nextToken"); token != "" {
		params.NextToken = &token
	}

	page, err := h.leaveRequestService.ListLeaveRequests(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list leave requests")
		return
	}

	c.JSON(http.StatusOK, page)
}

// modifyLeaveRequest godoc
// @Summary Modify a pending leave request
// @Description Patches dates, duration, justification or attachment of a PENDING request and re-validates it
// @Tags leave-requests
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Param   request body dto.ModifyLeaveRequestRequest true "Fields to patch"
// @Success 200 {object} dto.LeaveRequestResponse "The updated request"
// @Failure 400 {object} map[string]string "Invalid request format or validation failure"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to modify leave request"
// @Router /leave-requests/{requestID} [patch]
func (h *leaveRequestHandler) modifyLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var req dto.ModifyLeaveRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ModifyLeaveRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.leaveRequestService.ModifyLeaveRequest(c.Request.Context(), requestID, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to modify leave request")
		return
	}

	logger.Info("Leave request modified", slog.String("request_id", requestID))
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// cancelLeaveRequest godoc
// @Summary Cancel a pending leave request
// @Description Cancels a PENDING request and releases its ledger reservation
// @Tags leave-requests
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Success 200 {object} dto.LeaveRequestResponse "The cancelled request"
// @Failure 400 {object} map[string]string "Request is not pending"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to cancel leave request"
// @Router /leave-requests/{requestID}/cancel [post]
func (h *leaveRequestHandler) cancelLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.leaveRequestService.CancelLeaveRequest(c.Request.Context(), requestID, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel leave request")
		return
	}

	logger.Info("Leave request cancelled", slog.String("request_id", requestID))
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// setApprovalFlow godoc
// @Summary Configure the approval flow of a request
// @Description Initialises one pending approval entry per role; never changes the overall status
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Param   request body dto.SetApprovalFlowRequest true "Ordered approval roles"
// @Success 200 {object} dto.LeaveRequestResponse "The request with its flow"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to set approval flow"
// @Router /leave-requests/{requestID}/approval-flow [put]
func (h *leaveRequestHandler) setApprovalFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var req dto.SetApprovalFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for SetApprovalFlow", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.leaveRequestService.SetApprovalFlow(c.Request.Context(), requestID, req.Roles, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to set approval flow")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// approveLeaveRequest godoc
// @Summary Record a role-level approval
// @Description Marks the actor's role entry approved on the flow; the overall status stays PENDING until HR finalizes
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Param   request body dto.DecisionRequest true "Role and optional justification"
// @Success 200 {object} dto.LeaveRequestResponse "The updated request"
// @Failure 400 {object} map[string]string "Invalid request or request not pending"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to record approval"
// @Router /leave-requests/{requestID}/approve [post]
func (h *leaveRequestHandler) approveLeaveRequest(c *gin.Context) {
	h.decide(c, true)
}

// rejectLeaveRequest godoc
// @Summary Record a role-level rejection
// @Description Marks the actor's role entry rejected on the flow without touching the overall status
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Param   request body dto.DecisionRequest true "Role and optional justification"
// @Success 200 {object} dto.LeaveRequestResponse "The updated request"
// @Failure 400 {object} map[string]string "Invalid request or request not pending"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to record rejection"
// @Router /leave-requests/{requestID}/reject [post]
func (h *leaveRequestHandler) rejectLeaveRequest(c *gin.Context) {
	h.decide(c, false)
}

func (h *leaveRequestHandler) decide(c *gin.Context, approve bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for decision", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request *domain.LeaveRequest
	var err error
	if approve {
		request, err = h.leaveRequestService.ManagerApprove(c.Request.Context(), requestID, req.Role, actorID, req.Justification)
	} else {
		request, err = h.leaveRequestService.ManagerReject(c.Request.Context(), requestID, req.Role, actorID, req.Justification)
	}
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record decision")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// finalizeLeaveRequest godoc
// @Summary Finalize a leave request (HR)
// @Description Moves the overall status to APPROVED once the hr and department_head flow entries are approved, and commits the ledger
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Param   request body dto.FinalizeRequest true "Final status (must be APPROVED)"
// @Success 200 {object} dto.LeaveRequestResponse "The finalized request"
// @Failure 400 {object} map[string]string "Gate not satisfied or non-APPROVED final status"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to finalize leave request"
// @Router /leave-requests/{requestID}/finalize [post]
func (h *leaveRequestHandler) finalizeLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var req dto.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for FinalizeLeaveRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.leaveRequestService.FinalizeLeaveRequest(c.Request.Context(), requestID, actorID, domain.RequestStatus(req.FinalStatus))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to finalize leave request")
		return
	}

	logger.Info("Leave request finalized", slog.String("request_id", requestID))
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// overrideLeaveRequest godoc
// @Summary Override a leave request status (HR)
// @Description Sets the overall status unconditionally, bypassing the finalize gate, and records an hr_manager flow entry
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Param   request body dto.OverrideRequest true "New status and reason"
// @Success 200 {object} dto.LeaveRequestResponse "The overridden request"
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to override leave request"
// @Router /leave-requests/{requestID}/override [post]
func (h *leaveRequestHandler) overrideLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var req dto.OverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for OverrideLeaveRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.leaveRequestService.OverrideLeaveRequest(c.Request.Context(), requestID, actorID, domain.RequestStatus(req.NewStatus), req.Reason)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to override leave request")
		return
	}

	logger.Info("Leave request overridden", slog.String("request_id", requestID))
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// verifyMedicalDocuments godoc
// @Summary Verify supporting documents (HR)
// @Description Records the hr verification entry required before finalizing attachment-backed requests
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   requestID path string true "Request ID"
// @Param   request body dto.VerifyDocumentsRequest true "Verification outcome"
// @Success 200 {object} dto.LeaveRequestResponse "The updated request"
// @Failure 400 {object} map[string]string "Request has no attachment"
// @Failure 404 {object} map[string]string "Request not found"
// @Failure 500 {object} map[string]string "Failed to verify documents"
// @Router /leave-requests/{requestID}/verify-documents [post]
func (h *leaveRequestHandler) verifyMedicalDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	requestID := c.Param("requestID")

	var req dto.VerifyDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for VerifyMedicalDocuments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	request, err := h.leaveRequestService.VerifyMedicalDocuments(c.Request.Context(), requestID, actorID, *req.Verified, req.Notes)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to verify documents")
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// bulkProcess godoc
// @Summary Apply one action to many requests (HR)
// @Description Processes each request independently and reports processed/failed counts; failures never abort the batch
// @Tags approvals
// @Accept  json
// @Produce  json
// @Param   request body dto.BulkProcessRequest true "Request IDs and action"
// @Success 200 {object} dto.BulkProcessResult "Batch outcome"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to process batch"
// @Router /leave-requests/bulk [post]
func (h *leaveRequestHandler) bulkProcess(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for BulkProcess", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.leaveRequestService.BulkProcess(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to process batch")
		return
	}

	c.JSON(http.StatusOK, result)
}

// registerLeaveRequestRoutes registers the workflow routes.
func registerLeaveRequestRoutes(group *gin.RouterGroup, leaveRequestService portssvc.LeaveRequestSvcFacade) {
	h := newLeaveRequestHandler(leaveRequestService)

	requests := group.Group("/leave-requests")
	{
		requests.POST("", h.submitLeaveRequest)
		requests.GET("", h.listLeaveRequests)
		requests.POST("/bulk", h.bulkProcess)
		requests.GET("/:requestID", h.getLeaveRequest)
		requests.PATCH("/:requestID", h.modifyLeaveRequest)
		requests.POST("/:requestID/cancel", h.cancelLeaveRequest)
		requests.PUT("/:requestID/approval-flow", h.setApprovalFlow)
		requests.POST("/:requestID/approve", h.approveLeaveRequest)
		requests.POST("/:requestID/reject", h.rejectLeaveRequest)
		requests.POST("/:requestID/finalize", h.finalizeLeaveRequest)
		requests.POST("/:requestID/override", h.overrideLeaveRequest)
		requests.POST("/:requestID/verify-documents", h.verifyMedicalDocuments)
	}
}
