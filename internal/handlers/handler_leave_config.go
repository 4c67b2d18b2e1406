package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

// leaveConfigHandler manages leave types, policies and blocked periods.
type leaveConfigHandler struct {
	configService portssvc.LeaveConfigSvcFacade
}

func newLeaveConfigHandler(configService portssvc.LeaveConfigSvcFacade) *leaveConfigHandler {
	return &leaveConfigHandler{configService: configService}
}

// listLeaveTypes godoc
// @Summary List leave types
// @Tags configuration
// @Produce  json
// @Success 200 {array} domain.LeaveType "Configured leave types"
// @Failure 500 {object} map[string]string "Failed to list leave types"
// @Router /leave-types [get]
func (h *leaveConfigHandler) listLeaveTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	types, err := h.configService.ListLeaveTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list leave types")
		return
	}
	c.JSON(http.StatusOK, types)
}

// createLeaveType godoc
// @Summary Create a leave type
// @Tags configuration
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateLeaveTypeRequest true "Leave type definition"
// @Success 201 {object} domain.LeaveType "The created leave type"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to create leave type"
// @Router /leave-types [post]
func (h *leaveConfigHandler) createLeaveType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLeaveTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateLeaveType", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	lt, err := h.configService.CreateLeaveType(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create leave type")
		return
	}
	c.JSON(http.StatusCreated, lt)
}

// listPolicies godoc
// @Summary List leave policies
// @Tags configuration
// @Produce  json
// @Success 200 {array} domain.LeavePolicy "Configured policies"
// @Failure 500 {object} map[string]string "Failed to list policies"
// @Router /leave-policies [get]
func (h *leaveConfigHandler) listPolicies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	policies, err := h.configService.ListPolicies(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list policies")
		return
	}
	c.JSON(http.StatusOK, policies)
}

// createPolicy godoc
// @Summary Create a leave policy
// @Tags configuration
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateLeavePolicyRequest true "Policy definition"
// @Success 201 {object} domain.LeavePolicy "The created policy"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 404 {object} map[string]string "Leave type not found"
// @Failure 500 {object} map[string]string "Failed to create policy"
// @Router /leave-policies [post]
func (h *leaveConfigHandler) createPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLeavePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreatePolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.configService.CreatePolicy(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create policy")
		return
	}
	c.JSON(http.StatusCreated, policy)
}

// listBlockedPeriods godoc
// @Summary List blocked periods of a year
// @Tags configuration
// @Produce  json
// @Param   year path int true "Calendar year"
// @Success 200 {array} domain.BlockedPeriod "Blocked periods"
// @Failure 400 {object} map[string]string "Invalid year"
// @Failure 500 {object} map[string]string "Failed to list blocked periods"
// @Router /calendars/{year}/blocked-periods [get]
func (h *leaveConfigHandler) listBlockedPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	periods, err := h.configService.ListBlockedPeriods(c.Request.Context(), year)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list blocked periods")
		return
	}
	c.JSON(http.StatusOK, periods)
}

// addBlockedPeriod godoc
// @Summary Add a blocked period to a year
// @Tags configuration
// @Accept  json
// @Produce  json
// @Param   year path int true "Calendar year"
// @Param   request body dto.CreateBlockedPeriodRequest true "Blocked period"
// @Success 201 {object} domain.BlockedPeriod "The created blocked period"
// @Failure 400 {object} map[string]string "Invalid request format or date range"
// @Failure 500 {object} map[string]string "Failed to add blocked period"
// @Router /calendars/{year}/blocked-periods [post]
func (h *leaveConfigHandler) addBlockedPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	var req dto.CreateBlockedPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for AddBlockedPeriod", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	period, err := h.configService.AddBlockedPeriod(c.Request.Context(), year, req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to add blocked period")
		return
	}
	c.JSON(http.StatusCreated, period)
}

// registerLeaveConfigRoutes registers configuration routes.
func registerLeaveConfigRoutes(group *gin.RouterGroup, configService portssvc.LeaveConfigSvcFacade) {
	h := newLeaveConfigHandler(configService)

	group.GET("/leave-types", h.listLeaveTypes)
	group.POST("/leave-types", h.createLeaveType)
	group.GET("/leave-policies", h.listPolicies)
	group.POST("/leave-policies", h.createPolicy)
	group.GET("/calendars/:year/blocked-periods", h.listBlockedPeriods)
	group.POST("/calendars/:year/blocked-periods", h.addBlockedPeriod)
}
