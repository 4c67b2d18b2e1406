package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

// entitlementHandler exposes the read side of the entitlement ledger.
type entitlementHandler struct {
	entitlementService portssvc.EntitlementSvcFacade
}

func newEntitlementHandler(entitlementService portssvc.EntitlementSvcFacade) *entitlementHandler {
	return &entitlementHandler{entitlementService: entitlementService}
}

// listEntitlements godoc
// @Summary List an employee's leave entitlements
// @Description Returns the tracked balance records (remaining/pending/taken) of one employee
// @Tags entitlements
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Success 200 {array} dto.EntitlementResponse "Balance records"
// @Failure 500 {object} map[string]string "Failed to list entitlements"
// @Router /employees/{employeeID}/entitlements [get]
func (h *entitlementHandler) listEntitlements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	entitlements, err := h.entitlementService.GetEntitlements(c.Request.Context(), employeeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list entitlements")
		return
	}

	out := make([]dto.EntitlementResponse, len(entitlements))
	for i := range entitlements {
		out[i] = dto.ToEntitlementResponse(&entitlements[i])
	}
	c.JSON(http.StatusOK, out)
}

// registerEntitlementRoutes registers entitlement read routes.
func registerEntitlementRoutes(group *gin.RouterGroup, entitlementService portssvc.EntitlementSvcFacade) {
	h := newEntitlementHandler(entitlementService)
	group.GET("/employees/:employeeID/entitlements", h.listEntitlements)
}
