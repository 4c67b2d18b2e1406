package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

// notificationHandler exposes the stored notifications of the acting user.
type notificationHandler struct {
	notifierService portssvc.NotifierSvcFacade
}

func newNotificationHandler(notifierService portssvc.NotifierSvcFacade) *notificationHandler {
	return &notificationHandler{notifierService: notifierService}
}

// listNotifications godoc
// @Summary List the acting user's notifications
// @Description Returns the newest workflow notifications addressed to the authenticated user
// @Tags notifications
// @Produce  json
// @Param   limit query int false "Page size (default 50)"
// @Success 200 {array} dto.NotificationResponse "Notifications"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list notifications"
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	notifications, err := h.notifierService.ListForRecipient(c.Request.Context(), actorID, limit)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list notifications")
		return
	}

	out := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		out[i] = dto.ToNotificationResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, out)
}

// registerNotificationRoutes registers notification read routes.
func registerNotificationRoutes(group *gin.RouterGroup, notifierService portssvc.NotifierSvcFacade) {
	h := newNotificationHandler(notifierService)
	group.GET("/notifications", h.listNotifications)
}
