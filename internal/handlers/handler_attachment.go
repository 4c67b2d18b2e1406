package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/openhrm/leave_workflow_app/internal/middleware"
)

// attachmentHandler manages attachment metadata.
type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
}

func newAttachmentHandler(attachmentService portssvc.AttachmentSvcFacade) *attachmentHandler {
	return &attachmentHandler{attachmentService: attachmentService}
}

// createAttachment godoc
// @Summary Register attachment metadata
// @Description Stores metadata of an uploaded supporting document; the document itself lives in external storage
// @Tags attachments
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateAttachmentRequest true "Attachment metadata"
// @Success 201 {object} domain.Attachment "The created attachment record"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to create attachment"
// @Router /attachments [post]
func (h *attachmentHandler) createAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateAttachment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	a, err := h.attachmentService.CreateAttachment(c.Request.Context(), req, actorID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create attachment")
		return
	}
	c.JSON(http.StatusCreated, a)
}

// getAttachment godoc
// @Summary Get attachment metadata
// @Tags attachments
// @Produce  json
// @Param   attachmentID path string true "Attachment ID"
// @Success 200 {object} domain.Attachment "The attachment record"
// @Failure 404 {object} map[string]string "Attachment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve attachment"
// @Router /attachments/{attachmentID} [get]
func (h *attachmentHandler) getAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	attachmentID := c.Param("attachmentID")

	a, err := h.attachmentService.GetAttachment(c.Request.Context(), attachmentID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve attachment")
		return
	}
	c.JSON(http.StatusOK, a)
}

// registerAttachmentRoutes registers attachment metadata routes.
func registerAttachmentRoutes(group *gin.RouterGroup, attachmentService portssvc.AttachmentSvcFacade) {
	h := newAttachmentHandler(attachmentService)
	group.POST("/attachments", h.createAttachment)
	group.GET("/attachments/:attachmentID", h.getAttachment)
}
