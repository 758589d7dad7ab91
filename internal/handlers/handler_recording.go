package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/internal/middleware"
)

// recordingHandler handles HTTP requests related to recordings and their
// contributor credits.
type recordingHandler struct {
	recordingService portssvc.RecordingSvcFacade
}

// registerRecordingRoutes registers routes related to recordings.
func registerRecordingRoutes(rg *gin.RouterGroup, recordingService portssvc.RecordingSvcFacade) {
	h := &recordingHandler{recordingService: recordingService}

	recordings := rg.Group("/recordings")
	{
		recordings.POST("", h.createRecording)
		recordings.GET("", h.listRecordings)
		recordings.GET("/:recording_id", h.getRecording)
		recordings.PUT("/:recording_id", h.updateRecording)
		recordings.DELETE("/:recording_id", h.deleteRecording)
		recordings.POST("/:recording_id/contributors", h.addContributor)
		recordings.DELETE("/:recording_id/contributors/:contributor_id", h.removeContributor)
	}
}

// createRecording godoc
// @Summary Create a recording
// @Description Creates a recording of a work after validating the ISRC.
// @Tags recordings
// @Accept json
// @Produce json
// @Param recording body dto.CreateRecordingRequest true "Recording details"
// @Success 201 {object} dto.RecordingResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate ISRC within the publisher"
// @Security BearerAuth
// @Router /recordings [post]
func (h *recordingHandler) createRecording(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecording", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	recording, err := h.recordingService.CreateRecording(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordingResponse(recording, nil))
}

// listRecordings godoc
// @Summary List recordings
// @Description Retrieves recordings, excluding soft-deleted ones unless asked for.
// @Tags recordings
// @Produce json
// @Param workID query string false "Filter by work"
// @Param status query string false "Filter by status" Enums(active, archived, deleted)
// @Param recordingType query string false "Filter by type"
// @Param includeDeleted query bool false "Include soft-deleted recordings"
// @Param search query string false "Title or artist substring filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListRecordingsResponse
// @Security BearerAuth
// @Router /recordings [get]
func (h *recordingHandler) listRecordings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecordingsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	recordings, total, err := h.recordingService.ListRecordings(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordingsResponse(recordings, total, params.Limit, params.Offset))
}

// getRecording godoc
// @Summary Get a recording with its contributors
// @Tags recordings
// @Produce json
// @Param recording_id path string true "Recording ID"
// @Success 200 {object} dto.RecordingResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recordings/{recording_id} [get]
func (h *recordingHandler) getRecording(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	recording, contributors, err := h.recordingService.GetRecordingByID(c.Request.Context(), c.Param("recording_id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordingResponse(recording, contributors))
}

// updateRecording godoc
// @Summary Update a recording
// @Tags recordings
// @Accept json
// @Produce json
// @Param recording_id path string true "Recording ID"
// @Param recording body dto.UpdateRecordingRequest true "Fields to update"
// @Success 200 {object} dto.RecordingResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recordings/{recording_id} [put]
func (h *recordingHandler) updateRecording(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateRecordingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	recording, err := h.recordingService.UpdateRecording(c.Request.Context(), c.Param("recording_id"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordingResponse(recording, nil))
}

// deleteRecording godoc
// @Summary Delete a recording
// @Description Soft deletes a recording. The row stays with status deleted.
// @Tags recordings
// @Param recording_id path string true "Recording ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recordings/{recording_id} [delete]
func (h *recordingHandler) deleteRecording(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.recordingService.DeleteRecording(c.Request.Context(), c.Param("recording_id"), userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// addContributor godoc
// @Summary Credit a contributor on a recording
// @Tags recordings
// @Accept json
// @Produce json
// @Param recording_id path string true "Recording ID"
// @Param contributor body dto.AddContributorRequest true "Contributor details"
// @Success 201 {object} dto.ContributorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate credit within the publisher"
// @Security BearerAuth
// @Router /recordings/{recording_id}/contributors [post]
func (h *recordingHandler) addContributor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddContributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	contributor, err := h.recordingService.AddContributor(c.Request.Context(), c.Param("recording_id"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToContributorResponse(contributor))
}

// removeContributor godoc
// @Summary Remove a contributor credit
// @Tags recordings
// @Param recording_id path string true "Recording ID"
// @Param contributor_id path string true "Contributor ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /recordings/{recording_id}/contributors/{contributor_id} [delete]
func (h *recordingHandler) removeContributor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.recordingService.RemoveContributor(c.Request.Context(), c.Param("recording_id"), c.Param("contributor_id"), userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
