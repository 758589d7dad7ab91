package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/internal/middleware"
	"github.com/opusregistry/catalog_backend/internal/validation"
)

// workHandler handles HTTP requests related to works and their writer
// credits.
type workHandler struct {
	workService portssvc.WorkSvcFacade
}

// registerWorkRoutes registers routes related to works.
func registerWorkRoutes(rg *gin.RouterGroup, workService portssvc.WorkSvcFacade) {
	h := &workHandler{workService: workService}

	works := rg.Group("/works")
	{
		works.POST("", h.createWork)
		works.GET("", h.listWorks)
		works.GET("/check-duplicates", h.checkDuplicates)
		works.GET("/:work_id", h.getWork)
		works.PUT("/:work_id", h.updateWork)
		works.DELETE("/:work_id", h.deleteWork)
		works.PUT("/:work_id/writers", h.replaceWriters)
	}
}

// createWork godoc
// @Summary Create a work
// @Description Creates a work with its writer credits in one transaction.
// @Tags works
// @Accept json
// @Produce json
// @Param work body dto.CreateWorkRequest true "Work details including writers"
// @Success 201 {object} dto.WorkResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate ISWC within the publisher"
// @Security BearerAuth
// @Router /works [post]
func (h *workHandler) createWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWork", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	work, writers, err := h.workService.CreateWork(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkResponse(work, writers))
}

// listWorks godoc
// @Summary List works
// @Tags works
// @Produce json
// @Param registrationStatus query string false "Filter by registration status" Enums(draft, pending, registered, published, archived)
// @Param genre query string false "Filter by genre"
// @Param language query string false "Filter by language code"
// @Param search query string false "Title substring filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListWorksResponse
// @Security BearerAuth
// @Router /works [get]
func (h *workHandler) listWorks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListWorksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	works, total, err := h.workService.ListWorks(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListWorksResponse(works, total, params.Limit, params.Offset))
}

// getWork godoc
// @Summary Get a work with its writer credits
// @Tags works
// @Produce json
// @Param work_id path string true "Work ID"
// @Success 200 {object} dto.WorkResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /works/{work_id} [get]
func (h *workHandler) getWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	work, writers, err := h.workService.GetWorkByID(c.Request.Context(), c.Param("work_id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkResponse(work, writers))
}

// updateWork godoc
// @Summary Update a work
// @Description Updates a work. Title, ISWC and writers are locked once the work is registered.
// @Tags works
// @Accept json
// @Produce json
// @Param work_id path string true "Work ID"
// @Param work body dto.UpdateWorkRequest true "Fields to update"
// @Success 200 {object} dto.WorkResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /works/{work_id} [put]
func (h *workHandler) updateWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	work, err := h.workService.UpdateWork(c.Request.Context(), c.Param("work_id"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkResponse(work, nil))
}

// deleteWork godoc
// @Summary Delete a work
// @Description Removes a work and cascades to its writer credits and recordings.
// @Tags works
// @Param work_id path string true "Work ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /works/{work_id} [delete]
func (h *workHandler) deleteWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.workService.DeleteWork(c.Request.Context(), c.Param("work_id"), userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// replaceWriters godoc
// @Summary Replace a work's writer credits
// @Description Swaps the full writer set in one transaction. Credit uniqueness is checked at commit.
// @Tags works
// @Accept json
// @Produce json
// @Param work_id path string true "Work ID"
// @Param writers body dto.ReplaceWorkWritersRequest true "New writer set"
// @Success 200 {object} dto.WorkResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /works/{work_id}/writers [put]
func (h *workHandler) replaceWriters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceWorkWritersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	workID := c.Param("work_id")
	writers, err := h.workService.ReplaceWorkWriters(c.Request.Context(), workID, req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	work, _, err := h.workService.GetWorkByID(c.Request.Context(), workID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkResponse(work, writers))
}

// checkDuplicates godoc
// @Summary Scan for duplicate works
// @Description Scores existing works against a title and optional ISWC. Matches are review candidates, never merges.
// @Tags works
// @Produce json
// @Param title query string false "Title to check"
// @Param iswc query string false "ISWC to check"
// @Param threshold query number false "Similarity threshold (0,1]" default(0.85)
// @Success 200 {object} dto.DuplicateScanResponse
// @Security BearerAuth
// @Router /works/check-duplicates [get]
func (h *workHandler) checkDuplicates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.DuplicateScanParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Threshold == 0 {
		params.Threshold = validation.DefaultDuplicateThreshold
	}

	matches, err := h.workService.CheckWorkDuplicates(c.Request.Context(), c.Query("title"), c.Query("iswc"), params.Threshold)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDuplicateScanResponse(matches))
}
