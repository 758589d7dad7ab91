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

// songwriterHandler handles HTTP requests related to songwriters.
type songwriterHandler struct {
	songwriterService portssvc.SongwriterSvcFacade
}

// RegisterSongwriterRoutes registers routes related to songwriters.
func RegisterSongwriterRoutes(rg *gin.RouterGroup, songwriterService portssvc.SongwriterSvcFacade) {
	h := &songwriterHandler{songwriterService: songwriterService}

	songwriters := rg.Group("/songwriters")
	{
		songwriters.POST("", h.createSongwriter)
		songwriters.GET("", h.listSongwriters)
		songwriters.POST("/check-duplicates", h.checkDuplicates)
		songwriters.POST("/swap-ipis", h.swapIPIs)
		songwriters.GET("/:songwriter_id", h.getSongwriter)
		songwriters.PUT("/:songwriter_id", h.updateSongwriter)
		songwriters.DELETE("/:songwriter_id", h.deleteSongwriter)
	}
}

// createSongwriter godoc
// @Summary Register a songwriter
// @Description Registers a songwriter for the current publisher after validating identifiers.
// @Tags songwriters
// @Accept json
// @Produce json
// @Param songwriter body dto.CreateSongwriterRequest true "Songwriter details"
// @Success 201 {object} dto.SongwriterResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate IPI or email within the publisher"
// @Security BearerAuth
// @Router /songwriters [post]
func (h *songwriterHandler) createSongwriter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSongwriterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSongwriter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	songwriter, err := h.songwriterService.CreateSongwriter(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSongwriterResponse(songwriter))
}

// listSongwriters godoc
// @Summary List songwriters
// @Description Retrieves a filtered, paginated list of the current publisher's songwriters.
// @Tags songwriters
// @Produce json
// @Param status query string false "Filter by status" Enums(active, inactive, deceased)
// @Param search query string false "Name substring filter"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListSongwritersResponse
// @Security BearerAuth
// @Router /songwriters [get]
func (h *songwriterHandler) listSongwriters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSongwritersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	songwriters, total, err := h.songwriterService.ListSongwriters(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListSongwritersResponse(songwriters, total, params.Limit, params.Offset))
}

// getSongwriter godoc
// @Summary Get a songwriter
// @Tags songwriters
// @Produce json
// @Param songwriter_id path string true "Songwriter ID"
// @Success 200 {object} dto.SongwriterResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /songwriters/{songwriter_id} [get]
func (h *songwriterHandler) getSongwriter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	songwriter, err := h.songwriterService.GetSongwriterByID(c.Request.Context(), c.Param("songwriter_id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSongwriterResponse(songwriter))
}

// updateSongwriter godoc
// @Summary Update a songwriter
// @Tags songwriters
// @Accept json
// @Produce json
// @Param songwriter_id path string true "Songwriter ID"
// @Param songwriter body dto.UpdateSongwriterRequest true "Fields to update"
// @Success 200 {object} dto.SongwriterResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /songwriters/{songwriter_id} [put]
func (h *songwriterHandler) updateSongwriter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateSongwriterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	songwriter, err := h.songwriterService.UpdateSongwriter(c.Request.Context(), c.Param("songwriter_id"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSongwriterResponse(songwriter))
}

// deleteSongwriter godoc
// @Summary Delete a songwriter
// @Description Removes a songwriter and cascades to their writer credits.
// @Tags songwriters
// @Param songwriter_id path string true "Songwriter ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /songwriters/{songwriter_id} [delete]
func (h *songwriterHandler) deleteSongwriter(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.songwriterService.DeleteSongwriter(c.Request.Context(), c.Param("songwriter_id"), userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// checkDuplicates godoc
// @Summary Scan for duplicate songwriters
// @Description Scores existing songwriters against the submitted details. Matches are review candidates, never merges.
// @Tags songwriters
// @Accept json
// @Produce json
// @Param songwriter body dto.CreateSongwriterRequest true "Songwriter details to check"
// @Param threshold query number false "Similarity threshold (0,1]" default(0.85)
// @Success 200 {object} dto.DuplicateScanResponse
// @Security BearerAuth
// @Router /songwriters/check-duplicates [post]
func (h *songwriterHandler) checkDuplicates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSongwriterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	var params dto.DuplicateScanParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	if params.Threshold == 0 {
		params.Threshold = validation.DefaultDuplicateThreshold
	}

	matches, err := h.songwriterService.CheckSongwriterDuplicates(c.Request.Context(), req, params.Threshold)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDuplicateScanResponse(matches))
}

// swapIPIsRequest names the two songwriters whose IPI numbers trade
// places.
type swapIPIsRequest struct {
	SongwriterIDA string `json:"songwriterIDA" binding:"required,uuid"`
	SongwriterIDB string `json:"songwriterIDB" binding:"required,uuid"`
}

// swapIPIs godoc
// @Summary Swap the IPI numbers of two songwriters
// @Description Exchanges two songwriters' IPI numbers atomically in one transaction.
// @Tags songwriters
// @Accept json
// @Param swap body swapIPIsRequest true "Songwriter pair"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /songwriters/swap-ipis [post]
func (h *songwriterHandler) swapIPIs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req swapIPIsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.songwriterService.SwapSongwriterIPIs(c.Request.Context(), req.SongwriterIDA, req.SongwriterIDB, userID); err != nil {
		respondError(c, logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
