package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/internal/middleware"
)

// publisherHandler handles HTTP requests related to publishers.
type publisherHandler struct {
	publisherService portssvc.PublisherSvcFacade
}

// registerPublisherCreation registers the tenant-free provisioning route.
// Creating a publisher cannot require a publisher context, since the
// tenant does not exist yet.
func registerPublisherCreation(rg *gin.RouterGroup, publisherService portssvc.PublisherSvcFacade) {
	h := &publisherHandler{publisherService: publisherService}
	rg.POST("/publishers", h.createPublisher)
}

// registerPublisherRoutes registers the tenant-scoped publisher routes.
func registerPublisherRoutes(rg *gin.RouterGroup, publisherService portssvc.PublisherSvcFacade) {
	h := &publisherHandler{publisherService: publisherService}

	publishers := rg.Group("/publishers")
	{
		publishers.GET("/:publisher_id", h.getPublisher)
		publishers.PUT("/:publisher_id", h.updatePublisher)
	}
}

// createPublisher godoc
// @Summary Provision a publisher
// @Description Creates a new publisher tenant. Requires no publisher context.
// @Tags publishers
// @Accept json
// @Produce json
// @Param publisher body dto.CreatePublisherRequest true "Publisher details"
// @Success 201 {object} dto.PublisherResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Subdomain already taken"
// @Security BearerAuth
// @Router /publishers [post]
func (h *publisherHandler) createPublisher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePublisher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	publisher, err := h.publisherService.CreatePublisher(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Publisher created", slog.String("publisher_id", publisher.PublisherID))
	c.JSON(http.StatusCreated, dto.ToPublisherResponse(publisher))
}

// getPublisher godoc
// @Summary Get the current publisher
// @Description Retrieves a publisher. Row visibility confines the lookup to the current tenant.
// @Tags publishers
// @Produce json
// @Param publisher_id path string true "Publisher ID"
// @Success 200 {object} dto.PublisherResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /publishers/{publisher_id} [get]
func (h *publisherHandler) getPublisher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	publisher, err := h.publisherService.GetPublisherByID(c.Request.Context(), c.Param("publisher_id"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPublisherResponse(publisher))
}

// updatePublisher godoc
// @Summary Update the current publisher
// @Tags publishers
// @Accept json
// @Produce json
// @Param publisher_id path string true "Publisher ID"
// @Param publisher body dto.UpdatePublisherRequest true "Fields to update"
// @Success 200 {object} dto.PublisherResponse
// @Failure 403 {object} ErrorResponse "Publisher context does not match"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /publishers/{publisher_id} [put]
func (h *publisherHandler) updatePublisher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePublisherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	publisher, err := h.publisherService.UpdatePublisher(c.Request.Context(), c.Param("publisher_id"), req, userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPublisherResponse(publisher))
}
