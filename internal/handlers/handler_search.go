package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/opusregistry/catalog_backend/internal/core/ports/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
	"github.com/opusregistry/catalog_backend/internal/middleware"
)

// searchHandler handles full-text search requests over the tenant's
// catalog.
type searchHandler struct {
	searchService portssvc.SearchSvc
}

// registerSearchRoutes registers the per-tenant search routes.
func registerSearchRoutes(rg *gin.RouterGroup, searchService portssvc.SearchSvc) {
	h := &searchHandler{searchService: searchService}

	search := rg.Group("/search")
	{
		search.GET("/works", h.searchWorks)
		search.GET("/songwriters", h.searchSongwriters)
		search.GET("/recordings", h.searchRecordings)
	}
}

// searchWorks godoc
// @Summary Search works
// @Description Full-text search over the current publisher's works.
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} dto.ListWorksResponse
// @Security BearerAuth
// @Router /search/works [get]
func (h *searchHandler) searchWorks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	works, err := h.searchService.SearchWorks(c.Request.Context(), params.Query, params.Limit)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorksResponse(works, len(works), params.Limit, 0))
}

// searchSongwriters godoc
// @Summary Search songwriters
// @Description Full-text search over the current publisher's songwriters.
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} dto.ListSongwritersResponse
// @Security BearerAuth
// @Router /search/songwriters [get]
func (h *searchHandler) searchSongwriters(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	songwriters, err := h.searchService.SearchSongwriters(c.Request.Context(), params.Query, params.Limit)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListSongwritersResponse(songwriters, len(songwriters), params.Limit, 0))
}

// searchRecordings godoc
// @Summary Search recordings
// @Description Matches the current publisher's recordings by title and artist name.
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results" default(20)
// @Success 200 {object} dto.ListRecordingsResponse
// @Security BearerAuth
// @Router /search/recordings [get]
func (h *searchHandler) searchRecordings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	recordings, err := h.searchService.SearchRecordings(c.Request.Context(), params.Query, params.Limit)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecordingsResponse(recordings, len(recordings), params.Limit, 0))
}
