package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/opusregistry/catalog_backend/internal/apperrors"
	"github.com/opusregistry/catalog_backend/internal/core/services"
	"github.com/opusregistry/catalog_backend/internal/dto"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError translates service errors into HTTP responses. Rule errors
// carry their findings into the body so clients see every problem at once.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var ruleErr *services.RuleError
	if errors.As(err, &ruleErr) {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: ruleErr.Findings})
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= 500 {
			logger.Error("Request failed", slog.String("error", err.Error()))
			c.JSON(appErr.Code, ErrorResponse{Error: "Internal server error"})
			return
		}
		c.JSON(appErr.Code, ErrorResponse{Error: appErr.Message})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "Resource already exists"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrNoPublisherContext):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Publisher context required"})
	default:
		logger.Error("Request failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
