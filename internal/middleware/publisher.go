package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/opusregistry/catalog_backend/pkg/tenantctx"
)

// PublisherHeader is the request header that selects the tenant for the
// request. Every catalog route requires it; routes without it fail closed.
const PublisherHeader = "X-Publisher-ID"

// PublisherContextMiddleware creates a Gin middleware handler that reads
// the publisher ID from the request header and binds it to the request
// context. Downstream repositories refuse to open a transaction without
// this binding, so a missing or malformed header can never widen row
// visibility.
func PublisherContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		publisherID := c.GetHeader(PublisherHeader)
		if publisherID == "" {
			logger.Warn("Publisher header missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": PublisherHeader + " header required"})
			return
		}
		if _, err := uuid.Parse(publisherID); err != nil {
			logger.Warn("Publisher header is not a UUID", slog.String("publisher_id", publisherID))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": PublisherHeader + " must be a UUID"})
			return
		}

		// Echo the resolved tenant so clients can confirm which context
		// the response was produced under.
		c.Header(PublisherHeader, publisherID)

		enrichedLogger := logger.With(slog.String("publisher_id", publisherID))
		ctx := tenantctx.WithPublisherID(c.Request.Context(), publisherID)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)
		c.Set(string(loggerKey), enrichedLogger)

		c.Next()
	}
}
