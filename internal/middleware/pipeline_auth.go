package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "cofre/internal/errors"
	"cofre/internal/logger"
)

// PipelineAuthMiddleware guards the endpoints an external scheduler calls to
// run recurrence batches. Callers present the shared key in X-API-Key; with no
// key configured the endpoints are disabled.
func PipelineAuthMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWithAppError(c, apperrors.ErrPipelineNotConfigured)
			return
		}
		if subtle.ConstantTimeCompare([]byte(c.GetHeader("X-API-Key")), []byte(apiKey)) != 1 {
			logger.Named("pipeline").Warnw("rejected scheduler call",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			abortWithAppError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
