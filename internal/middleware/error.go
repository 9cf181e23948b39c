package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "cofre/internal/errors"
	"cofre/internal/logger"
)

// abortWithAppError stops the chain with the {"error": {code, message}} body
// handlers produce.
func abortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// ErrorHandler renders the last error pushed with c.Error once the handler
// returns. AppErrors keep their code; anything else becomes INTERNAL_ERROR.
// Internal causes are logged with the request id and never sent to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		log := logger.Named("http").With(
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			log.Errorw("unhandled error", "error", err.Error())
			abortWithAppError(c, apperrors.ErrInternalServer)
			return
		}
		if appErr.Internal != nil {
			log.Errorw("request failed", "code", appErr.Code, "internal", appErr.Internal.Error())
		}
		abortWithAppError(c, appErr)
	}
}
