package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/unitutor/internal/app/models/dto"
)

// Recovery turns a panic into a structured 500 response
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("requestID", c.GetString(ContextRequestID)).
			Str("stack", string(debug.Stack())).
			Msg("Panic recovered")

		detail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, internalServerErrorMessage).
			WithSeverity(dto.ErrorSeverityCritical)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(detail))
	})
}
