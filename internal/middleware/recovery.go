package middleware

import (
	"io"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/footballdb/internal/response"
)

// Recovery turns handler panics into 500 INTERNAL_ERROR responses. Gin's own
// recovery handles broken client connections; its output is discarded in
// favour of a structured entry.
func Recovery(logger *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Desugar().Error("panic recovered",
			zap.Any("error", recovered),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.ByteString("stack", debug.Stack()),
		)
		response.Internal(c)
		c.Abort()
	})
}
