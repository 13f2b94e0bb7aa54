// Package middleware provides HTTP middleware functions.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger logs one entry per request: error level for 5xx, warn for 4xx,
// info otherwise. Optional fields are left out when empty.
func Logger(logger *zap.SugaredLogger) gin.HandlerFunc {
	log := logger.Desugar()

	return func(c *gin.Context) {
		start := time.Now()
		path, query := c.Request.URL.Path, c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		ce := log.Check(levelFor(status), "HTTP request")
		if ce == nil {
			return
		}

		fields := make([]zap.Field, 0, 8)
		fields = append(fields,
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int64("latency_ms", time.Since(start).Milliseconds()),
			zap.String("client_ip", c.ClientIP()),
		)
		if id := c.GetString(RequestIDKey); id != "" {
			fields = append(fields, zap.String("request_id", id))
		}
		if query != "" {
			fields = append(fields, zap.String("query", query))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		ce.Write(fields...)
	}
}

func levelFor(status int) zapcore.Level {
	switch {
	case status >= 500:
		return zapcore.ErrorLevel
	case status >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
