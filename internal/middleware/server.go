package middleware

import (
	"log/slog"
	"time"

	"portfolio_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDMiddleware tags every request and response with an id.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// LoggingMiddleware emits one structured log line per request.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		fields := []any{
			slog.String("client_ip", c.ClientIP()),
			slog.Int("status", c.Writer.Status()),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Duration("duration", duration),
			slog.Int("size_bytes", c.Writer.Size()),
		}
		if id, ok := c.Get("requestID"); ok {
			fields = append(fields, slog.Any("request_id", id))
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.GetLogger().Error("HTTP Server Error", fields...)
		case c.Writer.Status() >= 400:
			logger.GetLogger().Warn("HTTP Client Error", fields...)
		default:
			logger.GetLogger().Info("HTTP Request", fields...)
		}
	}
}
