// Package middleware holds the gin middleware shared by every route group.
package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderXRequestID = "X-Request-ID"
	ContextRequestID = "requestID"
)

type loggerKey struct{}

// RequestID reuses the caller's X-Request-ID or generates one, echoes it on
// the response and stores a request-scoped logger in the request context.
func RequestID(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextRequestID, requestID)
		c.Header(HeaderXRequestID, requestID)

		reqLogger := logger.With(slog.String("request_id", requestID))
		ctx := context.WithValue(c.Request.Context(), loggerKey{}, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// LoggerFrom returns the request-scoped logger, or slog.Default() outside a request.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
