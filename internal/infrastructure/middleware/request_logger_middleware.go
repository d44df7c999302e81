package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"viewtube/pkg/logger"
)

// RequestLoggerMiddleware stamps each request with an identifier, echoes it
// in the X-Request-ID header and logs the request on completion.
func RequestLoggerMiddleware(zapLogger *zap.Logger) gin.HandlerFunc {
	ctxLogger := logger.NewContextLogger(zapLogger)

	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), logger.RequestIDKey, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		ctxLogger.LogRequest(ctx, c.Request.Method, c.FullPath(),
			c.Writer.Status(), time.Since(start).Milliseconds())
	}
}
