package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-Id"
	ctxLogger       = "logger"
)

// RequestID tags every request with a uuid, echoes it in the response
// header, and stores a request-scoped logger carrying it for handlers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		c.Set(ctxLogger, slog.Default().With("request_id", id, "method", c.Request.Method, "path", c.Request.URL.Path))
		c.Next()
	}
}
