package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"

	"github.com/BruksfildServices01/client-registry/internal/logging"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger anexa ao contexto um logger com req_id e registra uma linha por requisição.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = ulid.Make().String()
		}
		c.Writer.Header().Set(HeaderRequestID, reqID)

		ctx := logging.WithContext(c.Request.Context(), base.With(
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"remote_addr", c.ClientIP(),
		))
		ctx = logging.WithRequestID(ctx, reqID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		logging.FromContext(ctx).Info("http_request",
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"user_agent", c.Request.UserAgent(),
		)
	}
}
