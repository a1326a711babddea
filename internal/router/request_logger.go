package router

import (
	"net/http"
	"time"

	"healthscope/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs every request through zap once the handler chain has
// finished. When the user loader attached a profile, its ID is included
// so a request can be tied back to a session.
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("clientIP", c.ClientIP()),
		}
		if user, exists := c.Get("user"); exists {
			if u, ok := user.(*models.User); ok {
				fields = append(fields, zap.Int("userID", u.ID))
			}
		}

		switch {
		case status >= http.StatusInternalServerError:
			log.Error("Request failed", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("Request rejected", fields...)
		case path == "/health":
			// Probes would drown out everything else, even at Debug.
		default:
			log.Debug("Request completed", fields...)
		}
	}
}
