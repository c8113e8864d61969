package server

import (
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

// RequestIDMiddleware stamps every request with a UUID for log correlation,
// the way the pack's gateway tags proxied requests.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// LogMiddleware logs one structured line per request at Info, with Warn
// reserved for 4xx and 5xx responses.
func LogMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := logrus.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}
		entry := logger.WithFields(fields)
		if c.Writer.Status() >= 400 {
			entry.Warn("request completed")
		} else {
			entry.Info("request completed")
		}
	}
}

// GzipMiddleware compresses /v1/solve responses, which run tens of KB once
// a preprocessed player is echoed back.
func GzipMiddleware() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression)
}
