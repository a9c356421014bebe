package delivery

import (
	"net/http"
	"time"

	"warehouse_api/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestLogger tags the request with an id and logs it on the way in and
// out. Error statuses are logged at warn or error level.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		start := time.Now()
		entry := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		})
		entry.WithField("ip", c.ClientIP()).Info("Request received")

		c.Next()

		status := c.Writer.Status()
		entry = entry.WithFields(logrus.Fields{
			"status":  status,
			"latency": time.Since(start).String(),
		})
		switch {
		case status >= http.StatusInternalServerError:
			entry.Errorf("Error %d at %s %s", status, c.Request.Method, c.Request.URL.Path)
		case status >= http.StatusBadRequest:
			entry.Warnf("Error %d at %s %s", status, c.Request.Method, c.Request.URL.Path)
		default:
			entry.Info("Request completed")
		}
	}
}

// Metrics records every request against its route pattern.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}

// Recovery is the last-resort net for panics escaping a handler.
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		requestLog(c, logger).Errorf("Internal Server Error: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, MessageResponse{Message: "Internal server error"})
	})
}

// ErrorHandler renders the last error attached to the context when nothing
// has been written yet.
func ErrorHandler(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		writeError(c, requestLog(c, logger), c.Errors.Last().Err)
	}
}

func requestLog(c *gin.Context, logger *logrus.Logger) logrus.FieldLogger {
	return logger.WithField("request_id", c.GetString(requestIDKey))
}
