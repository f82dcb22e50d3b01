package middleware

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/numduration/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger middleware logs every request once it has been served. Client errors
// are logged at warn and server errors at error level.
func Logger(logger coreport.Logger, clock coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := clock.Now()
		path := c.Request.URL.Path

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":      c.Request.Method,
			"path":        path,
			"route":       c.FullPath(),
			"status":      statusCode,
			"latency_us":  clock.Since(start).Microseconds(),
			"ip":          c.ClientIP(),
			"request_id":  c.GetHeader("X-Request-ID"),
			"errors":      c.Errors.Errors(),
			"status_text": statusText(statusCode),
		}

		switch {
		case statusCode >= http.StatusInternalServerError:
			logger.Error("Request failed", fields)
		case statusCode >= http.StatusBadRequest:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}

// statusText returns the class of the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
