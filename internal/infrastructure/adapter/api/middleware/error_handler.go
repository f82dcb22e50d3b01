package middleware

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/numduration/internal/domain/error"
	coreport "github.com/amirhossein-jamali/numduration/internal/domain/port/core"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler middleware turns a panic in a handler into a JSON 500 response
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"panic":      fmt.Sprint(r),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"request_id": c.GetHeader("X-Request-ID"),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					domainerr.CodeInternalServer, "Internal server error",
				))
			}
		}()

		c.Next()
	}
}
