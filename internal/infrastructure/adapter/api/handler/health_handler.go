package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Health handles the GET /health endpoint
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
