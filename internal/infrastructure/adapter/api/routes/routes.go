package routes

import (
	coreport "github.com/amirhossein-jamali/numduration/internal/domain/port/core"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/numduration/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, durationHandler *handler.DurationHandler) {
	router.GET("/health", handler.Health)

	v1 := router.Group("/v1")
	{
		// GET /v1/units
		v1.GET("/units", durationHandler.ListUnits)

		durations := v1.Group("/durations")
		{
			// GET /v1/durations/:unit/:value
			durations.GET("/:unit/:value", durationHandler.ConvertPath)

			// POST /v1/durations/convert
			durations.POST("/convert", durationHandler.Convert)

			// POST /v1/durations/shift
			durations.POST("/shift", durationHandler.Shift)
		}
	}
}

// SetupMetrics exposes the collected metrics at path
func SetupMetrics(router *gin.Engine, m *metrics.Metrics, path string) {
	router.GET(path, gin.WrapH(m.Handler()))
}

// SetupMiddlewares configures global middlewares for the API. m may be nil
// when metrics are disabled. Panic recovery runs innermost so that a recovered
// request is still logged and counted as a 500.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, clock coreport.TimeProvider, m *metrics.Metrics) {
	router.Use(middleware.Logger(logger, clock))
	if m != nil {
		router.Use(m.Middleware(clock))
	}
	router.Use(middleware.CORS())
	router.Use(middleware.ErrorHandler(logger))
}
