package api

import (
	v1 "github.com/flexprice/vanrental/internal/api/v1"
	"github.com/flexprice/vanrental/internal/config"
	"github.com/flexprice/vanrental/internal/logger"
	"github.com/flexprice/vanrental/internal/rest/middleware"
	"github.com/flexprice/vanrental/internal/types"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Health  *v1.HealthHandler
	Vehicle *v1.VehicleHandler
	Quote   *v1.QuoteHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, log *logger.Logger) *gin.Engine {
	if cfg.Logging.Level != types.LogLevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.RecoveryWithWriter(log.GetGinLogger()),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(log),
		middleware.ErrorHandler(log),
	)

	router.GET("/health", handlers.Health.Health)

	public := router.Group("/v1")
	{
		public.GET("/vehicles", handlers.Vehicle.ListVehicles)

		quotes := public.Group("/quotes")
		{
			quotes.POST("", handlers.Quote.Quote)
			quotes.POST("/daily", handlers.Quote.QuoteDay)
		}
	}

	return router
}
