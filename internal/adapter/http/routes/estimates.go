package routes

import (
	"nishad_gateway/internal/adapter/http/handlers"
	"nishad_gateway/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
)

func addEstimateRoutes(rg *gin.RouterGroup, estimateHandler *handlers.EstimateHandler, limiter *middleware.IPRateLimiter) {
	estimates := rg.Group(PathEstimates, limiter.Middleware())
	{
		estimates.POST("", estimateHandler.Calculate)
		estimates.POST("/report", estimateHandler.DownloadReport)
	}
}
