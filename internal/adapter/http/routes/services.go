package routes

import (
	"nishad_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices    = "/services"
	PathSubServices = "/subservices"
)

func addServiceRoutes(
	rg *gin.RouterGroup,
	serviceHandler *handlers.ServiceHandler,
	subServiceHandler *handlers.SubServiceHandler,
	requireAdmin, optionalAdmin gin.HandlerFunc,
) {
	services := rg.Group(PathServices)
	{
		// public
		services.GET("/menu", serviceHandler.Menu)
		services.GET("/slug/:slug", serviceHandler.GetBySlug)
		services.GET("/:id/subservices", optionalAdmin, subServiceHandler.ListByService)

		services.GET("", requireAdmin, serviceHandler.List)
		services.POST("", requireAdmin, serviceHandler.Create)
		services.PUT("/:id", requireAdmin, serviceHandler.Update)
		services.DELETE("/:id", requireAdmin, serviceHandler.Delete)
		services.POST("/:id/subservices", requireAdmin, subServiceHandler.Create)
	}
}

func addSubServiceRoutes(
	rg *gin.RouterGroup,
	subServiceHandler *handlers.SubServiceHandler,
	contentHandler *handlers.ContentHandler,
	requireAdmin, optionalAdmin gin.HandlerFunc,
) {
	subServices := rg.Group(PathSubServices)
	{
		subServices.GET("/:id/content", optionalAdmin, contentHandler.Get)

		subServices.GET("/:id", requireAdmin, subServiceHandler.Get)
		subServices.PUT("/:id", requireAdmin, subServiceHandler.Update)
		subServices.DELETE("/:id", requireAdmin, subServiceHandler.Delete)
		subServices.PUT("/:id/content", requireAdmin, contentHandler.Save)
	}
}
