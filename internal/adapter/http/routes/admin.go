package routes

import (
	"nishad_gateway/internal/adapter/http/handlers"
	"nishad_gateway/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAdmin   = "/admin"
	PathLeads   = "/leads"
	PathUploads = "/upload"
)

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminAuthHandler, requireAdmin gin.HandlerFunc, loginLimiter *middleware.IPRateLimiter) {
	admin := rg.Group(PathAdmin)
	{
		admin.POST("/login", loginLimiter.Middleware(), h.Login)
		admin.POST("/refresh", h.Refresh)
		admin.POST("/logout", h.Logout)
		admin.GET("/me", requireAdmin, h.Me)
	}
}

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler, requireAdmin gin.HandlerFunc) {
	leads := rg.Group(PathLeads, requireAdmin)
	{
		leads.GET("", h.List)
		leads.GET("/stats", h.Stats)
		leads.GET("/export", h.Export)
		leads.GET("/:id", h.Get)
		leads.PATCH("/:id/status", h.UpdateStatus)
	}
}

func addUploadRoutes(rg *gin.RouterGroup, h *handlers.UploadHandler, requireAdmin gin.HandlerFunc) {
	uploads := rg.Group(PathUploads, requireAdmin)
	{
		uploads.POST("/image", h.UploadImage)
		uploads.GET("/signed", h.SignedUpload)
	}
}
