package routes

import (
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/menu", handlers.ListMenu)
		public.GET("/qrcode", handlers.GetQRCode)
	}

	// ── Admin routes (shared-secret header) ────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AdminRequired())
	{
		admin.POST("/menu", handlers.CreateMenuItem)
		admin.PUT("/menu/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem)
	}
}
