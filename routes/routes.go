package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"glowspa/handlers"
	"glowspa/middleware"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, ah *handlers.AuthHandler) {
	api := r.Group("/api/users")
	{
		api.POST("/register", ah.Register)
		api.POST("/login", ah.Login)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.PUT("/me", ah.UpdateProfile)
		api.PUT("/fcm-token", ah.UpdateFCMToken)
	}
}

// RegisterCatalogRoutes registers public catalog reads and appointment views.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", ch.ListServices)
		api.GET("/room-types", ch.ListRoomTypes)
	}

	appts := r.Group("/api/appointments")
	{
		appts.Use(middleware.JWTAuthMiddleware())
		appts.GET("", ch.ListMyAppointments)
		appts.GET("/:id", ch.GetAppointment)
	}

	schedule := r.Group("/api/schedule")
	{
		schedule.Use(middleware.JWTAuthMiddleware(), middleware.StaffOnlyMiddleware())
		schedule.GET("", ch.ListUpcomingAppointments)
	}
}

// RegisterAdminRoutes sets up staff-only catalog management.
func RegisterAdminRoutes(r *gin.Engine, ah *handlers.AdminHandler) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.StaffOnlyMiddleware())
		adminGroup.POST("/services", ah.CreateService)
		adminGroup.PUT("/services/:id", ah.UpdateService)
		adminGroup.DELETE("/services/:id", ah.DeleteService)
		adminGroup.POST("/services/:id/image", ah.UploadServiceImage)
		adminGroup.GET("/services/:id/image-url", ah.GetServiceImageURL)
		adminGroup.PUT("/room-types", ah.UpsertRoomType)
		adminGroup.DELETE("/room-types/:type", ah.DeleteRoomType)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm GlowSpa"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, ah *handlers.AuthHandler, ch *handlers.CatalogHandler, adh *handlers.AdminHandler, wh *handlers.BookingWizardHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, ah)
	RegisterCatalogRoutes(r, ch)
	RegisterAdminRoutes(r, adh)
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, wh)
}
