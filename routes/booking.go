package routes

import (
	"github.com/gin-gonic/gin"

	"glowspa/handlers"
	"glowspa/middleware"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, wh *handlers.BookingWizardHandler) {
	booking := r.Group("/api/booking")
	{
		booking.Use(middleware.JWTAuthMiddleware())
		booking.POST("/session", wh.StartSession)
		booking.GET("/session/:sessionID", wh.GetSession)
		booking.PUT("/session/:sessionID/service", wh.SelectService)
		booking.PUT("/session/:sessionID/schedule", wh.SelectSchedule)
		booking.PUT("/session/:sessionID/room", wh.SelectRoom)
		booking.PUT("/session/:sessionID/customer", wh.SetCustomerDetails)
		booking.POST("/session/:sessionID/back", wh.Back)
		booking.POST("/session/:sessionID/confirm", wh.ConfirmBooking)
		booking.POST("/session/:sessionID/verify-payment", wh.VerifyPayment)
		booking.POST("/session/:sessionID/reset", wh.Reset)
		booking.DELETE("/session/:sessionID", wh.CancelSession)
	}
}
