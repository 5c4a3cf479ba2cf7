package routes

import (
	"net/http"
	"time"

	"superlife/handlers"
	"superlife/middleware"
	"superlife/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the public booking endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.GET("/availability", handlers.GetAvailability)
		bookingGroup.POST("", handlers.CreateBooking)
		bookingGroup.POST("/:id/cancel", handlers.CancelBooking)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.GET("/bookings", handlers.ListBookings)
		adminGroup.PATCH("/bookings/:id/status", handlers.UpdateBookingStatus)
		adminGroup.PATCH("/bookings/:id/reschedule", handlers.RescheduleBooking)
	}
}

// RegisterCalendarRoutes sets up the Google Calendar connect flow.
func RegisterCalendarRoutes(r *gin.Engine) {
	calendarGroup := r.Group("/api/calendar")
	{
		calendarGroup.GET("/auth", handlers.CalendarAuth)
		calendarGroup.GET("/callback", handlers.CalendarCallback)
		calendarGroup.GET("/status", handlers.CalendarStatus)
	}
}

// RegisterWebhookRoutes sets up inbound webhook endpoints. These sit outside
// the rate limiter so provider retries are never throttled.
func RegisterWebhookRoutes(r *gin.Engine) {
	r.POST("/api/webhooks/stripe", handlers.StripeWebhook)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health and webhooks register before the rate limiter so provider
	// retries and probes are never throttled.
	RegisterHealthRoute(r)
	RegisterWebhookRoutes(r)

	r.Use(middleware.RateLimitMiddleware())
	RegisterBookingRoutes(r)
	RegisterAdminRoutes(r)
	RegisterCalendarRoutes(r)
}
