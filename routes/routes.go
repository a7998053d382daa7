package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"turfbook/handlers"
	"turfbook/middleware"
)

// RegisterPublicRoutes registers the customer-facing booking endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/site", hb.GetSiteHandler)
		api.GET("/slots", hb.GetSlotsHandler)
		api.POST("/bookings", hb.CreateBookingHandler)
		api.POST("/waitlist", hb.JoinWaitlistHandler)
	}
}

// RegisterAdminRoutes registers the operator endpoints behind JWT auth.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.AdminLoginHandler)

	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.JWTAuthAdminMiddleware())

		admin.GET("/bookings", hb.ListBookingsHandler)
		admin.GET("/bookings/:id", hb.GetBookingHandler)
		admin.PUT("/bookings/:id/confirm", hb.ConfirmBookingHandler)
		admin.PUT("/bookings/:id/cancel", hb.CancelBookingHandler)
		admin.DELETE("/bookings/:id", hb.DeleteBookingHandler)
		admin.DELETE("/bookings", hb.PurgeBookingsHandler)

		admin.GET("/waitlist", hb.ListWaitlistHandler)
		admin.DELETE("/waitlist/:id", hb.DeleteWaitlistEntryHandler)
		admin.POST("/waitlist/:id/convert", hb.ConvertWaitlistEntryHandler)

		admin.GET("/analytics", hb.AnalyticsSummaryHandler)
		admin.GET("/notifications", hb.NotificationsFeedHandler)
		admin.POST("/site/reload", hb.ReloadSiteHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
