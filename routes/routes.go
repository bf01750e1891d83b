package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/config"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/controllers"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/middleware"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/repositories"
	"github.com/m3pixel-crypto/mecanicomotosaodomicilio/services"
)

// SetupCORS answers pre-flight requests with an empty body and permissive
// headers.
func SetupCORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, mailer services.Mailer) {
	// Repositories
	garageRepo := repositories.NewGarageRepository(db)
	historyRepo := repositories.NewHistoryRepository(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, mailer, garageRepo)
	garageController := controllers.NewGarageController(db, garageRepo)
	historyController := controllers.NewHistoryController(db, historyRepo)
	bookingController := controllers.NewBookingController(cfg)
	notificationController := controllers.NewNotificationController(mailer)
	contentController := controllers.NewContentController(cfg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public, rate limited)
	auth := v1.Group("/auth")
	auth.Use(middleware.RateLimit(30, 10))
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
		auth.POST("/reset-password", authController.ResetPassword)
	}

	// Site content (public)
	content := v1.Group("/content")
	{
		content.GET("/services", contentController.GetServices)
		content.GET("/testimonials", contentController.GetTestimonials)
		content.GET("/tips", contentController.GetTips)
		content.GET("/business", contentController.GetBusinessInfo)
	}

	// Booking composer (public)
	v1.POST("/bookings/compose", bookingController.ComposeBooking)

	// Outbound notification functions (public, rate limited)
	notifications := v1.Group("/notifications")
	notifications.Use(middleware.RateLimit(10, 5))
	{
		notifications.POST("/contact", notificationController.SendContactNotification)
		notifications.POST("/welcome", notificationController.SendWelcomeNotification)
	}

	// Protected routes (client area)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/me", authController.Me)

		// Garage routes
		motorcycles := protected.Group("/motorcycles")
		{
			motorcycles.GET("", garageController.GetMotorcycles)
			motorcycles.POST("", garageController.CreateMotorcycle)
			motorcycles.PUT("/:id", garageController.UpdateMotorcycle)
			motorcycles.DELETE("/:id", garageController.DeleteMotorcycle)

			// Service history, scoped to one motorcycle
			motorcycles.GET("/:id/services", historyController.GetServiceRecords)
			motorcycles.POST("/:id/services", historyController.CreateServiceRecord)
		}

		protected.DELETE("/services/:id", historyController.DeleteServiceRecord)
	}
}
