package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Legacyofall/lyran-api/config"
	"github.com/Legacyofall/lyran-api/handlers"
	"github.com/Legacyofall/lyran-api/models"
	"github.com/Legacyofall/lyran-api/services"
)

func SetupRoutes(router *gin.Engine, service *services.BookingService, cfg *config.Config) {
	// Initialize handlers
	bookingHandler := handlers.NewBookingHandler(service, cfg)
	adminHandler := handlers.NewAdminHandler(service, cfg)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.Health(cfg))
		api.GET("/availability", bookingHandler.GetAvailability)
		api.POST("/bookings", bookingHandler.CreateBooking)

		admin := api.Group("/admin")
		{
			admin.GET("/bookings", adminHandler.GetAllBookings)
		}
	}

	// Unknown /api paths answer in the same envelope as every other error.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error: "Not found",
			})
			return
		}
		c.Status(http.StatusNotFound)
	})
}
