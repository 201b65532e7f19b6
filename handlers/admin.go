package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Legacyofall/lyran-api/config"
	"github.com/Legacyofall/lyran-api/models"
	"github.com/Legacyofall/lyran-api/services"
)

type AdminHandler struct {
	service *services.BookingService
	config  *config.Config
}

func NewAdminHandler(service *services.BookingService, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		service: service,
		config:  cfg,
	}
}

func (h *AdminHandler) GetAllBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	bookings, err := h.service.RecentBookings(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to fetch bookings",
		})
		return
	}

	c.JSON(http.StatusOK, models.ListBookingsResponse{
		OK:       true,
		Bookings: bookings,
	})
}
