package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Legacyofall/lyran-api/config"
	"github.com/Legacyofall/lyran-api/models"
	"github.com/Legacyofall/lyran-api/services"
)

type BookingHandler struct {
	service *services.BookingService
	config  *config.Config
}

func NewBookingHandler(service *services.BookingService, cfg *config.Config) *BookingHandler {
	return &BookingHandler{
		service: service,
		config:  cfg,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	booking, err := h.service.CreateBooking(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) || errors.Is(err, services.ErrInvalidTimeSpec) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to create booking",
		})
		return
	}

	c.JSON(http.StatusOK, models.CreateBookingResponse{
		OK:      true,
		Booking: booking,
	})
}

func (h *BookingHandler) GetAvailability(c *gin.Context) {
	resourceType := c.Query("resource_type")
	date := c.Query("date")

	if resourceType == "" || date == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "resource_type and date are required",
		})
		return
	}

	busy, err := h.service.Availability(resourceType, date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTimeSpec) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to fetch availability",
		})
		return
	}

	c.JSON(http.StatusOK, models.AvailabilityResponse{
		OK:     true,
		Busy:   busy,
		Blocks: []models.BusyInterval{},
	})
}
