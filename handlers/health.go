package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Legacyofall/lyran-api/config"
	"github.com/Legacyofall/lyran-api/models"
)

func Health(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			OK:          true,
			Service:     "lyran-api",
			SwishNumber: cfg.SwishNumber,
		})
	}
}
