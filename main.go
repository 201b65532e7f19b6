package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Legacyofall/lyran-api/config"
	"github.com/Legacyofall/lyran-api/middleware"
	"github.com/Legacyofall/lyran-api/routes"
	"github.com/Legacyofall/lyran-api/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// Initialize configuration
	cfg := config.NewConfig()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("Invalid TIMEZONE %q: %v", cfg.Timezone, err)
	}

	refs := services.UUIDGenerator{}

	// Select the booking store: Supabase when configured, otherwise the
	// non-durable fallback.
	var store services.BookingStore
	if cfg.HasStore() {
		store = services.NewSupabaseStore(config.NewSupabaseClient(cfg))
	} else {
		log.Println("Warning: SUPABASE_URL not set, bookings will not be persisted")
		store = services.NewNoStore(refs)
	}

	bookingService := services.NewBookingService(store, refs, loc, cfg.SwishNumber)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())

	// Setup CORS middleware
	router.Use(config.CORSMiddleware(cfg))

	// Setup routes
	routes.SetupRoutes(router, bookingService, cfg)

	// Start server
	log.Printf("API running on http://localhost:%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
