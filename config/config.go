package config

import (
	"os"
	"strings"
)

type Config struct {
	SupabaseURL        string
	SupabaseServiceKey string
	SwishNumber        string
	Timezone           string
	Port               string
	Environment        string
	AllowedOrigins     []string
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	return &Config{
		SupabaseURL:        os.Getenv("SUPABASE_URL"),
		SupabaseServiceKey: os.Getenv("SUPABASE_SERVICE_ROLE_KEY"),
		SwishNumber:        getEnvOrDefault("SWISH_NUMBER", "123 456 78 90"),
		Timezone:           getEnvOrDefault("TIMEZONE", "Europe/Stockholm"),
		Port:               getEnvOrDefault("PORT", "3000"),
		Environment:        getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins:     allowedOrigins,
	}
}

// HasStore reports whether a Supabase backend is configured. Without one the
// API still runs, but bookings are not persisted and availability is empty.
func (c *Config) HasStore() bool {
	return c.SupabaseURL != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
