package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the dashboard's runtime configuration.
type AppConfig struct {
	Port string

	// DefaultCity is fetched at startup and when geolocation fails.
	DefaultCity string

	// Hemisphere fixes the seasonal month mapping ("south" or "north").
	// It is deliberately a constant, never derived from coordinates.
	Hemisphere string

	// HTTPTimeout applies to every outbound provider call.
	HTTPTimeout time.Duration

	// GeolocationWait bounds how long a device-position request may take
	// before the default-city fallback kicks in.
	GeolocationWait time.Duration

	// ChartWindowHours is the hourly-prefix size the chart renders.
	ChartWindowHours int
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.DefaultCity = getenvDefault("DEFAULT_CITY", "Porto Alegre")

	hemisphere := getenvDefault("HEMISPHERE", "south")
	if hemisphere != "south" && hemisphere != "north" {
		return nil, fmt.Errorf("invalid HEMISPHERE: %q (want south or north)", hemisphere)
	}
	cfg.Hemisphere = hemisphere

	timeoutStr := getenvDefault("HTTP_TIMEOUT", "10s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	waitStr := getenvDefault("GEOLOCATION_WAIT", "5s")
	wait, err := time.ParseDuration(waitStr)
	if err != nil {
		return nil, fmt.Errorf("invalid GEOLOCATION_WAIT: %w", err)
	}
	cfg.GeolocationWait = wait

	cfg.ChartWindowHours = getenvInt("CHART_WINDOW_HOURS", 120) // five days of hourly points

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
