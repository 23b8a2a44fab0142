package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	DatabaseURL string
	Port        string
	Environment string
	// Security configuration
	AllowedOrigins  string
	TrustedProxies  string
	EnableRateLimit bool
	MaxRequestSize  int64
	// Pagination configuration
	DefaultPageSize int
	MaxPageSize     int
}

// New creates a new configuration instance from environment variables
func New() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		// Security configuration
		AllowedOrigins:  getEnv("ALLOWED_ORIGINS", ""),
		TrustedProxies:  getEnv("TRUSTED_PROXIES", ""),
		EnableRateLimit: getEnv("ENABLE_RATE_LIMIT", "true") == "true",
		MaxRequestSize:  getEnvAsInt64("MAX_REQUEST_SIZE", 1*1024*1024), // 1MB default
		// Pagination configuration
		DefaultPageSize: getEnvAsInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:     getEnvAsInt("MAX_PAGE_SIZE", 100),
	}
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetAllowedOrigins returns a slice of allowed CORS origins
func (c *Config) GetAllowedOrigins() []string {
	if c.AllowedOrigins == "" {
		return []string{}
	}
	return strings.Split(c.AllowedOrigins, ",")
}

// GetTrustedProxies returns a slice of trusted proxy IPs
func (c *Config) GetTrustedProxies() []string {
	if c.TrustedProxies == "" {
		return []string{} // No trusted proxies by default
	}
	return strings.Split(c.TrustedProxies, ",")
}
