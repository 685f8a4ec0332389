package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Media storage
	StoragePath string
	MaxImageMB  int

	// Upload rate limit (requests per minute per IP)
	UploadRateLimit int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		DatabaseURL:     mustGetEnv("DATABASE_URL"),
		StoragePath:     getEnvOrDefault("STORAGE_PATH", "./uploads"),
		MaxImageMB:      getEnvAsIntOrDefault("MAX_IMAGE_MB", 5),
		UploadRateLimit: getEnvAsIntOrDefault("UPLOAD_RATE_LIMIT", 30),
		FrontendURL:     getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

// MaxImageBytes returns the upload size cap in bytes.
func (c *Config) MaxImageBytes() int64 {
	return int64(c.MaxImageMB) * 1024 * 1024
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
