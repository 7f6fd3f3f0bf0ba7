package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	REDIS_URL         string
	CACHE_TTL_SECONDS int

	CORS_ORIGIN     string
	PUBLIC_BASE_URL string

	UPLOAD_DIR    string
	RESOURCES_DIR string

	ADMIN_EMAIL    string
	ADMIN_PASSWORD string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	REDIS_URL = getEnv("REDIS_URL", "")
	CACHE_TTL_SECONDS = getEnvInt("CACHE_TTL_SECONDS", 300)

	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")
	PUBLIC_BASE_URL = getEnv("PUBLIC_BASE_URL", "")

	UPLOAD_DIR = getEnv("UPLOAD_DIR", "uploads")
	RESOURCES_DIR = getEnv("RESOURCES_DIR", "resources")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("Environment variable %s must be an integer, got %q", key, value)
	}
	return n
}
