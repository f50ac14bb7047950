package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Gemini Configuration
	GoogleAPIKey string
	GeminiModel  string
	AITimeout    time.Duration
	// Upload Configuration
	MaxUploadBytes int64
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Gemini Configuration
		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		// flash keeps latency and cost low; switch to a pro model for quality
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-1.5-flash-latest"),
		AITimeout:   time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 60)) * time.Second,
		// Upload Configuration (bytes; resumes are small, 8 MiB is generous)
		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 8<<20)),
	}

	if cfg.GoogleAPIKey == "" {
		log.Println("WARNING: GOOGLE_API_KEY is missing. Extraction and matching will fail.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
