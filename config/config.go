package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	AppVersion  string

	// MongoDB Configuration
	MongoURI      string
	MongoDatabase string

	// JWT Configuration (secret shared with the auth service)
	JWTSecret    string
	JWTAlgorithm string
	JWTIssuer    string
	JWTAudience  string

	// Redis Configuration (rate limit counters)
	RedisURL      string
	RedisPassword string

	// Rate Limiting
	RateLimitPerMinute int

	// CORS
	CORSOrigins []string

	// Logging
	LogLevel string
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production if absent)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8002"),
		AppVersion:  getEnv("APP_VERSION", "1.0.0"),

		MongoURI:      getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGODB_DATABASE", "matchtal_profiles"),

		JWTSecret:    getEnv("JWT_SECRET_KEY", ""),
		JWTAlgorithm: getEnv("JWT_ALGORITHM", "HS256"),
		JWTIssuer:    getEnv("JWT_ISSUER", "matchtal-auth-service"),
		JWTAudience:  getEnv("JWT_AUDIENCE", "matchtal-platform"),

		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),

		CORSOrigins: splitAndTrim(getEnv("CORS_ORIGINS", "*")),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET_KEY is missing. All authenticated requests will fail.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
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

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
