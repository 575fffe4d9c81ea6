package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	SESSION_COOKIE string
	SESSION_TTL    time.Duration
	COOKIE_SECURE  bool
	CORS_ORIGIN    string

	LOG_LEVEL  string
	LOG_FORMAT string
	SENTRY_DSN string

	// Optional bootstrap account; skipped when ADMIN_EMAIL is empty.
	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	// Google sign-in is only mounted when GOOGLE_CLIENT_ID is set.
	GOOGLE_CLIENT_ID         string
	GOOGLE_CLIENT_SECRET     string
	GOOGLE_REDIRECT_URL      string
	GOOGLE_FRONTEND_REDIRECT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		logrus.Info("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	SESSION_COOKIE = getEnv("SESSION_COOKIE", "session")
	SESSION_TTL = getEnvDuration("SESSION_TTL", 24*time.Hour)
	COOKIE_SECURE = getEnvBool("COOKIE_SECURE", false)
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:3000")

	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	LOG_FORMAT = getEnv("LOG_FORMAT", "text")
	SENTRY_DSN = getEnv("SENTRY_DSN", "")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")
	if ADMIN_EMAIL != "" && ADMIN_PASSWORD == "" {
		logrus.Fatal("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
	GOOGLE_FRONTEND_REDIRECT = getEnv("GOOGLE_FRONTEND_REDIRECT", "")
}

// GoogleEnabled reports whether all Google OAuth settings are present.
func GoogleEnabled() bool {
	return GOOGLE_CLIENT_ID != "" && GOOGLE_CLIENT_SECRET != "" && GOOGLE_REDIRECT_URL != ""
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		logrus.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logrus.Warnf("Invalid boolean for %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logrus.Warnf("Invalid duration for %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}
