package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment.
// Defaults are chosen so a bare `go run ./cmd/server` works against an
// embedded sqlite database and an in-memory session store.
type Config struct {
	HTTPAddr string

	DatabaseDriver string // "sqlite" or "postgres"
	DatabaseDSN    string

	SecretKey     string
	ResetTokenTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	SendgridAPIKey string
	MailSender     string
	BaseURL        string
}

func Load() *Config {
	// Missing .env is fine; the environment may be set externally.
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:       GetEnvAsString("HTTP_ADDR", ":8080"),
		DatabaseDriver: GetEnvAsString("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    GetEnvAsString("DATABASE_DSN", "microblog.db"),
		SecretKey:      GetEnvAsString("SECRET_KEY", "you-will-never-guess"),
		ResetTokenTTL:  GetEnvAsDuration("RESET_TOKEN_TTL", 10*time.Minute),
		RedisAddr:      GetEnvAsString("REDIS_ADDR", ""),
		RedisPassword:  GetEnvAsString("REDIS_PASSWORD", ""),
		RedisDB:        GetEnvAsInt("REDIS_DB", 0),
		SessionTTL:     GetEnvAsDuration("SESSION_TTL", 24*time.Hour),
		SendgridAPIKey: GetEnvAsString("SENDGRID_API_KEY", ""),
		MailSender:     GetEnvAsString("MAIL_SENDER", "no-reply@microblog.local"),
		BaseURL:        GetEnvAsString("BASE_URL", "http://localhost:8080"),
	}
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
