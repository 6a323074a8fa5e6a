// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"fintrack-api/pkg/db" // Import db package for its Config struct
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config

	JWTSecret string
	TokenTTL  time.Duration

	// Optional external advice text-generation service. Empty URL disables it.
	AdviceServiceURL string
	AdviceAPIKey     string
	AdviceTimeout    time.Duration
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any required variable is invalid.
func LoadConfig() (*AppConfig, error) {
	serverPort := getEnv("SERVER_PORT", "8080")

	dbHost := getEnv("DB_HOST", "localhost")
	dbPortStr := getEnv("DB_PORT", "5432")
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := getEnv("DB_USER", "user")
	dbPassword := getEnv("DB_PASSWORD", "password")
	dbName := getEnv("DB_NAME", "fintrackdb")
	dbSSLMode := getEnv("DB_SSLMODE", "disable")

	jwtSecret := getEnv("JWT_SECRET", "fintrack_dev_secret_change_me")

	tokenTTLStr := getEnv("TOKEN_TTL_MINUTES", "30")
	tokenTTLMinutes, err := strconv.Atoi(tokenTTLStr)
	if err != nil || tokenTTLMinutes <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES: %q", tokenTTLStr)
	}

	adviceTimeoutStr := getEnv("ADVICE_TIMEOUT_SECONDS", "10")
	adviceTimeoutSeconds, err := strconv.Atoi(adviceTimeoutStr)
	if err != nil || adviceTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid ADVICE_TIMEOUT_SECONDS: %q", adviceTimeoutStr)
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		JWTSecret:        jwtSecret,
		TokenTTL:         time.Duration(tokenTTLMinutes) * time.Minute,
		AdviceServiceURL: os.Getenv("ADVICE_SERVICE_URL"),
		AdviceAPIKey:     os.Getenv("ADVICE_API_KEY"),
		AdviceTimeout:    time.Duration(adviceTimeoutSeconds) * time.Second,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
